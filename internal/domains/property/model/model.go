package model

import "stayhub/shared/model"

const (
	TableName  = "properties"
	EntityName = "property"

	FieldID            = "id"
	FieldHostID        = "host_id"
	FieldTitle         = "title"
	FieldDescription   = "description"
	FieldLocation      = "location"
	FieldPricePerNight = "price_per_night"
	FieldMaxGuests     = "max_guests"
	FieldApproved      = "approved"
	FieldImage         = "image"
	FieldActive        = "active"
)

type Property struct {
	ID            string  `db:"id"`
	HostID        string  `db:"host_id"`
	Title         string  `db:"title"`
	Description   string  `db:"description"`
	Location      string  `db:"location"`
	PricePerNight float64 `db:"price_per_night"`
	MaxGuests     int     `db:"max_guests"`
	Approved      bool    `db:"approved"`
	Image         string  `db:"image"`
	Active        bool    `db:"active"`
	model.Metadata
}
