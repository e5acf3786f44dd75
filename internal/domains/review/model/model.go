package model

import "stayhub/shared/model"

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID         = "id"
	FieldBookingID  = "booking_id"
	FieldPropertyID = "property_id"
	FieldGuestID    = "guest_id"
	FieldRating     = "rating"
	FieldComment    = "comment"
)

type Review struct {
	ID         string  `db:"id"`
	BookingID  string  `db:"booking_id"`
	PropertyID string  `db:"property_id"`
	GuestID    string  `db:"guest_id"`
	Rating     int     `db:"rating"`
	Comment    *string `db:"comment"`
	model.Metadata
}
