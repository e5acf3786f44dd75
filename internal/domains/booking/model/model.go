package model

import (
	"slices"
	"time"

	"stayhub/shared/constant"
	"stayhub/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldPropertyID      = "property_id"
	FieldGuestID         = "guest_id"
	FieldStartDate       = "start_date"
	FieldEndDate         = "end_date"
	FieldGuestCount      = "guest_count"
	FieldTotalPrice      = "total_price"
	FieldStatus          = "status"
	FieldSpecialRequests = "special_requests"

	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// ValidStatuses lists every status a booking may hold. Any member may be set
// by a host or admin regardless of the current status.
var ValidStatuses = []string{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}

func IsValidStatus(status string) bool {
	return slices.Contains(ValidStatuses, status)
}

type Booking struct {
	ID              string    `db:"id"`
	PropertyID      string    `db:"property_id"`
	GuestID         string    `db:"guest_id"`
	StartDate       time.Time `db:"start_date"`
	EndDate         time.Time `db:"end_date"`
	GuestCount      int       `db:"guest_count"`
	TotalPrice      float64   `db:"total_price"`
	Status          string    `db:"status"`
	SpecialRequests *string   `db:"special_requests"`
	model.Metadata
}

// Nights derives the billable night count, rounding partial days up.
func (b *Booking) Nights() int {
	hours := b.EndDate.Sub(b.StartDate).Hours()

	nights := int(hours / constant.HoursPerDay)
	if hours > float64(nights)*constant.HoursPerDay {
		nights++
	}

	return nights
}
