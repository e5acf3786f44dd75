package dto

import (
	"time"

	"github.com/google/uuid"

	"stayhub/internal/domains/booking/model"
	paymentModel "stayhub/internal/domains/payment/model"
	"stayhub/shared"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
	gModel "stayhub/shared/model"
	"stayhub/shared/timezone"
)

type CreateBookingRequest struct {
	PropertyID      string  `json:"property_id"                validate:"required"`
	StartDate       string  `json:"start_date"                 validate:"required"`
	EndDate         string  `json:"end_date"                   validate:"required"`
	GuestCount      int     `json:"guest_count"                validate:"required,min=1"`
	SpecialRequests *string `json:"special_requests,omitempty" validate:"omitempty,max=1000"`
}

// ParseDates parses the stay window and enforces start before end.
func (r *CreateBookingRequest) ParseDates() (start, end time.Time, err error) {
	start, err = timezone.Parse(constant.DateFormat, r.StartDate)
	if err != nil {
		return start, end, failure.BadRequestFromString("start_date must be formatted as " + constant.DateFormat)
	}

	end, err = timezone.Parse(constant.DateFormat, r.EndDate)
	if err != nil {
		return start, end, failure.BadRequestFromString("end_date must be formatted as " + constant.DateFormat)
	}

	if !start.Before(end) {
		return start, end, failure.BadRequestFromString("start_date must be before end_date")
	}

	return start, end, nil
}

// ToModel assembles the booking with its derived total price.
func (r *CreateBookingRequest) ToModel(guestID string, start, end time.Time, pricePerNight float64) model.Booking {
	booking := model.Booking{
		ID:              uuid.NewString(),
		PropertyID:      r.PropertyID,
		GuestID:         guestID,
		StartDate:       start,
		EndDate:         end,
		GuestCount:      r.GuestCount,
		Status:          model.StatusPending,
		SpecialRequests: r.SpecialRequests,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  guestID,
			ModifiedBy: guestID,
		},
	}

	booking.TotalPrice = float64(booking.Nights()) * pricePerNight

	return booking
}

// ToPaymentModel derives the payment row paired with the booking.
func (r *CreateBookingRequest) ToPaymentModel(booking model.Booking) paymentModel.Payment {
	return paymentModel.Payment{
		ID:          uuid.NewString(),
		BookingID:   booking.ID,
		Amount:      booking.TotalPrice,
		Status:      paymentModel.StatusPending,
		Method:      paymentModel.MethodPending,
		PaymentDate: timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  booking.GuestID,
			ModifiedBy: booking.GuestID,
		},
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	PropertyID      string  `json:"property_id"`
	GuestID         string  `json:"guest_id"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	GuestCount      int     `json:"guest_count"`
	TotalPrice      float64 `json:"total_price"`
	Status          string  `json:"status"`
	SpecialRequests *string `json:"special_requests,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.GuestID = model.GuestID
	r.StartDate = model.StartDate.Format(constant.DateFormat)
	r.EndDate = model.EndDate.Format(constant.DateFormat)
	r.GuestCount = model.GuestCount
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.SpecialRequests = model.SpecialRequests
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingEvent is the payload published to Kafka on booking lifecycle changes.
type BookingEvent struct {
	Type       string `json:"type"`
	BookingID  string `json:"booking_id"`
	PropertyID string `json:"property_id"`
	GuestID    string `json:"guest_id"`
	Status     string `json:"status"`
	OccurredAt string `json:"occurred_at"`
}

const (
	EventBookingCreated       = "booking.created"
	EventBookingCancelled     = "booking.cancelled"
	EventBookingStatusChanged = "booking.status_changed"
)

func NewBookingEvent(eventType string, booking model.Booking) BookingEvent {
	return BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		PropertyID: booking.PropertyID,
		GuestID:    booking.GuestID,
		Status:     booking.Status,
		OccurredAt: timezone.Now().Format(constant.DateTimeFormat),
	}
}
