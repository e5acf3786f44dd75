package dto

import (
	"github.com/google/uuid"

	"stayhub/internal/domains/review/model"
	"stayhub/shared"
	gDto "stayhub/shared/dto"
	gModel "stayhub/shared/model"
	"stayhub/shared/timezone"
)

type CreateReviewRequest struct {
	BookingID string  `json:"booking_id" validate:"required"`
	Rating    int     `json:"rating"     validate:"required,min=1,max=5"`
	Comment   *string `json:"comment"    validate:"omitempty,max=2000"`
}

func (r *CreateReviewRequest) ToModel(guestID, propertyID string) model.Review {
	return model.Review{
		ID:         uuid.NewString(),
		BookingID:  r.BookingID,
		PropertyID: propertyID,
		GuestID:    guestID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  guestID,
			ModifiedBy: guestID,
		},
	}
}

type ReviewResponse struct {
	ID         string  `json:"id"`
	BookingID  string  `json:"booking_id"`
	PropertyID string  `json:"property_id"`
	GuestID    string  `json:"guest_id"`
	Rating     int     `json:"rating"`
	Comment    *string `json:"comment,omitempty"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.PropertyID = model.PropertyID
	r.GuestID = model.GuestID
	r.Rating = model.Rating
	r.Comment = model.Comment
	r.Metadata.FromModel(model.Metadata)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
