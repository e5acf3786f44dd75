package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"stayhub/internal/domains/property/model"
	"stayhub/shared"
	gDto "stayhub/shared/dto"
	gModel "stayhub/shared/model"
	"stayhub/shared/timezone"
)

type CreatePropertyRequest struct {
	Title         string                `json:"title"           validate:"required,max=150"`
	Description   string                `json:"description"     validate:"omitempty,max=2000"`
	Location      string                `json:"location"        validate:"required,max=150"`
	PricePerNight float64               `json:"price_per_night" validate:"required,gt=0"`
	MaxGuests     int                   `json:"max_guests"      validate:"required,min=1"`
	Image         *multipart.FileHeader `json:"image"           validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
	ImageFile     multipart.File        `json:"-"`
	Active        *bool                 `json:"active"          validate:"omitempty"`
}

func (c *CreatePropertyRequest) ToModel(hostID, user, imageURL string) model.Property {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Property{
		ID:            uuid.NewString(),
		HostID:        hostID,
		Title:         c.Title,
		Description:   c.Description,
		Location:      c.Location,
		PricePerNight: c.PricePerNight,
		MaxGuests:     c.MaxGuests,
		Approved:      false,
		Image:         imageURL,
		Active:        active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePropertyRequest struct {
	Title         string   `db:"title"           json:"title"           validate:"omitempty,max=150"`
	Description   *string  `db:"description"     json:"description"     validate:"omitempty,max=2000"`
	Location      string   `db:"location"        json:"location"        validate:"omitempty,max=150"`
	PricePerNight *float64 `db:"price_per_night" json:"price_per_night" validate:"omitempty,gt=0"`
	MaxGuests     *int     `db:"max_guests"      json:"max_guests"      validate:"omitempty,min=1"`
	Active        *bool    `db:"active"          json:"active"          validate:"omitempty"`
}

type ApprovePropertyRequest struct {
	Approved *bool `db:"approved" json:"approved" validate:"required"`
}

type UploadPhotoRequest struct {
	Image     *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
	ImageFile multipart.File        `json:"-"`
}

type PropertyResponse struct {
	ID            string  `json:"id"`
	HostID        string  `json:"host_id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"price_per_night"`
	MaxGuests     int     `json:"max_guests"`
	Approved      bool    `json:"approved"`
	Image         string  `json:"image"`
	Active        bool    `json:"active"`
	gDto.Metadata
}

func (r *PropertyResponse) FromModel(model model.Property) {
	r.ID = model.ID
	r.HostID = model.HostID
	r.Title = model.Title
	r.Description = model.Description
	r.Location = model.Location
	r.PricePerNight = model.PricePerNight
	r.MaxGuests = model.MaxGuests
	r.Approved = model.Approved
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetPropertiesResponse) FromModels(models []model.Property, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Properties = make([]PropertyResponse, len(models))
	for i, mod := range models {
		r.Properties[i].FromModel(mod)
	}
}
