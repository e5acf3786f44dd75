package dto

import (
	"github.com/google/uuid"

	"stayhub/internal/domains/user/model"
	"stayhub/shared"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	gModel "stayhub/shared/model"
	"stayhub/shared/timezone"
)

type CreateUserRequest struct {
	Email        string  `json:"email"                   validate:"required,email"`
	Password     string  `json:"password"                validate:"required,min=8"`
	Role         string  `json:"role"                    validate:"omitempty,oneof=guest host admin"`
	FullName     *string `json:"full_name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

func (r *CreateUserRequest) ToModel(username, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RoleGuest
	}

	return model.User{
		ID:           uuid.NewString(),
		Email:        r.Email,
		Password:     hashedPassword,
		Role:         role,
		FullName:     r.FullName,
		Phone:        r.Phone,
		ProfileImage: r.ProfileImage,
		Active:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UserResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	FullName     *string `json:"full_name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
	IsVerified   bool    `json:"is_verified"`
	Active       bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Role = model.Role
	r.FullName = model.FullName
	r.Phone = model.Phone
	r.ProfileImage = model.ProfileImage
	r.IsVerified = model.IsVerified
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type UpdateUserRequest struct {
	Role         *string `json:"role,omitempty"          validate:"omitempty,oneof=guest host admin" db:"role"`
	FullName     *string `json:"full_name,omitempty"     db:"full_name"`
	Phone        *string `json:"phone,omitempty"         db:"phone"`
	ProfileImage *string `json:"profile_image,omitempty" db:"profile_image"`
	IsVerified   *bool   `json:"is_verified,omitempty"   db:"is_verified"`
	Active       *bool   `json:"active,omitempty"        db:"active"`
}

type UpdateProfileRequest struct {
	FullName     *string `json:"full_name,omitempty"     db:"full_name"`
	Phone        *string `json:"phone,omitempty"         db:"phone"`
	ProfileImage *string `json:"profile_image,omitempty" db:"profile_image"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
