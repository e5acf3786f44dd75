package model

import "stayhub/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID           = "id"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldRole         = "role"
	FieldFullName     = "full_name"
	FieldPhone        = "phone"
	FieldProfileImage = "profile_image"
	FieldIsVerified   = "is_verified"
	FieldActive       = "active"
)

type User struct {
	ID           string  `db:"id"`
	Email        string  `db:"email"`
	Password     string  `db:"password"`
	Role         string  `db:"role"`
	FullName     *string `db:"full_name"`
	Phone        *string `db:"phone"`
	ProfileImage *string `db:"profile_image"`
	IsVerified   bool    `db:"is_verified"`
	Active       bool    `db:"active"`
	model.Metadata
}
