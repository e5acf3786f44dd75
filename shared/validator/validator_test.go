package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"stayhub/shared/failure"
	"stayhub/shared/validator"
)

type createBookingBody struct {
	PropertyID string `json:"property_id" validate:"required"`
	StartDate  string `json:"start_date"  validate:"required"`
	EndDate    string `json:"end_date"    validate:"required"`
	GuestCount int    `json:"guest_count" validate:"required,min=1"`
}

func TestValidate_Success(t *testing.T) {
	body := strings.NewReader(`{
		"property_id": "prop-1",
		"start_date": "2024-03-15",
		"end_date": "2024-03-20",
		"guest_count": 2
	}`)

	req := createBookingBody{}
	err := validator.Validate(body, &req)

	assert.NoError(t, err)
	assert.Equal(t, "prop-1", req.PropertyID)
	assert.Equal(t, 2, req.GuestCount)
}

func TestValidate_MissingRequiredField(t *testing.T) {
	body := strings.NewReader(`{"start_date": "2024-03-15"}`)

	req := createBookingBody{}
	err := validator.Validate(body, &req)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, err.Error(), "required")
}

func TestValidate_MalformedJSON(t *testing.T) {
	body := strings.NewReader(`{not json`)

	req := createBookingBody{}
	err := validator.Validate(body, &req)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestValidateStruct_MinViolation(t *testing.T) {
	req := createBookingBody{
		PropertyID: "prop-1",
		StartDate:  "2024-03-15",
		EndDate:    "2024-03-20",
		GuestCount: -3,
	}

	err := validator.ValidateStruct(&req)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestValidateVar_OneOf(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("confirmed", "oneof=pending confirmed cancelled completed"))

	err := validator.ValidateVar("shipped", "oneof=pending confirmed cancelled completed")
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestValidateStruct_Mimetypes(t *testing.T) {
	type upload struct {
		Image string `validate:"omitempty,mimetypes=image/png image/jpeg"`
	}

	ok := upload{Image: "data:image/png;base64,iVBORw0KGgo="}
	assert.NoError(t, validator.ValidateStruct(&ok))

	bad := upload{Image: "data:application/pdf;base64,JVBERi0="}
	assert.Error(t, validator.ValidateStruct(&bad))
}
