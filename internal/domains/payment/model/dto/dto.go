package dto

import (
	"stayhub/internal/domains/payment/model"
	"stayhub/shared"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
)

type UpdatePaymentStatusRequest struct {
	Status        string  `db:"status"         json:"status"         validate:"required,oneof=pending completed failed refunded"`
	Method        *string `db:"method"         json:"method"         validate:"omitempty,max=50"`
	TransactionID *string `db:"transaction_id" json:"transaction_id" validate:"omitempty,max=100"`
}

type PaymentResponse struct {
	ID            string  `json:"id"`
	BookingID     string  `json:"booking_id"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	Method        string  `json:"method"`
	TransactionID *string `json:"transaction_id,omitempty"`
	PaymentDate   string  `json:"payment_date"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Amount = model.Amount
	r.Status = model.Status
	r.Method = model.Method
	r.TransactionID = model.TransactionID

	if !model.PaymentDate.IsZero() {
		r.PaymentDate = model.PaymentDate.Format(constant.DateTimeFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}
