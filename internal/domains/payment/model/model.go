package model

import (
	"time"

	"stayhub/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldAmount        = "amount"
	FieldStatus        = "status"
	FieldMethod        = "method"
	FieldTransactionID = "transaction_id"
	FieldPaymentDate   = "payment_date"

	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusRefunded  = "refunded"

	MethodPending = "pending"
)

// ValidStatuses lists every status a payment may hold.
var ValidStatuses = []string{StatusPending, StatusCompleted, StatusFailed, StatusRefunded}

type Payment struct {
	ID            string    `db:"id"`
	BookingID     string    `db:"booking_id"`
	Amount        float64   `db:"amount"`
	Status        string    `db:"status"`
	Method        string    `db:"method"`
	TransactionID *string   `db:"transaction_id"`
	PaymentDate   time.Time `db:"payment_date"`
	model.Metadata
}
