package model

import "time"

type InvoiceStatus string

const (
	StatusPending  InvoiceStatus = "Pending"
	StatusPaid     InvoiceStatus = "Paid"
	StatusTestPaid InvoiceStatus = "Test Paid"
)

// IsPaid reports whether the status is terminal. Anything else, including an
// empty status on a freshly created row, is payable.
func (s InvoiceStatus) IsPaid() bool {
	return s == StatusPaid || s == StatusTestPaid
}

type Invoice struct {
	// Record identifier, the same value the gateway sends as MNT_TRANSACTION_ID.
	ID string
	// Identity (token subject) of the invoice owner.
	Owner  string
	Email  string
	Amount string
	Status InvoiceStatus
}

type MarkPaidParams struct {
	ID     string
	Amount string
	Status InvoiceStatus
}

type Identity struct {
	Subject string
	Email   string
}

type InvoicePaid struct {
	EventID     string    `json:"event_id"`
	InvoiceID   string    `json:"invoice_id"`
	Owner       string    `json:"owner"`
	Amount      string    `json:"amount"`
	Status      string    `json:"status"`
	OperationID string    `json:"operation_id"`
	TestMode    bool      `json:"test_mode"`
	PaidAt      time.Time `json:"paid_at"`
}
