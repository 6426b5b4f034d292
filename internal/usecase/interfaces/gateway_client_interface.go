package interfaces

import (
	"billbridge/internal/domain/entities"
	"context"
	"time"
)

// GatewayBillCreate is the payload for mirroring a new bill on the
// clearinghouse. Every field is required except Mobile and Email.
type GatewayBillCreate struct {
	BillID            string  `json:"bill_id"`
	BillDesc          string  `json:"bill_desc"`
	Reason            string  `json:"reason"`
	AmountDue         float64 `json:"amount_due"`
	DueDate           string  `json:"due_date"`
	PartialPayAllowed bool    `json:"partial_pay_allowed"`
	CustomerID        string  `json:"customer_id"`
	Name              string  `json:"name"`
	Mobile            string  `json:"mobile,omitempty"`
	Email             string  `json:"email,omitempty"`
}

// GatewayBillUpdate is the payload for amending a mirrored bill, used both
// for amount corrections and for retracting bills (already_paid=true).
type GatewayBillUpdate struct {
	BillID      string  `json:"bill_id"`
	BillDesc    string  `json:"bill_desc"`
	Reason      string  `json:"reason"`
	AlreadyPaid bool    `json:"already_paid"`
	AmountDue   float64 `json:"amount_due"`
	DueDate     string  `json:"due_date"`
}

// IGatewayClient abstracts the payment clearinghouse REST API.
//
// FetchBill treats any non-2xx response as "bill absent" and returns the
// zero GatewayBill; absence is an expected outcome, not an error.
type IGatewayClient interface {
	FetchBill(ctx context.Context, billID string) (entities.GatewayBill, error)
	CreateBill(ctx context.Context, bill GatewayBillCreate) error
	UpdateBill(ctx context.Context, bill GatewayBillUpdate) error
	// DownloadPaidBills returns the raw delimited paid-bill export for the
	// inclusive date range.
	DownloadPaidBills(ctx context.Context, from, to time.Time) (string, error)
}
