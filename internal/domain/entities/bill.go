package entities

import "github.com/shopspring/decimal"

// LedgerBill is one unpaid bill row as the utility's billing store knows it.
//
// Domain notes:
//   - Rows are read fresh from the Ledger each sync run and discarded after
//     the run; nothing here is persisted by this service.
//   - CustomerCode and ContractNo are alternative customer identifiers; a
//     Gateway record may carry either one in customer_id.

type LedgerBill struct {
	BillID       string          `json:"bill_id"`
	CustomerCode string          `json:"customer_code"`
	ContractNo   string          `json:"contract_no"`
	Amount       decimal.Decimal `json:"amount"`
	Name         string          `json:"name"`
	PhoneNo      string          `json:"phone_no"`
	Email        string          `json:"email"`
}

// Valid reports whether the row carries the fields the Gateway requires on
// upload. Rows failing this are skipped as malformed, never uploaded.
func (b LedgerBill) Valid() bool {
	return b.BillID != "" && b.CustomerCode != "" && b.Name != ""
}

// GatewayBill is the clearinghouse's view of a mirrored bill.
//
// The Gateway is the source of truth for existence: a fetch miss means the
// bill was never uploaded. BillID is town-prefixed ("<TOWN>-<ledger id>").

type GatewayBill struct {
	BillID      string          `json:"bill_id"`
	BillDesc    string          `json:"bill_desc"`
	CustomerID  string          `json:"customer_id"`
	AmountDue   decimal.Decimal `json:"amount_due"`
	DueDate     string          `json:"due_date"`
	AlreadyPaid bool            `json:"already_paid"`
}

// Empty reports whether the value is the zero "bill absent" result.
func (b GatewayBill) Empty() bool {
	return b.BillID == ""
}
