package entities

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// SettlementDocument is the Ledger-side posting of one received payment
// applied against one or more bills.
//
// SettledBills is the ordered run of internal bill ids the payment closes
// (a payment may settle several consecutive unpaid periods). It is never
// empty: the engine refuses to build a document for an unresolved payment.

type SettlementDocument struct {
	SettledBills     []string        `json:"settled_bills"`
	InstrumentAmount decimal.Decimal `json:"instrument_amount"`
	TotalInstrument  decimal.Decimal `json:"total_instrument"`
	InstrumentCode   string          `json:"instrument_code"`
	AssetAccountID   int64           `json:"asset_account_id"`
	Description      string          `json:"description"`
	BillRef          string          `json:"bill_ref"`
}

// SessionState tracks the Ledger client lifecycle.

type SessionState string

const (
	SessionDisconnected  SessionState = "disconnected"
	SessionConnected     SessionState = "connected"
	SessionAuthenticated SessionState = "authenticated"
)

// Session is an authenticated Ledger session, held for the process lifetime.
//
// PaymentCenter keeps the raw metadata blob the Ledger returns; this service
// only surfaces it, it never interprets it.

type Session struct {
	SessionID     string          `json:"session_id"`
	Username      string          `json:"username"`
	PaymentCenter json.RawMessage `json:"payment_center,omitempty"`
}
