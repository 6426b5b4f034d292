package entities

import "github.com/shopspring/decimal"

// PaymentRecord is one settled payment parsed out of the Gateway's paid-bill
// export.
//
// Domain notes:
//   - BillRef is the Ledger-side bill reference, town prefix already
//     stripped when the configured town marker was present on the row.
//   - Consumed exactly once by the post-back cycle; not persisted locally.
//     A record that cannot be resolved to settled bill ids stays on the
//     Gateway side and is picked up again on a later run.

type PaymentRecord struct {
	BillRef          string          `json:"bill_ref"`
	Amount           decimal.Decimal `json:"amount"`
	TotalInstrument  decimal.Decimal `json:"total_instrument"`
	Agent            string          `json:"agent"`
	ConfirmationCode string          `json:"confirmation_code"`
	TownTagged       bool            `json:"town_tagged"`
}
