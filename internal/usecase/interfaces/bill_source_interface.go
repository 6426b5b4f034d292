package interfaces

import (
	"billbridge/internal/domain/entities"
	"context"
	"time"
)

// IBillSource abstracts the read-only query surface over the Ledger's
// relational store.
//
// The sync engine uses it to:
//   - read the unpaid bills to mirror on the Gateway
//   - read the bills deleted or voided since they were mirrored
//   - resolve a paid-bill reference back to the run of settled bill ids
//
// DeletedBills and CurrentPeriod are distinct operations bound to distinct
// SQL scripts.

type IBillSource interface {
	UnpaidBills(ctx context.Context) ([]entities.LedgerBill, error)
	DeletedBills(ctx context.Context) ([]entities.LedgerBill, error)
	CurrentPeriod(ctx context.Context) (string, error)
	MinUnpaidDate(ctx context.Context) (time.Time, error)
	// SettledBills returns the ordered sequence of internal bill ids the
	// payment referenced by billRef settles. Empty means unresolved.
	SettledBills(ctx context.Context, billRef string) ([]string, error)
}
