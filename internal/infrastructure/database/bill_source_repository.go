// Package database implements the Ledger-side read surface over the
// utility's relational store.
package database

import (
	"context"
	"fmt"
	"time"

	"billbridge/internal/domain/entities"
	"billbridge/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// BillSourceRepository answers the engine's Ledger queries using the SQL
// loaded from the scripts file. Pure reads; nothing here writes.
type BillSourceRepository struct {
	pool    *pgxpool.Pool
	scripts *ScriptSet
}

var _ interfaces.IBillSource = (*BillSourceRepository)(nil)

func NewBillSourceRepository(pool *pgxpool.Pool, scripts *ScriptSet) *BillSourceRepository {
	return &BillSourceRepository{pool: pool, scripts: scripts}
}

// UnpaidBills returns every unpaid bill, in statement order.
func (r *BillSourceRepository) UnpaidBills(ctx context.Context) ([]entities.LedgerBill, error) {
	return r.queryBills(ctx, ScriptUnpaidBills)
}

// DeletedBills returns bills removed or voided since they were mirrored.
func (r *BillSourceRepository) DeletedBills(ctx context.Context) ([]entities.LedgerBill, error) {
	return r.queryBills(ctx, ScriptDeletedBills)
}

func (r *BillSourceRepository) queryBills(ctx context.Context, script string) ([]entities.LedgerBill, error) {
	q, err := r.scripts.Query(script)
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", script, err)
	}
	defer rows.Close()

	var bills []entities.LedgerBill
	for rows.Next() {
		var b entities.LedgerBill
		var amount float64
		if err := rows.Scan(&b.BillID, &b.CustomerCode, &b.ContractNo, &amount, &b.Name, &b.PhoneNo, &b.Email); err != nil {
			return nil, fmt.Errorf("scan %s: %w", script, err)
		}
		b.Amount = decimal.NewFromFloat(amount)
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", script, err)
	}
	return bills, nil
}

// CurrentPeriod returns the human-readable current bill period label.
func (r *BillSourceRepository) CurrentPeriod(ctx context.Context) (string, error) {
	q, err := r.scripts.Query(ScriptCurrentPeriod)
	if err != nil {
		return "", err
	}
	var period string
	if err := r.pool.QueryRow(ctx, q).Scan(&period); err != nil {
		return "", fmt.Errorf("query %s: %w", ScriptCurrentPeriod, err)
	}
	return period, nil
}

// MinUnpaidDate returns the date of the oldest unpaid bill; the download
// cycle uses it as the export range start.
func (r *BillSourceRepository) MinUnpaidDate(ctx context.Context) (time.Time, error) {
	q, err := r.scripts.Query(ScriptMinUnpaidDate)
	if err != nil {
		return time.Time{}, err
	}
	var date time.Time
	if err := r.pool.QueryRow(ctx, q).Scan(&date); err != nil {
		return time.Time{}, fmt.Errorf("query %s: %w", ScriptMinUnpaidDate, err)
	}
	return date, nil
}

// SettledBills resolves a paid-bill reference to the ordered run of bill
// ids that payment settles. An empty result means the reference is unknown
// to the Ledger.
func (r *BillSourceRepository) SettledBills(ctx context.Context, billRef string) ([]string, error) {
	q, err := r.scripts.Query(ScriptSettledBills)
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, q, billRef)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", ScriptSettledBills, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan %s: %w", ScriptSettledBills, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", ScriptSettledBills, err)
	}
	return ids, nil
}
