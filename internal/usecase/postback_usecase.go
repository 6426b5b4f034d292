package usecase

import (
	"context"
	"fmt"
	"log"

	"billbridge/internal/domain/entities"
	"billbridge/internal/parser"
)

const settlementDescFormat = "Settled through payment gateway. Confirmation code: %s, Agent: %s"

// DownloadPayments pulls the Gateway's paid-bill export since the oldest
// unpaid bill and parses it into payment records. Malformed rows are
// reported and dropped; the successes move on to post-back.
func (u *SyncUseCase) DownloadPayments(ctx context.Context) ([]entities.PaymentRecord, CycleReport, error) {
	rep := u.newCycle("download")

	from, err := u.bills.MinUnpaidDate(ctx)
	if err != nil {
		rep, err := u.finishCycle(rep, err)
		return nil, rep, err
	}
	to := u.now()

	raw, err := u.gateway.DownloadPaidBills(ctx, from, to)
	if err != nil {
		rep, err := u.finishCycle(rep, err)
		return nil, rep, err
	}

	var records []entities.PaymentRecord
	rows := parser.ParseExport(raw, u.town)
	for _, row := range rows {
		if row.Err != nil {
			log.Printf("[sync][download] skip row line=%d err=%v", row.Line, row.Err)
			rep.add(fmt.Sprintf("line %d", row.Line), ItemMalformed, row.Err.Error())
			continue
		}
		rep.add(row.Record.BillRef, ItemParsed, "")
		records = append(records, row.Record)
	}
	log.Printf("[sync][download] done from=%s to=%s parsed=%d malformed=%d",
		from.Format(dateLayout), to.Format(dateLayout), len(records), rep.Count(ItemMalformed))

	rep, err = u.finishCycle(rep, nil)
	return records, rep, err
}

// PostBackPayments posts each downloaded payment into the Ledger as a
// settlement document. A payment whose bill reference resolves to no
// settled bills is reported unresolved and left for a later run; a Ledger
// rejection is reported per record so the rest still post.
func (u *SyncUseCase) PostBackPayments(ctx context.Context, records []entities.PaymentRecord) (CycleReport, error) {
	rep := u.newCycle("postback")
	log.Printf("[sync][postback] start payments=%d", len(records))

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return u.finishCycle(rep, err)
		}
		u.postOne(ctx, rec, &rep)
	}
	return u.finishCycle(rep, nil)
}

func (u *SyncUseCase) postOne(ctx context.Context, rec entities.PaymentRecord, rep *CycleReport) {
	ids, err := u.bills.SettledBills(ctx, rec.BillRef)
	if err != nil {
		log.Printf("[sync][postback] settled-bill lookup failed bill_ref=%s err=%v", rec.BillRef, err)
		rep.add(rec.BillRef, ItemRemoteError, err.Error())
		return
	}
	if len(ids) == 0 {
		log.Printf("[sync][postback] unresolved payment bill_ref=%s confirmation=%s", rec.BillRef, rec.ConfirmationCode)
		rep.add(rec.BillRef, ItemUnresolved, "payment resolves to no settled bills")
		return
	}

	doc := entities.SettlementDocument{
		SettledBills:     ids,
		InstrumentAmount: rec.Amount,
		TotalInstrument:  rec.TotalInstrument,
		InstrumentCode:   u.instrumentCode,
		AssetAccountID:   u.assetAccountID,
		Description:      fmt.Sprintf(settlementDescFormat, rec.ConfirmationCode, rec.Agent),
		BillRef:          rec.BillRef,
	}
	if err := u.ledger.PostSettlement(ctx, doc); err != nil {
		log.Printf("[sync][postback] post failed bill_ref=%s err=%v", rec.BillRef, err)
		rep.add(rec.BillRef, ItemRemoteError, err.Error())
		return
	}
	log.Printf("[sync][postback] posted bill_ref=%s bills=%d confirmation=%s", rec.BillRef, len(ids), rec.ConfirmationCode)
	rep.add(rec.BillRef, ItemPosted, "")
}
