package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"billbridge/internal/domain/entities"
	"billbridge/internal/observability/metrics"
	"billbridge/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrRunInProgress = errors.New("sync run already in progress")

const (
	updateReason     = "Updated from utility system"
	invalidateReason = "Paid or deleted"
	invalidateDesc   = "Bill no longer payable"

	dateLayout = "2006-01-02"
)

// amountTolerance is the smallest ledger/gateway delta worth pushing as an
// update. Both sides are rounded to 2 decimals before comparing.
var amountTolerance = decimal.New(1, -1)

// ISyncUseCase encapsulates the reconciliation engine: the four cycles that
// keep the Ledger and the Gateway agreeing on unpaid bills and settled
// payments.
//
// RunAll executes upload, invalidate, download and post-back strictly in
// that order and refuses to overlap with an in-flight run.

type ISyncUseCase interface {
	RunAll(ctx context.Context) (RunReport, error)
	UploadBills(ctx context.Context) (CycleReport, error)
	InvalidateBills(ctx context.Context) (CycleReport, error)
	DownloadPayments(ctx context.Context) ([]entities.PaymentRecord, CycleReport, error)
	PostBackPayments(ctx context.Context, records []entities.PaymentRecord) (CycleReport, error)
	LastReport() (RunReport, bool)
}

type SyncUseCase struct {
	bills   interfaces.IBillSource
	gateway interfaces.IGatewayClient
	ledger  interfaces.ILedgerClient

	town           string // upper-cased town marker, no trailing dash
	instrumentCode string
	assetAccountID int64

	now func() time.Time

	mu      sync.Mutex
	running bool
	last    *RunReport
}

var _ ISyncUseCase = (*SyncUseCase)(nil)

func NewSyncUseCase(bills interfaces.IBillSource, gateway interfaces.IGatewayClient, ledger interfaces.ILedgerClient, town, instrumentCode string, assetAccountID int64) *SyncUseCase {
	return &SyncUseCase{
		bills:          bills,
		gateway:        gateway,
		ledger:         ledger,
		town:           strings.ToUpper(strings.TrimSuffix(strings.TrimSpace(town), "-")),
		instrumentCode: instrumentCode,
		assetAccountID: assetAccountID,
		now:            time.Now,
	}
}

// RunAll drives one full sync run. A cycle-level error (lost transport, bad
// query) aborts the remainder of the run; the caller retries on its next
// tick. Per-item failures are absorbed into the cycle reports.
func (u *SyncUseCase) RunAll(ctx context.Context) (RunReport, error) {
	u.mu.Lock()
	if u.running {
		u.mu.Unlock()
		return RunReport{}, ErrRunInProgress
	}
	u.running = true
	u.mu.Unlock()
	defer func() {
		u.mu.Lock()
		u.running = false
		u.mu.Unlock()
	}()

	rep := RunReport{RunID: uuid.NewString(), Started: u.now().UTC()}
	log.Printf("[sync][run] start run_id=%s", rep.RunID)

	fail := func(err error) (RunReport, error) {
		rep.Finished = u.now().UTC()
		rep.Error = err.Error()
		u.storeLast(rep)
		log.Printf("[sync][run] aborted run_id=%s err=%v", rep.RunID, err)
		return rep, err
	}

	upload, err := u.UploadBills(ctx)
	rep.Cycles = append(rep.Cycles, upload)
	if err != nil {
		return fail(err)
	}

	invalidate, err := u.InvalidateBills(ctx)
	rep.Cycles = append(rep.Cycles, invalidate)
	if err != nil {
		return fail(err)
	}

	records, download, err := u.DownloadPayments(ctx)
	rep.Cycles = append(rep.Cycles, download)
	if err != nil {
		return fail(err)
	}

	postback, err := u.PostBackPayments(ctx, records)
	rep.Cycles = append(rep.Cycles, postback)
	if err != nil {
		return fail(err)
	}

	rep.Finished = u.now().UTC()
	u.storeLast(rep)
	log.Printf("[sync][run] done run_id=%s created=%d updated=%d invalidated=%d posted=%d",
		rep.RunID, upload.Count(ItemCreated), upload.Count(ItemUpdated),
		invalidate.Count(ItemInvalidated), postback.Count(ItemPosted))
	return rep, nil
}

// LastReport returns the most recently finished run, if any.
func (u *SyncUseCase) LastReport() (RunReport, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.last == nil {
		return RunReport{}, false
	}
	return *u.last, true
}

func (u *SyncUseCase) storeLast(rep RunReport) {
	u.mu.Lock()
	u.last = &rep
	u.mu.Unlock()
}

// UploadBills mirrors every unpaid Ledger bill onto the Gateway: absent
// bills are created, present ones go through the update decision. One bad
// record never aborts the batch.
func (u *SyncUseCase) UploadBills(ctx context.Context) (CycleReport, error) {
	rep := u.newCycle("upload")
	bills, err := u.bills.UnpaidBills(ctx)
	if err != nil {
		return u.finishCycle(rep, err)
	}
	period, err := u.bills.CurrentPeriod(ctx)
	if err != nil {
		return u.finishCycle(rep, err)
	}
	log.Printf("[sync][upload] start bills=%d period=%q", len(bills), period)

	for _, b := range bills {
		if err := ctx.Err(); err != nil {
			return u.finishCycle(rep, err)
		}
		u.uploadOne(ctx, b, period, &rep)
	}
	return u.finishCycle(rep, nil)
}

func (u *SyncUseCase) uploadOne(ctx context.Context, b entities.LedgerBill, period string, rep *CycleReport) {
	if !b.Valid() {
		log.Printf("[sync][upload] skip malformed bill_id=%q customer_code=%q name=%q", b.BillID, b.CustomerCode, b.Name)
		rep.add(b.BillID, ItemMalformed, "missing bill id, customer code or name")
		return
	}

	billID := u.prefixed(b.BillID)
	remote, err := u.gateway.FetchBill(ctx, billID)
	if err != nil {
		log.Printf("[sync][upload] fetch failed bill_id=%s err=%v", billID, err)
		rep.add(b.BillID, ItemRemoteError, err.Error())
		return
	}

	if !remote.Empty() {
		u.updateOne(ctx, b, remote, rep)
		return
	}

	desc := "bills upto " + period
	create := interfaces.GatewayBillCreate{
		BillID:            billID,
		BillDesc:          desc,
		Reason:            desc,
		AmountDue:         roundedFloat(b.Amount),
		DueDate:           u.today(),
		PartialPayAllowed: false,
		CustomerID:        b.CustomerCode,
		Name:              b.Name,
		Mobile:            b.PhoneNo,
		Email:             b.Email,
	}
	if err := u.gateway.CreateBill(ctx, create); err != nil {
		log.Printf("[sync][upload] create failed bill_id=%s err=%v", billID, err)
		rep.add(b.BillID, ItemRemoteError, err.Error())
		return
	}
	log.Printf("[sync][upload] create success bill_id=%s amount_due=%.2f", billID, create.AmountDue)
	rep.add(b.BillID, ItemCreated, "")
}

// updateOne is the update decision for a bill already mirrored: the pair
// must match on customer code or contract number, and the amount delta must
// reach tolerance before an update is issued.
func (u *SyncUseCase) updateOne(ctx context.Context, b entities.LedgerBill, remote entities.GatewayBill, rep *CycleReport) {
	if b.CustomerCode != remote.CustomerID && b.ContractNo != remote.CustomerID {
		log.Printf("[sync][update] identifier mismatch bill_id=%s customer_code=%q contract_no=%q remote_customer=%q",
			remote.BillID, b.CustomerCode, b.ContractNo, remote.CustomerID)
		rep.add(b.BillID, ItemMismatch, "gateway customer_id matches neither customer code nor contract no")
		return
	}
	if !needsAmountUpdate(b.Amount, remote.AmountDue) {
		rep.add(b.BillID, ItemCurrent, "")
		return
	}

	update := interfaces.GatewayBillUpdate{
		BillID:      remote.BillID,
		BillDesc:    remote.BillDesc,
		Reason:      updateReason,
		AlreadyPaid: false,
		AmountDue:   roundedFloat(b.Amount),
		DueDate:     remote.DueDate,
	}
	if err := u.gateway.UpdateBill(ctx, update); err != nil {
		log.Printf("[sync][update] update failed bill_id=%s err=%v", remote.BillID, err)
		rep.add(b.BillID, ItemRemoteError, err.Error())
		return
	}
	log.Printf("[sync][update] update success bill_id=%s amount_due=%.2f", remote.BillID, update.AmountDue)
	rep.add(b.BillID, ItemUpdated, "")
}

// InvalidateBills retracts bills deleted or voided in the Ledger: any such
// bill still live on the Gateway is marked already paid. Bills the Gateway
// never saw are a no-op.
func (u *SyncUseCase) InvalidateBills(ctx context.Context) (CycleReport, error) {
	rep := u.newCycle("invalidate")
	deleted, err := u.bills.DeletedBills(ctx)
	if err != nil {
		return u.finishCycle(rep, err)
	}
	log.Printf("[sync][invalidate] start bills=%d", len(deleted))

	for _, b := range deleted {
		if err := ctx.Err(); err != nil {
			return u.finishCycle(rep, err)
		}
		u.invalidateOne(ctx, b, &rep)
	}
	return u.finishCycle(rep, nil)
}

func (u *SyncUseCase) invalidateOne(ctx context.Context, b entities.LedgerBill, rep *CycleReport) {
	billID := u.prefixed(b.BillID)
	remote, err := u.gateway.FetchBill(ctx, billID)
	if err != nil {
		log.Printf("[sync][invalidate] fetch failed bill_id=%s err=%v", billID, err)
		rep.add(b.BillID, ItemRemoteError, err.Error())
		return
	}
	if remote.Empty() {
		rep.add(b.BillID, ItemAbsent, "")
		return
	}

	update := interfaces.GatewayBillUpdate{
		BillID:      remote.BillID,
		BillDesc:    invalidateDesc,
		Reason:      invalidateReason,
		AlreadyPaid: true,
		AmountDue:   roundedFloat(remote.AmountDue),
		DueDate:     u.today(),
	}
	if err := u.gateway.UpdateBill(ctx, update); err != nil {
		log.Printf("[sync][invalidate] update failed bill_id=%s err=%v", remote.BillID, err)
		rep.add(b.BillID, ItemRemoteError, err.Error())
		return
	}
	log.Printf("[sync][invalidate] retracted bill_id=%s", remote.BillID)
	rep.add(b.BillID, ItemInvalidated, "")
}

func (u *SyncUseCase) newCycle(name string) CycleReport {
	return CycleReport{Cycle: name, Started: u.now().UTC()}
}

func (u *SyncUseCase) finishCycle(rep CycleReport, err error) (CycleReport, error) {
	rep.Finished = u.now().UTC()
	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultError
	}
	metrics.ObserveCycle(rep.Cycle, result, rep.Finished.Sub(rep.Started))
	for _, o := range rep.Outcomes {
		metrics.CountItem(rep.Cycle, string(o.Status))
	}
	return rep, err
}

func (u *SyncUseCase) prefixed(billID string) string {
	return u.town + "-" + billID
}

func (u *SyncUseCase) today() string {
	return u.now().Format(dateLayout)
}

func needsAmountUpdate(ledger, gateway decimal.Decimal) bool {
	return ledger.Round(2).Sub(gateway.Round(2)).Abs().GreaterThanOrEqual(amountTolerance)
}

func roundedFloat(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
