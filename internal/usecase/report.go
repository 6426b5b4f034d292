package usecase

import "time"

// ItemStatus classifies the outcome of one bill or payment within a cycle.
//
// Per-item failures never abort a cycle: they land here instead, with enough
// context to locate the record by hand.

type ItemStatus string

const (
	ItemCreated     ItemStatus = "created"      // new bill mirrored on the Gateway
	ItemUpdated     ItemStatus = "updated"      // amount pushed to the Gateway
	ItemCurrent     ItemStatus = "current"      // matched, delta below tolerance, no call issued
	ItemInvalidated ItemStatus = "invalidated"  // retracted on the Gateway (already_paid=true)
	ItemAbsent      ItemStatus = "absent"       // deleted bill never mirrored; nothing to retract
	ItemMalformed   ItemStatus = "malformed"    // unparseable/incomplete record, skipped
	ItemMismatch    ItemStatus = "mismatch"     // neither customer code nor contract no matched
	ItemRemoteError ItemStatus = "remote_error" // Gateway/Ledger rejected the write
	ItemUnresolved  ItemStatus = "unresolved"   // payment resolved to no settled bills; retried next run
	ItemParsed      ItemStatus = "parsed"       // payment row parsed into a record
	ItemPosted      ItemStatus = "posted"       // settlement accepted by the Ledger
)

// ItemOutcome is one record's result within a cycle.
type ItemOutcome struct {
	Ref    string     `json:"ref"`
	Status ItemStatus `json:"status"`
	Detail string     `json:"detail,omitempty"`
}

// CycleReport aggregates one cycle of a sync run.
type CycleReport struct {
	Cycle    string        `json:"cycle"`
	Started  time.Time     `json:"started"`
	Finished time.Time     `json:"finished"`
	Outcomes []ItemOutcome `json:"outcomes"`
}

func (r *CycleReport) add(ref string, status ItemStatus, detail string) {
	r.Outcomes = append(r.Outcomes, ItemOutcome{Ref: ref, Status: status, Detail: detail})
}

// Count returns how many outcomes carry the given status.
func (r CycleReport) Count(status ItemStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// RunReport is the record of one full sync run (all four cycles in order).
type RunReport struct {
	RunID    string        `json:"run_id"`
	Started  time.Time     `json:"started"`
	Finished time.Time     `json:"finished"`
	Cycles   []CycleReport `json:"cycles"`
	Error    string        `json:"error,omitempty"`
}
