package response

import (
	"time"

	"billbridge/internal/domain/entities"
	"billbridge/internal/usecase"
)

// HealthResponse reports process liveness plus the Ledger session state.
type HealthResponse struct {
	Status        string `json:"status"`
	LedgerState   string `json:"ledger_state"`
	LedgerUser    string `json:"ledger_user,omitempty"`
	PaymentCenter bool   `json:"payment_center_loaded"`
}

func FromHealth(state entities.SessionState, session entities.Session) HealthResponse {
	return HealthResponse{
		Status:        "ok",
		LedgerState:   string(state),
		LedgerUser:    session.Username,
		PaymentCenter: len(session.PaymentCenter) > 0,
	}
}

// CycleResponse summarizes one cycle of a sync run. Only problem outcomes
// are listed item by item; the rest are counted.
type CycleResponse struct {
	Cycle    string                `json:"cycle"`
	Started  time.Time             `json:"started"`
	Finished time.Time             `json:"finished"`
	Counts   map[string]int        `json:"counts"`
	Issues   []usecase.ItemOutcome `json:"issues,omitempty"`
}

// RunReportResponse is the JSON shape of a finished sync run.
type RunReportResponse struct {
	RunID    string          `json:"run_id"`
	Started  time.Time       `json:"started"`
	Finished time.Time       `json:"finished"`
	Cycles   []CycleResponse `json:"cycles"`
	Error    string          `json:"error,omitempty"`
}

func FromRunReport(rep usecase.RunReport) RunReportResponse {
	out := RunReportResponse{
		RunID:    rep.RunID,
		Started:  rep.Started,
		Finished: rep.Finished,
		Error:    rep.Error,
	}
	for _, c := range rep.Cycles {
		out.Cycles = append(out.Cycles, fromCycle(c))
	}
	return out
}

func fromCycle(c usecase.CycleReport) CycleResponse {
	resp := CycleResponse{
		Cycle:    c.Cycle,
		Started:  c.Started,
		Finished: c.Finished,
		Counts:   map[string]int{},
	}
	for _, o := range c.Outcomes {
		resp.Counts[string(o.Status)]++
		switch o.Status {
		case usecase.ItemMalformed, usecase.ItemMismatch, usecase.ItemRemoteError, usecase.ItemUnresolved:
			resp.Issues = append(resp.Issues, o)
		}
	}
	return resp
}
