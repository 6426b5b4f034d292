// Package worker drives the sync engine on a fixed interval.
package worker

import (
	"context"
	"errors"
	"log"
	"time"

	"billbridge/internal/usecase"
)

// Poller runs one sync per tick. A failed run is logged and retried on the
// next tick; the loop only stops when the context is cancelled.
type Poller struct {
	engine   usecase.ISyncUseCase
	interval time.Duration
}

func NewPoller(engine usecase.ISyncUseCase, interval time.Duration) *Poller {
	return &Poller{engine: engine, interval: interval}
}

// Start runs one sync immediately, then loops until ctx is cancelled.
func (p *Poller) Start(ctx context.Context) {
	if p == nil || p.engine == nil {
		return
	}
	log.Printf("[worker][poller] start interval=%s", p.interval)
	p.runOnce(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Printf("[worker][poller] stopping: %v", ctx.Err())
			return
		case <-ticker.C:
			p.runOnce(ctx)
		}
	}
}

func (p *Poller) runOnce(ctx context.Context) {
	_, err := p.engine.RunAll(ctx)
	switch {
	case err == nil:
	case errors.Is(err, usecase.ErrRunInProgress):
		log.Printf("[worker][poller] tick skipped, run still in progress")
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
	default:
		log.Printf("[worker][poller] run failed, retrying next tick err=%v", err)
	}
}
