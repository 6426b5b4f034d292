package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"billbridge/internal/domain/entities"
	"billbridge/internal/usecase"
)

// fakeEngine counts RunAll calls and returns a scripted error.
type fakeEngine struct {
	runs int64
	err  error
}

func (f *fakeEngine) RunAll(ctx context.Context) (usecase.RunReport, error) {
	atomic.AddInt64(&f.runs, 1)
	return usecase.RunReport{}, f.err
}

func (f *fakeEngine) UploadBills(ctx context.Context) (usecase.CycleReport, error) {
	return usecase.CycleReport{}, nil
}

func (f *fakeEngine) InvalidateBills(ctx context.Context) (usecase.CycleReport, error) {
	return usecase.CycleReport{}, nil
}

func (f *fakeEngine) DownloadPayments(ctx context.Context) ([]entities.PaymentRecord, usecase.CycleReport, error) {
	return nil, usecase.CycleReport{}, nil
}

func (f *fakeEngine) PostBackPayments(ctx context.Context, records []entities.PaymentRecord) (usecase.CycleReport, error) {
	return usecase.CycleReport{}, nil
}

func (f *fakeEngine) LastReport() (usecase.RunReport, bool) {
	return usecase.RunReport{}, false
}

func (f *fakeEngine) count() int64 { return atomic.LoadInt64(&f.runs) }

func TestPoller_RunsImmediatelyThenOnTicks(t *testing.T) {
	engine := &fakeEngine{}
	p := NewPoller(engine, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Start(ctx)
	}()

	deadline := time.After(time.Second)
	for engine.count() < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 3 runs, got %d", engine.count())
		case <-time.After(time.Millisecond):
		}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("poller did not stop on cancel")
	}
}

func TestPoller_KeepsRunningAfterFailures(t *testing.T) {
	engine := &fakeEngine{err: errors.New("ledger unreachable")}
	p := NewPoller(engine, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Start(ctx)
	}()

	deadline := time.After(time.Second)
	for engine.count() < 2 {
		select {
		case <-deadline:
			t.Fatalf("failed runs must not stop the loop, got %d runs", engine.count())
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
	<-done
}

func TestPoller_NilEngineIsNoop(t *testing.T) {
	p := NewPoller(nil, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.Start(ctx) // must return without panicking
}
