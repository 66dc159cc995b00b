package usecase_test

import (
	"context"
	goSync "sync"
	"sync/atomic"
	"testing"
	"time"

	"trello-sheets-sync/internal/sync/usecase"
)

// trackingSheets counts runs that are between summary reset and flush.
type trackingSheets struct {
	*memSheets
	running   atomic.Int32
	maxActive atomic.Int32
}

func (s *trackingSheets) ResetSummarySheet(ctx context.Context, name string) error {
	n := s.running.Add(1)
	for {
		m := s.maxActive.Load()
		if n <= m || s.maxActive.CompareAndSwap(m, n) {
			break
		}
	}
	time.Sleep(time.Millisecond)
	return s.memSheets.ResetSummarySheet(ctx, name)
}

func (s *trackingSheets) Flush(ctx context.Context) error {
	s.running.Add(-1)
	return s.memSheets.Flush(ctx)
}

func TestConcurrentRunsAreSerialized(t *testing.T) {
	sheets := &trackingSheets{memSheets: newMemSheets("Trello")}
	uc := usecase.New(&mockLogger{}, scenarioRepo(), sheets, nil, usecase.Options{Username: "jdoe"})

	var wg goSync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.SyncSummary(context.Background()); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("unexpected error: %v", err)
	}
	if got := sheets.maxActive.Load(); got != 1 {
		t.Errorf("expected runs to never overlap, saw %d at once", got)
	}
	if sheets.flushes != 8 {
		t.Errorf("expected 8 flushes, got %d", sheets.flushes)
	}
	if rows := sheets.summary["Trello"]; len(rows) != 2 {
		t.Errorf("expected header + 1 row after the last run, got %d rows", len(rows))
	}
}
