package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/meugerenciamento/gerenciamento-api/internal/core/domain"
)

type recordingService struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (s *recordingService) Write(_ context.Context, e domain.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	return nil
}

func (s *recordingService) snapshot() []domain.AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.AuditEntry(nil), s.entries...)
}

func TestDispatcher_PreservesPerActorOrder(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(4, svc, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	targets := []string{"p1", "p2", "p3", "p4", "p5"}
	for _, target := range targets {
		d.Record(domain.AuditEntry{ActorID: "admin-1", Action: domain.ActionProductDelete, TargetID: target})
	}

	deadline := time.Now().Add(2 * time.Second)
	for len(svc.snapshot()) < len(targets) && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	d.Wait()

	got := svc.snapshot()
	if len(got) != len(targets) {
		t.Fatalf("expected %d entries, got %d", len(targets), len(got))
	}
	for i, e := range got {
		if e.TargetID != targets[i] {
			t.Errorf("entry %d: got target %q, want %q", i, e.TargetID, targets[i])
		}
	}
}

func TestDispatcher_DrainsOnShutdown(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(1, svc, zerolog.Nop())

	// Queue before any worker runs so the entries are pending at cancellation.
	for i := 0; i < 3; i++ {
		d.Record(domain.AuditEntry{ActorID: "admin-1", Action: domain.ActionUserDelete})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.Start(ctx)
	d.Wait()

	if n := len(svc.snapshot()); n != 3 {
		t.Fatalf("expected 3 drained entries, got %d", n)
	}
}

// blockingService holds each write until release is closed and records
// whether its context had been cancelled by then.
type blockingService struct {
	started   chan struct{}
	release   chan struct{}
	cancelled chan bool
}

func (s *blockingService) Write(ctx context.Context, _ domain.AuditEntry) error {
	s.started <- struct{}{}
	<-s.release
	s.cancelled <- ctx.Err() != nil
	return ctx.Err()
}

func TestDispatcher_InFlightWriteSurvivesShutdown(t *testing.T) {
	svc := &blockingService{
		started:   make(chan struct{}, 1),
		release:   make(chan struct{}),
		cancelled: make(chan bool, 1),
	}
	d := NewDispatcher(1, svc, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	d.Record(domain.AuditEntry{ActorID: "admin-1", Action: domain.ActionUserDelete})
	select {
	case <-svc.started:
	case <-time.After(2 * time.Second):
		t.Fatal("write never started")
	}

	cancel()
	close(svc.release)
	d.Wait()

	if <-svc.cancelled {
		t.Fatal("in-flight write saw a cancelled context")
	}
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(1, svc, zerolog.Nop())

	// No workers started, so the single queue fills up.
	for i := 0; i < channelBuffer+10; i++ {
		d.Record(domain.AuditEntry{ActorID: "admin-1", Action: domain.ActionProductCreate})
	}
	if got := len(d.workers[0]); got != channelBuffer {
		t.Fatalf("queue length = %d, want %d", got, channelBuffer)
	}
}

func TestShardIndex_Deterministic(t *testing.T) {
	d := NewDispatcher(8, &recordingService{}, zerolog.Nop())
	first := d.shardIndex("admin-42")
	for i := 0; i < 10; i++ {
		if d.shardIndex("admin-42") != first {
			t.Fatal("shard index changed between calls")
		}
	}
	if first < 0 || first >= 8 {
		t.Fatalf("shard index %d out of range", first)
	}
}

func TestNewDispatcher_DefaultWorkers(t *testing.T) {
	d := NewDispatcher(0, &recordingService{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Errorf("workers = %d, want %d", len(d.workers), defaultWorkers)
	}
}
