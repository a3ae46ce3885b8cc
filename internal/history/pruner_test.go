package history

import (
	"context"
	"testing"
	"time"
)

// sweepRepo signals each prune call on a channel.
type sweepRepo struct {
	calls chan time.Duration
}

func (s *sweepRepo) Record(context.Context, Entry) error {
	return nil
}

func (s *sweepRepo) GetByRole(context.Context, string, int) ([]Entry, error) {
	return nil, nil
}

func (s *sweepRepo) Prune(_ context.Context, olderThan time.Duration) (int64, error) {
	s.calls <- olderThan
	return 1, nil
}

func TestPruner_RunsSweeps(t *testing.T) {
	repo := &sweepRepo{calls: make(chan time.Duration, 64)}

	p := NewPruner(repo, 24*time.Hour)
	p.interval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	// One immediate sweep plus at least one periodic sweep.
	for i := 0; i < 2; i++ {
		select {
		case got := <-repo.calls:
			if got != 24*time.Hour {
				t.Errorf("Prune called with %v, want 24h", got)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("prune sweep did not run")
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on context cancel")
	}
}
