package history

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/openspim/spim-core/internal/property"
)

// fakeRepo records entries in memory and can be told to fail.
type fakeRepo struct {
	mu      sync.Mutex
	entries []Entry
	fail    bool
}

func (f *fakeRepo) Record(_ context.Context, entry Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("disk full")
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeRepo) GetByRole(context.Context, string, int) ([]Entry, error) {
	return nil, nil
}

func (f *fakeRepo) Prune(context.Context, time.Duration) (int64, error) {
	return 0, nil
}

func TestRecorder_RecordsChanges(t *testing.T) {
	repo := &fakeRepo{}
	recorder := NewRecorder(repo, SourceMQTT)

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	recorder.PropertyChanged(property.Change{
		Role:  "galvo_a",
		Label: "Scanner:AB:33",
		Key:   property.KeyBeamEnabled,
		Value: "Yes",
		At:    at,
	})

	if len(repo.entries) != 1 {
		t.Fatalf("recorded entries = %d, want 1", len(repo.entries))
	}

	entry := repo.entries[0]
	if entry.Role != "galvo_a" || entry.Key != "beam_enabled" || entry.Value != "Yes" {
		t.Errorf("entry = %+v", entry)
	}
	if entry.Source != SourceMQTT {
		t.Errorf("entry.Source = %q, want %q", entry.Source, SourceMQTT)
	}
	if !entry.ChangedAt.Equal(at) {
		t.Errorf("entry.ChangedAt = %v, want %v", entry.ChangedAt, at)
	}
}

func TestRecorder_PrefersChangeOrigin(t *testing.T) {
	repo := &fakeRepo{}
	recorder := NewRecorder(repo, SourceAPI)

	// A change tagged by an origin-carrying accessor view keeps its
	// tag; the recorder's source is only the fallback.
	recorder.PropertyChanged(property.Change{
		Role:   "galvo_a",
		Label:  "Scanner:AB:33",
		Key:    property.KeyBeamEnabled,
		Value:  "Yes",
		Origin: SourceMQTT,
	})

	if len(repo.entries) != 1 {
		t.Fatalf("recorded entries = %d, want 1", len(repo.entries))
	}
	if repo.entries[0].Source != SourceMQTT {
		t.Errorf("entry.Source = %q, want %q", repo.entries[0].Source, SourceMQTT)
	}
}

func TestRecorder_WriteFailureDoesNotPanic(t *testing.T) {
	repo := &fakeRepo{fail: true}
	recorder := NewRecorder(repo, SourceAPI)

	// Must swallow the error: history is best-effort.
	recorder.PropertyChanged(property.Change{
		Role:  "galvo_a",
		Key:   property.KeyBeamEnabled,
		Value: "Yes",
	})
}
