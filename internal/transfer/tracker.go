package transfer

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/ytget/optionkit/internal/clock"
	"github.com/ytget/optionkit/internal/model"
)

var (
	// ErrNotFound is returned for unknown transfer IDs.
	ErrNotFound = errors.New("transfer not found")
	// ErrDuplicate is returned when an unfinished transfer already targets a directory.
	ErrDuplicate = errors.New("transfer already exists")
	// ErrFinished is returned when updating a transfer that has already ended.
	ErrFinished = errors.New("transfer already finished")
)

// Tracker holds transfer records
type Tracker struct {
	transfers map[uuid.UUID]*model.Transfer
	mu        sync.RWMutex
	clock     clock.Clock
	log       *slog.Logger
	onUpdate  func(*model.Transfer) // callback for UI updates
}

// NewTracker creates an empty tracker. A nil clock uses wall time.
func NewTracker(c clock.Clock, log *slog.Logger) *Tracker {
	if c == nil {
		c = clock.Real()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Tracker{
		transfers: make(map[uuid.UUID]*model.Transfer),
		clock:     c,
		log:       log,
	}
}

// SetUpdateCallback sets the callback invoked with a snapshot after every change
func (t *Tracker) SetUpdateCallback(callback func(*model.Transfer)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onUpdate = callback
}

// Add registers a pending transfer into dest
func (t *Tracker) Add(name, dest string) (model.Transfer, error) {
	t.mu.Lock()
	for _, tr := range t.transfers {
		if tr.Dest == dest && !tr.Status.IsFinished() {
			t.mu.Unlock()
			return model.Transfer{}, fmt.Errorf("%w: %s", ErrDuplicate, dest)
		}
	}

	tr := &model.Transfer{
		ID:        uuid.New(),
		Name:      name,
		Dest:      dest,
		Status:    model.TaskStatusPending,
		StartedAt: t.clock.Now(),
	}
	t.transfers[tr.ID] = tr
	snap := *tr
	t.mu.Unlock()

	t.log.Info("transfer added", "transfer", tr.ID, "dir", dest)
	t.notifyUpdate(snap)
	return snap, nil
}

// Get returns a snapshot of a transfer by ID
func (t *Tracker) Get(id uuid.UUID) (model.Transfer, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	tr, ok := t.transfers[id]
	if !ok {
		return model.Transfer{}, false
	}
	return *tr, true
}

// All returns snapshots of all transfers, oldest first
func (t *Tracker) All() []model.Transfer {
	t.mu.RLock()
	out := make([]model.Transfer, 0, len(t.transfers))
	for _, tr := range t.transfers {
		out = append(out, *tr)
	}
	t.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out
}

// ActiveCount returns the number of transfers in an active state
func (t *Tracker) ActiveCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := 0
	for _, tr := range t.transfers {
		if tr.Status.IsActive() {
			n++
		}
	}
	return n
}

// SetStatus moves an unfinished transfer to status
func (t *Tracker) SetStatus(id uuid.UUID, status model.TaskStatus) error {
	return t.update(id, func(tr *model.Transfer) {
		tr.Status = status
	})
}

// Progress records received bytes and marks the transfer as transferring
func (t *Tracker) Progress(id uuid.UUID, done, total int64) error {
	return t.update(id, func(tr *model.Transfer) {
		if tr.Status != model.TaskStatusStopping {
			tr.Status = model.TaskStatusTransferring
		}
		tr.BytesDone = done
		tr.BytesTotal = total
	})
}

// Complete marks the transfer as finished successfully
func (t *Tracker) Complete(id uuid.UUID) error {
	return t.update(id, func(tr *model.Transfer) {
		tr.Status = model.TaskStatusCompleted
		if tr.BytesTotal > 0 {
			tr.BytesDone = tr.BytesTotal
		}
	})
}

// Fail marks the transfer as failed with err
func (t *Tracker) Fail(id uuid.UUID, err error) error {
	return t.update(id, func(tr *model.Transfer) {
		tr.Status = model.TaskStatusError
		if err != nil {
			tr.LastError = err.Error()
		}
	})
}

// Stop requests a stop. Pending transfers stop at once; active ones move to
// Stopping until the worker calls Stopped.
func (t *Tracker) Stop(id uuid.UUID) error {
	return t.update(id, func(tr *model.Transfer) {
		if tr.Status == model.TaskStatusPending {
			tr.Status = model.TaskStatusStopped
			return
		}
		tr.Status = model.TaskStatusStopping
	})
}

// Stopped confirms a requested stop
func (t *Tracker) Stopped(id uuid.UUID) error {
	return t.SetStatus(id, model.TaskStatusStopped)
}

// Remove deletes a finished transfer
func (t *Tracker) Remove(id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	tr, ok := t.transfers[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if !tr.Status.IsFinished() && tr.Status != model.TaskStatusPending {
		return fmt.Errorf("transfer is still %s: %s", tr.Status, id)
	}
	delete(t.transfers, id)
	return nil
}

func (t *Tracker) update(id uuid.UUID, apply func(*model.Transfer)) error {
	t.mu.Lock()
	tr, ok := t.transfers[id]
	if !ok {
		t.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if tr.Status.IsFinished() {
		t.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrFinished, id)
	}
	apply(tr)
	if tr.Status.IsFinished() {
		tr.FinishedAt = t.clock.Now()
	}
	snap := *tr
	t.mu.Unlock()

	t.log.Debug("transfer updated", "transfer", id, "status", snap.Status)
	t.notifyUpdate(snap)
	return nil
}

// notifyUpdate calls the update callback if set
func (t *Tracker) notifyUpdate(snap model.Transfer) {
	t.mu.RLock()
	cb := t.onUpdate
	t.mu.RUnlock()
	if cb != nil {
		cb(&snap)
	}
}
