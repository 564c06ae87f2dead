// Package snapshot holds the record list a view is currently rendering and guards it
// against out-of-order fetch completions.
package snapshot

import (
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Snapshot is an immutable record list produced by one fetch.
type Snapshot[T any] struct {
	ID         ulid.ULID
	Records    []T
	FetchedAt  time.Time
	Generation uint64
	Loaded     bool
}

// Ticket identifies a fetch started with Holder.Begin.
type Ticket uint64

// Holder keeps the latest committed snapshot. Each fetch takes a ticket before it
// starts; a result whose ticket has been superseded is dropped on Commit.
type Holder[T any] struct {
	mu      sync.RWMutex
	issued  uint64
	current Snapshot[T]
}

func NewHolder[T any]() *Holder[T] {
	return &Holder[T]{}
}

func (h *Holder[T]) Begin() Ticket {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.issued++
	return Ticket(h.issued)
}

// Commit replaces the snapshot wholesale with records. It reports false, leaving the
// current snapshot untouched, when a newer fetch began after ticket was issued.
func (h *Holder[T]) Commit(ticket Ticket, records []T, at time.Time) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if uint64(ticket) != h.issued {
		return false
	}

	if records == nil {
		records = []T{}
	}
	h.current = Snapshot[T]{
		ID:         ulid.MustNew(ulid.Timestamp(at), ulid.DefaultEntropy()),
		Records:    records,
		FetchedAt:  at,
		Generation: uint64(ticket),
		Loaded:     true,
	}
	return true
}

// Current returns the latest committed snapshot. Before the first commit it is an
// empty, unloaded snapshot.
func (h *Holder[T]) Current() Snapshot[T] {
	h.mu.RLock()
	defer h.mu.RUnlock()

	current := h.current
	if current.Records == nil {
		current.Records = []T{}
	}
	return current
}
