// Package pkg is a package that provides utilities for goldrun.
package pkg

import (
	"fmt"
	"log/slog"
	"sync"
)

// Slots is a fixed-size, index-addressed collection of items of type
// T. Parallel workers fill slots by their discovery index so the
// merged view keeps original order regardless of completion order.
type Slots[T any] struct {
	mu    sync.Mutex
	items []*T
}

// NewSlots creates a Slots collection with the given capacity.
func NewSlots[T any](size int) *Slots[T] {
	return &Slots[T]{items: make([]*T, size)}
}

// Put stores item at index. Filling the same slot twice is an error;
// a slot is written exactly once by the worker that owns its index.
func (s *Slots[T]) Put(index int, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.items) {
		slog.Warn("slot index out of bounds", "index", index, "size", len(s.items))
		return fmt.Errorf("slot index %d out of bounds (size %d)", index, len(s.items))
	}

	if s.items[index] != nil {
		return fmt.Errorf("slot %d already filled", index)
	}

	s.items[index] = &item
	slog.Debug("filled slot", "index", index)

	return nil
}

// Filled returns the stored items in index order, skipping slots that
// were never filled.
func (s *Slots[T]) Filled() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]T, 0, len(s.items))

	for _, item := range s.items {
		if item != nil {
			out = append(out, *item)
		}
	}

	return out
}

// Len returns the number of filled slots.
func (s *Slots[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0

	for _, item := range s.items {
		if item != nil {
			n++
		}
	}

	return n
}

// List is an append-only collection of items of type T that is safe
// for concurrent appends.
type List[T any] struct {
	mu    sync.Mutex
	items []T
}

// Append adds an item to the end of the list.
func (l *List[T]) Append(item T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = append(l.items, item)
}

// Items returns a copy of the collected items in append order.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]T, len(l.items))
	copy(out, l.items)

	return out
}
