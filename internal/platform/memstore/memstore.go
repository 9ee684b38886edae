// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package memstore provides the process-local record repository behind every
dashboard page.

Records live in memory, are seeded at start-up and vanish on restart. Each call
waits a configurable latency so that callers are written against an
asynchronous boundary and the store can later be swapped for a persistent one
without touching services.

# Semantics

  - Reads and writes exchange copies; callers never alias stored records.
  - Get, Update and Delete on an unknown id report ok=false, never an error.
  - Update is an atomic replace-by-id. Concurrent updates are last-write-wins.
  - Calls are not cancellable. A write issued by a request that has since gone
    away still lands.
  - Errors are limited to duplicate ids on Add and id-changing mutations on
    Update.
*/
package memstore

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	// ErrDuplicateID is returned by [Collection.Add] when the id is already stored.
	ErrDuplicateID = errors.New("memstore: duplicate record id")

	// ErrIDChanged is returned by [Collection.Update] when mutate rewrites the id.
	ErrIDChanged = errors.New("memstore: update must not change the record id")
)

// Record is the constraint for values stored in a [Collection].
type Record[E any] interface {
	RecordID() string
	Clone() E
}

// Cloner is the constraint for values stored in a [Singleton].
type Cloner[E any] interface {
	Clone() E
}

// # Collection

// Collection is an ordered set of records keyed by id. Insertion order is preserved.
type Collection[E Record[E]] struct {
	mu      sync.RWMutex
	records []E
	latency time.Duration
}

// NewCollection returns a collection seeded with the given records.
func NewCollection[E Record[E]](latency time.Duration, seed ...E) *Collection[E] {
	records := make([]E, 0, len(seed))
	for _, record := range seed {
		records = append(records, record.Clone())
	}
	return &Collection[E]{records: records, latency: latency}
}

// GetAll returns a copy of every record in insertion order.
func (c *Collection[E]) GetAll(ctx context.Context) ([]E, error) {
	wait(c.latency)

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]E, len(c.records))
	for i, record := range c.records {
		out[i] = record.Clone()
	}
	return out, nil
}

// Get returns the record with the given id.
func (c *Collection[E]) Get(ctx context.Context, id string) (E, bool, error) {
	var zero E
	wait(c.latency)

	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(id); i >= 0 {
		return c.records[i].Clone(), true, nil
	}
	return zero, false, nil
}

// Add appends record and returns the stored copy.
func (c *Collection[E]) Add(ctx context.Context, record E) (E, error) {
	var zero E
	wait(c.latency)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(record.RecordID()) >= 0 {
		return zero, ErrDuplicateID
	}
	c.records = append(c.records, record.Clone())
	return record.Clone(), nil
}

// Update applies mutate to a copy of the record and stores the result in place.
// A mutation that changes the id is rejected and nothing is stored.
func (c *Collection[E]) Update(ctx context.Context, id string, mutate func(*E)) (E, bool, error) {
	var zero E
	wait(c.latency)

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return zero, false, nil
	}

	next := c.records[i].Clone()
	mutate(&next)
	if next.RecordID() != id {
		return zero, false, ErrIDChanged
	}
	c.records[i] = next
	return next.Clone(), true, nil
}

// Delete removes the record with the given id.
func (c *Collection[E]) Delete(ctx context.Context, id string) (bool, error) {
	wait(c.latency)

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return false, nil
	}
	c.records = append(c.records[:i], c.records[i+1:]...)
	return true, nil
}

// indexOf must be called with mu held.
func (c *Collection[E]) indexOf(id string) int {
	for i, record := range c.records {
		if record.RecordID() == id {
			return i
		}
	}
	return -1
}

// # Singleton

// Singleton holds exactly one record, such as a per-user profile.
type Singleton[E Cloner[E]] struct {
	mu      sync.RWMutex
	record  E
	latency time.Duration
}

// NewSingleton returns a singleton holding initial.
func NewSingleton[E Cloner[E]](latency time.Duration, initial E) *Singleton[E] {
	return &Singleton[E]{record: initial.Clone(), latency: latency}
}

// Get returns a copy of the record.
func (s *Singleton[E]) Get(ctx context.Context) (E, error) {
	wait(s.latency)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record.Clone(), nil
}

// Update applies mutate to a copy of the record, stores and returns it.
func (s *Singleton[E]) Update(ctx context.Context, mutate func(*E)) (E, error) {
	wait(s.latency)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.record.Clone()
	mutate(&next)
	s.record = next
	return next.Clone(), nil
}

// wait simulates the repository round trip.
func wait(latency time.Duration) {
	if latency > 0 {
		time.Sleep(latency)
	}
}
