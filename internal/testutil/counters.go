package testutil

import (
	"context"
	"sync"

	"github.com/xyz-asif/charityhub/internal/features/sequence"
)

// Counters is an in-memory sequence.CounterStore.
type Counters struct {
	mu   sync.Mutex
	seqs map[string]int64
}

func NewCounters() *Counters {
	return &Counters{seqs: map[string]int64{}}
}

func (c *Counters) Next(_ context.Context, kind sequence.Kind, year int) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := sequence.CounterKey(kind, year)
	c.seqs[key]++
	return c.seqs[key], nil
}

func (c *Counters) Raise(_ context.Context, kind sequence.Kind, year int, floor int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := sequence.CounterKey(kind, year)
	if c.seqs[key] < floor {
		c.seqs[key] = floor
	}
	return nil
}

// Set moves a counter, e.g. behind numbers that already exist
func (c *Counters) Set(kind sequence.Kind, year int, n int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seqs[sequence.CounterKey(kind, year)] = n
}

// Generator returns a sequence generator over c
func (c *Counters) Generator() *sequence.Generator {
	return sequence.NewGenerator(c)
}
