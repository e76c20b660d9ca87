// Package testutil provides deterministic helpers for tests.
package testutil

import (
	"fmt"
	"sync"
)

// SeqGenerator produces sequential ids ("case-0001", "case-0002", ...)
// for deterministic builds in tests. Unlike a fixed list it never
// exhausts, and it can be reset for test reuse so the same scenario
// produces identical ids every run.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex.
type SeqGenerator struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewSeqGenerator creates a generator with the given id prefix.
//
// The first call to Generate() returns "<prefix>-0001".
func NewSeqGenerator(prefix string) *SeqGenerator {
	return &SeqGenerator{prefix: prefix}
}

// Generate returns the next sequential id.
func (g *SeqGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%04d", g.prefix, g.n)
}

// Reset restarts the sequence. After Reset(), the next Generate()
// returns "<prefix>-0001" again.
func (g *SeqGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n = 0
}
