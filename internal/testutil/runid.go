// Package testutil provides deterministic helpers for tests.
package testutil

import "fmt"

// FixedRunIDGenerator issues run IDs from a fixed sequence so recorded
// runs and their renderings stay stable across test executions.
type FixedRunIDGenerator struct {
	prefix string
	next   int
}

// NewFixedRunIDGenerator returns a generator issuing prefix-0001,
// prefix-0002, and so on.
func NewFixedRunIDGenerator(prefix string) *FixedRunIDGenerator {
	return &FixedRunIDGenerator{prefix: prefix}
}

// NewRunID implements store.RunIDGenerator.
func (g *FixedRunIDGenerator) NewRunID() string {
	g.next++
	return fmt.Sprintf("%s-%04d", g.prefix, g.next)
}
