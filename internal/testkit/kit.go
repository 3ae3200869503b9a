// Package testkit generates deterministic token series and row matrices for
// tests.
package testkit

import (
	"fmt"
	"math/rand"
)

// Generator produces synthetic raw tokens from a seeded RNG so tests are
// repeatable.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with a fixed seed
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// IntTokens returns n base-10 integer tokens
func (g *Generator) IntTokens(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%d", g.rng.Intn(10000))
	}
	return out
}

// FloatTokens returns n decimal tokens with two fraction digits
func (g *Generator) FloatTokens(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%.2f", g.rng.Float64()*1000)
	}
	return out
}

// BoolTokens returns n boolean tokens drawn from the accepted spellings
func (g *Generator) BoolTokens(n int) []string {
	spellings := []string{"true", "false", "t", "f", "yes", "no"}
	out := make([]string, n)
	for i := range out {
		out[i] = spellings[g.rng.Intn(len(spellings))]
	}
	return out
}

// WordTokens returns n tokens no built-in converter accepts
func (g *Generator) WordTokens(n int) []string {
	words := []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot"}
	out := make([]string, n)
	for i := range out {
		out[i] = words[g.rng.Intn(len(words))]
	}
	return out
}

// Matrix builds a row matrix with one column per supplied column slice. All
// columns must have equal length.
func Matrix(columns ...[]string) [][]string {
	if len(columns) == 0 {
		return nil
	}
	rows := make([][]string, len(columns[0]))
	for i := range rows {
		row := make([]string, len(columns))
		for j, col := range columns {
			row[j] = col[i]
		}
		rows[i] = row
	}
	return rows
}
