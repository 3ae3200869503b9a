// Package infer aggregates per-type statistics over series and matrices of
// raw string tokens, using an ordered converter registry to classify each
// token.
package infer

import (
	"fmt"
	"sort"
	"strings"
)

// TypeUnknown is the bucket for tokens no converter matched.
const TypeUnknown = "unknown"

// DefaultSampleSize bounds the per-type sample when the caller does not set
// one. A negative sample size removes the bound entirely.
const DefaultSampleSize = 10

// SampleEntry records one sampled occurrence of a type: the position of the
// token within its series and the raw token itself.
type SampleEntry struct {
	Index int    `json:"index"`
	Value string `json:"value"`
}

// TypeInfo tracks the sampling and frequency of one type within a series.
// The count is unbounded; the sample is capped and deduplicated by token
// content, keeping the first occurrence of each distinct value.
type TypeInfo struct {
	Name   string        `json:"name"`
	Count  int           `json:"count"`
	Sample []SampleEntry `json:"sample"`

	size  int
	total int
	seen  map[string]struct{}
}

// NewTypeInfo creates a counter for the named type. size < 0 means an
// unbounded sample.
func NewTypeInfo(name string, size int) *TypeInfo {
	return &TypeInfo{
		Name: name,
		size: size,
		seen: make(map[string]struct{}),
	}
}

// Incr adds n to the running count, independent of sampling
func (ti *TypeInfo) Incr(n int) {
	ti.Count += n
}

// Add records (index, value) in the sample when capacity remains and the
// value is not already sampled
func (ti *TypeInfo) Add(index int, value string) {
	if ti.size >= 0 && len(ti.Sample) >= ti.size {
		return
	}
	if _, dup := ti.seen[value]; dup {
		return
	}
	ti.seen[value] = struct{}{}
	ti.Sample = append(ti.Sample, SampleEntry{Index: index, Value: value})
}

// Freq returns count/total, or 0 while the total is unset or zero
func (ti *TypeInfo) Freq() float64 {
	if ti.total <= 0 {
		return 0
	}
	return float64(ti.Count) / float64(ti.total)
}

func (ti *TypeInfo) String() string {
	return fmt.Sprintf("<TypeInfo: %s n=%d>", ti.Name, ti.Count)
}

// TypeCount pairs a type name with its occurrence count for ranking.
type TypeCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Types is the inferred type distribution of one series or column: a counter
// per observed type plus the series total, set once at the end of a pass.
type Types struct {
	size  int
	total int
	types map[string]*TypeInfo
	order []string
}

// NewTypes creates an empty distribution. size bounds each type's sample;
// negative means unbounded.
func NewTypes(size int) *Types {
	return &Types{
		size:  size,
		types: make(map[string]*TypeInfo),
	}
}

// get returns the counter for t, creating it on first occurrence. An empty
// type name maps to TypeUnknown.
func (ts *Types) get(t string) *TypeInfo {
	if t == "" {
		t = TypeUnknown
	}
	ti, ok := ts.types[t]
	if !ok {
		ti = NewTypeInfo(t, ts.size)
		ti.total = ts.total
		ts.types[t] = ti
		ts.order = append(ts.order, t)
	}
	return ti
}

// Incr adds n occurrences of type t
func (ts *Types) Incr(t string, n int) {
	ts.get(t).Incr(n)
}

// Add records a sampled occurrence of type t
func (ts *Types) Add(t string, index int, value string) {
	ts.get(t).Add(index, value)
}

// SetTotal finalizes the distribution, enabling frequency queries
func (ts *Types) SetTotal(total int) {
	ts.total = total
	for _, ti := range ts.types {
		ti.total = total
	}
}

// Total returns the finalized series length, 0 before finalization
func (ts *Types) Total() int {
	return ts.total
}

// Get returns the counter for the named type, or nil when never observed
func (ts *Types) Get(name string) *TypeInfo {
	return ts.types[name]
}

// Count returns the occurrence count of the named type
func (ts *Types) Count(name string) int {
	if ti := ts.types[name]; ti != nil {
		return ti.Count
	}
	return 0
}

// Freq returns the relative frequency of the named type
func (ts *Types) Freq(name string) float64 {
	if ti := ts.types[name]; ti != nil {
		return ti.Freq()
	}
	return 0
}

// Names returns the observed type names in discovery order
func (ts *Types) Names() []string {
	out := make([]string, len(ts.order))
	copy(out, ts.order)
	return out
}

// MostCommon ranks observed types by descending count; ties keep discovery
// order. n > 0 truncates the result, otherwise all types are returned.
func (ts *Types) MostCommon(n int) []TypeCount {
	out := make([]TypeCount, 0, len(ts.order))
	for _, name := range ts.order {
		out = append(out, TypeCount{Name: name, Count: ts.types[name].Count})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

func (ts *Types) String() string {
	parts := make([]string, 0, len(ts.order))
	for _, tc := range ts.MostCommon(0) {
		parts = append(parts, fmt.Sprintf("%s=%d", tc.Name, tc.Count))
	}
	return fmt.Sprintf("<Types: %s>", strings.Join(parts, ", "))
}
