package infer

import (
	"iter"
	"slices"

	"coltype/domain/convert"
)

// Options configures one inference pass.
type Options struct {
	// Limit caps how many tokens (series) or rows (matrix) are processed.
	// Zero or negative means no limit.
	Limit int
	// SampleSize bounds each type's retained sample. Zero selects
	// DefaultSampleSize; negative removes the bound.
	SampleSize int
}

func (o Options) sampleSize() int {
	if o.SampleSize == 0 {
		return DefaultSampleSize
	}
	return o.SampleSize
}

// Engine drives an ordered converter registry across single tokens, series
// and matrices. It holds no state between calls; every pass starts from the
// beginning of its input. The registry must not be mutated while a pass is
// running.
type Engine struct {
	registry *convert.Registry
}

// NewEngine creates an engine over the given registry
func NewEngine(registry *convert.Registry) *Engine {
	return &Engine{registry: registry}
}

// NewDefaultEngine creates an engine over the built-in converter set
func NewDefaultEngine() *Engine {
	return NewEngine(convert.NewDefaultRegistry())
}

// Registry exposes the engine's registry for host configuration
func (e *Engine) Registry() *convert.Registry {
	return e.registry
}

// Convert resolves a single token through the ordered converter trial
func (e *Engine) Convert(token string) convert.Value {
	v, _ := e.registry.Resolve(token)
	return v
}

// ConvertTyped resolves a single token against one named converter only.
// An unknown type name is a configuration error; a parse failure is not.
func (e *Engine) ConvertTyped(token, typeName string) (convert.Value, error) {
	v, _, err := e.registry.ResolveTyped(token, typeName)
	return v, err
}

// Infer returns the type name the ordered trial assigns to token, or
// TypeUnknown when nothing matches
func (e *Engine) Infer(token string) string {
	_, t := e.registry.Resolve(token)
	if t == "" {
		return TypeUnknown
	}
	return t
}

// ConvertSeries lazily converts a sequence of tokens. The result is a fresh
// pass each time it is ranged over; it is not resumable mid-stream.
func (e *Engine) ConvertSeries(tokens iter.Seq[string]) iter.Seq[convert.Value] {
	return func(yield func(convert.Value) bool) {
		for token := range tokens {
			if !yield(e.Convert(token)) {
				return
			}
		}
	}
}

// ConvertSeriesTyped lazily converts tokens against per-token type hints,
// pairing the two sequences and stopping at the shorter one. Unknown hint
// names pass the token through untyped rather than failing the stream.
func (e *Engine) ConvertSeriesTyped(tokens iter.Seq[string], types iter.Seq[string]) iter.Seq[convert.Value] {
	return func(yield func(convert.Value) bool) {
		next, stop := iter.Pull(types)
		defer stop()
		for token := range tokens {
			typeName, ok := next()
			if !ok {
				return
			}
			v, _, err := e.registry.ResolveTyped(token, typeName)
			if err != nil {
				v = convert.NewRawValue(token)
			}
			if !yield(v) {
				return
			}
		}
	}
}

// ConvertMatrix lazily converts row-oriented tokens, one value row per input
// row.
func (e *Engine) ConvertMatrix(rows iter.Seq[[]string]) iter.Seq[[]convert.Value] {
	return func(yield func([]convert.Value) bool) {
		for row := range rows {
			out := make([]convert.Value, len(row))
			for j, token := range row {
				out[j] = e.Convert(token)
			}
			if !yield(out) {
				return
			}
		}
	}
}

// InferSeries classifies each token and aggregates a type distribution.
// Returns nil when the series yields no tokens: there is no meaningful
// distribution over no data. The finalized total always equals the number
// of tokens actually processed, so per-type counts sum to it.
func (e *Engine) InferSeries(tokens iter.Seq[string], opts Options) *Types {
	info := NewTypes(opts.sampleSize())
	processed := 0

	for token := range tokens {
		if opts.Limit > 0 && processed >= opts.Limit {
			break
		}
		t := e.Infer(token)
		info.Incr(t, 1)
		info.Add(t, processed, token)
		processed++
	}

	if processed == 0 {
		return nil
	}
	info.SetTotal(processed)
	return info
}

// InferSeriesSlice is InferSeries over an in-memory series
func (e *Engine) InferSeriesSlice(tokens []string, opts Options) *Types {
	return e.InferSeries(slices.Values(tokens), opts)
}

// InferMatrix applies series inference independently per column position.
// The column set is fixed by the first row's width; cells beyond that width
// in later rows are ignored, and narrower rows simply contribute nothing to
// the missing columns. Limit bounds rows, not cells. Every column's total is
// finalized to the number of rows processed. A matrix with no rows returns
// nil.
func (e *Engine) InferMatrix(rows iter.Seq[[]string], opts Options) []*Types {
	var infos []*Types
	processed := 0

	for row := range rows {
		if opts.Limit > 0 && processed >= opts.Limit {
			break
		}
		if processed == 0 {
			infos = make([]*Types, len(row))
			for j := range infos {
				infos[j] = NewTypes(opts.sampleSize())
			}
		}
		for j, token := range row {
			if j >= len(infos) {
				break
			}
			t := e.Infer(token)
			infos[j].Incr(t, 1)
			infos[j].Add(t, processed, token)
		}
		processed++
	}

	if processed == 0 {
		return nil
	}
	for _, info := range infos {
		info.SetTotal(processed)
	}
	return infos
}

// InferMatrixSlice is InferMatrix over an in-memory row matrix
func (e *Engine) InferMatrixSlice(rows [][]string, opts Options) []*Types {
	return e.InferMatrix(slices.Values(rows), opts)
}
