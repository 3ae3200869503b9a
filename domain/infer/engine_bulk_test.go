package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coltype/internal/testkit"
)

func TestInferMatrixBulk(t *testing.T) {
	gen := testkit.NewGenerator(42)
	rows := testkit.Matrix(
		gen.IntTokens(200),
		gen.FloatTokens(200),
		gen.BoolTokens(200),
		gen.WordTokens(200),
	)

	e := NewDefaultEngine()
	infos := e.InferMatrixSlice(rows, Options{SampleSize: 10})
	require.Len(t, infos, 4)

	wantTop := []string{"int", "float", "bool", TypeUnknown}
	for j, info := range infos {
		ranked := info.MostCommon(1)
		require.NotEmpty(t, ranked, "column %d", j)
		assert.Equal(t, wantTop[j], ranked[0].Name, "column %d", j)
		assert.Equal(t, 200, info.Total(), "column %d", j)
		assert.LessOrEqual(t, len(info.Get(ranked[0].Name).Sample), 10, "column %d", j)
	}
}

func TestInferSeriesBulkUnboundedSample(t *testing.T) {
	gen := testkit.NewGenerator(7)
	tokens := gen.IntTokens(500)

	e := NewDefaultEngine()
	info := e.InferSeriesSlice(tokens, Options{SampleSize: -1})
	require.NotNil(t, info)

	ti := info.Get("int")
	require.NotNil(t, ti)
	// Unbounded sampling still dedups, so the sample holds every distinct
	// token, not every token.
	assert.Greater(t, len(ti.Sample), DefaultSampleSize)
	assert.LessOrEqual(t, len(ti.Sample), 500)
}
