package infer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranspose(t *testing.T) {
	rows := [][]string{
		{"1", "a"},
		{"2", "b"},
		{"3"}, // short row skipped in column 2
	}
	cols := Transpose(rows)
	require.Len(t, cols, 2)
	assert.Equal(t, []string{"1", "2", "3"}, cols[0])
	assert.Equal(t, []string{"a", "b"}, cols[1])

	assert.Nil(t, Transpose(nil))
}

func TestInferColumnsParallel(t *testing.T) {
	e := NewDefaultEngine()
	columns := [][]string{
		{"1", "2", "x"},
		{"yes", "no", "true"},
		{},
	}

	infos, err := e.InferColumnsParallel(context.Background(), columns, Options{SampleSize: 5})
	require.NoError(t, err)
	require.Len(t, infos, 3)

	assert.Equal(t, 2, infos[0].Count("int"))
	assert.Equal(t, 1, infos[0].Count(TypeUnknown))
	assert.Equal(t, 3, infos[1].Count("bool"))
	assert.Nil(t, infos[2]) // empty column has no distribution
}

func TestInferColumnsParallelMatchesSequential(t *testing.T) {
	e := NewDefaultEngine()
	rows := [][]string{
		{"1", "3.5", "yes"},
		{"2", "4.5", "no"},
		{"3", "x", "maybe"},
	}

	sequential := e.InferMatrixSlice(rows, Options{})
	parallel, err := e.InferColumnsParallel(context.Background(), Transpose(rows), Options{})
	require.NoError(t, err)
	require.Len(t, parallel, len(sequential))

	for j := range sequential {
		assert.Equal(t, sequential[j].MostCommon(0), parallel[j].MostCommon(0), "column %d", j)
		assert.Equal(t, sequential[j].Total(), parallel[j].Total(), "column %d", j)
	}
}

func TestInferColumnsParallelCancelled(t *testing.T) {
	e := NewDefaultEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.InferColumnsParallel(ctx, [][]string{{"1"}, {"2"}}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
