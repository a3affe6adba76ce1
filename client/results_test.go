package client

import (
	"testing"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringRecord(t *testing.T, values ...string) arrow.Record {
	t.Helper()
	schema := arrow.NewSchema([]arrow.Field{{Name: "greeting", Type: arrow.BinaryTypes.String}}, nil)
	bldr := array.NewRecordBuilder(memory.NewGoAllocator(), schema)
	defer bldr.Release()
	bldr.Field(0).(*array.StringBuilder).AppendValues(values, nil)
	return bldr.NewRecord()
}

func TestFirstValue_ReturnsFirstStringCell(t *testing.T) {
	val, err := firstValue([]arrow.Record{stringRecord(t, "hello", "world")})
	require.NoError(t, err)
	assert.Equal(t, "hello", val)
}

func TestFirstValue_NoBatchesIsAnalysisError(t *testing.T) {
	_, err := firstValue(nil)
	require.Error(t, err)
	var sparkErr *Error
	require.ErrorAs(t, err, &sparkErr)
	assert.Equal(t, KindAnalysis, sparkErr.Kind)
}

func TestTableFromBatches_ZeroBatchesIsAnalysisError(t *testing.T) {
	_, err := tableFromBatches(nil)
	require.Error(t, err)
	var sparkErr *Error
	require.ErrorAs(t, err, &sparkErr)
	assert.Equal(t, KindAnalysis, sparkErr.Kind)
}

func TestTableFromBatches_ConcatenatesInOrder(t *testing.T) {
	table, err := tableFromBatches([]arrow.Record{stringRecord(t, "a"), stringRecord(t, "b")})
	require.NoError(t, err)
	defer table.Release()

	assert.Equal(t, int64(2), table.NumRows())
	assert.Equal(t, int64(1), table.NumCols())
}
