package export

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/chrisdamba/foodadmin/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferFields(t *testing.T) {
	res := catalog.Result{
		Columns: []string{"name", "Total Orders", "avg", "placed", "premium", "nothing", "name", "2024"},
		Rows: [][]any{
			{"Ana", int64(3), int64(4), time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), true, nil, "x", 1.5},
			{"Bo", int64(1), 3.5, nil, false, nil, int64(2), nil},
		},
	}
	fields := inferFields(res)

	assert.Equal(t, []field{
		{Name: "name", Kind: kindString},
		{Name: "total_orders", Kind: kindInt},
		{Name: "avg", Kind: kindDouble},
		{Name: "placed", Kind: kindString},
		{Name: "premium", Kind: kindBool},
		{Name: "nothing", Kind: kindString},
		{Name: "name_1", Kind: kindString},
		{Name: "c_2024", Kind: kindDouble},
	}, fields)
}

func TestEncodeRow(t *testing.T) {
	fields := []field{
		{Name: "placed", Kind: kindString},
		{Name: "avg", Kind: kindDouble},
		{Name: "mixed", Kind: kindString},
		{Name: "missing", Kind: kindInt},
	}
	rec, err := encodeRow(fields, []any{time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), float32(2.5), int64(7)})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(rec), &got))
	assert.Equal(t, "2024-01-02T03:04:05Z", got["placed"])
	assert.Equal(t, 2.5, got["avg"])
	assert.Equal(t, "7", got["mixed"])
	assert.Nil(t, got["missing"])
}

func TestSchemaJSON(t *testing.T) {
	s, err := schemaJSON([]field{{Name: "rating", Kind: kindDouble}, {Name: "status", Kind: kindString}})
	require.NoError(t, err)
	assert.Contains(t, s, "name=parquet_go_root")
	assert.Contains(t, s, "name=rating, type=DOUBLE, repetitiontype=OPTIONAL")
	assert.Contains(t, s, "name=status, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL")
}
