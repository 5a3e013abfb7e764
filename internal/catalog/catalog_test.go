package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/chrisdamba/foodadmin/internal/database"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	queries := List()
	require.Len(t, queries, 27)

	seen := map[string]bool{}
	groups := map[string]int{}
	for _, q := range queries {
		assert.False(t, seen[q.ID], "duplicate id %s", q.ID)
		seen[q.ID] = true
		groups[q.Group]++

		assert.NotEmpty(t, q.Title, q.ID)
		assert.True(t, strings.HasPrefix(strings.TrimSpace(q.SQL), "SELECT"), "%s is not a SELECT", q.ID)
		assert.NotContains(t, q.SQL, ";", q.ID)
	}
	assert.Equal(t, 20, groups[GroupDashboard])
	assert.Equal(t, 7, groups[GroupInsight])
}

func TestListReturnsCopy(t *testing.T) {
	queries := List()
	queries[0].ID = "changed"
	_, ok := Lookup("changed")
	assert.False(t, ok)
	assert.Equal(t, "total_customers", List()[0].ID)
}

func TestLookup(t *testing.T) {
	q, ok := Lookup("feedback_by_payment")
	require.True(t, ok)
	assert.Equal(t, GroupInsight, q.Group)
	assert.Contains(t, q.SQL, "payment_mode")

	_, ok = Lookup("drop_everything")
	assert.False(t, ok)
}

func TestRunUnknownQuery(t *testing.T) {
	_, err := New(nil).Run(context.Background(), "no_such_query")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestNormalize(t *testing.T) {
	var n pgtype.Numeric
	require.NoError(t, n.Scan("4.25"))
	assert.Equal(t, 4.25, Normalize(n))
	assert.Nil(t, Normalize(pgtype.Numeric{}))

	assert.Equal(t, int64(3), Normalize(int32(3)))
	assert.Equal(t, int64(3), Normalize(int16(3)))
	assert.Equal(t, float64(1.5), Normalize(float32(1.5)))
	assert.Equal(t, "Cash", Normalize("Cash"))
	assert.Equal(t,
		"00112233-4455-6677-8899-aabbccddeeff",
		Normalize([16]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}),
	)
}
