package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/chrisdamba/foodadmin/internal/catalog"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "NULL", FormatValue(nil))
	assert.Equal(t, "4.00", FormatValue(4.0))
	assert.Equal(t, "12", FormatValue(int64(12)))
	assert.Equal(t, "true", FormatValue(true))
	assert.Equal(t, "2024-03-01", FormatValue(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-01T12:30:00Z", FormatValue(time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)))
}

func TestRenderResult(t *testing.T) {
	out := RenderResult(catalog.Result{
		Columns: []string{"payment_mode", "avg_rating"},
		Rows:    [][]any{{"Cash", 4.0}, {"UPI", nil}},
	})
	assert.Contains(t, out, "payment_mode")
	assert.Contains(t, out, "Cash")
	assert.Contains(t, out, "4.00")
	assert.Contains(t, out, "NULL")
}

func TestEntitiesResult(t *testing.T) {
	phone := "555-0100"
	res, err := EntitiesResult(models.KindCustomer, []models.Entity{
		&models.Customer{ID: 1, Name: "Ana", Email: "ana@x.com", Phone: &phone, IsPremium: true},
	})
	require.NoError(t, err)

	require.Len(t, res.Columns, 10)
	assert.Equal(t, "customer_id", res.Columns[0])
	assert.Equal(t, "name", res.Columns[1])
	require.Len(t, res.Rows, 1)
	assert.EqualValues(t, 1, res.Rows[0][0])
	assert.Equal(t, "Ana", res.Rows[0][1])
	assert.Equal(t, "555-0100", res.Rows[0][3])

	_, err = EntitiesResult(models.Kind("menu_items"), nil)
	assert.Error(t, err)
}

func TestStatusLines(t *testing.T) {
	var buf bytes.Buffer
	old := Out
	Out = &buf
	defer func() { Out = old }()

	Success("Seeded %d %s", 20, "customers")
	Warning("No orders with id %d", 9)
	assert.Contains(t, buf.String(), "Seeded 20 customers")
	assert.Contains(t, buf.String(), "No orders with id 9")
}
