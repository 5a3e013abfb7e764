package output

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/chrisdamba/foodadmin/internal/catalog"
	"github.com/chrisdamba/foodadmin/internal/database"
	"github.com/chrisdamba/foodadmin/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// FormatValue renders one cell.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format(time.DateOnly)
		}
		return x.Format(time.RFC3339)
	case float64:
		return fmt.Sprintf("%.2f", x)
	case float32:
		return fmt.Sprintf("%.2f", x)
	case []byte:
		return string(x)
	}
	return fmt.Sprint(v)
}

// RenderResult draws res as a bordered table.
func RenderResult(res catalog.Result) string {
	rows := make([][]string, len(res.Rows))
	for i, r := range res.Rows {
		rows[i] = make([]string, len(r))
		for j, v := range r {
			rows[i][j] = FormatValue(v)
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(res.Columns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}

// EntitiesResult lays entities out as rows in table column order.
func EntitiesResult(kind models.Kind, entities []models.Entity) (catalog.Result, error) {
	t, err := database.TableFor(kind)
	if err != nil {
		return catalog.Result{}, err
	}
	cols := append([]string{t.PrimaryKey}, t.ColumnNames()...)

	res := catalog.Result{Columns: cols, Rows: [][]any{}}
	for _, e := range entities {
		b, err := json.Marshal(e)
		if err != nil {
			return catalog.Result{}, err
		}
		var m map[string]any
		if err := json.Unmarshal(b, &m); err != nil {
			return catalog.Result{}, err
		}
		row := make([]any, len(cols))
		for i, c := range cols {
			row[i] = m[c]
		}
		res.Rows = append(res.Rows, row)
	}
	return res, nil
}
