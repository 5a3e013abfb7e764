package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chrisdamba/foodadmin/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func update(t *testing.T, m PickerModel, msg tea.Msg) (PickerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(PickerModel)
	require.True(t, ok)
	return pm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestPickerSelectsWithEnter(t *testing.T) {
	m := NewPickerModel(catalog.List())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, isQuit(cmd))

	q, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, catalog.List()[1].ID, q.ID)
}

func TestPickerQuitWithoutSelection(t *testing.T) {
	m := NewPickerModel(catalog.List())
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.True(t, isQuit(cmd))

	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestPickerView(t *testing.T) {
	m := NewPickerModel(catalog.List())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Contains(t, m.View(), "Query catalog")
}

func TestQueryItem(t *testing.T) {
	q, ok := catalog.Lookup("feedback_by_payment")
	require.True(t, ok)
	item := queryItem{q: q}
	assert.Equal(t, q.Title, item.Title())
	assert.Contains(t, item.Description(), "feedback_by_payment")
	assert.Contains(t, item.FilterValue(), "feedback_by_payment")
}
