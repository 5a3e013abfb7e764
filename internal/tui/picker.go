package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chrisdamba/foodadmin/internal/catalog"
)

var (
	docStyle   = lipgloss.NewStyle().Margin(1, 2)
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#7C3AED")).Padding(0, 1)
)

type queryItem struct {
	q catalog.Query
}

func (i queryItem) Title() string       { return i.q.Title }
func (i queryItem) Description() string { return fmt.Sprintf("%s · %s", i.q.ID, i.q.Group) }
func (i queryItem) FilterValue() string { return i.q.ID + " " + i.q.Title }

// PickerModel lists the catalog and records the query chosen with enter.
type PickerModel struct {
	list     list.Model
	selected *catalog.Query
}

func NewPickerModel(queries []catalog.Query) PickerModel {
	items := make([]list.Item, len(queries))
	for i, q := range queries {
		items[i] = queryItem{q: q}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Query catalog"
	l.Styles.Title = titleStyle
	return PickerModel{list: l}
}

func (m PickerModel) Init() tea.Cmd {
	return nil
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(queryItem); ok {
				q := item.q
				m.selected = &q
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m PickerModel) View() string {
	return docStyle.Render(m.list.View())
}

// Selected returns the chosen query, if any.
func (m PickerModel) Selected() (catalog.Query, bool) {
	if m.selected == nil {
		return catalog.Query{}, false
	}
	return *m.selected, true
}

// PickQuery runs the picker full screen until a query is chosen or the user
// quits.
func PickQuery(queries []catalog.Query) (catalog.Query, bool, error) {
	p := tea.NewProgram(NewPickerModel(queries), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return catalog.Query{}, false, fmt.Errorf("query picker failed: %w", err)
	}
	q, ok := final.(PickerModel).Selected()
	return q, ok, nil
}
