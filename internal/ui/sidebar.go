package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ScreenSelectedMsg is sent when a menu entry is chosen in the sidebar.
type ScreenSelectedMsg struct {
	ID string
}

// MenuItem is one sidebar entry.
type MenuItem struct {
	ID    string
	Title string
}

// SidebarModel is the screen menu.
type SidebarModel struct {
	title    string
	items    []MenuItem
	cursor   int
	selected string
	focused  bool
	width    int
	height   int
}

// NewSidebarModel creates a new sidebar with the given entries.
func NewSidebarModel(title string, items []MenuItem) SidebarModel {
	return SidebarModel{
		title: title,
		items: items,
	}
}

// SetFocused sets the focus state.
func (m *SidebarModel) SetFocused(f bool) {
	m.focused = f
}

// Focused returns the focus state.
func (m SidebarModel) Focused() bool {
	return m.focused
}

// SetSize sets the sidebar dimensions.
func (m *SidebarModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Select marks id as the active entry and moves the cursor onto it.
func (m *SidebarModel) Select(id string) {
	for i, it := range m.items {
		if it.ID == id {
			m.cursor = i
			m.selected = id
			return
		}
	}
}

// Selected returns the active entry ID.
func (m SidebarModel) Selected() string {
	return m.selected
}

// Init satisfies the tea.Model interface.
func (m SidebarModel) Init() tea.Cmd {
	return nil
}

// Update handles key events.
func (m SidebarModel) Update(msg tea.Msg) (SidebarModel, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter":
			if len(m.items) > 0 {
				m.selected = m.items[m.cursor].ID
				id := m.selected
				return m, func() tea.Msg {
					return ScreenSelectedMsg{ID: id}
				}
			}
		}
	}
	return m, nil
}

// View renders the sidebar.
func (m SidebarModel) View() string {
	borderStyle := UnfocusedBorder
	if m.focused {
		borderStyle = FocusedBorder
	}

	innerW := max(m.width-2, 5)
	innerH := max(m.height-2, 1)

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(m.title))
	b.WriteString("\n")
	linesUsed := 1

	if len(m.items) == 0 {
		b.WriteString(DimText.Render("  Tidak ada menu"))
	}
	for i, it := range m.items {
		if linesUsed >= innerH {
			break
		}
		label := ansi.Truncate(it.Title, innerW-1, "…")
		var line string
		switch {
		case i == m.cursor && m.focused:
			line = SidebarCursorItem.Width(innerW).Render(label)
		case it.ID == m.selected:
			line = SidebarActiveItem.Width(innerW).Render(label)
		default:
			line = SidebarItem.Width(innerW).Render(label)
		}
		b.WriteString(line)
		if i < len(m.items)-1 {
			b.WriteString("\n")
		}
		linesUsed++
	}

	content := lipgloss.NewStyle().Width(innerW).Height(innerH).Render(b.String())
	return borderStyle.Width(innerW).Height(innerH).Render(content)
}
