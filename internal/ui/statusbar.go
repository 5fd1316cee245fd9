package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"barber-dash/internal/session"
)

// Pane identifies the focused area of the dashboard.
type Pane int

const (
	PaneSidebar Pane = iota
	PaneTable
)

const successTTL = 3 * time.Second

// StatusBarModel is the context-aware status bar at the bottom.
type StatusBarModel struct {
	message     session.Message
	messageTime time.Time
	activePane  Pane
	searching   bool
	loading     bool
	store       string
	fetchTime   time.Duration
	rowCount    int
	width       int
}

// NewStatusBarModel creates a new status bar.
func NewStatusBarModel() StatusBarModel {
	return StatusBarModel{}
}

// SetWidth sets the status bar width.
func (m *StatusBarModel) SetWidth(w int) {
	m.width = w
}

// SetMessage shows a notice until it expires or is replaced.
func (m *StatusBarModel) SetMessage(msg session.Message) {
	m.message = msg
	m.messageTime = time.Now()
}

// Message returns the notice currently shown.
func (m StatusBarModel) Message() session.Message {
	return m.message
}

// SetActivePane sets which pane is focused.
func (m *StatusBarModel) SetActivePane(p Pane) {
	m.activePane = p
}

// SetSearching sets whether the search input owns the keyboard.
func (m *StatusBarModel) SetSearching(on bool) {
	m.searching = on
}

// SetLoading sets whether a fetch is in flight.
func (m *StatusBarModel) SetLoading(on bool) {
	m.loading = on
}

// SetStore sets the active store filter; empty means all stores.
func (m *StatusBarModel) SetStore(name string) {
	m.store = name
}

// SetFetchInfo updates the last fetch stats.
func (m *StatusBarModel) SetFetchInfo(elapsed time.Duration, rowCount int) {
	m.fetchTime = elapsed
	m.rowCount = rowCount
}

// ClearExpiredMessage clears success notices after a few seconds.
func (m *StatusBarModel) ClearExpiredMessage() {
	if m.message.Kind == session.Success && time.Since(m.messageTime) > successTTL {
		m.message = session.Message{}
	}
}

// View renders the status bar.
func (m StatusBarModel) View() string {
	hints := m.contextHints()

	store := m.store
	if store == "" {
		store = "Semua toko"
	}
	rightParts := []string{store}
	switch {
	case m.loading:
		rightParts = append(rightParts, "memuat…")
	case m.fetchTime > 0:
		rightParts = append(rightParts, fmt.Sprintf("%d baris dalam %s", m.rowCount, m.fetchTime.Round(time.Millisecond)))
	}
	right := strings.Join(rightParts, " | ")

	if m.message.Text != "" {
		var msgStyle lipgloss.Style
		switch m.message.Kind {
		case session.Error:
			msgStyle = StatusErrorStyle
		case session.Success:
			msgStyle = StatusSuccessStyle
		default:
			msgStyle = StatusBarStyle
		}
		hints = msgStyle.Render(m.message.Text)
	}

	w := max(m.width, 20)
	gap := max(w-lipgloss.Width(hints)-lipgloss.Width(right)-2, 1)

	line := hints + strings.Repeat(" ", gap) + right
	return StatusBarStyle.Width(w).Render(line)
}

func (m StatusBarModel) contextHints() string {
	if m.searching {
		return "Ketik untuk mencari | Enter Selesai | Esc Hapus"
	}

	switch m.activePane {
	case PaneSidebar:
		return "j/k Pilih | Enter Buka | Tab Tabel | ? Bantuan"
	case PaneTable:
		return "/ Cari | s Urutkan | j/k Gulir | [ ] Halaman | t Toko | ? Bantuan"
	default:
		return "Tab Pindah panel | q Keluar"
	}
}
