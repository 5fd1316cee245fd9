package ui

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"barber-dash/internal/table"
)

const (
	maxCellWidth       = 40
	defaultEmptyText   = "Tidak ada data"
	glyphAsc, glyphDsc = "▲", "▼"
)

var lastTableID int64

func nextTableID() int {
	return int(atomic.AddInt64(&lastTableID, 1))
}

// sortIndicatorHideMsg hides the sort arrow. It only applies when id and
// seq still match the table, so a newer sort or Close cancels it.
type sortIndicatorHideMsg struct {
	id  int
	seq int
}

// DataTableModel renders a table.View and maps keys onto its operations.
// The search term comes from the caller via SetSearch. Pages taller or
// wider than the given size are shown through a row and column window.
type DataTableModel struct {
	id               int
	view             *table.View
	keys             TableKeyMap
	focused          bool
	width            int
	height           int
	cursorCol        int
	colOffset        int
	rowOffset        int
	footer           [][]string
	emptyText        string
	indicatorDelay   time.Duration
	indicatorVisible bool
	indicatorSeq     int
}

// NewDataTableModel creates a table over columns. delay is how long the
// sort arrow stays visible after a sort.
func NewDataTableModel(columns []table.Column, delay time.Duration, opts ...table.Option) DataTableModel {
	return DataTableModel{
		id:             nextTableID(),
		view:           table.New(columns, opts...),
		keys:           DefaultTableKeyMap(),
		emptyText:      defaultEmptyText,
		indicatorDelay: delay,
	}
}

// Engine exposes the underlying view state.
func (m DataTableModel) Engine() *table.View {
	return m.view
}

// KeyMap returns the table keybindings for help rendering.
func (m DataTableModel) KeyMap() TableKeyMap {
	return m.keys
}

// SetFocused sets focus state.
func (m *DataTableModel) SetFocused(f bool) {
	m.focused = f
}

// Focused returns focus state.
func (m DataTableModel) Focused() bool {
	return m.focused
}

// SetSize sets the outer dimensions, border included. Zero means
// unbounded.
func (m *DataTableModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.clampOffsets()
}

// SetRows replaces the dataset; view state is kept and the page clamped.
func (m *DataTableModel) SetRows(rows []table.Row) {
	m.view.SetRows(rows)
	m.clampOffsets()
}

// SetColumns replaces the column set.
func (m *DataTableModel) SetColumns(columns []table.Column) {
	m.view.SetColumns(columns)
	m.cursorCol = min(m.cursorCol, max(len(columns)-1, 0))
	m.colOffset = 0
	m.clampOffsets()
}

// SetSearch applies the caller's search term.
func (m *DataTableModel) SetSearch(term string) {
	m.view.SetSearch(term)
	m.rowOffset = 0
}

// SetFooter sets rows appended verbatim after the body, e.g. totals.
func (m *DataTableModel) SetFooter(rows [][]string) {
	m.footer = rows
	m.clampOffsets()
}

// SetEmptyText sets the placeholder shown when no rows match.
func (m *DataTableModel) SetEmptyText(s string) {
	m.emptyText = s
}

// IndicatorVisible reports whether the sort arrow is showing.
func (m DataTableModel) IndicatorVisible() bool {
	return m.indicatorVisible
}

// SortBy toggles sorting on key and shows the sort arrow. It returns the
// command that hides the arrow later, or nil when key is not sortable.
func (m *DataTableModel) SortBy(key string) tea.Cmd {
	if !m.view.ToggleSort(key) {
		return nil
	}
	m.rowOffset = 0
	m.indicatorSeq++
	m.indicatorVisible = true
	id, seq := m.id, m.indicatorSeq
	return tea.Tick(m.indicatorDelay, func(time.Time) tea.Msg {
		return sortIndicatorHideMsg{id: id, seq: seq}
	})
}

// Close hides the sort arrow and invalidates any pending hide.
func (m *DataTableModel) Close() {
	m.indicatorSeq++
	m.indicatorVisible = false
}

// Init satisfies tea.Model.
func (m DataTableModel) Init() tea.Cmd {
	return nil
}

// Update handles key events and indicator ticks.
func (m DataTableModel) Update(msg tea.Msg) (DataTableModel, tea.Cmd) {
	if msg, ok := msg.(sortIndicatorHideMsg); ok {
		if msg.id == m.id && msg.seq == m.indicatorSeq {
			m.indicatorVisible = false
		}
		return m, nil
	}

	if !m.focused {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	cols := m.view.Columns()
	switch {
	case key.Matches(keyMsg, m.keys.Left):
		if m.cursorCol > 0 {
			m.cursorCol--
		}
	case key.Matches(keyMsg, m.keys.Right):
		if m.cursorCol < len(cols)-1 {
			m.cursorCol++
		}
	case key.Matches(keyMsg, m.keys.Up):
		if m.rowOffset > 0 {
			m.rowOffset--
		}
	case key.Matches(keyMsg, m.keys.Down):
		m.rowOffset++
	case key.Matches(keyMsg, m.keys.Sort):
		if m.cursorCol < len(cols) {
			cmd := m.SortBy(cols[m.cursorCol].Key)
			return m, cmd
		}
	case key.Matches(keyMsg, m.keys.PrevPage):
		m.view.Prev()
		m.rowOffset = 0
	case key.Matches(keyMsg, m.keys.NextPage):
		m.view.Next()
		m.rowOffset = 0
	case key.Matches(keyMsg, m.keys.FirstPage):
		m.view.First()
		m.rowOffset = 0
	case key.Matches(keyMsg, m.keys.LastPage):
		m.view.Last()
		m.rowOffset = 0
	case key.Matches(keyMsg, m.keys.MorePerPage):
		m.view.CyclePageSize(1)
		m.rowOffset = 0
	case key.Matches(keyMsg, m.keys.LessPerPage):
		m.view.CyclePageSize(-1)
		m.rowOffset = 0
	}
	m.clampOffsets()
	return m, nil
}

// innerWidth is the width available inside the outer border, or 0 when
// the table is unbounded.
func (m DataTableModel) innerWidth() int {
	if m.width <= 2 {
		return 0
	}
	return m.width - 2
}

// visibleRowCount is how many body rows fit in the height. Besides the
// rows there are the outer border, the info line, the grid's top border,
// header and separator, its bottom border, the footer and the pager.
func (m DataTableModel) visibleRowCount() int {
	n := len(m.view.PageRows())
	if m.height <= 0 {
		return n
	}
	chrome := 7
	if n > 0 {
		chrome += len(m.footer)
	}
	if m.view.ShowPagination() {
		chrome++
	}
	return max(m.height-chrome, 1)
}

func (m *DataTableModel) clampOffsets() {
	maxOffset := max(len(m.view.PageRows())-m.visibleRowCount(), 0)
	m.rowOffset = min(max(m.rowOffset, 0), maxOffset)
	m.ensureColVisible()
}

// ensureColVisible scrolls the column window so the cursor column fits.
func (m *DataTableModel) ensureColVisible() {
	m.colOffset = min(m.colOffset, max(len(m.view.Columns())-1, 0))
	if m.cursorCol < m.colOffset {
		m.colOffset = m.cursorCol
	}
	iw := m.innerWidth()
	if iw == 0 {
		return
	}
	widths := m.layout().widths
	for m.colOffset < m.cursorCol && gridWidth(widths[m.colOffset:m.cursorCol+1]) > iw {
		m.colOffset++
	}
}

// visibleColumns returns the half-open column range shown from colOffset.
// At least one column is always shown.
func (m DataTableModel) visibleColumns(widths []int) (int, int) {
	start := m.colOffset
	if start >= len(widths) {
		return 0, len(widths)
	}
	iw := m.innerWidth()
	if iw == 0 {
		return start, len(widths)
	}
	end := start + 1
	for end < len(widths) && gridWidth(widths[start:end+1]) <= iw {
		end++
	}
	return start, end
}

// gridWidth is the rendered width of columns with the given cell widths:
// each cell plus one border between and around them.
func gridWidth(widths []int) int {
	w := len(widths) + 1
	for _, cw := range widths {
		w += cw
	}
	return w
}

// gridLayout is the text of the rows inside the current row window.
type gridLayout struct {
	headers []string
	body    [][]string
	footer  [][]string
	widths  []int
}

func (m DataTableModel) layout() gridLayout {
	cols := m.view.Columns()
	l := gridLayout{headers: make([]string, len(cols))}
	for i, c := range cols {
		l.headers[i] = m.headerLabel(c)
	}

	pageRows := m.view.PageRows()
	start := min(m.rowOffset, len(pageRows))
	end := min(start+m.visibleRowCount(), len(pageRows))
	for _, r := range pageRows[start:end] {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = fitCell(c.Display(r[c.Key]))
		}
		l.body = append(l.body, cells)
	}
	if len(l.body) > 0 {
		for _, f := range m.footer {
			cells := make([]string, len(cols))
			for i := range cells {
				if i < len(f) {
					cells[i] = fitCell(f[i])
				}
			}
			l.footer = append(l.footer, cells)
		}
	}

	// cell text plus one space of padding on each side
	l.widths = make([]int, len(cols))
	for i, h := range l.headers {
		l.widths[i] = ansi.StringWidth(h)
	}
	for _, rows := range [][][]string{l.body, l.footer} {
		for _, r := range rows {
			for i, cell := range r {
				l.widths[i] = max(l.widths[i], ansi.StringWidth(cell))
			}
		}
	}
	for i := range l.widths {
		l.widths[i] += 2
	}
	return l
}

// View renders the info line, grid and, when needed, the pager. Lines
// wider than the table are clipped, never wrapped.
func (m DataTableModel) View() string {
	m.clampOffsets()
	l := m.layout()
	first, last := m.visibleColumns(l.widths)

	var b strings.Builder
	b.WriteString(m.renderInfo(l, first, last))
	b.WriteString("\n")
	b.WriteString(m.renderGrid(l, first, last))
	if m.view.ShowPagination() {
		b.WriteString("\n")
		b.WriteString(m.renderPager())
	}

	iw := m.innerWidth()
	if iw == 0 {
		return b.String()
	}
	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, iw, "")
	}
	borderStyle := UnfocusedBorder
	if m.focused {
		borderStyle = FocusedBorder
	}
	return borderStyle.Width(iw).Render(strings.Join(lines, "\n"))
}

func (m DataTableModel) renderInfo(l gridLayout, first, last int) string {
	v := m.view
	var info string
	if v.Search() != "" {
		info = fmt.Sprintf("%d dari %d data cocok dengan %q", len(v.Filtered()), len(v.Rows()), v.Search())
	} else {
		info = fmt.Sprintf("%d data", len(v.Filtered()))
	}
	info += fmt.Sprintf(" · %d per halaman", v.PageSize())
	if n := len(v.PageRows()); len(l.body) < n {
		info += fmt.Sprintf(" · baris %d-%d dari %d", m.rowOffset+1, m.rowOffset+len(l.body), n)
	}
	if n := len(l.widths); last-first < n {
		info += fmt.Sprintf(" · kolom %d-%d dari %d", first+1, last, n)
	}
	return DimText.Render(info)
}

func (m DataTableModel) headerLabel(c table.Column) string {
	label := c.Label
	if label == "" {
		label = c.Key
	}
	if m.indicatorVisible && c.Key == m.view.SortKey() {
		glyph := glyphAsc
		if m.view.Direction() == table.Desc {
			glyph = glyphDsc
		}
		label += " " + glyph
	}
	return label
}

func (m DataTableModel) renderGrid(l gridLayout, first, last int) string {
	cols := m.view.Columns()
	window := func(cells []string) []string {
		return cells[first:last]
	}

	data := make([][]string, 0, len(l.body)+len(l.footer))
	for _, r := range l.body {
		data = append(data, window(r))
	}
	for _, r := range l.footer {
		data = append(data, window(r))
	}
	bodyRows := len(l.body)

	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(GridBorder).
		Headers(window(l.headers)...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			col += first
			switch {
			case row == ltable.HeaderRow:
				if !m.focused || col != m.cursorCol {
					return GridHeader
				}
				if col < len(cols) && cols[col].Sortable() {
					return GridHeaderSelected
				}
				return GridHeaderLocked
			case row >= bodyRows:
				return CellFooter
			case (row+m.rowOffset)%2 == 1:
				return CellStripe
			default:
				return CellNormal
			}
		})

	if bodyRows > 0 {
		return t.String()
	}

	grid := strings.TrimRight(t.BorderBottom(false).String(), "\n")
	w := lipgloss.Width(grid)
	return grid + "\n" + EmptyRow.Width(max(w-2, 0)).Render(m.emptyText)
}

func (m DataTableModel) renderPager() string {
	v := m.view
	control := func(label string, enabled bool) string {
		if enabled {
			return AccentText.Render(label)
		}
		return DimText.Render(label)
	}
	parts := []string{
		control("«", v.CanPrev()),
		control("‹", v.CanPrev()),
		HeaderStyle.Render(fmt.Sprintf("Halaman %d / %d", v.Page(), v.TotalPages())),
		control("›", v.CanNext()),
		control("»", v.CanNext()),
	}
	return strings.Join(parts, " ")
}

func fitCell(s string) string {
	return ansi.Truncate(sanitizeCell(s), maxCellWidth, "…")
}

func sanitizeCell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "↵")
	s = strings.ReplaceAll(s, "\n", "↵")
	s = strings.ReplaceAll(s, "\r", "↵")
	s = strings.ReplaceAll(s, "\t", " ")
	return s
}
