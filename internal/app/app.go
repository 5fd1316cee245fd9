package app

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"barber-dash/internal/config"
	"barber-dash/internal/dashboard"
	"barber-dash/internal/session"
	"barber-dash/internal/table"
	"barber-dash/internal/ui"
)

const sidebarWidth = 26

// Reconnecter is implemented by sources that can re-establish a dropped
// connection before a refresh.
type Reconnecter interface {
	IsConnected() bool
	Reconnect() error
}

// tickMsg clears expired notices and drains queued ones.
type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{}
	})
}

// screenDataMsg carries the rows of one fetch back to the app.
type screenDataMsg struct {
	seq      int
	screenID string
	rows     []table.Row
	elapsed  time.Duration
	err      error
}

// storesMsg carries the store list used by the store filter.
type storesMsg struct {
	stores []string
	err    error
}

// Model is the root Bubble Tea model.
type Model struct {
	activePane ui.Pane
	sidebar    ui.SidebarModel
	table      ui.DataTableModel
	statusbar  ui.StatusBarModel
	search     textinput.Model
	searching  bool
	help       help.Model
	showHelp   bool
	keys       KeyMap

	src     dashboard.Source
	session *session.Store
	cfg     *config.Config
	log     *zap.Logger

	screen   dashboard.Screen
	stores   []string
	storeIdx int // -1 means all stores
	loadSeq  int
	initCmd  tea.Cmd

	width  int
	height int
}

// NewModel creates the root app model showing the first screen.
func NewModel(src dashboard.Source, sess *session.Store, cfg *config.Config, log *zap.Logger) Model {
	screens := dashboard.Screens()
	items := make([]ui.MenuItem, len(screens))
	for i, s := range screens {
		items[i] = ui.MenuItem{ID: s.ID, Title: s.Title}
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "cari…"
	search.PromptStyle = ui.SearchLabel
	search.TextStyle = ui.SearchInput

	m := Model{
		activePane: ui.PaneSidebar,
		sidebar:    ui.NewSidebarModel("Menu", items),
		statusbar:  ui.NewStatusBarModel(),
		search:     search,
		help:       help.New(),
		keys:       DefaultKeyMap(),
		src:        src,
		session:    sess,
		cfg:        cfg,
		log:        log,
		storeIdx:   -1,
	}
	m.sidebar.SetFocused(true)
	m.statusbar.SetActivePane(ui.PaneSidebar)
	if len(screens) > 0 {
		m.initCmd = m.openScreen(screens[0])
	}
	return m
}

// Init loads the store list and the first screen.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.loadStores(), m.initCmd)
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case tickMsg:
		m.statusbar.ClearExpiredMessage()
		m.drainMessages()
		return m, tickCmd()

	case storesMsg:
		if msg.err != nil {
			m.log.Warn("list stores", zap.Error(msg.err))
			m.statusbar.SetMessage(session.Message{Kind: session.Error, Text: "Gagal memuat toko: " + msg.err.Error()})
			return m, nil
		}
		m.stores = msg.stores
		if m.storeIdx >= len(m.stores) {
			m.storeIdx = -1
			m.statusbar.SetStore("")
		}
		return m, nil

	case screenDataMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		m.statusbar.SetLoading(false)
		if msg.err != nil {
			m.log.Error("load screen", zap.String("screen", msg.screenID), zap.Error(msg.err))
			m.statusbar.SetMessage(session.Message{Kind: session.Error, Text: "Error: " + msg.err.Error()})
			return m, nil
		}
		m.log.Info("screen loaded",
			zap.String("screen", msg.screenID),
			zap.String("store", m.currentStore()),
			zap.Int("rows", len(msg.rows)),
			zap.Duration("elapsed", msg.elapsed))
		m.table.SetRows(msg.rows)
		m.refreshFooter()
		m.statusbar.SetFetchInfo(msg.elapsed, len(msg.rows))
		m.drainMessages()
		return m, nil

	case ui.ScreenSelectedMsg:
		s, err := dashboard.Lookup(msg.ID)
		if err != nil {
			m.statusbar.SetMessage(session.Message{Kind: session.Error, Text: err.Error()})
			return m, nil
		}
		cmd := m.openScreen(s)
		m.focus(ui.PaneTable)
		return m, cmd

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.table.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.SwitchPane):
			if m.activePane == ui.PaneSidebar {
				m.focus(ui.PaneTable)
			} else {
				m.focus(ui.PaneSidebar)
			}
			return m, nil
		case key.Matches(msg, m.keys.Search):
			m.searching = true
			m.statusbar.SetSearching(true)
			m.focus(ui.PaneTable)
			cmd := m.search.Focus()
			return m, cmd
		case key.Matches(msg, m.keys.Store):
			cmd := m.cycleStore()
			return m, cmd
		case key.Matches(msg, m.keys.Refresh):
			cmd := m.refresh()
			return m, cmd
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			return m, nil
		}
	}

	// Non-key messages (indicator ticks, cursor blink) reach every widget.
	var cmd tea.Cmd
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		var cmds []tea.Cmd
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
		if m.searching {
			m.search, cmd = m.search.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	switch m.activePane {
	case ui.PaneSidebar:
		m.sidebar, cmd = m.sidebar.Update(msg)
	case ui.PaneTable:
		m.table, cmd = m.table.Update(msg)
	}
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Clear):
		m.search.SetValue("")
		m.endSearch()
		return m, nil
	case key.Matches(msg, m.keys.EndSearch):
		m.endSearch()
		return m, nil
	case msg.String() == "ctrl+c":
		m.table.Close()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applySearch()
	return m, cmd
}

func (m *Model) endSearch() {
	m.searching = false
	m.search.Blur()
	m.statusbar.SetSearching(false)
	m.applySearch()
}

func (m *Model) applySearch() {
	m.table.SetSearch(m.search.Value())
	m.refreshFooter()
}

// refreshFooter recomputes totals over the rows matching the search.
func (m *Model) refreshFooter() {
	m.table.SetFooter(m.screen.Footer(m.table.Engine().Filtered()))
}

// openScreen replaces the table with a fresh one for s and fetches its rows.
func (m *Model) openScreen(s dashboard.Screen) tea.Cmd {
	m.table.Close()
	m.screen = s
	m.table = ui.NewDataTableModel(s.Columns, m.cfg.SortIndicatorDelay(),
		table.WithPageSizes(m.cfg.PageSizes...),
		table.WithPageSize(m.cfg.PageSize),
		table.WithLocale(m.cfg.LocaleTag()),
	)
	m.table.SetFocused(m.activePane == ui.PaneTable)
	m.recalcLayout()
	m.search.SetValue("")
	m.sidebar.Select(s.ID)
	m.log.Debug("open screen", zap.String("screen", s.ID))
	return m.fetch(false)
}

// fetch loads the current screen. Replies from earlier fetches are dropped.
// With reconnect set, a dropped connection is re-established first.
func (m *Model) fetch(reconnect bool) tea.Cmd {
	m.loadSeq++
	m.statusbar.SetLoading(true)

	seq := m.loadSeq
	src, s, sess := m.src, m.screen, m.session
	filter := dashboard.Filter{Store: m.currentStore()}
	timeout := m.cfg.QueryTimeout()

	return func() tea.Msg {
		if reconnect {
			if r, ok := src.(Reconnecter); ok && !r.IsConnected() {
				if err := r.Reconnect(); err != nil {
					return screenDataMsg{seq: seq, screenID: s.ID, err: fmt.Errorf("reconnect: %w", err)}
				}
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		res, err := dashboard.Load(ctx, src, s, filter)
		if err == nil && reconnect {
			sess.Flash(session.Message{Kind: session.Success, Text: fmt.Sprintf("%s diperbarui", s.Title)})
		}
		return screenDataMsg{
			seq:      seq,
			screenID: s.ID,
			rows:     res.Rows,
			elapsed:  res.Elapsed,
			err:      err,
		}
	}
}

func (m *Model) refresh() tea.Cmd {
	m.statusbar.SetMessage(session.Message{Kind: session.Info, Text: "Memuat ulang…"})
	return m.fetch(true)
}

func (m *Model) loadStores() tea.Cmd {
	src, timeout := m.src, m.cfg.QueryTimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		stores, err := src.Stores(ctx)
		return storesMsg{stores: stores, err: err}
	}
}

// cycleStore advances the store filter through all stores and back to
// "all". Only store-scoped screens are refetched.
func (m *Model) cycleStore() tea.Cmd {
	if len(m.stores) == 0 {
		m.statusbar.SetMessage(session.Message{Kind: session.Info, Text: "Belum ada data toko"})
		return nil
	}
	m.storeIdx++
	if m.storeIdx >= len(m.stores) {
		m.storeIdx = -1
	}
	m.statusbar.SetStore(m.currentStore())
	if !m.screen.ByStore {
		return nil
	}
	return m.fetch(false)
}

func (m Model) currentStore() string {
	if m.storeIdx < 0 || m.storeIdx >= len(m.stores) {
		return ""
	}
	return m.stores[m.storeIdx]
}

// drainMessages shows queued one-shot notices; the newest wins.
func (m *Model) drainMessages() {
	for {
		msg, ok := m.session.ConsumeOneShotMessage()
		if !ok {
			return
		}
		m.statusbar.SetMessage(msg)
	}
}

func (m *Model) focus(p ui.Pane) {
	m.activePane = p
	m.sidebar.SetFocused(p == ui.PaneSidebar)
	m.table.SetFocused(p == ui.PaneTable)
	m.statusbar.SetActivePane(p)
}

func (m *Model) recalcLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	availH := max(m.height-3, 6)
	m.sidebar.SetSize(sidebarWidth, availH)
	m.table.SetSize(m.width-sidebarWidth-1, availH-1)
	m.statusbar.SetWidth(m.width)
	m.search.Width = max(m.width-sidebarWidth-8, 10)
	m.help.Width = m.width
}

// View renders the full layout.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	info := "barber-dash"
	if c, ok := m.session.Credential(); ok {
		info = fmt.Sprintf("barber-dash · %s@%s", c.User, c.Name)
	}
	topBar := ui.TopBarStyle.Width(m.width - 2).Render(" " + info + " ")

	var searchLine string
	switch {
	case m.searching || m.search.Value() != "":
		searchLine = m.search.View()
	default:
		searchLine = ui.HeaderStyle.Render(m.screen.Title)
	}
	right := lipgloss.JoinVertical(lipgloss.Left, searchLine, m.table.View())
	mainArea := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), " ", right)

	parts := []string{topBar, mainArea, m.statusbar.View()}
	if m.showHelp {
		parts = append(parts, m.help.View(helpKeys{app: m.keys, table: m.table.KeyMap()}))
		if c, ok := m.session.Credential(); ok && c.DSN != "" {
			parts = append(parts, ui.DimText.Render("Koneksi: "+c.DSN))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
