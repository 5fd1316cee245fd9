package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"barber-dash/internal/config"
	"barber-dash/internal/dashboard"
	"barber-dash/internal/session"
	"barber-dash/internal/table"
	"barber-dash/internal/ui"
)

type fakeSource struct {
	mu         sync.Mutex
	rows       map[string][]table.Row
	stores     []string
	err        error
	filters    []dashboard.Filter
	reconnects int
	down       bool
}

func (f *fakeSource) Fetch(_ context.Context, s dashboard.Screen, flt dashboard.Filter) (dashboard.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = append(f.filters, flt)
	if f.err != nil {
		return dashboard.Result{}, f.err
	}
	return dashboard.Result{Rows: f.rows[s.ID], Elapsed: 25 * time.Millisecond}, nil
}

func (f *fakeSource) Stores(context.Context) ([]string, error) {
	return f.stores, nil
}

func (f *fakeSource) IsConnected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.down
}

func (f *fakeSource) Reconnect() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reconnects++
	f.down = false
	return nil
}

func (f *fakeSource) lastFilter() dashboard.Filter {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filters[len(f.filters)-1]
}

func newSource() *fakeSource {
	return &fakeSource{
		rows: map[string][]table.Row{
			"toko": {
				table.RowOf(map[string]any{"nama": "Budi Barber", "alamat": "Jl. Merdeka 1", "telepon": "0811"}),
				table.RowOf(map[string]any{"nama": "Cukur Ani", "alamat": "Jl. Sudirman 9", "telepon": "0812"}),
			},
			"transaksi": {
				table.RowOf(map[string]any{"toko": "Pusat", "kasir": "Budi", "layanan": "Potong", "total": 35000}),
				table.RowOf(map[string]any{"toko": "Pusat", "kasir": "Ani", "layanan": "Creambath", "total": 50000}),
			},
		},
		stores: []string{"Pusat", "Cabang"},
	}
}

func newTestModel(t *testing.T, src *fakeSource) (Model, *session.Store) {
	t.Helper()
	cfg := config.Default()
	cfg.SortIndicatorMS = 1
	sess := session.New()

	m := NewModel(src, sess, cfg, zap.NewNop())
	require.NotNil(t, m.initCmd)
	m = update(t, m, m.initCmd())
	m = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 40})
	return m, sess
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func openScreen(t *testing.T, m Model, id string) Model {
	t.Helper()
	m, cmd := updateCmd(t, m, ui.ScreenSelectedMsg{ID: id})
	require.NotNil(t, cmd)
	return update(t, m, cmd())
}

func TestInitialScreen(t *testing.T) {
	m, _ := newTestModel(t, newSource())

	assert.Equal(t, "toko", m.screen.ID)
	assert.Len(t, m.table.Engine().Rows(), 2)

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Budi Barber")
	assert.Contains(t, out, "Pengaturan Komisi")
}

func TestSidebarOpensScreen(t *testing.T) {
	m, _ := newTestModel(t, newSource())

	m = update(t, m, keyRunes("j"))
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, ui.ScreenSelectedMsg{ID: "karyawan"}, cmd())
}

func TestStaleFetchIgnored(t *testing.T) {
	src := newSource()
	m, _ := newTestModel(t, src)

	older := m.fetch(false)
	newer := m.fetch(false)

	fresh := newer()
	src.rows["toko"] = src.rows["toko"][:1]
	stale := older()

	m = update(t, m, fresh)
	m = update(t, m, stale)
	assert.Len(t, m.table.Engine().Rows(), 2)
}

func TestSearchFlow(t *testing.T) {
	m, _ := newTestModel(t, newSource())

	m = update(t, m, keyRunes("/"))
	require.True(t, m.searching)
	assert.Equal(t, ui.PaneTable, m.activePane)

	// keys are typed into the box, not treated as shortcuts
	m = update(t, m, keyRunes("ani"))
	assert.Equal(t, "ani", m.table.Engine().Search())
	assert.Len(t, m.table.Engine().Filtered(), 1)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.searching)
	assert.Equal(t, "ani", m.table.Engine().Search())

	m = update(t, m, keyRunes("/"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.searching)
	assert.Empty(t, m.table.Engine().Search())
	assert.Len(t, m.table.Engine().Filtered(), 2)
}

func TestFooterFollowsSearch(t *testing.T) {
	m, _ := newTestModel(t, newSource())
	m = openScreen(t, m, "transaksi")

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Total")
	assert.Contains(t, out, "Rp 85.000")

	m = update(t, m, keyRunes("/"))
	m = update(t, m, keyRunes("creambath"))
	out = ansi.Strip(m.View())
	assert.NotContains(t, out, "Rp 85.000")
	assert.Contains(t, out, "Rp 50.000")

	m = update(t, m, keyRunes("zzz"))
	out = ansi.Strip(m.View())
	assert.Contains(t, out, "Tidak ada data")
	assert.NotContains(t, out, "Rp ")
}

func TestStoreCycle(t *testing.T) {
	src := newSource()
	m, _ := newTestModel(t, src)
	m = update(t, m, storesMsg{stores: src.stores})

	// store-less screens keep the filter but do not refetch
	m, cmd := updateCmd(t, m, keyRunes("t"))
	assert.Nil(t, cmd)
	assert.Equal(t, "Pusat", m.currentStore())

	m = openScreen(t, m, "transaksi")
	assert.Equal(t, "Pusat", src.lastFilter().Store)

	m, cmd = updateCmd(t, m, keyRunes("t"))
	require.NotNil(t, cmd)
	m = update(t, m, cmd())
	assert.Equal(t, "Cabang", src.lastFilter().Store)

	m, cmd = updateCmd(t, m, keyRunes("t"))
	require.NotNil(t, cmd)
	cmd()
	assert.Empty(t, src.lastFilter().Store)
	assert.Empty(t, m.currentStore())
}

func TestStoreCycleWithoutStores(t *testing.T) {
	m, _ := newTestModel(t, newSource())
	m, cmd := updateCmd(t, m, keyRunes("t"))
	assert.Nil(t, cmd)
	assert.Equal(t, session.Info, m.statusbar.Message().Kind)
}

func TestScreenChangeResetsTable(t *testing.T) {
	m, _ := newTestModel(t, newSource())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m, cmd := updateCmd(t, m, keyRunes("s"))
	require.NotNil(t, cmd)
	pending := cmd()
	assert.True(t, m.table.IndicatorVisible())
	assert.Equal(t, "nama", m.table.Engine().SortKey())

	m = openScreen(t, m, "transaksi")
	assert.False(t, m.table.IndicatorVisible())
	assert.Empty(t, m.table.Engine().SortKey())

	// the old table's timer cannot hide the new table's arrow
	m, cmd = updateCmd(t, m, keyRunes("s"))
	require.NotNil(t, cmd)
	m = update(t, m, pending)
	assert.True(t, m.table.IndicatorVisible())

	m = update(t, m, cmd())
	assert.False(t, m.table.IndicatorVisible())
}

func TestRefreshKeepsViewState(t *testing.T) {
	src := newSource()
	m, sess := newTestModel(t, src)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, keyRunes("s"))
	m = update(t, m, keyRunes("s"))
	require.Equal(t, table.Desc, m.table.Engine().Direction())

	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.NotNil(t, cmd)
	m = update(t, m, cmd())

	// a live connection is reused
	assert.Equal(t, 0, src.reconnects)
	assert.Equal(t, "nama", m.table.Engine().SortKey())
	assert.Equal(t, table.Desc, m.table.Engine().Direction())
	assert.Equal(t, session.Success, m.statusbar.Message().Kind)
	assert.Equal(t, "Toko diperbarui", m.statusbar.Message().Text)

	_, ok := sess.ConsumeOneShotMessage()
	assert.False(t, ok)
}

func TestRefreshReconnectsDroppedConnection(t *testing.T) {
	src := newSource()
	m, _ := newTestModel(t, src)

	src.down = true
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.NotNil(t, cmd)
	m = update(t, m, cmd())

	assert.Equal(t, 1, src.reconnects)
	assert.True(t, src.IsConnected())
	assert.Equal(t, "Toko diperbarui", m.statusbar.Message().Text)
}

func TestFetchTimeFromSource(t *testing.T) {
	m, _ := newTestModel(t, newSource())
	assert.Contains(t, ansi.Strip(m.statusbar.View()), "2 baris dalam 25ms")
}

func TestFetchError(t *testing.T) {
	src := newSource()
	m, _ := newTestModel(t, src)

	src.err = errors.New("connection refused")
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	m = update(t, m, cmd())

	assert.Equal(t, session.Error, m.statusbar.Message().Kind)
	assert.Contains(t, m.statusbar.Message().Text, "connection refused")
	// rows from the last good fetch stay
	assert.Len(t, m.table.Engine().Rows(), 2)
}

func TestTickDrainsSession(t *testing.T) {
	m, sess := newTestModel(t, newSource())
	sess.Flash(session.Message{Kind: session.Info, Text: "Terhubung ke Pusat"})

	m, cmd := updateCmd(t, m, tickMsg{})
	assert.NotNil(t, cmd)
	assert.Equal(t, "Terhubung ke Pusat", m.statusbar.Message().Text)

	_, ok := sess.ConsumeOneShotMessage()
	assert.False(t, ok)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, newSource())
	_, cmd := updateCmd(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestHelpToggle(t *testing.T) {
	m, sess := newTestModel(t, newSource())
	sess.SetCredential(session.Credential{Name: "barber", User: "kasir", DSN: "postgres://kasir@db:5432/barber"})
	out := ansi.Strip(m.View())
	assert.NotContains(t, out, "cycle store")
	assert.NotContains(t, out, "Koneksi: postgres://kasir@db:5432/barber")

	m = update(t, m, keyRunes("?"))
	out = ansi.Strip(m.View())
	assert.Contains(t, out, "cycle store")
	assert.Contains(t, out, "Koneksi: postgres://kasir@db:5432/barber")
}
