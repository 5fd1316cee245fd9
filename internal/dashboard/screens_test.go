package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"barber-dash/internal/table"
)

type fakeSource struct {
	rows   []table.Row
	err    error
	filter Filter
}

func (f *fakeSource) Fetch(_ context.Context, _ Screen, flt Filter) (Result, error) {
	f.filter = flt
	return Result{Rows: f.rows, Elapsed: 40 * time.Millisecond}, f.err
}

func (f *fakeSource) Stores(context.Context) ([]string, error) {
	return []string{"Pusat"}, nil
}

func TestScreensAreWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Screens() {
		require.False(t, seen[s.ID], "duplicate screen %s", s.ID)
		seen[s.ID] = true
		require.NotEmpty(t, s.Title)
		require.NotEmpty(t, s.Query)

		keys := map[string]bool{}
		for _, c := range s.Columns {
			require.False(t, keys[c.Key], "%s: duplicate column %s", s.ID, c.Key)
			keys[c.Key] = true
		}
		for _, k := range s.Totals {
			require.True(t, keys[k], "%s: total on unknown column %s", s.ID, k)
		}
		if s.ByStore {
			require.Contains(t, s.Query, "$1", s.ID)
		} else {
			require.NotContains(t, s.Query, "$1", s.ID)
		}
	}
	require.Len(t, seen, 8)
}

func TestLookup(t *testing.T) {
	s, err := Lookup("kasbon")
	require.NoError(t, err)
	require.Equal(t, "Kasbon", s.Title)

	_, err = Lookup("absen")
	require.ErrorIs(t, err, ErrUnknownScreen)
}

func TestLoadDerivesTerbilang(t *testing.T) {
	s, err := Lookup("gaji")
	require.NoError(t, err)

	src := &fakeSource{rows: []table.Row{
		table.RowOf(map[string]any{"karyawan": "Budi", "gaji": 1250000}),
		table.RowOf(map[string]any{"karyawan": "Ani", "gaji": nil}),
	}}
	res, err := Load(context.Background(), src, s, Filter{Store: "Pusat"})
	require.NoError(t, err)
	require.Equal(t, "Pusat", src.filter.Store)
	require.Equal(t, 40*time.Millisecond, res.Elapsed)
	rows := res.Rows
	require.Equal(t, "satu juta dua ratus lima puluh ribu rupiah", rows[0]["terbilang"].String())
	require.True(t, rows[1]["terbilang"].IsNull())
}

func TestLoadDropsStoreFilter(t *testing.T) {
	s, err := Lookup("komisi")
	require.NoError(t, err)

	src := &fakeSource{}
	_, err = Load(context.Background(), src, s, Filter{Store: "Pusat"})
	require.NoError(t, err)
	require.Empty(t, src.filter.Store)
}

func TestLoadWrapsError(t *testing.T) {
	s, err := Lookup("toko")
	require.NoError(t, err)

	boom := errors.New("connection reset")
	_, err = Load(context.Background(), &fakeSource{err: boom}, s, Filter{})
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "load toko")
}

func TestFooter(t *testing.T) {
	s, err := Lookup("transaksi")
	require.NoError(t, err)

	require.Nil(t, s.Footer(nil))

	rows := []table.Row{
		table.RowOf(map[string]any{"total": 35000}),
		table.RowOf(map[string]any{"total": 50000}),
		table.RowOf(map[string]any{"total": nil}),
	}
	footer := s.Footer(rows)
	require.Len(t, footer, 1)
	require.Len(t, footer[0], len(s.Columns))
	require.Equal(t, "Total", footer[0][0])
	require.Equal(t, "Rp 85.000", footer[0][5])
	require.Empty(t, footer[0][1])

	toko, err := Lookup("toko")
	require.NoError(t, err)
	require.Nil(t, toko.Footer(rows))
}
