// Package dashboard declares the shop's screens: which query feeds each
// one, how its columns are labelled and formatted, and which footer
// totals it shows.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"barber-dash/internal/format"
	"barber-dash/internal/table"
)

var ErrUnknownScreen = errors.New("unknown screen")

// Filter narrows a screen's query.
type Filter struct {
	// Store limits ByStore screens to one store name. Empty means all.
	Store string
}

// Result is one fetch of a screen.
type Result struct {
	Rows []table.Row
	// Elapsed is the time the backend spent producing Rows.
	Elapsed time.Duration
}

// Source supplies screen rows. *db.DB is the production implementation.
type Source interface {
	Fetch(ctx context.Context, s Screen, f Filter) (Result, error)
	Stores(ctx context.Context) ([]string, error)
}

// Screen is one dashboard page.
type Screen struct {
	ID      string
	Title   string
	Query   string
	ByStore bool
	Columns []table.Column
	// Totals are the column keys summed into the footer row.
	Totals []string
	// Derive adds computed fields to each fetched row.
	Derive func(table.Row)
}

const storeClause = `($1::text = '' OR %s = $1)`

var screens = []Screen{
	{
		ID:    "toko",
		Title: "Toko",
		Query: `SELECT nama, alamat, telepon FROM toko ORDER BY nama`,
		Columns: []table.Column{
			{Key: "nama", Label: "Nama"},
			{Key: "alamat", Label: "Alamat", DisableSort: true},
			{Key: "telepon", Label: "Telepon"},
		},
	},
	{
		ID:      "karyawan",
		Title:   "Karyawan",
		ByStore: true,
		Query: `SELECT k.nama, k.peran, t.nama AS toko, k.telepon, k.aktif
			FROM karyawan k JOIN toko t ON t.id = k.toko_id
			WHERE ` + fmt.Sprintf(storeClause, "t.nama") + `
			ORDER BY k.nama`,
		Columns: []table.Column{
			{Key: "nama", Label: "Nama"},
			{Key: "peran", Label: "Peran"},
			{Key: "toko", Label: "Toko"},
			{Key: "telepon", Label: "Telepon"},
			{Key: "aktif", Label: "Aktif", Format: format.YesNo},
		},
	},
	{
		ID:      "produk",
		Title:   "Produk & Stok",
		ByStore: true,
		Query: `SELECT p.nama, p.kategori, p.harga, s.jumlah AS stok, t.nama AS toko
			FROM produk p
			JOIN stok s ON s.produk_id = p.id
			JOIN toko t ON t.id = s.toko_id
			WHERE ` + fmt.Sprintf(storeClause, "t.nama") + `
			ORDER BY p.nama`,
		Columns: []table.Column{
			{Key: "nama", Label: "Produk"},
			{Key: "kategori", Label: "Kategori"},
			{Key: "harga", Label: "Harga", Format: format.Rupiah},
			{Key: "stok", Label: "Stok"},
			{Key: "toko", Label: "Toko"},
		},
	},
	{
		ID:    "komisi",
		Title: "Pengaturan Komisi",
		Query: `SELECT layanan, persen, nominal FROM komisi ORDER BY layanan`,
		Columns: []table.Column{
			{Key: "layanan", Label: "Layanan"},
			{Key: "persen", Label: "Persen", Format: format.Percent},
			{Key: "nominal", Label: "Nominal", Format: format.Rupiah},
		},
	},
	{
		ID:      "kasbon",
		Title:   "Kasbon",
		ByStore: true,
		Query: `SELECT b.tanggal, k.nama AS karyawan, b.jumlah, b.keterangan, b.status
			FROM kasbon b
			JOIN karyawan k ON k.id = b.karyawan_id
			JOIN toko t ON t.id = k.toko_id
			WHERE ` + fmt.Sprintf(storeClause, "t.nama") + `
			ORDER BY b.tanggal DESC`,
		Columns: []table.Column{
			{Key: "tanggal", Label: "Tanggal", Format: format.Date},
			{Key: "karyawan", Label: "Karyawan"},
			{Key: "jumlah", Label: "Jumlah", Format: format.Rupiah},
			{Key: "keterangan", Label: "Keterangan", DisableSort: true},
			{Key: "status", Label: "Status"},
		},
		Totals: []string{"jumlah"},
	},
	{
		ID:      "transaksi",
		Title:   "Transaksi",
		ByStore: true,
		Query: `SELECT x.tanggal, t.nama AS toko, ks.nama AS kasir, cp.nama AS capster,
				x.layanan, x.total, x.metode
			FROM transaksi x
			JOIN toko t ON t.id = x.toko_id
			LEFT JOIN karyawan ks ON ks.id = x.kasir_id
			LEFT JOIN karyawan cp ON cp.id = x.capster_id
			WHERE ` + fmt.Sprintf(storeClause, "t.nama") + `
			ORDER BY x.tanggal DESC`,
		Columns: []table.Column{
			{Key: "tanggal", Label: "Tanggal", Format: format.Date},
			{Key: "toko", Label: "Toko"},
			{Key: "kasir", Label: "Kasir"},
			{Key: "capster", Label: "Capster"},
			{Key: "layanan", Label: "Layanan"},
			{Key: "total", Label: "Total", Format: format.Rupiah},
			{Key: "metode", Label: "Metode"},
		},
		Totals: []string{"total"},
	},
	{
		ID:      "gaji",
		Title:   "Slip Gaji",
		ByStore: true,
		Query: `SELECT g.periode, k.nama AS karyawan, g.komisi, g.kasbon, g.komisi - g.kasbon AS gaji
			FROM gaji g
			JOIN karyawan k ON k.id = g.karyawan_id
			JOIN toko t ON t.id = k.toko_id
			WHERE ` + fmt.Sprintf(storeClause, "t.nama") + `
			ORDER BY g.periode DESC, k.nama`,
		Columns: []table.Column{
			{Key: "periode", Label: "Periode"},
			{Key: "karyawan", Label: "Karyawan"},
			{Key: "komisi", Label: "Komisi", Format: format.Rupiah},
			{Key: "kasbon", Label: "Kasbon", Format: format.Rupiah},
			{Key: "gaji", Label: "Gaji Bersih", Format: format.Rupiah},
			{Key: "terbilang", Label: "Terbilang", DisableSort: true},
		},
		Totals: []string{"komisi", "kasbon", "gaji"},
		Derive: deriveTerbilang,
	},
	{
		ID:      "penjualan",
		Title:   "Laporan Penjualan",
		ByStore: true,
		Query: `SELECT x.tanggal::date AS tanggal, t.nama AS toko, count(*) AS jumlah, sum(x.total) AS total
			FROM transaksi x
			JOIN toko t ON t.id = x.toko_id
			WHERE ` + fmt.Sprintf(storeClause, "t.nama") + `
			GROUP BY 1, 2
			ORDER BY 1 DESC, 2`,
		Columns: []table.Column{
			{Key: "tanggal", Label: "Tanggal", Format: format.Date},
			{Key: "toko", Label: "Toko"},
			{Key: "jumlah", Label: "Transaksi"},
			{Key: "total", Label: "Omzet", Format: format.Rupiah},
		},
		Totals: []string{"jumlah", "total"},
	},
}

// Screens lists every screen in menu order.
func Screens() []Screen {
	return screens
}

// Lookup finds a screen by ID.
func Lookup(id string) (Screen, error) {
	for _, s := range screens {
		if s.ID == id {
			return s, nil
		}
	}
	return Screen{}, fmt.Errorf("%w: %q", ErrUnknownScreen, id)
}

// Load fetches the rows of s and applies its derived fields.
func Load(ctx context.Context, src Source, s Screen, f Filter) (Result, error) {
	if !s.ByStore {
		f.Store = ""
	}
	res, err := src.Fetch(ctx, s, f)
	if err != nil {
		return Result{}, fmt.Errorf("load %s: %w", s.ID, err)
	}
	if s.Derive != nil {
		for _, r := range res.Rows {
			s.Derive(r)
		}
	}
	return res, nil
}

// Footer returns the totals row for rows, or nil when the screen has no
// totals or rows is empty. The first column carries the "Total" label.
func (s Screen) Footer(rows []table.Row) [][]string {
	if len(s.Totals) == 0 || len(rows) == 0 {
		return nil
	}
	sums := make(map[string]float64, len(s.Totals))
	for _, r := range rows {
		for _, key := range s.Totals {
			if f, ok := r[key].Float(); ok {
				sums[key] += f
			}
		}
	}

	cells := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		sum, ok := sums[c.Key]
		if !ok {
			continue
		}
		cells[i] = c.Display(table.Number(sum))
	}
	if len(cells) > 0 && cells[0] == "" {
		cells[0] = "Total"
	}
	return [][]string{cells}
}

func deriveTerbilang(r table.Row) {
	f, ok := r["gaji"].Float()
	if !ok {
		r["terbilang"] = table.Null()
		return
	}
	r["terbilang"] = table.Text(format.Terbilang(int64(math.Round(f))) + " rupiah")
}
