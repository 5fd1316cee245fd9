package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"barber-dash/internal/table"
)

func TestTerbilang(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "nol"},
		{1, "satu"},
		{10, "sepuluh"},
		{11, "sebelas"},
		{15, "lima belas"},
		{20, "dua puluh"},
		{21, "dua puluh satu"},
		{100, "seratus"},
		{115, "seratus lima belas"},
		{250, "dua ratus lima puluh"},
		{1000, "seribu"},
		{1234, "seribu dua ratus tiga puluh empat"},
		{11000, "sebelas ribu"},
		{150000, "seratus lima puluh ribu"},
		{1000000, "satu juta"},
		{2500000, "dua juta lima ratus ribu"},
		{3750250, "tiga juta tujuh ratus lima puluh ribu dua ratus lima puluh"},
		{1000000000, "satu miliar"},
		{2000000000000, "dua triliun"},
		{-7, "minus tujuh"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Terbilang(tt.n), "n=%d", tt.n)
	}
}

func TestRupiah(t *testing.T) {
	assert.Equal(t, "Rp 1.250.000", Rupiah(table.Number(1250000)))
	assert.Equal(t, "Rp 500", Rupiah(table.Number(500)))
	assert.Equal(t, "Rp 1.000", Rupiah(table.Number(999.6)))
	assert.Equal(t, "-", Rupiah(table.Null()))
	assert.Equal(t, "gratis", Rupiah(table.Text("gratis")))
}

func TestSmallFormatters(t *testing.T) {
	assert.Equal(t, "12.5%", Percent(table.Number(12.5)))
	assert.Equal(t, "-", Percent(table.Null()))
	assert.Equal(t, "05/03/2024", Date(table.Text("2024-03-05")))
	assert.Equal(t, "02/01/2024 10:30", Date(table.Text("2024-01-02 10:30")))
	assert.Equal(t, "02/01/2024 10:30", Date(table.Of(time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC))))
	assert.Equal(t, "kemarin", Date(table.Text("kemarin")))
	assert.Equal(t, "Ya", YesNo(table.Of(true)))
	assert.Equal(t, "Tidak", YesNo(table.Of(false)))
}
