// Package format holds the cell formatters used by dashboard columns.
package format

import (
	"math"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"barber-dash/internal/table"
)

// Rupiah renders a number as Indonesian currency, e.g. "Rp 1.250.000".
// Null renders as "-"; non-numeric values pass through.
func Rupiah(v table.Value) string {
	if v.IsNull() {
		return "-"
	}
	f, ok := v.Float()
	if !ok {
		return v.String()
	}
	p := message.NewPrinter(language.Indonesian)
	return "Rp " + p.Sprintf("%d", int64(math.Round(f)))
}

// Percent renders a number with a trailing percent sign.
func Percent(v table.Value) string {
	if v.IsNull() {
		return "-"
	}
	f, ok := v.Float()
	if !ok {
		return v.String()
	}
	return strconv.FormatFloat(f, 'f', -1, 64) + "%"
}

const dateTimeMinute = "2006-01-02 15:04"

// Date renders an ISO date as dd/mm/yyyy and a timestamp as
// dd/mm/yyyy hh:mm. Values that do not parse are shown unchanged.
func Date(v table.Value) string {
	s := v.String()
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t.Format("02/01/2006")
	}
	if t, err := time.Parse(dateTimeMinute, s); err == nil {
		return t.Format("02/01/2006 15:04")
	}
	return s
}

// YesNo renders boolean text as "Ya" or "Tidak".
func YesNo(v table.Value) string {
	switch v.String() {
	case "true":
		return "Ya"
	case "false":
		return "Tidak"
	default:
		return v.String()
	}
}
