package table

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// Kind tags the dynamic type held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindText
	KindNumber
	KindNode
)

// Value is a single cell. The zero Value is null, so a key missing from a
// Row reads as null.
type Value struct {
	kind Kind
	text string
	num  float64
}

// Null returns the null value.
func Null() Value { return Value{} }

// Text wraps a plain string.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Number wraps a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Node wraps content that was already rendered by the caller, e.g. a
// lipgloss-styled badge. The table displays it verbatim.
func Node(rendered string) Value { return Value{kind: KindNode, text: rendered} }

// Of converts a plain Go value into a Value.
func Of(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case string:
		return Text(x)
	case int:
		return Number(float64(x))
	case int8:
		return Number(float64(x))
	case int16:
		return Number(float64(x))
	case int32:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case uint:
		return Number(float64(x))
	case uint8:
		return Number(float64(x))
	case uint16:
		return Number(float64(x))
	case uint32:
		return Number(float64(x))
	case uint64:
		return Number(float64(x))
	case float32:
		return Number(float64(x))
	case float64:
		return Number(x)
	case bool:
		return Text(strconv.FormatBool(x))
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 {
			return Text(x.Format(time.DateOnly))
		}
		return Text(x.Format("2006-01-02 15:04"))
	case fmt.Stringer:
		return Text(x.String())
	default:
		return Text(fmt.Sprint(x))
	}
}

// Kind reports the tag of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v holds no value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Float returns the numeric payload. ok is false for non-numbers.
func (v Value) Float() (f float64, ok bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// String returns the raw display form. Nodes come back exactly as the
// caller rendered them; null is the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindText, KindNode:
		return v.text
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return ""
	}
}

// Plain is String with terminal escape sequences removed. Search and
// ordering operate on this form.
func (v Value) Plain() string {
	if v.kind == KindNode {
		return ansi.Strip(v.text)
	}
	return v.String()
}

// Row is one record. It may carry keys that no column displays.
type Row map[string]Value

// RowOf builds a Row from plain Go values using Of.
func RowOf(fields map[string]any) Row {
	r := make(Row, len(fields))
	for k, v := range fields {
		r[k] = Of(v)
	}
	return r
}
