package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"barber-dash/internal/table"
)

// ErrNotConnected is returned when a query is attempted after a failed
// reconnect.
var ErrNotConnected = errors.New("not connected")

// QueryResult holds the rows of a SELECT-like query and how long the
// server took to produce them.
type QueryResult struct {
	Rows     []table.Row
	ExecTime time.Duration
}

// FetchRows runs a query and returns its rows keyed by column name.
func (d *DB) FetchRows(ctx context.Context, sql string, args ...any) (*QueryResult, error) {
	trimmed := strings.TrimSpace(sql)
	if trimmed == "" {
		return nil, fmt.Errorf("empty query")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Conn == nil {
		return nil, ErrNotConnected
	}

	start := time.Now()
	rows, err := d.Conn.Query(ctx, trimmed, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, f := range fields {
		columns[i] = f.Name
	}

	var resultRows []table.Row
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := make(table.Row, len(values))
		for i, v := range values {
			row[columns[i]] = toValue(v)
		}
		resultRows = append(resultRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &QueryResult{
		Rows:     resultRows,
		ExecTime: time.Since(start),
	}, nil
}

// toValue maps a decoded pgx value to a table cell. SQL NULL stays null so
// it sorts last and never matches a search.
func toValue(v any) table.Value {
	switch x := v.(type) {
	case nil:
		return table.Null()
	case pgtype.Numeric:
		if !x.Valid {
			return table.Null()
		}
		f, err := x.Float64Value()
		if err != nil || !f.Valid {
			return table.Null()
		}
		return table.Number(f.Float64)
	case [16]byte:
		return table.Text(fmt.Sprintf("%x-%x-%x-%x-%x", x[0:4], x[4:6], x[6:8], x[8:10], x[10:16]))
	case []byte:
		return table.Text(string(x))
	default:
		return table.Of(v)
	}
}
