package db

import (
	"context"
	"time"

	"barber-dash/internal/dashboard"
)

// Fetch runs the screen's query. Store-scoped screens receive the store
// name as $1.
func (d *DB) Fetch(ctx context.Context, s dashboard.Screen, f dashboard.Filter) (dashboard.Result, error) {
	var args []any
	if s.ByStore {
		args = append(args, f.Store)
	}
	res, err := d.FetchRows(ctx, s.Query, args...)
	if err != nil {
		return dashboard.Result{}, err
	}
	return dashboard.Result{Rows: res.Rows, Elapsed: res.ExecTime}, nil
}

// Stores returns all store names sorted by name.
func (d *DB) Stores(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Conn == nil {
		return nil, ErrNotConnected
	}

	rows, err := d.Conn.Query(ctx, `SELECT nama FROM toko ORDER BY nama`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stores []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		stores = append(stores, name)
	}
	return stores, rows.Err()
}

var _ dashboard.Source = (*DB)(nil)
