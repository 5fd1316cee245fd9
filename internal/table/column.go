package table

// Column describes one displayed field. Columns are sortable unless
// DisableSort is set.
type Column struct {
	Key         string
	Label       string
	DisableSort bool
	// Format turns the raw cell into its display string. When nil the
	// raw value is shown as-is.
	Format func(Value) string
}

// Sortable reports whether header actions may sort by this column.
func (c Column) Sortable() bool { return !c.DisableSort }

// Display renders a raw cell for this column.
func (c Column) Display(v Value) string {
	if c.Format != nil {
		return c.Format(v)
	}
	return v.String()
}
