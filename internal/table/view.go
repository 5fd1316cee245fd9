package table

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/text/language"
)

// ErrPageSize is returned when a page size outside the allowed set is
// requested.
var ErrPageSize = errors.New("page size not allowed")

// DefaultPageSizes are the page sizes offered when none are configured.
var DefaultPageSizes = []int{5, 10, 25, 50, 100, 200, 500}

// DefaultPageSize is the initial page size.
const DefaultPageSize = 10

// View owns the transient view state of one table: search term, sort
// column and direction, page size and current page. The row data belongs
// to the caller and is never modified.
type View struct {
	columns   []Column
	rows      []Row
	filtered  []Row
	search    string
	pageSizes []int
	pageSize  int
	page      int
	sortKey   string
	dir       Direction
	sorter    *Sorter
}

// Option configures a View.
type Option func(*View)

// WithPageSizes sets the allowed page sizes. Non-positive entries are
// dropped.
func WithPageSizes(sizes ...int) Option {
	return func(v *View) {
		var keep []int
		for _, s := range sizes {
			if s > 0 {
				keep = append(keep, s)
			}
		}
		if len(keep) > 0 {
			v.pageSizes = keep
		}
	}
}

// WithPageSize sets the initial page size.
func WithPageSize(n int) Option {
	return func(v *View) { v.pageSize = n }
}

// WithLocale sets the collation locale used for text ordering.
func WithLocale(tag language.Tag) Option {
	return func(v *View) { v.sorter = NewSorter(tag) }
}

// New creates a View over columns. Text ordering defaults to Indonesian
// collation.
func New(columns []Column, opts ...Option) *View {
	v := &View{
		columns:   columns,
		pageSizes: DefaultPageSizes,
		pageSize:  DefaultPageSize,
		page:      1,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.sorter == nil {
		v.sorter = NewSorter(language.Indonesian)
	}
	if !slices.Contains(v.pageSizes, v.pageSize) {
		if slices.Contains(v.pageSizes, DefaultPageSize) {
			v.pageSize = DefaultPageSize
		} else {
			v.pageSize = v.pageSizes[0]
		}
	}
	v.recompute()
	return v
}

// Columns returns the column set in display order.
func (v *View) Columns() []Column { return v.columns }

// SetColumns replaces the column set. A sort on a column that no longer
// exists is dropped.
func (v *View) SetColumns(columns []Column) {
	v.columns = columns
	if v.sortKey != "" {
		if _, ok := v.column(v.sortKey); !ok {
			v.sortKey = ""
			v.dir = Asc
		}
	}
	v.recompute()
}

// SetRows replaces the dataset and keeps the current page in range.
func (v *View) SetRows(rows []Row) {
	v.rows = rows
	v.recompute()
}

// Rows returns the dataset as supplied by the caller.
func (v *View) Rows() []Row { return v.rows }

// SetSearch applies a new search term. A changed term moves back to the
// first page.
func (v *View) SetSearch(term string) {
	if term == v.search {
		return
	}
	v.search = term
	v.page = 1
	v.recompute()
}

// Search returns the active search term.
func (v *View) Search() string { return v.search }

// PageSizes returns the allowed page sizes.
func (v *View) PageSizes() []int { return v.pageSizes }

// PageSize returns the current page size.
func (v *View) PageSize() int { return v.pageSize }

// SetPageSize switches to n rows per page and moves back to the first
// page. n must be one of PageSizes.
func (v *View) SetPageSize(n int) error {
	if !slices.Contains(v.pageSizes, n) {
		return fmt.Errorf("%w: %d", ErrPageSize, n)
	}
	if n == v.pageSize {
		return nil
	}
	v.pageSize = n
	v.page = 1
	v.clamp()
	return nil
}

// CyclePageSize steps delta positions through PageSizes, stopping at
// either end. It reports whether the page size changed.
func (v *View) CyclePageSize(delta int) bool {
	i := slices.Index(v.pageSizes, v.pageSize)
	j := min(max(i+delta, 0), len(v.pageSizes)-1)
	if j == i {
		return false
	}
	return v.SetPageSize(v.pageSizes[j]) == nil
}

// ToggleSort sorts by key. Repeating the active key flips the direction;
// a new key starts ascending. Unknown and unsortable columns are ignored
// and report false.
func (v *View) ToggleSort(key string) bool {
	c, ok := v.column(key)
	if !ok || !c.Sortable() {
		return false
	}
	if key == v.sortKey {
		v.dir = v.dir.Flip()
	} else {
		v.sortKey = key
		v.dir = Asc
	}
	v.recompute()
	return true
}

// SortKey returns the active sort column key, or "" when unsorted.
func (v *View) SortKey() string { return v.sortKey }

// Direction returns the active sort direction.
func (v *View) Direction() Direction { return v.dir }

// Filtered returns the searched and sorted rows.
func (v *View) Filtered() []Row { return v.filtered }

// Page returns the 1-based current page.
func (v *View) Page() int { return v.page }

// TotalPages returns the page count of the filtered rows.
func (v *View) TotalPages() int { return TotalPages(len(v.filtered), v.pageSize) }

// PageRows returns the rows on the current page.
func (v *View) PageRows() []Row { return Paginate(v.filtered, v.page, v.pageSize) }

// ShowPagination reports whether the filtered rows span more than one
// page. Pagination controls are omitted otherwise.
func (v *View) ShowPagination() bool { return len(v.filtered) > v.pageSize }

// CanPrev reports whether a previous page exists.
func (v *View) CanPrev() bool { return v.page > 1 }

// CanNext reports whether a next page exists.
func (v *View) CanNext() bool { return v.page < v.TotalPages() }

// GoTo moves to page p. Out-of-range pages are ignored.
func (v *View) GoTo(p int) bool {
	if p < 1 || p > v.TotalPages() || p == v.page {
		return false
	}
	v.page = p
	return true
}

func (v *View) First() bool { return v.GoTo(1) }
func (v *View) Prev() bool  { return v.GoTo(v.page - 1) }
func (v *View) Next() bool  { return v.GoTo(v.page + 1) }
func (v *View) Last() bool  { return v.GoTo(v.TotalPages()) }

func (v *View) column(key string) (Column, bool) {
	for _, c := range v.columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

func (v *View) recompute() {
	v.filtered = v.sorter.Sort(Filter(v.rows, v.search), v.sortKey, v.dir)
	v.clamp()
}

func (v *View) clamp() {
	v.page = min(max(v.page, 1), v.TotalPages())
}
