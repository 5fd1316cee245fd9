package table

// TotalPages is ceil(n/size), never less than 1.
func TotalPages(n, size int) int {
	if size < 1 || n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}

// Paginate returns the 1-based page of rows. Pages past the end are empty.
func Paginate(rows []Row, page, size int) []Row {
	if size < 1 || page < 1 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(rows) {
		return nil
	}
	end := min(start+size, len(rows))
	return rows[start:end:end]
}
