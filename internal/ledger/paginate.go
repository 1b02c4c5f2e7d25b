package ledger

// Page is one display page of a sliced collection. StartIndex and
// EndIndex are the half-open bounds of Items within the full
// collection.
type Page[T any] struct {
	Items      []T
	TotalPages int
	StartIndex int
	EndIndex   int
}

// Paginate slices items for page-wise display. Pages are 1-based. An
// empty input yields zero total pages; a page beyond the last yields an
// empty slice, never an error. The function holds no state, so catalog
// and ledger pagination stay independent.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize <= 0 || len(items) == 0 {
		return Page[T]{Items: make([]T, 0)}
	}

	totalPages := (len(items) + pageSize - 1) / pageSize

	if page < 1 || page > totalPages {
		return Page[T]{Items: make([]T, 0), TotalPages: totalPages}
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(items))

	return Page[T]{
		Items:      items[start:end],
		TotalPages: totalPages,
		StartIndex: start,
		EndIndex:   end,
	}
}
