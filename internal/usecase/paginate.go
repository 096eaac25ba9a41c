package usecase

// pageSlice returns the page window [offset, offset+limit) of items,
// clamped to the slice bounds.
func pageSlice[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
