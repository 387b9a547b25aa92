package service

import "math"

// pageOffset returns the row offset of a 1-based page. It reports false when
// the offset does not fit in an int, which can only be past the last row.
func pageOffset(page, pageSize int) (int, bool) {
	if page-1 > math.MaxInt/pageSize {
		return 0, false
	}
	return (page - 1) * pageSize, true
}
