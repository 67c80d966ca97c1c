package service

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// normalizePaging clamps the page number to 1 and applies the page size
// default. The upper bound on page size is rejected during validation rather
// than silently clamped, so it is not handled here.
func normalizePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return page, pageSize
}
