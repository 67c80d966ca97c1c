package repository

// Page represents a simple limit/offset window for listing operations.
// Page-number arithmetic lives in the service layer; by the time a Page
// reaches a repository it is plain limit/offset.
type Page struct {
	Limit  int
	Offset int
}

// PageResult carries a slice of items and the total count matching the query.
// I return the total so clients can compute pagination without an extra round trip.
type PageResult[T any] struct {
	Items []T
	Total int
}
