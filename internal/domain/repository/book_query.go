package repository

import (
	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/search"

	"github.com/pkg/errors"
)

// BookOrderBy is the ordering key of a book listing.
type BookOrderBy string

// BookOrderByTitle is the only supported ordering.
const BookOrderByTitle BookOrderBy = "title"

// Page size bounds for book listings.
const (
	DefaultBookPageSize = 20
	MaxBookPageSize     = 100
)

// FindBookQuery describes one page request of a book listing.
type FindBookQuery struct {
	OrderBy  BookOrderBy
	Search   *string
	PageSize int
	Cursor   *string // Opaque token from a previous FindBooksOutput, passed back verbatim.
}

// Validate checks the ordering key and page size.
func (q FindBookQuery) Validate() error {
	if q.OrderBy != BookOrderByTitle {
		return errors.Wrapf(ErrInvalidQuery, "unsupported order %q", q.OrderBy)
	}
	if q.PageSize <= 0 || q.PageSize > MaxBookPageSize {
		return errors.Wrapf(ErrInvalidQuery, "page size %d out of range", q.PageSize)
	}

	return nil
}

// NormalizedSearch returns the search term in canonical form, or "" when the query has none.
func (q FindBookQuery) NormalizedSearch() string {
	if q.Search == nil {
		return ""
	}

	return search.Normalize(*q.Search)
}

// FindBooksOutput is one page of a book listing.
type FindBooksOutput struct {
	Items      []entity.Book `json:"items"`
	NextCursor *string       `json:"next_cursor"`
	HasMore    bool          `json:"has_more"`
}

// NewFindBooksOutput builds a page. HasMore is derived from next, so a nil or empty
// cursor always terminates the listing.
func NewFindBooksOutput(items []entity.Book, next *string) *FindBooksOutput {
	if items == nil {
		items = []entity.Book{}
	}
	if next != nil && *next == "" {
		next = nil
	}

	return &FindBooksOutput{
		Items:      items,
		NextCursor: next,
		HasMore:    next != nil,
	}
}
