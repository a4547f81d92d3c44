package errors

import "net/http"

// BooksErrorCode is the closed set of book catalog failures.
type BooksErrorCode string

const BooksGeneric BooksErrorCode = "generic"

// MapBooksError maps every failure to BooksGeneric; the catalog does not distinguish failure kinds yet.
func MapBooksError(_ any) BooksErrorCode {
	return BooksGeneric
}

var booksProjection = NewProjection[BooksErrorCode](
	NewBaseError(http.StatusInternalServerError, "BOOKS_FAILED", "The book catalog request failed"),
	nil,
)

// BooksAppError projects a BooksErrorCode onto the HTTP error vocabulary.
func BooksAppError(code BooksErrorCode) AppError {
	return booksProjection.Project(code)
}
