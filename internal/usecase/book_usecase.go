package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/result"
)

type (
	// FindBooksResult is the outcome of a book listing.
	FindBooksResult = result.Result[*repository.FindBooksOutput, domainerrors.BooksErrorCode]
	// BookResult is the outcome of an operation returning a single book.
	BookResult = result.Result[*entity.Book, domainerrors.BooksErrorCode]
	// BooksVoidResult is the outcome of a book deletion.
	BooksVoidResult = result.Result[result.Empty, domainerrors.BooksErrorCode]
)

// FindBooksInput represents the input for listing books
type FindBooksInput struct {
	UserID string
	Query  repository.FindBookQuery
}

// GetBookInput represents the input for retrieving a single book
type GetBookInput struct {
	UserID string
	BookID string
}

// CreateBookInput represents the input for adding a book
type CreateBookInput struct {
	UserID string
	Book   entity.BookInput
}

// UpdateBookInput represents the input for a partial book update
type UpdateBookInput struct {
	UserID string
	BookID string
	Update entity.BookUpdate
}

// DeleteBookInput represents the input for removing a book
type DeleteBookInput struct {
	UserID string
	BookID string
}

// DeleteAllBooksInput represents the input for clearing a user's catalog
type DeleteAllBooksInput struct {
	UserID string
}

// BookUsecase defines the interface for book catalog use cases
type BookUsecase interface {
	FindBooks(ctx context.Context, input FindBooksInput) FindBooksResult
	GetBook(ctx context.Context, input GetBookInput) BookResult
	CreateBook(ctx context.Context, input CreateBookInput) BookResult
	UpdateBook(ctx context.Context, input UpdateBookInput) BookResult
	DeleteBook(ctx context.Context, input DeleteBookInput) BooksVoidResult
	DeleteAllBooks(ctx context.Context, input DeleteAllBooksInput) BooksVoidResult
}
