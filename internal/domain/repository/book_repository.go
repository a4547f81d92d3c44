// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"portfolio/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for book persistence.
var (
	// ErrBookNotFound is returned when a book does not exist or belongs to another user.
	ErrBookNotFound = errors.New("book not found")
	// ErrInvalidCursor is returned when a pagination cursor cannot be decoded.
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrInvalidQuery is returned when a FindBookQuery fails validation.
	ErrInvalidQuery = errors.New("invalid book query")
)

// BookRepository defines the interface for book catalog storage. Every operation is scoped to the owning user.
type BookRepository interface {
	// Find returns one page of the user's books ordered by title.
	Find(ctx context.Context, userID string, query FindBookQuery) (*FindBooksOutput, error)

	// Get retrieves a single book by its ID.
	Get(ctx context.Context, userID, id string) (*entity.Book, error)

	// Create persists a new book and returns it with identity and audit fields assigned.
	Create(ctx context.Context, userID string, input entity.BookInput) (*entity.Book, error)

	// Update applies a partial update and returns the stored book.
	Update(ctx context.Context, userID, id string, update entity.BookUpdate) (*entity.Book, error)

	// Delete removes a single book.
	Delete(ctx context.Context, userID, id string) error

	// DeleteAll removes every book owned by the user.
	DeleteAll(ctx context.Context, userID string) error
}
