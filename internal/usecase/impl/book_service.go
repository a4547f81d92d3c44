package impl

import (
	"context"
	"log/slog"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/result"
	"portfolio/internal/usecase"
)

// bookService implements the BookUsecase interface.
type bookService struct {
	bookRepo repository.BookRepository
	logger   *slog.Logger
}

// NewBookService is the constructor for bookService.
func NewBookService(bookRepo repository.BookRepository, logger *slog.Logger) usecase.BookUsecase {
	return &bookService{
		bookRepo: bookRepo,
		logger:   logger,
	}
}

func (srv *bookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindBooks returns one page of the user's books.
func (srv *bookService) FindBooks(ctx context.Context, input usecase.FindBooksInput) usecase.FindBooksResult {
	return result.Execute(ctx, func(ctx context.Context) (*repository.FindBooksOutput, error) {
		if err := input.Query.Validate(); err != nil {
			return nil, err
		}

		return srv.bookRepo.Find(ctx, input.UserID, input.Query)
	}, srv.mapError(ctx))
}

// GetBook returns a single book.
func (srv *bookService) GetBook(ctx context.Context, input usecase.GetBookInput) usecase.BookResult {
	return result.Execute(ctx, func(ctx context.Context) (*entity.Book, error) {
		return srv.bookRepo.Get(ctx, input.UserID, input.BookID)
	}, srv.mapError(ctx))
}

// CreateBook adds a book to the user's catalog.
func (srv *bookService) CreateBook(ctx context.Context, input usecase.CreateBookInput) usecase.BookResult {
	return result.Execute(ctx, func(ctx context.Context) (*entity.Book, error) {
		return srv.bookRepo.Create(ctx, input.UserID, input.Book)
	}, srv.mapError(ctx))
}

// UpdateBook applies a partial update to a book.
func (srv *bookService) UpdateBook(ctx context.Context, input usecase.UpdateBookInput) usecase.BookResult {
	return result.Execute(ctx, func(ctx context.Context) (*entity.Book, error) {
		return srv.bookRepo.Update(ctx, input.UserID, input.BookID, input.Update)
	}, srv.mapError(ctx))
}

// DeleteBook removes a book.
func (srv *bookService) DeleteBook(ctx context.Context, input usecase.DeleteBookInput) usecase.BooksVoidResult {
	return result.ExecuteVoid(ctx, func(ctx context.Context) error {
		return srv.bookRepo.Delete(ctx, input.UserID, input.BookID)
	}, srv.mapError(ctx))
}

// DeleteAllBooks clears the user's catalog.
func (srv *bookService) DeleteAllBooks(ctx context.Context, input usecase.DeleteAllBooksInput) usecase.BooksVoidResult {
	return result.ExecuteVoid(ctx, func(ctx context.Context) error {
		return srv.bookRepo.DeleteAll(ctx, input.UserID)
	}, srv.mapError(ctx))
}

// mapError logs the raw failure before it collapses into the coarse book error code.
func (srv *bookService) mapError(ctx context.Context) result.Mapper[domainerrors.BooksErrorCode] {
	return func(raw any) domainerrors.BooksErrorCode {
		srv.log(ctx).Warn("Book catalog operation failed", slog.Any("error", raw))

		return domainerrors.MapBooksError(raw)
	}
}
