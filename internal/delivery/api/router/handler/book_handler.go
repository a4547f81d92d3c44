package handler

import (
	"log/slog"
	"net/http"

	"portfolio/config"
	"portfolio/internal/delivery/api/response"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookHandlerParams holds dependencies for BookHandler, injected by Fx.
type BookHandlerParams struct {
	fx.In

	BookUC    usecase.BookUsecase
	Analytics service.AnalyticsService
	Validator *RequestValidator
	Config    *config.Config
	Logger    *slog.Logger
}

// BookHandler holds dependencies for book catalog handlers
type BookHandler struct {
	bookUC          usecase.BookUsecase
	analytics       service.AnalyticsService
	validator       *RequestValidator
	defaultPageSize int
	logger          *slog.Logger
}

// NewBookHandler is the constructor for BookHandler
func NewBookHandler(params BookHandlerParams) *BookHandler {
	return &BookHandler{
		bookUC:          params.BookUC,
		analytics:       params.Analytics,
		validator:       params.Validator,
		defaultPageSize: params.Config.Books.DefaultPageSize,
		logger:          params.Logger,
	}
}

// FindBooksRequest represents the query parameters of a book listing
type FindBooksRequest struct {
	Search   string `query:"q" json:"q" validate:"max=200"`
	Cursor   string `query:"cursor" json:"cursor"`
	PageSize int    `query:"page_size" json:"page_size" validate:"omitempty,min=1,max=100"`
}

// CreateBookRequest represents the request body for adding a book
type CreateBookRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"max=2000"`
	Genres      []string `json:"genres" validate:"dive,required,max=100"`
	Authors     []string `json:"authors" validate:"dive,required,max=200"`
	Links       []string `json:"links" validate:"dive,required,url"`
}

// UpdateBookRequest represents the request body for a partial book update
type UpdateBookRequest struct {
	Title       *string   `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string   `json:"description" validate:"omitempty,max=2000"`
	Genres      *[]string `json:"genres" validate:"omitempty,dive,required,max=100"`
	Authors     *[]string `json:"authors" validate:"omitempty,dive,required,max=200"`
	Links       *[]string `json:"links" validate:"omitempty,dive,required,url"`
}

// FindBooks handles listing the user's books
func (h *BookHandler) FindBooks(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req FindBooksRequest
	if ok, err := h.validator.Bind(c, &req); !ok {
		return err
	}

	query := repository.FindBookQuery{
		OrderBy:  repository.BookOrderByTitle,
		PageSize: h.defaultPageSize,
	}
	if req.PageSize > 0 {
		query.PageSize = req.PageSize
	}
	if req.Search != "" {
		query.Search = &req.Search
	}
	if req.Cursor != "" {
		query.Cursor = &req.Cursor
	}

	res := h.bookUC.FindBooks(c.Request().Context(), usecase.FindBooksInput{UserID: userID, Query: query})
	if term := query.NormalizedSearch(); term != "" && req.Cursor == "" && res.IsSuccess() {
		h.analytics.LogEvent(c.Request().Context(), service.EventSearch, map[string]any{
			"search_term": term,
		})
	}

	return response.FromResult(c, http.StatusOK, res, domainerrors.BooksAppError)
}

// GetBook handles retrieving a single book
func (h *BookHandler) GetBook(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	res := h.bookUC.GetBook(c.Request().Context(), usecase.GetBookInput{UserID: userID, BookID: c.Param("id")})

	return response.FromResult(c, http.StatusOK, res, domainerrors.BooksAppError)
}

// CreateBook handles adding a book
func (h *BookHandler) CreateBook(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req CreateBookRequest
	if ok, err := h.validator.Bind(c, &req); !ok {
		return err
	}

	res := h.bookUC.CreateBook(c.Request().Context(), usecase.CreateBookInput{
		UserID: userID,
		Book: entity.BookInput{
			Title:       req.Title,
			Description: req.Description,
			Genres:      nonNil(req.Genres),
			Authors:     nonNil(req.Authors),
			Links:       nonNil(req.Links),
		},
	})
	if book, ok := res.Data(); ok {
		h.analytics.LogEvent(c.Request().Context(), service.EventAddBook, map[string]any{
			"book_id": book.ID,
		})
	}

	return response.FromResult(c, http.StatusCreated, res, domainerrors.BooksAppError)
}

// UpdateBook handles a partial book update
func (h *BookHandler) UpdateBook(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req UpdateBookRequest
	if ok, err := h.validator.Bind(c, &req); !ok {
		return err
	}

	update := entity.BookUpdate{
		Title:       req.Title,
		Description: req.Description,
		Genres:      req.Genres,
		Authors:     req.Authors,
		Links:       req.Links,
	}
	if update.IsEmpty() {
		return response.BadRequest(c, "VALIDATION_FAILED", "No fields to update")
	}

	res := h.bookUC.UpdateBook(c.Request().Context(), usecase.UpdateBookInput{
		UserID: userID,
		BookID: c.Param("id"),
		Update: update,
	})

	return response.FromResult(c, http.StatusOK, res, domainerrors.BooksAppError)
}

// DeleteBook handles removing a single book
func (h *BookHandler) DeleteBook(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	bookID := c.Param("id")
	res := h.bookUC.DeleteBook(c.Request().Context(), usecase.DeleteBookInput{UserID: userID, BookID: bookID})
	if res.IsSuccess() {
		h.analytics.LogEvent(c.Request().Context(), service.EventDeleteBook, map[string]any{
			"book_id": bookID,
		})
	}

	return response.FromResult(c, http.StatusOK, res, domainerrors.BooksAppError)
}

// DeleteAllBooks handles clearing the user's catalog
func (h *BookHandler) DeleteAllBooks(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	res := h.bookUC.DeleteAllBooks(c.Request().Context(), usecase.DeleteAllBooksInput{UserID: userID})
	if res.IsSuccess() {
		requestLogger(c, h.logger).Info("Catalog cleared", slog.String("user_id", userID))
	}

	return response.FromResult(c, http.StatusOK, res, domainerrors.BooksAppError)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
