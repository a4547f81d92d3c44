package impl

import (
	"context"
	"testing"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	mockRepo "portfolio/internal/mocks/repository"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookServiceFixtures struct {
	service  usecase.BookUsecase
	bookRepo *mockRepo.MockBookRepository
}

func createTestBookService(t *testing.T) bookServiceFixtures {
	bookRepo := mockRepo.NewMockBookRepository(t)

	return bookServiceFixtures{
		service:  NewBookService(bookRepo, newDiscardLogger()),
		bookRepo: bookRepo,
	}
}

func TestBookService_FindBooks(t *testing.T) {
	fx := createTestBookService(t)
	query := repository.FindBookQuery{OrderBy: repository.BookOrderByTitle, PageSize: 2, Search: strPtr("dune")}
	page := repository.NewFindBooksOutput([]entity.Book{{ID: "b1", Title: "Dune"}}, strPtr("next"))

	fx.bookRepo.EXPECT().
		Find(mock.Anything, "u1", query).
		Return(page, nil)

	res := fx.service.FindBooks(context.Background(), usecase.FindBooksInput{UserID: "u1", Query: query})

	data, ok := res.Data()
	require.True(t, ok)
	assert.True(t, data.HasMore)
	assert.Equal(t, "next", *data.NextCursor)
	assert.Len(t, data.Items, 1)
}

func TestBookService_FindBooks_InvalidQuery(t *testing.T) {
	fx := createTestBookService(t)

	res := fx.service.FindBooks(context.Background(), usecase.FindBooksInput{
		UserID: "u1",
		Query:  repository.FindBookQuery{OrderBy: "author", PageSize: 10},
	})

	code, ok := res.Code()
	require.True(t, ok)
	assert.Equal(t, domainerrors.BooksGeneric, code)
	fx.bookRepo.AssertNotCalled(t, "Find", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookService_GetBook_NotFound(t *testing.T) {
	fx := createTestBookService(t)

	fx.bookRepo.EXPECT().
		Get(mock.Anything, "u1", "missing").
		Return(nil, repository.ErrBookNotFound)

	res := fx.service.GetBook(context.Background(), usecase.GetBookInput{UserID: "u1", BookID: "missing"})

	code, ok := res.Code()
	require.True(t, ok)
	assert.Equal(t, domainerrors.BooksGeneric, code)
}

func TestBookService_CreateBook(t *testing.T) {
	fx := createTestBookService(t)
	input := entity.BookInput{Title: "Dune", Authors: []string{"Frank Herbert"}}
	created := &entity.Book{ID: "b1", Title: "Dune", Authors: []string{"Frank Herbert"}, CreatedBy: "u1"}

	fx.bookRepo.EXPECT().
		Create(mock.Anything, "u1", input).
		Return(created, nil)

	res := fx.service.CreateBook(context.Background(), usecase.CreateBookInput{UserID: "u1", Book: input})

	data, ok := res.Data()
	require.True(t, ok)
	assert.Equal(t, created, data)
}

func TestBookService_UpdateBook(t *testing.T) {
	fx := createTestBookService(t)
	update := entity.BookUpdate{Title: strPtr("Dune Messiah")}

	fx.bookRepo.EXPECT().
		Update(mock.Anything, "u1", "b1", update).
		Return(&entity.Book{ID: "b1", Title: "Dune Messiah"}, nil)

	res := fx.service.UpdateBook(context.Background(), usecase.UpdateBookInput{UserID: "u1", BookID: "b1", Update: update})

	data, ok := res.Data()
	require.True(t, ok)
	assert.Equal(t, "Dune Messiah", data.Title)
}

func TestBookService_DeleteBook(t *testing.T) {
	fx := createTestBookService(t)

	fx.bookRepo.EXPECT().
		Delete(mock.Anything, "u1", "b1").
		Return(nil)

	assert.True(t, fx.service.DeleteBook(context.Background(), usecase.DeleteBookInput{UserID: "u1", BookID: "b1"}).IsSuccess())
}

func TestBookService_DeleteAllBooks_Failure(t *testing.T) {
	fx := createTestBookService(t)

	fx.bookRepo.EXPECT().
		DeleteAll(mock.Anything, "u1").
		Return(errors.New("quota exceeded"))

	res := fx.service.DeleteAllBooks(context.Background(), usecase.DeleteAllBooksInput{UserID: "u1"})

	code, ok := res.Code()
	require.True(t, ok)
	assert.Equal(t, domainerrors.BooksGeneric, code)
}
