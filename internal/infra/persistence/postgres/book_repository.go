// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"
	"time"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/search"
	"portfolio/internal/infra/persistence/cursor"
	"portfolio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// bookRepository implements the repository.BookRepository interface.
type bookRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Find returns one page of the user's books ordered by title, then ID.
func (repo *bookRepository) Find(ctx context.Context, userID string, query repository.FindBookQuery) (*repository.FindBooksOutput, error) {
	term := query.NormalizedSearch()

	tx := repo.db.WithContext(ctx).
		Where("created_by = ?", userID)

	if term != "" {
		tx = tx.Where(`search_text LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(term)+"%")
	}

	if query.Cursor != nil {
		pos, err := cursor.Decode(*query.Cursor, term)
		if err != nil {
			return nil, err
		}
		tx = tx.Where("(title > ? OR (title = ? AND id > ?))", pos.Title, pos.Title, pos.ID)
	}

	var bookModels []*model.BookModel
	if err := tx.
		Order("title ASC").
		Order("id ASC").
		Limit(query.PageSize + 1).
		Find(&bookModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	positions := make([]cursor.Position, 0, len(bookModels))
	items := make([]entity.Book, 0, min(len(bookModels), query.PageSize))
	for i, bookM := range bookModels {
		positions = append(positions, cursor.Position{Title: bookM.Title, ID: bookM.ID.String(), Search: term})
		if i < query.PageSize {
			items = append(items, *toBookDomain(bookM))
		}
	}

	return repository.NewFindBooksOutput(items, cursor.Next(positions, query.PageSize)), nil
}

// Get retrieves a single book owned by the user.
func (repo *bookRepository) Get(ctx context.Context, userID, id string) (*entity.Book, error) {
	bookM, err := repo.find(repo.db.WithContext(ctx), userID, id)
	if err != nil {
		return nil, err
	}

	return toBookDomain(bookM), nil
}

// Create persists a new book owned by the user.
func (repo *bookRepository) Create(ctx context.Context, userID string, input entity.BookInput) (*entity.Book, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate book ID")
	}

	now := repo.now()
	bookM := fromBookDomain(entity.Book{
		ID:             id.String(),
		Title:          input.Title,
		Description:    input.Description,
		Genres:         input.Genres,
		Authors:        input.Authors,
		Links:          input.Links,
		CreatedBy:      userID,
		CreatedAt:      now,
		LastModifiedAt: now,
	})

	if err := repo.db.WithContext(ctx).Create(bookM).Error; err != nil {
		// Only reported when gorm.Config.TranslateError is on; otherwise the raw driver error falls through.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.Wrap(err, "duplicate book ID")
		}

		return nil, errors.Wrap(err, "failed to create book")
	}

	return toBookDomain(bookM), nil
}

// Update applies a partial update. The read and the write share one transaction.
func (repo *bookRepository) Update(ctx context.Context, userID, id string, update entity.BookUpdate) (*entity.Book, error) {
	var updated *entity.Book
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bookM, err := repo.find(tx, userID, id)
		if err != nil {
			return err
		}

		book := update.Apply(*toBookDomain(bookM))
		book.LastModifiedAt = repo.now()
		next := fromBookDomain(book)

		if err := tx.Model(&model.BookModel{}).
			Where("id = ? AND created_by = ?", next.ID, userID).
			Select("title", "description", "genres", "authors", "links", "search_text", "last_modified_at").
			Updates(next).Error; err != nil {
			return errors.Wrap(err, "failed to update book")
		}
		updated = toBookDomain(next)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a single book owned by the user.
func (repo *bookRepository) Delete(ctx context.Context, userID, id string) error {
	bookID, err := uuid.Parse(id)
	if err != nil {
		return repository.ErrBookNotFound
	}

	res := repo.db.WithContext(ctx).
		Where("id = ? AND created_by = ?", bookID, userID).
		Delete(&model.BookModel{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "failed to delete book")
	}
	if res.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// DeleteAll removes every book owned by the user.
func (repo *bookRepository) DeleteAll(ctx context.Context, userID string) error {
	if err := repo.db.WithContext(ctx).
		Where("created_by = ?", userID).
		Delete(&model.BookModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete books")
	}

	return nil
}

func (repo *bookRepository) find(db *gorm.DB, userID, id string) (*model.BookModel, error) {
	bookID, err := uuid.Parse(id)
	if err != nil {
		return nil, repository.ErrBookNotFound
	}

	var bookM model.BookModel
	if err := db.
		Where("id = ? AND created_by = ?", bookID, userID).
		First(&bookM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by ID")
	}

	return &bookM, nil
}

func fromBookDomain(book entity.Book) *model.BookModel {
	parts := make([]string, 0, 2+len(book.Authors)+len(book.Genres))
	parts = append(parts, book.Title, book.Description)
	parts = append(parts, book.Authors...)
	parts = append(parts, book.Genres...)

	bookM := &model.BookModel{
		CreatedBy:      book.CreatedBy,
		Title:          book.Title,
		Description:    book.Description,
		Genres:         datatypes.NewJSONSlice(nonNil(book.Genres)),
		Authors:        datatypes.NewJSONSlice(nonNil(book.Authors)),
		Links:          datatypes.NewJSONSlice(nonNil(book.Links)),
		SearchText:     search.IndexText(parts...),
		CreatedAt:      book.CreatedAt,
		LastModifiedAt: book.LastModifiedAt,
	}
	if id, err := uuid.Parse(book.ID); err == nil {
		bookM.ID = id
	}

	return bookM
}

func toBookDomain(bookM *model.BookModel) *entity.Book {
	return &entity.Book{
		ID:             bookM.ID.String(),
		Title:          bookM.Title,
		Description:    bookM.Description,
		Genres:         nonNil(bookM.Genres),
		Authors:        nonNil(bookM.Authors),
		Links:          nonNil(bookM.Links),
		CreatedBy:      bookM.CreatedBy,
		CreatedAt:      bookM.CreatedAt,
		LastModifiedAt: bookM.LastModifiedAt,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return []string(values)
}
