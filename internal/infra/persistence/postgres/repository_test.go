package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "portfolio.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	return db
}

func titleQuery(pageSize int) repository.FindBookQuery {
	return repository.FindBookQuery{OrderBy: repository.BookOrderByTitle, PageSize: pageSize}
}

func strPtr(s string) *string { return &s }

func seedBooks(t *testing.T, repo repository.BookRepository, userID string, titles ...string) []*entity.Book {
	t.Helper()

	books := make([]*entity.Book, 0, len(titles))
	for _, title := range titles {
		book, err := repo.Create(context.Background(), userID, entity.BookInput{Title: title, Authors: []string{"Anon"}})
		require.NoError(t, err)
		books = append(books, book)
	}

	return books
}

func TestBookRepository_CreateAndGet(t *testing.T) {
	repo := NewBookRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, "u1", entity.BookInput{
		Title:   "Cien Años de Soledad",
		Genres:  []string{"novel"},
		Authors: []string{"Gabriel García Márquez"},
		Links:   nil,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "u1", created.CreatedBy)
	assert.Equal(t, []string{}, created.Links)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.Get(ctx, "u1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, []string{"novel"}, got.Genres)
	assert.Equal(t, []string{"Gabriel García Márquez"}, got.Authors)
	assert.Equal(t, []string{}, got.Links)

	_, err = repo.Get(ctx, "u2", created.ID)
	assert.True(t, errors.Is(err, repository.ErrBookNotFound))

	_, err = repo.Get(ctx, "u1", "not-a-uuid")
	assert.True(t, errors.Is(err, repository.ErrBookNotFound))
}

func TestBookRepository_FindPaginates(t *testing.T) {
	repo := NewBookRepository(setupTestDB(t))
	ctx := context.Background()
	seedBooks(t, repo, "u1", "Emma", "Dune", "Beloved", "Carrie", "Atonement")
	seedBooks(t, repo, "u2", "Anathem")

	var titles []string
	query := titleQuery(2)
	for pages := 0; pages < 10; pages++ {
		page, err := repo.Find(ctx, "u1", query)
		require.NoError(t, err)

		for _, book := range page.Items {
			titles = append(titles, book.Title)
		}
		assert.Equal(t, page.HasMore, page.NextCursor != nil)
		if !page.HasMore {
			break
		}
		query.Cursor = page.NextCursor
	}

	assert.Equal(t, []string{"Atonement", "Beloved", "Carrie", "Dune", "Emma"}, titles)
}

func TestBookRepository_FindExactPageHasNoMore(t *testing.T) {
	repo := NewBookRepository(setupTestDB(t))
	seedBooks(t, repo, "u1", "A1", "A2")

	page, err := repo.Find(context.Background(), "u1", titleQuery(2))
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.False(t, page.HasMore)
	assert.Nil(t, page.NextCursor)
}

func TestBookRepository_FindSearch(t *testing.T) {
	repo := NewBookRepository(setupTestDB(t))
	ctx := context.Background()
	seedBooks(t, repo, "u1", "Cien Años de Soledad", "El Túnel", "100% Pure")

	query := titleQuery(10)
	query.Search = strPtr("  AÑOS ")
	page, err := repo.Find(ctx, "u1", query)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Cien Años de Soledad", page.Items[0].Title)

	query.Search = strPtr("tunel")
	page, err = repo.Find(ctx, "u1", query)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	query.Search = strPtr("0%")
	page, err = repo.Find(ctx, "u1", query)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "100% Pure", page.Items[0].Title)

	query.Search = strPtr("anon")
	page, err = repo.Find(ctx, "u1", query)
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
}

func TestBookRepository_FindRejectsForeignCursor(t *testing.T) {
	repo := NewBookRepository(setupTestDB(t))
	seedBooks(t, repo, "u1", "A", "B", "C")

	page, err := repo.Find(context.Background(), "u1", titleQuery(1))
	require.NoError(t, err)
	require.NotNil(t, page.NextCursor)

	query := titleQuery(1)
	query.Cursor = page.NextCursor
	query.Search = strPtr("b")
	_, err = repo.Find(context.Background(), "u1", query)
	assert.True(t, errors.Is(err, repository.ErrInvalidCursor))

	query = titleQuery(1)
	query.Cursor = strPtr("garbage")
	_, err = repo.Find(context.Background(), "u1", query)
	assert.True(t, errors.Is(err, repository.ErrInvalidCursor))
}

func TestBookRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookRepository(db).(*bookRepository)
	ctx := context.Background()
	book := seedBooks(t, repo, "u1", "Dune")[0]

	later := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return later }

	genres := []string{"sci-fi"}
	updated, err := repo.Update(ctx, "u1", book.ID, entity.BookUpdate{Title: strPtr("Dune Messiah"), Genres: &genres})
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", updated.Title)
	assert.Equal(t, []string{"sci-fi"}, updated.Genres)
	assert.Equal(t, []string{"Anon"}, updated.Authors)
	assert.True(t, updated.LastModifiedAt.Equal(later))

	got, err := repo.Get(ctx, "u1", book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", got.Title)
	assert.True(t, got.CreatedAt.Equal(book.CreatedAt))

	query := titleQuery(10)
	query.Search = strPtr("messiah")
	page, err := repo.Find(ctx, "u1", query)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	_, err = repo.Update(ctx, "u2", book.ID, entity.BookUpdate{Title: strPtr("Stolen")})
	assert.True(t, errors.Is(err, repository.ErrBookNotFound))
}

func TestBookRepository_Delete(t *testing.T) {
	repo := NewBookRepository(setupTestDB(t))
	ctx := context.Background()
	books := seedBooks(t, repo, "u1", "A", "B")
	seedBooks(t, repo, "u2", "C")

	assert.True(t, errors.Is(repo.Delete(ctx, "u2", books[0].ID), repository.ErrBookNotFound))
	require.NoError(t, repo.Delete(ctx, "u1", books[0].ID))
	assert.True(t, errors.Is(repo.Delete(ctx, "u1", books[0].ID), repository.ErrBookNotFound))

	require.NoError(t, repo.DeleteAll(ctx, "u1"))

	page, err := repo.Find(ctx, "u1", titleQuery(10))
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	page, err = repo.Find(ctx, "u2", titleQuery(10))
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}

func TestSettingsRepository_GetSet(t *testing.T) {
	repo := NewSettingsRepository(setupTestDB(t))
	ctx := context.Background()

	settings, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, settings)

	dark := entity.ThemeDark
	require.NoError(t, repo.Set(ctx, "u1", entity.UserSettings{Locale: strPtr("es"), Theme: &dark}))

	light := entity.ThemeLight
	require.NoError(t, repo.Set(ctx, "u1", entity.UserSettings{Theme: &light}))

	settings, err = repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Nil(t, settings.Locale)
	assert.Equal(t, entity.ThemeLight, *settings.Theme)
}
