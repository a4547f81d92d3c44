package firestore

import (
	"testing"
	"time"

	"portfolio/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestBookDocument_Mapping(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	book := entity.Book{
		Title:          "Cien Años de Soledad",
		Description:    "Macondo",
		Authors:        []string{"Gabriel García Márquez"},
		CreatedBy:      "u1",
		CreatedAt:      created,
		LastModifiedAt: created,
	}

	doc := fromBookDomain(book)

	assert.Equal(t, "cien anos de soledad macondo gabriel garcia marquez", doc.SearchText)
	assert.Contains(t, doc.SearchKeywords, "an")
	assert.Contains(t, doc.SearchKeywords, "soledad")
	assert.Contains(t, doc.SearchKeywords, "marq")
	assert.Equal(t, []string{}, doc.Genres)

	back := doc.toDomain("b1")
	assert.Equal(t, "b1", back.ID)
	assert.Equal(t, book.Title, back.Title)
	assert.Equal(t, book.Authors, back.Authors)
	assert.Equal(t, []string{}, back.Links)
	assert.Equal(t, created, back.CreatedAt)
}

func TestBookDocument_EmptyIndexUsesFallback(t *testing.T) {
	doc := fromBookDomain(entity.Book{})

	assert.Equal(t, " ", doc.SearchText)
	assert.Empty(t, doc.SearchKeywords)
}

func TestSettingsDocument_Mapping(t *testing.T) {
	locale := "es"
	theme := entity.ThemeDark

	doc := fromSettingsDomain(entity.UserSettings{Locale: &locale, Theme: &theme})
	assert.Equal(t, "dark", *doc.Theme)

	back := doc.toDomain()
	assert.Equal(t, &locale, back.Locale)
	assert.Equal(t, entity.ThemeDark, *back.Theme)

	assert.Nil(t, fromSettingsDomain(entity.UserSettings{}).Theme)
}

func TestSearchKeyword(t *testing.T) {
	assert.Equal(t, "", searchKeyword(""))
	assert.Equal(t, "", searchKeyword("a"))
	assert.Equal(t, "soledad", searchKeyword("de soledad"))
}
