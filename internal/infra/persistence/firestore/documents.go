// Package firestore contains the Cloud Firestore implementation of the persistence layer.
package firestore

import (
	"time"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/search"
)

const (
	booksCollection    = "books"
	settingsCollection = "userSettings"

	fieldCreatedBy      = "createdBy"
	fieldTitle          = "title"
	fieldSearchKeywords = "searchKeywords"
)

// bookDocument is the stored shape of a book. SearchText and SearchKeywords are derived from
// the other fields on every write.
type bookDocument struct {
	Title          string    `firestore:"title"`
	Description    string    `firestore:"description"`
	Genres         []string  `firestore:"genres"`
	Authors        []string  `firestore:"authors"`
	Links          []string  `firestore:"links"`
	CreatedBy      string    `firestore:"createdBy"`
	CreatedAt      time.Time `firestore:"createdAt"`
	LastModifiedAt time.Time `firestore:"lastModifiedAt"`
	SearchText     string    `firestore:"searchText"`
	SearchKeywords []string  `firestore:"searchKeywords"`
}

// settingsDocument is the stored shape of user settings.
type settingsDocument struct {
	Locale    *string   `firestore:"locale"`
	Theme     *string   `firestore:"theme"`
	UpdatedAt time.Time `firestore:"updatedAt,serverTimestamp"`
}

func fromBookDomain(book entity.Book) *bookDocument {
	doc := &bookDocument{
		Title:          book.Title,
		Description:    book.Description,
		Genres:         nonNil(book.Genres),
		Authors:        nonNil(book.Authors),
		Links:          nonNil(book.Links),
		CreatedBy:      book.CreatedBy,
		CreatedAt:      book.CreatedAt,
		LastModifiedAt: book.LastModifiedAt,
	}
	doc.index()

	return doc
}

func (d *bookDocument) index() {
	parts := make([]string, 0, 2+len(d.Authors)+len(d.Genres))
	parts = append(parts, d.Title, d.Description)
	parts = append(parts, d.Authors...)
	parts = append(parts, d.Genres...)

	d.SearchText = search.IndexText(parts...)
	d.SearchKeywords = search.Keywords(d.SearchText)
}

func (d *bookDocument) toDomain(id string) *entity.Book {
	return &entity.Book{
		ID:             id,
		Title:          d.Title,
		Description:    d.Description,
		Genres:         nonNil(d.Genres),
		Authors:        nonNil(d.Authors),
		Links:          nonNil(d.Links),
		CreatedBy:      d.CreatedBy,
		CreatedAt:      d.CreatedAt,
		LastModifiedAt: d.LastModifiedAt,
	}
}

func fromSettingsDomain(settings entity.UserSettings) *settingsDocument {
	doc := &settingsDocument{Locale: settings.Locale}
	if settings.Theme != nil {
		theme := string(*settings.Theme)
		doc.Theme = &theme
	}

	return doc
}

func (d *settingsDocument) toDomain() *entity.UserSettings {
	settings := &entity.UserSettings{Locale: d.Locale}
	if d.Theme != nil {
		theme := entity.Theme(*d.Theme)
		settings.Theme = &theme
	}

	return settings
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
