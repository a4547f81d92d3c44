package entity

import "time"

// Book represents a user-owned catalog entry.
type Book struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Genres         []string  `json:"genres"`
	Authors        []string  `json:"authors"`
	Links          []string  `json:"links"`
	CreatedBy      string    `json:"created_by"`       // Owner user ID, immutable after creation.
	CreatedAt      time.Time `json:"created_at"`       // Immutable after creation.
	LastModifiedAt time.Time `json:"last_modified_at"` // Set by the storage layer on every update.
}

// BookInput is the create payload of a book. Identity and audit fields are assigned by storage.
type BookInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genres      []string `json:"genres"`
	Authors     []string `json:"authors"`
	Links       []string `json:"links"`
}

// BookUpdate is a partial update of a book; nil fields are left untouched.
type BookUpdate struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Genres      *[]string `json:"genres,omitempty"`
	Authors     *[]string `json:"authors,omitempty"`
	Links       *[]string `json:"links,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u BookUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Genres == nil && u.Authors == nil && u.Links == nil
}

// Apply returns a copy of the book with the update applied. Audit fields are not touched.
func (u BookUpdate) Apply(book Book) Book {
	if u.Title != nil {
		book.Title = *u.Title
	}
	if u.Description != nil {
		book.Description = *u.Description
	}
	if u.Genres != nil {
		book.Genres = cloneStrings(*u.Genres)
	}
	if u.Authors != nil {
		book.Authors = cloneStrings(*u.Authors)
	}
	if u.Links != nil {
		book.Links = cloneStrings(*u.Links)
	}

	return book
}

func cloneStrings(values []string) []string {
	if values == nil {
		return []string{}
	}

	return append([]string(nil), values...)
}
