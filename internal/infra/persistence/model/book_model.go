// Package model contains the GORM models of the relational persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BookModel is the GORM-specific struct for the 'books' table.
// Listings are keyset-paginated on (created_by, title, id).
type BookModel struct {
	ID             uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	CreatedBy      string                      `gorm:"type:varchar(128);not null;index:idx_books_owner_title,priority:1"`
	Title          string                      `gorm:"type:varchar(200);not null;index:idx_books_owner_title,priority:2"`
	Description    string                      `gorm:"type:text;not null;default:''"`
	Genres         datatypes.JSONSlice[string] `gorm:"not null"`
	Authors        datatypes.JSONSlice[string] `gorm:"not null"`
	Links          datatypes.JSONSlice[string] `gorm:"not null"`
	SearchText     string                      `gorm:"type:text;not null"`
	CreatedAt      time.Time                   `gorm:"not null"`
	LastModifiedAt time.Time                   `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}
