package repository

import (
	"testing"

	"portfolio/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestFindBookQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   FindBookQuery
		wantErr bool
	}{
		{"valid", FindBookQuery{OrderBy: BookOrderByTitle, PageSize: 10}, false},
		{"max page size", FindBookQuery{OrderBy: BookOrderByTitle, PageSize: MaxBookPageSize}, false},
		{"unsupported order", FindBookQuery{OrderBy: "createdAt", PageSize: 10}, true},
		{"empty order", FindBookQuery{PageSize: 10}, true},
		{"zero page size", FindBookQuery{OrderBy: BookOrderByTitle}, true},
		{"page size too large", FindBookQuery{OrderBy: BookOrderByTitle, PageSize: MaxBookPageSize + 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidQuery))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFindBookQuery_NormalizedSearch(t *testing.T) {
	assert.Equal(t, "", FindBookQuery{}.NormalizedSearch())
	assert.Equal(t, "cafe", FindBookQuery{Search: strPtr("  Café ")}.NormalizedSearch())
}

func TestNewFindBooksOutput(t *testing.T) {
	books := []entity.Book{{ID: "1"}}

	tests := []struct {
		name        string
		next        *string
		wantHasMore bool
		wantNext    *string
	}{
		{"with cursor", strPtr("abc"), true, strPtr("abc")},
		{"nil cursor", nil, false, nil},
		{"empty cursor", strPtr(""), false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewFindBooksOutput(books, tt.next)
			assert.Equal(t, tt.wantHasMore, out.HasMore)
			assert.Equal(t, tt.wantNext, out.NextCursor)
			assert.Equal(t, out.NextCursor == nil, !out.HasMore)
		})
	}

	assert.NotNil(t, NewFindBooksOutput(nil, nil).Items)
}
