// Package cursor encodes the keyset position of a book listing into an opaque page token.
package cursor

import (
	"encoding/base64"
	"encoding/json"

	"portfolio/internal/domain/repository"

	"github.com/pkg/errors"
)

// Position is the sort key of the last book of a page. Search is the normalized term the page
// was produced for, so a token cannot be replayed against a different listing.
type Position struct {
	Title  string `json:"t"`
	ID     string `json:"i"`
	Search string `json:"s,omitempty"`
}

// Encode returns the opaque token of p.
func Encode(p Position) string {
	raw, _ := json.Marshal(p)

	return base64.RawURLEncoding.EncodeToString(raw)
}

// Decode parses a token produced by Encode for the listing of search.
func Decode(token, search string) (Position, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Position{}, errors.Wrap(repository.ErrInvalidCursor, "malformed encoding")
	}

	var p Position
	if err := json.Unmarshal(raw, &p); err != nil {
		return Position{}, errors.Wrap(repository.ErrInvalidCursor, "malformed payload")
	}
	if p.ID == "" {
		return Position{}, errors.Wrap(repository.ErrInvalidCursor, "missing id")
	}
	if p.Search != search {
		return Position{}, errors.Wrap(repository.ErrInvalidCursor, "search term changed")
	}

	return p, nil
}

// Next returns the token following page, or nil when the listing is exhausted.
// page holds up to pageSize+1 sort positions; the extra one only signals that more exist.
func Next(page []Position, pageSize int) *string {
	if len(page) <= pageSize || pageSize <= 0 {
		return nil
	}

	token := Encode(page[pageSize-1])

	return &token
}
