package firestore

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/search"
	"portfolio/internal/infra/persistence/cursor"

	fsLib "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const minSearchKeywordLength = 2

// bookRepository implements the repository.BookRepository interface.
type bookRepository struct {
	client *fsLib.Client
	now    func() time.Time
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(client *fsLib.Client) repository.BookRepository {
	return &bookRepository{
		client: client,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (repo *bookRepository) books() *fsLib.CollectionRef {
	return repo.client.Collection(booksCollection)
}

// Find returns one page of the user's books ordered by title, then document ID.
// A search narrows candidates by keyword and keeps those whose search text contains the term.
func (repo *bookRepository) Find(ctx context.Context, userID string, query repository.FindBookQuery) (*repository.FindBooksOutput, error) {
	term := query.NormalizedSearch()

	q := repo.books().Where(fieldCreatedBy, "==", userID)
	if keyword := searchKeyword(term); keyword != "" {
		q = q.Where(fieldSearchKeywords, "array-contains", keyword)
	}
	q = q.OrderBy(fieldTitle, fsLib.Asc).OrderBy(fsLib.DocumentID, fsLib.Asc)

	if query.Cursor != nil {
		pos, err := cursor.Decode(*query.Cursor, term)
		if err != nil {
			return nil, err
		}
		q = q.StartAfter(pos.Title, pos.ID)
	}
	if term == "" {
		q = q.Limit(query.PageSize + 1)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	items := make([]entity.Book, 0, query.PageSize+1)
	positions := make([]cursor.Position, 0, query.PageSize+1)
	for len(items) <= query.PageSize {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list books")
		}

		var doc bookDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode book %s", snap.Ref.ID)
		}
		if term != "" && !strings.Contains(doc.SearchText, term) {
			continue
		}

		items = append(items, *doc.toDomain(snap.Ref.ID))
		positions = append(positions, cursor.Position{Title: doc.Title, ID: snap.Ref.ID, Search: term})
	}

	next := cursor.Next(positions, query.PageSize)
	if len(items) > query.PageSize {
		items = items[:query.PageSize]
	}

	return repository.NewFindBooksOutput(items, next), nil
}

// Get retrieves a single book owned by the user.
func (repo *bookRepository) Get(ctx context.Context, userID, id string) (*entity.Book, error) {
	ref, err := repo.bookRef(id)
	if err != nil {
		return nil, err
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		return nil, notFoundOr(err, "failed to get book")
	}

	doc, err := ownedBook(snap, userID)
	if err != nil {
		return nil, err
	}

	return doc.toDomain(id), nil
}

// Create persists a new book owned by the user.
func (repo *bookRepository) Create(ctx context.Context, userID string, input entity.BookInput) (*entity.Book, error) {
	now := repo.now()
	book := entity.Book{
		Title:          input.Title,
		Description:    input.Description,
		Genres:         input.Genres,
		Authors:        input.Authors,
		Links:          input.Links,
		CreatedBy:      userID,
		CreatedAt:      now,
		LastModifiedAt: now,
	}

	ref := repo.books().NewDoc()
	doc := fromBookDomain(book)
	if _, err := ref.Create(ctx, doc); err != nil {
		return nil, errors.Wrap(err, "failed to create book")
	}

	return doc.toDomain(ref.ID), nil
}

// Update applies a partial update inside a transaction so concurrent writers cannot interleave.
func (repo *bookRepository) Update(ctx context.Context, userID, id string, update entity.BookUpdate) (*entity.Book, error) {
	ref, err := repo.bookRef(id)
	if err != nil {
		return nil, err
	}

	var updated *entity.Book
	err = repo.client.RunTransaction(ctx, func(_ context.Context, tx *fsLib.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return notFoundOr(err, "failed to read book")
		}

		doc, err := ownedBook(snap, userID)
		if err != nil {
			return err
		}

		book := update.Apply(*doc.toDomain(id))
		book.LastModifiedAt = repo.now()
		next := fromBookDomain(book)
		if err := tx.Set(ref, next); err != nil {
			return errors.Wrap(err, "failed to update book")
		}
		updated = next.toDomain(id)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a single book owned by the user.
func (repo *bookRepository) Delete(ctx context.Context, userID, id string) error {
	ref, err := repo.bookRef(id)
	if err != nil {
		return err
	}

	return repo.client.RunTransaction(ctx, func(_ context.Context, tx *fsLib.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return notFoundOr(err, "failed to read book")
		}
		if _, err := ownedBook(snap, userID); err != nil {
			return err
		}

		return errors.Wrap(tx.Delete(ref), "failed to delete book")
	})
}

// DeleteAll removes every book owned by the user with a bulk writer.
func (repo *bookRepository) DeleteAll(ctx context.Context, userID string) error {
	iter := repo.books().Where(fieldCreatedBy, "==", userID).Select().Documents(ctx)
	defer iter.Stop()

	bw := repo.client.BulkWriter(ctx)
	var jobs []*fsLib.BulkWriterJob
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			bw.End()

			return errors.Wrap(err, "failed to list books")
		}

		job, err := bw.Delete(snap.Ref)
		if err != nil {
			bw.End()

			return errors.Wrap(err, "failed to enqueue book deletion")
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return errors.Wrap(err, "failed to delete book")
		}
	}

	return nil
}

func (repo *bookRepository) bookRef(id string) (*fsLib.DocumentRef, error) {
	if id == "" || strings.Contains(id, "/") {
		return nil, repository.ErrBookNotFound
	}

	return repo.books().Doc(id), nil
}

// ownedBook decodes snap and hides books of other users behind ErrBookNotFound.
func ownedBook(snap *fsLib.DocumentSnapshot, userID string) (*bookDocument, error) {
	var doc bookDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode book %s", snap.Ref.ID)
	}
	if doc.CreatedBy != userID {
		return nil, repository.ErrBookNotFound
	}

	return &doc, nil
}

func notFoundOr(err error, message string) error {
	if status.Code(err) == codes.NotFound {
		return repository.ErrBookNotFound
	}

	return errors.Wrap(err, message)
}

// searchKeyword returns the array-contains keyword of a normalized term, or "" when the term
// is too short to have been indexed.
func searchKeyword(term string) string {
	keyword := search.Term(term)
	if utf8.RuneCountInString(keyword) < minSearchKeywordLength {
		return ""
	}

	return keyword
}
