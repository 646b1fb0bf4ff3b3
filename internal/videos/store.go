package videos

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

import (
	"context"

	"github.com/vmunix/vmanager/internal/catalog"
)

// Store reads and writes the authors and categories collections.
// remote.Client implements it.
type Store interface {
	FetchAuthors(ctx context.Context) ([]catalog.Author, error)
	FetchAuthor(ctx context.Context, authorID int) (catalog.Author, error)
	FetchCategories(ctx context.Context) ([]catalog.Category, error)
	SaveAuthor(ctx context.Context, author catalog.Author) error
}
