package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_index_store.go -package=mocks chatlog/internal/vectorstore IndexStore

import "context"

// IndexStore manages the per-chat collections of a vector database.
type IndexStore interface {
	// CollectionExists reports whether a collection exists.
	CollectionExists(ctx context.Context, collection string) (bool, error)

	// DropCollection removes a collection and all of its points.
	// A missing collection is not an error.
	DropCollection(ctx context.Context, collection string) error

	// Health checks that the vector database is reachable.
	Health(ctx context.Context) error
}
