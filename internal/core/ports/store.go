package ports

import "go.trai.ch/postpub/internal/core/domain"

// BundleStore persists records of compiled bundles for deploy tooling.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BundleStore interface {
	// Get retrieves the last record for a bundle of a post.
	// Returns nil, nil if not found.
	Get(staticPath, name string) (*domain.CompiledBundle, error)

	// Put stores the record, replacing any earlier record of the same bundle.
	Put(bundle domain.CompiledBundle) error

	// List returns every stored record ordered by static path and name.
	List() ([]domain.CompiledBundle, error)

	// Delete removes the record of a bundle. Deleting a missing record is not an error.
	Delete(staticPath, name string) error
}
