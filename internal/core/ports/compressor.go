package ports

import "go.trai.ch/postpub/internal/core/domain"

// Compressor minifies asset sources.
//
//go:generate go run go.uber.org/mock/mockgen -source=compressor.go -destination=mocks/mock_compressor.go -package=mocks
type Compressor interface {
	// Compress returns the minified form of src for the given kind.
	// A returned error aborts the bundle being compiled.
	Compress(kind domain.AssetKind, src []byte) ([]byte, error)
}
