package ports

import "go.trai.ch/postpub/internal/core/domain"

// ConfigLoader loads site, post and featured configuration documents.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// LoadGlobal reads app_config.yaml from the project root.
	LoadGlobal() (*domain.GlobalConfig, error)

	// LoadPost reads post_config.yaml from a post static tree.
	// It returns an error matching domain.ErrPostConfigMissing when the file is absent.
	LoadPost(staticPath string) (*domain.PostConfig, error)

	// LoadFeatured reads the featured content document verbatim.
	LoadFeatured(path string) (any, error)

	// PostExists reports whether staticPath holds a post template directory.
	PostExists(staticPath string) bool

	// ListPosts returns the slugs of every post under postsDir, sorted.
	ListPosts(postsDir string) ([]string, error)
}
