package domain

import "go.trai.ch/zerr"

var (
	// ErrPostNotFound is returned when a post has no template directory under the posts root.
	ErrPostNotFound = zerr.New("post template directory not found")

	// ErrInvalidSlug is returned when a post slug contains path separators or is empty.
	ErrInvalidSlug = zerr.New("invalid post slug")

	// ErrPostConfigMissing is returned when a post has no post_config.yaml.
	// Callers building a render context tolerate it.
	ErrPostConfigMissing = zerr.New("post config not found")

	// ErrFeaturedContentMissing is returned when the featured content file does not exist.
	ErrFeaturedContentMissing = zerr.New("featured content file not found")

	// ErrFeaturedContentInvalid is returned when the featured content file cannot be parsed.
	ErrFeaturedContentInvalid = zerr.New("featured content file is not valid JSON")

	// ErrInvalidDeploymentTarget is returned when a deployment target is outside the known set.
	ErrInvalidDeploymentTarget = zerr.New("invalid deployment target, expected 'development', 'staging' or 'production'")

	// ErrConfigReadFailed is returned when a config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when a config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when app_config.yaml cannot be found.
	ErrConfigNotFound = zerr.New("could not find app_config.yaml")

	// ErrSourceReadFailed is returned when an asset source file cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read asset source")

	// ErrCompressionFailed is returned when the compressor rejects an asset source.
	ErrCompressionFailed = zerr.New("failed to compress asset")

	// ErrBundleWriteFailed is returned when a compiled bundle cannot be written to disk.
	ErrBundleWriteFailed = zerr.New("failed to write compiled bundle")

	// ErrTemplateReadFailed is returned when a post template cannot be read.
	ErrTemplateReadFailed = zerr.New("failed to read post template")

	// ErrTemplateParseFailed is returned when a template cannot be parsed.
	ErrTemplateParseFailed = zerr.New("failed to parse template")

	// ErrTemplateExecFailed is returned when a template fails during execution.
	ErrTemplateExecFailed = zerr.New("failed to execute template")

	// ErrPageWriteFailed is returned when a rendered page cannot be written to disk.
	ErrPageWriteFailed = zerr.New("failed to write rendered page")

	// ErrNoPostsFound is returned when render is asked to build every post and none exist.
	ErrNoPostsFound = zerr.New("no posts found")

	// ErrRenderFailed is returned when one or more posts fail to render.
	ErrRenderFailed = zerr.New("render failed")

	// ErrStoreCreateFailed is returned when the bundle store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create bundle store directory")

	// ErrStoreReadFailed is returned when a bundle record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read bundle record")

	// ErrStoreUnmarshalFailed is returned when a bundle record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal bundle record")

	// ErrStoreMarshalFailed is returned when a bundle record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal bundle record")

	// ErrStoreWriteFailed is returned when a bundle record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write bundle record")
)
