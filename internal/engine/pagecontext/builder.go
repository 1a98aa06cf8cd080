// Package pagecontext assembles the data a post template is rendered against.
package pagecontext

import (
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/postpub/internal/core/domain"
	"go.trai.ch/postpub/internal/core/ports"
	"go.trai.ch/postpub/internal/engine/assets"
	"go.trai.ch/zerr"
)

// Options configure a Builder.
type Options struct {
	// PostsDir is the directory holding one static tree per post.
	PostsDir string
	// FeaturedPath is the featured content document loaded into every context.
	FeaturedPath string
	// AssetDepth is passed to the includers of every context.
	AssetDepth int
	// Absolute makes includers emit CDN URLs.
	Absolute bool
}

// Builder creates render contexts for one build. Every context shares the build's Bundler.
type Builder struct {
	loader  ports.ConfigLoader
	global  *domain.GlobalConfig
	bundler *assets.Bundler
	logger  ports.Logger
	opts    Options
}

// NewBuilder creates a Builder. Zero options fall back to the default layout.
func NewBuilder(
	loader ports.ConfigLoader,
	global *domain.GlobalConfig,
	bundler *assets.Bundler,
	log ports.Logger,
	opts Options,
) *Builder {
	if opts.PostsDir == "" {
		opts.PostsDir = domain.DefaultPostsDir
	}
	if opts.FeaturedPath == "" {
		opts.FeaturedPath = domain.DefaultFeaturedPath
	}
	if global == nil {
		global = &domain.GlobalConfig{}
	}
	return &Builder{
		loader:  loader,
		global:  global,
		bundler: bundler,
		logger:  log,
		opts:    opts,
	}
}

// StaticPath returns the static tree of slug.
func (b *Builder) StaticPath(slug string) string {
	return domain.StaticPath(b.opts.PostsDir, slug)
}

// Build returns the render context of slug for a page served at requestPath.
// Publish gated keys are only set for a known target on which the post is published.
func (b *Builder) Build(slug string, target domain.DeploymentTarget, requestPath string) (domain.RenderContext, error) {
	if err := ValidateSlug(slug); err != nil {
		return nil, err
	}

	staticPath := b.StaticPath(slug)
	if !b.loader.PostExists(staticPath) {
		return nil, zerr.With(zerr.Wrap(domain.ErrPostNotFound, "cannot build render context"), "slug", slug)
	}

	ctx := domain.RenderContext{}
	ctx.Merge(domain.ConstantEntries(b.global.Values))

	post, err := b.loader.LoadPost(staticPath)
	switch {
	case errors.Is(err, domain.ErrPostConfigMissing):
		b.logger.Warn(fmt.Sprintf("no %s for %s, rendering without post settings", domain.PostConfigFileName, slug))
		post = nil
	case err != nil:
		// A post config that exists but does not parse fails the post.
		return nil, zerr.With(err, "slug", slug)
	default:
		ctx.Merge(domain.ConstantEntries(post.Values))
	}

	featured, err := b.loader.LoadFeatured(b.opts.FeaturedPath)
	if err != nil {
		return nil, zerr.With(err, "slug", slug)
	}

	cfg := assets.IncluderConfig{
		StaticPath:  staticPath,
		RequestPath: requestPath,
		AssetDepth:  b.opts.AssetDepth,
		Absolute:    b.opts.Absolute,
	}
	ctx[domain.KeySlug] = slug
	ctx[domain.KeyJS] = b.bundler.NewIncluder(domain.KindJS, cfg)
	ctx[domain.KeyCSS] = b.bundler.NewIncluder(domain.KindCSS, cfg)
	ctx[domain.KeyFeatured] = featured

	if id, ok := gate(post, target); ok {
		ctx[domain.KeyPostID] = id
		ctx[domain.KeyEmbedName] = b.global.TumblrName
	}

	return ctx, nil
}

// gate returns the CMS identifier of a post when it may be embedded on target.
func gate(post *domain.PostConfig, target domain.DeploymentTarget) (string, bool) {
	if post == nil || !target.Valid() {
		return "", false
	}
	id, ok := post.TargetID(target)
	if !ok || !post.Published(target) {
		return "", false
	}
	return id, true
}

// ValidateSlug rejects slugs that would escape the posts directory.
func ValidateSlug(slug string) error {
	if slug == "" || slug == "." || slug == ".." || strings.ContainsAny(slug, `/\`) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidSlug, "cannot resolve post"), "slug", slug)
	}
	return nil
}
