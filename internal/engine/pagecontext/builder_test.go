package pagecontext_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/postpub/internal/core/domain"
	"go.trai.ch/postpub/internal/core/ports/mocks"
	"go.trai.ch/postpub/internal/engine/assets"
	"go.trai.ch/postpub/internal/engine/pagecontext"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

var featured = map[string]any{"headline": "Top story"}

func strPtr(s string) *string { return &s }

func globalConfig() *domain.GlobalConfig {
	return &domain.GlobalConfig{
		Values: map[string]any{
			"S3_BASE_URL": "https://cdn.example.com",
			"TUMBLR_NAME": "npr",
			"TITLE":       "global",
			"helper":      "hidden",
		},
		S3BaseURL:  "https://cdn.example.com",
		TumblrName: "npr",
	}
}

func publishedPost(published bool) *domain.PostConfig {
	return &domain.PostConfig{
		Values: map[string]any{
			"TITLE":       "post",
			"DEPLOY_SLUG": "demo-2024",
			"lower":       "hidden",
		},
		TargetIDs:   map[domain.DeploymentTarget]*string{domain.TargetProduction: strPtr("123")},
		IsPublished: map[domain.DeploymentTarget]bool{domain.TargetProduction: published},
		DeploySlug:  "demo-2024",
	}
}

type harness struct {
	loader  *mocks.MockConfigLoader
	builder *pagecontext.Builder
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	bundler := assets.NewBundler(mocks.NewMockCompressor(ctrl), nil, logger, assets.Options{})
	builder := pagecontext.NewBuilder(loader, globalConfig(), bundler, logger, pagecontext.Options{
		AssetDepth: domain.DefaultAssetDepth,
	})
	return &harness{loader: loader, builder: builder}
}

func (h *harness) expectPost(post *domain.PostConfig, err error) {
	static := filepath.Join("posts", "demo")
	h.loader.EXPECT().PostExists(static).Return(true)
	h.loader.EXPECT().LoadPost(static).Return(post, err)
}

func TestBuild_MergesLayers(t *testing.T) {
	h := newHarness(t)
	h.expectPost(publishedPost(true), nil)
	h.loader.EXPECT().LoadFeatured(domain.DefaultFeaturedPath).Return(featured, nil)

	ctx, err := h.builder.Build("demo", domain.TargetNone, "/posts/demo/")
	require.NoError(t, err)

	assert.Equal(t, "post", ctx["TITLE"], "post constants override global ones")
	assert.Equal(t, "https://cdn.example.com", ctx["S3_BASE_URL"])
	assert.Equal(t, "demo-2024", ctx["DEPLOY_SLUG"])
	assert.NotContains(t, ctx, "helper")
	assert.NotContains(t, ctx, "lower")
	assert.Equal(t, "demo", ctx[domain.KeySlug])
	assert.Equal(t, featured, ctx[domain.KeyFeatured])

	js, ok := ctx[domain.KeyJS].(*assets.Includer)
	require.True(t, ok)
	assert.Equal(t, domain.KindJS, js.Kind())
	css, ok := ctx[domain.KeyCSS].(*assets.Includer)
	require.True(t, ok)
	assert.Equal(t, domain.KindCSS, css.Kind())
}

func TestBuild_RequestValuesOverrideConfig(t *testing.T) {
	h := newHarness(t)
	post := publishedPost(true)
	post.Values["slug"] = "lower case is never merged"
	post.Values["JS"] = "overridden"
	h.expectPost(post, nil)
	h.loader.EXPECT().LoadFeatured(gomock.Any()).Return(featured, nil)

	ctx, err := h.builder.Build("demo", domain.TargetNone, "/posts/demo/")
	require.NoError(t, err)
	assert.Equal(t, "demo", ctx[domain.KeySlug])
	assert.IsType(t, &assets.Includer{}, ctx[domain.KeyJS])
}

func TestBuild_PublishGating(t *testing.T) {
	tests := []struct {
		name      string
		target    domain.DeploymentTarget
		post      *domain.PostConfig
		wantID    string
		wantGated bool
	}{
		{name: "published on target", target: domain.TargetProduction, post: publishedPost(true), wantID: "123", wantGated: true},
		{name: "not published", target: domain.TargetProduction, post: publishedPost(false)},
		{name: "no target", target: domain.TargetNone, post: publishedPost(true)},
		{name: "unknown target", target: domain.DeploymentTarget("qa"), post: publishedPost(true)},
		{name: "no id on target", target: domain.TargetStaging, post: func() *domain.PostConfig {
			p := publishedPost(true)
			p.IsPublished[domain.TargetStaging] = true
			p.TargetIDs[domain.TargetStaging] = nil
			return p
		}()},
		{name: "zero id is valid", target: domain.TargetStaging, post: func() *domain.PostConfig {
			p := publishedPost(true)
			p.IsPublished[domain.TargetStaging] = true
			p.TargetIDs[domain.TargetStaging] = strPtr("0")
			return p
		}(), wantID: "0", wantGated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.expectPost(tt.post, nil)
			h.loader.EXPECT().LoadFeatured(gomock.Any()).Return(featured, nil)

			ctx, err := h.builder.Build("demo", tt.target, "/posts/demo/")
			require.NoError(t, err)

			id, ok := ctx.PostID()
			assert.Equal(t, tt.wantGated, ok)
			assert.Equal(t, tt.wantID, id)

			name, ok := ctx.EmbedName()
			assert.Equal(t, tt.wantGated, ok)
			if tt.wantGated {
				assert.Equal(t, "npr", name)
			} else {
				assert.NotContains(t, ctx, domain.KeyPostID)
				assert.NotContains(t, ctx, domain.KeyEmbedName)
			}
		})
	}
}

func TestBuild_MissingPostConfigIsTolerated(t *testing.T) {
	h := newHarness(t)
	h.expectPost(nil, zerr.Wrap(domain.ErrPostConfigMissing, "no config"))
	h.loader.EXPECT().LoadFeatured(gomock.Any()).Return(featured, nil)

	ctx, err := h.builder.Build("demo", domain.TargetProduction, "/posts/demo/")
	require.NoError(t, err)

	assert.Equal(t, "global", ctx["TITLE"])
	assert.NotContains(t, ctx, domain.KeyPostID)
	assert.NotContains(t, ctx, domain.KeyEmbedName)
}

func TestBuild_PostConfigParseErrorIsFatal(t *testing.T) {
	h := newHarness(t)
	h.expectPost(nil, zerr.Wrap(domain.ErrConfigParseFailed, "bad yaml"))

	_, err := h.builder.Build("demo", domain.TargetNone, "/posts/demo/")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigParseFailed))
}

func TestBuild_MissingFeaturedIsFatal(t *testing.T) {
	h := newHarness(t)
	h.expectPost(publishedPost(true), nil)
	h.loader.EXPECT().LoadFeatured(gomock.Any()).Return(nil, zerr.Wrap(domain.ErrFeaturedContentMissing, "missing"))

	_, err := h.builder.Build("demo", domain.TargetProduction, "/posts/demo/")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFeaturedContentMissing))
}

func TestBuild_MissingTemplates(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().PostExists(filepath.Join("posts", "ghost")).Return(false)

	_, err := h.builder.Build("ghost", domain.TargetNone, "/posts/ghost/")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPostNotFound))
}

func TestValidateSlug(t *testing.T) {
	for _, slug := range []string{"", ".", "..", "a/b", `a\b`, "../etc"} {
		err := pagecontext.ValidateSlug(slug)
		require.Error(t, err, slug)
		assert.True(t, errors.Is(err, domain.ErrInvalidSlug), slug)
	}
	assert.NoError(t, pagecontext.ValidateSlug("my-story-2024"))
}
