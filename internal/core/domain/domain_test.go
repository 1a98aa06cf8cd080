package domain_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/postpub/internal/core/domain"
)

func TestParseDeploymentTarget(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.DeploymentTarget
		wantErr bool
	}{
		{in: "", want: domain.TargetNone},
		{in: "production", want: domain.TargetProduction},
		{in: " Staging ", want: domain.TargetStaging},
		{in: "development", want: domain.TargetDevelopment},
		{in: "qa", want: domain.TargetNone, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseDeploymentTarget(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidDeploymentTarget))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPostConfig_TargetID(t *testing.T) {
	id := "123"
	zero := "0"
	empty := ""
	cfg := &domain.PostConfig{
		TargetIDs: map[domain.DeploymentTarget]*string{
			domain.TargetProduction:  &id,
			domain.TargetStaging:     &zero,
			domain.TargetDevelopment: &empty,
		},
	}

	got, ok := cfg.TargetID(domain.TargetProduction)
	assert.True(t, ok)
	assert.Equal(t, "123", got)

	got, ok = cfg.TargetID(domain.TargetStaging)
	assert.True(t, ok, "zero is a valid identifier")
	assert.Equal(t, "0", got)

	_, ok = cfg.TargetID(domain.TargetDevelopment)
	assert.False(t, ok)

	var missing *domain.PostConfig
	_, ok = missing.TargetID(domain.TargetProduction)
	assert.False(t, ok)
	assert.False(t, missing.Published(domain.TargetProduction))
}

func TestConstantEntries(t *testing.T) {
	got := domain.ConstantEntries(map[string]any{
		"S3_BASE_URL": "https://cdn",
		"helper":      "skip",
		"Mixed":       "skip",
		"DEBUG":       true,
	})

	assert.Equal(t, map[string]any{"S3_BASE_URL": "https://cdn", "DEBUG": true}, got)
}

func TestAssetKind_Tag(t *testing.T) {
	assert.Equal(t, `<script type="text/javascript" src="js/app.js"></script>`, domain.KindJS.Tag("js/app.js"))
	assert.Equal(t, `<link rel="stylesheet" type="text/css" href="css/a.css" />`, domain.KindCSS.Tag("css/a.css"))
}

func TestRenderContext_Keys(t *testing.T) {
	ctx := domain.RenderContext{}
	_, ok := ctx.PostID()
	assert.False(t, ok)

	ctx.Merge(map[string]any{domain.KeyPostID: "0", domain.KeyEmbedName: "npr"})
	id, ok := ctx.PostID()
	assert.True(t, ok)
	assert.Equal(t, "0", id)

	name, ok := ctx.EmbedName()
	assert.True(t, ok)
	assert.Equal(t, "npr", name)
}

func TestLayoutPaths(t *testing.T) {
	static := domain.StaticPath(domain.DefaultPostsDir, "demo")

	assert.Equal(t, "/posts/demo/", domain.PostRequestPath("demo"))
	assert.Equal(t, filepath.Join("posts", "demo", "www", "index.html"), domain.RenderedPagePath(static))
	assert.Equal(t, filepath.Join("posts", "demo", "templates", "index.html"), domain.IndexTemplatePath(static))
	assert.Equal(t, filepath.Join("posts", "demo", "post_config.yaml"), domain.PostConfigPath(static))
	assert.Equal(t, filepath.Join(".postpub", "bundles"), domain.DefaultStorePath())
}
