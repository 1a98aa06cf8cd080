package assets

import (
	"html/template"
	"path/filepath"
	"strings"

	"go.trai.ch/postpub/internal/core/domain"
)

// IncluderConfig describes where the page being rendered lives.
type IncluderConfig struct {
	// StaticPath is the post static tree, relative to the project root.
	StaticPath string
	// RequestPath is the URL path of the page being rendered.
	RequestPath string
	// AssetDepth is how many levels below the site root the asset root sits.
	AssetDepth int
	// Absolute emits CDN URLs instead of relative ones.
	Absolute bool
}

// Includer collects the assets of one kind pushed during a render pass.
// Templates call Push while rendering the body, then Render once to flush.
type Includer struct {
	kind    domain.AssetKind
	cfg     IncluderConfig
	bundler *Bundler
	pending []string
}

// NewIncluder creates an Includer of the given kind bound to this build.
func (b *Bundler) NewIncluder(kind domain.AssetKind, cfg IncluderConfig) *Includer {
	return &Includer{
		kind:    kind,
		cfg:     cfg,
		bundler: b,
	}
}

// Kind returns the asset kind collected by the includer.
func (i *Includer) Kind() domain.AssetKind {
	return i.kind
}

// Push appends path to the pending assets. It returns an empty string so templates can
// call it inline. Duplicates are kept.
func (i *Includer) Push(path string) string {
	i.pending = append(i.pending, path)
	return ""
}

// Pending returns a copy of the assets pushed since the last Render.
func (i *Includer) Pending() []domain.AssetReference {
	refs := make([]domain.AssetReference, len(i.pending))
	for n, p := range i.pending {
		refs[n] = domain.AssetReference{Path: p, Kind: i.kind}
	}
	return refs
}

// Render turns the pending assets into markup and clears them.
// In compiled mode the assets are bundled into bundleName.
func (i *Includer) Render(bundleName string) (template.HTML, error) {
	pending := i.pending
	i.pending = nil

	if !i.bundler.Compiling() {
		tags := make([]string, 0, len(pending))
		for _, src := range pending {
			tags = append(tags, i.kind.Tag(i.resolve(src)))
		}
		//nolint:gosec // Asset paths come from trusted post templates
		return template.HTML(strings.Join(tags, "\n")), nil
	}

	out, err := i.bundler.Compile(i.cfg.StaticPath, i.kind, bundleName, pending)
	if err != nil {
		return "", err
	}

	//nolint:gosec // Asset paths come from trusted post templates
	return template.HTML(i.kind.Tag(i.resolve(out))), nil
}

func (i *Includer) resolve(assetPath string) string {
	if i.cfg.Absolute {
		return Absolutize(assetPath, filepath.ToSlash(i.cfg.StaticPath), i.bundler.CDNBase())
	}
	return Relativize(assetPath, i.cfg.RequestPath, i.cfg.AssetDepth)
}
