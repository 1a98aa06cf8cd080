package domain

import "fmt"

// AssetKind selects the tag and compressor used for an asset.
type AssetKind uint8

const (
	// KindJS is a script asset.
	KindJS AssetKind = iota
	// KindCSS is a stylesheet asset.
	KindCSS
)

// String returns the short name of the kind.
func (k AssetKind) String() string {
	switch k {
	case KindJS:
		return "js"
	case KindCSS:
		return "css"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Tag formats the markup referencing url for this kind.
func (k AssetKind) Tag(url string) string {
	if k == KindCSS {
		return `<link rel="stylesheet" type="text/css" href="` + url + `" />`
	}
	return `<script type="text/javascript" src="` + url + `"></script>`
}

// AssetReference is one asset pushed by a template during a render pass.
// Identity is the path; duplicate pushes are kept.
type AssetReference struct {
	Path string
	Kind AssetKind
}

// CompiledBundle describes one bundle written to disk during a build.
type CompiledBundle struct {
	// Name is the logical bundle name passed to Render, e.g. "js/app.min.js".
	Name string `json:"name"`
	// StaticPath is the post static tree the bundle belongs to.
	StaticPath string `json:"staticPath"`
	// Kind is the asset kind of the bundle.
	Kind string `json:"kind"`
	// SourcePaths are the concatenated sources, in order.
	SourcePaths []string `json:"sourcePaths"`
	// OutputPath is the timestamped name relative to the www directory.
	OutputPath string `json:"outputPath"`
	// BuiltAt is the epoch second used in OutputPath.
	BuiltAt int64 `json:"builtAt"`
	// Digest is the xxhash of the written content.
	Digest string `json:"digest"`
}
