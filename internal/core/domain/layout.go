package domain

import "path/filepath"

const (
	// StateDirName is the name of the internal state directory.
	StateDirName = ".postpub"

	// StoreDirName is the name of the bundle record store directory.
	StoreDirName = "bundles"

	// AppConfigFileName is the name of the site-wide configuration file.
	AppConfigFileName = "app_config.yaml"

	// PostConfigFileName is the name of the per-post configuration file.
	PostConfigFileName = "post_config.yaml"

	// DefaultPostsDir is the directory holding one static tree per post.
	DefaultPostsDir = "posts"

	// WWWDirName is the directory under a post holding its public assets.
	WWWDirName = "www"

	// TemplatesDirName is the directory under a post holding its templates.
	TemplatesDirName = "templates"

	// IndexTemplateName is the body template of a post.
	IndexTemplateName = "index.html"

	// RenderedPageName is the file a compiled render writes under www.
	RenderedPageName = "index.html"

	// DefaultFeaturedPath is the featured content document loaded into every post.
	DefaultFeaturedPath = "data/featured.json"

	// DefaultAssetDepth is the asset depth of a post page served at /posts/{slug}/.
	DefaultAssetDepth = 2

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// StaticPath returns the static tree of a post relative to the project root.
func StaticPath(postsDir, slug string) string {
	return filepath.Join(postsDir, slug)
}

// WWWPath returns the public asset directory of a static tree.
func WWWPath(staticPath string) string {
	return filepath.Join(staticPath, WWWDirName)
}

// TemplatesPath returns the template directory of a static tree.
func TemplatesPath(staticPath string) string {
	return filepath.Join(staticPath, TemplatesDirName)
}

// IndexTemplatePath returns the body template of a static tree.
func IndexTemplatePath(staticPath string) string {
	return filepath.Join(staticPath, TemplatesDirName, IndexTemplateName)
}

// PostConfigPath returns the configuration document of a static tree.
func PostConfigPath(staticPath string) string {
	return filepath.Join(staticPath, PostConfigFileName)
}

// DefaultStorePath returns the default path for the bundle record store.
// It joins .postpub and bundles.
func DefaultStorePath() string {
	return filepath.Join(StateDirName, StoreDirName)
}

// PostRequestPath returns the URL path a post page is served at, "/posts/{slug}/".
// Rendered pages use it too so relative asset URLs resolve from the www directory.
func PostRequestPath(slug string) string {
	return "/" + DefaultPostsDir + "/" + slug + "/"
}

// RenderedPagePath returns the page a compiled render of a static tree writes.
func RenderedPagePath(staticPath string) string {
	return filepath.Join(staticPath, WWWDirName, RenderedPageName)
}
