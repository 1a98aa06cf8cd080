// Package config loads the site, post and featured configuration documents of a project.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	"go.trai.ch/postpub/internal/core/domain"
	"go.trai.ch/postpub/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader on YAML documents under a project root.
type Loader struct {
	Logger ports.Logger
	root   string
	fs     FileSystem
}

// NewLoader creates a Loader reading the project at root from disk.
func NewLoader(logger ports.Logger, root string) *Loader {
	return NewLoaderWithFS(logger, root, NewOSFS())
}

// NewLoaderWithFS creates a Loader reading the project at root through fsys.
func NewLoaderWithFS(logger ports.Logger, root string, fsys FileSystem) *Loader {
	if root == "" {
		root = "."
	}
	return &Loader{Logger: logger, root: root, fs: fsys}
}

// Root returns the project root.
func (l *Loader) Root() string {
	return l.root
}

// LoadGlobal reads app_config.yaml from the project root.
// An unknown DEPLOYMENT_TARGET is logged and treated as no target.
func (l *Loader) LoadGlobal() (*domain.GlobalConfig, error) {
	path := l.resolve(domain.AppConfigFileName)

	var dto AppConfigDTO
	values, err := l.readYAML(path, &dto)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "cannot load site config"), "root", l.root)
	}
	if err != nil {
		return nil, err
	}

	target, err := domain.ParseDeploymentTarget(dto.DeploymentTarget)
	if err != nil {
		l.Logger.Warn(fmt.Sprintf("ignoring DEPLOYMENT_TARGET %q in %s", dto.DeploymentTarget, domain.AppConfigFileName))
	}

	postPath := dto.PostPath
	if postPath == "" {
		postPath = domain.DefaultPostsDir
	}

	return &domain.GlobalConfig{
		Values:           domain.ConstantEntries(values),
		S3BaseURL:        strings.TrimSuffix(dto.S3BaseURL, "/"),
		TumblrName:       dto.TumblrName,
		ProjectSlug:      dto.ProjectSlug,
		PostPath:         postPath,
		DeploymentTarget: target,
		Debug:            dto.Debug,
	}, nil
}

// LoadPost reads post_config.yaml from a post static tree.
func (l *Loader) LoadPost(staticPath string) (*domain.PostConfig, error) {
	path := l.resolve(domain.PostConfigPath(staticPath))

	var dto PostConfigDTO
	values, err := l.readYAML(path, &dto)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(domain.ErrPostConfigMissing, "no post config"), "path", path)
	}
	if err != nil {
		return nil, err
	}

	cfg := &domain.PostConfig{
		Values:      domain.ConstantEntries(values),
		TargetIDs:   make(map[domain.DeploymentTarget]*string, len(dto.TargetIDs)),
		IsPublished: make(map[domain.DeploymentTarget]bool, len(dto.IsPublished)),
		DeploySlug:  dto.DeploySlug,
		CopyDocURL:  dto.CopyDocURL,
	}

	for name, raw := range dto.TargetIDs {
		target, ok := l.target(name, path)
		if !ok {
			continue
		}
		cfg.TargetIDs[target] = scalarString(raw)
	}
	for name, published := range dto.IsPublished {
		target, ok := l.target(name, path)
		if !ok {
			continue
		}
		cfg.IsPublished[target] = published
	}

	return cfg, nil
}

// LoadFeatured reads the featured content document. Comments and trailing commas are
// accepted.
func (l *Loader) LoadFeatured(path string) (any, error) {
	resolved := l.resolve(path)

	data, err := l.fs.ReadFile(resolved)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(domain.ErrFeaturedContentMissing, "cannot load featured content"), "path", resolved)
	}
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", resolved)
	}

	var featured any
	if err := json.Unmarshal(jsonc.ToJSON(data), &featured); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrFeaturedContentInvalid, err), "path", resolved)
	}
	return featured, nil
}

// PostExists reports whether staticPath holds a template directory.
func (l *Loader) PostExists(staticPath string) bool {
	ok, err := l.fs.IsDir(l.resolve(domain.TemplatesPath(staticPath)))
	return err == nil && ok
}

// ListPosts returns the sorted names of every directory under postsDir.
// Hidden directories are skipped.
func (l *Loader) ListPosts(postsDir string) ([]string, error) {
	resolved := l.resolve(postsDir)

	entries, err := l.fs.ReadDir(resolved)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", resolved)
	}

	slugs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		slugs = append(slugs, entry.Name())
	}
	slices.Sort(slugs)
	return slugs, nil
}

func (l *Loader) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(l.root, path)
}

func (l *Loader) target(name, path string) (domain.DeploymentTarget, bool) {
	target, err := domain.ParseDeploymentTarget(name)
	if err != nil || target == domain.TargetNone {
		l.Logger.Warn(fmt.Sprintf("ignoring unknown deployment target %q in %s", name, path))
		return domain.TargetNone, false
	}
	return target, true
}

// readYAML decodes the document at path into target and also returns every top-level
// entry untyped, as handed to templates. Read errors keep fs.ErrNotExist matchable.
func (l *Loader) readYAML(path string, target any) (map[string]any, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}

	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}
	return values, nil
}

// scalarString converts a YAML scalar identifier to its string form. Unquoted numbers
// decode as ints, so 0 and "0" are the same identifier. Null stays nil.
func scalarString(raw any) *string {
	var s string
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		s = v
	case int:
		s = strconv.Itoa(v)
	case int64:
		s = strconv.FormatInt(v, 10)
	case uint64:
		s = strconv.FormatUint(v, 10)
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		s = fmt.Sprint(v)
	}
	return &s
}
