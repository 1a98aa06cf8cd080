// Package app implements the application layer for postpub.
package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/postpub/internal/adapters/server"
	"go.trai.ch/postpub/internal/adapters/watcher"
	"go.trai.ch/postpub/internal/core/domain"
	"go.trai.ch/postpub/internal/core/ports"
	"go.trai.ch/postpub/internal/engine/assets"
	"go.trai.ch/postpub/internal/engine/pagecontext"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// TargetEnvVar selects the deployment target when no --target flag is given.
const TargetEnvVar = "POSTPUB_TARGET"

// App represents the main application logic.
type App struct {
	loader     ports.ConfigLoader
	compressor ports.Compressor
	store      ports.BundleStore
	engine     ports.TemplateEngine
	tracer     ports.Tracer
	logger     ports.Logger
	watcher    ports.Watcher
	reporter   ports.Reporter
	clock      clockwork.Clock
	workers    int
	getenv     func(string) string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	compressor ports.Compressor,
	store ports.BundleStore,
	engine ports.TemplateEngine,
	tracer ports.Tracer,
	log ports.Logger,
	w ports.Watcher,
	reporter ports.Reporter,
) *App {
	return &App{
		loader:     loader,
		compressor: compressor,
		store:      store,
		engine:     engine,
		tracer:     tracer,
		logger:     log,
		watcher:    w,
		reporter:   reporter,
		clock:      clockwork.NewRealClock(),
		workers:    runtime.GOMAXPROCS(0),
		getenv:     os.Getenv,
	}
}

// WithClock replaces the clock used for bundle timestamps and render timings.
func (a *App) WithClock(c clockwork.Clock) *App {
	a.clock = c
	return a
}

// WithWorkers sets how many posts render concurrently.
func (a *App) WithWorkers(n int) *App {
	if n > 0 {
		a.workers = n
	}
	return a
}

// WithEnv replaces the environment lookup.
func (a *App) WithEnv(getenv func(string) string) *App {
	a.getenv = getenv
	return a
}

// ResolveTarget picks the deployment target: the flag value, then POSTPUB_TARGET, then
// DEPLOYMENT_TARGET of the site config.
func (a *App) ResolveTarget(flag string, global *domain.GlobalConfig) (domain.DeploymentTarget, error) {
	raw, source := flag, "--target"
	if raw == "" {
		raw, source = a.getenv(TargetEnvVar), TargetEnvVar
	}
	if raw == "" {
		return global.DeploymentTarget, nil
	}
	target, err := domain.ParseDeploymentTarget(raw)
	if err != nil {
		return domain.TargetNone, zerr.With(err, "source", source)
	}
	return target, nil
}

// RenderOptions configuration for the Render method.
type RenderOptions struct {
	Target   string
	Absolute bool
	Dev      bool
}

// Render writes the page of every slug to its www/index.html. With no slugs every post
// is rendered. Each invocation starts with an empty bundle cache.
func (a *App) Render(ctx context.Context, slugs []string, opts RenderOptions) error {
	global, err := a.loader.LoadGlobal()
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	target, err := a.ResolveTarget(opts.Target, global)
	if err != nil {
		return err
	}

	if len(slugs) == 0 {
		if slugs, err = a.renderablePosts(global); err != nil {
			return err
		}
		if len(slugs) == 0 {
			return zerr.With(zerr.Wrap(domain.ErrNoPostsFound, "nothing to render"), "path", global.PostPath)
		}
	}

	bundler := assets.NewBundler(a.compressor, a.store, a.logger, assets.Options{
		Compile: !opts.Dev,
		CDNBase: global.S3BaseURL,
	}).WithClock(a.clock)
	renderer := pagecontext.NewRenderer(a.newBuilder(global, bundler, opts.Absolute), a.engine, a.tracer)

	ctx, span := a.tracer.Start(ctx, "render")
	span.SetAttribute("posts", slugs)
	span.SetAttribute("target", target)
	defer span.End()

	a.reporter.OnPlan(slugs)

	var (
		mu     sync.Mutex
		failed []string
		g      errgroup.Group
	)
	g.SetLimit(a.workers)

	for _, slug := range slugs {
		g.Go(func() error {
			if err := a.renderPost(ctx, renderer, slug, target); err != nil {
				a.logger.Error(err)
				mu.Lock()
				failed = append(failed, slug)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(failed) > 0 {
		err := zerr.With(zerr.Wrap(domain.ErrRenderFailed, fmt.Sprintf("%d of %d posts failed", len(failed), len(slugs))),
			"posts", failed)
		span.RecordError(err)
		return err
	}
	return nil
}

func (a *App) renderPost(
	ctx context.Context,
	renderer *pagecontext.Renderer,
	slug string,
	target domain.DeploymentTarget,
) (err error) {
	start := a.clock.Now()
	a.reporter.OnPostStart(slug)

	out := domain.RenderedPagePath(renderer.Builder().StaticPath(slug))
	defer func() {
		written := out
		if err != nil {
			written = ""
		}
		a.reporter.OnPostComplete(slug, written, a.clock.Since(start), err)
	}()

	if err := ctx.Err(); err != nil {
		return zerr.With(zerr.Wrap(err, "render cancelled"), "slug", slug)
	}

	var buf bytes.Buffer
	if err := renderer.Render(ctx, &buf, slug, target, domain.PostRequestPath(slug)); err != nil {
		return err
	}
	if err := assets.WriteFileAtomic(out, buf.Bytes()); err != nil {
		return zerr.With(errors.Join(domain.ErrPageWriteFailed, err), "path", out)
	}
	return nil
}

// renderablePosts lists the posts holding a template directory. Other directories under
// the posts root are reported and skipped.
func (a *App) renderablePosts(global *domain.GlobalConfig) ([]string, error) {
	all, err := a.loader.ListPosts(global.PostPath)
	if err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(all))
	for _, slug := range all {
		if !a.loader.PostExists(domain.StaticPath(global.PostPath, slug)) {
			a.logger.Warn(fmt.Sprintf("skipping %s: no %s directory", slug, domain.TemplatesDirName))
			continue
		}
		slugs = append(slugs, slug)
	}
	return slugs, nil
}

func (a *App) newBuilder(global *domain.GlobalConfig, bundler *assets.Bundler, absolute bool) *pagecontext.Builder {
	return pagecontext.NewBuilder(a.loader, global, bundler, a.logger, pagecontext.Options{
		PostsDir:   global.PostPath,
		AssetDepth: domain.DefaultAssetDepth,
		Absolute:   absolute,
	})
}

// ServeOptions configuration for the Serve method.
type ServeOptions struct {
	Addr    string
	Target  string
	Compile bool
	Watch   bool
}

// Serve runs the preview server until ctx is done. With Watch, source changes reset the
// bundle cache so the next request recompiles.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	global, err := a.loader.LoadGlobal()
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	target, err := a.ResolveTarget(opts.Target, global)
	if err != nil {
		return err
	}

	bundler := assets.NewBundler(a.compressor, a.store, a.logger, assets.Options{
		Compile: opts.Compile,
		CDNBase: global.S3BaseURL,
	}).WithClock(a.clock)

	srv := server.New(server.Config{
		Renderer: pagecontext.NewRenderer(a.newBuilder(global, bundler, false), a.engine, a.tracer),
		Loader:   a.loader,
		Engine:   a.engine,
		Global:   global,
		Tracer:   a.tracer,
		Logger:   a.logger,
		Target:   target,
	})

	g, gctx := errgroup.WithContext(ctx)

	if opts.Watch {
		if opts.Compile {
			reloader := watcher.NewReloader(a.watcher, bundler, a.logger)
			g.Go(func() error {
				return reloader.Run(gctx, ".")
			})
		} else {
			a.logger.Info("sources are read on every request, --watch only applies with --compile")
		}
	}

	mode := "development"
	if opts.Compile {
		mode = "compiled"
	}
	a.logger.Info(fmt.Sprintf("serving %s assets on http://%s", mode, opts.Addr))

	g.Go(func() error {
		return srv.ListenAndServe(gctx, opts.Addr)
	})

	return g.Wait()
}

// PostSummary describes one post for the list command.
type PostSummary struct {
	Slug string
	// DeploySlug is DEPLOY_SLUG of the post config, empty without one.
	DeploySlug string
	// HasTemplates reports whether the post can be rendered.
	HasTemplates bool
	// HasConfig reports whether the post has a post_config.yaml.
	HasConfig bool
	// Published lists the targets the post is embedded on.
	Published []domain.DeploymentTarget
}

// List describes every post under the posts root.
func (a *App) List(_ context.Context) ([]PostSummary, error) {
	global, err := a.loader.LoadGlobal()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	slugs, err := a.loader.ListPosts(global.PostPath)
	if err != nil {
		return nil, err
	}

	summaries := make([]PostSummary, 0, len(slugs))
	for _, slug := range slugs {
		staticPath := domain.StaticPath(global.PostPath, slug)
		summary := PostSummary{Slug: slug, HasTemplates: a.loader.PostExists(staticPath)}

		post, err := a.loader.LoadPost(staticPath)
		switch {
		case errors.Is(err, domain.ErrPostConfigMissing):
		case err != nil:
			return nil, zerr.With(err, "slug", slug)
		default:
			summary.HasConfig = true
			summary.DeploySlug = post.DeploySlug
			for _, target := range domain.DeploymentTargets {
				if _, ok := post.TargetID(target); ok && post.Published(target) {
					summary.Published = append(summary.Published, target)
				}
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// All also removes the state directory itself.
	All bool
}

// Clean removes every recorded compiled bundle and its record.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	records, err := a.store.List()
	if err != nil {
		return err
	}

	var errs error
	removed := 0
	for _, record := range records {
		path := filepath.Join(domain.WWWPath(record.StaticPath), filepath.FromSlash(record.OutputPath))
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to remove bundle"), "path", path))
			continue
		}
		if err := a.store.Delete(record.StaticPath, record.Name); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		removed++
	}
	a.logger.Info(fmt.Sprintf("removed %d compiled bundle(s)", removed))

	if options.All {
		a.logger.Info(fmt.Sprintf("removing %s...", domain.StateDirName))
		if err := os.RemoveAll(domain.StateDirName); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", domain.StateDirName)))
		}
	}

	return errs
}
