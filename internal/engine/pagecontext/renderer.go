package pagecontext

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/postpub/internal/core/domain"
	"go.trai.ch/postpub/internal/core/ports"
	"go.trai.ch/zerr"
)

// Renderer renders the body template of a post against its render context.
type Renderer struct {
	builder *Builder
	engine  ports.TemplateEngine
	tracer  ports.Tracer
	root    string
}

// NewRenderer creates a Renderer reading templates relative to the working directory.
func NewRenderer(builder *Builder, engine ports.TemplateEngine, tracer ports.Tracer) *Renderer {
	return &Renderer{builder: builder, engine: engine, tracer: tracer}
}

// WithRoot reads templates relative to root instead of the working directory.
func (r *Renderer) WithRoot(root string) *Renderer {
	r.root = root
	return r
}

// Builder returns the builder creating render contexts.
func (r *Renderer) Builder() *Builder {
	return r.builder
}

// Render writes the page of slug served at requestPath to w.
func (r *Renderer) Render(
	ctx context.Context,
	w io.Writer,
	slug string,
	target domain.DeploymentTarget,
	requestPath string,
) (err error) {
	_, span := r.tracer.Start(ctx, "render.post")
	span.SetAttribute("slug", slug)
	span.SetAttribute("target", target)
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	data, err := r.builder.Build(slug, target, requestPath)
	if err != nil {
		return err
	}

	templatePath := domain.IndexTemplatePath(r.builder.StaticPath(slug))
	text, err := os.ReadFile(filepath.Join(r.root, templatePath))
	if err != nil {
		return zerr.With(errors.Join(domain.ErrTemplateReadFailed, err), "path", templatePath)
	}

	if err := r.engine.Render(w, filepath.ToSlash(templatePath), string(text), data); err != nil {
		return zerr.With(err, "slug", slug)
	}
	return nil
}
