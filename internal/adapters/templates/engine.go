// Package templates renders post and page templates with html/template.
package templates

import (
	"bytes"
	"errors"
	"html/template"
	"io"

	"go.trai.ch/postpub/internal/core/domain"
	"go.trai.ch/postpub/internal/core/ports"
	"go.trai.ch/zerr"
)

// Engine implements ports.TemplateEngine. Templates are parsed on every render so edits
// to post templates show up without a restart.
type Engine struct {
	funcs template.FuncMap
}

var _ ports.TemplateEngine = (*Engine)(nil)

// New creates an Engine with the post filters installed.
func New() *Engine {
	return &Engine{funcs: FuncMap()}
}

// Render parses text under name and executes it with data. Nothing is written to w when
// parsing or execution fails.
func (e *Engine) Render(w io.Writer, name, text string, data any) error {
	tmpl, err := template.New(name).Funcs(e.funcs).Parse(text)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrTemplateParseFailed, err), "template", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return zerr.With(errors.Join(domain.ErrTemplateExecFailed, err), "template", name)
	}

	_, err = buf.WriteTo(w)
	return err
}
