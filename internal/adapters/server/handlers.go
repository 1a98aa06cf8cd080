package server

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.trai.ch/postpub/internal/core/domain"
	"go.trai.ch/postpub/internal/engine/pagecontext"
	"go.trai.ch/zerr"
)

// Keys set on the wrapper pages.
const (
	keyPosts      = "posts"
	keyPostsCount = "posts_count"
)

func (s *Server) handlePostList(w http.ResponseWriter, r *http.Request) {
	slugs, err := s.cfg.Loader.ListPosts(s.cfg.Global.PostPath)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	data := s.baseContext()
	data[keyPosts] = slugs
	data[keyPostsCount] = len(slugs)
	s.renderPage(w, r, postListPage, data)
}

func (s *Server) handleSlashRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, r.URL.Path+"/", http.StatusMovedPermanently)
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	slug := slugParam(r)

	var buf bytes.Buffer
	if err := s.cfg.Renderer.Render(r.Context(), &buf, slug, s.cfg.Target, r.URL.Path); err != nil {
		s.fail(w, r, err)
		return
	}
	writeHTML(w, buf.Bytes())
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	slug := slugParam(r)
	if err := s.checkPost(slug); err != nil {
		s.fail(w, r, err)
		return
	}

	data := s.baseContext()
	data[domain.KeySlug] = slug
	s.renderPage(w, r, parentPage, data)
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	slug := slugParam(r)
	if err := pagecontext.ValidateSlug(slug); err != nil {
		s.fail(w, r, err)
		return
	}

	www := filepath.Join(s.cfg.Root, domain.WWWPath(domain.StaticPath(s.cfg.Global.PostPath, slug)))
	prefix := "/posts/" + slug + "/"
	http.StripPrefix(prefix, http.FileServer(http.Dir(www))).ServeHTTP(w, r)
}

// slugParam returns the decoded slug of the request. Undecodable slugs come back as-is
// and are rejected by slug validation.
func slugParam(r *http.Request) string {
	raw := chi.URLParam(r, "slug")
	if slug, err := url.PathUnescape(raw); err == nil {
		return slug
	}
	return raw
}

func (s *Server) checkPost(slug string) error {
	if err := pagecontext.ValidateSlug(slug); err != nil {
		return err
	}
	if !s.cfg.Loader.PostExists(domain.StaticPath(s.cfg.Global.PostPath, slug)) {
		return zerr.With(zerr.Wrap(domain.ErrPostNotFound, "cannot preview post"), "slug", slug)
	}
	return nil
}

// baseContext returns the global constants every wrapper page sees.
func (s *Server) baseContext() domain.RenderContext {
	data := domain.RenderContext{}
	data.Merge(domain.ConstantEntries(s.cfg.Global.Values))
	return data
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, name string, data domain.RenderContext) {
	text, err := pages.ReadFile(name)
	if err != nil {
		s.fail(w, r, zerr.With(errors.Join(domain.ErrTemplateReadFailed, err), "path", name))
		return
	}

	var buf bytes.Buffer
	if err := s.cfg.Engine.Render(&buf, name, string(text), data); err != nil {
		s.fail(w, r, err)
		return
	}
	writeHTML(w, buf.Bytes())
}

// fail logs err and answers with the status matching its sentinel.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.cfg.Logger.Error(zerr.With(err, "url", r.URL.Path))
	}
	http.Error(w, firstLine(err.Error()), status)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidSlug):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrPostNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
