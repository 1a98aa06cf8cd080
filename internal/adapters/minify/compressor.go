// Package minify implements ports.Compressor with tdewolff/minify.
package minify

import (
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"
	"go.trai.ch/postpub/internal/core/domain"
	"go.trai.ch/postpub/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	mediaJS  = "application/javascript"
	mediaCSS = "text/css"
)

// Compressor minifies scripts and stylesheets.
type Compressor struct {
	m *minify.M
}

var _ ports.Compressor = (*Compressor)(nil)

// New creates a Compressor.
func New() *Compressor {
	m := minify.New()
	m.Add(mediaJS, &js.Minifier{})
	m.Add(mediaCSS, &css.Minifier{})
	return &Compressor{m: m}
}

// Compress minifies src according to kind.
func (c *Compressor) Compress(kind domain.AssetKind, src []byte) ([]byte, error) {
	media := mediaJS
	if kind == domain.KindCSS {
		media = mediaCSS
	}

	out, err := c.m.Bytes(media, src)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "minify"), "kind", kind.String())
	}
	return out, nil
}
