package assets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/postpub/internal/core/domain"
	"go.trai.ch/postpub/internal/engine/assets"
)

func TestTimestampedName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "js/app.min.js", want: "js/app.min.1700000000.js"},
		{name: "css/app.css", want: "css/app.1700000000.css"},
		{name: "styles/card.less", want: "styles/card.less.1700000000.css"},
		{name: "lessons/timeless.less", want: "lessons/timeless.less.1700000000.css"},
		{name: "bundle", want: "bundle.1700000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, assets.TimestampedName(tt.name, 1700000000))
		})
	}
}

func TestSourcePath(t *testing.T) {
	assert.Equal(t, "styles/card.less.css", assets.SourcePath(domain.KindCSS, "styles/card.less"))
	assert.Equal(t, "lessons/timeless.less.css", assets.SourcePath(domain.KindCSS, "lessons/timeless.less"))
	assert.Equal(t, "lessons/app.css", assets.SourcePath(domain.KindCSS, "lessons/app.css"))
	assert.Equal(t, "js/less.js", assets.SourcePath(domain.KindJS, "js/less.js"))
	assert.Equal(t, "js/app.less", assets.SourcePath(domain.KindJS, "js/app.less"))
}

func TestIsGenerated(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "posts/demo/www/js/app.min.1700000000.js", want: true},
		{name: "posts/demo/www/styles/card.less.1700000000.css", want: true},
		{name: "bundle.1700000000", want: true},
		{name: "/abs/www/js/.postpub-123456.tmp", want: true},
		{name: "posts/demo/www/js/app.js", want: false},
		{name: "posts/demo/www/js/x.v2.js", want: false},
		{name: "posts/demo/www/img/photo.2024.jpg", want: false},
		{name: "posts/demo/www/styles/card.less.css", want: false},
		{name: "posts/demo/templates/index.html", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, assets.IsGenerated(tt.name))
		})
	}
}
