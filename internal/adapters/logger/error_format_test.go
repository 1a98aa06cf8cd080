package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/postpub/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	sentinel := zerr.New("post config not found")

	tests := []struct {
		name string
		err  error
		want []logger.ErrorEntry
	}{
		{
			name: "standard error",
			err:  errors.New("simple error"),
			want: []logger.ErrorEntry{{Message: "simple error"}},
		},
		{
			name: "wrapped sentinel with metadata",
			err:  zerr.With(zerr.Wrap(sentinel, "no post config"), "path", "posts/demo/post_config.yaml"),
			want: []logger.ErrorEntry{
				{Message: "no post config", Metadata: map[string]any{"path": "posts/demo/post_config.yaml"}},
				{Message: "post config not found", Metadata: map[string]any{}},
			},
		},
		{
			name: "metadata on empty message moves to the joined sentinel",
			err:  zerr.With(errors.Join(sentinel, errors.New("open: no such file")), "slug", "demo"),
			want: []logger.ErrorEntry{
				{Message: "post config not found", Metadata: map[string]any{"slug": "demo"}},
				{Message: "open: no such file"},
			},
		},
		{
			name: "nil",
			err:  nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.CollectErrorEntriesExported(tt.err))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "causes",
			entries: []logger.ErrorEntry{{Message: "first"}, {Message: "second"}, {Message: "third"}},
			want:    "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "metadata sorted below each message",
			entries: []logger.ErrorEntry{
				{Message: "main", Metadata: map[string]any{"slug": "demo", "path": "posts/demo"}},
				{Message: "cause", Metadata: map[string]any{"bundle": "js/app.min.js"}},
			},
			want: "Error: main\n       path: posts/demo\n       slug: demo\n\n  Caused by:\n    → cause\n      bundle: js/app.min.js",
		},
		{
			name:    "multiline messages",
			entries: []logger.ErrorEntry{{Message: "line1\nline2"}, {Message: "cause1\ncause2"}},
			want:    "Error: line1\n       line2\n\n  Caused by:\n    → cause1\n      cause2",
		},
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntriesExported(tt.entries))
		})
	}
}
