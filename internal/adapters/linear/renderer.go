// Package linear prints the progress of a render run as one line per event, suited to
// terminals and CI logs alike.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/postpub/internal/core/ports"
	"go.trai.ch/postpub/internal/ui/output"
	"go.trai.ch/postpub/internal/ui/style"
)

var _ ports.Reporter = (*Renderer)(nil)

// Renderer implements ports.Reporter with chronological, slug prefixed lines.
type Renderer struct {
	w      io.Writer
	output *termenv.Output

	mu     sync.Mutex
	failed int
	done   int
}

// NewRenderer creates a Renderer writing to w, or stderr when w is nil.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stderr
	}
	return &Renderer{
		w:      w,
		output: output.NewWithProfile(w, output.ColorProfileANSI),
	}
}

// OnPlan prints the posts about to render.
func (r *Renderer) OnPlan(slugs []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.done, r.failed = 0, 0
	_, _ = fmt.Fprintf(r.w, "Rendering %d post(s): %s\n", len(slugs), strings.Join(slugs, ", "))
}

// OnPostStart prints a start line for slug.
func (r *Renderer) OnPostStart(slug string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.w, "%s Rendering...\n", r.prefix(slug))
}

// OnPostComplete prints the outcome of slug.
func (r *Renderer) OnPostComplete(slug, path string, elapsed time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	elapsed = elapsed.Round(time.Millisecond)
	r.done++
	if err != nil {
		r.failed++
		symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.w, "%s %s Failed after %v: %s\n", r.prefix(slug), symbol, elapsed, firstLine(err))
		return
	}

	symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.w, "%s %s Wrote %s in %v\n", r.prefix(slug), symbol, path, elapsed)
}

// Failed returns how many posts failed since the last plan.
func (r *Renderer) Failed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failed
}

func (r *Renderer) prefix(slug string) string {
	return r.output.String("[" + slug + "]").Faint().String()
}

func firstLine(err error) string {
	msg := err.Error()
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		return msg[:i]
	}
	return msg
}
