// Package output creates the termenv outputs postpub prints progress and tables to.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// NoColorEnv disables colors when set to a non-empty value.
const NoColorEnv = "NO_COLOR"

// Plain reports whether colors are disabled through the environment.
func Plain() bool {
	return os.Getenv(NoColorEnv) != ""
}

// ColorProfileANSI returns the profile for progress lines: basic ANSI colors, which CI
// log viewers render, or Ascii under NO_COLOR.
func ColorProfileANSI() termenv.Profile {
	if Plain() {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// ProfileFor returns the richest profile w supports. Writers that are not terminals get
// Ascii so piped output stays free of escape codes.
func ProfileFor(w io.Writer) termenv.Profile {
	if Plain() || !IsTerminal(w) {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 -- descriptors fit in int
}

// New creates an output for w using ProfileFor. A nil w writes to stderr.
func New(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return NewWithProfile(w, func() termenv.Profile { return ProfileFor(w) })
}

// NewWithProfile creates an output for w with the profile returned by profileFn.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(profileFn()), termenv.WithTTY(true))
}
