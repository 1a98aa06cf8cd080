// Package style provides the colors, icons and lipgloss styles shared by postpub's
// terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Accent = lipgloss.Color("#8B5CF6")
	Muted  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Palette holds the styles of one lipgloss renderer.
type Palette struct {
	Header lipgloss.Style
	Faint  lipgloss.Style
	Ok     lipgloss.Style
	Warn   lipgloss.Style
	Cell   lipgloss.Style
}

// NewPalette creates the styles for r. Cells are padded to width.
func NewPalette(r *lipgloss.Renderer, width int) Palette {
	return Palette{
		Header: r.NewStyle().Bold(true).Foreground(Accent),
		Faint:  r.NewStyle().Foreground(Muted),
		Ok:     r.NewStyle().Foreground(Green),
		Warn:   r.NewStyle().Foreground(Yellow),
		Cell:   r.NewStyle().Width(width),
	}
}
