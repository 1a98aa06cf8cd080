package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/postpub/internal/app"
	"go.trai.ch/postpub/internal/ui/output"
	"go.trai.ch/postpub/internal/ui/style"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the posts of the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			posts, err := c.app.List(cmd.Context())
			if err != nil {
				return err
			}
			writePostList(cmd.OutOrStdout(), posts)
			return nil
		},
	}
}

// writePostList prints one line per post: a dot for renderable posts, a circle for
// directories without templates.
func writePostList(w io.Writer, posts []app.PostSummary) {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ProfileFor(w))

	width := 0
	for _, post := range posts {
		width = max(width, lipgloss.Width(post.Slug))
	}
	p := style.NewPalette(r, width+2)

	if len(posts) == 0 {
		_, _ = fmt.Fprintln(w, p.Faint.Render("no posts"))
		return
	}

	for _, post := range posts {
		icon := p.Ok.Render(style.Dot)
		if !post.HasTemplates {
			icon = p.Warn.Render(style.Circle)
		}
		line := icon + " " + p.Cell.Render(post.Slug) + p.Faint.Render(strings.Join(postDetails(post), ", "))
		_, _ = fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
	_, _ = fmt.Fprintf(w, "\n%s\n", p.Header.Render(fmt.Sprintf("%d post(s)", len(posts))))
}

func postDetails(post app.PostSummary) []string {
	var details []string
	if !post.HasTemplates {
		details = append(details, "no templates")
	} else if !post.HasConfig {
		details = append(details, "no post config")
	}
	if post.DeploySlug != "" {
		details = append(details, "deploys as "+post.DeploySlug)
	}
	if len(post.Published) > 0 {
		targets := make([]string, len(post.Published))
		for i, target := range post.Published {
			targets[i] = target.String()
		}
		details = append(details, "published on "+strings.Join(targets, ", "))
	}
	return details
}
