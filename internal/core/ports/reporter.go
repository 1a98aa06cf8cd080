package ports

import "time"

// Reporter prints the progress of a render run.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// OnPlan is called once with every slug about to render.
	OnPlan(slugs []string)
	// OnPostStart is called when a post starts rendering.
	OnPostStart(slug string)
	// OnPostComplete is called when a post finished, with the page written or the error.
	OnPostComplete(slug, output string, elapsed time.Duration, err error)
}
