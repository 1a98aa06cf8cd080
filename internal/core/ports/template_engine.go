package ports

import "io"

// TemplateEngine renders template text against a render context.
//
//go:generate go run go.uber.org/mock/mockgen -source=template_engine.go -destination=mocks/mock_template_engine.go -package=mocks
type TemplateEngine interface {
	// Render parses text under name and executes it with data into w.
	Render(w io.Writer, name, text string, data any) error
}
