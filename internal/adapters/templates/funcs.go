package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// typographer parses text as plain paragraphs: no lists, headings, emphasis or links.
// Only inline HTML and the punctuation substitutions are recognized.
var typographer = goldmark.New(
	goldmark.WithParser(parser.NewParser(
		parser.WithBlockParsers(util.Prioritized(parser.NewParagraphParser(), 1000)),
		parser.WithInlineParsers(
			util.Prioritized(parser.NewRawHTMLParser(), 400),
			util.Prioritized(extension.NewTypographerParser(
				extension.WithTypographicSubstitutions(extension.TypographicSubstitutions{
					extension.EnDash: []byte("&mdash;"),
				}),
			), 9999),
		),
	)),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

var blankLines = regexp.MustCompile(`\n[ \t]*\n\s*`)

// FuncMap returns the filters available to post templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"smarty":    Smarty,
		"urlencode": URLEncode,
		"number":    Number,
		"has":       Has,
	}
}

// Smarty replaces straight quotes, dashes and ellipses with typographic entities.
// Markup and line structure in s are kept.
func Smarty(s any) (template.HTML, error) {
	src := toString(s)

	var out strings.Builder
	last := 0
	for _, loc := range blankLines.FindAllStringIndex(src, -1) {
		if err := smarten(&out, src[last:loc[0]]); err != nil {
			return "", err
		}
		out.WriteString(src[loc[0]:loc[1]])
		last = loc[1]
	}
	if err := smarten(&out, src[last:]); err != nil {
		return "", err
	}
	//nolint:gosec // Post copy is trusted markup
	return template.HTML(out.String()), nil
}

// smarten writes the typographic rendering of a single paragraph without its <p> wrapper.
func smarten(out *strings.Builder, paragraph string) error {
	var buf bytes.Buffer
	if err := typographer.Convert([]byte(paragraph), &buf); err != nil {
		return err
	}
	rendered := strings.TrimSpace(buf.String())
	rendered = strings.TrimPrefix(rendered, "<p>")
	out.WriteString(strings.TrimSuffix(rendered, "</p>"))
	return nil
}

// URLEncode escapes s for use in a query string, spaces becoming "+".
func URLEncode(s any) string {
	return url.QueryEscape(toString(s))
}

// Number formats a numeric value as a rounded integer with thousands separators.
func Number(value any) (string, error) {
	var f float64
	switch v := value.(type) {
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return "", fmt.Errorf("number: %w", err)
		}
		f = parsed
	default:
		return "", fmt.Errorf("number: unsupported value %v", value)
	}
	return humanize.Comma(int64(math.RoundToEven(f))), nil
}

// Has reports whether key is present in a map, whatever its value. Publish gated keys
// are absent rather than empty, so templates test them with has.
func Has(m any, key string) bool {
	v := reflect.ValueOf(m)
	if v.Kind() != reflect.Map || v.Type().Key().Kind() != reflect.String {
		return false
	}
	return v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key())).IsValid()
}

func toString(s any) string {
	switch v := s.(type) {
	case nil:
		return ""
	case string:
		return v
	case template.HTML:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
