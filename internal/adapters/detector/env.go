// Package detector picks how log output is rendered for the current environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// LogFormat is the rendering of log records.
type LogFormat int

const (
	// FormatAuto picks a format from the environment.
	FormatAuto LogFormat = iota
	// FormatPretty renders colored, human oriented lines.
	FormatPretty
	// FormatJSON renders one JSON object per record.
	FormatJSON
)

// String returns the flag value selecting f.
func (f LogFormat) String() string {
	switch f {
	case FormatPretty:
		return "pretty"
	case FormatJSON:
		return "json"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the log format suited to stderr. Terminals and CI logs get
// pretty output; anything else, such as a log collector reading a pipe, gets JSON.
func DetectEnvironment() LogFormat {
	return detect(term.IsTerminal(int(os.Stderr.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) LogFormat {
	isCI := ci == "true" || ci == "1"
	if isTTY || isCI {
		return FormatPretty
	}
	return FormatJSON
}

// ResolveFormat applies the user's --log-format flag to the detected format.
// userFlag should be one of "auto", "pretty", "text", "json" or empty.
func ResolveFormat(autoDetected LogFormat, userFlag string) LogFormat {
	switch userFlag {
	case "pretty", "text":
		return FormatPretty
	case "json":
		return FormatJSON
	default:
		return autoDetected
	}
}
