package report

import (
	"strings"

	"time-helper/internal/errors"
)

// Format selects an output rendering.
type Format string

const (
	FormatTerminal Format = "terminal"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
)

// ParseFormat validates a format selector. An unrecognized value is a
// caller error, reported distinctly from data-validation failures.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatTerminal:
		return FormatTerminal, nil
	case FormatMarkdown:
		return FormatMarkdown, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", errors.NewFormatError(value)
	}
}

// Render maps a report to text in the requested format. All formatters are
// pure: same report, same options, same output.
func Render(rep *RangeReport, format Format, opts Options) (string, error) {
	switch format {
	case FormatTerminal:
		return RenderTerminal(rep, opts), nil
	case FormatMarkdown:
		return RenderMarkdown(rep, opts), nil
	case FormatCSV:
		return RenderCSV(rep, opts), nil
	default:
		return "", errors.NewFormatError(string(format))
	}
}
