package limitdocs

import (
	"context"
	"regexp"
	"strings"
)

// tableDecorator adds presentation classes to rendered tables.
// Goldmark emits bare <td>/<tr> tags; the decorator tags severity cells,
// status cells, and the enterprise tier row so the theme can color them
// without raw HTML in the markdown source.
type tableDecorator interface {
	DecorateTables(ctx context.Context, htmlContent string) string
}

// Cell classes applied by the decorator.
const (
	classSeverityCritical = "sev-critical"
	classSeverityHigh     = "sev-high"
	classStatusFixed      = "status-fixed"
	classTierHighlight    = "tier-highlight"
)

// severityCellClasses maps exact cell text to a presentation class.
var severityCellClasses = map[string]string{
	"CRITICAL": classSeverityCritical,
	"HIGH":     classSeverityHigh,
	"FIXED":    classStatusFixed,
}

// Precompiled patterns over Goldmark's table output.
var (
	// Bare data cell: captures the cell text for class lookup.
	bareCellPattern = regexp.MustCompile(`<td>([^<]*)</td>`)

	// Row whose first cell is the Enterprise tier. Goldmark puts each
	// cell on its own line, so match across the newline.
	enterpriseRowPattern = regexp.MustCompile(`(?s)<tr>(\s*<td>Enterprise</td>)`)
)

// classDecorator implements tableDecorator via regex rewriting.
type classDecorator struct{}

// newClassDecorator creates a classDecorator.
func newClassDecorator() *classDecorator {
	return &classDecorator{}
}

// DecorateTables rewrites severity/status cells and the enterprise row
// with their presentation classes. Cells with unrecognized text are
// left untouched.
func (d *classDecorator) DecorateTables(ctx context.Context, htmlContent string) string {
	// Check for cancellation
	if ctx.Err() != nil {
		return htmlContent
	}

	htmlContent = bareCellPattern.ReplaceAllStringFunc(htmlContent, func(cell string) string {
		text := strings.TrimSpace(bareCellPattern.FindStringSubmatch(cell)[1])
		class, ok := severityCellClasses[text]
		if !ok {
			return cell
		}
		return `<td class="` + class + `">` + text + `</td>`
	})

	return enterpriseRowPattern.ReplaceAllString(htmlContent, `<tr class="`+classTierHighlight+`">$1`)
}
