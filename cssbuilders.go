package limitdocs

import (
	"fmt"
	"strings"
)

// defaultFontFamily is the standard font stack for PDF footers and generated content.
const defaultFontFamily = "'Helvetica Neue', Arial, sans-serif"

// watermarkFontSize is the font size for the watermark text overlay.
const watermarkFontSize = "8rem"

// Watermark defaults applied when fields are zero.
const (
	defaultWatermarkColor   = "#888888"
	defaultWatermarkOpacity = 0.12
	defaultWatermarkAngle   = -35.0
)

// buildWatermarkCSS generates CSS for a diagonal background watermark.
// The watermark uses position:fixed to appear on all pages when printed.
func buildWatermarkCSS(w *Watermark) string {
	if w == nil || w.Text == "" {
		return ""
	}

	color := w.Color
	if color == "" {
		color = defaultWatermarkColor
	}
	opacity := w.Opacity
	if opacity == 0 {
		opacity = defaultWatermarkOpacity
	}
	angle := w.Angle
	if angle == 0 {
		angle = defaultWatermarkAngle
	}

	return fmt.Sprintf(`
/* Watermark */
body::before {
  content: "%s";
  position: fixed;
  top: 50%%;
  left: 50%%;
  transform: translate(-50%%, -50%%) rotate(%.1fdeg);
  font-size: %s;
  font-weight: bold;
  color: %s;
  opacity: %.2f;
  z-index: -1;
  pointer-events: none;
  white-space: nowrap;
  font-family: %s;
}
`, escapeCSSString(w.Text), angle, watermarkFontSize, color, opacity, defaultFontFamily)
}

// escapeCSSString escapes a string for safe use in CSS content property.
// Prevents CSS injection by escaping backslashes, quotes, and newlines.
func escapeCSSString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", `\A `)
	return s
}

// buildPageBreaksCSS generates CSS for page break control.
// Always includes rules for heading protection (break-after/inside: avoid)
// and table row integrity. Page breaks before h1 reproduce the published
// document's one-chapter-per-page layout.
func buildPageBreaksCSS(pb *PageBreaks) string {
	var buf strings.Builder

	buf.WriteString(`
/* Page breaks: always active - keep headings and table rows intact */
h1, h2, h3, h4, h5, h6 {
  break-after: avoid;
  page-break-after: avoid;
  break-inside: avoid;
  page-break-inside: avoid;
}
tr {
  break-inside: avoid;
  page-break-inside: avoid;
}
`)

	// Resolve orphans/widows (0 means use default)
	orphans := DefaultOrphans
	widows := DefaultWidows
	if pb != nil {
		if pb.Orphans > 0 {
			orphans = pb.Orphans
		}
		if pb.Widows > 0 {
			widows = pb.Widows
		}
	}

	buf.WriteString(fmt.Sprintf(`
/* Page breaks: orphan/widow control */
p, li, dd, dt, blockquote {
  orphans: %d;
  widows: %d;
}
`, orphans, widows))

	if pb != nil && pb.BeforeH1 {
		buf.WriteString(`
/* Page breaks: before H1 (each section starts a new page) */
h1 {
  break-before: page;
  page-break-before: always;
}
/* Exception: no break before first H1 if it's first element in body */
body > h1:first-child {
  break-before: auto;
  page-break-before: auto;
}
`)
	}

	if pb != nil && pb.BeforeH2 {
		buf.WriteString(`
/* Page breaks: before H2 */
h2 {
  break-before: page;
  page-break-before: always;
}
`)
	}

	if pb != nil && pb.BeforeH3 {
		buf.WriteString(`
/* Page breaks: before H3 */
h3 {
  break-before: page;
  page-break-before: always;
}
`)
	}

	return buf.String()
}
