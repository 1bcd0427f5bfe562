package limitdocs

import (
	"strings"
)

// Report is a document assembled from ordered sections.
// Compose renders it to GitHub-flavored markdown for the HTML pipeline.
type Report struct {
	Sections []Section
}

// Section is a top-level chapter rendered as an H1 heading plus blocks.
type Section struct {
	Title  string
	Blocks []Block
}

// Block is a renderable content unit within a section.
type Block interface {
	// markdown appends the block's markdown representation.
	// Blocks are separated by blank lines by the compositor.
	markdown(b *strings.Builder)
}

// Heading is a sub-heading within a section (level 2-6).
type Heading struct {
	Level int // clamped to 2-6; section titles own level 1
	Text  string
}

func (h Heading) markdown(b *strings.Builder) {
	level := h.Level
	if level < 2 {
		level = 2
	}
	if level > 6 {
		level = 6
	}
	b.WriteString(strings.Repeat("#", level))
	b.WriteString(" ")
	b.WriteString(h.Text)
}

// Paragraph is a run of prose. Inline markdown (bold, highlights) is allowed.
type Paragraph struct {
	Text string
}

func (p Paragraph) markdown(b *strings.Builder) {
	b.WriteString(p.Text)
}

// BulletList renders items as an unordered list.
type BulletList struct {
	Items []string
}

func (l BulletList) markdown(b *strings.Builder) {
	for i, item := range l.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- ")
		b.WriteString(item)
	}
}

// CodeBlock renders a fenced code block with an optional language tag.
type CodeBlock struct {
	Language string
	Code     string
}

func (c CodeBlock) markdown(b *strings.Builder) {
	b.WriteString("```")
	b.WriteString(c.Language)
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(c.Code, "\n"))
	b.WriteString("\n```")
}

// Table renders a GFM pipe table with a header row.
// An empty header or zero rows composes to nothing.
type Table struct {
	Header []string
	Rows   [][]string
}

func (t Table) markdown(b *strings.Builder) {
	if len(t.Header) == 0 || len(t.Rows) == 0 {
		return
	}

	writeTableRow(b, t.Header)
	b.WriteString("\n")

	// Delimiter row
	b.WriteString("|")
	for range t.Header {
		b.WriteString(" --- |")
	}

	for _, row := range t.Rows {
		b.WriteString("\n")
		writeTableRow(b, row)
	}
}

// writeTableRow writes a single pipe-delimited row with escaped cells.
func writeTableRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, cell := range cells {
		b.WriteString(" ")
		b.WriteString(escapeTableCell(cell))
		b.WriteString(" |")
	}
}

// escapeTableCell makes arbitrary text safe inside a pipe table cell.
// Pipes would split the cell; newlines would end the row. Angle brackets
// are escaped so text like Promise<boolean> is not parsed as raw HTML
// and dropped by the renderer.
func escapeTableCell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "<", `\<`)
}

// Compose renders the report to GitHub-flavored markdown.
// Sections become H1 headings; blocks are separated by blank lines.
func (r *Report) Compose() string {
	var b strings.Builder

	for i, sec := range r.Sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("# ")
		b.WriteString(sec.Title)

		for _, block := range sec.Blocks {
			var blockBuf strings.Builder
			block.markdown(&blockBuf)
			if blockBuf.Len() == 0 {
				continue
			}
			b.WriteString("\n\n")
			b.WriteString(blockBuf.String())
		}
	}

	if b.Len() == 0 {
		return ""
	}
	return b.String() + "\n"
}
