package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across modes.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds document metadata overrides.
type documentFlags struct {
	title        string
	subtitle     string
	tagline      string
	organization string
	version      string
	date         string
}

// pageFlags holds page layout overrides.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// footerFlags holds footer overrides.
type footerFlags struct {
	position   string
	text       string
	status     string
	pageNumber bool
	disabled   bool
}

// tocFlags holds table of contents overrides.
type tocFlags struct {
	title    string
	maxDepth int
	disabled bool
}

// watermarkFlags holds watermark overrides.
type watermarkFlags struct {
	text     string
	color    string
	opacity  float64
	angle    float64
	disabled bool
}

// assetFlags holds style and asset directory overrides.
type assetFlags struct {
	style     string
	assetPath string
	noStyle   bool
}

// genFlags holds all flags for the generator.
type genFlags struct {
	common      commonFlags
	output      string
	workers     int
	timeout     string
	htmlOnly    bool
	html        bool
	extras      []string
	profiles    []string
	showVersion bool
	document    documentFlags
	page        pageFlags
	footer      footerFlags
	toc         tocFlags
	watermark   watermarkFlags
	assets      assetFlags
}

// parseFlags parses command line flags.
func parseFlags(args []string) (*genFlags, error) {
	fs := flag.NewFlagSet("limitdocs", flag.ContinueOnError)
	f := &genFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output PDF path")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF rendering timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "output HTML only, skip PDF")
	fs.BoolVar(&f.html, "html", false, "output HTML alongside PDF")
	fs.StringSliceVar(&f.extras, "extra", nil, "extra markdown files appended to the report")
	fs.StringSliceVar(&f.profiles, "profile", nil, "render only the named config profiles")
	fs.BoolVar(&f.showVersion, "version", false, "print version and exit")

	// Common flags
	fs.StringVarP(&f.common.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.common.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.common.verbose, "verbose", "v", false, "show detailed progress")

	// Document metadata
	fs.StringVar(&f.document.title, "doc-title", "", "cover title (\"\" = builtin)")
	fs.StringVar(&f.document.subtitle, "doc-subtitle", "", "cover subtitle")
	fs.StringVar(&f.document.tagline, "doc-tagline", "", "cover tagline")
	fs.StringVar(&f.document.organization, "doc-org", "", "organization shown on the cover")
	fs.StringVar(&f.document.version, "doc-version", "", "document version")
	fs.StringVar(&f.document.date, "doc-date", "", "generation date (\"auto\" = today)")

	// Page layout
	fs.StringVarP(&f.page.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.page.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.page.margin, "margin", 0, "page margin in inches (0.25-3.0)")

	// Footer
	fs.StringVar(&f.footer.position, "footer-position", "", "footer position: left, center, right")
	fs.StringVar(&f.footer.text, "footer-text", "", "custom footer text")
	fs.StringVar(&f.footer.status, "footer-status", "", "footer status label (e.g. DRAFT)")
	fs.BoolVar(&f.footer.pageNumber, "footer-page-number", false, "show page numbers in footer")
	fs.BoolVar(&f.footer.disabled, "no-footer", false, "disable footer")

	// TOC
	fs.StringVar(&f.toc.title, "toc-title", "", "table of contents heading")
	fs.IntVar(&f.toc.maxDepth, "toc-max-depth", 0, "max heading depth for TOC (1-6)")
	fs.BoolVar(&f.toc.disabled, "no-toc", false, "disable table of contents")

	// Watermark
	fs.StringVar(&f.watermark.text, "wm-text", "", "watermark text")
	fs.StringVar(&f.watermark.color, "wm-color", "", "watermark color (hex)")
	fs.Float64Var(&f.watermark.opacity, "wm-opacity", 0, "watermark opacity (0.0-1.0)")
	fs.Float64Var(&f.watermark.angle, "wm-angle", 0, "watermark angle in degrees")
	fs.BoolVar(&f.watermark.disabled, "no-watermark", false, "disable watermark")

	// Assets
	fs.StringVar(&f.assets.style, "style", "", "CSS theme name, file path, or raw CSS")
	fs.StringVar(&f.assets.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.assets.noStyle, "no-style", false, "disable CSS styling")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return f, nil
}

// printUsage writes usage help to w.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `limitdocs - generate the rate limiter production documentation PDF

Usage:
  limitdocs [flags]

The document content is built in; flags and the config file control
metadata, styling, layout, and output. With no flags the PDF is written
to docs/rate-limiter-documentation.pdf.

Examples:
  limitdocs
  limitdocs -o build/rate-limiter.pdf --doc-version 1.2.0
  limitdocs --wm-text DRAFT --footer-status DRAFT
  limitdocs -c release --profile customer,internal

Run with --help for the full flag list.
`)
}
