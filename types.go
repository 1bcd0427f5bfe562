package limitdocs

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 1.0
)

// Orphan/widow defaults and bounds for page break control.
const (
	DefaultOrphans = 3
	DefaultWidows  = 3
	MinOrphans     = 1
	MaxOrphans     = 5
	MinWidows      = 1
	MaxWidows      = 5
)

// TOC depth bounds.
const (
	MinTOCDepth     = 1
	MaxTOCDepth     = 6
	DefaultTOCDepth = 2
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
// The defaults match the published document: US Letter, one inch margins.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Input contains generation parameters.
type Input struct {
	Report     *Report       // Document content (required)
	Extra      []string      // Extra markdown sections appended after the report (optional)
	CSS        string        // Custom CSS appended after the theme (optional)
	Page       *PageSettings // Page settings (optional, nil = defaults)
	Footer     *Footer       // Footer config (optional)
	Cover      *Cover        // Cover page config (optional)
	TOC        *TOC          // Table of contents config (optional)
	Watermark  *Watermark    // Watermark config (optional)
	PageBreaks *PageBreaks   // Page break config (optional)
	HTMLOnly   bool          // Skip PDF rendering, return HTML only
}

// Result holds the generation output.
type Result struct {
	HTML []byte // Assembled HTML document
	PDF  []byte // Rendered PDF (nil when HTMLOnly)
}

// Footer configures the PDF footer.
type Footer struct {
	Position       string // "left", "center", "right" (default: "right")
	ShowPageNumber bool
	Date           string
	Status         string
	Text           string
}

// Validate checks that footer settings are valid.
// Returns nil if f is nil (nil means no footer).
func (f *Footer) Validate() error {
	if f == nil {
		return nil
	}
	switch strings.ToLower(f.Position) {
	case "", "left", "center", "right":
		return nil
	default:
		return fmt.Errorf("%w: %q (must be left, center, or right)", ErrInvalidFooterPosition, f.Position)
	}
}

// Cover configures the title page.
type Cover struct {
	Title        string
	Subtitle     string
	Tagline      string
	Organization string
	Version      string
	Date         string
}

// Validate checks that cover settings are valid.
// Returns nil if c is nil (nil means no cover page).
func (c *Cover) Validate() error {
	return nil
}

// TOC configures the generated table of contents.
type TOC struct {
	Title    string // Heading above the TOC (default: "Table of Contents")
	MaxDepth int    // Deepest heading level included (0 = default)
}

// Validate checks that TOC settings are valid.
// Returns nil if t is nil (nil means no TOC).
func (t *TOC) Validate() error {
	if t == nil {
		return nil
	}
	if t.MaxDepth != 0 && (t.MaxDepth < MinTOCDepth || t.MaxDepth > MaxTOCDepth) {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidTOCDepth, t.MaxDepth, MinTOCDepth, MaxTOCDepth)
	}
	return nil
}

// Watermark configures a diagonal text overlay repeated on every page.
type Watermark struct {
	Text    string
	Color   string  // hex color, e.g. "#888888"
	Opacity float64 // 0.0-1.0
	Angle   float64 // degrees, -90 to 90
}

// hexColorPattern matches 3- and 6-digit hex colors.
var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks that watermark settings are valid.
// Returns nil if w is nil (nil means no watermark).
func (w *Watermark) Validate() error {
	if w == nil {
		return nil
	}
	if w.Color != "" && !hexColorPattern.MatchString(w.Color) {
		return fmt.Errorf("%w: %q (must be #RGB or #RRGGBB)", ErrInvalidWatermarkColor, w.Color)
	}
	if w.Opacity < 0 || w.Opacity > 1 {
		return fmt.Errorf("%w: %.2f (must be between 0.0 and 1.0)", ErrInvalidWatermarkOpacity, w.Opacity)
	}
	if w.Angle < -90 || w.Angle > 90 {
		return fmt.Errorf("%w: %.1f (must be between -90 and 90)", ErrInvalidWatermarkAngle, w.Angle)
	}
	return nil
}

// PageBreaks configures page break behavior.
type PageBreaks struct {
	BeforeH1 bool // Start each top-level section on a new page
	BeforeH2 bool
	BeforeH3 bool
	Orphans  int // Min lines at page bottom (0 = default)
	Widows   int // Min lines at page top (0 = default)
}

// Validate checks that page break settings are valid.
// Returns nil if pb is nil (nil means defaults).
func (pb *PageBreaks) Validate() error {
	if pb == nil {
		return nil
	}
	if pb.Orphans != 0 && (pb.Orphans < MinOrphans || pb.Orphans > MaxOrphans) {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidOrphans, pb.Orphans, MinOrphans, MaxOrphans)
	}
	if pb.Widows != 0 && (pb.Widows < MinWidows || pb.Widows > MaxWidows) {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidWidows, pb.Widows, MinWidows, MaxWidows)
	}
	return nil
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout       time.Duration
	styleInput    string
	resolvedStyle string
	assetPath     string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// DefaultStyleName is the embedded theme used when no style is specified.
const DefaultStyleName = "report"

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("limitdocs: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithStyle sets the CSS theme by name, file path, or raw CSS content.
func WithStyle(style string) Option {
	return func(s *Service) {
		s.cfg.styleInput = style
	}
}

// WithAssetPath overrides the embedded assets with a custom directory.
func WithAssetPath(path string) Option {
	return func(s *Service) {
		s.cfg.assetPath = path
	}
}
