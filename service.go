package limitdocs

import (
	"context"
	"fmt"
	"os"
	"strings"

	"limitdocs/internal/assets"
	"limitdocs/internal/fileutil"
)

// Service orchestrates the documentation generation pipeline.
// Create with NewService, generate with Generate, and Close when done.
type Service struct {
	cfg            serviceConfig
	assetLoader    assets.AssetLoader
	preprocessor   markdownPreprocessor
	htmlConverter  htmlConverter
	tableDecorator tableDecorator
	cssInjector    cssInjector
	coverInjector  coverInjector
	tocInjector    tocInjector
	pdfConverter   pdfConverter
}

// NewService creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithStyle, WithAssetPath).
// Returns error if asset loading or template parsing fails.
func NewService(opts ...Option) (*Service, error) {
	s := &Service{
		cfg:            serviceConfig{timeout: defaultTimeout, styleInput: DefaultStyleName},
		assetLoader:    assets.NewEmbeddedLoader(),
		preprocessor:   &commonMarkPreprocessor{},
		htmlConverter:  newGoldmarkConverter(),
		tableDecorator: newClassDecorator(),
		cssInjector:    &cssInjection{},
		tocInjector:    newTOCInjection(),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Handle WithAssetPath: load styles and templates from a directory
	if s.cfg.assetPath != "" {
		loader, err := assets.NewFilesystemLoader(s.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		s.assetLoader = loader
	}

	// Resolve style input (name, path, or CSS content) to CSS content
	if err := s.resolveStyle(); err != nil {
		return nil, err
	}

	// Create cover injector from the loaded template (if not injected by tests)
	if s.coverInjector == nil {
		tmplContent, err := s.assetLoader.LoadTemplate("cover")
		if err != nil {
			return nil, fmt.Errorf("loading cover template: %w", err)
		}
		s.coverInjector, err = newCoverInjection(tmplContent)
		if err != nil {
			return nil, fmt.Errorf("initializing cover injector: %w", err)
		}
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdfConverter == nil {
		s.pdfConverter = newRodConverter(s.cfg.timeout)
	}

	return s, nil
}

// Generate runs the full pipeline and returns the result containing HTML and PDF.
// The context is used for cancellation and timeout.
// If input.HTMLOnly is true, PDF rendering is skipped (for debugging).
func (s *Service) Generate(ctx context.Context, input Input) (*Result, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	// Compose the report and append extra markdown sections.
	// Extra sections come from user files and go through preprocessing;
	// composed report markdown is already clean.
	mdContent := input.Report.Compose()
	for _, extra := range input.Extra {
		if strings.TrimSpace(extra) == "" {
			continue
		}
		mdContent += "\n\n" + s.preprocessor.PreprocessMarkdown(ctx, extra)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Convert to HTML
	htmlContent, err := s.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	// Convert highlight placeholders to <mark> tags.
	// Done after Goldmark to avoid needing html.WithUnsafe().
	htmlContent = convertMarkPlaceholders(htmlContent)

	// Tag severity/status cells and the enterprise row for the theme
	htmlContent = s.tableDecorator.DecorateTables(ctx, htmlContent)

	// Build combined CSS (page breaks + watermark + theme + user CSS)
	// Order matters: theme is the base, user CSS last so it can override
	pageBreaks := input.PageBreaks
	if pageBreaks == nil {
		// Each section starts on its own page, matching the published layout
		pageBreaks = &PageBreaks{BeforeH1: true}
	}
	cssContent := buildPageBreaksCSS(pageBreaks)
	cssContent += buildWatermarkCSS(input.Watermark)
	cssContent += s.cfg.resolvedStyle
	if input.CSS != "" {
		cssContent += "\n" + input.CSS
	}

	// Inject CSS
	htmlContent = s.cssInjector.InjectCSS(ctx, htmlContent, cssContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Inject cover (if provided)
	var cvData *coverData
	if input.Cover != nil {
		cvData = toCoverData(input.Cover)
	}
	htmlContent, err = s.coverInjector.InjectCover(ctx, htmlContent, cvData)
	if err != nil {
		return nil, fmt.Errorf("injecting cover: %w", err)
	}

	// Inject TOC (if provided) - must be after cover
	var tData *tocData
	if input.TOC != nil {
		tData = toTOCData(input.TOC)
	}
	htmlContent, err = s.tocInjector.InjectTOC(ctx, htmlContent, tData)
	if err != nil {
		return nil, fmt.Errorf("injecting TOC: %w", err)
	}

	res := &Result{HTML: []byte(htmlContent)}

	// Skip PDF rendering if HTMLOnly mode
	if input.HTMLOnly {
		return res, nil
	}

	// Render to PDF
	var footData *footerData
	if input.Footer != nil {
		footData = toFooterData(input.Footer)
	}
	pdfBytes, err := s.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{
		Footer: footData,
		Page:   input.Page,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering PDF: %w", err)
	}

	res.PDF = pdfBytes
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdfConverter != nil {
		return s.pdfConverter.Close()
	}
	return nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
// Called during NewService after options are applied and the asset loader is configured.
func (s *Service) resolveStyle() error {
	input := s.cfg.styleInput
	if input == "" {
		return nil // styling disabled
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		s.cfg.resolvedStyle = string(content)
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		s.cfg.resolvedStyle = input
		return nil
	}

	// Style name -> use asset loader
	css, err := s.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	s.cfg.resolvedStyle = css
	return nil
}

// validateInput checks that required fields are present and valid.
//
// This is a trust boundary for direct library users who build Input manually.
// CLI users have their input validated earlier at config load time.
func (s *Service) validateInput(input Input) error {
	if input.Report == nil {
		return ErrNilReport
	}
	if len(input.Report.Sections) == 0 {
		return ErrEmptyReport
	}
	if err := input.Page.Validate(); err != nil {
		return err
	}
	if err := input.Footer.Validate(); err != nil {
		return err
	}
	if err := input.Cover.Validate(); err != nil {
		return err
	}
	if err := input.TOC.Validate(); err != nil {
		return err
	}
	if err := input.Watermark.Validate(); err != nil {
		return err
	}
	if err := input.PageBreaks.Validate(); err != nil {
		return err
	}
	return nil
}

// toCoverData converts the public Cover type to the internal coverData.
func toCoverData(c *Cover) *coverData {
	if c == nil {
		return nil
	}
	return &coverData{
		Title:        c.Title,
		Subtitle:     c.Subtitle,
		Tagline:      c.Tagline,
		Organization: c.Organization,
		Version:      c.Version,
		Date:         c.Date,
	}
}

// toFooterData converts the public Footer type to the internal footerData.
func toFooterData(f *Footer) *footerData {
	if f == nil {
		return nil
	}
	return &footerData{
		Position:       f.Position,
		ShowPageNumber: f.ShowPageNumber,
		Date:           f.Date,
		Status:         f.Status,
		Text:           f.Text,
	}
}

// toTOCData converts the public TOC type to the internal tocData.
func toTOCData(t *TOC) *tocData {
	if t == nil {
		return nil
	}
	return &tocData{
		Title:    t.Title,
		MaxDepth: t.MaxDepth,
	}
}
