package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"limitdocs"
	"limitdocs/internal/config"
	"limitdocs/internal/dateutil"
)

// Sentinel errors for parameter building.
var (
	ErrReadExtra      = errors.New("failed to read extra markdown file")
	ErrInvalidTimeout = errors.New("invalid timeout")
	ErrUnknownProfile = errors.New("unknown profile")
)

// renderJob describes one document edition to render.
type renderJob struct {
	Name       string
	OutputPath string
	WriteHTML  bool
	Input      limitdocs.Input
}

// genParams holds everything run needs after flags and config are merged.
type genParams struct {
	jobs    []renderJob
	timeout time.Duration
	style   string
	assets  string
	quiet   bool
	verbose bool
}

// serviceOptions converts merged parameters into Service options.
func (p *genParams) serviceOptions() []limitdocs.Option {
	opts := []limitdocs.Option{limitdocs.WithStyle(p.style)}
	if p.timeout > 0 {
		opts = append(opts, limitdocs.WithTimeout(p.timeout))
	}
	if p.assets != "" {
		opts = append(opts, limitdocs.WithAssetPath(p.assets))
	}
	return opts
}

// buildParams loads the config, applies flag overrides, resolves dates,
// reads extra markdown files, and expands profiles into render jobs.
func buildParams(flags *genFlags, env *Environment) (*genParams, error) {
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		loaded, err := config.Load(flags.common.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyFlags(cfg, flags)

	// Resolve "auto" dates against the current time
	now := env.Now()
	docDate, err := dateutil.ResolveDate(cfg.Document.Date, now)
	if err != nil {
		return nil, err
	}
	footerDate, err := dateutil.ResolveDate(cfg.Footer.Date, now)
	if err != nil {
		return nil, err
	}

	// Read extra markdown appendices
	extras := make([]string, 0, len(cfg.Document.ExtraFiles))
	for _, path := range cfg.Document.ExtraFiles {
		content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadExtra, path, err)
		}
		extras = append(extras, string(content))
	}

	var timeout time.Duration
	if flags.timeout != "" {
		timeout, err = time.ParseDuration(flags.timeout)
		if err != nil || timeout <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, flags.timeout)
		}
	}

	base := baseInput(cfg, docDate, footerDate, extras, flags.htmlOnly)

	jobs, err := expandProfiles(cfg, flags, base)
	if err != nil {
		return nil, err
	}

	return &genParams{
		jobs:    jobs,
		timeout: timeout,
		style:   cfg.Style.Name,
		assets:  cfg.Assets.BasePath,
		quiet:   flags.common.quiet,
		verbose: flags.common.verbose,
	}, nil
}

// applyFlags overrides config values with explicitly set flags.
// Disable flags win over enable values.
func applyFlags(cfg *config.Config, flags *genFlags) {
	if flags.output != "" {
		cfg.Output.Path = flags.output
	}
	if flags.html {
		cfg.Output.HTML = true
	}
	if len(flags.extras) > 0 {
		cfg.Document.ExtraFiles = append(cfg.Document.ExtraFiles, flags.extras...)
	}

	d := &flags.document
	if d.title != "" {
		cfg.Document.Title = d.title
	}
	if d.subtitle != "" {
		cfg.Document.Subtitle = d.subtitle
	}
	if d.tagline != "" {
		cfg.Document.Tagline = d.tagline
	}
	if d.organization != "" {
		cfg.Document.Organization = d.organization
	}
	if d.version != "" {
		cfg.Document.Version = d.version
	}
	if d.date != "" {
		cfg.Document.Date = d.date
	}

	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = flags.page.orientation
	}
	if flags.page.margin != 0 {
		cfg.Page.Margin = flags.page.margin
	}

	if flags.footer.disabled {
		cfg.Footer.Enabled = false
	} else {
		if flags.footer.position != "" {
			cfg.Footer.Position = flags.footer.position
		}
		if flags.footer.text != "" {
			cfg.Footer.Text = flags.footer.text
		}
		if flags.footer.status != "" {
			cfg.Footer.Status = flags.footer.status
		}
		if flags.footer.pageNumber {
			cfg.Footer.ShowPageNumber = true
		}
	}

	if flags.toc.disabled {
		cfg.TOC.Disabled = true
	} else {
		if flags.toc.title != "" {
			cfg.TOC.Title = flags.toc.title
		}
		if flags.toc.maxDepth != 0 {
			cfg.TOC.MaxDepth = flags.toc.maxDepth
		}
	}

	if flags.watermark.disabled {
		cfg.Watermark.Text = ""
	} else {
		if flags.watermark.text != "" {
			cfg.Watermark.Text = flags.watermark.text
		}
		if flags.watermark.color != "" {
			cfg.Watermark.Color = flags.watermark.color
		}
		if flags.watermark.opacity != 0 {
			cfg.Watermark.Opacity = flags.watermark.opacity
		}
		if flags.watermark.angle != 0 {
			cfg.Watermark.Angle = flags.watermark.angle
		}
	}

	if flags.assets.noStyle {
		cfg.Style.Name = ""
	} else if flags.assets.style != "" {
		cfg.Style.Name = flags.assets.style
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
}

// baseInput builds the generation input shared by all profiles.
func baseInput(cfg *config.Config, docDate, footerDate string, extras []string, htmlOnly bool) limitdocs.Input {
	meta := limitdocs.ReportMeta{
		Version:   cfg.Document.Version,
		Generated: docDate,
	}

	cover := &limitdocs.Cover{
		Title:        cfg.Document.Title,
		Subtitle:     cfg.Document.Subtitle,
		Tagline:      cfg.Document.Tagline,
		Organization: cfg.Document.Organization,
		Version:      meta.Version,
		Date:         docDate,
	}
	if cover.Title == "" {
		cover.Title = limitdocs.DocumentTitle
	}
	if cover.Subtitle == "" {
		cover.Subtitle = limitdocs.DocumentSubtitle
	}
	if cover.Tagline == "" {
		cover.Tagline = limitdocs.DocumentTagline
	}
	if cover.Organization == "" {
		cover.Organization = limitdocs.DocumentOrganization
	}
	if cover.Version == "" {
		cover.Version = limitdocs.DefaultVersion
	}

	input := limitdocs.Input{
		Report:   limitdocs.BuiltinReport(meta),
		Extra:    extras,
		Cover:    cover,
		HTMLOnly: htmlOnly,
	}

	if !cfg.TOC.Disabled {
		input.TOC = &limitdocs.TOC{
			Title:    cfg.TOC.Title,
			MaxDepth: cfg.TOC.MaxDepth,
		}
	}

	if cfg.Footer.Enabled {
		input.Footer = &limitdocs.Footer{
			Position:       cfg.Footer.Position,
			ShowPageNumber: cfg.Footer.ShowPageNumber,
			Date:           footerDate,
			Status:         cfg.Footer.Status,
			Text:           cfg.Footer.Text,
		}
	}

	if cfg.Watermark.Text != "" {
		input.Watermark = &limitdocs.Watermark{
			Text:    cfg.Watermark.Text,
			Color:   cfg.Watermark.Color,
			Opacity: cfg.Watermark.Opacity,
			Angle:   cfg.Watermark.Angle,
		}
	}

	if page := toPageSettings(cfg.Page); page != nil {
		input.Page = page
	}

	return input
}

// toPageSettings converts a PageConfig to PageSettings, filling defaults
// for unset fields. Returns nil when nothing is configured.
func toPageSettings(pc config.PageConfig) *limitdocs.PageSettings {
	if pc.Size == "" && pc.Orientation == "" && pc.Margin == 0 {
		return nil
	}
	page := limitdocs.DefaultPageSettings()
	if pc.Size != "" {
		page.Size = pc.Size
	}
	if pc.Orientation != "" {
		page.Orientation = pc.Orientation
	}
	if pc.Margin != 0 {
		page.Margin = pc.Margin
	}
	return page
}

// expandProfiles turns the config's profiles into render jobs.
// Without profiles a single "default" job is produced.
func expandProfiles(cfg *config.Config, flags *genFlags, base limitdocs.Input) ([]renderJob, error) {
	outputPath := cfg.Output.Path
	if outputPath == "" {
		outputPath = config.DefaultOutputPath
	}

	if len(cfg.Profiles) == 0 {
		if len(flags.profiles) > 0 {
			return nil, fmt.Errorf("%w: %s (config has no profiles)", ErrUnknownProfile, strings.Join(flags.profiles, ", "))
		}
		return []renderJob{{
			Name:       "default",
			OutputPath: outputPath,
			WriteHTML:  cfg.Output.HTML,
			Input:      base,
		}}, nil
	}

	selected := make(map[string]bool, len(flags.profiles))
	for _, name := range flags.profiles {
		selected[name] = true
	}

	var jobs []renderJob
	for _, p := range cfg.Profiles {
		if len(selected) > 0 && !selected[p.Name] {
			continue
		}
		delete(selected, p.Name)

		input := base

		if p.Status != "" {
			footer := limitdocs.Footer{}
			if base.Footer != nil {
				footer = *base.Footer
			}
			footer.Status = p.Status
			input.Footer = &footer
		}

		if p.Watermark.Text != "" {
			input.Watermark = &limitdocs.Watermark{
				Text:    p.Watermark.Text,
				Color:   p.Watermark.Color,
				Opacity: p.Watermark.Opacity,
				Angle:   p.Watermark.Angle,
			}
		}

		if page := toPageSettings(p.Page); page != nil {
			input.Page = page
		}

		out := p.Output
		if out == "" {
			out = profileOutputPath(outputPath, p.Name)
		}

		jobs = append(jobs, renderJob{
			Name:       p.Name,
			OutputPath: out,
			WriteHTML:  cfg.Output.HTML,
			Input:      input,
		})
	}

	if len(selected) > 0 {
		names := make([]string, 0, len(selected))
		for name := range selected {
			names = append(names, name)
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownProfile, strings.Join(names, ", "))
	}

	return jobs, nil
}

// profileOutputPath derives a per-profile path from the base output path:
// docs/report.pdf + "internal" -> docs/report-internal.pdf
func profileOutputPath(basePath, profile string) string {
	ext := filepath.Ext(basePath)
	return strings.TrimSuffix(basePath, ext) + "-" + profile + ext
}
