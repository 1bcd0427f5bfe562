package limitdocs

import (
	"errors"

	"limitdocs/internal/assets"
)

// Sentinel errors for library operations.
var (
	ErrNilReport      = errors.New("report cannot be nil")
	ErrEmptyReport    = errors.New("report has no sections")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrCoverRender    = errors.New("cover template rendering failed")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Footer validation errors.
	ErrInvalidFooterPosition = errors.New("invalid footer position")

	// Watermark validation errors.
	ErrInvalidWatermarkColor   = errors.New("invalid watermark color")
	ErrInvalidWatermarkOpacity = errors.New("invalid watermark opacity")
	ErrInvalidWatermarkAngle   = errors.New("invalid watermark angle")

	// TOC validation errors.
	ErrInvalidTOCDepth = errors.New("invalid TOC depth")

	// Page breaks validation errors.
	ErrInvalidOrphans = errors.New("invalid orphans value")
	ErrInvalidWidows  = errors.New("invalid widows value")

	// Asset loading errors. Style and template sentinels are shared with
	// the assets package so errors.Is works across the wrapping boundary.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
