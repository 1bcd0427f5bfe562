package main

import (
	"errors"
	"os"

	"limitdocs"
	"limitdocs/internal/config"
)

// Exit codes for the limitdocs CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Document generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, limitdocs.ErrBrowserConnect) ||
		errors.Is(err, limitdocs.ErrPageCreate) ||
		errors.Is(err, limitdocs.ErrPageLoad) ||
		errors.Is(err, limitdocs.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadExtra) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrProfileNoName) ||
		errors.Is(err, config.ErrDuplicateProfile) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrUnknownProfile) ||
		errors.Is(err, limitdocs.ErrNilReport) ||
		errors.Is(err, limitdocs.ErrEmptyReport) ||
		errors.Is(err, limitdocs.ErrInvalidPageSize) ||
		errors.Is(err, limitdocs.ErrInvalidOrientation) ||
		errors.Is(err, limitdocs.ErrInvalidMargin) ||
		errors.Is(err, limitdocs.ErrInvalidFooterPosition) ||
		errors.Is(err, limitdocs.ErrInvalidWatermarkColor) ||
		errors.Is(err, limitdocs.ErrInvalidWatermarkOpacity) ||
		errors.Is(err, limitdocs.ErrInvalidWatermarkAngle) ||
		errors.Is(err, limitdocs.ErrInvalidTOCDepth) ||
		errors.Is(err, limitdocs.ErrInvalidOrphans) ||
		errors.Is(err, limitdocs.ErrInvalidWidows) ||
		errors.Is(err, limitdocs.ErrStyleNotFound) ||
		errors.Is(err, limitdocs.ErrTemplateNotFound) ||
		errors.Is(err, limitdocs.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
