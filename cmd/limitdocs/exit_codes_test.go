package main

import (
	"fmt"
	"os"
	"testing"

	"limitdocs"
	"limitdocs/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "browser connect", err: limitdocs.ErrBrowserConnect, want: ExitBrowser},
		{name: "pdf generation", err: limitdocs.ErrPDFGeneration, want: ExitBrowser},
		{name: "page load", err: limitdocs.ErrPageLoad, want: ExitBrowser},
		{name: "file not found", err: os.ErrNotExist, want: ExitIO},
		{name: "permission denied", err: os.ErrPermission, want: ExitIO},
		{name: "read extra", err: ErrReadExtra, want: ExitIO},
		{name: "write output", err: ErrWriteOutput, want: ExitIO},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse", err: config.ErrConfigParse, want: ExitUsage},
		{name: "duplicate profile", err: config.ErrDuplicateProfile, want: ExitUsage},
		{name: "invalid timeout", err: ErrInvalidTimeout, want: ExitUsage},
		{name: "unknown profile", err: ErrUnknownProfile, want: ExitUsage},
		{name: "invalid page size", err: limitdocs.ErrInvalidPageSize, want: ExitUsage},
		{name: "invalid watermark color", err: limitdocs.ErrInvalidWatermarkColor, want: ExitUsage},
		{name: "style not found", err: limitdocs.ErrStyleNotFound, want: ExitUsage},
		{name: "unknown error", err: fmt.Errorf("boom"), want: ExitGeneral},
		{
			name: "wrapped browser error",
			err:  fmt.Errorf("rendering PDF: %w", fmt.Errorf("%w: chrome crashed", limitdocs.ErrBrowserConnect)),
			want: ExitBrowser,
		},
		{
			name: "wrapped usage error",
			err:  fmt.Errorf("job internal: %w", limitdocs.ErrInvalidTOCDepth),
			want: ExitUsage,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
