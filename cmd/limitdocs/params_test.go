package main

// Notes:
// - buildParams is exercised end to end with a fixed clock
// - Config files are written to temp dirs, never loaded from the repo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"limitdocs"
	"limitdocs/internal/config"
)

func testEnv() *Environment {
	return &Environment{
		Now:    func() time.Time { return time.Date(2024, 12, 17, 10, 30, 0, 0, time.UTC) },
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func mustParseFlags(t *testing.T, args ...string) *genFlags {
	t.Helper()

	f, err := parseFlags(args)
	if err != nil {
		t.Fatalf("parseFlags(%v) error: %v", args, err)
	}
	return f
}

func TestBuildParamsDefaults(t *testing.T) {
	t.Parallel()

	params, err := buildParams(mustParseFlags(t), testEnv())
	if err != nil {
		t.Fatalf("buildParams() error: %v", err)
	}

	if len(params.jobs) != 1 {
		t.Fatalf("jobs = %d, want 1", len(params.jobs))
	}
	job := params.jobs[0]
	if job.Name != "default" {
		t.Errorf("job name = %q, want default", job.Name)
	}
	if job.OutputPath != config.DefaultOutputPath {
		t.Errorf("output = %q, want %q", job.OutputPath, config.DefaultOutputPath)
	}
	if job.Input.Report == nil || len(job.Input.Report.Sections) == 0 {
		t.Error("job input missing builtin report")
	}
	if job.Input.Cover == nil || job.Input.Cover.Title != limitdocs.DocumentTitle {
		t.Errorf("cover = %+v, want builtin title", job.Input.Cover)
	}
	if job.Input.Cover != nil && job.Input.Cover.Organization != limitdocs.DocumentOrganization {
		t.Errorf("cover organization = %q, want %q", job.Input.Cover.Organization, limitdocs.DocumentOrganization)
	}
	if job.Input.TOC == nil {
		t.Error("TOC should be enabled by default")
	}
	if job.Input.Footer == nil || !job.Input.Footer.ShowPageNumber {
		t.Error("footer with page numbers should be enabled by default")
	}
	if job.Input.Watermark != nil {
		t.Error("no watermark by default")
	}
	if params.style != "report" {
		t.Errorf("style = %q, want report", params.style)
	}
}

func TestBuildParamsResolvesAutoDates(t *testing.T) {
	t.Parallel()

	params, err := buildParams(mustParseFlags(t), testEnv())
	if err != nil {
		t.Fatalf("buildParams() error: %v", err)
	}

	// Default document date is auto:timestamp.
	if got := params.jobs[0].Input.Cover.Date; got != "2024-12-17 10:30" {
		t.Errorf("cover date = %q, want resolved timestamp", got)
	}
}

func TestBuildParamsFlagOverrides(t *testing.T) {
	t.Parallel()

	params, err := buildParams(mustParseFlags(t,
		"-o", "build/out.pdf",
		"--doc-version", "3.0.0",
		"--wm-text", "DRAFT",
		"--no-toc",
		"--no-footer",
		"-t", "45s",
	), testEnv())
	if err != nil {
		t.Fatalf("buildParams() error: %v", err)
	}

	job := params.jobs[0]
	if job.OutputPath != "build/out.pdf" {
		t.Errorf("output = %q", job.OutputPath)
	}
	if job.Input.Cover.Version != "3.0.0" {
		t.Errorf("cover version = %q", job.Input.Cover.Version)
	}
	if job.Input.Watermark == nil || job.Input.Watermark.Text != "DRAFT" {
		t.Errorf("watermark = %+v", job.Input.Watermark)
	}
	if job.Input.TOC != nil {
		t.Error("--no-toc should remove TOC")
	}
	if job.Input.Footer != nil {
		t.Error("--no-footer should remove footer")
	}
	if params.timeout != 45*time.Second {
		t.Errorf("timeout = %v", params.timeout)
	}
}

func TestBuildParamsInvalidTimeout(t *testing.T) {
	t.Parallel()

	tests := []string{"nonsense", "-5s", "0s"}
	for _, timeout := range tests {
		if _, err := buildParams(mustParseFlags(t, "-t", timeout), testEnv()); !errors.Is(err, ErrInvalidTimeout) {
			t.Errorf("buildParams(-t %s) error = %v, want ErrInvalidTimeout", timeout, err)
		}
	}
}

func TestBuildParamsExtraFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	extra := filepath.Join(dir, "appendix.md")
	if err := os.WriteFile(extra, []byte("# Appendix\n\nExtra content."), 0o600); err != nil {
		t.Fatal(err)
	}

	params, err := buildParams(mustParseFlags(t, "--extra", extra), testEnv())
	if err != nil {
		t.Fatalf("buildParams() error: %v", err)
	}
	if len(params.jobs[0].Input.Extra) != 1 {
		t.Fatalf("extras = %d, want 1", len(params.jobs[0].Input.Extra))
	}
	if params.jobs[0].Input.Extra[0] != "# Appendix\n\nExtra content." {
		t.Errorf("extra content = %q", params.jobs[0].Input.Extra[0])
	}
}

func TestBuildParamsMissingExtraFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.md")
	if _, err := buildParams(mustParseFlags(t, "--extra", missing), testEnv()); !errors.Is(err, ErrReadExtra) {
		t.Errorf("buildParams() error = %v, want ErrReadExtra", err)
	}
}

func TestBuildParamsConfigProfiles(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "release.yaml")
	if err := os.WriteFile(cfgPath, []byte(`
output:
  path: build/docs.pdf
footer:
  enabled: true
  showPageNumber: true
profiles:
  - name: internal
    status: CONFIDENTIAL
    watermark:
      text: INTERNAL
  - name: customer
    output: build/customer.pdf
`), 0o600); err != nil {
		t.Fatal(err)
	}

	params, err := buildParams(mustParseFlags(t, "-c", cfgPath), testEnv())
	if err != nil {
		t.Fatalf("buildParams() error: %v", err)
	}
	if len(params.jobs) != 2 {
		t.Fatalf("jobs = %d, want 2", len(params.jobs))
	}

	internal := params.jobs[0]
	if internal.Name != "internal" {
		t.Errorf("job 0 name = %q", internal.Name)
	}
	if internal.OutputPath != "build/docs-internal.pdf" {
		t.Errorf("derived output = %q, want build/docs-internal.pdf", internal.OutputPath)
	}
	if internal.Input.Footer == nil || internal.Input.Footer.Status != "CONFIDENTIAL" {
		t.Errorf("footer = %+v", internal.Input.Footer)
	}
	if internal.Input.Watermark == nil || internal.Input.Watermark.Text != "INTERNAL" {
		t.Errorf("watermark = %+v", internal.Input.Watermark)
	}

	customer := params.jobs[1]
	if customer.OutputPath != "build/customer.pdf" {
		t.Errorf("customer output = %q", customer.OutputPath)
	}
	if customer.Input.Watermark != nil {
		t.Error("customer profile should have no watermark")
	}
	if customer.Input.Footer != nil && customer.Input.Footer.Status != "" {
		t.Errorf("customer footer status = %q, want inherited empty", customer.Input.Footer.Status)
	}
}

func TestBuildParamsProfileSelection(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "release.yaml")
	if err := os.WriteFile(cfgPath, []byte(`
profiles:
  - name: internal
  - name: customer
`), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Run("selects named profile", func(t *testing.T) {
		t.Parallel()

		params, err := buildParams(mustParseFlags(t, "-c", cfgPath, "--profile", "customer"), testEnv())
		if err != nil {
			t.Fatalf("buildParams() error: %v", err)
		}
		if len(params.jobs) != 1 || params.jobs[0].Name != "customer" {
			t.Errorf("jobs = %+v", params.jobs)
		}
	})

	t.Run("unknown profile rejected", func(t *testing.T) {
		t.Parallel()

		if _, err := buildParams(mustParseFlags(t, "-c", cfgPath, "--profile", "staging"), testEnv()); !errors.Is(err, ErrUnknownProfile) {
			t.Errorf("buildParams() error = %v, want ErrUnknownProfile", err)
		}
	})
}

func TestBuildParamsProfileFlagWithoutProfiles(t *testing.T) {
	t.Parallel()

	if _, err := buildParams(mustParseFlags(t, "--profile", "internal"), testEnv()); !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("buildParams() error = %v, want ErrUnknownProfile", err)
	}
}

func TestProfileOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base     string
		profile  string
		expected string
	}{
		{"docs/report.pdf", "internal", "docs/report-internal.pdf"},
		{"out.pdf", "customer", "out-customer.pdf"},
		{"noext", "x", "noext-x"},
	}

	for _, tt := range tests {
		tt := tt
		if got := profileOutputPath(tt.base, tt.profile); got != tt.expected {
			t.Errorf("profileOutputPath(%q, %q) = %q, want %q", tt.base, tt.profile, got, tt.expected)
		}
	}
}

func TestServiceOptions(t *testing.T) {
	t.Parallel()

	p := &genParams{style: "report", timeout: 10 * time.Second}
	if got := len(p.serviceOptions()); got != 2 {
		t.Errorf("serviceOptions() returned %d options, want 2", got)
	}

	p = &genParams{style: ""}
	if got := len(p.serviceOptions()); got != 1 {
		t.Errorf("serviceOptions() returned %d options, want 1", got)
	}
}
