package main

// Notes:
// - The pool and generator are faked, no browser or goldmark involved
// - Output files are written to temp dirs

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"limitdocs"
)

// fakeGenerator returns canned bytes or an error.
type fakeGenerator struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (g *fakeGenerator) Generate(ctx context.Context, input limitdocs.Input) (*limitdocs.Result, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()

	if g.err != nil {
		return nil, g.err
	}
	res := &limitdocs.Result{HTML: []byte("<html>fake</html>")}
	if !input.HTMLOnly {
		res.PDF = []byte("%PDF-fake")
	}
	return res, nil
}

// fakePool hands out a fixed generator.
type fakePool struct {
	gen        Generator
	size       int
	acquireErr error
}

func (p *fakePool) Acquire() (Generator, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	return p.gen, nil
}

func (p *fakePool) Release(Generator) {}

func (p *fakePool) Size() int {
	if p.size == 0 {
		return 1
	}
	return p.size
}

func testJob(t *testing.T, name, output string) renderJob {
	t.Helper()

	return renderJob{
		Name:       name,
		OutputPath: output,
		Input: limitdocs.Input{
			Report: limitdocs.BuiltinReport(limitdocs.ReportMeta{}),
		},
	}
}

func TestRenderAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	gen := &fakeGenerator{}
	pool := &fakePool{gen: gen, size: 2}

	jobs := []renderJob{
		testJob(t, "a", filepath.Join(dir, "a.pdf")),
		testJob(t, "b", filepath.Join(dir, "sub", "b.pdf")),
	}

	results := renderAll(context.Background(), pool, jobs)
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	for _, res := range results {
		if res.Err != nil {
			t.Errorf("job %s error: %v", res.Job.Name, res.Err)
		}
	}
	if gen.calls != 2 {
		t.Errorf("generator called %d times, want 2", gen.calls)
	}

	// Missing parent directory must be created.
	content, err := os.ReadFile(filepath.Join(dir, "sub", "b.pdf"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(content) != "%PDF-fake" {
		t.Errorf("output = %q", content)
	}
}

func TestRenderAllEmptyJobs(t *testing.T) {
	t.Parallel()

	if got := renderAll(context.Background(), &fakePool{gen: &fakeGenerator{}}, nil); got != nil {
		t.Errorf("renderAll() with no jobs = %v, want nil", got)
	}
}

func TestRenderAllAcquireFailure(t *testing.T) {
	t.Parallel()

	pool := &fakePool{acquireErr: errors.New("browser missing")}
	jobs := []renderJob{testJob(t, "a", filepath.Join(t.TempDir(), "a.pdf"))}

	results := renderAll(context.Background(), pool, jobs)
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if !errors.Is(results[0].Err, ErrServiceInit) {
		t.Errorf("error = %v, want ErrServiceInit", results[0].Err)
	}
}

func TestRenderOneHTMLOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	job := testJob(t, "a", filepath.Join(dir, "a.pdf"))
	job.Input.HTMLOnly = true

	res := renderOne(context.Background(), &fakeGenerator{}, job)
	if res.Err != nil {
		t.Fatalf("renderOne() error: %v", res.Err)
	}

	// HTML lands next to the would-be PDF.
	content, err := os.ReadFile(filepath.Join(dir, "a.html"))
	if err != nil {
		t.Fatalf("reading HTML output: %v", err)
	}
	if string(content) != "<html>fake</html>" {
		t.Errorf("HTML output = %q", content)
	}
	if _, err := os.Stat(job.OutputPath); !os.IsNotExist(err) {
		t.Error("PDF file should not be written in HTML-only mode")
	}
}

func TestRenderOneHTMLSidecar(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	job := testJob(t, "a", filepath.Join(dir, "a.pdf"))
	job.WriteHTML = true

	res := renderOne(context.Background(), &fakeGenerator{}, job)
	if res.Err != nil {
		t.Fatalf("renderOne() error: %v", res.Err)
	}

	if _, err := os.Stat(filepath.Join(dir, "a.pdf")); err != nil {
		t.Errorf("PDF missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "a.html")); err != nil {
		t.Errorf("HTML sidecar missing: %v", err)
	}
}

func TestRenderOneGenerateError(t *testing.T) {
	t.Parallel()

	job := testJob(t, "a", filepath.Join(t.TempDir(), "a.pdf"))
	res := renderOne(context.Background(), &fakeGenerator{err: limitdocs.ErrBrowserConnect}, job)
	if !errors.Is(res.Err, limitdocs.ErrBrowserConnect) {
		t.Errorf("error = %v, want ErrBrowserConnect", res.Err)
	}
	if _, err := os.Stat(job.OutputPath); !os.IsNotExist(err) {
		t.Error("no output should be written on generation failure")
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var stdout bytes.Buffer
	env := &Environment{Now: testEnv().Now, Stdout: &stdout, Stderr: os.Stderr}

	params := &genParams{
		jobs: []renderJob{testJob(t, "default", filepath.Join(dir, "out.pdf"))},
	}
	pool := &fakePool{gen: &fakeGenerator{}}

	if err := run(params, pool, env); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if !strings.Contains(stdout.String(), "Created "+filepath.Join(dir, "out.pdf")) {
		t.Errorf("stdout = %q, want Created line", stdout.String())
	}
}

func TestRunQuiet(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	env := &Environment{Now: testEnv().Now, Stdout: &stdout, Stderr: os.Stderr}

	params := &genParams{
		quiet: true,
		jobs:  []renderJob{testJob(t, "default", filepath.Join(t.TempDir(), "out.pdf"))},
	}

	if err := run(params, &fakePool{gen: &fakeGenerator{}}, env); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("quiet run wrote %q to stdout", stdout.String())
	}
}

func TestRunCollectsJobErrors(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	env := &Environment{Now: testEnv().Now, Stdout: &stdout, Stderr: os.Stderr}

	params := &genParams{
		jobs: []renderJob{
			testJob(t, "a", filepath.Join(t.TempDir(), "a.pdf")),
		},
	}
	pool := &fakePool{gen: &fakeGenerator{err: limitdocs.ErrPDFGeneration}}

	err := run(params, pool, env)
	if !errors.Is(err, limitdocs.ErrPDFGeneration) {
		t.Errorf("run() error = %v, want wrapped ErrPDFGeneration", err)
	}
	if !strings.Contains(err.Error(), "a:") {
		t.Errorf("error %q should name the failed job", err)
	}
}

func TestHTMLOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"docs/out.pdf", "docs/out.html"},
		{"out", "out.html"},
	}

	for _, tt := range tests {
		tt := tt
		if got := htmlOutputPath(tt.input); got != tt.expected {
			t.Errorf("htmlOutputPath(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
