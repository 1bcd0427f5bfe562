package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"limitdocs/internal/fileutil"
)

// filePermissions is used for generated documents.
const filePermissions = 0o644

// Sentinel errors for generation.
var (
	ErrWriteOutput = errors.New("failed to write output file")
	ErrServiceInit = errors.New("failed to initialize generation service")
)

// renderResult holds the outcome of a single render job.
type renderResult struct {
	Job      renderJob
	Err      error
	Duration time.Duration
}

// run renders all jobs and writes their outputs.
func run(params *genParams, pool Pool, env *Environment) error {
	results := renderAll(context.Background(), pool, params.jobs)

	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.Job.Name, res.Err))
			continue
		}
		if !params.quiet {
			if params.verbose {
				fmt.Fprintf(env.Stdout, "Created %s (%s)\n", res.Job.OutputPath, res.Duration.Round(time.Millisecond))
			} else {
				fmt.Fprintf(env.Stdout, "Created %s\n", res.Job.OutputPath)
			}
		}
	}

	return errors.Join(errs...)
}

// renderAll processes jobs concurrently using the service pool.
func renderAll(ctx context.Context, pool Pool, jobs []renderJob) []renderResult {
	if len(jobs) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(jobs) {
		concurrency = len(jobs)
	}

	results := make([]renderResult, len(jobs))
	var wg sync.WaitGroup
	work := make(chan int, len(jobs))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			svc, err := pool.Acquire()
			if err != nil {
				// Service creation failed, mark remaining jobs as failed
				for idx := range work {
					results[idx] = renderResult{
						Job: jobs[idx],
						Err: fmt.Errorf("%w: %v", ErrServiceInit, err),
					}
				}
				return
			}
			defer pool.Release(svc)

			for idx := range work {
				if ctx.Err() != nil {
					results[idx] = renderResult{Job: jobs[idx], Err: ctx.Err()}
					continue
				}
				results[idx] = renderOne(ctx, svc, jobs[idx])
			}
		}()
	}

	for i := range jobs {
		work <- i
	}
	close(work)

	wg.Wait()
	return results
}

// renderOne renders a single job and writes its outputs.
func renderOne(ctx context.Context, svc Generator, job renderJob) renderResult {
	start := time.Now()
	result := renderResult{Job: job}

	res, err := svc.Generate(ctx, job.Input)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := fileutil.EnsureParentDir(job.OutputPath); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		result.Duration = time.Since(start)
		return result
	}

	if job.Input.HTMLOnly {
		htmlPath := htmlOutputPath(job.OutputPath)
		if err := os.WriteFile(htmlPath, res.HTML, filePermissions); err != nil { // #nosec G306 -- generated docs are meant to be readable
			result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		result.Duration = time.Since(start)
		return result
	}

	if err := os.WriteFile(job.OutputPath, res.PDF, filePermissions); err != nil { // #nosec G306 -- generated docs are meant to be readable
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		result.Duration = time.Since(start)
		return result
	}

	if job.WriteHTML {
		htmlPath := htmlOutputPath(job.OutputPath)
		if err := os.WriteFile(htmlPath, res.HTML, filePermissions); err != nil { // #nosec G306 -- generated docs are meant to be readable
			result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}

	result.Duration = time.Since(start)
	return result
}

// htmlOutputPath swaps the output extension for .html.
func htmlOutputPath(pdfPath string) string {
	if strings.HasSuffix(pdfPath, ".pdf") {
		return strings.TrimSuffix(pdfPath, ".pdf") + ".html"
	}
	return pdfPath + ".html"
}
