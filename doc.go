// Package limitdocs assembles the rate limiter production documentation
// and renders it to PDF using headless Chrome.
//
// # Quick Start
//
// Create a service, generate the document, and close when done:
//
//	svc, err := limitdocs.NewService()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer svc.Close()
//
//	result, err := svc.Generate(ctx, limitdocs.Input{
//	    Report: limitdocs.BuiltinReport(limitdocs.ReportMeta{
//	        Version:   "1.1.0",
//	        Generated: "2024-01-15 10:30",
//	    }),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("rate-limiter-documentation.pdf", result.PDF, 0644)
//
// The result contains both the PDF bytes (result.PDF) and the intermediate
// HTML (result.HTML) for debugging. Use Input.HTMLOnly to skip PDF rendering.
//
// # Generation Pipeline
//
// Document generation follows these stages:
//
//  1. Report composition (typed sections and tables to markdown)
//  2. Markdown to HTML conversion via Goldmark (GFM, syntax highlighting)
//  3. Table decoration (severity and tier cell classes)
//  4. HTML injection (CSS theme, cover page, TOC)
//  5. PDF rendering via headless Chrome (go-rod)
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc, err := limitdocs.NewService(
//	    limitdocs.WithTimeout(2 * time.Minute),
//	    limitdocs.WithStyle("report"),
//	    limitdocs.WithAssetPath("/path/to/custom/assets"),
//	)
//
// Per-generation options are passed via Input:
//
//	result, err := svc.Generate(ctx, limitdocs.Input{
//	    Report:    report,
//	    Extra:     []string{appendixMarkdown},
//	    Page:      &limitdocs.PageSettings{Size: "a4"},
//	    Footer:    &limitdocs.Footer{ShowPageNumber: true},
//	    Cover:     &limitdocs.Cover{Title: "Redis Rate Limiter"},
//	    TOC:       &limitdocs.TOC{Title: "Table of Contents"},
//	    Watermark: &limitdocs.Watermark{Text: "DRAFT"},
//	})
//
// # Parallel Rendering
//
// For rendering multiple document profiles, use ServicePool to manage
// multiple browser instances:
//
//	pool := limitdocs.NewServicePool(2)
//	defer pool.Close()
//
//	svc := pool.Acquire()
//	defer pool.Release(svc)
//	result, err := svc.Generate(ctx, input)
//
// # Browser Requirements
//
// PDF rendering requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package limitdocs
