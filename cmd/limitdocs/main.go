package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	"limitdocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}

	if flags.showVersion {
		fmt.Println("limitdocs " + Version)
		return
	}

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.common.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	env := DefaultEnv()

	params, err := buildParams(flags, env)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}

	poolSize := limitdocs.ResolvePoolSize(flags.workers)
	if params.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d, jobs: %d\n", poolSize, len(params.jobs))
	}
	pool := limitdocs.NewServicePool(poolSize, params.serviceOptions()...)
	defer pool.Close()

	if err := run(params, &servicePool{pool}, env); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
