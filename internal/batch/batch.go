// Package batch describes many files concurrently.
//
// A magic.Cookie must not be shared between goroutines, so every worker
// opens and owns its own cookie for the lifetime of the run.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/3leaps/magicprims/bindings/go/magic"
	"github.com/3leaps/magicprims/internal/log"
)

// Result is the outcome for one path.
type Result struct {
	Path string
	// Description is libmagic's answer; empty when Err is set.
	Description string
	// Err is the cookie's error state when libmagic produced no result.
	Err error
}

// Options configures [Detect].
type Options struct {
	// Config is used to open each worker's cookie.
	Config magic.Config
	// Workers bounds concurrency. Zero means runtime.NumCPU().
	Workers int
	// Logger receives per-file debug output. May be nil.
	Logger *log.Logger
}

// Detect describes paths and returns one Result per path, in input order.
//
// Per-file failures are reported in Result.Err and do not stop the run.
// The returned error is non-nil only when a worker could not open its
// cookie or ctx was cancelled; results gathered so far are still returned.
// A native call already in progress is not interrupted by cancellation.
func Detect(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	results := make([]Result, len(paths))
	jobs := make(chan int)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i := range paths {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			cookie, err := magic.OpenConfig(opts.Config)
			if err != nil {
				return err
			}
			defer cookie.Close()

			for i := range jobs {
				results[i] = describe(cookie, paths[i], opts.Logger)
			}
			return nil
		})
	}

	err := g.Wait()
	for i := range results {
		if results[i].Path == "" {
			results[i].Path = paths[i]
			if results[i].Err == nil && err != nil {
				results[i].Err = err
			}
		}
	}
	return results, err
}

func describe(cookie *magic.Cookie, path string, logger *log.Logger) Result {
	desc, ok := cookie.File(path)
	if !ok {
		err := cookie.Err()
		if err == nil {
			err = &magic.Error{Code: magic.ErrOperationFailed, Op: "file"}
		}
		logger.Debug("%s: %v", path, err)
		return Result{Path: path, Err: err}
	}
	logger.Debug("%s: %s", path, desc)
	return Result{Path: path, Description: desc}
}
