package shapefile

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// LoadFiles decodes several .shp files concurrently, one Reader per file.
//
// Results keep the order of paths; files that failed are left out. With
// opts.SkipErrors every failure is collected and returned. Without it the
// first failure cancels the remaining work and is returned alone.
//
// Example:
//
//	files, errs := shapefile.LoadFiles(ctx, paths, shapefile.LoadOptions{
//	    Workers:    8,
//	    SkipErrors: true,
//	    Progress: func(loaded, total int) {
//	        fmt.Printf("\rLoading: %d/%d", loaded, total)
//	    },
//	    ErrorLog: os.Stderr,
//	    Read:     shapefile.DefaultReadOptions(),
//	})
func LoadFiles(ctx context.Context, paths []string, opts LoadOptions) ([]*File, []error) {
	if len(paths) == 0 {
		return []*File{}, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	files := make([]*File, len(paths))
	errs := make([]error, len(paths))
	var (
		mu     sync.Mutex
		loaded int
	)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := ReadFile(path, opts.Read)

			mu.Lock()
			loaded++
			if opts.Progress != nil {
				opts.Progress(loaded, len(paths))
			}
			if err != nil && opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "Error loading shapefile: %v\n", err)
			}
			mu.Unlock()

			if err != nil {
				errs[i] = err
				if opts.SkipErrors {
					return nil
				}
				return err
			}
			files[i] = f
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, []error{err}
	}

	result := make([]*File, 0, len(paths))
	var failures []error
	for i := range paths {
		if files[i] != nil {
			result = append(result, files[i])
		}
		if errs[i] != nil {
			failures = append(failures, errs[i])
		}
	}
	return result, failures
}
