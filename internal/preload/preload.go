package preload

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrTimeout is returned when the assets did not load before the deadline.
	ErrTimeout = errors.New("preload: timed out")
	// ErrMissing is returned by loaders for assets that do not exist.
	ErrMissing = errors.New("preload: asset missing")
)

// Loader fetches a single asset. Load is called concurrently for different
// assets and should return promptly once ctx is done.
type Loader interface {
	Load(ctx context.Context, a Asset) error
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, a Asset) error

// Load implements Loader.
func (f LoaderFunc) Load(ctx context.Context, a Asset) error {
	return f(ctx, a)
}

// Progress is reported after every successfully loaded asset.
type Progress struct {
	Loaded int
	Total  int
	Asset  Asset
}

// Options configures Preload.
type Options struct {
	// Timeout bounds the whole barrier. Zero means no timeout.
	Timeout time.Duration
	// OnProgress, if set, is called from loader goroutines.
	OnProgress func(Progress)
}

// Result is the outcome of the barrier.
type Result struct {
	Loaded int
	Total  int
	Err    error
}

// Ready reports whether every asset loaded.
func (r Result) Ready() bool {
	return r.Err == nil && r.Loaded == r.Total
}

func (r Result) String() string {
	if r.Ready() {
		return fmt.Sprintf("loaded %d/%d assets", r.Loaded, r.Total)
	}
	return fmt.Sprintf("loaded %d/%d assets: %v", r.Loaded, r.Total, r.Err)
}

// Preload loads every asset in the manifest concurrently and waits for all
// of them. The first loader error cancels the remaining loads. Preload
// returns at the deadline even if a loader ignores its context.
func Preload(ctx context.Context, m Manifest, loader Loader, opts Options) Result {
	total := m.Len()

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	var loaded atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	for _, a := range m.Assets {
		g.Go(func() error {
			if err := loader.Load(gctx, a); err != nil {
				return fmt.Errorf("preload: %s %q: %w", a.Kind, a.Name, err)
			}
			n := loaded.Add(1)
			if opts.OnProgress != nil {
				opts.OnProgress(Progress{Loaded: int(n), Total: total, Asset: a})
			}
			return nil
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		// A load that finished together with the deadline still counts.
		select {
		case err = <-done:
		default:
			err = ctx.Err()
		}
	}

	n := int(loaded.Load())
	if err == nil && n == total {
		return Result{Loaded: n, Total: total}
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		err = fmt.Errorf("%w: %d of %d assets after %v", ErrTimeout, n, total, opts.Timeout)
	} else if err == nil {
		err = ctx.Err()
	}
	return Result{Loaded: n, Total: total, Err: err}
}
