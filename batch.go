package calc

import (
	"context"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// BatchOption is an option for CalculateAll.
type BatchOption interface {
	batchOption()
}

type workersopt int

func (workersopt) batchOption() {}

// Workers limits the number of expressions calculated at once. If n is not
// positive, the limit is GOMAXPROCS.
func Workers(n int) BatchOption {
	return workersopt(n)
}

// CalculateAll calculates each expression in srcs concurrently. Results are in
// the same order as srcs. The only error is ctx's, if it is canceled before
// every expression is calculated.
func CalculateAll(ctx context.Context, srcs []string, opts ...BatchOption) ([]Result, error) {
	n := runtime.GOMAXPROCS(0)
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil: // do nothing
		case workersopt:
			if opt > 0 {
				n = int(opt)
			}
		default:
			panic("calc: unknown option type")
		}
	}
	res := make([]Result, len(srcs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(n)
	launched := 0
	for i := range srcs {
		if gctx.Err() != nil {
			break
		}
		launched++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res[i] = Calculate(srcs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if launched < len(srcs) {
		// Only cancellation of ctx stops the loop early.
		return nil, ctx.Err()
	}
	return res, nil
}

// SplitLines splits text into one expression per line, dropping lines that
// are empty or only whitespace.
func SplitLines(text string) []string {
	var r []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r = append(r, line)
	}
	return r
}
