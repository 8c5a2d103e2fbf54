package apierror

import (
	"context"
	"time"

	"github.com/rs/xstats"
)

const (
	invokeStat     = "function.invoke"
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

type statFunction struct {
	Function
	Name   string
	StatFn StatFn
}

func (f *statFunction) Invoke(ctx context.Context, b []byte) ([]byte, error) {
	stat := f.StatFn(ctx)
	ctx = xstats.NewContext(ctx, stat)
	start := time.Now()
	out, err := f.Function.Invoke(ctx, b)
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeFailure
	}
	stat.Timing(invokeStat, time.Since(start), "function:"+f.Name, "outcome:"+outcome)
	return out, err
}

// statFetcher wraps the function in a decorator that injects a stat client and
// records invocation timing.
type statFetcher struct {
	StatFn  StatFn
	Fetcher Fetcher
}

// Fetch calls the underlying Fetcher and adds invocation timing.
func (f *statFetcher) Fetch(ctx context.Context, name string) (Function, error) {
	r, err := f.Fetcher.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	return &statFunction{Name: name, StatFn: f.StatFn, Function: r}, nil
}
