package apierror

import (
	"context"

	"github.com/asecurityteam/logevent/v2"
)

type functionFailed struct {
	Message  string `logevent:"message,default=function-failed"`
	Function string `logevent:"function"`
	Reason   string `logevent:"reason"`
}

type loggingFunction struct {
	Function
	Name  string
	LogFn LogFn
}

func (f *loggingFunction) Invoke(ctx context.Context, b []byte) ([]byte, error) {
	logger := f.LogFn(ctx)
	ctx = logevent.NewContext(ctx, logger.Copy())
	out, err := f.Function.Invoke(ctx, b)
	if err != nil {
		logger.Warn(functionFailed{Function: f.Name, Reason: err.Error()})
	}
	return out, err
}

// loggingFetcher wraps the function in a decorator that injects a logger and
// logs failed invocations.
type loggingFetcher struct {
	LogFn   LogFn
	Fetcher Fetcher
}

// Fetch calls the underlying Fetcher and adds failure logging.
func (f *loggingFetcher) Fetch(ctx context.Context, name string) (Function, error) {
	r, err := f.Fetcher.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	return &loggingFunction{Name: name, LogFn: f.LogFn, Function: r}, nil
}
