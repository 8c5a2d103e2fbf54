package apierror

import (
	"context"
	"fmt"
	"strings"

	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
	"github.com/go-chi/chi/v5"
)

const (
	// BuildModeHTTP is the standard mode of running an HTTP server
	// that implements parts of the Lambda API.
	BuildModeHTTP = "http"
)

const settingsPrefix = "APIERROR"

var (
	// BuildMode determines the behavior of the Start method. The suggested
	// way to set it is through build variables by adding
	// `-ldflags "-X github.com/asecurityteam/apierror.BuildMode=<value>"`
	// to `go build` or `go run` commands.
	//
	// Alternatively, the StartMode() method may be used if you prefer to pass in
	// parameters via code rather than toggling the global setting.
	BuildMode = BuildModeHTTP
)

// Mount attaches additional routes to the router of an HTTP runtime. The
// ErrorWriter is the one used by the built-in routes.
type Mount func(router chi.Router, errs *ErrorWriter)

// Start runs the runtime selected by BuildMode.
func Start(ctx context.Context, s settings.Source, f Fetcher, mounts ...Mount) error {
	return StartMode(ctx, s, f, BuildMode, mounts...)
}

// StartMode works just like Start but allows for explicit passing of the
// build mode.
func StartMode(ctx context.Context, s settings.Source, f Fetcher, mode string, mounts ...Mount) error {
	switch {
	case strings.EqualFold(mode, BuildModeHTTP):
		return StartHTTP(ctx, s, f, mounts...)
	default:
		return fmt.Errorf("unknown build mode %s", mode)
	}
}

// NewHTTP loads the Responder and the HTTP runtime settings from the source
// and returns a runtime serving the invoke API and any mounted routes.
func NewHTTP(ctx context.Context, s settings.Source, f Fetcher, mounts ...Mount) (*runhttp.Runtime, error) {
	source := &settings.PrefixSource{Source: s, Prefix: []string{settingsPrefix}}
	responder := new(Responder)
	if err := settings.NewComponent(ctx, source, &ResponderComponent{}, responder); err != nil {
		return nil, err
	}
	conf := &RouterConfig{
		Fetcher:   f,
		Responder: responder,
	}
	router := NewRouter(conf)
	errs := conf.ErrorWriter()
	for _, mount := range mounts {
		mount(router, errs)
	}
	rtC := &runhttp.Component{Handler: router}
	rt := new(runhttp.Runtime)
	err := settings.NewComponent(ctx, source, rtC, rt)
	return rt, err
}

// StartHTTP runs the HTTP API.
func StartHTTP(ctx context.Context, s settings.Source, f Fetcher, mounts ...Mount) error {
	rt, err := NewHTTP(ctx, s, f, mounts...)
	if err != nil {
		return err
	}
	return rt.Run()
}
