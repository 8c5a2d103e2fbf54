package apierror

import (
	"fmt"
	"net/http"

	"github.com/asecurityteam/runhttp"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RouterConfig is used to alter the behavior of the default router
// and the HTTP endpoint handlers that it manages.
type RouterConfig struct {
	// HealthCheck defines the route on which the service will respond
	// with automatic 200s. This is here to integrate with systems that
	// poll for liveliness. The default value is /healthcheck
	HealthCheck string

	// Fetcher is the Lambda function loader that will
	// be used by the runtime. There is no default for this value.
	Fetcher Fetcher

	// Responder translates every error produced by the routes into an
	// APIError. The default value is DefaultResponder().
	Responder *Responder

	// LogFn is used to extract the request logger from the request
	// context. The default value is runhttp.LoggerFromContext.
	LogFn LogFn
	// StatFn is used to extract the request stat client from the
	// request context. The default value is runhttp.StatFromContext.
	StatFn StatFn
	// URLParamFn is used to extract URL parameters from the request.
	// The default value is chi.URLParamFromCtx to match the usage of chi
	// as a mux in the default case.
	URLParamFn URLParamFn
}

func applyDefaults(conf *RouterConfig) *RouterConfig {
	if conf.HealthCheck == "" {
		conf.HealthCheck = "/healthcheck"
	}
	if conf.Responder == nil {
		conf.Responder = DefaultResponder()
	}
	if conf.LogFn == nil {
		conf.LogFn = runhttp.LoggerFromContext
	}
	if conf.StatFn == nil {
		conf.StatFn = runhttp.StatFromContext
	}
	if conf.URLParamFn == nil {
		conf.URLParamFn = chi.URLParamFromCtx
	}
	return conf
}

// ErrorWriter returns the ErrorWriter used by routers built from this
// config. It is intended for additional routes mounted on the router so
// that they share the same error translation.
func (conf *RouterConfig) ErrorWriter() *ErrorWriter {
	conf = applyDefaults(conf)
	return &ErrorWriter{
		Responder: conf.Responder,
		LogFn:     conf.LogFn,
		StatFn:    conf.StatFn,
	}
}

// NewRouter generates a mux that already has AWS Lambda API
// routes bound. This version returns a mux from the chi project
// as a convenience for cases where custom middleware or additional
// routes need to be configured.
func NewRouter(conf *RouterConfig) *chi.Mux {
	errs := conf.ErrorWriter()
	router := chi.NewMux()
	router.Use(middleware.Heartbeat(conf.HealthCheck))
	router.Use(errs.Recover)

	invokeHandler := &Invoke{
		Fetcher: &statFetcher{
			StatFn: conf.StatFn,
			Fetcher: &loggingFetcher{
				LogFn:   conf.LogFn,
				Fetcher: conf.Fetcher,
			},
		},
		URLParamFn: conf.URLParamFn,
		Errors:     errs,
	}

	router.Method(http.MethodPost, "/2015-03-31/functions/{functionName}/invocations", invokeHandler)
	router.NotFound(errs.Handle(func(w http.ResponseWriter, r *http.Request) error {
		return NewNotFoundError(fmt.Sprintf("No route for %s %s", r.Method, r.URL.Path))
	}).ServeHTTP)
	router.MethodNotAllowed(errs.Handle(func(w http.ResponseWriter, r *http.Request) error {
		return NewMethodNotAllowedError(fmt.Sprintf("Method %s not allowed for %s", r.Method, r.URL.Path))
	}).ServeHTTP)
	return router
}
