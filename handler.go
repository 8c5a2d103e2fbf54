package apierror

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

const (
	contentTypeHeader = "Content-Type"
	contentTypeJSON   = "application/json"
	responseStat      = "apierror.response"
)

type errorResponse struct {
	Message string `logevent:"message,default=error-response"`
	Status  string `logevent:"status"`
	Kind    string `logevent:"kind"`
	Reason  string `logevent:"reason"`
}

type panicRecovered struct {
	Message string `logevent:"message,default=panic-recovered"`
	Reason  string `logevent:"reason"`
	Written bool   `logevent:"written"`
}

// ErrorWriter is the single interception point between request handling and
// the client. Every error that leaves a handler is passed through the
// Responder and written as a JSON APIError.
type ErrorWriter struct {
	Responder *Responder
	LogFn     LogFn
	StatFn    StatFn
}

// WriteError translates the error and writes the response. The original
// error text is logged but never written to the client unless a rule
// selects it as the message.
func (ew *ErrorWriter) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr, kind := ew.Responder.respond(err)
	ew.write(w, r, err, apiErr, kind)
}

func (ew *ErrorWriter) write(w http.ResponseWriter, r *http.Request, err error, apiErr APIError, kind string) {
	status := apiErr.Status()
	event := errorResponse{
		Status: status.String(),
		Kind:   kind,
	}
	if err != nil {
		event.Reason = fmt.Sprint(err)
	}
	logger := ew.LogFn(r.Context())
	if status.Code() >= http.StatusInternalServerError {
		logger.Error(event)
	} else {
		logger.Info(event)
	}
	ew.StatFn(r.Context()).Count(responseStat, 1, "status:"+status.String())

	w.Header().Set(contentTypeHeader, contentTypeJSON)
	w.WriteHeader(status.Code())
	_ = json.NewEncoder(w).Encode(apiErr)
}

// ErrorHandlerFunc is an HTTP handler that reports failure by returning an
// error rather than writing an error response itself.
type ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts the ErrorHandlerFunc to an http.Handler. A returned error is
// written with WriteError. Handlers must not write to the response before
// returning an error.
func (ew *ErrorWriter) Handle(fn ErrorHandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			ew.WriteError(w, r, err)
		}
	})
}

// Recover is a middleware that converts a panic in the next handler into
// the fallback response. A panic raised after the handler has started the
// response is only logged because the status is already sent.
func (ew *ErrorWriter) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			if recovered == http.ErrAbortHandler {
				panic(recovered)
			}
			reason := fmt.Sprintf("%v", recovered)
			written := ww.Status() != 0
			ew.LogFn(r.Context()).Error(panicRecovered{Reason: reason, Written: written})
			if written {
				return
			}
			ew.write(w, r, fmt.Errorf("panic: %s", reason), ew.Responder.fallback(), fallbackKind)
		}()
		next.ServeHTTP(ww, r)
	})
}
