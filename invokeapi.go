package apierror

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

const (
	invocationTypeHeader          = "X-Amz-Invocation-Type"
	invocationTypeRequestResponse = "RequestResponse"
	invocationTypeEvent           = "Event"
	invocationTypeDryRun          = "DryRun"
	invocationVersionHeader       = "X-Amz-Executed-Version"
	invocationErrorHeader         = "X-Amz-Function-Error"
	invocationErrorTypeHandled    = "Handled"
	invocationErrorTypeUnhandled  = "Unhandled"
)

// bgContext is used to detach the *http.Request context from the http.Handler
// lifecycle. Typically, the request context is canceled when the hander returns.
// This is problematic when using the request context to share request scoped
// elements, such as the logger or stat client, with background tasks that will
// execute after the handler returns. This resolves that issue by keeping a
// reference to the request context and using it to lookup values but replacing
// all other context.Context methods with the context.Background() implementation.
// The result is a valid context.Context that will not expire when the source
// http.Handler returns but will maintain all context values.
type bgContext struct {
	context.Context
	Values context.Context
}

func (c *bgContext) Value(key interface{}) interface{} {
	return c.Values.Value(key)
}

// Invoke implements the API of the same name from the AWS Lambda API.
// https://docs.aws.amazon.com/lambda/latest/dg/API_Invoke.html
//
// Every failure, whether it is a missing function, an invalid request, or an
// error returned by the function, is answered through the ErrorWriter so
// that clients always receive an APIError body.
//
// -	The "Qualifier" parameter is ignored and the reported execution
//		version is always "latest".
//
// -	The "Function-Error" header is "Handled" for client errors and
//		"Unhandled" for server errors.
type Invoke struct {
	URLParamFn URLParamFn
	Fetcher    Fetcher
	Errors     *ErrorWriter
}

func (h *Invoke) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fnName := h.URLParamFn(r.Context(), "functionName")
	fn, errFn := h.Fetcher.Fetch(r.Context(), fnName)
	if errFn != nil {
		h.Errors.WriteError(w, r, errFn)
		return
	}
	fnType := r.Header.Get(invocationTypeHeader)
	if fnType == "" {
		fnType = invocationTypeRequestResponse // This is the default value in AWS.
	}
	ctx := r.Context()
	b, errRead := io.ReadAll(r.Body)
	if errRead != nil {
		h.Errors.WriteError(w, r, NewValidationError("Unable to read request payload"))
		return
	}
	w.Header().Set(invocationVersionHeader, "latest")
	switch fnType {
	case invocationTypeDryRun:
		w.WriteHeader(http.StatusNoContent)
	case invocationTypeEvent:
		ctx = &bgContext{Context: context.Background(), Values: ctx}
		go func() { _, _ = fn.Invoke(ctx, b) }()
		w.WriteHeader(http.StatusAccepted)
	case invocationTypeRequestResponse:
		rb, errInvoke := fn.Invoke(ctx, b)
		if errInvoke != nil {
			apiErr, kind := h.Errors.Responder.respond(errInvoke)
			w.Header().Set(invocationErrorHeader, functionErrorType(apiErr.Status()))
			h.Errors.write(w, r, errInvoke, apiErr, kind)
			return
		}
		w.WriteHeader(http.StatusOK)
		if len(rb) > 0 {
			_, _ = w.Write(rb)
		}
	default:
		h.Errors.WriteError(w, r, NewValidationError(
			fmt.Sprintf("InvocationType %s not valid", fnType),
			fmt.Sprintf("%s must be one of %s, %s, %s",
				invocationTypeHeader,
				invocationTypeRequestResponse,
				invocationTypeEvent,
				invocationTypeDryRun,
			),
		))
	}
}

func functionErrorType(s Status) string {
	if s.Code() >= http.StatusInternalServerError {
		return invocationErrorTypeUnhandled
	}
	return invocationErrorTypeHandled
}
