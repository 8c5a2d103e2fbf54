package apierror

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Status is an HTTP response status that may be carried by an APIError.
// The value is the numeric HTTP code but the status is always serialized
// by its canonical name, such as NOT_FOUND.
type Status int

// The set of statuses an APIError may carry.
const (
	StatusBadRequest           Status = http.StatusBadRequest
	StatusUnauthorized         Status = http.StatusUnauthorized
	StatusForbidden            Status = http.StatusForbidden
	StatusNotFound             Status = http.StatusNotFound
	StatusMethodNotAllowed     Status = http.StatusMethodNotAllowed
	StatusNotAcceptable        Status = http.StatusNotAcceptable
	StatusRequestTimeout       Status = http.StatusRequestTimeout
	StatusConflict             Status = http.StatusConflict
	StatusGone                 Status = http.StatusGone
	StatusPreconditionFailed   Status = http.StatusPreconditionFailed
	StatusUnsupportedMediaType Status = http.StatusUnsupportedMediaType
	StatusUnprocessableEntity  Status = http.StatusUnprocessableEntity
	StatusTooManyRequests      Status = http.StatusTooManyRequests
	StatusInternalServerError  Status = http.StatusInternalServerError
	StatusNotImplemented       Status = http.StatusNotImplemented
	StatusBadGateway           Status = http.StatusBadGateway
	StatusServiceUnavailable   Status = http.StatusServiceUnavailable
	StatusGatewayTimeout       Status = http.StatusGatewayTimeout
)

var statusNames = map[Status]string{
	StatusBadRequest:           "BAD_REQUEST",
	StatusUnauthorized:         "UNAUTHORIZED",
	StatusForbidden:            "FORBIDDEN",
	StatusNotFound:             "NOT_FOUND",
	StatusMethodNotAllowed:     "METHOD_NOT_ALLOWED",
	StatusNotAcceptable:        "NOT_ACCEPTABLE",
	StatusRequestTimeout:       "REQUEST_TIMEOUT",
	StatusConflict:             "CONFLICT",
	StatusGone:                 "GONE",
	StatusPreconditionFailed:   "PRECONDITION_FAILED",
	StatusUnsupportedMediaType: "UNSUPPORTED_MEDIA_TYPE",
	StatusUnprocessableEntity:  "UNPROCESSABLE_ENTITY",
	StatusTooManyRequests:      "TOO_MANY_REQUESTS",
	StatusInternalServerError:  "INTERNAL_SERVER_ERROR",
	StatusNotImplemented:       "NOT_IMPLEMENTED",
	StatusBadGateway:           "BAD_GATEWAY",
	StatusServiceUnavailable:   "SERVICE_UNAVAILABLE",
	StatusGatewayTimeout:       "GATEWAY_TIMEOUT",
}

var statusesByName = func() map[string]Status {
	m := make(map[string]Status, len(statusNames))
	for s, name := range statusNames {
		m[name] = s
	}
	return m
}()

// ParseStatus resolves a canonical status name.
func ParseStatus(name string) (Status, error) {
	s, ok := statusesByName[name]
	if !ok {
		return 0, &InvalidStatusError{Name: name}
	}
	return s, nil
}

// Valid reports whether the status is one of the recognized statuses.
func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// Code returns the numeric HTTP status code.
func (s Status) Code() int {
	return int(s)
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// MarshalJSON renders the status as its canonical name. Unrecognized
// statuses cannot be serialized.
func (s Status) MarshalJSON() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, &InvalidStatusError{Status: s}
	}
	return json.Marshal(name)
}

// UnmarshalJSON parses a canonical status name.
func (s *Status) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	parsed, err := ParseStatus(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
