package apierror

import (
	"bytes"
	"encoding/json"
)

// APIError is the structured error returned across the API boundary. It is
// immutable once built and must be constructed with an APIErrorBuilder.
type APIError struct {
	status    Status
	message   string
	subErrors []string
}

// Status returns the response status.
func (e APIError) Status() Status {
	return e.status
}

// Message returns the client facing message.
func (e APIError) Message() string {
	return e.message
}

// SubErrors returns a copy of the detailed error list. The result is never
// nil.
func (e APIError) SubErrors() []string {
	return append([]string{}, e.subErrors...)
}

// MarshalJSON renders the error as
//
//	{"status":"NOT_FOUND","message":"...","subErrors":[...]}
//
// The subErrors field is always present and is an empty array when there
// are no sub-errors.
func (e APIError) MarshalJSON() ([]byte, error) {
	status, err := e.status.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(`{"status":`)
	buf.Write(status)
	buf.WriteString(`,"message":`)
	if err := writeJSONString(&buf, e.message); err != nil {
		return nil, err
	}
	buf.WriteString(`,"subErrors":[`)
	for i, sub := range e.subErrors {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, sub); err != nil {
			return nil, err
		}
	}
	buf.WriteString(`]}`)
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an error written by MarshalJSON. A missing or null
// subErrors field decodes as an empty list.
func (e *APIError) UnmarshalJSON(b []byte) error {
	var wire struct {
		Status    *Status  `json:"status"`
		Message   string   `json:"message"`
		SubErrors []string `json:"subErrors"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	if wire.Status == nil {
		return &InvalidStatusError{}
	}
	built, err := NewAPIErrorBuilder().
		Status(*wire.Status).
		Message(wire.Message).
		SubErrors(wire.SubErrors...).
		Build()
	if err != nil {
		return err
	}
	*e = built
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// APIErrorBuilder accumulates the attributes of an APIError. A builder may
// be reused; each call to Build returns an independent value.
type APIErrorBuilder struct {
	status    Status
	message   string
	subErrors []string
}

// NewAPIErrorBuilder returns an empty builder.
func NewAPIErrorBuilder() *APIErrorBuilder {
	return &APIErrorBuilder{}
}

// Status sets the response status.
func (b *APIErrorBuilder) Status(s Status) *APIErrorBuilder {
	b.status = s
	return b
}

// Message sets the client facing message.
func (b *APIErrorBuilder) Message(m string) *APIErrorBuilder {
	b.message = m
	return b
}

// SubErrors appends detailed errors in the order given.
func (b *APIErrorBuilder) SubErrors(subErrors ...string) *APIErrorBuilder {
	b.subErrors = append(b.subErrors, subErrors...)
	return b
}

// Build validates the accumulated attributes and returns the APIError. An
// InvalidStatusError is returned if the status was never set or is not
// recognized.
func (b *APIErrorBuilder) Build() (APIError, error) {
	if !b.status.Valid() {
		return APIError{}, &InvalidStatusError{Status: b.status}
	}
	return APIError{
		status:    b.status,
		message:   b.message,
		subErrors: append([]string{}, b.subErrors...),
	}, nil
}
