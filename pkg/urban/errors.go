package urban

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies why an operation failed.
type Kind int

const (
	// KindUnknown is reported by KindOf for errors not produced by this package.
	KindUnknown Kind = iota
	// KindTransport means the request could not be sent, its response could not be
	// read, or the service answered with a non-2xx status.
	KindTransport
	// KindDecode means the body was not valid JSON or did not have the expected shape.
	KindDecode
	// KindEmptyResult means the service answered correctly but returned no entries.
	KindEmptyResult
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	case KindEmptyResult:
		return "empty result"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is checks against an *Error of the matching kind.
var (
	ErrTransport   = errors.New("urban: transport failure")
	ErrDecode      = errors.New("urban: decode failure")
	ErrEmptyResult = errors.New("urban: no entries returned")
)

var (
	errInvalidJSON   = errors.New("body is not valid JSON")
	errNotObject     = errors.New("body is not a JSON object")
	errMissingString = errors.New(`body has no "string" field`)
)

// Error is returned by every Client operation.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("urban %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("urban %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrDecode:
		return e.Kind == KindDecode
	case ErrEmptyResult:
		return e.Kind == KindEmptyResult
	}
	return false
}

// KindOf returns the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var uerr *Error
	if errors.As(err, &uerr) {
		return uerr.Kind
	}
	return KindUnknown
}

// StatusError reports a non-2xx answer from the service.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d body: %s", e.StatusCode, e.Body)
}

func newError(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

func responseSnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}
