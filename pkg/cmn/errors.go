package cmn

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel causes carried by [ParseError].
var (
	ErrMalformed        = errors.New("malformed document")
	ErrNotObject        = errors.New("document must be a JSON object")
	ErrEmptyName        = errors.New("constant name is required")
	ErrUnknownType      = errors.New("unknown constant type")
	ErrTypeMismatch     = errors.New("value does not match declared type")
	ErrDuplicateName    = errors.New("duplicate constant name")
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")
)

// ParseError is returned by [FromJSON] when a document is rejected.
//
// The cause appears first, followed by the offending constant when known:
//
//	value does not match declared type: want u32 (constant_index=0 constant_name=pi)
//
// Use [errors.Is] against the sentinel causes:
//
//	if errors.Is(err, cmn.ErrDuplicateName) { ... }
type ParseError struct {
	// Index is the position in the constants array, or -1 when the error is
	// not tied to a single constant.
	Index int

	// Name is the constant name, if it could be read.
	Name string

	// Err is the underlying cause.
	Err error
}

// Error formats as "<cause> (constant_index=N constant_name=X)".
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	cause := ""
	if e.Err != nil {
		cause = e.Err.Error()
	}

	suffix := e.suffix()

	switch {
	case suffix == "":
		return cause
	case cause == "":
		return suffix
	default:
		return cause + " " + suffix
	}
}

// Unwrap returns the underlying cause for use with [errors.Is] and [errors.As].
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

func (e *ParseError) suffix() string {
	var parts []string

	if e.Index >= 0 {
		parts = append(parts, "constant_index="+strconv.Itoa(e.Index))
	}

	if e.Name != "" {
		parts = append(parts, "constant_name="+e.Name)
	}

	if len(parts) == 0 {
		return ""
	}

	return "(" + strings.Join(parts, " ") + ")"
}

func docError(err error) error {
	return &ParseError{Index: -1, Err: err}
}

func constantError(idx int, name string, err error) error {
	return &ParseError{Index: idx, Name: name, Err: err}
}
