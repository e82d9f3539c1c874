package codederr

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
)

// ErrUndefinedCode is matched by every lookup failure for a code that is not
// part of a registry.
var ErrUndefinedCode = errors.New("undefined error code")

// UndefinedCodeError reports a code outside the registered set.
type UndefinedCodeError struct {
	Code int
}

// Error implements the error interface.
func (e *UndefinedCodeError) Error() string {
	return fmt.Sprintf("Undefined error code: %d.", e.Code)
}

// Unwrap exposes ErrUndefinedCode to errors.Is.
func (e *UndefinedCodeError) Unwrap() error {
	return ErrUndefinedCode
}

// Registry maps a contiguous range of integer codes to short labels. The
// lowest code is the warning code. A Registry is immutable once built and
// safe for concurrent use.
type Registry struct {
	name   string
	labels map[int]string
	min    int
	max    int
}

// NewRegistry builds a registry from table. Tables are static data, so a
// table that is empty or not contiguous is a programming error and panics.
func NewRegistry(name string, table map[int]string) *Registry {
	if len(table) == 0 {
		panic(fmt.Sprintf("codederr: registry %q has no codes", name))
	}

	r := &Registry{
		name:   name,
		labels: make(map[int]string, len(table)),
	}
	first := true
	for code, label := range table {
		if first || code < r.min {
			r.min = code
		}
		if first || code > r.max {
			r.max = code
		}
		first = false
		r.labels[code] = label
	}
	if r.max-r.min+1 != len(r.labels) {
		panic(fmt.Sprintf("codederr: registry %q codes %d..%d are not contiguous", name, r.min, r.max))
	}
	return r
}

// Name returns the suite name of the registry.
func (r *Registry) Name() string {
	return r.name
}

// Range returns the inclusive bounds of the registered codes.
func (r *Registry) Range() (min, max int) {
	return r.min, r.max
}

// WarningCode returns the code reserved for the warning class.
func (r *Registry) WarningCode() int {
	return r.min
}

// Codes returns every registered code in ascending order.
func (r *Registry) Codes() []int {
	codes := make([]int, 0, len(r.labels))
	for code := range r.labels {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// Describe returns the label registered for code.
func (r *Registry) Describe(code int) (string, error) {
	label, ok := r.labels[code]
	if !ok {
		return "", &UndefinedCodeError{Code: code}
	}
	return label, nil
}

// Lookup builds an Error for code, failing if the code is not registered.
// Only the first detail string is used.
func (r *Registry) Lookup(code int, detail ...string) (*Error, error) {
	label, err := r.Describe(code)
	if err != nil {
		return nil, err
	}
	e := &Error{
		Code:     code,
		Label:    label,
		registry: r,
	}
	if len(detail) > 0 {
		e.Detail = detail[0]
	}
	return e, nil
}

// New builds an Error for code. Codes are expected to be the package
// constants, so an unregistered code panics; use Lookup for codes that come
// from outside the program.
func (r *Registry) New(code int, detail ...string) *Error {
	e, err := r.Lookup(code, detail...)
	if err != nil {
		panic(errors.Wrapf(err, "codederr: %s", r.name))
	}
	return e
}

// Errorf builds an Error for code with a formatted detail.
func (r *Registry) Errorf(code int, format string, args ...interface{}) *Error {
	return r.New(code, fmt.Sprintf(format, args...))
}

// Warning builds an Error carrying the warning code.
func (r *Registry) Warning(detail ...string) *Error {
	return r.New(r.min, detail...)
}
