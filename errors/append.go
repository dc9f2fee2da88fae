package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If at most one of the given errors is a real error, no wrapping is done
// and that error (or nil) is returned directly. Otherwise a multi error
// instance is returned, which tests true for any kind that any of its
// members is.
func Append(errs ...error) error {
	var flat []error
	for _, err := range errs {
		if isNilErr(err) {
			continue
		}
		if m, ok := err.(*multiError); ok {
			flat = append(flat, m.errs...)
		} else {
			flat = append(flat, err)
		}
	}

	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	default:
		return &multiError{errs: flat}
	}
}

type multiError struct {
	errs []error
}

func (e *multiError) Error() string {
	switch len(e.errs) {
	case 0:
		// Invalid instance, created outside of the Append function.
		return "<nil>"
	case 1:
		return e.errs[0].Error()
	}
	msgs := make([]string, len(e.errs))
	for i, err := range e.errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d errors occurred:\n\t* %s", len(e.errs), strings.Join(msgs, "\n\t* "))
}

func isNilErr(err error) bool {
	if err == nil {
		return true
	}
	if kind, ok := err.(*Error); ok && kind == nil {
		return true
	}
	return false
}
