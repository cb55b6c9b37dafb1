// Package errdefer provides functions for running operations
// that must be deferred until the end of a function,
// but which may return errors that should be returned from the function.
package errdefer

import "errors"

// Call calls fn,
// and joins any error returned with the given error.
//
// Use it inside a defer statement with a named return,
// typically with a Close method or a close function
// returned alongside a writer.
func Call(err *error, fn func() error) {
	*err = errors.Join(*err, fn())
}
