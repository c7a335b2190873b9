package pages

import "errors"

var (
	// ErrInvalidPath is returned for a path that is empty, not rooted at "/",
	// or contains pattern syntax.
	ErrInvalidPath = errors.New("route path must be a literal path starting with /")

	// ErrDuplicateRoute is returned when a path is registered twice.
	ErrDuplicateRoute = errors.New("route already registered")

	// ErrNilHandler is returned when Register is given a nil handler.
	ErrNilHandler = errors.New("route handler is nil")

	// ErrSealed is returned by Register once the dispatcher has been built
	// into an HTTP handler.
	ErrSealed = errors.New("route table is sealed")

	// ErrNotFound is returned by Dispatch for an unregistered path.
	ErrNotFound = errors.New("no route matched")
)
