package route

import "errors"

var (
	// ErrEmptyPath indicates the input holds no steps.
	ErrEmptyPath = errors.New("route: empty path")

	// ErrSyntax wraps a lexer or parser failure.
	ErrSyntax = errors.New("route: syntax error")
)
