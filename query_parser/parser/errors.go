package parser

import "errors"

var (
	// ErrUnknownCommand is returned for any line whose first word is not a verb.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrEmptyCommand is returned for a line holding only whitespace.
	ErrEmptyCommand = errors.New("empty command")

	ErrOddArguments    = errors.New("insert expects key value pairs")
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidInteger  = errors.New("invalid integer")
)
