package identity

import "errors"

var (
	// Specifier errors
	ErrInvalidUser  = errors.New("invalid user specifier")
	ErrInvalidGroup = errors.New("invalid group specifier")
)
