package remap

import "errors"

var (
	// ErrDuplicateRule is returned when a rule's match key is already
	// registered. The existing rule is left untouched.
	ErrDuplicateRule = errors.New("remap: duplicate rule key")

	// ErrRuleNotFound is returned by LookupAddr when no rule matches the
	// host and path.
	ErrRuleNotFound = errors.New("remap: no rule matches")

	// ErrFiltered is returned by LookupAddr when a rule matched but its
	// filter denies the source address.
	ErrFiltered = errors.New("remap: source address denied by rule filter")

	// ErrInvalidHost is returned when a host cannot be normalized to an
	// ASCII DNS name.
	ErrInvalidHost = errors.New("remap: invalid host")
)
