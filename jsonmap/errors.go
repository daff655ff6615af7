package jsonmap

import "errors"

var (
	// ErrAlreadyExcluded reports a second exclusion of the same member.
	ErrAlreadyExcluded = errors.New("member already excluded")

	// ErrFieldNameConflict reports an attempt to bind a JSON field name that
	// is already bound to a different member.
	ErrFieldNameConflict = errors.New("json field name conflict")

	// ErrAlreadyRegistered reports a second registration for the same target
	// type.
	ErrAlreadyRegistered = errors.New("type already registered")
)
