package domain

import "go.trai.ch/zerr"

var (
	// ErrActionNotFound is returned when a requested action is not present
	// in the current descriptor collection.
	ErrActionNotFound = zerr.New("action not found")

	// ErrDuplicateAction is returned when a route table defines the same
	// action name twice.
	ErrDuplicateAction = zerr.New("action already defined")

	// ErrUnknownConstraintKind is returned when a route table references a
	// constraint kind no loader knows how to build.
	ErrUnknownConstraintKind = zerr.New("unknown constraint kind")

	// ErrNotAnEnum is returned when a binder is requested for a type that
	// was never registered as an enum.
	ErrNotAnEnum = zerr.New("type is not a registered enum")

	// ErrUndefinedEnumValue is returned when a raw value does not name any
	// defined member of the target enum type.
	ErrUndefinedEnumValue = zerr.New("undefined enum value")
)
