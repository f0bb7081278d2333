package domain

import "errors"

var (
	// ErrIndexOutOfRange is returned when a positional task reference does
	// not address an element of the task collection.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrLookupMiss is returned when an id or title lookup finds nothing.
	ErrLookupMiss = errors.New("no matching entry")

	// ErrParseFailure marks a persisted collection that could not be decoded.
	ErrParseFailure = errors.New("stored value could not be parsed")

	ErrInvalidID       = errors.New("invalid id")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidFilter   = errors.New("invalid filter mode")
	ErrInvalidSlot     = errors.New("invalid weekly slot")
)
