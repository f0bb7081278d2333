package service

import "errors"

var (
	// ErrPersist wraps a store write failure. The in-memory change that
	// triggered the write is kept.
	ErrPersist = errors.New("persisting board state")

	ErrNoDragPayload = errors.New("nothing is being dragged")
	ErrModalClosed   = errors.New("no event form is open")
)
