package imwin

import "errors"

var (
	// ErrFrameInProgress is returned when mutable engine state is requested
	// while a frame is being built.
	ErrFrameInProgress = errors.New("imwin: frame in progress")

	// ErrNoContext is returned when the engine context was already destroyed.
	ErrNoContext = errors.New("imwin: context destroyed")
)
