package gfx

import "errors"

// Errors returned by NewFrameView and the checked Sub variants.
// Per-pixel operations never return errors: out-of-range coordinates are
// silent no-ops so that rasterization loops stay branch-free at shape edges.
var (
	// ErrSizeTooSmall is returned when a view below 1x1 pixels is requested.
	ErrSizeTooSmall = errors.New("gfx: view size must be at least 1x1")

	// ErrSizeTooLarge is returned when a sub-view extends past the remaining
	// extent of its parent.
	ErrSizeTooLarge = errors.New("gfx: sub-view exceeds parent extent")

	// ErrOffsetOutOfBounds is returned when a sub-view offset lies at or past
	// the parent's extent.
	ErrOffsetOutOfBounds = errors.New("gfx: sub-view offset outside parent")

	// ErrBufferNotInit is returned when a view is requested over a nil buffer.
	ErrBufferNotInit = errors.New("gfx: buffer is not initialized")
)
