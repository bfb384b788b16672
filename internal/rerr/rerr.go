// Package rerr defines the closed set of error kinds the rendering core can
// surface. Every error-returning Context method that takes a handle
// (the Write*, Set*, Attach* and Reserve*Buffers calls) returns
// ErrInvalidHandle, wrapped with fmt.Errorf for context, when the handle
// was never created or was already destroyed; accessors such as Texel or
// TextureDimensions report it with a zero value or a false ok result, and
// Destroy* ignores it. Draw/blit/clear never return
// an error, since their preconditions (bound shader, compatible
// framebuffer) are programmer-enforced and validated once at draw time,
// not per handle.
package rerr

import "errors"

// Sentinel error kinds, matching spec §7 one-to-one.
var (
	// ErrInvalidArgument covers zero sizes, out-of-range slots, and
	// malformed vertex array bindings.
	ErrInvalidArgument = errors.New("rerr: invalid argument")

	// ErrAlreadyInitialized is returned when init is called twice on the
	// same object without an intervening terminate.
	ErrAlreadyInitialized = errors.New("rerr: already initialized")

	// ErrOutOfMemory names a failed texture or buffer allocation. No
	// function of this module returns it: allocations use make, which
	// does not report failure as an error.
	ErrOutOfMemory = errors.New("rerr: out of memory")

	// ErrIncompleteFramebuffer names a framebuffer whose attachments
	// mismatch in size, or which has no attachment. No function of this
	// module returns it: Context.Valid reports that condition as false and
	// Draw skips such a framebuffer.
	ErrIncompleteFramebuffer = errors.New("rerr: incomplete framebuffer")

	// ErrInvalidHandle is returned when a handle was never created or was
	// already destroyed.
	ErrInvalidHandle = errors.New("rerr: invalid handle")
)
