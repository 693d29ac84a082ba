package terrain

import "errors"

var (
	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("terrain: invalid config")
	// ErrInsufficientGeography is returned in strict mode when a map has no
	// salt or fresh water to measure distances against.
	ErrInsufficientGeography = errors.New("terrain: insufficient geography")
	// ErrAlreadyGenerated is returned by a second Generate call.
	ErrAlreadyGenerated = errors.New("terrain: generator already used")
	// ErrInvalidSnapshot is returned when a snapshot cannot be restored.
	ErrInvalidSnapshot = errors.New("terrain: invalid snapshot")
)
