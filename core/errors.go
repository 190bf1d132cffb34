package core

import "errors"

// Sentinel errors for core state construction and key arithmetic.
var (
	// ErrInvalidDomain indicates a domain rectangle with negative width or height.
	ErrInvalidDomain = errors.New("core: domain width and height must be non-negative")

	// ErrInvalidSpacing indicates a sample spacing that is not a positive power of two.
	ErrInvalidSpacing = errors.New("core: sample spacing must be a positive power of two")

	// ErrInvalidPixelSize indicates a pixel size that is not a positive power of two.
	ErrInvalidPixelSize = errors.New("core: pixel size must be a positive power of two")

	// ErrKeyRangeOverflow indicates the domain, once aligned to sample_spacing, is
	// too far from the coordinate origin for the key-packing coefficients to stay
	// within the safe-integer range.
	ErrKeyRangeOverflow = errors.New("core: domain exceeds safe key range at this pixel size")
)
