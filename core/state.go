package core

import "fmt"

// State captures everything one Compute() call needs to place, key and
// look up nodes: the aligned domain, the coarse and fine grid spacings,
// the derived Keyer, and the node Store itself.
type State[V comparable] struct {
	Domain        Rect
	SampleSpacing float64
	PixelSize     float64
	Keyer         Keyer
	Store         *Store[V]
}

// NewState aligns domain to sampleSpacing, clamps pixelSize up to
// sampleSpacing when the caller passed a coarser pixel size than sample
// spacing, derives the Keyer, and returns a State with a fresh empty
// Store. Compute() fills the store afterwards via sampler.Sample.
func NewState[V comparable](domain Rect, sampleSpacing, pixelSize float64) (*State[V], error) {
	if domain.Width < 0 || domain.Height < 0 {
		return nil, ErrInvalidDomain
	}
	if !IsPowerOfTwo(sampleSpacing) {
		return nil, ErrInvalidSpacing
	}
	if !IsPowerOfTwo(pixelSize) {
		return nil, ErrInvalidPixelSize
	}
	if pixelSize > sampleSpacing {
		pixelSize = sampleSpacing
	}

	aligned := AlignOutward(domain, sampleSpacing)
	keyer, err := NewKeyer(aligned, pixelSize)
	if err != nil {
		return nil, fmt.Errorf("core: NewState: %w", err)
	}

	return &State[V]{
		Domain:        aligned,
		SampleSpacing: sampleSpacing,
		PixelSize:     pixelSize,
		Keyer:         keyer,
		Store:         NewStore[V](),
	}, nil
}
