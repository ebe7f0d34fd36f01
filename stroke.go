package inkpad

import "github.com/google/uuid"

// Stroke is one continuous pointer-down-to-up ink trace: an ordered,
// temporally sorted sample sequence plus the drawing options it was
// captured under. A stroke with fewer than 3 samples is a degenerate dot
// or dab; it renders no segments but still commits and exports cleanly.
type Stroke struct {
	// ID uniquely identifies the stroke within a session.
	ID string
	// Samples in insertion (= temporal) order. Stabilized, never raw.
	Samples []Sample
	// Options is the DrawingOptions snapshot active when the stroke began.
	Options DrawingOptions
}

// newStroke creates an empty stroke under an options snapshot.
func newStroke(opts DrawingOptions) *Stroke {
	return &Stroke{
		ID:      uuid.NewString(),
		Options: opts,
	}
}

// Len returns the number of recorded samples.
func (s *Stroke) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Samples)
}

// last returns the most recent sample, if any.
func (s *Stroke) last() (Sample, bool) {
	if s.Len() == 0 {
		return Sample{}, false
	}
	return s.Samples[len(s.Samples)-1], true
}
