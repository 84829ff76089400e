// Package byggtid turns a set of timestamped photos into a progress
// time-lapse: each frame gets a timeline overlay showing how far along the
// photo sits within the full span of the set.
package byggtid

import (
	"time"
)

// Frame represents a single photo and its derived timeline position.
type Frame struct {
	InPath  string
	OutPath string

	Taken  time.Time
	Width  int64
	Height int64

	// EXIF orientation value (1 = upright).
	Orientation int64

	Lat string
	Lon string
	Alt string

	// Derived by Evaluate; zero until then.
	Elapsed      time.Duration
	Delta        time.Duration
	Progress     float64
	ElapsedHours int
}

// Label is the date text burned into the frame's overlay.
func (f *Frame) Label() string {
	return f.Taken.Format("02-Jan-2006")
}

// Sequence is an ordered collection of frames and the time span that
// progress is measured against. A frame's Progress is only meaningful
// relative to the sequence it was evaluated in.
type Sequence struct {
	Frames []*Frame
	Span   time.Duration
}

// Len returns the number of frames in the sequence.
func (s *Sequence) Len() int {
	return len(s.Frames)
}
