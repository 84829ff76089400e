package byggtid

import (
	"k8s.io/klog/v2"
)

// Evaluate derives each frame's position within the time span of the whole
// set: elapsed time since the first frame, the fraction of the total span,
// the delta from the previous frame, and the elapsed hour count rounded
// half-up. Input order is preserved and assumed to be display order; no
// sorting or validation happens here, so unsorted input yields unsorted
// progress values.
func Evaluate(frames []*Frame) *Sequence {
	s := &Sequence{Frames: frames}
	if len(frames) == 0 {
		return s
	}

	s.Span = frames[len(frames)-1].Taken.Sub(frames[0].Taken)
	tbeg := frames[0].Taken

	for i, f := range frames {
		f.Elapsed = f.Taken.Sub(tbeg)

		// A single frame, or a set sharing one timestamp, has no span to
		// divide by: progress is pinned to zero.
		if s.Span > 0 {
			f.Progress = float64(f.Elapsed) / float64(s.Span)
		} else {
			f.Progress = 0
		}

		if i > 0 {
			f.Delta = f.Taken.Sub(frames[i-1].Taken)
		}

		f.ElapsedHours = int(f.Elapsed.Hours() + 0.5)
	}

	return s
}

// DumpTimes logs a per-frame progress table.
func (s *Sequence) DumpTimes() {
	for _, f := range s.Frames {
		klog.V(1).Infof("%s  %s %18s %6d hrs (%5.1f%%)",
			f.InPath, f.Taken.Format("02-Jan-2006 15:04:05"), f.Delta, f.ElapsedHours, f.Progress*100)
	}
}
