package appointment

import "time"

// SlotDuration is how long every appointment occupies its doctor.
const SlotDuration = 30 * time.Minute

// Window is the half-open interval [Start, End) an appointment reserves.
type Window struct {
	Start time.Time
	End   time.Time
}

func WindowAt(start time.Time) Window {
	return Window{Start: start, End: start.Add(SlotDuration)}
}

// Overlaps uses closed-open semantics: back-to-back windows do not overlap.
func (w Window) Overlaps(o Window) bool {
	return w.Start.Before(o.End) && o.Start.Before(w.End)
}
