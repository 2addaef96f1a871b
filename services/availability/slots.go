package availability

// minuteRange is a half-open [Start, End) interval in minutes from midnight.
type minuteRange struct {
	Start int
	End   int
}

func (r minuteRange) overlaps(other minuteRange) bool {
	return r.Start < other.End && r.End > other.Start
}

// slotParams are the resolved inputs for one day's slot generation, all in
// minutes from midnight of the requested date.
type slotParams struct {
	OpenMin  int
	CloseMin int
	Duration int
	Buffer   int

	// EarliestStart discards candidates starting before it (now + minimum
	// notice when generating for the current date). Negative means no floor.
	EarliestStart int

	// Booked holds existing appointments for the same scope.
	Booked []minuteRange

	// AgentConstrained marks that an agent filter applies; when set, a
	// candidate must lie fully inside one of AgentWindows (boundaries
	// inclusive). Constrained with zero windows means nothing is bookable.
	AgentConstrained bool
	AgentWindows     []minuteRange
}

// computeSlots walks the day at stride duration+buffer from opening time and
// keeps every candidate that survives the notice floor, the agent windows and
// the overlap test against booked appointments. Output is in generation order,
// which is already chronological.
func computeSlots(p slotParams) []minuteRange {
	stride := p.Duration + p.Buffer
	if p.Duration <= 0 || stride <= 0 {
		return nil
	}

	total := p.CloseMin - p.OpenMin
	var out []minuteRange
	for offset := 0; offset+p.Duration <= total; offset += stride {
		cand := minuteRange{
			Start: p.OpenMin + offset,
			End:   p.OpenMin + offset + p.Duration,
		}

		if p.EarliestStart >= 0 && cand.Start < p.EarliestStart {
			continue
		}
		if p.AgentConstrained && !insideAnyWindow(cand, p.AgentWindows) {
			continue
		}
		if overlapsAny(cand, p.Booked) {
			continue
		}
		out = append(out, cand)
	}
	return out
}

// insideAnyWindow reports whether the candidate lies fully within one working
// window. Boundaries are inclusive: a slot ending exactly at a window's end
// is still inside it.
func insideAnyWindow(cand minuteRange, windows []minuteRange) bool {
	for _, w := range windows {
		if cand.Start >= w.Start && cand.End <= w.End {
			return true
		}
	}
	return false
}

// overlapsAny uses half-open interval semantics: a slot ending exactly when
// an appointment starts does not collide with it.
func overlapsAny(cand minuteRange, booked []minuteRange) bool {
	for _, b := range booked {
		if cand.overlaps(b) {
			return true
		}
	}
	return false
}
