package domain

// OverlapsMinutes reports whether two half-open intervals [aStart, aEnd)
// and [bStart, bEnd) overlap. All values are minutes since midnight.
// Touching endpoints (aEnd == bStart) do not overlap, so back-to-back
// appointments are allowed.
func OverlapsMinutes(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
