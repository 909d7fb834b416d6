package model

import "time"

// ReservationPeriod is the requested rental window. Callers are responsible
// for ensuring EndTime is after StartTime.
type ReservationPeriod struct {
	StartTime time.Time
	EndTime   time.Time
}

// Overlaps reports whether two periods share at least one instant. Periods
// that merely touch (one ends exactly when the other starts) do not overlap.
func (p ReservationPeriod) Overlaps(other ReservationPeriod) bool {
	return p.EndTime.After(other.StartTime) && other.EndTime.After(p.StartTime)
}

// Equal reports whether both bounds match.
func (p ReservationPeriod) Equal(other ReservationPeriod) bool {
	return p.StartTime.Equal(other.StartTime) && p.EndTime.Equal(other.EndTime)
}
