package entities

import "time"

// LaborEntry is a timed or manually logged block of technician work.
//
// Entries are append-only: never mutated after creation, never deleted.
// EndTime is nil while the owning timer is still open. IsApproved defaults to
// false and is reserved for a future per-entry reconciliation step; no
// transition in this service flips it.
type LaborEntry struct {
	ID             string     `json:"id"`
	TechnicianID   string     `json:"technician_id"`
	TechnicianName string     `json:"technician_name"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	Hours          float64    `json:"hours"`
	HourlyRate     float64    `json:"hourly_rate"`
	Description    string     `json:"description"`
	IsApproved     bool       `json:"is_approved"`
}

// Cost returns the billable amount for this entry.
func (e LaborEntry) Cost() float64 {
	return e.Hours * e.HourlyRate
}
