package domain

// Default shift bounds applied when a maid is created without them.
const (
	DefaultShiftStart = "09:00:00"
	DefaultShiftEnd   = "17:00:00"
)

// Maid is a staff member serving orders. Shift times are HH:MM:SS.
type Maid struct {
	ID             int64
	Name           string
	ShiftStartTime string
	ShiftEndTime   string
}

// MaidPatch carries the fields supplied to an update; nil means keep.
type MaidPatch struct {
	Name           *string
	ShiftStartTime *string
	ShiftEndTime   *string
}

// Apply merges the patch into m.
func (p MaidPatch) Apply(m *Maid) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.ShiftStartTime != nil {
		m.ShiftStartTime = *p.ShiftStartTime
	}
	if p.ShiftEndTime != nil {
		m.ShiftEndTime = *p.ShiftEndTime
	}
}

// Empty reports whether no field was supplied.
func (p MaidPatch) Empty() bool {
	return p.Name == nil && p.ShiftStartTime == nil && p.ShiftEndTime == nil
}
