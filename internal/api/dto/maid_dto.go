package dto

import "github.com/spec-kit/maid-cafe-service/internal/domain"

// MaidRequest is used for both create and partial update.
type MaidRequest struct {
	Name           *string `json:"name"`
	ShiftStartTime *string `json:"shift_start_time"`
	ShiftEndTime   *string `json:"shift_end_time"`
}

// Patch converts the request into a partial update.
func (r MaidRequest) Patch() domain.MaidPatch {
	return domain.MaidPatch{Name: r.Name, ShiftStartTime: r.ShiftStartTime, ShiftEndTime: r.ShiftEndTime}
}

// MaidResponse represents a maid record. Shift times are HH:MM:SS.
type MaidResponse struct {
	MaidID         int64  `json:"maid_id"`
	Name           string `json:"name"`
	ShiftStartTime string `json:"shift_start_time"`
	ShiftEndTime   string `json:"shift_end_time"`
}

// MaidList is the body of GET /maids.
type MaidList struct {
	Maids []MaidResponse `json:"maids"`
	Count int            `json:"count"`
}

// MaidDeleted confirms a removed maid.
type MaidDeleted struct {
	Message string `json:"message"`
	MaidID  int64  `json:"maid_id"`
}

// NewMaidResponse maps a domain maid to its response.
func NewMaidResponse(m *domain.Maid) MaidResponse {
	return MaidResponse{
		MaidID:         m.ID,
		Name:           m.Name,
		ShiftStartTime: m.ShiftStartTime,
		ShiftEndTime:   m.ShiftEndTime,
	}
}

// NewMaidList maps maids in order and counts them.
func NewMaidList(maids []domain.Maid) MaidList {
	items := make([]MaidResponse, 0, len(maids))
	for i := range maids {
		items = append(items, NewMaidResponse(&maids[i]))
	}
	return MaidList{Maids: items, Count: len(items)}
}
