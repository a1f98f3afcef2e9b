package service

import (
	"context"
	"strings"
	"time"

	"github.com/spec-kit/maid-cafe-service/internal/domain"
	"github.com/spec-kit/maid-cafe-service/internal/repository"
	apperrors "github.com/spec-kit/maid-cafe-service/pkg/util/errorutil"
)

// MaidService validates maid input and delegates to the repository.
type MaidService struct {
	maids repository.MaidRepository
}

// NewMaidService constructs the service.
func NewMaidService(maids repository.MaidRepository) *MaidService {
	return &MaidService{maids: maids}
}

// MaidInput describes maid creation payload. Empty shift times take the defaults.
type MaidInput struct {
	Name           string
	ShiftStartTime string
	ShiftEndTime   string
}

var timeOfDayLayouts = []string{"15:04:05", "15:04"}

// normalizeTimeOfDay accepts HH:MM:SS or HH:MM and returns HH:MM:SS.
func normalizeTimeOfDay(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timeOfDayLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("15:04:05"), nil
		}
	}
	return "", apperrors.NewValidationError(field + " must be a time of day (HH:MM:SS)")
}

// List returns all maids, or those whose name contains search.
func (s *MaidService) List(ctx context.Context, search string) ([]domain.Maid, error) {
	list, err := s.maids.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, mapRepoError(err, "maid")
	}
	return list, nil
}

// Get fetches one maid.
func (s *MaidService) Get(ctx context.Context, id int64) (*domain.Maid, error) {
	maid, err := s.maids.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "maid")
	}
	return maid, nil
}

// Create inserts a maid; name is required.
func (s *MaidService) Create(ctx context.Context, input MaidInput) (*domain.Maid, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	if err := checkLength("name", input.Name, maxNameLength); err != nil {
		return nil, err
	}
	start, end := input.ShiftStartTime, input.ShiftEndTime
	if start == "" {
		start = domain.DefaultShiftStart
	}
	if end == "" {
		end = domain.DefaultShiftEnd
	}

	var err error
	if start, err = normalizeTimeOfDay("shift_start_time", start); err != nil {
		return nil, err
	}
	if end, err = normalizeTimeOfDay("shift_end_time", end); err != nil {
		return nil, err
	}

	maid := &domain.Maid{Name: input.Name, ShiftStartTime: start, ShiftEndTime: end}
	if err := s.maids.Create(ctx, maid); err != nil {
		return nil, mapRepoError(err, "maid")
	}
	return maid, nil
}

// Update merges the supplied fields into the stored maid.
func (s *MaidService) Update(ctx context.Context, id int64, patch domain.MaidPatch) (*domain.Maid, error) {
	if patch.Empty() {
		return nil, apperrors.NewValidationError("no data provided")
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}
	if patch.Name != nil {
		if err := checkLength("name", *patch.Name, maxNameLength); err != nil {
			return nil, err
		}
	}
	if patch.ShiftStartTime != nil {
		start, err := normalizeTimeOfDay("shift_start_time", *patch.ShiftStartTime)
		if err != nil {
			return nil, err
		}
		patch.ShiftStartTime = &start
	}
	if patch.ShiftEndTime != nil {
		end, err := normalizeTimeOfDay("shift_end_time", *patch.ShiftEndTime)
		if err != nil {
			return nil, err
		}
		patch.ShiftEndTime = &end
	}

	maid, err := s.maids.Update(ctx, id, patch)
	if err != nil {
		return nil, mapRepoError(err, "maid")
	}
	return maid, nil
}

// Delete removes a maid that no order references.
func (s *MaidService) Delete(ctx context.Context, id int64) error {
	return mapRepoError(s.maids.Delete(ctx, id), "maid")
}
