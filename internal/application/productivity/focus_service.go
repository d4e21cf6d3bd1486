package productivity

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/productivity"
	"github.com/wellbeing/backend/internal/domain/shared"
)

const defaultWindowDays = 30

// FocusService handles focus day tracking and scoring
type FocusService struct {
	focusRepo productivity.FocusDayRepository
}

// NewFocusService creates a new focus service
func NewFocusService(focusRepo productivity.FocusDayRepository) *FocusService {
	return &FocusService{focusRepo: focusRepo}
}

// Log records a day's productivity. A second log for the same calendar day
// replaces the first.
func (s *FocusService) Log(ctx context.Context, userID uuid.UUID, req LogFocusDayRequest) (*FocusDayResponse, error) {
	day := req.Day
	if day.IsZero() {
		day = time.Now()
	}

	existing, err := s.focusRepo.FindByDay(ctx, userID, day)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		if err := existing.Update(req.TasksPlanned, req.TasksCompleted, req.FocusScore, req.ContextSwitches, req.DeepWorkMinutes, req.Note); err != nil {
			return nil, err
		}
		if err := s.focusRepo.Save(ctx, existing); err != nil {
			return nil, err
		}
		return ToFocusDayResponse(existing), nil
	}

	fd, err := productivity.NewFocusDay(userID, day, req.TasksPlanned, req.TasksCompleted, req.FocusScore, req.ContextSwitches, req.DeepWorkMinutes, req.Note)
	if err != nil {
		return nil, err
	}
	if err := s.focusRepo.Save(ctx, fd); err != nil {
		return nil, err
	}
	return ToFocusDayResponse(fd), nil
}

// Get returns a single focus day
func (s *FocusService) Get(ctx context.Context, userID, id uuid.UUID) (*FocusDayResponse, error) {
	fd, err := s.focusRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return ToFocusDayResponse(fd), nil
}

// List returns focus days matching the filter
func (s *FocusService) List(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]FocusDayResponse, error) {
	fds, err := s.focusRepo.FindAllForUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return ToFocusDayResponses(fds), nil
}

// Delete removes a focus day
func (s *FocusService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.focusRepo.DeleteForUser(ctx, userID, id)
}

// Score computes the weighted productivity score: 30% task completion, 30%
// focus self-rating, 20% few context switches (10 per day is a full
// penalty), 20% deep work against a 4-hour daily target.
func (s *FocusService) Score(ctx context.Context, userID uuid.UUID, days int) (*ScoreResponse, error) {
	if days <= 0 {
		days = defaultWindowDays
	}
	fds, err := s.window(ctx, userID, days)
	if err != nil {
		return nil, err
	}

	resp := &ScoreResponse{Days: days, DaysTracked: len(fds)}
	if len(fds) == 0 {
		return resp, nil
	}

	planned, completed, switches := 0, 0, 0
	var focusSum, deepHours float64
	for i := range fds {
		planned += fds[i].TasksPlanned
		completed += fds[i].TasksCompleted
		switches += fds[i].ContextSwitches
		focusSum += fds[i].FocusScore
		deepHours += fds[i].DeepWorkHours()
	}

	completionRate := 0.0
	if planned > 0 {
		completionRate = float64(completed) / float64(planned) * 100
	}
	avgFocus := focusSum / float64(len(fds))

	switchPenalty := math.Min(float64(switches)/(float64(days)*10), 1)
	deepRatio := math.Min(deepHours/(float64(days)*4), 1)

	score := completionRate*0.3 + avgFocus*10*0.3 + (1-switchPenalty)*100*0.2 + deepRatio*100*0.2

	resp.Score = round2(math.Min(100, score))
	resp.CompletionRate = round2(completionRate)
	resp.AvgFocusScore = round2(avgFocus)
	resp.ContextSwitches = switches
	resp.DeepWorkHours = round2(deepHours)
	return resp, nil
}

// Dashboard is the productivity overview: the score plus task totals and a
// context switch trend over the window
func (s *FocusService) Dashboard(ctx context.Context, userID uuid.UUID, days int) (*DashboardResponse, error) {
	if days <= 0 {
		days = defaultWindowDays
	}
	score, err := s.Score(ctx, userID, days)
	if err != nil {
		return nil, err
	}
	fds, err := s.window(ctx, userID, days)
	if err != nil {
		return nil, err
	}

	resp := &DashboardResponse{
		Score:           score.Score,
		CompletionRate:  score.CompletionRate,
		AvgFocusScore:   score.AvgFocusScore,
		ContextSwitches: score.ContextSwitches,
		DeepWorkHours:   score.DeepWorkHours,
		DaysTracked:     score.DaysTracked,
		Days:            days,
		SwitchTrend:     "insufficient_data",
	}
	for i := range fds {
		resp.TasksPlanned += fds[i].TasksPlanned
		resp.TasksCompleted += fds[i].TasksCompleted
	}

	if len(fds) >= 2 {
		half := len(fds) / 2
		firstAvg := avgSwitches(fds[:half])
		secondAvg := avgSwitches(fds[half:])
		switch {
		case secondAvg > firstAvg:
			resp.SwitchTrend = "increasing"
		case secondAvg < firstAvg:
			resp.SwitchTrend = "decreasing"
		default:
			resp.SwitchTrend = "stable"
		}
	}
	return resp, nil
}

// window returns the focus days in the lookback window sorted oldest first
func (s *FocusService) window(ctx context.Context, userID uuid.UUID, days int) ([]productivity.FocusDay, error) {
	now := time.Now()
	return s.focusRepo.FindInRange(ctx, userID, now.AddDate(0, 0, -days), now)
}

func avgSwitches(fds []productivity.FocusDay) float64 {
	if len(fds) == 0 {
		return 0
	}
	sum := 0
	for i := range fds {
		sum += fds[i].ContextSwitches
	}
	return float64(sum) / float64(len(fds))
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
