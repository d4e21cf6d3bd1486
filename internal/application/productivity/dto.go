package productivity

import (
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/productivity"
)

// LogFocusDayRequest represents a request to record one day's productivity.
// Logging the same day twice updates the existing record.
type LogFocusDayRequest struct {
	Day             time.Time `json:"day"`
	TasksPlanned    int       `json:"tasks_planned" binding:"omitempty,gte=0"`
	TasksCompleted  int       `json:"tasks_completed" binding:"omitempty,gte=0"`
	FocusScore      float64   `json:"focus_score" binding:"omitempty,gte=0,lte=10"`
	ContextSwitches int       `json:"context_switches" binding:"omitempty,gte=0"`
	DeepWorkMinutes int       `json:"deep_work_minutes" binding:"omitempty,gte=0,lte=1440"`
	Note            string    `json:"note" binding:"max=500"`
}

// FocusDayResponse represents a focus day in API responses
type FocusDayResponse struct {
	ID              uuid.UUID `json:"id"`
	Day             string    `json:"day"`
	TasksPlanned    int       `json:"tasks_planned"`
	TasksCompleted  int       `json:"tasks_completed"`
	CompletionRate  float64   `json:"completion_rate"`
	FocusScore      float64   `json:"focus_score"`
	ContextSwitches int       `json:"context_switches"`
	DeepWorkMinutes int       `json:"deep_work_minutes"`
	Note            string    `json:"note,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToFocusDayResponse converts a focus day to its response representation
func ToFocusDayResponse(f *productivity.FocusDay) *FocusDayResponse {
	return &FocusDayResponse{
		ID:              f.ID,
		Day:             f.Day.Format("2006-01-02"),
		TasksPlanned:    f.TasksPlanned,
		TasksCompleted:  f.TasksCompleted,
		CompletionRate:  f.CompletionRate(),
		FocusScore:      f.FocusScore,
		ContextSwitches: f.ContextSwitches,
		DeepWorkMinutes: f.DeepWorkMinutes,
		Note:            f.Note,
		CreatedAt:       f.CreatedAt,
	}
}

// ToFocusDayResponses converts a slice of focus days
func ToFocusDayResponses(fs []productivity.FocusDay) []FocusDayResponse {
	out := make([]FocusDayResponse, 0, len(fs))
	for i := range fs {
		out = append(out, *ToFocusDayResponse(&fs[i]))
	}
	return out
}

// ScoreResponse is the weighted productivity score over a window
type ScoreResponse struct {
	Score           float64 `json:"score"`
	CompletionRate  float64 `json:"completion_rate"`
	AvgFocusScore   float64 `json:"avg_focus_score"`
	ContextSwitches int     `json:"context_switches"`
	DeepWorkHours   float64 `json:"deep_work_hours"`
	DaysTracked     int     `json:"days_tracked"`
	Days            int     `json:"days"`
}

// DashboardResponse is the productivity overview for a window
type DashboardResponse struct {
	Score           float64 `json:"score"`
	TasksPlanned    int     `json:"tasks_planned"`
	TasksCompleted  int     `json:"tasks_completed"`
	CompletionRate  float64 `json:"completion_rate"`
	AvgFocusScore   float64 `json:"avg_focus_score"`
	ContextSwitches int     `json:"context_switches"`
	SwitchTrend     string  `json:"switch_trend"`
	DeepWorkHours   float64 `json:"deep_work_hours"`
	DaysTracked     int     `json:"days_tracked"`
	Days            int     `json:"days"`
}
