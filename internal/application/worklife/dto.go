package worklife

import (
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/worklife"
)

// LogSessionRequest represents a request to log a work session
type LogSessionRequest struct {
	StartedAt      time.Time `json:"started_at" binding:"required"`
	EndedAt        time.Time `json:"ended_at" binding:"required"`
	MeetingMinutes int       `json:"meeting_minutes" binding:"omitempty,gte=0"`
	Stress         int       `json:"stress" binding:"omitempty,gte=1,lte=10"`
	EnergyAfter    int       `json:"energy_after" binding:"omitempty,gte=1,lte=10"`
	Note           string    `json:"note" binding:"max=500"`
}

// SessionResponse represents a work session in API responses
type SessionResponse struct {
	ID                uuid.UUID `json:"id"`
	StartedAt         time.Time `json:"started_at"`
	EndedAt           time.Time `json:"ended_at"`
	Hours             float64   `json:"hours"`
	MeetingMinutes    int       `json:"meeting_minutes"`
	Stress            int       `json:"stress,omitempty"`
	EnergyAfter       int       `json:"energy_after,omitempty"`
	Overtime          bool      `json:"overtime"`
	BoundaryViolation bool      `json:"boundary_violation"`
	Note              string    `json:"note,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// ToSessionResponse converts a work session to its response representation
func ToSessionResponse(w *worklife.WorkSession) *SessionResponse {
	return &SessionResponse{
		ID:                w.ID,
		StartedAt:         w.StartedAt,
		EndedAt:           w.EndedAt,
		Hours:             w.Hours(),
		MeetingMinutes:    w.MeetingMinutes,
		Stress:            w.Stress,
		EnergyAfter:       w.EnergyAfter,
		Overtime:          w.IsOvertime(),
		BoundaryViolation: w.IsBoundaryViolation(),
		Note:              w.Note,
		CreatedAt:         w.CreatedAt,
	}
}

// ToSessionResponses converts a slice of work sessions
func ToSessionResponses(ws []worklife.WorkSession) []SessionResponse {
	out := make([]SessionResponse, 0, len(ws))
	for i := range ws {
		out = append(out, *ToSessionResponse(&ws[i]))
	}
	return out
}

// LogLifeEventRequest represents a request to log personal time
type LogLifeEventRequest struct {
	EventType       string    `json:"event_type" binding:"required,oneof=social family exercise hobby rest"`
	Title           string    `json:"title" binding:"max=200"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,gt=0,lte=1440"`
	EnergyImpact    int       `json:"energy_impact" binding:"omitempty,gte=-5,lte=5"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// LifeEventResponse represents a life event in API responses
type LifeEventResponse struct {
	ID              uuid.UUID `json:"id"`
	EventType       string    `json:"event_type"`
	Title           string    `json:"title,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	EnergyImpact    int       `json:"energy_impact"`
	OccurredAt      time.Time `json:"occurred_at"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToLifeEventResponse converts a life event to its response representation
func ToLifeEventResponse(e *worklife.LifeEvent) *LifeEventResponse {
	return &LifeEventResponse{
		ID:              e.ID,
		EventType:       string(e.EventType),
		Title:           e.Title,
		DurationMinutes: e.DurationMinutes,
		EnergyImpact:    e.EnergyImpact,
		OccurredAt:      e.OccurredAt,
		CreatedAt:       e.CreatedAt,
	}
}

// ToLifeEventResponses converts a slice of life events
func ToLifeEventResponses(es []worklife.LifeEvent) []LifeEventResponse {
	out := make([]LifeEventResponse, 0, len(es))
	for i := range es {
		out = append(out, *ToLifeEventResponse(&es[i]))
	}
	return out
}

// BalanceScoreResponse is the work-life balance calculation for a window
type BalanceScoreResponse struct {
	Score           float64 `json:"score"`
	RatioScore      float64 `json:"ratio_score"`
	EnergyScore     float64 `json:"energy_score"`
	OvertimePenalty float64 `json:"overtime_penalty"`
	WorkHours       float64 `json:"work_hours"`
	LifeHours       float64 `json:"life_hours"`
	Days            int     `json:"days"`
}

// AlwaysOnPattern is one detected off-hours work pattern
type AlwaysOnPattern struct {
	Type     string `json:"type"`
	Count    int    `json:"count"`
	Severity string `json:"severity"`
}

// AlwaysOnResponse reports off-hours work patterns over a window
type AlwaysOnResponse struct {
	Detected             bool              `json:"detected"`
	Patterns             []AlwaysOnPattern `json:"patterns"`
	TotalUnusualSessions int               `json:"total_unusual_sessions"`
}

// BurnoutRiskResponse is the additive burnout risk assessment
type BurnoutRiskResponse struct {
	Score           float64  `json:"score"`
	Level           string   `json:"level"`
	RiskFactors     []string `json:"risk_factors"`
	Recommendations []string `json:"recommendations"`
	Days            int      `json:"days"`
}
