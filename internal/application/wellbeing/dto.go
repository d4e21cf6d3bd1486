package wellbeing

import (
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/wellbeing"
)

// PillarScore is one pillar's contribution to the overall picture. Pillars
// with no tracked data are marked unavailable and excluded from the average.
type PillarScore struct {
	Score     float64 `json:"score"`
	Available bool    `json:"available"`
}

// DashboardResponse is the cross-pillar wellbeing overview
type DashboardResponse struct {
	Financial    PillarScore `json:"financial"`
	Health       PillarScore `json:"health"`
	Worklife     PillarScore `json:"worklife"`
	Productivity PillarScore `json:"productivity"`
	OverallScore float64     `json:"overall_score"`
	GeneratedAt  time.Time   `json:"generated_at"`
}

// Insight is one rule-generated observation across the pillars
type Insight struct {
	Type        string                 `json:"type"`
	Pillar      string                 `json:"pillar"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Severity    string                 `json:"severity"`
	Data        map[string]interface{} `json:"data,omitempty"`
}

// InsightsResponse is the rule-based insight feed for a window
type InsightsResponse struct {
	Days     int       `json:"days"`
	Insights []Insight `json:"insights"`
}

// LogMoodRequest records one mood check-in
type LogMoodRequest struct {
	MoodScore   int       `json:"mood_score" binding:"required,gte=1,lte=10"`
	EnergyLevel int       `json:"energy_level" binding:"required,gte=1,lte=10"`
	StressLevel int       `json:"stress_level" binding:"required,gte=1,lte=10"`
	Notes       string    `json:"notes" binding:"max=1000"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// MoodEntryResponse represents a mood check-in in API responses
type MoodEntryResponse struct {
	ID          uuid.UUID `json:"id"`
	MoodScore   int       `json:"mood_score"`
	EnergyLevel int       `json:"energy_level"`
	StressLevel int       `json:"stress_level"`
	Notes       string    `json:"notes,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToMoodEntryResponse converts a mood entry to its response representation
func ToMoodEntryResponse(e *wellbeing.MoodEntry) *MoodEntryResponse {
	return &MoodEntryResponse{
		ID:          e.ID,
		MoodScore:   e.MoodScore,
		EnergyLevel: e.EnergyLevel,
		StressLevel: e.StressLevel,
		Notes:       e.Notes,
		RecordedAt:  e.RecordedAt,
		CreatedAt:   e.CreatedAt,
	}
}

// ToMoodEntryResponses converts a slice of mood entries
func ToMoodEntryResponses(entries []wellbeing.MoodEntry) []MoodEntryResponse {
	out := make([]MoodEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, *ToMoodEntryResponse(&entries[i]))
	}
	return out
}

// CreateGoalRequest creates a wellbeing goal
type CreateGoalRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description" binding:"max=2000"`
	TargetDate  *time.Time `json:"target_date"`
}

// UpdateGoalRequest replaces a goal's fields; Completed toggles completion
type UpdateGoalRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description" binding:"max=2000"`
	TargetDate  *time.Time `json:"target_date"`
	Completed   *bool      `json:"completed"`
}

// GoalResponse represents a goal in API responses
type GoalResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Overdue     bool       `json:"overdue"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToGoalResponse converts a goal to its response representation
func ToGoalResponse(g *wellbeing.Goal) *GoalResponse {
	return &GoalResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		TargetDate:  g.TargetDate,
		Completed:   g.Completed,
		CompletedAt: g.CompletedAt,
		Overdue:     g.Overdue(),
		CreatedAt:   g.CreatedAt,
	}
}

// ToGoalResponses converts a slice of goals
func ToGoalResponses(goals []wellbeing.Goal) []GoalResponse {
	out := make([]GoalResponse, 0, len(goals))
	for i := range goals {
		out = append(out, *ToGoalResponse(&goals[i]))
	}
	return out
}
