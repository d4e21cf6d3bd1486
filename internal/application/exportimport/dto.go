package exportimport

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wellbeing/backend/internal/domain/exportrecord"
	"github.com/wellbeing/backend/internal/domain/financial"
	"github.com/wellbeing/backend/internal/domain/health"
	"github.com/wellbeing/backend/internal/domain/productivity"
	"github.com/wellbeing/backend/internal/domain/worklife"
	csvimport "github.com/wellbeing/backend/internal/infrastructure/import"
)

// Entity names accepted by the CSV endpoints
const (
	EntityTransactions = "transactions"
	EntityMetrics      = "metrics"
	EntityExercises    = "exercises"
	EntityNutrition    = "nutrition"
	EntitySleep        = "sleep"
	EntityWorkSessions = "work_sessions"
	EntityLifeEvents   = "life_events"
	EntityFocusDays    = "focus_days"
)

// Date and timestamp formats used in CSV columns
const (
	dateFormat = "2006-01-02"
	timeFormat = time.RFC3339
)

// TransactionRow is the wire shape of one transaction in an export
type TransactionRow struct {
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Merchant    string          `json:"merchant"`
	OccurredOn  string          `json:"occurred_on"`
}

// MetricRow is the wire shape of one health metric in an export
type MetricRow struct {
	MetricType     string  `json:"metric_type"`
	Value          float64 `json:"value"`
	SecondaryValue float64 `json:"secondary_value"`
	RecordedAt     string  `json:"recorded_at"`
	Note           string  `json:"note"`
}

// ExerciseRow is the wire shape of one workout in an export
type ExerciseRow struct {
	ExerciseType    string  `json:"exercise_type"`
	DurationMinutes int     `json:"duration_minutes"`
	Intensity       int     `json:"intensity"`
	CaloriesBurned  float64 `json:"calories_burned"`
	PerformedAt     string  `json:"performed_at"`
	Note            string  `json:"note"`
}

// NutritionRow is the wire shape of one meal in an export
type NutritionRow struct {
	MealType    string  `json:"meal_type"`
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
	ProteinG    float64 `json:"protein_g"`
	CarbsG      float64 `json:"carbs_g"`
	FatG        float64 `json:"fat_g"`
	EatenAt     string  `json:"eaten_at"`
}

// SleepRow is the wire shape of one night in an export
type SleepRow struct {
	Bedtime      string `json:"bedtime"`
	WakeTime     string `json:"wake_time"`
	AwakeMinutes int    `json:"awake_minutes"`
	Quality      int    `json:"quality"`
}

// WorkSessionRow is the wire shape of one work session in an export
type WorkSessionRow struct {
	StartedAt      string `json:"started_at"`
	EndedAt        string `json:"ended_at"`
	MeetingMinutes int    `json:"meeting_minutes"`
	Stress         int    `json:"stress"`
	EnergyAfter    int    `json:"energy_after"`
	Note           string `json:"note"`
}

// LifeEventRow is the wire shape of one life event in an export
type LifeEventRow struct {
	EventType       string `json:"event_type"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"duration_minutes"`
	EnergyImpact    int    `json:"energy_impact"`
	OccurredAt      string `json:"occurred_at"`
}

// FocusDayRow is the wire shape of one productivity day in an export
type FocusDayRow struct {
	Day             string  `json:"day"`
	TasksPlanned    int     `json:"tasks_planned"`
	TasksCompleted  int     `json:"tasks_completed"`
	FocusScore      float64 `json:"focus_score"`
	ContextSwitches int     `json:"context_switches"`
	DeepWorkMinutes int     `json:"deep_work_minutes"`
	Note            string  `json:"note"`
}

// FullExport is the complete per-pillar JSON dump. The same shape is
// accepted by the JSON import endpoint.
type FullExport struct {
	ExportedAt   time.Time        `json:"exported_at"`
	Transactions []TransactionRow `json:"transactions"`
	Metrics      []MetricRow      `json:"metrics"`
	Exercises    []ExerciseRow    `json:"exercises"`
	Nutrition    []NutritionRow   `json:"nutrition"`
	Sleep        []SleepRow       `json:"sleep"`
	WorkSessions []WorkSessionRow `json:"work_sessions"`
	LifeEvents   []LifeEventRow   `json:"life_events"`
	FocusDays    []FocusDayRow    `json:"focus_days"`
}

// ImportResult reports one import run with per-row errors
type ImportResult struct {
	Entity       string               `json:"entity"`
	TotalRows    int                  `json:"total_rows"`
	ImportedRows int                  `json:"imported_rows"`
	ErrorRows    int                  `json:"error_rows"`
	Errors       []csvimport.RowError `json:"errors,omitempty"`
	IsTruncated  bool                 `json:"is_truncated,omitempty"`
	TotalErrors  int                  `json:"total_errors,omitempty"`
}

// ExportRecordResponse represents one logged export/import run
type ExportRecordResponse struct {
	ID         string    `json:"id"`
	Direction  string    `json:"direction"`
	Format     string    `json:"format"`
	Entity     string    `json:"entity"`
	RowCount   int       `json:"row_count"`
	ErrorCount int       `json:"error_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToExportRecordResponse converts an export record to a response DTO
func ToExportRecordResponse(rec *exportrecord.ExportRecord) *ExportRecordResponse {
	return &ExportRecordResponse{
		ID:         rec.ID.String(),
		Direction:  string(rec.Direction),
		Format:     string(rec.Format),
		Entity:     rec.Entity,
		RowCount:   rec.RowCount,
		ErrorCount: rec.ErrorCount,
		CreatedAt:  rec.CreatedAt,
	}
}

func toTransactionRow(tx *financial.Transaction) TransactionRow {
	return TransactionRow{
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Category:    tx.Category,
		Description: tx.Description,
		Merchant:    tx.Merchant,
		OccurredOn:  tx.OccurredOn.Format(dateFormat),
	}
}

func toMetricRow(m *health.Metric) MetricRow {
	return MetricRow{
		MetricType:     string(m.MetricType),
		Value:          m.Value,
		SecondaryValue: m.SecondaryValue,
		RecordedAt:     m.RecordedAt.Format(timeFormat),
		Note:           m.Note,
	}
}

func toExerciseRow(e *health.Exercise) ExerciseRow {
	return ExerciseRow{
		ExerciseType:    string(e.ExerciseType),
		DurationMinutes: e.DurationMinutes,
		Intensity:       e.Intensity,
		CaloriesBurned:  e.CaloriesBurned,
		PerformedAt:     e.PerformedAt.Format(timeFormat),
		Note:            e.Note,
	}
}

func toNutritionRow(n *health.NutritionEntry) NutritionRow {
	return NutritionRow{
		MealType:    string(n.MealType),
		Description: n.Description,
		Calories:    n.Calories,
		ProteinG:    n.ProteinG,
		CarbsG:      n.CarbsG,
		FatG:        n.FatG,
		EatenAt:     n.EatenAt.Format(timeFormat),
	}
}

func toSleepRow(s *health.SleepRecord) SleepRow {
	return SleepRow{
		Bedtime:      s.Bedtime.Format(timeFormat),
		WakeTime:     s.WakeTime.Format(timeFormat),
		AwakeMinutes: s.AwakeMinutes,
		Quality:      s.Quality,
	}
}

func toWorkSessionRow(w *worklife.WorkSession) WorkSessionRow {
	return WorkSessionRow{
		StartedAt:      w.StartedAt.Format(timeFormat),
		EndedAt:        w.EndedAt.Format(timeFormat),
		MeetingMinutes: w.MeetingMinutes,
		Stress:         w.Stress,
		EnergyAfter:    w.EnergyAfter,
		Note:           w.Note,
	}
}

func toLifeEventRow(e *worklife.LifeEvent) LifeEventRow {
	return LifeEventRow{
		EventType:       string(e.EventType),
		Title:           e.Title,
		DurationMinutes: e.DurationMinutes,
		EnergyImpact:    e.EnergyImpact,
		OccurredAt:      e.OccurredAt.Format(timeFormat),
	}
}

func toFocusDayRow(f *productivity.FocusDay) FocusDayRow {
	return FocusDayRow{
		Day:             f.Day.Format(dateFormat),
		TasksPlanned:    f.TasksPlanned,
		TasksCompleted:  f.TasksCompleted,
		FocusScore:      f.FocusScore,
		ContextSwitches: f.ContextSwitches,
		DeepWorkMinutes: f.DeepWorkMinutes,
		Note:            f.Note,
	}
}
