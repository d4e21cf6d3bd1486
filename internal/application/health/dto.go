package health

import (
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/health"
)

// RecordMetricRequest represents a request to record a health metric
type RecordMetricRequest struct {
	MetricType     string    `json:"metric_type" binding:"required,oneof=weight heart_rate blood_pressure blood_sugar body_fat"`
	Value          float64   `json:"value" binding:"required,gt=0"`
	SecondaryValue float64   `json:"secondary_value" binding:"omitempty,gt=0"`
	RecordedAt     time.Time `json:"recorded_at"`
	Note           string    `json:"note" binding:"max=500"`
}

// UpdateMetricRequest represents a request to update a health metric
type UpdateMetricRequest struct {
	Value          float64   `json:"value" binding:"required,gt=0"`
	SecondaryValue float64   `json:"secondary_value" binding:"omitempty,gt=0"`
	RecordedAt     time.Time `json:"recorded_at"`
	Note           string    `json:"note" binding:"max=500"`
}

// MetricResponse represents a health metric in API responses
type MetricResponse struct {
	ID             uuid.UUID `json:"id"`
	MetricType     string    `json:"metric_type"`
	Value          float64   `json:"value"`
	SecondaryValue float64   `json:"secondary_value,omitempty"`
	RecordedAt     time.Time `json:"recorded_at"`
	Note           string    `json:"note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToMetricResponse converts a metric to its response representation
func ToMetricResponse(m *health.Metric) *MetricResponse {
	return &MetricResponse{
		ID:             m.ID,
		MetricType:     string(m.MetricType),
		Value:          m.Value,
		SecondaryValue: m.SecondaryValue,
		RecordedAt:     m.RecordedAt,
		Note:           m.Note,
		CreatedAt:      m.CreatedAt,
	}
}

// ToMetricResponses converts a slice of metrics
func ToMetricResponses(ms []health.Metric) []MetricResponse {
	out := make([]MetricResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *ToMetricResponse(&ms[i]))
	}
	return out
}

// LogExerciseRequest represents a request to log a workout
type LogExerciseRequest struct {
	ExerciseType    string    `json:"exercise_type" binding:"required,oneof=walking running cycling swimming strength yoga sports other"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,gt=0,lte=1440"`
	Intensity       int       `json:"intensity" binding:"required,gte=1,lte=10"`
	Calories        float64   `json:"calories" binding:"omitempty,gte=0"`
	PerformedAt     time.Time `json:"performed_at"`
	Note            string    `json:"note" binding:"max=500"`
}

// ExerciseResponse represents a workout entry in API responses
type ExerciseResponse struct {
	ID              uuid.UUID `json:"id"`
	ExerciseType    string    `json:"exercise_type"`
	DurationMinutes int       `json:"duration_minutes"`
	Intensity       int       `json:"intensity"`
	CaloriesBurned  float64   `json:"calories_burned"`
	PerformedAt     time.Time `json:"performed_at"`
	Note            string    `json:"note,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToExerciseResponse converts an exercise to its response representation
func ToExerciseResponse(e *health.Exercise) *ExerciseResponse {
	return &ExerciseResponse{
		ID:              e.ID,
		ExerciseType:    string(e.ExerciseType),
		DurationMinutes: e.DurationMinutes,
		Intensity:       e.Intensity,
		CaloriesBurned:  e.CaloriesBurned,
		PerformedAt:     e.PerformedAt,
		Note:            e.Note,
		CreatedAt:       e.CreatedAt,
	}
}

// ToExerciseResponses converts a slice of exercises
func ToExerciseResponses(es []health.Exercise) []ExerciseResponse {
	out := make([]ExerciseResponse, 0, len(es))
	for i := range es {
		out = append(out, *ToExerciseResponse(&es[i]))
	}
	return out
}

// LogMealRequest represents a request to log a meal
type LogMealRequest struct {
	MealType    string    `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	Description string    `json:"description" binding:"max=500"`
	Calories    float64   `json:"calories" binding:"required,gte=0"`
	ProteinG    float64   `json:"protein_g" binding:"omitempty,gte=0"`
	CarbsG      float64   `json:"carbs_g" binding:"omitempty,gte=0"`
	FatG        float64   `json:"fat_g" binding:"omitempty,gte=0"`
	EatenAt     time.Time `json:"eaten_at"`
}

// NutritionResponse represents a meal entry in API responses
type NutritionResponse struct {
	ID           uuid.UUID `json:"id"`
	MealType     string    `json:"meal_type"`
	Description  string    `json:"description,omitempty"`
	Calories     float64   `json:"calories"`
	ProteinG     float64   `json:"protein_g"`
	CarbsG       float64   `json:"carbs_g"`
	FatG         float64   `json:"fat_g"`
	QualityScore float64   `json:"quality_score"`
	EatenAt      time.Time `json:"eaten_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToNutritionResponse converts a meal entry to its response representation
func ToNutritionResponse(n *health.NutritionEntry) *NutritionResponse {
	return &NutritionResponse{
		ID:           n.ID,
		MealType:     string(n.MealType),
		Description:  n.Description,
		Calories:     n.Calories,
		ProteinG:     n.ProteinG,
		CarbsG:       n.CarbsG,
		FatG:         n.FatG,
		QualityScore: n.QualityScore(),
		EatenAt:      n.EatenAt,
		CreatedAt:    n.CreatedAt,
	}
}

// ToNutritionResponses converts a slice of meal entries
func ToNutritionResponses(ns []health.NutritionEntry) []NutritionResponse {
	out := make([]NutritionResponse, 0, len(ns))
	for i := range ns {
		out = append(out, *ToNutritionResponse(&ns[i]))
	}
	return out
}

// LogSleepRequest represents a request to log a night of sleep
type LogSleepRequest struct {
	Bedtime      time.Time `json:"bedtime" binding:"required"`
	WakeTime     time.Time `json:"wake_time" binding:"required"`
	AwakeMinutes int       `json:"awake_minutes" binding:"omitempty,gte=0"`
	Quality      int       `json:"quality" binding:"omitempty,gte=1,lte=10"`
}

// SleepResponse represents a sleep record in API responses
type SleepResponse struct {
	ID            uuid.UUID `json:"id"`
	Bedtime       time.Time `json:"bedtime"`
	WakeTime      time.Time `json:"wake_time"`
	DurationHours float64   `json:"duration_hours"`
	AwakeMinutes  int       `json:"awake_minutes"`
	Quality       int       `json:"quality"`
	Efficiency    float64   `json:"efficiency"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToSleepResponse converts a sleep record to its response representation
func ToSleepResponse(s *health.SleepRecord) *SleepResponse {
	return &SleepResponse{
		ID:            s.ID,
		Bedtime:       s.Bedtime,
		WakeTime:      s.WakeTime,
		DurationHours: s.DurationHours(),
		AwakeMinutes:  s.AwakeMinutes,
		Quality:       s.Quality,
		Efficiency:    s.Efficiency(),
		CreatedAt:     s.CreatedAt,
	}
}

// ToSleepResponses converts a slice of sleep records
func ToSleepResponses(ss []health.SleepRecord) []SleepResponse {
	out := make([]SleepResponse, 0, len(ss))
	for i := range ss {
		out = append(out, *ToSleepResponse(&ss[i]))
	}
	return out
}

// ScoreComponent is one weighted slice of the health score
type ScoreComponent struct {
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	MaxScore float64 `json:"max_score"`
}

// HealthScoreResponse is the composite health score with breakdown
type HealthScoreResponse struct {
	Score      float64          `json:"score"`
	MaxScore   float64          `json:"max_score"`
	Percentage float64          `json:"percentage"`
	Grade      string           `json:"grade"`
	Components []ScoreComponent `json:"components"`
}

// TrendPoint is one dated value in a trend series
type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// TrendResponse describes how a metric moved over a window by comparing the
// first half of the series against the second
type TrendResponse struct {
	Metric        string       `json:"metric"`
	Days          int          `json:"days"`
	Points        []TrendPoint `json:"points"`
	Direction     string       `json:"direction"`
	ChangePercent float64      `json:"change_percent"`
}

// TDEERequest carries optional overrides for the energy calculation. Fields
// left empty fall back to the stored profile.
type TDEERequest struct {
	WeightKg      float64 `json:"weight_kg" binding:"omitempty,gt=0"`
	HeightCm      float64 `json:"height_cm" binding:"omitempty,gt=0"`
	Age           int     `json:"age" binding:"omitempty,gt=0"`
	Gender        string  `json:"gender" binding:"omitempty,oneof=male female other"`
	ActivityLevel string  `json:"activity_level" binding:"omitempty,oneof=sedentary lightly_active moderately_active very_active extra_active"`
	Goal          string  `json:"goal" binding:"omitempty,oneof=lose maintain gain"`
}

// MacroTargets is a daily calorie and macro nutrient budget
type MacroTargets struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// TDEEResponse is the full energy expenditure calculation
type TDEEResponse struct {
	BMR           float64      `json:"bmr"`
	TDEE          float64      `json:"tdee"`
	ActivityLevel string       `json:"activity_level"`
	Goal          string       `json:"goal"`
	Targets       MacroTargets `json:"targets"`
}

// SleepAverages summarizes a window of sleep records
type SleepAverages struct {
	TotalHours float64 `json:"total_hours"`
	Quality    float64 `json:"quality"`
	Efficiency float64 `json:"efficiency"`
}

// SleepAnalysisResponse is the sleep pattern analysis for a window
type SleepAnalysisResponse struct {
	Days             int           `json:"days"`
	NightsTracked    int           `json:"nights_tracked"`
	Averages         SleepAverages `json:"averages"`
	ConsistencyScore float64       `json:"consistency_score"`
	Recommendations  []string      `json:"recommendations"`
}

// DashboardResponse is the health overview combining latest metrics with
// weekly exercise and sleep aggregates
type DashboardResponse struct {
	LatestWeight       *MetricResponse `json:"latest_weight,omitempty"`
	LatestHeartRate    *MetricResponse `json:"latest_heart_rate,omitempty"`
	LatestBloodPress   *MetricResponse `json:"latest_blood_pressure,omitempty"`
	BMI                float64         `json:"bmi,omitempty"`
	BMICategory        string          `json:"bmi_category,omitempty"`
	WeeklyExerciseMins int             `json:"weekly_exercise_minutes"`
	WeeklyExerciseDays int             `json:"weekly_exercise_days"`
	WeeklyCaloriesOut  float64         `json:"weekly_calories_burned"`
	AvgDailyCalories   float64         `json:"avg_daily_calories"`
	AvgSleepHours      float64         `json:"avg_sleep_hours"`
	AvgSleepQuality    float64         `json:"avg_sleep_quality"`
	HealthScore        float64         `json:"health_score"`
	Grade              string          `json:"grade"`
}

// ReportSymptomRequest represents a request to report a symptom episode
type ReportSymptomRequest struct {
	Name        string    `json:"name" binding:"required,max=100"`
	Severity    string    `json:"severity" binding:"required,oneof=mild moderate severe"`
	BodyPart    string    `json:"body_part" binding:"max=100"`
	Description string    `json:"description" binding:"max=2000"`
	StartedAt   time.Time `json:"started_at"`
	Notes       string    `json:"notes" binding:"max=1000"`
}

// UpdateSymptomRequest represents a request to update a symptom episode.
// Setting EndedAt resolves the episode.
type UpdateSymptomRequest struct {
	Severity    string     `json:"severity" binding:"required,oneof=mild moderate severe"`
	Description string     `json:"description" binding:"max=2000"`
	Notes       string     `json:"notes" binding:"max=1000"`
	EndedAt     *time.Time `json:"ended_at"`
}

// SymptomResponse represents a symptom episode in API responses
type SymptomResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Severity    string     `json:"severity"`
	BodyPart    string     `json:"body_part,omitempty"`
	Description string     `json:"description,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
	Active      bool       `json:"active"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToSymptomResponse converts a symptom to its response representation
func ToSymptomResponse(s *health.Symptom) *SymptomResponse {
	return &SymptomResponse{
		ID:          s.ID,
		Name:        s.Name,
		Severity:    string(s.Severity),
		BodyPart:    s.BodyPart,
		Description: s.Description,
		StartedAt:   s.StartedAt,
		EndedAt:     s.EndedAt,
		Active:      s.Active(),
		Notes:       s.Notes,
		CreatedAt:   s.CreatedAt,
	}
}

// ToSymptomResponses converts a slice of symptoms
func ToSymptomResponses(symptoms []health.Symptom) []SymptomResponse {
	out := make([]SymptomResponse, 0, len(symptoms))
	for i := range symptoms {
		out = append(out, *ToSymptomResponse(&symptoms[i]))
	}
	return out
}
