package exportimport

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wellbeing/backend/internal/domain/exportrecord"
	"github.com/wellbeing/backend/internal/domain/financial"
	"github.com/wellbeing/backend/internal/domain/health"
	"github.com/wellbeing/backend/internal/domain/productivity"
	"github.com/wellbeing/backend/internal/domain/shared"
	"github.com/wellbeing/backend/internal/domain/worklife"
	csvimport "github.com/wellbeing/backend/internal/infrastructure/import"
)

// entityHeaders defines the CSV schema per entity. Header order is the
// column order in exports and templates.
var entityHeaders = map[string][]string{
	EntityTransactions: {"type", "amount", "category", "description", "merchant", "occurred_on"},
	EntityMetrics:      {"metric_type", "value", "secondary_value", "recorded_at", "note"},
	EntityExercises:    {"exercise_type", "duration_minutes", "intensity", "calories_burned", "performed_at", "note"},
	EntityNutrition:    {"meal_type", "description", "calories", "protein_g", "carbs_g", "fat_g", "eaten_at"},
	EntitySleep:        {"bedtime", "wake_time", "awake_minutes", "quality"},
	EntityWorkSessions: {"started_at", "ended_at", "meeting_minutes", "stress", "energy_after", "note"},
	EntityLifeEvents:   {"event_type", "title", "duration_minutes", "energy_impact", "occurred_at"},
	EntityFocusDays:    {"day", "tasks_planned", "tasks_completed", "focus_score", "context_switches", "deep_work_minutes", "note"},
}

// Service handles full-account export and CSV/JSON import across all pillars
type Service struct {
	txRepo        financial.TransactionRepository
	metricRepo    health.MetricRepository
	exerciseRepo  health.ExerciseRepository
	nutritionRepo health.NutritionRepository
	sleepRepo     health.SleepRepository
	sessionRepo   worklife.WorkSessionRepository
	eventRepo     worklife.LifeEventRepository
	focusRepo     productivity.FocusDayRepository
	recordRepo    exportrecord.Repository
	logger        *zap.Logger
}

// NewService creates a new export/import service
func NewService(
	txRepo financial.TransactionRepository,
	metricRepo health.MetricRepository,
	exerciseRepo health.ExerciseRepository,
	nutritionRepo health.NutritionRepository,
	sleepRepo health.SleepRepository,
	sessionRepo worklife.WorkSessionRepository,
	eventRepo worklife.LifeEventRepository,
	focusRepo productivity.FocusDayRepository,
	recordRepo exportrecord.Repository,
	logger *zap.Logger,
) *Service {
	return &Service{
		txRepo:        txRepo,
		metricRepo:    metricRepo,
		exerciseRepo:  exerciseRepo,
		nutritionRepo: nutritionRepo,
		sleepRepo:     sleepRepo,
		sessionRepo:   sessionRepo,
		eventRepo:     eventRepo,
		focusRepo:     focusRepo,
		recordRepo:    recordRepo,
		logger:        logger,
	}
}

// Template returns the CSV header row for an entity
func (s *Service) Template(entity string) ([]string, error) {
	headers, ok := entityHeaders[entity]
	if !ok {
		return nil, shared.NewDomainError("UNSUPPORTED_ENTITY", fmt.Sprintf("No CSV schema for entity '%s'", entity))
	}
	return headers, nil
}

// History lists past export and import runs
func (s *Service) History(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]ExportRecordResponse, error) {
	records, err := s.recordRepo.FindAllForUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]ExportRecordResponse, 0, len(records))
	for i := range records {
		out = append(out, *ToExportRecordResponse(&records[i]))
	}
	return out, nil
}

// exportFilter returns everything, oldest first
func exportFilter() shared.Filter {
	return shared.Filter{OrderDir: "asc"}
}

// ExportJSON builds the full per-pillar dump
func (s *Service) ExportJSON(ctx context.Context, userID uuid.UUID) (*FullExport, error) {
	dump, err := s.collectAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := len(dump.Transactions) + len(dump.Metrics) + len(dump.Exercises) + len(dump.Nutrition) +
		len(dump.Sleep) + len(dump.WorkSessions) + len(dump.LifeEvents) + len(dump.FocusDays)
	s.logRun(ctx, userID, exportrecord.DirectionExport, exportrecord.FormatJSON, "all", total, 0)
	return dump, nil
}

// ExportCSV renders one entity as a CSV document
func (s *Service) ExportCSV(ctx context.Context, userID uuid.UUID, entity string) ([]byte, error) {
	headers, err := s.Template(entity)
	if err != nil {
		return nil, err
	}

	records, err := s.entityRecords(ctx, userID, entity)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, err
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	s.logRun(ctx, userID, exportrecord.DirectionExport, exportrecord.FormatCSV, entity, len(records), 0)
	return buf.Bytes(), nil
}

func (s *Service) collectAll(ctx context.Context, userID uuid.UUID) (*FullExport, error) {
	dump := &FullExport{ExportedAt: time.Now()}
	filter := exportFilter()

	txs, err := s.txRepo.FindAllForUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	for i := range txs {
		dump.Transactions = append(dump.Transactions, toTransactionRow(&txs[i]))
	}

	metrics, err := s.metricRepo.FindAllForUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	for i := range metrics {
		dump.Metrics = append(dump.Metrics, toMetricRow(&metrics[i]))
	}

	exercises, err := s.exerciseRepo.FindAllForUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	for i := range exercises {
		dump.Exercises = append(dump.Exercises, toExerciseRow(&exercises[i]))
	}

	meals, err := s.nutritionRepo.FindAllForUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	for i := range meals {
		dump.Nutrition = append(dump.Nutrition, toNutritionRow(&meals[i]))
	}

	nights, err := s.sleepRepo.FindAllForUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	for i := range nights {
		dump.Sleep = append(dump.Sleep, toSleepRow(&nights[i]))
	}

	sessions, err := s.sessionRepo.FindAllForUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		dump.WorkSessions = append(dump.WorkSessions, toWorkSessionRow(&sessions[i]))
	}

	events, err := s.eventRepo.FindAllForUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	for i := range events {
		dump.LifeEvents = append(dump.LifeEvents, toLifeEventRow(&events[i]))
	}

	days, err := s.focusRepo.FindAllForUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	for i := range days {
		dump.FocusDays = append(dump.FocusDays, toFocusDayRow(&days[i]))
	}

	return dump, nil
}

// entityRecords fetches one entity's rows already rendered as CSV fields
func (s *Service) entityRecords(ctx context.Context, userID uuid.UUID, entity string) ([][]string, error) {
	filter := exportFilter()
	var records [][]string

	switch entity {
	case EntityTransactions:
		txs, err := s.txRepo.FindAllForUser(ctx, userID, filter)
		if err != nil {
			return nil, err
		}
		for i := range txs {
			r := toTransactionRow(&txs[i])
			records = append(records, []string{r.Type, r.Amount.String(), r.Category, r.Description, r.Merchant, r.OccurredOn})
		}
	case EntityMetrics:
		metrics, err := s.metricRepo.FindAllForUser(ctx, userID, filter)
		if err != nil {
			return nil, err
		}
		for i := range metrics {
			r := toMetricRow(&metrics[i])
			records = append(records, []string{r.MetricType, formatFloat(r.Value), formatFloat(r.SecondaryValue), r.RecordedAt, r.Note})
		}
	case EntityExercises:
		exercises, err := s.exerciseRepo.FindAllForUser(ctx, userID, filter)
		if err != nil {
			return nil, err
		}
		for i := range exercises {
			r := toExerciseRow(&exercises[i])
			records = append(records, []string{r.ExerciseType, strconv.Itoa(r.DurationMinutes), strconv.Itoa(r.Intensity), formatFloat(r.CaloriesBurned), r.PerformedAt, r.Note})
		}
	case EntityNutrition:
		meals, err := s.nutritionRepo.FindAllForUser(ctx, userID, filter)
		if err != nil {
			return nil, err
		}
		for i := range meals {
			r := toNutritionRow(&meals[i])
			records = append(records, []string{r.MealType, r.Description, formatFloat(r.Calories), formatFloat(r.ProteinG), formatFloat(r.CarbsG), formatFloat(r.FatG), r.EatenAt})
		}
	case EntitySleep:
		nights, err := s.sleepRepo.FindAllForUser(ctx, userID, filter)
		if err != nil {
			return nil, err
		}
		for i := range nights {
			r := toSleepRow(&nights[i])
			records = append(records, []string{r.Bedtime, r.WakeTime, strconv.Itoa(r.AwakeMinutes), strconv.Itoa(r.Quality)})
		}
	case EntityWorkSessions:
		sessions, err := s.sessionRepo.FindAllForUser(ctx, userID, filter)
		if err != nil {
			return nil, err
		}
		for i := range sessions {
			r := toWorkSessionRow(&sessions[i])
			records = append(records, []string{r.StartedAt, r.EndedAt, strconv.Itoa(r.MeetingMinutes), strconv.Itoa(r.Stress), strconv.Itoa(r.EnergyAfter), r.Note})
		}
	case EntityLifeEvents:
		events, err := s.eventRepo.FindAllForUser(ctx, userID, filter)
		if err != nil {
			return nil, err
		}
		for i := range events {
			r := toLifeEventRow(&events[i])
			records = append(records, []string{r.EventType, r.Title, strconv.Itoa(r.DurationMinutes), strconv.Itoa(r.EnergyImpact), r.OccurredAt})
		}
	case EntityFocusDays:
		days, err := s.focusRepo.FindAllForUser(ctx, userID, filter)
		if err != nil {
			return nil, err
		}
		for i := range days {
			r := toFocusDayRow(&days[i])
			records = append(records, []string{r.Day, strconv.Itoa(r.TasksPlanned), strconv.Itoa(r.TasksCompleted), formatFloat(r.FocusScore), strconv.Itoa(r.ContextSwitches), strconv.Itoa(r.DeepWorkMinutes), r.Note})
		}
	default:
		return nil, csvimport.ErrUnsupportedEntity
	}

	return records, nil
}

// logRun writes the audit row. A failed audit write never fails the
// export or import itself.
func (s *Service) logRun(ctx context.Context, userID uuid.UUID, direction exportrecord.Direction, format exportrecord.Format, entity string, rows, errorCount int) {
	record := exportrecord.New(userID, direction, format, entity, rows, errorCount)
	if err := s.recordRepo.Save(ctx, record); err != nil {
		s.logger.Warn("failed to log export record",
			zap.String("entity", entity),
			zap.String("direction", string(direction)),
			zap.Error(err))
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
