package exportimport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wellbeing/backend/internal/domain/exportrecord"
	"github.com/wellbeing/backend/internal/domain/financial"
	"github.com/wellbeing/backend/internal/domain/health"
	"github.com/wellbeing/backend/internal/domain/productivity"
	"github.com/wellbeing/backend/internal/domain/shared"
	"github.com/wellbeing/backend/internal/domain/worklife"
	csvimport "github.com/wellbeing/backend/internal/infrastructure/import"
)

const maxImportErrors = 100

// ImportCSV ingests one entity's rows from an uploaded CSV file. Rows that
// fail to parse or validate are reported individually; valid rows are still
// saved.
func (s *Service) ImportCSV(ctx context.Context, userID uuid.UUID, entity string, data []byte) (*ImportResult, error) {
	headers, err := s.Template(entity)
	if err != nil {
		return nil, err
	}

	reader, err := csvimport.NewReaderFromBytes(data)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_FILE", err.Error())
	}
	if err := reader.ParseHeader(); err != nil {
		return nil, shared.NewDomainError("INVALID_FILE", err.Error())
	}
	if missing := reader.MissingHeaders(headers); len(missing) > 0 {
		return nil, shared.NewDomainError("MISSING_HEADERS",
			fmt.Sprintf("CSV is missing required columns: %s", strings.Join(missing, ", ")))
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, shared.NewDomainError("INVALID_FILE", err.Error())
	}

	ec := csvimport.NewErrorCollection(maxImportErrors)
	imported := 0
	for _, row := range rows {
		before := ec.TotalCount()
		if err := s.importRow(ctx, userID, entity, row, ec); err != nil {
			return nil, err
		}
		if ec.TotalCount() == before {
			imported++
		}
	}

	result := &ImportResult{
		Entity:       entity,
		TotalRows:    len(rows),
		ImportedRows: imported,
		ErrorRows:    len(rows) - imported,
		Errors:       ec.Errors(),
		IsTruncated:  ec.IsTruncated(),
		TotalErrors:  ec.TotalCount(),
	}
	s.logRun(ctx, userID, exportrecord.DirectionImport, exportrecord.FormatCSV, entity, imported, result.ErrorRows)
	return result, nil
}

// ImportJSON ingests a full dump previously produced by ExportJSON
func (s *Service) ImportJSON(ctx context.Context, userID uuid.UUID, data []byte) (*ImportResult, error) {
	var dump FullExport
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, shared.NewDomainError("INVALID_FILE", "Body is not a valid export dump")
	}

	ec := csvimport.NewErrorCollection(maxImportErrors)
	total := 0
	imported := 0

	track := func(entity string, line int, err error) {
		total++
		if err == nil {
			imported++
			return
		}
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			ec.AddValueError(line, fmt.Sprintf("%s: %s", entity, domainErr.Message))
			return
		}
		ec.AddValueError(line, fmt.Sprintf("%s: %s", entity, err.Error()))
	}

	for i, r := range dump.Transactions {
		track(EntityTransactions, i+1, s.saveTransactionRow(ctx, userID, r))
	}
	for i, r := range dump.Metrics {
		track(EntityMetrics, i+1, s.saveMetricRow(ctx, userID, r))
	}
	for i, r := range dump.Exercises {
		track(EntityExercises, i+1, s.saveExerciseRow(ctx, userID, r))
	}
	for i, r := range dump.Nutrition {
		track(EntityNutrition, i+1, s.saveNutritionRow(ctx, userID, r))
	}
	for i, r := range dump.Sleep {
		track(EntitySleep, i+1, s.saveSleepRow(ctx, userID, r))
	}
	for i, r := range dump.WorkSessions {
		track(EntityWorkSessions, i+1, s.saveWorkSessionRow(ctx, userID, r))
	}
	for i, r := range dump.LifeEvents {
		track(EntityLifeEvents, i+1, s.saveLifeEventRow(ctx, userID, r))
	}
	for i, r := range dump.FocusDays {
		track(EntityFocusDays, i+1, s.saveFocusDayRow(ctx, userID, r))
	}

	result := &ImportResult{
		Entity:       "all",
		TotalRows:    total,
		ImportedRows: imported,
		ErrorRows:    total - imported,
		Errors:       ec.Errors(),
		IsTruncated:  ec.IsTruncated(),
		TotalErrors:  ec.TotalCount(),
	}
	s.logRun(ctx, userID, exportrecord.DirectionImport, exportrecord.FormatJSON, "all", imported, result.ErrorRows)
	return result, nil
}

// importRow parses and saves one CSV row. Parse failures go into ec; only
// repository failures abort the run.
func (s *Service) importRow(ctx context.Context, userID uuid.UUID, entity string, row *csvimport.Row, ec *csvimport.ErrorCollection) error {
	switch entity {
	case EntityTransactions:
		amount, ok := parseDecimalField(row, ec, "amount")
		occurredOn, ok2 := parseTimeField(row, ec, "occurred_on", dateFormat)
		if !ok || !ok2 {
			return nil
		}
		r := TransactionRow{
			Type:        row.Get("type"),
			Amount:      amount,
			Category:    row.Get("category"),
			Description: row.Get("description"),
			Merchant:    row.Get("merchant"),
			OccurredOn:  occurredOn.Format(dateFormat),
		}
		return reportDomainError(ec, row.LineNumber, s.saveTransactionRow(ctx, userID, r))

	case EntityMetrics:
		value, ok := parseFloatField(row, ec, "value")
		secondary, ok2 := parseOptionalFloatField(row, ec, "secondary_value")
		recordedAt, ok3 := parseTimeField(row, ec, "recorded_at", timeFormat)
		if !ok || !ok2 || !ok3 {
			return nil
		}
		r := MetricRow{
			MetricType:     row.Get("metric_type"),
			Value:          value,
			SecondaryValue: secondary,
			RecordedAt:     recordedAt.Format(timeFormat),
			Note:           row.Get("note"),
		}
		return reportDomainError(ec, row.LineNumber, s.saveMetricRow(ctx, userID, r))

	case EntityExercises:
		duration, ok := parseIntField(row, ec, "duration_minutes")
		intensity, ok2 := parseIntField(row, ec, "intensity")
		calories, ok3 := parseOptionalFloatField(row, ec, "calories_burned")
		performedAt, ok4 := parseTimeField(row, ec, "performed_at", timeFormat)
		if !ok || !ok2 || !ok3 || !ok4 {
			return nil
		}
		r := ExerciseRow{
			ExerciseType:    row.Get("exercise_type"),
			DurationMinutes: duration,
			Intensity:       intensity,
			CaloriesBurned:  calories,
			PerformedAt:     performedAt.Format(timeFormat),
			Note:            row.Get("note"),
		}
		return reportDomainError(ec, row.LineNumber, s.saveExerciseRow(ctx, userID, r))

	case EntityNutrition:
		calories, ok := parseFloatField(row, ec, "calories")
		protein, ok2 := parseOptionalFloatField(row, ec, "protein_g")
		carbs, ok3 := parseOptionalFloatField(row, ec, "carbs_g")
		fat, ok4 := parseOptionalFloatField(row, ec, "fat_g")
		eatenAt, ok5 := parseTimeField(row, ec, "eaten_at", timeFormat)
		if !ok || !ok2 || !ok3 || !ok4 || !ok5 {
			return nil
		}
		r := NutritionRow{
			MealType:    row.Get("meal_type"),
			Description: row.Get("description"),
			Calories:    calories,
			ProteinG:    protein,
			CarbsG:      carbs,
			FatG:        fat,
			EatenAt:     eatenAt.Format(timeFormat),
		}
		return reportDomainError(ec, row.LineNumber, s.saveNutritionRow(ctx, userID, r))

	case EntitySleep:
		bedtime, ok := parseTimeField(row, ec, "bedtime", timeFormat)
		wakeTime, ok2 := parseTimeField(row, ec, "wake_time", timeFormat)
		awake, ok3 := parseOptionalIntField(row, ec, "awake_minutes")
		quality, ok4 := parseOptionalIntField(row, ec, "quality")
		if !ok || !ok2 || !ok3 || !ok4 {
			return nil
		}
		r := SleepRow{
			Bedtime:      bedtime.Format(timeFormat),
			WakeTime:     wakeTime.Format(timeFormat),
			AwakeMinutes: awake,
			Quality:      quality,
		}
		return reportDomainError(ec, row.LineNumber, s.saveSleepRow(ctx, userID, r))

	case EntityWorkSessions:
		startedAt, ok := parseTimeField(row, ec, "started_at", timeFormat)
		endedAt, ok2 := parseTimeField(row, ec, "ended_at", timeFormat)
		meetings, ok3 := parseOptionalIntField(row, ec, "meeting_minutes")
		stress, ok4 := parseOptionalIntField(row, ec, "stress")
		energy, ok5 := parseOptionalIntField(row, ec, "energy_after")
		if !ok || !ok2 || !ok3 || !ok4 || !ok5 {
			return nil
		}
		r := WorkSessionRow{
			StartedAt:      startedAt.Format(timeFormat),
			EndedAt:        endedAt.Format(timeFormat),
			MeetingMinutes: meetings,
			Stress:         stress,
			EnergyAfter:    energy,
			Note:           row.Get("note"),
		}
		return reportDomainError(ec, row.LineNumber, s.saveWorkSessionRow(ctx, userID, r))

	case EntityLifeEvents:
		duration, ok := parseIntField(row, ec, "duration_minutes")
		impact, ok2 := parseOptionalIntField(row, ec, "energy_impact")
		occurredAt, ok3 := parseTimeField(row, ec, "occurred_at", timeFormat)
		if !ok || !ok2 || !ok3 {
			return nil
		}
		r := LifeEventRow{
			EventType:       row.Get("event_type"),
			Title:           row.Get("title"),
			DurationMinutes: duration,
			EnergyImpact:    impact,
			OccurredAt:      occurredAt.Format(timeFormat),
		}
		return reportDomainError(ec, row.LineNumber, s.saveLifeEventRow(ctx, userID, r))

	case EntityFocusDays:
		planned, ok := parseOptionalIntField(row, ec, "tasks_planned")
		completed, ok2 := parseOptionalIntField(row, ec, "tasks_completed")
		focusScore, ok3 := parseOptionalFloatField(row, ec, "focus_score")
		switches, ok4 := parseOptionalIntField(row, ec, "context_switches")
		deepWork, ok5 := parseOptionalIntField(row, ec, "deep_work_minutes")
		day, ok6 := parseTimeField(row, ec, "day", dateFormat)
		if !ok || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 {
			return nil
		}
		r := FocusDayRow{
			Day:             day.Format(dateFormat),
			TasksPlanned:    planned,
			TasksCompleted:  completed,
			FocusScore:      focusScore,
			ContextSwitches: switches,
			DeepWorkMinutes: deepWork,
			Note:            row.Get("note"),
		}
		return reportDomainError(ec, row.LineNumber, s.saveFocusDayRow(ctx, userID, r))
	}

	return csvimport.ErrUnsupportedEntity
}

func (s *Service) saveTransactionRow(ctx context.Context, userID uuid.UUID, r TransactionRow) error {
	occurredOn, err := time.Parse(dateFormat, r.OccurredOn)
	if err != nil {
		return shared.NewDomainError("INVALID_DATE", "occurred_on must be YYYY-MM-DD")
	}
	tx, err := financial.NewTransaction(userID, financial.TransactionType(r.Type), r.Amount, r.Category, r.Description, r.Merchant, occurredOn)
	if err != nil {
		return err
	}
	return s.txRepo.Save(ctx, tx)
}

func (s *Service) saveMetricRow(ctx context.Context, userID uuid.UUID, r MetricRow) error {
	recordedAt, err := time.Parse(timeFormat, r.RecordedAt)
	if err != nil {
		return shared.NewDomainError("INVALID_DATE", "recorded_at must be RFC 3339")
	}
	metric, err := health.NewMetric(userID, health.MetricType(r.MetricType), r.Value, r.SecondaryValue, recordedAt, r.Note)
	if err != nil {
		return err
	}
	return s.metricRepo.Save(ctx, metric)
}

func (s *Service) saveExerciseRow(ctx context.Context, userID uuid.UUID, r ExerciseRow) error {
	performedAt, err := time.Parse(timeFormat, r.PerformedAt)
	if err != nil {
		return shared.NewDomainError("INVALID_DATE", "performed_at must be RFC 3339")
	}
	// imported rows keep their recorded calorie figure, no re-estimation
	exercise, err := health.NewExercise(userID, health.ExerciseType(r.ExerciseType), r.DurationMinutes, r.Intensity, r.CaloriesBurned, performedAt, r.Note, 0)
	if err != nil {
		return err
	}
	return s.exerciseRepo.Save(ctx, exercise)
}

func (s *Service) saveNutritionRow(ctx context.Context, userID uuid.UUID, r NutritionRow) error {
	eatenAt, err := time.Parse(timeFormat, r.EatenAt)
	if err != nil {
		return shared.NewDomainError("INVALID_DATE", "eaten_at must be RFC 3339")
	}
	entry, err := health.NewNutritionEntry(userID, health.MealType(r.MealType), r.Description, r.Calories, r.ProteinG, r.CarbsG, r.FatG, eatenAt)
	if err != nil {
		return err
	}
	return s.nutritionRepo.Save(ctx, entry)
}

func (s *Service) saveSleepRow(ctx context.Context, userID uuid.UUID, r SleepRow) error {
	bedtime, err := time.Parse(timeFormat, r.Bedtime)
	if err != nil {
		return shared.NewDomainError("INVALID_DATE", "bedtime must be RFC 3339")
	}
	wakeTime, err := time.Parse(timeFormat, r.WakeTime)
	if err != nil {
		return shared.NewDomainError("INVALID_DATE", "wake_time must be RFC 3339")
	}
	record, err := health.NewSleepRecord(userID, bedtime, wakeTime, r.AwakeMinutes, r.Quality)
	if err != nil {
		return err
	}
	return s.sleepRepo.Save(ctx, record)
}

func (s *Service) saveWorkSessionRow(ctx context.Context, userID uuid.UUID, r WorkSessionRow) error {
	startedAt, err := time.Parse(timeFormat, r.StartedAt)
	if err != nil {
		return shared.NewDomainError("INVALID_DATE", "started_at must be RFC 3339")
	}
	endedAt, err := time.Parse(timeFormat, r.EndedAt)
	if err != nil {
		return shared.NewDomainError("INVALID_DATE", "ended_at must be RFC 3339")
	}
	session, err := worklife.NewWorkSession(userID, startedAt, endedAt, r.MeetingMinutes, r.Stress, r.EnergyAfter, r.Note)
	if err != nil {
		return err
	}
	return s.sessionRepo.Save(ctx, session)
}

func (s *Service) saveLifeEventRow(ctx context.Context, userID uuid.UUID, r LifeEventRow) error {
	occurredAt, err := time.Parse(timeFormat, r.OccurredAt)
	if err != nil {
		return shared.NewDomainError("INVALID_DATE", "occurred_at must be RFC 3339")
	}
	event, err := worklife.NewLifeEvent(userID, worklife.LifeEventType(r.EventType), r.Title, r.DurationMinutes, r.EnergyImpact, occurredAt)
	if err != nil {
		return err
	}
	return s.eventRepo.Save(ctx, event)
}

// saveFocusDayRow keeps the one-row-per-day invariant: an existing row for
// the same day is updated rather than duplicated
func (s *Service) saveFocusDayRow(ctx context.Context, userID uuid.UUID, r FocusDayRow) error {
	day, err := time.Parse(dateFormat, r.Day)
	if err != nil {
		return shared.NewDomainError("INVALID_DATE", "day must be YYYY-MM-DD")
	}

	existing, err := s.focusRepo.FindByDay(ctx, userID, day)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return err
	}
	if existing != nil {
		if err := existing.Update(r.TasksPlanned, r.TasksCompleted, r.FocusScore, r.ContextSwitches, r.DeepWorkMinutes, r.Note); err != nil {
			return err
		}
		return s.focusRepo.Save(ctx, existing)
	}

	record, err := productivity.NewFocusDay(userID, day, r.TasksPlanned, r.TasksCompleted, r.FocusScore, r.ContextSwitches, r.DeepWorkMinutes, r.Note)
	if err != nil {
		return err
	}
	return s.focusRepo.Save(ctx, record)
}

// reportDomainError routes domain validation failures into the row error
// collection and passes infrastructure errors through
func reportDomainError(ec *csvimport.ErrorCollection, line int, err error) error {
	if err == nil {
		return nil
	}
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		ec.AddValueError(line, domainErr.Message)
		return nil
	}
	return err
}

func parseFloatField(row *csvimport.Row, ec *csvimport.ErrorCollection, column string) (float64, bool) {
	raw := row.Get(column)
	if raw == "" {
		ec.AddRequiredError(row.LineNumber, column)
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		ec.AddTypeError(row.LineNumber, column, "number", raw)
		return 0, false
	}
	return v, true
}

func parseOptionalFloatField(row *csvimport.Row, ec *csvimport.ErrorCollection, column string) (float64, bool) {
	raw := row.Get(column)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		ec.AddTypeError(row.LineNumber, column, "number", raw)
		return 0, false
	}
	return v, true
}

func parseIntField(row *csvimport.Row, ec *csvimport.ErrorCollection, column string) (int, bool) {
	raw := row.Get(column)
	if raw == "" {
		ec.AddRequiredError(row.LineNumber, column)
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		ec.AddTypeError(row.LineNumber, column, "integer", raw)
		return 0, false
	}
	return v, true
}

func parseOptionalIntField(row *csvimport.Row, ec *csvimport.ErrorCollection, column string) (int, bool) {
	raw := row.Get(column)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		ec.AddTypeError(row.LineNumber, column, "integer", raw)
		return 0, false
	}
	return v, true
}

func parseDecimalField(row *csvimport.Row, ec *csvimport.ErrorCollection, column string) (decimal.Decimal, bool) {
	raw := row.Get(column)
	if raw == "" {
		ec.AddRequiredError(row.LineNumber, column)
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		ec.AddTypeError(row.LineNumber, column, "number", raw)
		return decimal.Zero, false
	}
	return v, true
}

func parseTimeField(row *csvimport.Row, ec *csvimport.ErrorCollection, column, format string) (time.Time, bool) {
	raw := row.Get(column)
	if raw == "" {
		ec.AddRequiredError(row.LineNumber, column)
		return time.Time{}, false
	}
	v, err := time.Parse(format, raw)
	if err != nil {
		expected := "YYYY-MM-DD"
		if format == timeFormat {
			expected = "RFC 3339 timestamp"
		}
		ec.AddFormatError(row.LineNumber, column, expected, raw)
		return time.Time{}, false
	}
	return v, true
}
