package exportimport

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wellbeing/backend/internal/domain/exportrecord"
	"github.com/wellbeing/backend/internal/domain/financial"
	"github.com/wellbeing/backend/internal/domain/health"
	"github.com/wellbeing/backend/internal/domain/productivity"
	"github.com/wellbeing/backend/internal/domain/shared"
	"github.com/wellbeing/backend/internal/domain/worklife"
)

// slice-backed mocks preserve insertion order so exports are deterministic

type mockTransactionRepo struct {
	txs []*financial.Transaction
}

func (m *mockTransactionRepo) FindByIDForUser(_ context.Context, userID, id uuid.UUID) (*financial.Transaction, error) {
	for _, tx := range m.txs {
		if tx.ID == id && tx.UserID == userID {
			return tx, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *mockTransactionRepo) FindAllForUser(_ context.Context, userID uuid.UUID, _ shared.Filter) ([]financial.Transaction, error) {
	var out []financial.Transaction
	for _, tx := range m.txs {
		if tx.UserID == userID {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (m *mockTransactionRepo) FindInRange(_ context.Context, userID uuid.UUID, from, to time.Time) ([]financial.Transaction, error) {
	var out []financial.Transaction
	for _, tx := range m.txs {
		if tx.UserID == userID && !tx.OccurredOn.Before(from) && tx.OccurredOn.Before(to) {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (m *mockTransactionRepo) FindByCategoryInRange(_ context.Context, userID uuid.UUID, category string, from, to time.Time) ([]financial.Transaction, error) {
	var out []financial.Transaction
	for _, tx := range m.txs {
		if tx.UserID == userID && tx.Category == category && !tx.OccurredOn.Before(from) && tx.OccurredOn.Before(to) {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (m *mockTransactionRepo) Save(_ context.Context, tx *financial.Transaction) error {
	m.txs = append(m.txs, tx)
	return nil
}

func (m *mockTransactionRepo) DeleteForUser(_ context.Context, userID, id uuid.UUID) error {
	for i, tx := range m.txs {
		if tx.ID == id && tx.UserID == userID {
			m.txs = append(m.txs[:i], m.txs[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

func (m *mockTransactionRepo) CountForUser(_ context.Context, userID uuid.UUID, _ shared.Filter) (int64, error) {
	var count int64
	for _, tx := range m.txs {
		if tx.UserID == userID {
			count++
		}
	}
	return count, nil
}

type mockMetricRepo struct {
	metrics []*health.Metric
}

func (m *mockMetricRepo) FindByIDForUser(_ context.Context, userID, id uuid.UUID) (*health.Metric, error) {
	for _, metric := range m.metrics {
		if metric.ID == id && metric.UserID == userID {
			return metric, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *mockMetricRepo) FindAllForUser(_ context.Context, userID uuid.UUID, _ shared.Filter) ([]health.Metric, error) {
	var out []health.Metric
	for _, metric := range m.metrics {
		if metric.UserID == userID {
			out = append(out, *metric)
		}
	}
	return out, nil
}

func (m *mockMetricRepo) FindByTypeInRange(_ context.Context, userID uuid.UUID, metricType health.MetricType, from, to time.Time) ([]health.Metric, error) {
	var out []health.Metric
	for _, metric := range m.metrics {
		if metric.UserID == userID && metric.MetricType == metricType && !metric.RecordedAt.Before(from) && metric.RecordedAt.Before(to) {
			out = append(out, *metric)
		}
	}
	return out, nil
}

func (m *mockMetricRepo) FindLatestByType(_ context.Context, userID uuid.UUID, metricType health.MetricType) (*health.Metric, error) {
	var latest *health.Metric
	for _, metric := range m.metrics {
		if metric.UserID == userID && metric.MetricType == metricType {
			if latest == nil || metric.RecordedAt.After(latest.RecordedAt) {
				latest = metric
			}
		}
	}
	if latest == nil {
		return nil, shared.ErrNotFound
	}
	return latest, nil
}

func (m *mockMetricRepo) Save(_ context.Context, metric *health.Metric) error {
	m.metrics = append(m.metrics, metric)
	return nil
}

func (m *mockMetricRepo) DeleteForUser(_ context.Context, userID, id uuid.UUID) error {
	for i, metric := range m.metrics {
		if metric.ID == id && metric.UserID == userID {
			m.metrics = append(m.metrics[:i], m.metrics[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

type mockExerciseRepo struct {
	exercises []*health.Exercise
}

func (m *mockExerciseRepo) FindByIDForUser(_ context.Context, userID, id uuid.UUID) (*health.Exercise, error) {
	for _, e := range m.exercises {
		if e.ID == id && e.UserID == userID {
			return e, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *mockExerciseRepo) FindAllForUser(_ context.Context, userID uuid.UUID, _ shared.Filter) ([]health.Exercise, error) {
	var out []health.Exercise
	for _, e := range m.exercises {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockExerciseRepo) FindInRange(_ context.Context, userID uuid.UUID, from, to time.Time) ([]health.Exercise, error) {
	var out []health.Exercise
	for _, e := range m.exercises {
		if e.UserID == userID && !e.PerformedAt.Before(from) && e.PerformedAt.Before(to) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockExerciseRepo) Save(_ context.Context, e *health.Exercise) error {
	m.exercises = append(m.exercises, e)
	return nil
}

func (m *mockExerciseRepo) DeleteForUser(_ context.Context, userID, id uuid.UUID) error {
	for i, e := range m.exercises {
		if e.ID == id && e.UserID == userID {
			m.exercises = append(m.exercises[:i], m.exercises[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

type mockNutritionRepo struct {
	entries []*health.NutritionEntry
}

func (m *mockNutritionRepo) FindByIDForUser(_ context.Context, userID, id uuid.UUID) (*health.NutritionEntry, error) {
	for _, e := range m.entries {
		if e.ID == id && e.UserID == userID {
			return e, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *mockNutritionRepo) FindAllForUser(_ context.Context, userID uuid.UUID, _ shared.Filter) ([]health.NutritionEntry, error) {
	var out []health.NutritionEntry
	for _, e := range m.entries {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockNutritionRepo) FindInRange(_ context.Context, userID uuid.UUID, from, to time.Time) ([]health.NutritionEntry, error) {
	var out []health.NutritionEntry
	for _, e := range m.entries {
		if e.UserID == userID && !e.EatenAt.Before(from) && e.EatenAt.Before(to) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockNutritionRepo) Save(_ context.Context, e *health.NutritionEntry) error {
	m.entries = append(m.entries, e)
	return nil
}

func (m *mockNutritionRepo) DeleteForUser(_ context.Context, userID, id uuid.UUID) error {
	for i, e := range m.entries {
		if e.ID == id && e.UserID == userID {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

type mockSleepRepo struct {
	records []*health.SleepRecord
}

func (m *mockSleepRepo) FindByIDForUser(_ context.Context, userID, id uuid.UUID) (*health.SleepRecord, error) {
	for _, r := range m.records {
		if r.ID == id && r.UserID == userID {
			return r, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *mockSleepRepo) FindAllForUser(_ context.Context, userID uuid.UUID, _ shared.Filter) ([]health.SleepRecord, error) {
	var out []health.SleepRecord
	for _, r := range m.records {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockSleepRepo) FindInRange(_ context.Context, userID uuid.UUID, from, to time.Time) ([]health.SleepRecord, error) {
	var out []health.SleepRecord
	for _, r := range m.records {
		if r.UserID == userID && !r.Bedtime.Before(from) && r.Bedtime.Before(to) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockSleepRepo) Save(_ context.Context, r *health.SleepRecord) error {
	m.records = append(m.records, r)
	return nil
}

func (m *mockSleepRepo) DeleteForUser(_ context.Context, userID, id uuid.UUID) error {
	for i, r := range m.records {
		if r.ID == id && r.UserID == userID {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

type mockSessionRepo struct {
	sessions []*worklife.WorkSession
}

func (m *mockSessionRepo) FindByIDForUser(_ context.Context, userID, id uuid.UUID) (*worklife.WorkSession, error) {
	for _, s := range m.sessions {
		if s.ID == id && s.UserID == userID {
			return s, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *mockSessionRepo) FindAllForUser(_ context.Context, userID uuid.UUID, _ shared.Filter) ([]worklife.WorkSession, error) {
	var out []worklife.WorkSession
	for _, s := range m.sessions {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockSessionRepo) FindInRange(_ context.Context, userID uuid.UUID, from, to time.Time) ([]worklife.WorkSession, error) {
	var out []worklife.WorkSession
	for _, s := range m.sessions {
		if s.UserID == userID && !s.StartedAt.Before(from) && s.StartedAt.Before(to) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockSessionRepo) Save(_ context.Context, s *worklife.WorkSession) error {
	m.sessions = append(m.sessions, s)
	return nil
}

func (m *mockSessionRepo) DeleteForUser(_ context.Context, userID, id uuid.UUID) error {
	for i, s := range m.sessions {
		if s.ID == id && s.UserID == userID {
			m.sessions = append(m.sessions[:i], m.sessions[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

type mockLifeEventRepo struct {
	events []*worklife.LifeEvent
}

func (m *mockLifeEventRepo) FindByIDForUser(_ context.Context, userID, id uuid.UUID) (*worklife.LifeEvent, error) {
	for _, e := range m.events {
		if e.ID == id && e.UserID == userID {
			return e, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *mockLifeEventRepo) FindAllForUser(_ context.Context, userID uuid.UUID, _ shared.Filter) ([]worklife.LifeEvent, error) {
	var out []worklife.LifeEvent
	for _, e := range m.events {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockLifeEventRepo) FindInRange(_ context.Context, userID uuid.UUID, from, to time.Time) ([]worklife.LifeEvent, error) {
	var out []worklife.LifeEvent
	for _, e := range m.events {
		if e.UserID == userID && !e.OccurredAt.Before(from) && e.OccurredAt.Before(to) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockLifeEventRepo) Save(_ context.Context, e *worklife.LifeEvent) error {
	m.events = append(m.events, e)
	return nil
}

func (m *mockLifeEventRepo) DeleteForUser(_ context.Context, userID, id uuid.UUID) error {
	for i, e := range m.events {
		if e.ID == id && e.UserID == userID {
			m.events = append(m.events[:i], m.events[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

type mockFocusDayRepo struct {
	days []*productivity.FocusDay
}

func (m *mockFocusDayRepo) FindByIDForUser(_ context.Context, userID, id uuid.UUID) (*productivity.FocusDay, error) {
	for _, d := range m.days {
		if d.ID == id && d.UserID == userID {
			return d, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *mockFocusDayRepo) FindAllForUser(_ context.Context, userID uuid.UUID, _ shared.Filter) ([]productivity.FocusDay, error) {
	var out []productivity.FocusDay
	for _, d := range m.days {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (m *mockFocusDayRepo) FindInRange(_ context.Context, userID uuid.UUID, from, to time.Time) ([]productivity.FocusDay, error) {
	var out []productivity.FocusDay
	for _, d := range m.days {
		if d.UserID == userID && !d.Day.Before(from) && d.Day.Before(to) {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (m *mockFocusDayRepo) FindByDay(_ context.Context, userID uuid.UUID, day time.Time) (*productivity.FocusDay, error) {
	day = day.Truncate(24 * time.Hour)
	for _, d := range m.days {
		if d.UserID == userID && d.Day.Equal(day) {
			return d, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *mockFocusDayRepo) Save(_ context.Context, d *productivity.FocusDay) error {
	for i, existing := range m.days {
		if existing.ID == d.ID {
			m.days[i] = d
			return nil
		}
	}
	m.days = append(m.days, d)
	return nil
}

func (m *mockFocusDayRepo) DeleteForUser(_ context.Context, userID, id uuid.UUID) error {
	for i, d := range m.days {
		if d.ID == id && d.UserID == userID {
			m.days = append(m.days[:i], m.days[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

type mockExportRecordRepo struct {
	records []*exportrecord.ExportRecord
}

func (m *mockExportRecordRepo) FindAllForUser(_ context.Context, userID uuid.UUID, _ shared.Filter) ([]exportrecord.ExportRecord, error) {
	var out []exportrecord.ExportRecord
	for _, r := range m.records {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockExportRecordRepo) Save(_ context.Context, r *exportrecord.ExportRecord) error {
	m.records = append(m.records, r)
	return nil
}
