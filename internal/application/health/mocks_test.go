package health

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wellbeing/backend/internal/domain/health"
	"github.com/wellbeing/backend/internal/domain/identity"
	"github.com/wellbeing/backend/internal/domain/shared"
)

type mockMetricRepo struct {
	metrics map[uuid.UUID]*health.Metric
}

func newMockMetricRepo() *mockMetricRepo {
	return &mockMetricRepo{metrics: make(map[uuid.UUID]*health.Metric)}
}

func (m *mockMetricRepo) FindByIDForUser(_ context.Context, userID, id uuid.UUID) (*health.Metric, error) {
	if mt, ok := m.metrics[id]; ok && mt.UserID == userID {
		return mt, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockMetricRepo) FindAllForUser(_ context.Context, userID uuid.UUID, _ shared.Filter) ([]health.Metric, error) {
	var out []health.Metric
	for _, mt := range m.metrics {
		if mt.UserID == userID {
			out = append(out, *mt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecordedAt.After(out[j].RecordedAt) })
	return out, nil
}

func (m *mockMetricRepo) FindByTypeInRange(_ context.Context, userID uuid.UUID, metricType health.MetricType, from, to time.Time) ([]health.Metric, error) {
	var out []health.Metric
	for _, mt := range m.metrics {
		if mt.UserID == userID && mt.MetricType == metricType && !mt.RecordedAt.Before(from) && mt.RecordedAt.Before(to) {
			out = append(out, *mt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecordedAt.Before(out[j].RecordedAt) })
	return out, nil
}

func (m *mockMetricRepo) FindLatestByType(_ context.Context, userID uuid.UUID, metricType health.MetricType) (*health.Metric, error) {
	var latest *health.Metric
	for _, mt := range m.metrics {
		if mt.UserID == userID && mt.MetricType == metricType {
			if latest == nil || mt.RecordedAt.After(latest.RecordedAt) {
				latest = mt
			}
		}
	}
	if latest == nil {
		return nil, shared.ErrNotFound
	}
	return latest, nil
}

func (m *mockMetricRepo) Save(_ context.Context, metric *health.Metric) error {
	m.metrics[metric.ID] = metric
	return nil
}

func (m *mockMetricRepo) DeleteForUser(_ context.Context, userID, id uuid.UUID) error {
	if mt, ok := m.metrics[id]; ok && mt.UserID == userID {
		delete(m.metrics, id)
		return nil
	}
	return shared.ErrNotFound
}

type mockExerciseRepo struct {
	exercises map[uuid.UUID]*health.Exercise
}

func newMockExerciseRepo() *mockExerciseRepo {
	return &mockExerciseRepo{exercises: make(map[uuid.UUID]*health.Exercise)}
}

func (m *mockExerciseRepo) FindByIDForUser(_ context.Context, userID, id uuid.UUID) (*health.Exercise, error) {
	if e, ok := m.exercises[id]; ok && e.UserID == userID {
		return e, nil
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
	sort.Slice(out, func(i, j int) bool { return out[i].PerformedAt.After(out[j].PerformedAt) })
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

func (m *mockExerciseRepo) Save(_ context.Context, exercise *health.Exercise) error {
	m.exercises[exercise.ID] = exercise
	return nil
}

func (m *mockExerciseRepo) DeleteForUser(_ context.Context, userID, id uuid.UUID) error {
	if e, ok := m.exercises[id]; ok && e.UserID == userID {
		delete(m.exercises, id)
		return nil
	}
	return shared.ErrNotFound
}

type mockNutritionRepo struct {
	entries map[uuid.UUID]*health.NutritionEntry
}

func newMockNutritionRepo() *mockNutritionRepo {
	return &mockNutritionRepo{entries: make(map[uuid.UUID]*health.NutritionEntry)}
}

func (m *mockNutritionRepo) FindByIDForUser(_ context.Context, userID, id uuid.UUID) (*health.NutritionEntry, error) {
	if n, ok := m.entries[id]; ok && n.UserID == userID {
		return n, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockNutritionRepo) FindAllForUser(_ context.Context, userID uuid.UUID, _ shared.Filter) ([]health.NutritionEntry, error) {
	var out []health.NutritionEntry
	for _, n := range m.entries {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EatenAt.After(out[j].EatenAt) })
	return out, nil
}

func (m *mockNutritionRepo) FindInRange(_ context.Context, userID uuid.UUID, from, to time.Time) ([]health.NutritionEntry, error) {
	var out []health.NutritionEntry
	for _, n := range m.entries {
		if n.UserID == userID && !n.EatenAt.Before(from) && n.EatenAt.Before(to) {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (m *mockNutritionRepo) Save(_ context.Context, entry *health.NutritionEntry) error {
	m.entries[entry.ID] = entry
	return nil
}

func (m *mockNutritionRepo) DeleteForUser(_ context.Context, userID, id uuid.UUID) error {
	if n, ok := m.entries[id]; ok && n.UserID == userID {
		delete(m.entries, id)
		return nil
	}
	return shared.ErrNotFound
}

type mockSleepRepo struct {
	records map[uuid.UUID]*health.SleepRecord
}

func newMockSleepRepo() *mockSleepRepo {
	return &mockSleepRepo{records: make(map[uuid.UUID]*health.SleepRecord)}
}

func (m *mockSleepRepo) FindByIDForUser(_ context.Context, userID, id uuid.UUID) (*health.SleepRecord, error) {
	if r, ok := m.records[id]; ok && r.UserID == userID {
		return r, nil
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
	sort.Slice(out, func(i, j int) bool { return out[i].Bedtime.After(out[j].Bedtime) })
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

func (m *mockSleepRepo) Save(_ context.Context, record *health.SleepRecord) error {
	m.records[record.ID] = record
	return nil
}

func (m *mockSleepRepo) DeleteForUser(_ context.Context, userID, id uuid.UUID) error {
	if r, ok := m.records[id]; ok && r.UserID == userID {
		delete(m.records, id)
		return nil
	}
	return shared.ErrNotFound
}

type mockSymptomRepo struct {
	symptoms map[uuid.UUID]*health.Symptom
}

func newMockSymptomRepo() *mockSymptomRepo {
	return &mockSymptomRepo{symptoms: make(map[uuid.UUID]*health.Symptom)}
}

func (m *mockSymptomRepo) FindByIDForUser(_ context.Context, userID, id uuid.UUID) (*health.Symptom, error) {
	if s, ok := m.symptoms[id]; ok && s.UserID == userID {
		return s, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockSymptomRepo) FindAllForUser(_ context.Context, userID uuid.UUID, filter shared.Filter) ([]health.Symptom, error) {
	var out []health.Symptom
	for _, s := range m.symptoms {
		if s.UserID != userID {
			continue
		}
		if active, ok := filter.Filters["active"]; ok && active == true && !s.Active() {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	return out, nil
}

func (m *mockSymptomRepo) Save(_ context.Context, symptom *health.Symptom) error {
	m.symptoms[symptom.ID] = symptom
	return nil
}

func (m *mockSymptomRepo) DeleteForUser(_ context.Context, userID, id uuid.UUID) error {
	if s, ok := m.symptoms[id]; ok && s.UserID == userID {
		delete(m.symptoms, id)
		return nil
	}
	return shared.ErrNotFound
}

type mockUserRepo struct {
	users map[uuid.UUID]*identity.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*identity.User)}
}

func (m *mockUserRepo) FindByID(_ context.Context, id uuid.UUID) (*identity.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*identity.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) Save(_ context.Context, user *identity.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.users, id)
	return nil
}
