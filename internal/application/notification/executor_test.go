package notification

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appfinancial "github.com/wellbeing/backend/internal/application/financial"
	appwellbeing "github.com/wellbeing/backend/internal/application/wellbeing"
	appworklife "github.com/wellbeing/backend/internal/application/worklife"
	"github.com/wellbeing/backend/internal/domain/notification"
	"github.com/wellbeing/backend/internal/domain/preferences"
	"github.com/wellbeing/backend/internal/domain/shared"
	"github.com/wellbeing/backend/internal/infrastructure/scheduler"
)

type mockNotificationRepo struct {
	items map[uuid.UUID]*notification.Notification
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{items: make(map[uuid.UUID]*notification.Notification)}
}

func (m *mockNotificationRepo) FindByIDForUser(_ context.Context, userID, id uuid.UUID) (*notification.Notification, error) {
	if n, ok := m.items[id]; ok && n.UserID == userID {
		return n, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockNotificationRepo) FindAllForUser(_ context.Context, userID uuid.UUID, _ shared.Filter) ([]notification.Notification, error) {
	var out []notification.Notification
	for _, n := range m.items {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (m *mockNotificationRepo) FindUnread(_ context.Context, userID uuid.UUID) ([]notification.Notification, error) {
	var out []notification.Notification
	for _, n := range m.items {
		if n.UserID == userID && !n.Read {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (m *mockNotificationRepo) ExistsSince(_ context.Context, userID uuid.UUID, kind notification.Kind, since time.Time) (bool, error) {
	for _, n := range m.items {
		if n.UserID == userID && n.Kind == kind && !n.CreatedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockNotificationRepo) Save(_ context.Context, n *notification.Notification) error {
	m.items[n.ID] = n
	return nil
}

func (m *mockNotificationRepo) DeleteForUser(_ context.Context, userID, id uuid.UUID) error {
	if n, ok := m.items[id]; ok && n.UserID == userID {
		delete(m.items, id)
		return nil
	}
	return shared.ErrNotFound
}

func (m *mockNotificationRepo) byKind(kind notification.Kind) []*notification.Notification {
	var out []*notification.Notification
	for _, n := range m.items {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

type mockPreferenceRepo struct {
	prefs map[uuid.UUID]*preferences.Preference
}

func newMockPreferenceRepo() *mockPreferenceRepo {
	return &mockPreferenceRepo{prefs: make(map[uuid.UUID]*preferences.Preference)}
}

func (m *mockPreferenceRepo) FindByUser(_ context.Context, userID uuid.UUID) (*preferences.Preference, error) {
	if pref, ok := m.prefs[userID]; ok {
		return pref, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockPreferenceRepo) Save(_ context.Context, pref *preferences.Preference) error {
	m.prefs[pref.UserID] = pref
	return nil
}

func (m *mockPreferenceRepo) FindAllWithNotifications(_ context.Context) ([]*preferences.Preference, error) {
	var out []*preferences.Preference
	for _, pref := range m.prefs {
		if pref.NotificationsEnabled {
			out = append(out, pref)
		}
	}
	return out, nil
}

type stubDashboardSource struct {
	resp appwellbeing.DashboardResponse
}

func (s *stubDashboardSource) Dashboard(context.Context, uuid.UUID) (*appwellbeing.DashboardResponse, error) {
	resp := s.resp
	return &resp, nil
}

type stubBudgetSource struct {
	statuses []appfinancial.BudgetStatusResponse
}

func (s *stubBudgetSource) ListStatus(context.Context, uuid.UUID, string) ([]appfinancial.BudgetStatusResponse, error) {
	return s.statuses, nil
}

type stubBurnoutSource struct {
	resp appworklife.BurnoutRiskResponse
}

func (s *stubBurnoutSource) BurnoutRisk(context.Context, uuid.UUID, int) (*appworklife.BurnoutRiskResponse, error) {
	resp := s.resp
	return &resp, nil
}

type executorFixture struct {
	notifRepo *mockNotificationRepo
	prefRepo  *mockPreferenceRepo
	dashboard *stubDashboardSource
	budgets   *stubBudgetSource
	burnout   *stubBurnoutSource
	executor  *Executor
	userID    uuid.UUID
}

func newExecutorFixture() *executorFixture {
	f := &executorFixture{
		notifRepo: newMockNotificationRepo(),
		prefRepo:  newMockPreferenceRepo(),
		dashboard: &stubDashboardSource{
			resp: appwellbeing.DashboardResponse{
				Financial:    appwellbeing.PillarScore{Score: 72, Available: true},
				Health:       appwellbeing.PillarScore{Score: 80, Available: true},
				OverallScore: 76,
			},
		},
		budgets: &stubBudgetSource{},
		burnout: &stubBurnoutSource{resp: appworklife.BurnoutRiskResponse{Score: 10, Level: "low"}},
		userID:  uuid.New(),
	}
	f.executor = NewExecutor(f.notifRepo, f.prefRepo, f.dashboard, f.budgets, f.burnout, zap.NewNop())
	return f
}

func (f *executorFixture) run(t *testing.T, kind scheduler.JobKind) {
	t.Helper()
	job := scheduler.NewJob(f.userID, kind, 0)
	require.NoError(t, f.executor.Execute(context.Background(), job))
}

func TestDailyBriefingWritesOncePerDay(t *testing.T) {
	f := newExecutorFixture()

	f.run(t, scheduler.JobKindDailyBriefing)
	f.run(t, scheduler.JobKindDailyBriefing)

	briefings := f.notifRepo.byKind(notification.KindBriefing)
	require.Len(t, briefings, 1)
	assert.Contains(t, briefings[0].Body, "Overall wellbeing 76/100")
	assert.Contains(t, briefings[0].Body, "Financial 72")
	assert.NotContains(t, briefings[0].Body, "Productivity")
}

func TestDailyBriefingWithNoData(t *testing.T) {
	f := newExecutorFixture()
	f.dashboard.resp = appwellbeing.DashboardResponse{}

	f.run(t, scheduler.JobKindDailyBriefing)

	briefings := f.notifRepo.byKind(notification.KindBriefing)
	require.Len(t, briefings, 1)
	assert.Contains(t, briefings[0].Body, "No tracked data yet")
}

func TestStartOfLocalDay(t *testing.T) {
	now := time.Date(2026, 8, 29, 2, 30, 0, 0, time.UTC)

	t.Run("uses the preference timezone", func(t *testing.T) {
		ny, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)

		start := startOfLocalDay(now, "America/New_York")
		assert.Equal(t, "2026-08-28", start.Format("2006-01-02"))
		assert.Equal(t, ny.String(), start.Location().String())
		assert.Zero(t, start.Hour())
	})

	t.Run("falls back to UTC for an unknown zone", func(t *testing.T) {
		start := startOfLocalDay(now, "Mars/Olympus_Mons")
		assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), start)
	})
}

func TestDailyBriefingDedupUsesUserLocalDay(t *testing.T) {
	f := newExecutorFixture()
	pref := preferences.NewPreference(f.userID)
	pref.Timezone = "America/New_York"
	require.NoError(t, f.prefRepo.Save(context.Background(), pref))

	// A briefing from the previous user-local day must not suppress
	// today's, even when it falls inside the current UTC day.
	yesterday, err := notification.New(f.userID, notification.KindBriefing, "Your daily wellbeing briefing", "old")
	require.NoError(t, err)
	yesterday.CreatedAt = startOfLocalDay(time.Now(), pref.Timezone).Add(-time.Minute)
	require.NoError(t, f.notifRepo.Save(context.Background(), yesterday))

	f.run(t, scheduler.JobKindDailyBriefing)

	briefings := f.notifRepo.byKind(notification.KindBriefing)
	require.Len(t, briefings, 2)

	// One from today still blocks a repeat
	f.run(t, scheduler.JobKindDailyBriefing)
	assert.Len(t, f.notifRepo.byKind(notification.KindBriefing), 2)
}

func TestBudgetAlert(t *testing.T) {
	f := newExecutorFixture()
	f.budgets.statuses = []appfinancial.BudgetStatusResponse{
		{Category: "groceries", MonthlyLimit: decimal.NewFromInt(400), UsedPercent: 110, OverBudget: true},
		{Category: "dining", MonthlyLimit: decimal.NewFromInt(200), UsedPercent: 92},
		{Category: "transport", MonthlyLimit: decimal.NewFromInt(100), UsedPercent: 30},
	}

	f.run(t, scheduler.JobKindBudgetAlert)

	alerts := f.notifRepo.byKind(notification.KindBudgetAlert)
	require.Len(t, alerts, 1)
	assert.Contains(t, alerts[0].Body, "Over budget: groceries")
	assert.Contains(t, alerts[0].Body, "Close to the limit: dining")
	assert.NotContains(t, alerts[0].Body, "transport")
}

func TestBudgetAlertSkipsHealthyBudgets(t *testing.T) {
	f := newExecutorFixture()
	f.budgets.statuses = []appfinancial.BudgetStatusResponse{
		{Category: "groceries", UsedPercent: 50},
	}

	f.run(t, scheduler.JobKindBudgetAlert)
	assert.Empty(t, f.notifRepo.byKind(notification.KindBudgetAlert))
}

func TestBudgetAlertHonorsPreference(t *testing.T) {
	f := newExecutorFixture()
	pref := preferences.NewPreference(f.userID)
	pref.BudgetAlertsEnabled = false
	require.NoError(t, f.prefRepo.Save(context.Background(), pref))
	f.budgets.statuses = []appfinancial.BudgetStatusResponse{
		{Category: "groceries", UsedPercent: 110, OverBudget: true},
	}

	f.run(t, scheduler.JobKindBudgetAlert)
	assert.Empty(t, f.notifRepo.byKind(notification.KindBudgetAlert))
}

func TestBurnoutCheck(t *testing.T) {
	f := newExecutorFixture()

	f.run(t, scheduler.JobKindBurnoutCheck)
	assert.Empty(t, f.notifRepo.byKind(notification.KindBurnoutWarning))

	f.burnout.resp = appworklife.BurnoutRiskResponse{
		Score: 75, Level: "critical",
		Recommendations: []string{"Reduce working hours to 40-45 hours per week"},
	}
	f.run(t, scheduler.JobKindBurnoutCheck)
	f.run(t, scheduler.JobKindBurnoutCheck)

	warnings := f.notifRepo.byKind(notification.KindBurnoutWarning)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Body, "critical (75/100)")
	assert.Contains(t, warnings[0].Body, "Reduce working hours")
}

func TestExecutorSkipsWhenNotificationsDisabled(t *testing.T) {
	f := newExecutorFixture()
	pref := preferences.NewPreference(f.userID)
	pref.NotificationsEnabled = false
	require.NoError(t, f.prefRepo.Save(context.Background(), pref))

	f.run(t, scheduler.JobKindDailyBriefing)
	assert.Empty(t, f.notifRepo.items)
}

func TestInboxMarkReadAndDelete(t *testing.T) {
	repo := newMockNotificationRepo()
	svc := NewService(repo)
	userID := uuid.New()

	n, err := notification.New(userID, notification.KindBriefing, "Your daily wellbeing briefing", "body")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), n))

	unread, err := svc.Unread(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, unread, 1)

	resp, err := svc.MarkRead(context.Background(), userID, n.ID)
	require.NoError(t, err)
	assert.True(t, resp.Read)

	unread, err = svc.Unread(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, unread)

	// another user cannot touch the row
	_, err = svc.MarkRead(context.Background(), uuid.New(), n.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	require.NoError(t, svc.Delete(context.Background(), userID, n.ID))
	assert.Empty(t, repo.items)
}
