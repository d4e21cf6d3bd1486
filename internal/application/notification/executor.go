package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appfinancial "github.com/wellbeing/backend/internal/application/financial"
	appwellbeing "github.com/wellbeing/backend/internal/application/wellbeing"
	appworklife "github.com/wellbeing/backend/internal/application/worklife"
	"github.com/wellbeing/backend/internal/domain/notification"
	"github.com/wellbeing/backend/internal/domain/preferences"
	"github.com/wellbeing/backend/internal/domain/shared"
	"github.com/wellbeing/backend/internal/infrastructure/scheduler"
)

const (
	budgetAlertThreshold = 90.0
	burnoutWindowDays    = 30
	burnoutRepeatDays    = 7
)

// DashboardSource provides the cross-pillar overview for briefings
type DashboardSource interface {
	Dashboard(ctx context.Context, userID uuid.UUID) (*appwellbeing.DashboardResponse, error)
}

// BudgetStatusSource provides per-category budget usage
type BudgetStatusSource interface {
	ListStatus(ctx context.Context, userID uuid.UUID, month string) ([]appfinancial.BudgetStatusResponse, error)
}

// BurnoutSource provides the burnout risk assessment
type BurnoutSource interface {
	BurnoutRisk(ctx context.Context, userID uuid.UUID, days int) (*appworklife.BurnoutRiskResponse, error)
}

// Executor runs scheduled notification jobs. Each kind de-duplicates
// against already written rows, so a job can be re-submitted safely.
type Executor struct {
	notifRepo notification.Repository
	prefRepo  preferences.PreferenceRepository
	dashboard DashboardSource
	budgets   BudgetStatusSource
	burnout   BurnoutSource
	logger    *zap.Logger
}

// NewExecutor creates a new notification job executor
func NewExecutor(
	notifRepo notification.Repository,
	prefRepo preferences.PreferenceRepository,
	dashboard DashboardSource,
	budgets BudgetStatusSource,
	burnout BurnoutSource,
	logger *zap.Logger,
) *Executor {
	return &Executor{
		notifRepo: notifRepo,
		prefRepo:  prefRepo,
		dashboard: dashboard,
		budgets:   budgets,
		burnout:   burnout,
		logger:    logger,
	}
}

// Execute implements scheduler.JobExecutor
func (e *Executor) Execute(ctx context.Context, job *scheduler.Job) error {
	pref, err := e.loadPreferences(ctx, job.UserID)
	if err != nil {
		return err
	}
	if !pref.NotificationsEnabled {
		return nil
	}

	switch job.Kind {
	case scheduler.JobKindDailyBriefing:
		return e.dailyBriefing(ctx, job.UserID, pref)
	case scheduler.JobKindBudgetAlert:
		if !pref.BudgetAlertsEnabled {
			return nil
		}
		return e.budgetAlert(ctx, job.UserID, pref)
	case scheduler.JobKindBurnoutCheck:
		return e.burnoutCheck(ctx, job.UserID)
	default:
		return fmt.Errorf("unknown job kind %q", job.Kind)
	}
}

func (e *Executor) loadPreferences(ctx context.Context, userID uuid.UUID) (*preferences.Preference, error) {
	pref, err := e.prefRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return preferences.NewPreference(userID), nil
		}
		return nil, err
	}
	return pref, nil
}

// startOfLocalDay returns midnight of the current day in the user's
// preferred timezone, falling back to UTC. The cron trigger marks daily
// jobs per user-local day, so the de-dup window has to match.
func startOfLocalDay(now time.Time, timezone string) time.Time {
	loc := time.UTC
	if l, err := time.LoadLocation(timezone); err == nil {
		loc = l
	}
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// dailyBriefing writes one briefing per calendar day summarizing the
// pillar scores
func (e *Executor) dailyBriefing(ctx context.Context, userID uuid.UUID, pref *preferences.Preference) error {
	startOfDay := startOfLocalDay(time.Now(), pref.Timezone)
	exists, err := e.notifRepo.ExistsSince(ctx, userID, notification.KindBriefing, startOfDay)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	overview, err := e.dashboard.Dashboard(ctx, userID)
	if err != nil {
		return err
	}

	var parts []string
	appendPillar := func(name string, p appwellbeing.PillarScore) {
		if p.Available {
			parts = append(parts, fmt.Sprintf("%s %.0f", name, p.Score))
		}
	}
	appendPillar("Financial", overview.Financial)
	appendPillar("Health", overview.Health)
	appendPillar("Work-life", overview.Worklife)
	appendPillar("Productivity", overview.Productivity)

	body := "No tracked data yet. Log a transaction, workout or work session to get started."
	if len(parts) > 0 {
		body = fmt.Sprintf("Overall wellbeing %.0f/100. %s.", overview.OverallScore, strings.Join(parts, ", "))
	}

	return e.write(ctx, userID, notification.KindBriefing, "Your daily wellbeing briefing", body)
}

// budgetAlert writes at most one alert per day listing categories that are
// over budget or close to their limit
func (e *Executor) budgetAlert(ctx context.Context, userID uuid.UUID, pref *preferences.Preference) error {
	startOfDay := startOfLocalDay(time.Now(), pref.Timezone)
	exists, err := e.notifRepo.ExistsSince(ctx, userID, notification.KindBudgetAlert, startOfDay)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	month := time.Now().Format("2006-01")
	statuses, err := e.budgets.ListStatus(ctx, userID, month)
	if err != nil {
		return err
	}

	var over, near []string
	for _, status := range statuses {
		switch {
		case status.OverBudget:
			over = append(over, status.Category)
		case status.UsedPercent >= budgetAlertThreshold:
			near = append(near, status.Category)
		}
	}
	if len(over) == 0 && len(near) == 0 {
		return nil
	}

	var sb strings.Builder
	if len(over) > 0 {
		sb.WriteString(fmt.Sprintf("Over budget: %s.", strings.Join(over, ", ")))
	}
	if len(near) > 0 {
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("Close to the limit: %s.", strings.Join(near, ", ")))
	}

	return e.write(ctx, userID, notification.KindBudgetAlert, "Budget alert", sb.String())
}

// burnoutCheck writes a warning when risk is high, repeated at most once
// a week
func (e *Executor) burnoutCheck(ctx context.Context, userID uuid.UUID) error {
	risk, err := e.burnout.BurnoutRisk(ctx, userID, burnoutWindowDays)
	if err != nil {
		return err
	}
	if risk.Level != "high" && risk.Level != "critical" {
		return nil
	}

	since := time.Now().AddDate(0, 0, -burnoutRepeatDays)
	exists, err := e.notifRepo.ExistsSince(ctx, userID, notification.KindBurnoutWarning, since)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	body := fmt.Sprintf("Your burnout risk is %s (%.0f/100).", risk.Level, risk.Score)
	if len(risk.Recommendations) > 0 {
		body = fmt.Sprintf("%s %s", body, risk.Recommendations[0])
	}
	return e.write(ctx, userID, notification.KindBurnoutWarning, "Burnout risk warning", body)
}

func (e *Executor) write(ctx context.Context, userID uuid.UUID, kind notification.Kind, title, body string) error {
	n, err := notification.New(userID, kind, title, body)
	if err != nil {
		return err
	}
	if err := e.notifRepo.Save(ctx, n); err != nil {
		return err
	}
	e.logger.Info("notification written",
		zap.String("user_id", userID.String()),
		zap.String("kind", string(kind)))
	return nil
}
