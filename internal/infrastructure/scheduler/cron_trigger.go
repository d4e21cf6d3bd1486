package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/wellbeing/backend/internal/domain/preferences"
	"go.uber.org/zap"
)

// CronTriggerConfig holds configuration for the notification cron trigger
type CronTriggerConfig struct {
	// Enabled indicates if the trigger is active
	Enabled bool
	// TickInterval is how often the trigger evaluates user schedules
	TickInterval time.Duration
}

// DefaultCronTriggerConfig returns default trigger configuration
func DefaultCronTriggerConfig() CronTriggerConfig {
	return CronTriggerConfig{
		Enabled:      true,
		TickInterval: time.Minute,
	}
}

// CronTrigger evaluates user notification preferences on a fixed tick and
// submits jobs to the scheduler. The daily briefing and burnout check fire
// once per day at each user's configured briefing hour, in the user's
// timezone. Budget alerts fire at the top of every hour for users that
// opted in. The job executor de-duplicates against already sent
// notifications, so re-triggering after a restart is safe.
type CronTrigger struct {
	config    CronTriggerConfig
	scheduler *Scheduler
	prefRepo  preferences.PreferenceRepository
	logger    *zap.Logger

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool

	// day keyed markers so each user's daily jobs fire once per day
	dailyFired map[string]string
	lastHour   int
}

// NewCronTrigger creates a new notification cron trigger
func NewCronTrigger(
	config CronTriggerConfig,
	sched *Scheduler,
	prefRepo preferences.PreferenceRepository,
	logger *zap.Logger,
) *CronTrigger {
	if config.TickInterval <= 0 {
		config.TickInterval = time.Minute
	}
	return &CronTrigger{
		config:     config,
		scheduler:  sched,
		prefRepo:   prefRepo,
		logger:     logger,
		dailyFired: make(map[string]string),
		lastHour:   -1,
	}
}

// Start starts the trigger loop
func (c *CronTrigger) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.isRunning {
		c.mu.Unlock()
		return nil
	}
	c.isRunning = true
	c.mu.Unlock()

	if !c.config.Enabled {
		c.logger.Info("Notification cron trigger disabled")
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.wg.Add(1)
	go c.runLoop(ctx)

	c.logger.Info("Notification cron trigger started",
		zap.Duration("tick_interval", c.config.TickInterval),
	)
	return nil
}

// Stop stops the trigger loop
func (c *CronTrigger) Stop(ctx context.Context) error {
	c.mu.Lock()
	if !c.isRunning {
		c.mu.Unlock()
		return nil
	}
	c.isRunning = false
	c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		c.logger.Info("Notification cron trigger stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *CronTrigger) runLoop(ctx context.Context) {
	defer c.wg.Done()

	ticker := time.NewTicker(c.config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.checkAndTrigger(ctx)
		}
	}
}

// checkAndTrigger evaluates all opted-in users once
func (c *CronTrigger) checkAndTrigger(ctx context.Context) {
	prefs, err := c.prefRepo.FindAllWithNotifications(ctx)
	if err != nil {
		c.logger.Error("Failed to load notification preferences", zap.Error(err))
		return
	}

	now := time.Now()
	hourlyDue := c.markHour(now.Hour())

	for _, pref := range prefs {
		local := now
		if loc, err := time.LoadLocation(pref.Timezone); err == nil {
			local = now.In(loc)
		}

		if local.Hour() >= pref.DailyBriefingHour && c.markDaily(pref.UserID.String(), local) {
			c.submit(pref, JobKindDailyBriefing)
			c.submit(pref, JobKindBurnoutCheck)
		}

		if hourlyDue && pref.BudgetAlertsEnabled {
			c.submit(pref, JobKindBudgetAlert)
		}
	}
}

// markHour records the current hour and reports whether it changed
func (c *CronTrigger) markHour(hour int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastHour == hour {
		return false
	}
	c.lastHour = hour
	return true
}

// markDaily records that a user's daily jobs fired for the given local day
func (c *CronTrigger) markDaily(userID string, local time.Time) bool {
	day := local.Format("2006-01-02")
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dailyFired[userID] == day {
		return false
	}
	c.dailyFired[userID] = day
	return true
}

func (c *CronTrigger) submit(pref *preferences.Preference, kind JobKind) {
	if err := c.scheduler.ScheduleForUser(pref.UserID, kind); err != nil {
		c.logger.Warn("Failed to schedule notification job",
			zap.String("user_id", pref.UserID.String()),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
	}
}
