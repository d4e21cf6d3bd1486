package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JobStatus represents the status of a scheduled job
type JobStatus string

const (
	JobStatusPending JobStatus = "PENDING"
	JobStatusRunning JobStatus = "RUNNING"
	JobStatusSuccess JobStatus = "SUCCESS"
	JobStatusFailed  JobStatus = "FAILED"
)

// JobKind represents the kind of notification job to run
type JobKind string

const (
	JobKindDailyBriefing JobKind = "DAILY_BRIEFING"
	JobKindBudgetAlert   JobKind = "BUDGET_ALERT"
	JobKindBurnoutCheck  JobKind = "BURNOUT_CHECK"
)

// AllJobKinds returns all job kinds evaluated for a user on each tick
func AllJobKinds() []JobKind {
	return []JobKind{JobKindDailyBriefing, JobKindBudgetAlert, JobKindBurnoutCheck}
}

// Job is one per-user notification run. A job moves PENDING -> RUNNING and
// then to SUCCESS or FAILED; failed jobs may re-enter PENDING via ScheduleRetry.
type Job struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Kind        JobKind
	Status      JobStatus
	Error       string
	StartedAt   *time.Time
	CompletedAt *time.Time
	RetryCount  int
	MaxRetries  int
	NextRetryAt *time.Time
}

// NewJob creates a pending job for the given user and kind
func NewJob(userID uuid.UUID, kind JobKind, maxRetries int) *Job {
	return &Job{
		ID:         uuid.New(),
		UserID:     userID,
		Kind:       kind,
		Status:     JobStatusPending,
		MaxRetries: maxRetries,
	}
}

// Start marks the job as running
func (j *Job) Start() {
	now := time.Now()
	j.Status = JobStatusRunning
	j.StartedAt = &now
	j.Error = ""
}

// Complete marks the job as successful
func (j *Job) Complete() {
	now := time.Now()
	j.Status = JobStatusSuccess
	j.CompletedAt = &now
}

// Fail marks the job as failed with the given error message
func (j *Job) Fail(err string) {
	now := time.Now()
	j.Status = JobStatusFailed
	j.CompletedAt = &now
	j.Error = err
}

// ShouldRetry reports whether the job has retry budget left
func (j *Job) ShouldRetry() bool {
	return j.Status == JobStatusFailed && j.RetryCount < j.MaxRetries
}

// ScheduleRetry moves a failed job back to pending after the given delay
func (j *Job) ScheduleRetry(delay time.Duration) {
	next := time.Now().Add(delay)
	j.RetryCount++
	j.Status = JobStatusPending
	j.NextRetryAt = &next
	j.Error = ""
}

// JobExecutor runs a single notification job
type JobExecutor interface {
	Execute(ctx context.Context, job *Job) error
}

// Config holds scheduler configuration
type Config struct {
	Enabled           bool
	MaxConcurrentJobs int
	JobTimeout        time.Duration
	RetryAttempts     int
	RetryDelay        time.Duration
}

// DefaultConfig returns default scheduler configuration
func DefaultConfig() Config {
	return Config{
		Enabled:           true,
		MaxConcurrentJobs: 3,
		JobTimeout:        5 * time.Minute,
		RetryAttempts:     3,
		RetryDelay:        time.Minute,
	}
}

// Scheduler fans submitted jobs out to a fixed pool of workers
type Scheduler struct {
	config   Config
	executor JobExecutor
	logger   *zap.Logger

	jobs    chan *Job
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

// NewScheduler creates a scheduler; call Start before submitting jobs
func NewScheduler(config Config, executor JobExecutor, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		config:   config,
		executor: executor,
		logger:   logger,
		jobs:     make(chan *Job, 100),
	}
}

// Start launches the worker pool. Starting an already-running scheduler
// is a no-op.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}
	s.running = true

	ctx, s.cancel = context.WithCancel(ctx)
	for i := 0; i < s.config.MaxConcurrentJobs; i++ {
		s.wg.Add(1)
		go func(id int) {
			defer s.wg.Done()
			s.workerLoop(ctx, id)
		}(i)
	}

	s.logger.Info("Notification scheduler started",
		zap.Int("workers", s.config.MaxConcurrentJobs),
		zap.Duration("job_timeout", s.config.JobTimeout),
	)
	return nil
}

// Stop shuts down the worker pool, waiting for in-flight jobs until ctx expires
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	close(s.jobs)

	drained := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(drained)
	}()

	select {
	case <-drained:
		s.logger.Info("Notification scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Notification scheduler stop timed out")
		return ctx.Err()
	}
}

// SubmitJob enqueues a job without blocking. It returns
// ErrSchedulerNotRunning before Start and ErrJobQueueFull when
// the queue is at capacity.
func (s *Scheduler) SubmitJob(job *Job) error {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()
	if !running {
		return ErrSchedulerNotRunning
	}

	select {
	case s.jobs <- job:
	default:
		return ErrJobQueueFull
	}

	s.logger.Debug("Job submitted",
		zap.String("job_id", job.ID.String()),
		zap.String("kind", string(job.Kind)),
	)
	return nil
}

// ScheduleForUser submits a job of the given kind for a user
func (s *Scheduler) ScheduleForUser(userID uuid.UUID, kind JobKind) error {
	return s.SubmitJob(NewJob(userID, kind, s.config.RetryAttempts))
}

func (s *Scheduler) workerLoop(ctx context.Context, workerID int) {
	s.logger.Debug("Worker started", zap.Int("worker_id", workerID))

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("Worker stopping", zap.Int("worker_id", workerID))
			return
		case job, ok := <-s.jobs:
			if !ok {
				s.logger.Debug("Job channel closed", zap.Int("worker_id", workerID))
				return
			}
			s.runJob(ctx, job, workerID)
		}
	}
}

func (s *Scheduler) runJob(ctx context.Context, job *Job, workerID int) {
	// jobs still inside their retry delay go back to the queue
	if job.NextRetryAt != nil && time.Now().Before(*job.NextRetryAt) {
		s.requeue(job)
		return
	}

	job.Start()
	s.logger.Info("Processing job",
		zap.Int("worker_id", workerID),
		zap.String("job_id", job.ID.String()),
		zap.String("kind", string(job.Kind)),
		zap.String("user_id", job.UserID.String()),
	)

	jobCtx, cancel := context.WithTimeout(ctx, s.config.JobTimeout)
	err := s.executor.Execute(jobCtx, job)
	cancel()

	if err == nil {
		job.Complete()
		s.logger.Info("Job completed",
			zap.Int("worker_id", workerID),
			zap.String("job_id", job.ID.String()),
			zap.String("kind", string(job.Kind)),
		)
		return
	}

	job.Fail(err.Error())
	s.logger.Error("Job failed",
		zap.Int("worker_id", workerID),
		zap.String("job_id", job.ID.String()),
		zap.String("kind", string(job.Kind)),
		zap.Error(err),
	)

	if job.ShouldRetry() {
		job.ScheduleRetry(s.config.RetryDelay)
		s.logger.Info("Job scheduled for retry",
			zap.String("job_id", job.ID.String()),
			zap.Int("retry_count", job.RetryCount),
			zap.Int("max_retries", job.MaxRetries),
		)
		s.requeue(job)
	}
}

func (s *Scheduler) requeue(job *Job) {
	select {
	case s.jobs <- job:
	default:
		s.logger.Warn("Failed to re-queue job for retry",
			zap.String("job_id", job.ID.String()),
		)
	}
}
