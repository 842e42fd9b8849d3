package eventqueue

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/Black-And-White-Club/nascon/app/shared/attr"
	"github.com/Black-And-White-Club/nascon/app/shared/eventbus"
	"github.com/Black-And-White-Club/nascon/app/shared/observability"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/uptrace/bun"
)

const (
	queueName   = "event"
	serviceName = "river"
)

// Service schedules event reminder jobs with River.
type Service struct {
	client  *river.Client[pgx.Tx]
	pool    *pgxpool.Pool
	logger  *slog.Logger
	db      *bun.DB
	metrics observability.OperationMetrics
}

// NewService connects River to the database, migrates its tables and
// registers the reminder worker.
func NewService(ctx context.Context, bunDB *bun.DB, logger *slog.Logger, dsn string, metrics observability.OperationMetrics, publisher eventbus.Publisher) (*Service, error) {
	ctxLogger := logger.With(
		attr.String("component", "river_queue"),
	)

	start := time.Now()
	metrics.RecordOperationAttempt(ctx, "initialize_service", serviceName)

	fail := func(msg string, err error) (*Service, error) {
		ctxLogger.ErrorContext(ctx, msg, attr.Error(err))
		metrics.RecordOperationFailure(ctx, "initialize_service", serviceName)
		return nil, fmt.Errorf("%s: %w", msg, err)
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return fail("failed to parse DSN", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fail("failed to create pgx pool", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fail("failed to ping database", err)
	}

	migrator, err := rivermigrate.New(riverpgxv5.New(pool), nil)
	if err != nil {
		pool.Close()
		return fail("failed to create river migrator", err)
	}
	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{}); err != nil {
		pool.Close()
		return fail("failed to migrate river tables", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewEventReminderWorker(ctxLogger, publisher))

	client, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 10},
			queueName:          {MaxWorkers: 10},
		},
		Workers: workers,
	})
	if err != nil {
		pool.Close()
		return fail("failed to create River client", err)
	}

	metrics.RecordOperationSuccess(ctx, "initialize_service", serviceName)
	metrics.RecordOperationDuration(ctx, "initialize_service", serviceName, time.Since(start))
	ctxLogger.InfoContext(ctx, "Event queue service initialized")

	return &Service{
		client:  client,
		pool:    pool,
		logger:  ctxLogger,
		db:      bunDB,
		metrics: metrics,
	}, nil
}

// Start begins working jobs.
func (s *Service) Start(ctx context.Context) error {
	if err := s.client.Start(ctx); err != nil {
		s.logger.ErrorContext(ctx, "Failed to start River client", attr.Error(err))
		return fmt.Errorf("failed to start River client: %w", err)
	}
	s.logger.InfoContext(ctx, "Event queue service started")
	return nil
}

// Stop waits for running jobs and closes the pool.
func (s *Service) Stop(ctx context.Context) error {
	defer s.pool.Close()
	if err := s.client.Stop(ctx); err != nil {
		s.logger.ErrorContext(ctx, "Failed to stop River client", attr.Error(err))
		return fmt.Errorf("failed to stop River client: %w", err)
	}
	s.logger.InfoContext(ctx, "Event queue service stopped")
	return nil
}

// ScheduleReminder enqueues a reminder for eventID at the given time. Any
// earlier reminder for the event is cancelled first so a rescheduled event
// only has one pending job.
func (s *Service) ScheduleReminder(ctx context.Context, job EventReminderJob, at time.Time) error {
	start := time.Now()
	s.metrics.RecordOperationAttempt(ctx, "schedule_event_reminder", serviceName)

	if err := s.CancelReminders(ctx, job.EventID); err != nil {
		s.metrics.RecordOperationFailure(ctx, "schedule_event_reminder", serviceName)
		return err
	}

	res, err := s.client.Insert(ctx, job, &river.InsertOpts{
		Queue:       queueName,
		ScheduledAt: at,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
		},
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to schedule event reminder",
			attr.Int64("event_id", job.EventID),
			attr.Error(err),
		)
		s.metrics.RecordOperationFailure(ctx, "schedule_event_reminder", serviceName)
		return fmt.Errorf("failed to schedule event reminder: %w", err)
	}

	s.metrics.RecordOperationSuccess(ctx, "schedule_event_reminder", serviceName)
	s.metrics.RecordOperationDuration(ctx, "schedule_event_reminder", serviceName, time.Since(start))
	s.logger.InfoContext(ctx, "Event reminder scheduled",
		attr.Int64("event_id", job.EventID),
		attr.Int64("job_id", res.Job.ID),
		attr.Time("scheduled_at", at),
	)
	return nil
}

type riverJobRow struct {
	ID          int64     `bun:"id"`
	Kind        string    `bun:"kind"`
	State       string    `bun:"state"`
	ScheduledAt time.Time `bun:"scheduled_at"`
}

// CancelReminders cancels every pending reminder for eventID.
func (s *Service) CancelReminders(ctx context.Context, eventID int64) error {
	jobs, err := s.pendingJobs(ctx, eventID)
	if err != nil {
		return err
	}

	cancelled := 0
	for _, job := range jobs {
		if _, err := s.client.JobCancel(ctx, job.ID); err != nil {
			s.logger.WarnContext(ctx, "Failed to cancel job",
				attr.Int64("job_id", job.ID),
				attr.Error(err),
			)
			continue
		}
		cancelled++
	}

	if len(jobs) > 0 {
		s.logger.InfoContext(ctx, "Event reminders cancelled",
			attr.Int64("event_id", eventID),
			attr.Int("found", len(jobs)),
			attr.Int("cancelled", cancelled),
		)
	}
	return nil
}

// ScheduledJobs lists pending reminder jobs for eventID.
func (s *Service) ScheduledJobs(ctx context.Context, eventID int64) ([]JobInfo, error) {
	rows, err := s.pendingJobs(ctx, eventID)
	if err != nil {
		return nil, err
	}
	out := make([]JobInfo, 0, len(rows))
	for _, row := range rows {
		out = append(out, JobInfo(row))
	}
	return out, nil
}

func (s *Service) pendingJobs(ctx context.Context, eventID int64) ([]riverJobRow, error) {
	var jobs []riverJobRow
	err := s.db.NewSelect().
		Table("river_job").
		Column("id", "kind", "state", "scheduled_at").
		Where("kind = ?", ReminderKind).
		Where("state IN (?, ?)", "available", "scheduled").
		Where("args->>'event_id' = ?", strconv.FormatInt(eventID, 10)).
		OrderExpr("scheduled_at ASC").
		Scan(ctx, &jobs)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to query reminder jobs", attr.Error(err))
		return nil, fmt.Errorf("failed to query reminder jobs: %w", err)
	}
	return jobs, nil
}

// HealthCheck verifies the river tables are reachable.
func (s *Service) HealthCheck(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("river client is nil")
	}
	if _, err := s.db.NewSelect().Table("river_job").Count(ctx); err != nil {
		return fmt.Errorf("queue service health check failed: %w", err)
	}
	return nil
}
