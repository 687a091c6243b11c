package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"meetgrid/internal/domain/meeting"
	"meetgrid/internal/infra"
	"meetgrid/internal/pkg/clock"
	"meetgrid/internal/pkg/config"
	"meetgrid/internal/usecase/shared"
)

// ReminderWorker polls the reminder queue and delivers due reminders to both
// participants. Jobs whose meeting is no longer accepted are dropped
// silently; the reschedule or cancel that invalidated them already notified
// everyone involved.
type ReminderWorker struct {
	uow       shared.UnitOfWork
	directory shared.ActorDirectory
	notifier  shared.Notifier
	clock     clock.Clock
	logger    *slog.Logger

	pollInterval time.Duration
	batchSize    int32
}

func NewReminderWorker(
	uow shared.UnitOfWork,
	directory shared.ActorDirectory,
	notifier shared.Notifier,
	clk clock.Clock,
	cfg config.ReminderConfig,
	logger *slog.Logger,
) *ReminderWorker {
	return &ReminderWorker{
		uow:          uow,
		directory:    directory,
		notifier:     notifier,
		clock:        clk,
		logger:       logger,
		pollInterval: cfg.PollInterval,
		batchSize:    int32(cfg.BatchSize),
	}
}

// Run blocks until ctx is cancelled.
func (w *ReminderWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("reminder worker started", "poll_interval", w.pollInterval.String())
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("reminder worker stopped")
			return
		case <-ticker.C:
			w.ProcessDue(ctx)
		}
	}
}

// ProcessDue claims one batch of due jobs and handles each in turn.
func (w *ReminderWorker) ProcessDue(ctx context.Context) {
	jobs, err := w.uow.Reminders().ClaimDue(ctx, w.clock.Now(), w.batchSize)
	if err != nil {
		w.logger.Error("failed to claim due reminders", "error", err.Error())
		return
	}

	for _, job := range jobs {
		w.process(ctx, job)
	}
}

func (w *ReminderWorker) process(ctx context.Context, job shared.ReminderJob) {
	snap, err := w.uow.Reads().MeetingByID(ctx, job.MeetingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			w.discard(ctx, job)
			return
		}
		w.fail(ctx, job, err)
		return
	}
	if snap.Status != meeting.StatusAccepted {
		w.discard(ctx, job)
		return
	}

	if err := w.deliver(ctx, snap); err != nil {
		w.fail(ctx, job, err)
		return
	}

	if err := w.uow.Reminders().MarkSent(ctx, job.MeetingID); err != nil {
		w.logger.Error("failed to mark reminder sent",
			"meeting_id", job.MeetingID.String(), "error", err.Error())
	}
}

func (w *ReminderWorker) deliver(ctx context.Context, snap *shared.MeetingSnapshot) error {
	subject := fmt.Sprintf("Reminder: %s", snap.Subject)
	body := fmt.Sprintf("Your meeting %q starts at %s.",
		snap.Subject, snap.RequestedAt.UTC().Format(time.RFC3339))

	for _, ref := range []meeting.ActorRef{snap.Sender, snap.Receiver} {
		profile, err := w.directory.Resolve(ctx, ref)
		if err != nil {
			return err
		}
		if err := w.notifier.Send(ctx, profile.Email, subject, body); err != nil {
			return err
		}
	}
	return nil
}

func (w *ReminderWorker) discard(ctx context.Context, job shared.ReminderJob) {
	if err := w.uow.Reminders().MarkCancelled(ctx, job.MeetingID); err != nil {
		w.logger.Error("failed to discard stale reminder",
			"meeting_id", job.MeetingID.String(), "error", err.Error())
	}
}

func (w *ReminderWorker) fail(ctx context.Context, job shared.ReminderJob, cause error) {
	w.logger.Warn("reminder delivery failed",
		"meeting_id", job.MeetingID.String(),
		"attempts", job.Attempts+1,
		"error", cause.Error())
	if err := w.uow.Reminders().MarkFailed(ctx, job.MeetingID, cause.Error(), true); err != nil {
		w.logger.Error("failed to record reminder failure",
			"meeting_id", job.MeetingID.String(), "error", err.Error())
	}
}
