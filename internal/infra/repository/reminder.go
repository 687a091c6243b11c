package repository

import (
	"context"
	"time"

	"meetgrid/internal/infra"
	"meetgrid/internal/infra/db"
	"meetgrid/internal/usecase/shared"

	"github.com/google/uuid"
)

const reminderMaxAttempts = 5

// ReminderRepository stores at most one job per meeting; rescheduling a
// meeting replaces the pending job instead of adding a second one.
type ReminderRepository struct {
	db db.DBTX
}

func NewReminderRepository(dbtx db.DBTX) *ReminderRepository {
	return &ReminderRepository{db: dbtx}
}

func (r *ReminderRepository) Schedule(ctx context.Context, meetingID uuid.UUID, fireAt time.Time) error {
	const q = `INSERT INTO reminder_jobs (meeting_id, fire_at, status, attempts)
		VALUES ($1, $2, 'queued', 0)
		ON CONFLICT (meeting_id)
		DO UPDATE SET fire_at = EXCLUDED.fire_at, status = 'queued', attempts = 0, last_error = NULL, updated_at = NOW()`

	if _, err := r.db.Exec(ctx, q, meetingID, fireAt); err != nil {
		return infra.WrapRepoErr("failed to schedule reminder", err)
	}
	return nil
}

func (r *ReminderRepository) Cancel(ctx context.Context, meetingID uuid.UUID) error {
	const q = `UPDATE reminder_jobs SET status = 'cancelled', updated_at = NOW()
		WHERE meeting_id = $1 AND status IN ('queued', 'processing')`

	if _, err := r.db.Exec(ctx, q, meetingID); err != nil {
		return infra.WrapRepoErr("failed to cancel reminder", err)
	}
	return nil
}

// ClaimDue marks up to limit due jobs as processing and returns them.
// SKIP LOCKED keeps concurrent workers from claiming the same job.
func (r *ReminderRepository) ClaimDue(ctx context.Context, now time.Time, limit int32) ([]shared.ReminderJob, error) {
	const q = `UPDATE reminder_jobs SET status = 'processing', updated_at = NOW()
		WHERE meeting_id IN (
			SELECT meeting_id FROM reminder_jobs
			WHERE status = 'queued' AND fire_at <= $1
			ORDER BY fire_at
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING meeting_id, fire_at, attempts, status`

	rows, err := r.db.Query(ctx, q, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim due reminders", err)
	}
	defer rows.Close()

	var jobs []shared.ReminderJob
	for rows.Next() {
		var job shared.ReminderJob
		if err := rows.Scan(&job.MeetingID, &job.FireAt, &job.Attempts, &job.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reminder job", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reminder jobs", err)
	}
	return jobs, nil
}

func (r *ReminderRepository) MarkSent(ctx context.Context, meetingID uuid.UUID) error {
	const q = `UPDATE reminder_jobs SET status = 'sent', updated_at = NOW() WHERE meeting_id = $1`

	if _, err := r.db.Exec(ctx, q, meetingID); err != nil {
		return infra.WrapRepoErr("failed to mark reminder sent", err)
	}
	return nil
}

func (r *ReminderRepository) MarkCancelled(ctx context.Context, meetingID uuid.UUID) error {
	const q = `UPDATE reminder_jobs SET status = 'cancelled', updated_at = NOW() WHERE meeting_id = $1`

	if _, err := r.db.Exec(ctx, q, meetingID); err != nil {
		return infra.WrapRepoErr("failed to mark reminder cancelled", err)
	}
	return nil
}

// MarkFailed requeues the job for another attempt, or parks it as failed
// once attempts run out or requeue is false.
func (r *ReminderRepository) MarkFailed(ctx context.Context, meetingID uuid.UUID, lastError string, requeue bool) error {
	const q = `UPDATE reminder_jobs
		SET attempts = attempts + 1,
		    last_error = $2,
		    status = CASE WHEN $3 AND attempts + 1 < $4 THEN 'queued' ELSE 'failed' END,
		    updated_at = NOW()
		WHERE meeting_id = $1`

	if _, err := r.db.Exec(ctx, q, meetingID, lastError, requeue, reminderMaxAttempts); err != nil {
		return infra.WrapRepoErr("failed to mark reminder failed", err)
	}
	return nil
}
