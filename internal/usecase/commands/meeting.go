package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"meetgrid/internal/domain/meeting"
	"meetgrid/internal/infra"
	"meetgrid/internal/pkg/clock"
	"meetgrid/internal/pkg/errs"
	"meetgrid/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrValidation        = errs.New("validation error")
	ErrStateConflict     = errs.New("state conflict")
	ErrSlotConflict      = errs.New("slot conflict")
	ErrMeetingNotFound   = errs.New("meeting not found")
	ErrActorNotFound     = errs.New("actor not found")
	ErrEventNotFound     = errs.New("event not found")
	ErrNotOpenToMeetings = errs.New("participant not open to meetings")
	ErrDayNotAvailable   = errs.New("receiver not available on that day")
	ErrSlotOutsideWindow = errs.New("slot outside daily window")

	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ReminderLead is how long before the finalized slot the reminder fires.
const ReminderLead = 60 * time.Minute

type CreateRequestInput struct {
	EventID      uuid.UUID
	ReceiverID   uuid.UUID
	ReceiverRole meeting.Role
	Subject      string
	Message      string
	// RequestedAt is the raw timestamp as submitted; it is normalized to the
	// slot grid here, not in the handler.
	RequestedAt string
}

type ProposeNewTimeInput struct {
	ProposedAt string
	Note       string
}

type MeetingCommands interface {
	CreateRequest(ctx context.Context, sender meeting.ActorRef, input CreateRequestInput) (uuid.UUID, error)
	Accept(ctx context.Context, actor meeting.ActorRef, meetingID uuid.UUID) error
	Decline(ctx context.Context, actor meeting.ActorRef, meetingID uuid.UUID, note string) error
	ProposeNewTime(ctx context.Context, actor meeting.ActorRef, meetingID uuid.UUID, input ProposeNewTimeInput) error
	Cancel(ctx context.Context, actor meeting.ActorRef, meetingID uuid.UUID) error
}

type meetingUseCaseImpl struct {
	uow       shared.UnitOfWork
	directory shared.ActorDirectory
	events    shared.EventDirectory
	notifier  shared.Notifier
	clock     clock.Clock
	logger    *slog.Logger
}

func NewMeetingCommands(
	uow shared.UnitOfWork,
	directory shared.ActorDirectory,
	events shared.EventDirectory,
	notifier shared.Notifier,
	clk clock.Clock,
	logger *slog.Logger,
) MeetingCommands {
	return &meetingUseCaseImpl{
		uow:       uow,
		directory: directory,
		events:    events,
		notifier:  notifier,
		clock:     clk,
		logger:    logger,
	}
}

func (uc *meetingUseCaseImpl) CreateRequest(ctx context.Context, sender meeting.ActorRef, input CreateRequestInput) (uuid.UUID, error) {
	if sender.IsZero() || !sender.Role.IsParticipant() {
		return uuid.Nil, errs.Mark(meeting.ErrInvalidActorRef, ErrValidation)
	}

	receiver, err := meeting.NewActorRef(input.ReceiverID, input.ReceiverRole)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}
	if !receiver.Role.IsParticipant() {
		return uuid.Nil, errs.Mark(meeting.ErrInvalidActorRef, ErrValidation)
	}

	slot, err := meeting.ParseSlot(input.RequestedAt)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	if err := uc.checkWindow(ctx, input.EventID, slot); err != nil {
		return uuid.Nil, err
	}

	senderProfile, err := uc.resolveActor(ctx, sender)
	if err != nil {
		return uuid.Nil, err
	}
	receiverProfile, err := uc.resolveActor(ctx, receiver)
	if err != nil {
		return uuid.Nil, err
	}
	if !senderProfile.OpenToMeetings || !receiverProfile.OpenToMeetings {
		return uuid.Nil, ErrNotOpenToMeetings
	}
	// The allow-list gates initial requests only; reschedule proposals are
	// exempt because both parties are already engaged.
	if !receiverProfile.AvailableOn(slot.Day()) {
		return uuid.Nil, ErrDayNotAvailable
	}

	req, err := meeting.NewRequest(input.EventID, sender, receiver, input.Subject, input.Message, slot, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		busy, berr := tx.Reads().SlotBusy(ctx, input.EventID, slot, uuid.Nil, sender, receiver)
		if berr != nil {
			return errs.Mark(berr, ErrDatabaseOperationFailed)
		}
		if busy {
			return ErrSlotConflict
		}
		if cerr := tx.Meetings().Create(ctx, req); cerr != nil {
			return errs.Mark(cerr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.notifyParticipant(ctx, receiver,
		fmt.Sprintf("New meeting request: %s", req.Subject()),
		fmt.Sprintf("%s requested a meeting at %s.", senderProfile.DisplayName, req.RequestedAt()))

	return req.ID(), nil
}

func (uc *meetingUseCaseImpl) Accept(ctx context.Context, actor meeting.ActorRef, meetingID uuid.UUID) error {
	var accepted *meeting.Request

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, ferr := uc.findForUpdate(ctx, tx, meetingID)
		if ferr != nil {
			return ferr
		}
		prev := req.Status()
		originalSlot := req.RequestedAt()
		participants := req.Participants()

		if aerr := req.Accept(actor, uc.clock.Now()); aerr != nil {
			return mapTransitionErr(aerr)
		}
		final := req.RequestedAt()

		busy, berr := tx.Reads().SlotBusy(ctx, req.EventID(), final, req.ID(), participants[0], participants[1])
		if berr != nil {
			return errs.Mark(berr, ErrDatabaseOperationFailed)
		}
		if busy {
			return ErrSlotConflict
		}

		// A proposal finalized to a different slot must leave no lock behind
		// at the original one.
		if prev == meeting.StatusRescheduleProposed && !originalSlot.Equal(final) {
			if derr := tx.SlotLocks().DeletePair(ctx, req.EventID(), originalSlot, participants); derr != nil {
				return errs.Mark(derr, ErrDatabaseOperationFailed)
			}
		}

		// The unique constraint on the lock table is the actual invariant;
		// the SlotBusy pre-check above only reduces contention on it. Any
		// row inserted before the violation is rolled back with the
		// transaction, so callers never observe a half-locked meeting.
		if lerr := tx.SlotLocks().InsertPair(ctx, req.EventID(), req.ID(), final, participants); lerr != nil {
			if infra.IsKind(lerr, infra.KindDuplicateKey) {
				return ErrSlotConflict
			}
			return errs.Mark(lerr, ErrDatabaseOperationFailed)
		}

		if uerr := tx.Meetings().Update(ctx, req, prev); uerr != nil {
			return mapUpdateErr(uerr)
		}
		accepted = req
		return nil
	})
	if err != nil {
		return err
	}

	uc.scheduleReminder(ctx, accepted)
	uc.notifyBoth(ctx, accepted,
		fmt.Sprintf("Meeting confirmed: %s", accepted.Subject()),
		fmt.Sprintf("Your meeting is confirmed for %s.", accepted.RequestedAt()))
	return nil
}

func (uc *meetingUseCaseImpl) Decline(ctx context.Context, actor meeting.ActorRef, meetingID uuid.UUID, note string) error {
	var wasAccepted bool

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, ferr := uc.findForUpdate(ctx, tx, meetingID)
		if ferr != nil {
			return ferr
		}
		prev := req.Status()
		wasAccepted = prev == meeting.StatusAccepted
		slot := req.RequestedAt()

		if derr := req.Decline(actor, note, uc.clock.Now()); derr != nil {
			return mapTransitionErr(derr)
		}

		// Leaving accepted releases the slot within the same transition.
		if wasAccepted {
			if lerr := tx.SlotLocks().DeletePair(ctx, req.EventID(), slot, req.Participants()); lerr != nil {
				return errs.Mark(lerr, ErrDatabaseOperationFailed)
			}
		}

		return mapUpdateErr(tx.Meetings().Update(ctx, req, prev))
	})
	if err != nil {
		return err
	}

	if wasAccepted {
		uc.cancelReminder(ctx, meetingID)
	}
	return nil
}

func (uc *meetingUseCaseImpl) ProposeNewTime(ctx context.Context, actor meeting.ActorRef, meetingID uuid.UUID, input ProposeNewTimeInput) error {
	newSlot, err := meeting.ParseSlot(input.ProposedAt)
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, ferr := uc.findForUpdate(ctx, tx, meetingID)
		if ferr != nil {
			return ferr
		}
		prev := req.Status()

		if werr := uc.checkWindow(ctx, req.EventID(), newSlot); werr != nil {
			return werr
		}

		participants := req.Participants()
		busy, berr := tx.Reads().SlotBusy(ctx, req.EventID(), newSlot, req.ID(), participants[0], participants[1])
		if berr != nil {
			return errs.Mark(berr, ErrDatabaseOperationFailed)
		}
		if busy {
			return ErrSlotConflict
		}

		if perr := req.ProposeNewTime(actor, newSlot, input.Note, uc.clock.Now()); perr != nil {
			return mapTransitionErr(perr)
		}

		return mapUpdateErr(tx.Meetings().Update(ctx, req, prev))
	})
}

func (uc *meetingUseCaseImpl) Cancel(ctx context.Context, actor meeting.ActorRef, meetingID uuid.UUID) error {
	var cancelled *meeting.Request

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, ferr := uc.findForUpdate(ctx, tx, meetingID)
		if ferr != nil {
			return ferr
		}
		prev := req.Status()
		slot := req.RequestedAt()

		adminOverride := actor.Role == meeting.RoleAdmin
		if cerr := req.Cancel(actor, adminOverride, uc.clock.Now()); cerr != nil {
			return mapTransitionErr(cerr)
		}

		if lerr := tx.SlotLocks().DeletePair(ctx, req.EventID(), slot, req.Participants()); lerr != nil {
			return errs.Mark(lerr, ErrDatabaseOperationFailed)
		}

		if uerr := tx.Meetings().Update(ctx, req, prev); uerr != nil {
			return mapUpdateErr(uerr)
		}
		cancelled = req
		return nil
	})
	if err != nil {
		return err
	}

	uc.cancelReminder(ctx, meetingID)
	uc.notifyBoth(ctx, cancelled,
		fmt.Sprintf("Meeting cancelled: %s", cancelled.Subject()),
		fmt.Sprintf("The meeting scheduled for %s was cancelled.", cancelled.RequestedAt()))
	return nil
}

func (uc *meetingUseCaseImpl) findForUpdate(ctx context.Context, tx shared.Tx, meetingID uuid.UUID) (*meeting.Request, error) {
	req, err := tx.Meetings().FindForUpdate(ctx, meetingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return req, nil
}

func (uc *meetingUseCaseImpl) checkWindow(ctx context.Context, eventID uuid.UUID, slot meeting.Slot) error {
	bounds, err := uc.events.BoundsByID(ctx, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrEventNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	window, err := meeting.NewDayWindow(bounds.StartsAt, bounds.EndsAt, slot.Day())
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}
	if !window.Contains(slot) {
		return ErrSlotOutsideWindow
	}
	return nil
}

func (uc *meetingUseCaseImpl) resolveActor(ctx context.Context, ref meeting.ActorRef) (*shared.ActorProfile, error) {
	profile, err := uc.directory.Resolve(ctx, ref)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrActorNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return profile, nil
}

// scheduleReminder runs after commit; its failure is logged, never returned,
// so it cannot roll back an otherwise-successful acceptance.
func (uc *meetingUseCaseImpl) scheduleReminder(ctx context.Context, req *meeting.Request) {
	fireAt := req.RequestedAt().Start().Add(-ReminderLead)
	if !fireAt.After(uc.clock.Now()) {
		// No back-filled reminder for near-term meetings.
		return
	}
	if err := uc.uow.Reminders().Schedule(ctx, req.ID(), fireAt); err != nil {
		uc.logger.Warn("failed to schedule reminder",
			"meeting_id", req.ID().String(),
			"fire_at", fireAt,
			"error", err.Error())
	}
}

func (uc *meetingUseCaseImpl) cancelReminder(ctx context.Context, meetingID uuid.UUID) {
	if err := uc.uow.Reminders().Cancel(ctx, meetingID); err != nil {
		// The worker self-cancels at fire time anyway.
		uc.logger.Warn("failed to cancel reminder",
			"meeting_id", meetingID.String(),
			"error", err.Error())
	}
}

func (uc *meetingUseCaseImpl) notifyBoth(ctx context.Context, req *meeting.Request, subject, body string) {
	for _, ref := range req.Participants() {
		uc.notifyParticipant(ctx, ref, subject, body)
	}
}

func (uc *meetingUseCaseImpl) notifyParticipant(ctx context.Context, ref meeting.ActorRef, subject, body string) {
	profile, err := uc.directory.Resolve(ctx, ref)
	if err != nil {
		uc.logger.Warn("failed to resolve actor for notification",
			"actor", ref.String(),
			"error", err.Error())
		return
	}
	if err := uc.notifier.Send(ctx, profile.Email, subject, body); err != nil {
		uc.logger.Warn("failed to send notification",
			"to", profile.Email,
			"subject", subject,
			"error", err.Error())
	}
}

func mapTransitionErr(err error) error {
	switch {
	case errors.Is(err, meeting.ErrInvalidTransition),
		errors.Is(err, meeting.ErrActorNotAllowed),
		errors.Is(err, meeting.ErrNoProposedSlot):
		return errs.Mark(err, ErrStateConflict)
	case errors.Is(err, meeting.ErrMissingSlot):
		return errs.Mark(err, ErrValidation)
	default:
		return errs.Mark(err, ErrStateConflict)
	}
}

func mapUpdateErr(err error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindStaleUpdate) {
		return errs.Mark(err, ErrStateConflict)
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}
