package request

import (
	"github.com/google/uuid"
)

type CreateMeetingRequest struct {
	EventID      uuid.UUID `json:"event_id" binding:"required"`
	ReceiverID   uuid.UUID `json:"receiver_id" binding:"required"`
	ReceiverRole string    `json:"receiver_role" binding:"required"`
	Subject      string    `json:"subject" binding:"required"`
	Message      string    `json:"message"`
	// RequestedAt accepts RFC 3339 or a bare wall-clock timestamp; either is
	// snapped to the slot grid downstream.
	RequestedAt string `json:"requested_at" binding:"required"`
}

type ProposeNewTimeRequest struct {
	ProposedAt string `json:"proposed_at" binding:"required"`
	Note       string `json:"note"`
}

type DeclineMeetingRequest struct {
	Note string `json:"note"`
}
