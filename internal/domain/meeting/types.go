package meeting

type Status string

const (
	StatusPending            Status = "pending"
	StatusAccepted           Status = "accepted"
	StatusDeclined           Status = "declined"
	StatusRescheduleProposed Status = "reschedule_proposed"
	StatusCancelled          Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusDeclined, StatusRescheduleProposed, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusDeclined || s == StatusCancelled
}

// HoldsSlot reports whether a request in this status counts as occupying its
// slot for conflict purposes.
func (s Status) HoldsSlot() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRescheduleProposed:
		return true
	default:
		return false
	}
}

// Role tags a participant identity. The same id space is not guaranteed
// unique across roles, so a bare id never identifies an actor.
type Role string

const (
	RoleAttendee  Role = "attendee"
	RoleExhibitor Role = "exhibitor"
	RoleSpeaker   Role = "speaker"
	RoleAdmin     Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAttendee, RoleExhibitor, RoleSpeaker, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsParticipant reports whether the role can send or receive meeting
// requests. Admins moderate but never hold slots.
func (r Role) IsParticipant() bool {
	switch r {
	case RoleAttendee, RoleExhibitor, RoleSpeaker:
		return true
	default:
		return false
	}
}

type Action string

const (
	ActionRequested          Action = "requested"
	ActionAccepted           Action = "accepted"
	ActionDeclined           Action = "declined"
	ActionRescheduleProposed Action = "reschedule_proposed"
	ActionCancelled          Action = "cancelled"
)
