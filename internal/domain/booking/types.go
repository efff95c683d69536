package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether a booking in s may move to next.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	default:
		return false
	}
}

// Reason is the symbolic outcome of an availability check.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonRoomUnavailable Reason = "ROOM_UNAVAILABLE"
	ReasonAlreadyBooked   Reason = "ALREADY_BOOKED"
)

func (r Reason) String() string {
	return string(r)
}
