package commands

import (
	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/pkg/errs"
)

// UnavailableError reports a failed availability guard. It matches
// errs.ErrRoomUnavailable or errs.ErrAlreadyBooked depending on Reason.
type UnavailableError struct {
	RoomID int64
	Reason booking.Reason
}

func (e *UnavailableError) Error() string {
	return "room not available: " + e.Reason.String()
}

func (e *UnavailableError) Is(target error) bool {
	switch e.Reason {
	case booking.ReasonRoomUnavailable:
		return target == errs.ErrRoomUnavailable
	default:
		return target == errs.ErrAlreadyBooked
	}
}

func unavailable(roomID int64, a booking.Availability) error {
	return &UnavailableError{RoomID: roomID, Reason: a.Reason}
}
