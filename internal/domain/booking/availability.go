package booking

import (
	"time"

	"hotel-booking-core/internal/domain/room"
)

// StalePendingWindow is how long a pending booking keeps blocking its room.
const StalePendingWindow = 60 * time.Minute

type Availability struct {
	Available bool
	Reason    Reason
}

func Available() Availability {
	return Availability{Available: true}
}

func Rejected(reason Reason) Availability {
	return Availability{Reason: reason}
}

// CheckAvailability decides whether stay can be booked on a room in roomStatus,
// given the bookings already recorded for that room. excludeID skips the booking
// being edited; zero excludes nothing.
func CheckAvailability(roomStatus room.Status, existing []*Booking, stay Stay, excludeID int64, now time.Time) Availability {
	if !roomStatus.IsBookable() {
		return Rejected(ReasonRoomUnavailable)
	}
	for _, b := range existing {
		if b == nil || (excludeID != 0 && b.id == excludeID) {
			continue
		}
		if b.BlocksAvailability(now) && b.stay.Overlaps(stay) {
			return Rejected(ReasonAlreadyBooked)
		}
	}
	return Available()
}
