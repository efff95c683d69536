package request

import (
	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/extra"
	"hotel-booking-core/internal/usecase/queries"
)

type ExtraSelection struct {
	ExtraID  int64 `json:"extra_id" binding:"required,gt=0"`
	Quantity int   `json:"quantity" binding:"min=0,max=100"`
}

// QuoteRequest prices a stay. Dates are calendar dates (YYYY-MM-DD); check-out is exclusive.
type QuoteRequest struct {
	RoomID       int64            `json:"room_id" binding:"required,gt=0"`
	CheckIn      string           `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut     string           `json:"check_out" binding:"required,datetime=2006-01-02"`
	Guests       int              `json:"guests" binding:"required,min=1,max=20"`
	Children     int              `json:"children" binding:"min=0,max=20"`
	ChildrenAges []int            `json:"children_ages" binding:"omitempty,dive,min=0,max=17"`
	Extras       []ExtraSelection `json:"extras" binding:"omitempty,dive"`
}

// CreateBookingRequest takes the same body as a quote so the charged total is
// the one the guest was shown.
type CreateBookingRequest = QuoteRequest

func (r QuoteRequest) ToQuery() (queries.QuoteRequest, error) {
	checkIn, err := booking.ParseDate(r.CheckIn)
	if err != nil {
		return queries.QuoteRequest{}, err
	}
	checkOut, err := booking.ParseDate(r.CheckOut)
	if err != nil {
		return queries.QuoteRequest{}, err
	}

	selections := make([]extra.Selection, 0, len(r.Extras))
	for _, e := range r.Extras {
		selections = append(selections, extra.Selection{ExtraID: e.ExtraID, Quantity: e.Quantity})
	}

	return queries.QuoteRequest{
		RoomID:       r.RoomID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Guests:       r.Guests,
		Children:     r.Children,
		ChildrenAges: r.ChildrenAges,
		Extras:       selections,
	}, nil
}

type AvailabilityQuery struct {
	CheckIn          string `form:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut         string `form:"check_out" binding:"required,datetime=2006-01-02"`
	ExcludeBookingID int64  `form:"exclude_booking_id" binding:"omitempty,min=0"`
}

func (q AvailabilityQuery) Stay() (booking.Stay, error) {
	return booking.ParseStay(q.CheckIn, q.CheckOut)
}
