package booking

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidGuests       = errors.New("at least one adult guest is required")
	ErrInvalidChildren     = errors.New("children count cannot be negative")
	ErrNegativeTotal       = errors.New("total cannot be negative")
	ErrInvalidStatus       = errors.New("invalid booking status")
	ErrInvalidTransition   = errors.New("booking status transition not allowed")
	ErrBookingAlreadyFinal = errors.New("booking is already cancelled")
)

type Booking struct {
	id           int64
	roomID       int64
	stay         Stay
	status       Status
	guests       int
	children     int
	childrenAges []int
	roomTotal    decimal.Decimal
	childTotal   decimal.Decimal
	extrasTotal  decimal.Decimal
	extras       []ExtraCharge
	total        decimal.Decimal
	taxBreakdown json.RawMessage
	createdAt    time.Time
}

// ExtraCharge is one priced extra kept with the booking so tax can be re-derived.
type ExtraCharge struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

// Totals are the authoritative amounts computed at booking time.
type Totals struct {
	RoomTotal    decimal.Decimal
	ChildTotal   decimal.Decimal
	ExtrasTotal  decimal.Decimal
	Extras       []ExtraCharge
	Total        decimal.Decimal
	TaxBreakdown json.RawMessage
}

// NewBooking creates a pending booking. Ids are assigned by persistence.
func NewBooking(roomID int64, stay Stay, guests, children int, childrenAges []int, totals Totals, now time.Time) (*Booking, error) {
	if stay.IsZero() {
		return nil, ErrInvalidStay
	}
	if guests < 1 {
		return nil, ErrInvalidGuests
	}
	if children < 0 {
		return nil, ErrInvalidChildren
	}
	if totals.Total.IsNegative() {
		return nil, ErrNegativeTotal
	}
	return &Booking{
		roomID:       roomID,
		stay:         stay,
		status:       StatusPending,
		guests:       guests,
		children:     children,
		childrenAges: append([]int(nil), childrenAges...),
		roomTotal:    totals.RoomTotal,
		childTotal:   totals.ChildTotal,
		extrasTotal:  totals.ExtrasTotal,
		extras:       totals.Extras,
		total:        totals.Total,
		taxBreakdown: totals.TaxBreakdown,
		createdAt:    now,
	}, nil
}

func ReconstructBooking(
	id, roomID int64,
	stay Stay,
	status Status,
	guests, children int,
	childrenAges []int,
	totals Totals,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		roomID:       roomID,
		stay:         stay,
		status:       status,
		guests:       guests,
		children:     children,
		childrenAges: childrenAges,
		roomTotal:    totals.RoomTotal,
		childTotal:   totals.ChildTotal,
		extrasTotal:  totals.ExtrasTotal,
		extras:       totals.Extras,
		total:        totals.Total,
		taxBreakdown: totals.TaxBreakdown,
		createdAt:    createdAt,
	}
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

// IsStalePending reports a pending booking older than window. Stale rows stay in
// storage but no longer block the room.
func (b *Booking) IsStalePending(now time.Time, window time.Duration) bool {
	return b.status == StatusPending && b.createdAt.Before(now.Add(-window))
}

func (b *Booking) BlocksAvailability(now time.Time) bool {
	return !b.IsCancelled() && !b.IsStalePending(now, StalePendingWindow)
}

func (b *Booking) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if b.status == StatusCancelled {
		return ErrBookingAlreadyFinal
	}
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

func (b *Booking) ID() int64                     { return b.id }
func (b *Booking) RoomID() int64                 { return b.roomID }
func (b *Booking) Stay() Stay                    { return b.stay }
func (b *Booking) Status() Status                { return b.status }
func (b *Booking) Guests() int                   { return b.guests }
func (b *Booking) Children() int                 { return b.children }
func (b *Booking) ChildrenAges() []int           { return b.childrenAges }
func (b *Booking) RoomTotal() decimal.Decimal    { return b.roomTotal }
func (b *Booking) ChildTotal() decimal.Decimal   { return b.childTotal }
func (b *Booking) ExtrasTotal() decimal.Decimal  { return b.extrasTotal }
func (b *Booking) Extras() []ExtraCharge         { return b.extras }
func (b *Booking) Total() decimal.Decimal        { return b.total }
func (b *Booking) TaxBreakdown() json.RawMessage { return b.taxBreakdown }
func (b *Booking) CreatedAt() time.Time          { return b.createdAt }
