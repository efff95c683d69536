package booking

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDate = errors.New("invalid date")
	ErrInvalidStay = errors.New("check-out must be after check-in")
)

// Stay is the half-open date range [checkIn, checkOut). The check-out day is
// never occupied, so it can be the next guest's check-in day.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	in := toDay(checkIn)
	out := toDay(checkOut)
	if !out.After(in) {
		return Stay{}, ErrInvalidStay
	}
	return Stay{checkIn: in, checkOut: out}, nil
}

func ParseStay(checkIn, checkOut string) (Stay, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return Stay{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return Stay{}, err
	}
	return NewStay(in, out)
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }

func (s Stay) IsZero() bool {
	return s.checkIn.IsZero() && s.checkOut.IsZero()
}

func (s Stay) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// Dates lists every occupied night, check-in inclusive, check-out exclusive.
func (s Stay) Dates() []time.Time {
	dates := make([]time.Time, 0, s.Nights())
	for d := s.checkIn; d.Before(s.checkOut); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func (s Stay) Overlaps(other Stay) bool {
	return s.checkIn.Before(other.checkOut) && s.checkOut.After(other.checkIn)
}

func (s Stay) String() string {
	return "[" + s.checkIn.Format(DateLayout) + "," + s.checkOut.Format(DateLayout) + ")"
}

func toDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
