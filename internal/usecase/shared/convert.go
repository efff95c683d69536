package shared

import (
	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/extra"
	"hotel-booking-core/internal/domain/pricing"
	"hotel-booking-core/internal/domain/room"
)

func (s *RoomSnapshot) ToDomain() (*room.Room, error) {
	return room.NewRoom(s.ID, s.TypeID, s.CustomPrice, room.Status(s.Status))
}

func (s *RoomTypeSnapshot) ToDomain() (*room.RoomType, error) {
	return room.NewRoomType(s.ID, s.BasePrice, s.MaxAdults, s.MaxChildren, s.ChildAgeFreeLimit, s.ChildRate)
}

func (s PricingRuleSnapshot) ToDomain() pricing.Rule {
	return pricing.Rule{
		ID:        s.ID,
		TypeID:    s.TypeID,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Amount:    s.Amount,
		Operation: pricing.Operation(s.Operation),
		Priority:  s.Priority,
	}
}

func RulesToDomain(snaps []PricingRuleSnapshot) []pricing.Rule {
	rules := make([]pricing.Rule, len(snaps))
	for i, s := range snaps {
		rules[i] = s.ToDomain()
	}
	return rules
}

func ExtrasToDomain(snaps []ExtraSnapshot) []extra.Extra {
	extras := make([]extra.Extra, len(snaps))
	for i, s := range snaps {
		extras[i] = extra.Extra{
			ID:          s.ID,
			Name:        s.Name,
			Price:       s.Price,
			PricingType: extra.PricingType(s.PricingType),
			ControlType: extra.ControlType(s.ControlType),
		}
	}
	return extras
}

func (s *BookingSnapshot) ToDomain() (*booking.Booking, error) {
	stay, err := booking.NewStay(s.CheckIn, s.CheckOut)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		s.ID, s.RoomID, stay, booking.Status(s.Status), s.Guests, s.Children, s.ChildrenAges,
		booking.Totals{
			RoomTotal:    s.RoomTotal,
			ChildTotal:   s.ChildTotal,
			ExtrasTotal:  s.ExtrasTotal,
			Extras:       s.Extras,
			Total:        s.Total,
			TaxBreakdown: s.TaxBreakdown,
		},
		s.CreatedAt,
	), nil
}

func BookingsToDomain(snaps []*BookingSnapshot) ([]*booking.Booking, error) {
	result := make([]*booking.Booking, 0, len(snaps))
	for _, s := range snaps {
		b, err := s.ToDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, nil
}
