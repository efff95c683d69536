package quote

import (
	"hotel-booking-core/internal/domain/room"
)

type MissingAgePolicy string

const (
	// MissingAgesChargeable bills children whose age was not supplied.
	MissingAgesChargeable MissingAgePolicy = "chargeable"
	// MissingAgesFree gives children without an age the benefit of the doubt.
	MissingAgesFree MissingAgePolicy = "free"
)

func (p MissingAgePolicy) IsValid() bool {
	switch p {
	case MissingAgesChargeable, MissingAgesFree:
		return true
	default:
		return false
	}
}

type ChildPolicy struct {
	MissingAges MissingAgePolicy
}

// DefaultChildPolicy charges for children of unknown age.
func DefaultChildPolicy() ChildPolicy {
	return ChildPolicy{MissingAges: MissingAgesChargeable}
}

func (p ChildPolicy) normalize() ChildPolicy {
	if !p.MissingAges.IsValid() {
		return DefaultChildPolicy()
	}
	return p
}

// Allocation is the outcome of placing children into a room type.
// Chargeable children first fill empty adult slots (Absorbed); the rest are Billed.
type Allocation struct {
	Free       int
	Chargeable int
	Absorbed   int
	Billed     int
}

// AllocateChildren splits children into free and chargeable by age, then lets
// chargeable children occupy unused adult capacity before billing them.
// Ages beyond the children count are ignored.
func AllocateChildren(rt *room.RoomType, guests, children int, ages []int, policy ChildPolicy) Allocation {
	if rt == nil || children <= 0 {
		return Allocation{}
	}
	policy = policy.normalize()

	var a Allocation
	for i := 0; i < children; i++ {
		switch {
		case i >= len(ages):
			if policy.MissingAges == MissingAgesFree {
				a.Free++
			} else {
				a.Chargeable++
			}
		case ages[i] <= rt.ChildAgeFreeLimit():
			a.Free++
		default:
			a.Chargeable++
		}
	}

	emptySlots := max(0, rt.MaxAdults()-guests)
	a.Absorbed = min(emptySlots, a.Chargeable)
	a.Billed = a.Chargeable - a.Absorbed
	return a
}
