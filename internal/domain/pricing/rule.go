package pricing

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type Operation string

const (
	OperationPercent Operation = "percent"
	OperationFixed   Operation = "fixed"
)

func (o Operation) IsValid() bool {
	return o == OperationPercent || o == OperationFixed
}

// Rule adjusts the nightly base for dates in [StartDate, EndDate], both inclusive.
// TypeID 0 makes the rule global.
type Rule struct {
	ID        int64
	TypeID    int64
	StartDate time.Time
	EndDate   time.Time
	Amount    decimal.Decimal
	Operation Operation
	Priority  int
}

func (r Rule) IsGlobal() bool {
	return r.TypeID == 0
}

func (r Rule) Covers(date time.Time) bool {
	d := toDay(date)
	return !d.Before(toDay(r.StartDate)) && !d.After(toDay(r.EndDate))
}

func (r Rule) AppliesTo(typeID int64, date time.Time) bool {
	return (r.IsGlobal() || r.TypeID == typeID) && r.Covers(date)
}

// Apply returns base adjusted by the rule. An unknown operation leaves base unchanged.
func (r Rule) Apply(base decimal.Decimal) decimal.Decimal {
	switch r.Operation {
	case OperationPercent:
		return base.Add(base.Mul(r.Amount).Div(hundred))
	case OperationFixed:
		return base.Add(r.Amount)
	default:
		return base
	}
}

// outranks orders candidates: type-specific before global, then higher priority,
// then lower id so the choice is stable.
func (r Rule) outranks(other Rule) bool {
	if r.IsGlobal() != other.IsGlobal() {
		return !r.IsGlobal()
	}
	if r.Priority != other.Priority {
		return r.Priority > other.Priority
	}
	return r.ID < other.ID
}

// RankRules returns the rules applicable to typeID on date, best first.
func RankRules(rules []Rule, typeID int64, date time.Time) []Rule {
	candidates := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.AppliesTo(typeID, date) {
			candidates = append(candidates, r)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].outranks(candidates[j])
	})
	return candidates
}

func SelectRule(rules []Rule, typeID int64, date time.Time) (Rule, bool) {
	ranked := RankRules(rules, typeID, date)
	if len(ranked) == 0 {
		return Rule{}, false
	}
	return ranked[0], true
}

func toDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
