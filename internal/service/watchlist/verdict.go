package watchlist

import (
	"time"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
)

// Reason names a rule that flagged a subject.
type Reason string

const (
	ReasonRemoval    Reason = "removal"
	ReasonRejoin     Reason = "rejoin_threshold"
	ReasonAccountAge Reason = "account_age"
)

// Verdict is the result of applying a policy to one event.
type Verdict struct {
	Flagged bool
	Reasons []Reason

	// AccountAge is the subject's account age in AgeUnit.
	AccountAge  float64
	AgeUnit     domain.AgeUnit
	RejoinCount int
}

// Assess applies p to an event of the given kind. rejoinCount is the
// ledger count after any increment; age is the account age at event time.
func Assess(p domain.Policy, kind domain.EventKind, rejoinCount int, age time.Duration) Verdict {
	if age < 0 {
		age = 0
	}
	unit := p.AgeUnit
	if !unit.IsValid() {
		unit = domain.AgeUnitSeconds
	}

	v := Verdict{
		AccountAge:  unit.Convert(age),
		AgeUnit:     unit,
		RejoinCount: rejoinCount,
	}

	if kind == domain.EventRemoval {
		v.Reasons = append(v.Reasons, ReasonRemoval)
	}
	if p.RejoinThreshold > 0 && rejoinCount > p.RejoinThreshold {
		v.Reasons = append(v.Reasons, ReasonRejoin)
	}
	if p.AgeThreshold > 0 && v.AccountAge < p.AgeThreshold {
		v.Reasons = append(v.Reasons, ReasonAccountAge)
	}

	v.Flagged = len(v.Reasons) > 0
	return v
}

// countsEvent reports whether an event of kind bumps the ledger. Arrivals
// always do; departures and removals only when no arrival was ever seen.
func countsEvent(kind domain.EventKind, current int) bool {
	return kind == domain.EventArrival || current == 0
}
