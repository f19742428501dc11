package domain

import (
	"strings"
	"time"
)

// AgeUnit is the unit an account-age threshold is expressed in.
type AgeUnit string

const (
	AgeUnitSeconds AgeUnit = "seconds"
	AgeUnitMinutes AgeUnit = "minutes"
	AgeUnitHours   AgeUnit = "hours"
	AgeUnitDays    AgeUnit = "days"
	AgeUnitMonths  AgeUnit = "months"
	AgeUnitYears   AgeUnit = "years"
)

// Conversion constants. No calendar awareness: a month is always the
// average month length and a year is twelve of those.
const (
	DaysPerMonth  = 30.437
	MonthsPerYear = 12
)

// AgeUnits lists every unit in ascending order of size.
var AgeUnits = []AgeUnit{
	AgeUnitSeconds, AgeUnitMinutes, AgeUnitHours,
	AgeUnitDays, AgeUnitMonths, AgeUnitYears,
}

func (u AgeUnit) String() string { return string(u) }

func (u AgeUnit) IsValid() bool {
	switch u {
	case AgeUnitSeconds, AgeUnitMinutes, AgeUnitHours, AgeUnitDays, AgeUnitMonths, AgeUnitYears:
		return true
	}
	return false
}

// ParseAgeUnit accepts a unit name in any case, singular or plural
// ("Days", "day", "HOURS").
func ParseAgeUnit(s string) (AgeUnit, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	if !strings.HasSuffix(s, "s") {
		s += "s"
	}
	u := AgeUnit(s)
	return u, u.IsValid()
}

// Singular returns the unit name without the trailing "s".
func (u AgeUnit) Singular() string {
	return strings.TrimSuffix(string(u), "s")
}

// Convert expresses d in u by successive division:
// seconds, /60 minutes, /60 hours, /24 days, /30.437 months, /12 years.
// The result is fractional; callers compare it without truncation.
func (u AgeUnit) Convert(d time.Duration) float64 {
	seconds := d.Seconds()
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24
	months := days / DaysPerMonth
	years := months / MonthsPerYear

	switch u {
	case AgeUnitSeconds:
		return seconds
	case AgeUnitMinutes:
		return minutes
	case AgeUnitHours:
		return hours
	case AgeUnitDays:
		return days
	case AgeUnitMonths:
		return months
	default:
		return years
	}
}
