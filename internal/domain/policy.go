package domain

import "slices"

// Policy is the per-scope watchlist configuration.
type Policy struct {
	ScopeID string

	// AgeThreshold is compared against account age expressed in AgeUnit.
	// Zero disables the age rule.
	AgeThreshold float64
	AgeUnit      AgeUnit

	// RejoinThreshold is the join count that must be exceeded to flag a subject.
	// Zero disables the rejoin rule.
	RejoinThreshold int

	FieldOrder FieldOrder

	AlertEntities []Mentionable
	AlertChannels []string
}

// DefaultPolicy returns the policy a scope starts with.
func DefaultPolicy(scopeID string) Policy {
	return Policy{
		ScopeID:         scopeID,
		AgeThreshold:    0,
		AgeUnit:         AgeUnitSeconds,
		RejoinThreshold: 0,
		FieldOrder:      DefaultFieldOrder,
		AlertEntities:   []Mentionable{},
		AlertChannels:   []string{},
	}
}

// HasChannel reports whether channelID is a configured alert channel.
func (p *Policy) HasChannel(channelID string) bool {
	return slices.Contains(p.AlertChannels, channelID)
}

// EntityIndex returns the index of the alert entity with the given ID, or -1.
func (p *Policy) EntityIndex(id string) int {
	return slices.IndexFunc(p.AlertEntities, func(m Mentionable) bool { return m.ID == id })
}

// EntityTokens returns the stored form of every alert entity.
func (p *Policy) EntityTokens() []string {
	out := make([]string, len(p.AlertEntities))
	for i, m := range p.AlertEntities {
		out[i] = m.Token()
	}
	return out
}

// PolicyUpdate is a partial policy change. Nil fields are left untouched.
type PolicyUpdate struct {
	AgeThreshold    *float64
	AgeUnit         *AgeUnit
	RejoinThreshold *int
	FieldOrder      *FieldOrder
	AlertEntities   *[]Mentionable
	AlertChannels   *[]string
}

// IsEmpty reports whether the update changes nothing.
func (u PolicyUpdate) IsEmpty() bool {
	return u.AgeThreshold == nil && u.AgeUnit == nil && u.RejoinThreshold == nil &&
		u.FieldOrder == nil && u.AlertEntities == nil && u.AlertChannels == nil
}

// Validate checks every set field.
func (u PolicyUpdate) Validate() error {
	var errs []FieldError

	if u.AgeThreshold != nil && *u.AgeThreshold < 0 {
		errs = append(errs, FieldError{Field: "age_threshold", Message: "must not be negative"})
	}
	if u.AgeUnit != nil && !u.AgeUnit.IsValid() {
		errs = append(errs, FieldError{Field: "age_unit", Message: "unknown unit"})
	}
	if u.RejoinThreshold != nil && *u.RejoinThreshold < 0 {
		errs = append(errs, FieldError{Field: "rejoin_threshold", Message: "must not be negative"})
	}
	if u.FieldOrder != nil {
		if err := u.FieldOrder.Validate(); err != nil {
			errs = append(errs, FieldError{Field: "report_field_order", Message: "must list each field once"})
		}
	}
	if u.AlertEntities != nil {
		for _, m := range *u.AlertEntities {
			if m.ID == "" {
				errs = append(errs, FieldError{Field: "alert_entities", Message: "empty id"})
				break
			}
		}
	}
	if u.AlertChannels != nil {
		for _, c := range *u.AlertChannels {
			if c == "" {
				errs = append(errs, FieldError{Field: "alert_channels", Message: "empty id"})
				break
			}
		}
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Apply returns a copy of p with the update applied.
func (u PolicyUpdate) Apply(p Policy) Policy {
	if u.AgeThreshold != nil {
		p.AgeThreshold = *u.AgeThreshold
	}
	if u.AgeUnit != nil {
		p.AgeUnit = *u.AgeUnit
	}
	if u.RejoinThreshold != nil {
		p.RejoinThreshold = *u.RejoinThreshold
	}
	if u.FieldOrder != nil {
		p.FieldOrder = *u.FieldOrder
	}
	if u.AlertEntities != nil {
		p.AlertEntities = slices.Clone(*u.AlertEntities)
	}
	if u.AlertChannels != nil {
		p.AlertChannels = slices.Clone(*u.AlertChannels)
	}
	return p
}
