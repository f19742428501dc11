package domain

import (
	"fmt"
	"strings"
)

// FieldKind is one of the three report sections. The string values are the
// tags persisted in the report field order column.
type FieldKind string

const (
	FieldAccountAge    FieldKind = "Account_Age"
	FieldSubjectInfo   FieldKind = "User_Info"
	FieldJoinFrequency FieldKind = "Join_Frequency"
)

// FieldKinds lists every report field kind in default order.
var FieldKinds = []FieldKind{FieldAccountAge, FieldSubjectInfo, FieldJoinFrequency}

func (k FieldKind) String() string { return string(k) }

func (k FieldKind) IsValid() bool {
	switch k {
	case FieldAccountAge, FieldSubjectInfo, FieldJoinFrequency:
		return true
	}
	return false
}

// Label is the human-readable name ("Account Age").
func (k FieldKind) Label() string {
	return strings.ReplaceAll(string(k), "_", " ")
}

// ParseFieldKind accepts the stored tag or its label in any case
// ("Account_Age", "account age", "AccountAge").
func ParseFieldKind(s string) (FieldKind, bool) {
	norm := normalizeFieldKind(s)
	for _, k := range FieldKinds {
		if normalizeFieldKind(string(k)) == norm {
			return k, true
		}
	}
	return "", false
}

func normalizeFieldKind(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", " ", "", "-", "").Replace(s)
}

// FieldOrder is the report layout: always a permutation of the three field kinds.
type FieldOrder [3]FieldKind

// DefaultFieldOrder is the layout of a freshly created policy.
var DefaultFieldOrder = FieldOrder{FieldAccountAge, FieldSubjectInfo, FieldJoinFrequency}

// NewFieldOrder builds a FieldOrder and checks that it is a permutation.
func NewFieldOrder(first, second, third FieldKind) (FieldOrder, error) {
	o := FieldOrder{first, second, third}
	if err := o.Validate(); err != nil {
		return FieldOrder{}, err
	}
	return o, nil
}

// ParseFieldOrder parses exactly three field names into a FieldOrder.
func ParseFieldOrder(parts []string) (FieldOrder, error) {
	if len(parts) != len(FieldOrder{}) {
		return FieldOrder{}, NewValidationError("report_field_order",
			fmt.Sprintf("expected %d fields, got %d", len(FieldOrder{}), len(parts)))
	}
	var o FieldOrder
	for i, p := range parts {
		k, ok := ParseFieldKind(p)
		if !ok {
			return FieldOrder{}, NewValidationError("report_field_order",
				fmt.Sprintf("unknown field %q", p))
		}
		o[i] = k
	}
	if err := o.Validate(); err != nil {
		return FieldOrder{}, err
	}
	return o, nil
}

// Validate reports whether o holds each known field kind exactly once.
func (o FieldOrder) Validate() error {
	seen := make(map[FieldKind]bool, len(o))
	for _, k := range o {
		if !k.IsValid() {
			return NewValidationError("report_field_order", fmt.Sprintf("unknown field %q", k))
		}
		if seen[k] {
			return NewValidationError("report_field_order", fmt.Sprintf("field %q repeated", k))
		}
		seen[k] = true
	}
	return nil
}

// Headline is the field rendered as the report's lead section.
func (o FieldOrder) Headline() FieldKind { return o[0] }

// Body returns the two fields that follow the headline, in order.
func (o FieldOrder) Body() []FieldKind { return []FieldKind{o[1], o[2]} }

// Strings returns the stored tags in order.
func (o FieldOrder) Strings() []string {
	out := make([]string, len(o))
	for i, k := range o {
		out[i] = string(k)
	}
	return out
}
