package settings

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
)

// SetAgePolicyInput sets the account-age rule.
type SetAgePolicyInput struct {
	ScopeID string
	// ChannelID is where the command was issued.
	ChannelID string
	Threshold float64
	Unit      string
}

func (i SetAgePolicyInput) parse() (domain.AgeUnit, error) {
	var errs []domain.FieldError
	if i.ScopeID == "" {
		errs = append(errs, domain.FieldError{Field: "scope_id", Message: "required"})
	}
	if i.Threshold < 0 {
		errs = append(errs, domain.FieldError{Field: "time_range",
			Message: fmt.Sprintf("RangeValueError: The value `time_range: %s` must not be negative!", formatNumber(i.Threshold))})
	}
	unit, ok := domain.ParseAgeUnit(i.Unit)
	if !ok {
		errs = append(errs, domain.FieldError{Field: "time_unit",
			Message: fmt.Sprintf("UnitValueError: The value `time_unit: %s` is invalid!", i.Unit)})
	}
	if len(errs) > 0 {
		return "", domain.NewValidationErrors(errs)
	}
	return unit, nil
}

// SetRejoinPolicyInput sets the rejoin-frequency rule.
type SetRejoinPolicyInput struct {
	ScopeID   string
	ChannelID string
	Threshold int
}

func (i SetRejoinPolicyInput) Validate() error {
	var errs []domain.FieldError
	if i.ScopeID == "" {
		errs = append(errs, domain.FieldError{Field: "scope_id", Message: "required"})
	}
	if i.Threshold < 0 {
		errs = append(errs, domain.FieldError{Field: "join_frequency",
			Message: fmt.Sprintf("RangeValueError: The value `join_frequency: %d` must not be negative!", i.Threshold)})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SetReportOrderInput sets the report layout.
type SetReportOrderInput struct {
	ScopeID   string
	ChannelID string
	Fields    []string
}

func (i SetReportOrderInput) parse() (domain.FieldOrder, error) {
	if i.ScopeID == "" {
		return domain.FieldOrder{}, domain.NewValidationError("scope_id", "required")
	}
	order, err := domain.ParseFieldOrder(i.Fields)
	if err != nil {
		return domain.FieldOrder{}, domain.NewValidationError("report_field_order",
			"InvalidStyleError: One of the provided options is invalid!")
	}
	return order, nil
}

// AlertAction is an operation on the alert destination lists.
type AlertAction string

const (
	ActionAdd    AlertAction = "Add"
	ActionList   AlertAction = "List"
	ActionRemove AlertAction = "Remove"
)

// AlertActions lists every action in display order.
var AlertActions = []AlertAction{ActionAdd, ActionList, ActionRemove}

// ParseAlertAction accepts an action name in any case.
func ParseAlertAction(s string) (AlertAction, bool) {
	for _, a := range AlertActions {
		if strings.EqualFold(strings.TrimSpace(s), string(a)) {
			return a, true
		}
	}
	return "", false
}

// Target is an alert destination: a channel or a mentionable entity.
type Target struct {
	Channel string
	Entity  *domain.Mentionable
}

// TypeName is the lower-case kind shown to users ("channel", "user", "role").
func (t Target) TypeName() string {
	if t.Entity != nil {
		return string(t.Entity.Kind)
	}
	return "channel"
}

// Marker renders the target as a platform reference.
func (t Target) Marker() string {
	if t.Entity != nil {
		return t.Entity.Mention()
	}
	return domain.ChannelMention(t.Channel)
}

// AlertActionInput is the raw alert command.
type AlertActionInput struct {
	ScopeID   string
	ChannelID string
	Action    string
	Target    Target
}

func (i AlertActionInput) parse() (AlertAction, error) {
	if i.ScopeID == "" {
		return "", domain.NewValidationError("scope_id", "required")
	}
	action, ok := ParseAlertAction(i.Action)
	if !ok {
		return "", domain.NewValidationError("action",
			fmt.Sprintf("ActionValueError: The provided value `action: %s` is invalid!", i.Action))
	}
	if action == ActionList {
		return action, nil
	}
	if err := i.Target.validate(); err != nil {
		return "", err
	}
	return action, nil
}

func (t Target) validate() error {
	hasEntity := t.Entity != nil && t.Entity.ID != ""
	switch {
	case t.Channel == "" && !hasEntity:
		return domain.NewValidationError("target",
			"NonOptionalFieldError: No channel or mentionable entity was provided!")
	case t.Channel != "" && hasEntity:
		return domain.NewValidationError("target",
			"FieldCountError: You can only provide one selection at a time!")
	case hasEntity && t.Entity.Kind == domain.MentionUnknown:
		return domain.NewValidationError("entity",
			"EntityTypeError: The provided entity must be a user or a role!")
	}
	return nil
}

// DemoAlertInput describes a sample alert.
type DemoAlertInput struct {
	ScopeID   string
	ChannelID string
	Kind      string
	Subject   domain.Subject
	// AccountCreatedAt is the subject's account creation time.
	AccountCreatedAt time.Time
	// TargetChannel limits delivery to one channel. Empty means every
	// configured alert channel.
	TargetChannel string
}

func (i DemoAlertInput) parse() (domain.EventKind, error) {
	var errs []domain.FieldError
	if i.ScopeID == "" {
		errs = append(errs, domain.FieldError{Field: "scope_id", Message: "required"})
	}
	if i.Subject.ID == "" {
		errs = append(errs, domain.FieldError{Field: "user", Message: "required"})
	}
	kind, ok := domain.ParseEventKind(strings.ToLower(strings.TrimSpace(i.Kind)))
	if !ok {
		errs = append(errs, domain.FieldError{Field: "kind",
			Message: fmt.Sprintf("KindValueError: The provided value `kind: %s` is invalid!", i.Kind)})
	}
	if len(errs) > 0 {
		return "", domain.NewValidationErrors(errs)
	}
	return kind, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
