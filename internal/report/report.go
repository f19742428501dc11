// Package report renders alerts into a platform-neutral report layout.
// Everything here is pure: the same input always yields the same report.
package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
)

// Footer is the text shown under every report.
const Footer = "Watchlist Report"

// Field labels.
const (
	LabelAccountAge  = "Account Age"
	LabelJoins       = "Number of Joins"
	LabelDisplayName = "Display Name"
	LabelUsername    = "Username"
	LabelSubjectID   = "User ID"
)

// Style is the per-kind presentation of a report.
type Style struct {
	Title string
	Icon  string
	Color int
}

var styles = map[domain.EventKind]Style{
	domain.EventArrival:   {Title: "Joined The Server", Icon: ":inbox_tray:", Color: 0x1b901b},
	domain.EventDeparture: {Title: "Left The Server", Icon: ":outbox_tray:", Color: 0x921c1c},
	domain.EventRemoval:   {Title: "Banned From Server", Icon: ":skull_crossbones:", Color: 0x000000},
}

// StyleFor returns the presentation for kind.
func StyleFor(kind domain.EventKind) (Style, bool) {
	s, ok := styles[kind]
	return s, ok
}

// Input is everything a report shows.
type Input struct {
	Kind        domain.EventKind
	Subject     domain.Subject
	AccountAge  float64
	AgeUnit     domain.AgeUnit
	RejoinCount int
	Timestamp   time.Time
}

// ForAlert formats an alert request with its own field order.
func ForAlert(a *domain.AlertRequest) domain.Report {
	return Format(a.FieldOrder, Input{
		Kind:        a.Kind,
		Subject:     a.Subject,
		AccountAge:  a.MetricValue,
		AgeUnit:     a.MetricUnit,
		RejoinCount: a.RejoinCount,
		Timestamp:   a.CreatedAt,
	})
}

// Format lays out the report. The first field of order becomes the
// headline and the other two follow, each behind a spacer. SubjectInfo has
// no summary value: when it comes first it leads the body between two
// spacers and the remaining fields follow it back to back.
func Format(order domain.FieldOrder, in Input) domain.Report {
	style := styles[in.Kind]

	r := domain.Report{
		Kind:      in.Kind,
		Title:     style.Title,
		Icon:      style.Icon,
		Color:     style.Color,
		Author:    in.Subject.Username,
		AvatarURL: in.Subject.AvatarURL,
		Footer:    Footer,
		Timestamp: in.Timestamp,
	}

	spacer := domain.Section{Spacer: true}
	switch order.Headline() {
	case domain.FieldAccountAge:
		r.Headline = &domain.Headline{Label: LabelAccountAge, Value: AgeText(in.AccountAge, in.AgeUnit)}
	case domain.FieldJoinFrequency:
		r.Headline = &domain.Headline{Label: LabelJoins, Value: strconv.Itoa(in.RejoinCount)}
	default:
		r.Sections = []domain.Section{spacer, section(order[0], in), spacer}
		for _, k := range order.Body() {
			r.Sections = append(r.Sections, section(k, in))
		}
		return r
	}

	for _, k := range order.Body() {
		r.Sections = append(r.Sections, spacer, section(k, in))
	}
	return r
}

func section(k domain.FieldKind, in Input) domain.Section {
	switch k {
	case domain.FieldAccountAge:
		return domain.Section{Kind: k, Fields: []domain.Field{
			{Name: LabelAccountAge, Value: AgeText(in.AccountAge, in.AgeUnit)},
		}}
	case domain.FieldJoinFrequency:
		return domain.Section{Kind: k, Fields: []domain.Field{
			{Name: LabelJoins, Value: strconv.Itoa(in.RejoinCount)},
		}}
	default:
		return domain.Section{Kind: domain.FieldSubjectInfo, Fields: []domain.Field{
			{Name: LabelDisplayName, Value: domain.MentionFor(in.Subject.ID, domain.MentionIndividual), Inline: true},
			{Name: LabelUsername, Value: in.Subject.Username, Inline: true},
			{Name: LabelSubjectID, Value: in.Subject.ID, Inline: true},
		}}
	}
}

// AgeText renders an age with two decimals and a proper-cased unit that is
// singular when the rendered value is exactly one ("1.00 Day", "2.50 Days").
func AgeText(age float64, unit domain.AgeUnit) string {
	v := strconv.FormatFloat(age, 'f', 2, 64)
	name := string(unit)
	if v == "1.00" {
		name = unit.Singular()
	}
	return v + " " + properCase(name)
}

func properCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
