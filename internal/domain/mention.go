package domain

import "strings"

// MentionKind discriminates mentionable alert entities.
type MentionKind string

const (
	// MentionUnknown marks entities stored before the kind was recorded.
	// They are classified by lookup at delivery time.
	MentionUnknown    MentionKind = ""
	MentionIndividual MentionKind = "user"
	MentionGroup      MentionKind = "role"
)

func (k MentionKind) IsValid() bool {
	switch k {
	case MentionUnknown, MentionIndividual, MentionGroup:
		return true
	}
	return false
}

// Mentionable is an alert entity: an individual or a group to notify.
type Mentionable struct {
	ID   string
	Kind MentionKind
}

// Token is the stored form: "<kind>:<id>", or the bare ID when the kind is unknown.
func (m Mentionable) Token() string {
	if m.Kind == MentionUnknown {
		return m.ID
	}
	return string(m.Kind) + ":" + m.ID
}

// ParseMentionable decodes a stored token. Bare IDs decode to MentionUnknown.
func ParseMentionable(token string) Mentionable {
	token = strings.TrimSpace(token)
	kind, id, ok := strings.Cut(token, ":")
	if !ok {
		return Mentionable{ID: token}
	}
	k := MentionKind(kind)
	if !k.IsValid() {
		return Mentionable{ID: token}
	}
	return Mentionable{ID: id, Kind: k}
}

// Mention renders the platform mention marker. Unknown kinds fall back to
// the individual form.
func (m Mentionable) Mention() string {
	return MentionFor(m.ID, m.Kind)
}

// MentionFor renders a mention marker for id of the given kind.
func MentionFor(id string, kind MentionKind) string {
	if kind == MentionGroup {
		return "<@&" + id + ">"
	}
	return "<@" + id + ">"
}

// ChannelMention renders a channel reference marker.
func ChannelMention(id string) string {
	return "<#" + id + ">"
}
