package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
)

// optionSet indexes interaction options by name. Accessors never panic on
// a missing option or an unexpected value type.
type optionSet map[string]*discordgo.ApplicationCommandInteractionDataOption

func newOptionSet(opts []*discordgo.ApplicationCommandInteractionDataOption) optionSet {
	set := make(optionSet, len(opts))
	for _, o := range opts {
		if o != nil {
			set[o.Name] = o
		}
	}
	return set
}

func (o optionSet) has(name string) bool {
	_, ok := o[name]
	return ok
}

// str returns string and snowflake (channel, user, role, mentionable) values.
func (o optionSet) str(name string) string {
	opt, ok := o[name]
	if !ok {
		return ""
	}
	s, _ := opt.Value.(string)
	return s
}

func (o optionSet) number(name string) float64 {
	opt, ok := o[name]
	if !ok {
		return 0
	}
	switch v := opt.Value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func (o optionSet) integer(name string) int {
	return int(o.number(name))
}

// focused returns the option the user is typing in, if any.
func (o optionSet) focused() (*discordgo.ApplicationCommandInteractionDataOption, bool) {
	for _, opt := range o {
		if opt.Focused {
			return opt, true
		}
	}
	return nil, false
}

// values returns every string-valued option, for autocomplete exclusion.
func (o optionSet) values() map[string]string {
	out := make(map[string]string, len(o))
	for name := range o {
		out[name] = o.str(name)
	}
	return out
}

// mentionableKind classifies a mentionable option by the resolved data the
// platform sends along with the interaction.
func mentionableKind(resolved *discordgo.ApplicationCommandInteractionDataResolved, id string) domain.MentionKind {
	if resolved == nil {
		return domain.MentionUnknown
	}
	if _, ok := resolved.Roles[id]; ok {
		return domain.MentionGroup
	}
	if _, ok := resolved.Users[id]; ok {
		return domain.MentionIndividual
	}
	return domain.MentionUnknown
}
