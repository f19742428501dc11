package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
)

// Directory resolves platform objects for the alert dispatcher. Lookups go
// to the gateway state cache first and fall back to REST.
type Directory struct {
	sess  session
	state *discordgo.State
}

// NewDirectory creates a Directory. state may be nil.
func NewDirectory(sess session, state *discordgo.State) *Directory {
	return &Directory{sess: sess, state: state}
}

// ResolveChannel returns the channel when it exists and belongs to scopeID.
func (d *Directory) ResolveChannel(ctx context.Context, scopeID, channelID string) (domain.Destination, error) {
	ch, err := d.channel(ctx, channelID)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("channel %s: %w: %w", channelID, domain.ErrDestinationUnreachable, err)
	}
	if ch.GuildID != scopeID {
		return domain.Destination{}, fmt.Errorf("channel %s belongs to guild %q: %w",
			channelID, ch.GuildID, domain.ErrDestinationUnreachable)
	}
	return domain.Destination{ScopeID: scopeID, ChannelID: ch.ID, Name: ch.Name}, nil
}

func (d *Directory) channel(ctx context.Context, channelID string) (*discordgo.Channel, error) {
	if d.state != nil {
		if ch, err := d.state.Channel(channelID); err == nil {
			return ch, nil
		}
	}
	return d.sess.Channel(channelID, discordgo.WithContext(ctx))
}

// ClassifyMentionable reports whether id is a role of scopeID (Group) or
// anything else (Individual).
func (d *Directory) ClassifyMentionable(ctx context.Context, scopeID, id string) (domain.MentionKind, error) {
	if d.state != nil {
		if _, err := d.state.Role(scopeID, id); err == nil {
			return domain.MentionGroup, nil
		}
	}

	roles, err := d.sess.GuildRoles(scopeID, discordgo.WithContext(ctx))
	if err != nil {
		return domain.MentionUnknown, fmt.Errorf("guild %s roles: %w", scopeID, err)
	}
	for _, r := range roles {
		if r.ID == id {
			return domain.MentionGroup, nil
		}
	}
	return domain.MentionIndividual, nil
}
