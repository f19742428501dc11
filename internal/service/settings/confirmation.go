package settings

import (
	"context"
	"fmt"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
)

// NoChannelsNote is appended when a change could not be announced anywhere.
const NoChannelsNote = "**NOTE:** No Watchlist log channels are configured!"

// Confirmation is the user-facing result of a command.
type Confirmation struct {
	Message string
	// Announced is set when Message was broadcast to the alert channels.
	Announced bool
	// Public is set when the command came from an alert channel; the
	// answer there doubles as that channel's announcement.
	Public      bool
	NoChannels  bool
	Unreachable []string
}

// Reply is one interaction response.
type Reply struct {
	Content   string
	Ephemeral bool
}

// Replies returns the responses to send, in order: the first answers the
// command, the rest are follow-ups.
func (c *Confirmation) Replies() []Reply {
	errs := make([]string, len(c.Unreachable))
	for i, id := range c.Unreachable {
		errs[i] = UnreachableText(id)
	}

	var out []Reply
	switch {
	case !c.Announced:
		content := c.Message
		for _, e := range errs {
			content += "\n" + e
		}
		return []Reply{{Content: content, Ephemeral: true}}
	case c.NoChannels:
		return []Reply{{Content: c.Message + "\n" + NoChannelsNote, Ephemeral: true}}
	case c.Public:
		out = append(out, Reply{Content: c.Message})
	case len(errs) > 0:
		out = append(out, Reply{Content: c.Message + "\n" + errs[0], Ephemeral: true})
		errs = errs[1:]
	default:
		out = append(out, Reply{Content: "Done!", Ephemeral: true})
	}

	for _, e := range errs {
		out = append(out, Reply{Content: e, Ephemeral: true})
	}
	return out
}

// UnreachableText describes an alert channel that could not be written to.
func UnreachableText(channelID string) string {
	return fmt.Sprintf("Error: The configured Watchlist log channel (ID: %s) doesn't seem to exist.", channelID)
}

// announce broadcasts msg to the alert channels of p. When the command was
// issued from one of them, that channel is answered in place instead.
func (s *Service) announce(ctx context.Context, p *domain.Policy, msg, invokingChannel string) (*Confirmation, error) {
	c := &Confirmation{Message: msg, Announced: true}
	if len(p.AlertChannels) == 0 {
		c.NoChannels = true
		return c, nil
	}

	skip := ""
	if invokingChannel != "" && p.HasChannel(invokingChannel) {
		c.Public = true
		skip = invokingChannel
	}

	res, err := s.announcer.Broadcast(ctx, p, msg, skip)
	if err != nil {
		return nil, fmt.Errorf("announce: %w", err)
	}
	c.Unreachable = skippedIDs(res)
	return c, nil
}

func skippedIDs(res *domain.DispatchResult) []string {
	if res == nil {
		return nil
	}
	ids := make([]string, 0, len(res.Skipped))
	for _, sk := range res.Skipped {
		ids = append(ids, sk.ChannelID)
	}
	return ids
}
