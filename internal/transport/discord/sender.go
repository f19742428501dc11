package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
)

// Sender posts messages to channels.
type Sender struct {
	sess session
}

// NewSender creates a Sender.
func NewSender(sess session) *Sender {
	return &Sender{sess: sess}
}

// Send posts msg to dest. Alerts ping their mentions; plain notices never do.
func (s *Sender) Send(ctx context.Context, dest domain.Destination, msg domain.Message) error {
	data := &discordgo.MessageSend{
		Content:         msg.Content,
		AllowedMentions: &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}},
	}
	if msg.Report != nil {
		data.Embeds = []*discordgo.MessageEmbed{RenderEmbed(msg.Report)}
		data.AllowedMentions.Parse = []discordgo.AllowedMentionType{
			discordgo.AllowedMentionTypeUsers,
			discordgo.AllowedMentionTypeRoles,
		}
	}

	if _, err := s.sess.ChannelMessageSendComplex(dest.ChannelID, data, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send to channel %s: %w", dest.ChannelID, err)
	}
	return nil
}
