// Package discord connects the watchlist to the Discord gateway: member
// events feed the evaluation engine, slash commands feed the settings
// service, and alerts are delivered as channel messages with one embed.
package discord

import (
	"errors"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

// session is the subset of *discordgo.Session the adapter calls.
type session interface {
	GuildBan(guildID, userID string, options ...discordgo.RequestOption) (*discordgo.GuildBan, error)
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	GuildRoles(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

var _ session = (*discordgo.Session)(nil)

// isNotFound reports whether err is a REST 404.
func isNotFound(err error) bool {
	var rest *discordgo.RESTError
	if errors.As(err, &rest) && rest.Response != nil {
		return rest.Response.StatusCode == http.StatusNotFound
	}
	return false
}
