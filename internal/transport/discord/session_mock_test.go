package discord

import (
	"github.com/bwmarrin/discordgo"
	"sync"
)

var _ session = &sessionMock{}

type sessionMock struct {
	ApplicationCommandBulkOverwriteFunc func(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
	ChannelFunc                         func(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendComplexFunc       func(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	FollowupMessageCreateFunc           func(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
	GuildBanFunc                        func(guildID string, userID string, options ...discordgo.RequestOption) (*discordgo.GuildBan, error)
	GuildRolesFunc                      func(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error)
	InteractionRespondFunc              func(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error

	calls struct {
		ApplicationCommandBulkOverwrite []struct {
			AppID    string
			GuildID  string
			Commands []*discordgo.ApplicationCommand
			Options  []discordgo.RequestOption
		}
		Channel []struct {
			ChannelID string
			Options   []discordgo.RequestOption
		}
		ChannelMessageSendComplex []struct {
			ChannelID string
			Data      *discordgo.MessageSend
			Options   []discordgo.RequestOption
		}
		FollowupMessageCreate []struct {
			Interaction *discordgo.Interaction
			Wait        bool
			Data        *discordgo.WebhookParams
			Options     []discordgo.RequestOption
		}
		GuildBan []struct {
			GuildID string
			UserID  string
			Options []discordgo.RequestOption
		}
		GuildRoles []struct {
			GuildID string
			Options []discordgo.RequestOption
		}
		InteractionRespond []struct {
			Interaction *discordgo.Interaction
			Resp        *discordgo.InteractionResponse
			Options     []discordgo.RequestOption
		}
	}
	lockApplicationCommandBulkOverwrite sync.RWMutex
	lockChannel                         sync.RWMutex
	lockChannelMessageSendComplex       sync.RWMutex
	lockFollowupMessageCreate           sync.RWMutex
	lockGuildBan                        sync.RWMutex
	lockGuildRoles                      sync.RWMutex
	lockInteractionRespond              sync.RWMutex
}

func (mock *sessionMock) ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	if mock.ApplicationCommandBulkOverwriteFunc == nil {
		panic("sessionMock.ApplicationCommandBulkOverwriteFunc: method is nil but session.ApplicationCommandBulkOverwrite was just called")
	}
	callInfo := struct {
		AppID    string
		GuildID  string
		Commands []*discordgo.ApplicationCommand
		Options  []discordgo.RequestOption
	}{AppID: appID, GuildID: guildID, Commands: commands, Options: options}
	mock.lockApplicationCommandBulkOverwrite.Lock()
	mock.calls.ApplicationCommandBulkOverwrite = append(mock.calls.ApplicationCommandBulkOverwrite, callInfo)
	mock.lockApplicationCommandBulkOverwrite.Unlock()
	return mock.ApplicationCommandBulkOverwriteFunc(appID, guildID, commands, options...)
}

func (mock *sessionMock) ApplicationCommandBulkOverwriteCalls() []struct {
	AppID    string
	GuildID  string
	Commands []*discordgo.ApplicationCommand
	Options  []discordgo.RequestOption
} {
	mock.lockApplicationCommandBulkOverwrite.RLock()
	calls := mock.calls.ApplicationCommandBulkOverwrite
	mock.lockApplicationCommandBulkOverwrite.RUnlock()
	return calls
}

func (mock *sessionMock) Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if mock.ChannelFunc == nil {
		panic("sessionMock.ChannelFunc: method is nil but session.Channel was just called")
	}
	callInfo := struct {
		ChannelID string
		Options   []discordgo.RequestOption
	}{ChannelID: channelID, Options: options}
	mock.lockChannel.Lock()
	mock.calls.Channel = append(mock.calls.Channel, callInfo)
	mock.lockChannel.Unlock()
	return mock.ChannelFunc(channelID, options...)
}

func (mock *sessionMock) ChannelCalls() []struct {
	ChannelID string
	Options   []discordgo.RequestOption
} {
	mock.lockChannel.RLock()
	calls := mock.calls.Channel
	mock.lockChannel.RUnlock()
	return calls
}

func (mock *sessionMock) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	if mock.ChannelMessageSendComplexFunc == nil {
		panic("sessionMock.ChannelMessageSendComplexFunc: method is nil but session.ChannelMessageSendComplex was just called")
	}
	callInfo := struct {
		ChannelID string
		Data      *discordgo.MessageSend
		Options   []discordgo.RequestOption
	}{ChannelID: channelID, Data: data, Options: options}
	mock.lockChannelMessageSendComplex.Lock()
	mock.calls.ChannelMessageSendComplex = append(mock.calls.ChannelMessageSendComplex, callInfo)
	mock.lockChannelMessageSendComplex.Unlock()
	return mock.ChannelMessageSendComplexFunc(channelID, data, options...)
}

func (mock *sessionMock) ChannelMessageSendComplexCalls() []struct {
	ChannelID string
	Data      *discordgo.MessageSend
	Options   []discordgo.RequestOption
} {
	mock.lockChannelMessageSendComplex.RLock()
	calls := mock.calls.ChannelMessageSendComplex
	mock.lockChannelMessageSendComplex.RUnlock()
	return calls
}

func (mock *sessionMock) FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	if mock.FollowupMessageCreateFunc == nil {
		panic("sessionMock.FollowupMessageCreateFunc: method is nil but session.FollowupMessageCreate was just called")
	}
	callInfo := struct {
		Interaction *discordgo.Interaction
		Wait        bool
		Data        *discordgo.WebhookParams
		Options     []discordgo.RequestOption
	}{Interaction: interaction, Wait: wait, Data: data, Options: options}
	mock.lockFollowupMessageCreate.Lock()
	mock.calls.FollowupMessageCreate = append(mock.calls.FollowupMessageCreate, callInfo)
	mock.lockFollowupMessageCreate.Unlock()
	return mock.FollowupMessageCreateFunc(interaction, wait, data, options...)
}

func (mock *sessionMock) FollowupMessageCreateCalls() []struct {
	Interaction *discordgo.Interaction
	Wait        bool
	Data        *discordgo.WebhookParams
	Options     []discordgo.RequestOption
} {
	mock.lockFollowupMessageCreate.RLock()
	calls := mock.calls.FollowupMessageCreate
	mock.lockFollowupMessageCreate.RUnlock()
	return calls
}

func (mock *sessionMock) GuildBan(guildID string, userID string, options ...discordgo.RequestOption) (*discordgo.GuildBan, error) {
	if mock.GuildBanFunc == nil {
		panic("sessionMock.GuildBanFunc: method is nil but session.GuildBan was just called")
	}
	callInfo := struct {
		GuildID string
		UserID  string
		Options []discordgo.RequestOption
	}{GuildID: guildID, UserID: userID, Options: options}
	mock.lockGuildBan.Lock()
	mock.calls.GuildBan = append(mock.calls.GuildBan, callInfo)
	mock.lockGuildBan.Unlock()
	return mock.GuildBanFunc(guildID, userID, options...)
}

func (mock *sessionMock) GuildBanCalls() []struct {
	GuildID string
	UserID  string
	Options []discordgo.RequestOption
} {
	mock.lockGuildBan.RLock()
	calls := mock.calls.GuildBan
	mock.lockGuildBan.RUnlock()
	return calls
}

func (mock *sessionMock) GuildRoles(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error) {
	if mock.GuildRolesFunc == nil {
		panic("sessionMock.GuildRolesFunc: method is nil but session.GuildRoles was just called")
	}
	callInfo := struct {
		GuildID string
		Options []discordgo.RequestOption
	}{GuildID: guildID, Options: options}
	mock.lockGuildRoles.Lock()
	mock.calls.GuildRoles = append(mock.calls.GuildRoles, callInfo)
	mock.lockGuildRoles.Unlock()
	return mock.GuildRolesFunc(guildID, options...)
}

func (mock *sessionMock) GuildRolesCalls() []struct {
	GuildID string
	Options []discordgo.RequestOption
} {
	mock.lockGuildRoles.RLock()
	calls := mock.calls.GuildRoles
	mock.lockGuildRoles.RUnlock()
	return calls
}

func (mock *sessionMock) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error {
	if mock.InteractionRespondFunc == nil {
		panic("sessionMock.InteractionRespondFunc: method is nil but session.InteractionRespond was just called")
	}
	callInfo := struct {
		Interaction *discordgo.Interaction
		Resp        *discordgo.InteractionResponse
		Options     []discordgo.RequestOption
	}{Interaction: interaction, Resp: resp, Options: options}
	mock.lockInteractionRespond.Lock()
	mock.calls.InteractionRespond = append(mock.calls.InteractionRespond, callInfo)
	mock.lockInteractionRespond.Unlock()
	return mock.InteractionRespondFunc(interaction, resp, options...)
}

func (mock *sessionMock) InteractionRespondCalls() []struct {
	Interaction *discordgo.Interaction
	Resp        *discordgo.InteractionResponse
	Options     []discordgo.RequestOption
} {
	mock.lockInteractionRespond.RLock()
	calls := mock.calls.InteractionRespond
	mock.lockInteractionRespond.RUnlock()
	return calls
}
