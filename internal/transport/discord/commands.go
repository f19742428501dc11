package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
	"github.com/heartmarshall/watchlist-backend/internal/service/settings"
)

// Command and option names.
const (
	CommandWatchlist = "watchlist"
	CommandStyle     = "style"
	CommandSync      = "sync"

	SubAccounts = "accounts"
	SubPingers  = "pingers"
	SubAlert    = "alert"
	SubReset    = "reset"
	SubDemo     = "demo"

	OptTimeRange     = "time_range"
	OptTimeUnit      = "time_unit"
	OptJoinFrequency = "join_frequency"
	OptAction        = "action"
	OptChannel       = "channel"
	OptEntity        = "entity"
	OptKind          = "kind"
	OptUser          = "user"
	OptFirst         = "first"
	OptSecond        = "second"
	OptThird         = "third"
)

// maxChoices is the platform's limit for autocomplete results.
const maxChoices = 25

// Commands returns the slash commands registered in every guild.
func Commands() []*discordgo.ApplicationCommand {
	manageGuild := int64(discordgo.PermissionManageServer)
	zero := 0.0
	textChannels := []discordgo.ChannelType{discordgo.ChannelTypeGuildText}

	return []*discordgo.ApplicationCommand{
		{
			Name:                     CommandWatchlist,
			Description:              "Configure the member watchlist",
			DefaultMemberPermissions: &manageGuild,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubAccounts,
					Description: "Watch for user accounts younger than a given age",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionNumber, Name: OptTimeRange, Description: "Account age threshold (0 disables)", Required: true, MinValue: &zero},
						{Type: discordgo.ApplicationCommandOptionString, Name: OptTimeUnit, Description: "Unit of the threshold", Required: true, Autocomplete: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubPingers,
					Description: "Watch for users who frequently leave and rejoin",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionInteger, Name: OptJoinFrequency, Description: "Number of joins to exceed (0 disables)", Required: true, MinValue: &zero},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubAlert,
					Description: "Manage the Watchlist-Alert channels and mentions",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: OptAction, Description: "Add, List or Remove", Required: true, Autocomplete: true},
						{Type: discordgo.ApplicationCommandOptionChannel, Name: OptChannel, Description: "Alert channel", ChannelTypes: textChannels},
						{Type: discordgo.ApplicationCommandOptionMentionable, Name: OptEntity, Description: "User or role to mention"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubReset,
					Description: "Reset the watchlist settings and join counts",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubDemo,
					Description: "Send a sample Watchlist report",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type: discordgo.ApplicationCommandOptionString, Name: OptKind, Description: "Report type", Required: true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Joined", Value: string(domain.EventArrival)},
								{Name: "Left", Value: string(domain.EventDeparture)},
								{Name: "Banned", Value: string(domain.EventRemoval)},
							},
						},
						{Type: discordgo.ApplicationCommandOptionUser, Name: OptUser, Description: "Member to report on (defaults to you)"},
						{Type: discordgo.ApplicationCommandOptionChannel, Name: OptChannel, Description: "Send only to this channel", ChannelTypes: textChannels},
					},
				},
			},
		},
		{
			Name:                     CommandStyle,
			Description:              "Set the Watchlist report display order",
			DefaultMemberPermissions: &manageGuild,
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: OptFirst, Description: "Shown first, as the headline", Required: true, Autocomplete: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: OptSecond, Description: "Shown second", Required: true, Autocomplete: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: OptThird, Description: "Shown third", Required: true, Autocomplete: true},
			},
		},
		{
			Name:                     CommandSync,
			Description:              "Reload the bot commands in this server",
			DefaultMemberPermissions: &manageGuild,
		},
	}
}

// unitChoices are the accepted time_unit values ("Seconds" .. "Years").
func unitChoices() []string {
	out := make([]string, len(domain.AgeUnits))
	for i, u := range domain.AgeUnits {
		s := u.String()
		out[i] = strings.ToUpper(s[:1]) + s[1:]
	}
	return out
}

func actionChoices() []string {
	out := make([]string, len(settings.AlertActions))
	for i, a := range settings.AlertActions {
		out[i] = string(a)
	}
	return out
}

func styleChoices() []string {
	out := make([]string, len(domain.FieldKinds))
	for i, k := range domain.FieldKinds {
		out[i] = k.String()
	}
	return out
}

// Suggest returns the autocomplete choices for the focused option.
// picked holds the values of the command's other options.
func Suggest(command, option, typed string, picked map[string]string) []*discordgo.ApplicationCommandOptionChoice {
	switch {
	case command == CommandWatchlist && option == OptTimeUnit:
		return filterChoices(unitChoices(), typed, nil)
	case command == CommandWatchlist && option == OptAction:
		return filterChoices(actionChoices(), typed, nil)
	case command == CommandStyle && option == OptSecond:
		return filterChoices(styleChoices(), typed, []string{picked[OptFirst]})
	case command == CommandStyle && option == OptThird:
		return filterChoices(styleChoices(), typed, []string{picked[OptFirst], picked[OptSecond]})
	case command == CommandStyle:
		return filterChoices(styleChoices(), typed, nil)
	}
	return []*discordgo.ApplicationCommandOptionChoice{}
}

// filterChoices keeps the candidates whose value or label starts with typed
// (any case) and that are not excluded. Labels show underscores as spaces.
func filterChoices(candidates []string, typed string, exclude []string) []*discordgo.ApplicationCommandOptionChoice {
	typed = strings.ToLower(strings.TrimSpace(typed))
	out := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(candidates))
	for _, c := range candidates {
		if contains(exclude, c) {
			continue
		}
		label := strings.ReplaceAll(c, "_", " ")
		if !strings.HasPrefix(strings.ToLower(c), typed) && !strings.HasPrefix(strings.ToLower(label), typed) {
			continue
		}
		out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: label, Value: c})
		if len(out) == maxChoices {
			break
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v != "" && v == s {
			return true
		}
	}
	return false
}
