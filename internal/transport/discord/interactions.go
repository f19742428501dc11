package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
	"github.com/heartmarshall/watchlist-backend/internal/service/settings"
)

// User-facing replies that are not produced by the settings service.
const (
	replyCommandFailed = "There was an error while executing this command!"
	replyGuildOnly     = "This command can only be used in a server."
	replyUnknown       = "Unknown command."
	replySyncOK        = "Successfully reloaded bot commands."
	replySyncFailed    = "Failed to reload bot commands."
	replyResetDone     = "Reset the Watchlist settings and join counts for this server."
)

// Interaction routes a slash command or an autocomplete request.
func (h *Handler) Interaction(ctx context.Context, in *discordgo.Interaction) {
	if in == nil {
		return
	}
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	switch in.Type {
	case discordgo.InteractionApplicationCommand:
		h.command(ctx, in)
	case discordgo.InteractionApplicationCommandAutocomplete:
		h.autocomplete(ctx, in)
	}
}

func (h *Handler) command(ctx context.Context, in *discordgo.Interaction) {
	defer func() {
		if r := recover(); r != nil {
			h.recoverPanic(ctx, "command", in.GuildID, r)
			h.respond(ctx, in, []settings.Reply{{Content: replyCommandFailed, Ephemeral: true}})
		}
	}()

	if in.GuildID == "" {
		h.respond(ctx, in, []settings.Reply{{Content: replyGuildOnly, Ephemeral: true}})
		return
	}

	data := in.ApplicationCommandData()
	replies, err := h.runCommand(ctx, in, data)
	if err != nil {
		replies = h.errorReplies(ctx, in, data.Name, err)
	}
	h.respond(ctx, in, replies)
}

func (h *Handler) runCommand(ctx context.Context, in *discordgo.Interaction, data discordgo.ApplicationCommandInteractionData) ([]settings.Reply, error) {
	switch data.Name {
	case CommandWatchlist:
		if len(data.Options) == 0 || data.Options[0] == nil {
			return []settings.Reply{{Content: replyUnknown, Ephemeral: true}}, nil
		}
		sub := data.Options[0]
		return h.watchlistCommand(ctx, in, data.Resolved, sub.Name, newOptionSet(sub.Options))
	case CommandStyle:
		opts := newOptionSet(data.Options)
		conf, err := h.settings.SetReportOrder(ctx, settings.SetReportOrderInput{
			ScopeID:   in.GuildID,
			ChannelID: in.ChannelID,
			Fields:    []string{opts.str(OptFirst), opts.str(OptSecond), opts.str(OptThird)},
		})
		return confirmationReplies(conf, err)
	case CommandSync:
		if err := h.SyncCommands(ctx, in.GuildID); err != nil {
			h.log.ErrorContext(ctx, "sync commands", slog.String("scope_id", in.GuildID), slog.String("error", err.Error()))
			return []settings.Reply{{Content: replySyncFailed, Ephemeral: true}}, nil
		}
		return []settings.Reply{{Content: replySyncOK, Ephemeral: true}}, nil
	}
	return []settings.Reply{{Content: replyUnknown, Ephemeral: true}}, nil
}

func (h *Handler) watchlistCommand(
	ctx context.Context,
	in *discordgo.Interaction,
	resolved *discordgo.ApplicationCommandInteractionDataResolved,
	sub string,
	opts optionSet,
) ([]settings.Reply, error) {
	switch sub {
	case SubAccounts:
		conf, err := h.settings.SetAgePolicy(ctx, settings.SetAgePolicyInput{
			ScopeID:   in.GuildID,
			ChannelID: in.ChannelID,
			Threshold: opts.number(OptTimeRange),
			Unit:      opts.str(OptTimeUnit),
		})
		return confirmationReplies(conf, err)

	case SubPingers:
		conf, err := h.settings.SetRejoinPolicy(ctx, settings.SetRejoinPolicyInput{
			ScopeID:   in.GuildID,
			ChannelID: in.ChannelID,
			Threshold: opts.integer(OptJoinFrequency),
		})
		return confirmationReplies(conf, err)

	case SubAlert:
		target := settings.Target{Channel: opts.str(OptChannel)}
		if id := opts.str(OptEntity); id != "" {
			target.Entity = &domain.Mentionable{ID: id, Kind: mentionableKind(resolved, id)}
		}
		conf, err := h.settings.ApplyAlertAction(ctx, settings.AlertActionInput{
			ScopeID:   in.GuildID,
			ChannelID: in.ChannelID,
			Action:    opts.str(OptAction),
			Target:    target,
		})
		return confirmationReplies(conf, err)

	case SubReset:
		if _, err := h.settings.ResetScope(ctx, in.GuildID); err != nil {
			return nil, err
		}
		return []settings.Reply{{Content: replyResetDone, Ephemeral: true}}, nil

	case SubDemo:
		input, err := demoInput(in, resolved, opts)
		if err != nil {
			return nil, err
		}
		conf, err := h.settings.TriggerDemoAlert(ctx, input)
		return confirmationReplies(conf, err)
	}
	return []settings.Reply{{Content: replyUnknown, Ephemeral: true}}, nil
}

// demoInput reports on the selected user, or the invoking member.
func demoInput(in *discordgo.Interaction, resolved *discordgo.ApplicationCommandInteractionDataResolved, opts optionSet) (settings.DemoAlertInput, error) {
	var (
		u *discordgo.User
		m *discordgo.Member
	)
	if id := opts.str(OptUser); id != "" && resolved != nil {
		u = resolved.Users[id]
		m = resolved.Members[id]
	}
	if u == nil && in.Member != nil {
		u, m = in.Member.User, in.Member
	}
	if u == nil {
		u = in.User
	}
	if u == nil {
		return settings.DemoAlertInput{}, domain.NewValidationError("user", "required")
	}

	created, err := discordgo.SnowflakeTimestamp(u.ID)
	if err != nil {
		return settings.DemoAlertInput{}, fmt.Errorf("user %q: %w", u.ID, err)
	}
	return settings.DemoAlertInput{
		ScopeID:          in.GuildID,
		ChannelID:        in.ChannelID,
		Kind:             opts.str(OptKind),
		Subject:          subject(u, m),
		AccountCreatedAt: created,
		TargetChannel:    opts.str(OptChannel),
	}, nil
}

func confirmationReplies(conf *settings.Confirmation, err error) ([]settings.Reply, error) {
	if err != nil {
		return nil, err
	}
	return conf.Replies(), nil
}

// errorReplies turns validation errors into their user-facing messages.
// Anything else is logged and answered with the generic failure text.
func (h *Handler) errorReplies(ctx context.Context, in *discordgo.Interaction, command string, err error) []settings.Reply {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve.Errors))
		for _, fe := range ve.Errors {
			msgs = append(msgs, fe.Message)
		}
		return []settings.Reply{{Content: strings.Join(msgs, "\n"), Ephemeral: true}}
	}

	h.log.ErrorContext(ctx, "command failed",
		slog.String("scope_id", in.GuildID),
		slog.String("command", command),
		slog.String("error", err.Error()),
	)
	return []settings.Reply{{Content: replyCommandFailed, Ephemeral: true}}
}

// respond sends the first reply as the interaction response and the rest
// as follow-ups. Replies never ping anyone.
func (h *Handler) respond(ctx context.Context, in *discordgo.Interaction, replies []settings.Reply) {
	noPings := &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}}

	for i, r := range replies {
		var flags discordgo.MessageFlags
		if r.Ephemeral {
			flags = discordgo.MessageFlagsEphemeral
		}

		var err error
		if i == 0 {
			err = h.sess.InteractionRespond(in, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{
					Content:         r.Content,
					Flags:           flags,
					AllowedMentions: noPings,
				},
			}, discordgo.WithContext(ctx))
		} else {
			_, err = h.sess.FollowupMessageCreate(in, true, &discordgo.WebhookParams{
				Content:         r.Content,
				Flags:           flags,
				AllowedMentions: noPings,
			}, discordgo.WithContext(ctx))
		}
		if err != nil {
			h.log.WarnContext(ctx, "interaction reply failed",
				slog.String("scope_id", in.GuildID),
				slog.Int("reply", i),
				slog.String("error", err.Error()),
			)
			return
		}
	}
}

func (h *Handler) autocomplete(ctx context.Context, in *discordgo.Interaction) {
	defer func() {
		if r := recover(); r != nil {
			h.recoverPanic(ctx, "autocomplete", in.GuildID, r)
		}
	}()

	data := in.ApplicationCommandData()
	opts := newOptionSet(data.Options)
	if data.Name == CommandWatchlist && len(data.Options) > 0 && data.Options[0] != nil {
		opts = newOptionSet(data.Options[0].Options)
	}

	var choices []*discordgo.ApplicationCommandOptionChoice
	if focused, ok := opts.focused(); ok {
		typed, _ := focused.Value.(string)
		choices = Suggest(data.Name, focused.Name, typed, opts.values())
	}

	err := h.sess.InteractionRespond(in, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	}, discordgo.WithContext(ctx))
	if err != nil {
		h.log.WarnContext(ctx, "autocomplete reply failed",
			slog.String("scope_id", in.GuildID),
			slog.String("error", err.Error()),
		)
	}
}
