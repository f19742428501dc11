package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
)

// MemberAdd evaluates a member joining a guild.
func (h *Handler) MemberAdd(ctx context.Context, m *discordgo.Member) {
	defer func() {
		if r := recover(); r != nil {
			h.recoverPanic(ctx, "member_add", memberScope(m), r)
		}
	}()
	if m == nil || m.User == nil {
		return
	}
	h.evaluate(ctx, m, domain.EventArrival)
}

// MemberRemove evaluates a member leaving a guild. A ban on record turns
// the departure into a removal.
func (h *Handler) MemberRemove(ctx context.Context, m *discordgo.Member) {
	defer func() {
		if r := recover(); r != nil {
			h.recoverPanic(ctx, "member_remove", memberScope(m), r)
		}
	}()
	if m == nil || m.User == nil {
		return
	}
	if m.User.Bot && h.cfg.IgnoreBots {
		return
	}
	h.evaluate(ctx, m, h.removalKind(ctx, m.GuildID, m.User.ID))
}

func (h *Handler) removalKind(ctx context.Context, guildID, userID string) domain.EventKind {
	_, err := h.sess.GuildBan(guildID, userID, discordgo.WithContext(ctx))
	switch {
	case err == nil:
		return domain.EventRemoval
	case isNotFound(err):
		return domain.EventDeparture
	default:
		h.log.WarnContext(ctx, "ban lookup failed, treating as departure",
			slog.String("scope_id", guildID),
			slog.String("subject_id", userID),
			slog.String("error", err.Error()),
		)
		return domain.EventDeparture
	}
}

func (h *Handler) evaluate(ctx context.Context, m *discordgo.Member, kind domain.EventKind) {
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	ev, err := memberEvent(m, kind)
	if err != nil {
		h.log.WarnContext(ctx, "unusable member event",
			slog.String("scope_id", m.GuildID),
			slog.String("event_kind", kind.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	if _, err := h.engine.Evaluate(ctx, ev); err != nil {
		if errors.Is(err, domain.ErrIgnoredEvent) {
			return
		}
		h.log.ErrorContext(ctx, "member event failed",
			slog.String("scope_id", ev.ScopeID),
			slog.String("subject_id", ev.Subject.ID),
			slog.String("event_kind", kind.String()),
			slog.String("error", err.Error()),
		)
	}
}

// memberEvent builds an engine event. The account creation time is
// encoded in the user's snowflake.
func memberEvent(m *discordgo.Member, kind domain.EventKind) (domain.Event, error) {
	created, err := discordgo.SnowflakeTimestamp(m.User.ID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("user %q: %w", m.User.ID, err)
	}
	return domain.Event{
		ScopeID:          m.GuildID,
		Subject:          subject(m.User, m),
		Kind:             kind,
		AccountCreatedAt: created,
	}, nil
}

// subject snapshots a user. m may be nil.
func subject(u *discordgo.User, m *discordgo.Member) domain.Subject {
	name := u.GlobalName
	if m != nil && m.Nick != "" {
		name = m.Nick
	}
	if name == "" {
		name = u.Username
	}
	return domain.Subject{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: name,
		AvatarURL:   u.AvatarURL(""),
		Bot:         u.Bot,
	}
}

// GuildCreate makes sure the guild has a policy and, when enabled,
// registers the slash commands there.
func (h *Handler) GuildCreate(ctx context.Context, g *discordgo.Guild) {
	defer func() {
		if r := recover(); r != nil {
			h.recoverPanic(ctx, "guild_create", guildScope(g), r)
		}
	}()
	if g == nil || g.ID == "" {
		return
	}
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	if _, err := h.settings.EnsureScope(ctx, g.ID); err != nil {
		h.log.ErrorContext(ctx, "ensure scope", slog.String("scope_id", g.ID), slog.String("error", err.Error()))
	}
	if h.cfg.SyncCommands {
		if err := h.SyncCommands(ctx, g.ID); err != nil {
			h.log.ErrorContext(ctx, "sync commands", slog.String("scope_id", g.ID), slog.String("error", err.Error()))
		}
	}
}

// GuildDelete resets the guild's data when the bot is removed from it.
// Outages also deliver GuildDelete, marked unavailable; those are ignored.
func (h *Handler) GuildDelete(ctx context.Context, g *discordgo.Guild) {
	defer func() {
		if r := recover(); r != nil {
			h.recoverPanic(ctx, "guild_delete", guildScope(g), r)
		}
	}()
	if g == nil || g.ID == "" || g.Unavailable {
		return
	}
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	if _, err := h.settings.ResetScope(ctx, g.ID); err != nil {
		h.log.ErrorContext(ctx, "reset scope", slog.String("scope_id", g.ID), slog.String("error", err.Error()))
	}
}

// SyncCommands replaces the guild's slash commands with the current set.
func (h *Handler) SyncCommands(ctx context.Context, guildID string) error {
	appID := h.applicationID()
	if appID == "" {
		return errors.New("application id not known yet")
	}
	if _, err := h.sess.ApplicationCommandBulkOverwrite(appID, guildID, Commands(), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("overwrite commands: %w", err)
	}
	h.log.InfoContext(ctx, "commands synced", slog.String("scope_id", guildID))
	return nil
}

func memberScope(m *discordgo.Member) string {
	if m == nil {
		return ""
	}
	return m.GuildID
}

func guildScope(g *discordgo.Guild) string {
	if g == nil {
		return ""
	}
	return g.ID
}
