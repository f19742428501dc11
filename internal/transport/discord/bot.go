package discord

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"

	"github.com/heartmarshall/watchlist-backend/internal/config"
)

// NewSession creates a gateway session with the intents the watchlist needs.
// The connection is not opened.
func NewSession(cfg config.DiscordConfig) (*discordgo.Session, error) {
	if err := cfg.RequireToken(); err != nil {
		return nil, err
	}
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers
	s.StateEnabled = true
	return s, nil
}

// Bot owns the gateway connection and forwards its events to a Handler.
type Bot struct {
	sess    *discordgo.Session
	handler *Handler
	log     *slog.Logger

	connected atomic.Bool

	mu       sync.Mutex
	removers []func()
}

// NewBot creates a new Bot.
func NewBot(log *slog.Logger, sess *discordgo.Session, handler *Handler) *Bot {
	return &Bot{
		sess:    sess,
		handler: handler,
		log:     log.With("component", "gateway"),
	}
}

// Start registers the event handlers and opens the gateway connection.
// Handlers run with ctx as their parent context.
func (b *Bot) Start(ctx context.Context) error {
	b.mu.Lock()
	b.removers = append(b.removers,
		b.sess.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
			appID := r.User.ID
			if r.Application != nil && r.Application.ID != "" {
				appID = r.Application.ID
			}
			b.handler.SetApplicationID(appID)
			b.connected.Store(true)
			b.log.InfoContext(ctx, "gateway ready",
				slog.String("user", r.User.Username),
				slog.Int("guilds", len(r.Guilds)),
			)
		}),
		b.sess.AddHandler(func(_ *discordgo.Session, _ *discordgo.Resumed) {
			b.connected.Store(true)
			b.log.InfoContext(ctx, "gateway resumed")
		}),
		b.sess.AddHandler(func(_ *discordgo.Session, _ *discordgo.Disconnect) {
			b.connected.Store(false)
			b.log.WarnContext(ctx, "gateway disconnected")
		}),
		b.sess.AddHandler(func(_ *discordgo.Session, e *discordgo.GuildMemberAdd) {
			b.handler.MemberAdd(ctx, e.Member)
		}),
		b.sess.AddHandler(func(_ *discordgo.Session, e *discordgo.GuildMemberRemove) {
			b.handler.MemberRemove(ctx, e.Member)
		}),
		b.sess.AddHandler(func(_ *discordgo.Session, e *discordgo.GuildCreate) {
			b.handler.GuildCreate(ctx, e.Guild)
		}),
		b.sess.AddHandler(func(_ *discordgo.Session, e *discordgo.GuildDelete) {
			b.handler.GuildDelete(ctx, e.Guild)
		}),
		b.sess.AddHandler(func(_ *discordgo.Session, e *discordgo.InteractionCreate) {
			b.handler.Interaction(ctx, e.Interaction)
		}),
	)
	b.mu.Unlock()

	if err := b.sess.Open(); err != nil {
		return fmt.Errorf("open gateway: %w", err)
	}
	return nil
}

// Close removes the handlers and closes the gateway connection.
func (b *Bot) Close() error {
	b.mu.Lock()
	for _, remove := range b.removers {
		remove()
	}
	b.removers = nil
	b.mu.Unlock()

	b.connected.Store(false)
	if err := b.sess.Close(); err != nil {
		return fmt.Errorf("close gateway: %w", err)
	}
	return nil
}

// Connected reports whether the gateway session is up.
func (b *Bot) Connected() bool {
	return b.connected.Load()
}
