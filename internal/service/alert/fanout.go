package alert

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
	"github.com/heartmarshall/watchlist-backend/internal/metrics"
)

// fanOut delivers msg to every channel except skip, bounded by the
// configured concurrency and rate limit. Per-channel failures land in
// result.Skipped; only cancellation of ctx is returned.
func (d *Dispatcher) fanOut(
	ctx context.Context,
	scopeID string,
	channels []string,
	skip string,
	msg domain.Message,
	result *domain.DispatchResult,
) error {
	targets := uniqueChannels(channels, skip)
	errs := make([]error, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.cfg.Concurrency)
	for i, channelID := range targets {
		g.Go(func() error {
			errs[i] = d.deliver(gctx, scopeID, channelID, msg)
			return nil
		})
	}
	_ = g.Wait()

	for i, channelID := range targets {
		if errs[i] == nil {
			result.Delivered = append(result.Delivered, channelID)
			d.metrics.Delivery(metrics.DeliverySent)
			continue
		}
		result.Skipped = append(result.Skipped, domain.SkippedDestination{ChannelID: channelID, Err: errs[i]})
		d.metrics.Delivery(metrics.DeliverySkipped)
		d.log.WarnContext(ctx, "alert destination skipped",
			slog.String("scope_id", scopeID),
			slog.String("channel_id", channelID),
			slog.String("error", errs[i].Error()),
		)
	}

	return ctx.Err()
}

func (d *Dispatcher) deliver(ctx context.Context, scopeID, channelID string, msg domain.Message) error {
	dest, err := d.dir.ResolveChannel(ctx, scopeID, channelID)
	if err != nil {
		return unreachable(err)
	}

	if err := d.limiter.Wait(ctx); err != nil {
		return err
	}

	sendCtx := ctx
	if d.cfg.SendTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, d.cfg.SendTimeout)
		defer cancel()
	}
	if err := d.sender.Send(sendCtx, dest, msg); err != nil {
		return unreachable(err)
	}
	return nil
}

// uniqueChannels drops duplicates, empty IDs and skip, keeping order.
func uniqueChannels(channels []string, skip string) []string {
	seen := make(map[string]bool, len(channels))
	out := make([]string, 0, len(channels))
	for _, c := range channels {
		if c == "" || c == skip || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
