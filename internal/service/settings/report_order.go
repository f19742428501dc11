package settings

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
)

// SetReportOrder changes which report field leads and how the rest follow.
func (s *Service) SetReportOrder(ctx context.Context, input SetReportOrderInput) (*Confirmation, error) {
	order, err := input.parse()
	if err != nil {
		return nil, err
	}

	p, err := s.update(ctx, input.ScopeID, domain.PolicyUpdate{FieldOrder: &order})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "report order updated",
		slog.String("scope_id", input.ScopeID),
		slog.String("report_field_order", strings.Join(order.Strings(), "|")),
	)

	var b strings.Builder
	b.WriteString("Updated the Watchlist report display style:")
	for i, k := range order {
		fmt.Fprintf(&b, "\n%d. `%s`", i+1, k.Label())
	}
	return s.announce(ctx, p, b.String(), input.ChannelID)
}
