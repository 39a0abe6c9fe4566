package app

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/vinhson/vinhson-web/internal/domain"
	"github.com/vinhson/vinhson-web/internal/platform/telemetry"
	"github.com/vinhson/vinhson-web/internal/ports"
)

var _ ports.RevalidationService = (*RevalidationService)(nil)

// RevalidationService acknowledges CMS publish webhooks. Cached pages expire
// through their Cache-Control lifetimes, so acknowledging is all it does.
type RevalidationService struct {
	secret  string
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewRevalidationService creates a RevalidationService. metrics may be nil.
func NewRevalidationService(secret string, metrics *telemetry.Metrics, logger *slog.Logger) *RevalidationService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RevalidationService{secret: secret, metrics: metrics, logger: logger}
}

// Acknowledge validates the webhook secret and records the notification.
func (s *RevalidationService) Acknowledge(ctx context.Context, n ports.Revalidation) error {
	if !secretMatches(n.Secret, s.secret) {
		s.logger.WarnContext(ctx, "revalidation rejected",
			slog.String("type", n.Type),
			slog.String("reason", "invalid token"),
		)
		s.record(ctx, n.Type, "rejected")
		return fmt.Errorf("revalidation secret mismatch: %w", domain.ErrUnauthorized)
	}

	s.logger.InfoContext(ctx, "revalidation acknowledged",
		slog.String("type", n.Type),
		slog.String("slug", n.Slug),
	)
	s.record(ctx, n.Type, "acknowledged")
	return nil
}

func (s *RevalidationService) record(ctx context.Context, docType, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.RevalidationTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrDocumentType.String(docType),
		telemetry.AttrResult.String(result),
	))
}
