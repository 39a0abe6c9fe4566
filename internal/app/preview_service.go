package app

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.opentelemetry.io/otel/metric"

	"github.com/vinhson/vinhson-web/internal/domain"
	"github.com/vinhson/vinhson-web/internal/platform/telemetry"
	"github.com/vinhson/vinhson-web/internal/ports"
)

var _ ports.PreviewService = (*PreviewService)(nil)

// previewSubject is the JWT subject of preview session tokens.
const previewSubject = "preview"

// PreviewOptions configures preview sessions.
type PreviewOptions struct {
	Secret     string
	CookieName string
	MaxAge     time.Duration
	// Secure marks the cookie Secure; set when the site is served over https.
	Secure bool
}

// PreviewService issues and verifies preview session cookies. The cookie
// carries an HS256 token signed with the shared preview secret, so a client
// cannot switch preview on by setting the cookie by hand.
type PreviewService struct {
	opts    PreviewOptions
	metrics *telemetry.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// NewPreviewService creates a PreviewService. metrics may be nil.
func NewPreviewService(opts PreviewOptions, metrics *telemetry.Metrics, logger *slog.Logger) *PreviewService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PreviewService{
		opts:    opts,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// secretMatches compares in constant time. An empty secret never matches.
func secretMatches(got, want string) bool {
	if got == "" || want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

// Enter validates the secret and starts a preview session.
func (s *PreviewService) Enter(ctx context.Context, req ports.PreviewRequest) (*http.Cookie, string, error) {
	if !secretMatches(req.Secret, s.opts.Secret) {
		s.logger.WarnContext(ctx, "preview rejected", slog.String("reason", "invalid token"))
		s.record(ctx, "rejected")
		return nil, "", fmt.Errorf("preview secret mismatch: %w", domain.ErrUnauthorized)
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   previewSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.opts.MaxAge)),
	})
	signed, err := token.SignedString([]byte(s.opts.Secret))
	if err != nil {
		return nil, "", fmt.Errorf("signing preview token: %w", err)
	}

	locale := domain.LocaleOrDefault(req.Locale)
	redirect := PreviewRedirect(locale, req.Type, req.Slug)

	s.logger.InfoContext(ctx, "preview session started",
		slog.String("type", req.Type),
		slog.String("slug", req.Slug),
		slog.String("locale", locale.String()),
	)
	s.record(ctx, "started")

	return &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(s.opts.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}, redirect, nil
}

// Exit returns a cookie that deletes the preview session.
func (s *PreviewService) Exit(ctx context.Context) *http.Cookie {
	s.logger.InfoContext(ctx, "preview session ended")
	return &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Verify reports whether value is an unexpired token signed with the
// preview secret.
func (s *PreviewService) Verify(value string) bool {
	if value == "" {
		return false
	}
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(value, &claims, func(*jwt.Token) (any, error) {
		return []byte(s.opts.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(previewSubject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	return err == nil
}

// CookieName returns the preview cookie name.
func (s *PreviewService) CookieName() string {
	return s.opts.CookieName
}

func (s *PreviewService) record(ctx context.Context, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.PreviewSessionTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrResult.String(result),
	))
}

// PreviewRedirect returns the page a preview session opens on. Unknown types
// and empty slugs land on the locale home page.
func PreviewRedirect(locale domain.Locale, docType, slug string) string {
	slug = strings.Trim(slug, "/")
	if slug == "" {
		return "/" + locale.String()
	}
	if docType == "" {
		docType = "page"
	}
	switch docType {
	case "product":
		return "/" + locale.String() + "/products/" + slug
	case "post":
		return "/" + locale.String() + "/blog/" + slug
	case "page":
		return "/" + locale.String() + "/" + slug
	default:
		return "/" + locale.String()
	}
}
