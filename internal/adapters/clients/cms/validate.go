package cms

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vinhson/vinhson-web/internal/domain"
)

// validatable is the constraint satisfied by every translated CMS document.
type validatable[T any] interface {
	*T
	Validate() error
	Preview() domain.DocumentPreview
}

// keepValid drops list entries that break the schema rules. The CMS studio
// enforces the same rules, so a dropped entry means the dataset was written
// around it; the warning names the entry the way the studio lists it.
func keepValid[T any, P validatable[T]](ctx context.Context, logger *slog.Logger, kind string, docs []T) []T {
	out := docs[:0]
	for i := range docs {
		if err := P(&docs[i]).Validate(); err != nil {
			warnInvalid(ctx, logger, kind, P(&docs[i]), err)
			continue
		}
		out = append(out, docs[i])
	}
	return out
}

// checkOne validates a single document. Outside preview an invalid
// document is reported as not found; drafts are rendered as they are.
func (c *Client) checkOne(ctx context.Context, kind, slug string, doc interface {
	Validate() error
	Preview() domain.DocumentPreview
},
) error {
	err := doc.Validate()
	if err == nil {
		return nil
	}
	warnInvalid(ctx, c.logger, kind, doc, err)
	if c.req.perspective == PerspectivePreviewDrafts {
		return nil
	}
	return fmt.Errorf("%s %s: %v: %w", kind, slug, err, domain.ErrNotFound)
}

func warnInvalid(ctx context.Context, logger *slog.Logger, kind string, doc interface {
	Preview() domain.DocumentPreview
}, err error,
) {
	pv := doc.Preview()
	logger.WarnContext(ctx, "invalid cms document",
		slog.String("type", kind),
		slog.String("title", pv.Title),
		slog.String("subtitle", pv.Subtitle),
		slog.String("error", err.Error()),
	)
}
