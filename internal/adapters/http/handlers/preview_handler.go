package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vinhson/vinhson-web/internal/adapters/http/dto"
	"github.com/vinhson/vinhson-web/internal/domain"
	"github.com/vinhson/vinhson-web/internal/platform/logging"
	"github.com/vinhson/vinhson-web/internal/ports"
)

// PreviewHandler starts and ends draft preview sessions.
type PreviewHandler struct {
	svc ports.PreviewService
}

// NewPreviewHandler creates a new PreviewHandler with the given service port.
func NewPreviewHandler(svc ports.PreviewService) *PreviewHandler {
	return &PreviewHandler{svc: svc}
}

// Enter handles GET /api/preview?secret=&slug=&type=&locale=. A matching
// secret sets the session cookie and redirects to the previewed document.
func (h *PreviewHandler) Enter(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cookie, target, err := h.svc.Enter(r.Context(), ports.PreviewRequest{
		Secret: q.Get("secret"),
		Slug:   q.Get("slug"),
		Type:   q.Get("type"),
		Locale: q.Get("locale"),
	})
	if errors.Is(err, domain.ErrUnauthorized) {
		writeText(w, http.StatusUnauthorized, dto.MsgInvalidToken)
		return
	}
	if err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to start preview",
			slog.Any("error", err),
		)
		writeText(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	w.Header().Set("Cache-Control", cacheNoStore)
	http.SetCookie(w, cookie)
	http.Redirect(w, r, target, http.StatusFound)
}

// Exit handles GET /api/exit-preview. It clears the session cookie and
// redirects to the site root.
func (h *PreviewHandler) Exit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", cacheNoStore)
	http.SetCookie(w, h.svc.Exit(r.Context()))
	http.Redirect(w, r, "/", http.StatusFound)
}
