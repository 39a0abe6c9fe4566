package handlers

import (
	"errors"
	"net/http"

	"github.com/vinhson/vinhson-web/internal/adapters/http/dto"
	"github.com/vinhson/vinhson-web/internal/domain"
	"github.com/vinhson/vinhson-web/internal/ports"
)

// RevalidateHandler receives the CMS publish webhook.
type RevalidateHandler struct {
	svc ports.RevalidationService
}

// NewRevalidateHandler creates a new RevalidateHandler with the given service port.
func NewRevalidateHandler(svc ports.RevalidationService) *RevalidateHandler {
	return &RevalidateHandler{svc: svc}
}

// Revalidate handles POST /api/revalidate.
func (h *RevalidateHandler) Revalidate(w http.ResponseWriter, r *http.Request) {
	var req dto.RevalidateRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeJSON(w, r, http.StatusInternalServerError, dto.RevalidateErrorResponse{
			Message: dto.MsgRevalidateFailed,
			Error:   err.Error(),
		})
		return
	}

	err := h.svc.Acknowledge(r.Context(), ports.Revalidation{
		Secret: req.Secret,
		Type:   req.Type,
		Slug:   req.Slug,
	})
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, r, http.StatusUnauthorized, dto.MessageResponse{Message: dto.MsgInvalidToken})
	case err != nil:
		writeJSON(w, r, http.StatusInternalServerError, dto.RevalidateErrorResponse{
			Message: dto.MsgRevalidateFailed,
			Error:   err.Error(),
		})
	default:
		writeJSON(w, r, http.StatusOK, dto.NewRevalidateResponse(&req))
	}
}
