package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/calmora/internal/logger"
	"github.com/MKhiriev/calmora/internal/utils"
	"github.com/MKhiriev/calmora/models"
)

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, log, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	email, _ := utils.GetSessionEmailFromContext(ctx)
	reply, err := h.services.ChatService.Reply(ctx, email, req.Message)
	if err != nil {
		writeError(w, log, err)
		return
	}

	utils.WriteMessage(w, reply, http.StatusOK)
}
