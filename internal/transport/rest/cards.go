package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/lunarbyte/flashdeck-backend/internal/domain"
	"github.com/lunarbyte/flashdeck-backend/internal/service/collection"
)

type collectionService interface {
	ArchiveCard(ctx context.Context, input collection.ArchiveCardInput) error
	UnarchiveCard(ctx context.Context, input collection.ArchiveCardInput) error
}

// CardHandler serves card archive toggle endpoints.
type CardHandler struct {
	svc collectionService
	log *slog.Logger
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(svc collectionService, log *slog.Logger) *CardHandler {
	return &CardHandler{svc: svc, log: log}
}

// Archive handles POST /api/v1/cards/{id}/archive.
func (h *CardHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.ArchiveCard)
}

// Unarchive handles POST /api/v1/cards/{id}/unarchive.
func (h *CardHandler) Unarchive(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.UnarchiveCard)
}

func (h *CardHandler) toggle(w http.ResponseWriter, r *http.Request, fn func(context.Context, collection.ArchiveCardInput) error) {
	cardID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(r.Context(), w, h.log, domain.NewValidationError("card_id", "must be a UUID"))
		return
	}

	if err := fn(r.Context(), collection.ArchiveCardInput{CardID: cardID}); err != nil {
		writeError(r.Context(), w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
