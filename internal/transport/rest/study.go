package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/lunarbyte/flashdeck-backend/internal/domain"
	"github.com/lunarbyte/flashdeck-backend/internal/service/study"
)

type studyService interface {
	SubmitSession(ctx context.Context, input study.SubmitSessionInput) (*domain.SessionSummary, error)
	GetDashboard(ctx context.Context) (domain.Dashboard, error)
	GetCollectionStats(ctx context.Context, input study.GetCollectionStatsInput) (domain.CollectionStats, error)
}

// StudyHandler serves study session submission and statistics endpoints.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, log *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: log}
}

type studyResultPayload struct {
	FlashcardID uuid.UUID `json:"flashcardId"`
	Grade       int       `json:"grade"`
	StudiedAt   time.Time `json:"studiedAt"`
}

type submitSessionRequest struct {
	Results []studyResultPayload `json:"results"`
}

// sessionSummaryResponse is the wire contract for a processed session.
// Field names are fixed for client compatibility.
type sessionSummaryResponse struct {
	MasteryLevel   float64     `json:"masteryLevel"`
	LastStudied    *time.Time  `json:"lastStudied"`
	TotalCards     int         `json:"totalCards"`
	MasteredCards  int         `json:"masteredCards"`
	CurrentStreak  int         `json:"currentStreak"`
	BestStreak     int         `json:"bestStreak"`
	SkippedCardIDs []uuid.UUID `json:"skippedCardIds,omitempty"`
}

// SubmitSession handles POST /api/v1/collections/{id}/study-sessions.
func (h *StudyHandler) SubmitSession(w http.ResponseWriter, r *http.Request) {
	collectionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(r.Context(), w, h.log, domain.NewValidationError("collection_id", "must be a UUID"))
		return
	}

	var req submitSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(r.Context(), w, h.log, domain.NewValidationError("body", "invalid JSON"))
		return
	}

	input := study.SubmitSessionInput{
		CollectionID: collectionID,
		Results:      make([]domain.StudyResult, 0, len(req.Results)),
	}
	for _, res := range req.Results {
		input.Results = append(input.Results, domain.StudyResult{
			FlashcardID: res.FlashcardID,
			Grade:       res.Grade,
			StudiedAt:   res.StudiedAt,
		})
	}

	summary, err := h.svc.SubmitSession(r.Context(), input)
	if err != nil {
		writeError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionSummaryResponse{
		MasteryLevel:   summary.MasteryLevel,
		LastStudied:    summary.LastStudied,
		TotalCards:     summary.TotalCards,
		MasteredCards:  summary.MasteredCards,
		CurrentStreak:  summary.CurrentStreak,
		BestStreak:     summary.BestStreak,
		SkippedCardIDs: summary.SkippedCardIDs,
	})
}

type collectionStatsResponse struct {
	TotalCards    int `json:"totalCards"`
	DueCards      int `json:"dueCards"`
	ArchivedCards int `json:"archivedCards"`
	MasteredCards int `json:"masteredCards"`
}

// CollectionStats handles GET /api/v1/collections/{id}/stats.
func (h *StudyHandler) CollectionStats(w http.ResponseWriter, r *http.Request) {
	collectionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(r.Context(), w, h.log, domain.NewValidationError("collection_id", "must be a UUID"))
		return
	}

	stats, err := h.svc.GetCollectionStats(r.Context(), study.GetCollectionStatsInput{CollectionID: collectionID})
	if err != nil {
		writeError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, collectionStatsResponse{
		TotalCards:    stats.TotalCards,
		DueCards:      stats.DueCards,
		ArchivedCards: stats.ArchivedCards,
		MasteredCards: stats.MasteredCards,
	})
}

type dashboardResponse struct {
	Collections   int        `json:"collections"`
	TotalCards    int        `json:"totalCards"`
	DueCards      int        `json:"dueCards"`
	ArchivedCards int        `json:"archivedCards"`
	MasteredCards int        `json:"masteredCards"`
	MasteryLevel  int        `json:"masteryLevel"`
	CurrentStreak int        `json:"currentStreak"`
	BestStreak    int        `json:"bestStreak"`
	LastStudied   *time.Time `json:"lastStudied"`
}

// Dashboard handles GET /api/v1/dashboard.
func (h *StudyHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.svc.GetDashboard(r.Context())
	if err != nil {
		writeError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		Collections:   dashboard.Collections,
		TotalCards:    dashboard.TotalCards,
		DueCards:      dashboard.DueCards,
		ArchivedCards: dashboard.ArchivedCards,
		MasteredCards: dashboard.MasteredCards,
		MasteryLevel:  dashboard.MasteryLevel,
		CurrentStreak: dashboard.CurrentStreak,
		BestStreak:    dashboard.BestStreak,
		LastStudied:   dashboard.LastStudied,
	})
}
