package rest

import "net/http"

// RouterDeps holds the handlers required to build the HTTP mux.
type RouterDeps struct {
	Study  *StudyHandler
	Cards  *CardHandler
	Health *HealthHandler
}

// NewRouter builds the application mux. Study and card routes live under
// /api/v1 and expect an authenticated user in the request context; health
// probes are unauthenticated.
func NewRouter(deps RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/collections/{id}/study-sessions", deps.Study.SubmitSession)
	mux.HandleFunc("GET /api/v1/collections/{id}/stats", deps.Study.CollectionStats)
	mux.HandleFunc("GET /api/v1/dashboard", deps.Study.Dashboard)

	mux.HandleFunc("POST /api/v1/cards/{id}/archive", deps.Cards.Archive)
	mux.HandleFunc("POST /api/v1/cards/{id}/unarchive", deps.Cards.Unarchive)

	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /health/live", deps.Health.Live)
	mux.HandleFunc("GET /health/ready", deps.Health.Ready)

	return mux
}
