// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dexterix/rosterd/internal/adapters/decode"
	repository "github.com/dexterix/rosterd/internal/adapters/repository"
	service "github.com/dexterix/rosterd/internal/app"
	"github.com/dexterix/rosterd/internal/domain/model"
	"github.com/dexterix/rosterd/internal/domain/types"
)

// Report shapes returned by the upload endpoints.
type (
	ImportReport = service.ImportReport
	ScoreReport  = service.ScoreReport
)

// Entry mirrors the read shape returned by leaderboard queries.
type Entry = types.Entry

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	ImportRoster(ctx context.Context, data []byte, kind decode.Kind) (ImportReport, error)
	ReconcileScores(ctx context.Context, data []byte, kind decode.Kind) (ScoreReport, error)

	Teams(ctx context.Context) ([]model.Team, error)
	TopN(ctx context.Context, n int) ([]Entry, error)

	DeleteTeam(ctx context.Context, id string) error
	DeleteAllTeams(ctx context.Context) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	rosterHandler      *RosterHandler
	scoresHandler      *ScoresHandler
	teamsHandler       *TeamsHandler
	leaderboardHandler *LeaderboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxUploadBytes int64, maxLeaderboardLimit int) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		rosterHandler:      NewRosterHandler(deps, maxUploadBytes),
		scoresHandler:      NewScoresHandler(deps, maxUploadBytes),
		teamsHandler:       NewTeamsHandler(deps),
		leaderboardHandler: NewLeaderboardHandler(deps, maxLeaderboardLimit),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/teams", MetricsMiddleware(s.teamsHandler.HandleGetTeams, "teams"))
	mux.HandleFunc("/leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	mux.HandleFunc("/admin/roster", MetricsMiddleware(s.rosterHandler.HandleUploadRoster, "admin_roster"))
	mux.HandleFunc("/admin/scores", MetricsMiddleware(s.scoresHandler.HandleUploadScores, "admin_scores"))
	mux.HandleFunc("/admin/teams", MetricsMiddleware(s.teamsHandler.HandleDeleteTeams, "admin_teams"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates upstream not-found errors to 404.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

// isBadUpload translates decode failures to 400: the file itself is the
// problem, not the server.
func isBadUpload(err error) bool {
	return errors.Is(err, decode.ErrUnsupportedFormat) || errors.Is(err, decode.ErrDecode)
}
