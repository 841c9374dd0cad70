package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"manhunt/internal/board"
	"manhunt/internal/game"
	"manhunt/internal/session"
	"manhunt/internal/storage"
)

const defaultMapID = "riverton"

// Server is the HTTP server.
type Server struct {
	mux     *http.ServeMux
	manager *session.Manager
}

// New creates a server with all routes.
func New(manager *session.Manager) *Server {
	s := &Server{
		mux:     http.NewServeMux(),
		manager: manager,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /api/games", s.handleCreateGame)
	s.mux.HandleFunc("GET /api/games", s.handleListGames)
	s.mux.HandleFunc("GET /api/games/{id}", s.handleGetGame)
	s.mux.HandleFunc("POST /api/games/{id}/join", s.handleJoin)
	s.mux.HandleFunc("POST /api/games/{id}/leave", s.handleLeave)
	s.mux.HandleFunc("POST /api/games/{id}/start", s.handleStart)
	s.mux.HandleFunc("POST /api/games/{id}/reset", s.handleReset)
	s.mux.HandleFunc("POST /api/games/{id}/move", s.handleMove)
	s.mux.HandleFunc("GET /api/games/{id}/ws", s.handleWebSocket)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type createGameRequest struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	MapID    string `json:"mapId"`
}

type createGameResponse struct {
	GameID   string `json:"gameId"`
	PlayerID string `json:"playerId"`
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name required")
		return
	}
	if req.PlayerID == "" {
		req.PlayerID = uuid.NewString()
	}
	if req.MapID == "" {
		req.MapID = defaultMapID
	}

	gameID, err := s.manager.CreateGame(req.MapID, req.PlayerID, req.Name)
	if err != nil {
		s.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, createGameResponse{GameID: gameID, PlayerID: req.PlayerID})
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	infos, err := s.manager.List()
	if err != nil {
		s.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	view, err := s.manager.Game(r.PathValue("id"), r.URL.Query().Get("playerId"))
	if err != nil {
		s.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type joinRequest struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
}

func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	var req joinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name required")
		return
	}
	if req.PlayerID == "" {
		req.PlayerID = uuid.NewString()
	}
	if err := s.manager.Join(r.PathValue("id"), req.PlayerID, req.Name); err != nil {
		s.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"playerId": req.PlayerID})
}

type playerRequest struct {
	PlayerID string `json:"playerId"`
}

func (s *Server) decodePlayer(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlayerID == "" {
		writeError(w, http.StatusBadRequest, "playerId required")
		return "", false
	}
	return req.PlayerID, true
}

func (s *Server) handleLeave(w http.ResponseWriter, r *http.Request) {
	playerID, ok := s.decodePlayer(w, r)
	if !ok {
		return
	}
	if err := s.manager.Leave(r.PathValue("id"), playerID); err != nil {
		s.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "left"})
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	playerID, ok := s.decodePlayer(w, r)
	if !ok {
		return
	}
	if err := s.manager.StartGame(r.PathValue("id"), playerID); err != nil {
		s.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "started"})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	playerID, ok := s.decodePlayer(w, r)
	if !ok {
		return
	}
	if err := s.manager.Reset(r.PathValue("id"), playerID); err != nil {
		s.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

type moveRequest struct {
	PlayerID string      `json:"playerId"`
	To       int         `json:"to"`
	Ticket   game.Ticket `json:"ticket"`
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlayerID == "" {
		writeError(w, http.StatusBadRequest, "invalid move request")
		return
	}
	if err := s.manager.ApplyMove(r.PathValue("id"), req.PlayerID, board.NodeID(req.To), req.Ticket); err != nil {
		s.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "moved"})
}

// writeFailure maps rejection reasons onto HTTP statuses.
func (s *Server) writeFailure(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, game.ErrPlayerNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrNotYourTurn),
		errors.Is(err, game.ErrInert),
		errors.Is(err, game.ErrRoleRestricted),
		errors.Is(err, game.ErrGameOver),
		errors.Is(err, session.ErrNotCreator):
		status = http.StatusForbidden
	case errors.Is(err, game.ErrInsufficientTickets),
		errors.Is(err, game.ErrNodeOccupied),
		errors.Is(err, game.ErrGameFull),
		errors.Is(err, game.ErrGameStarted),
		errors.Is(err, game.ErrGameInProgress),
		errors.Is(err, game.ErrDoubleInProgress):
		status = http.StatusConflict
	case errors.Is(err, game.ErrNoRoute),
		errors.Is(err, game.ErrWrongPhase),
		errors.Is(err, game.ErrPlayerCount),
		errors.Is(err, game.ErrUnknownTicket),
		errors.Is(err, session.ErrUnknownMap):
		status = http.StatusBadRequest
	case errors.Is(err, session.ErrRetriesExhausted):
		status = http.StatusServiceUnavailable
	default:
		log.Error().Err(err).Msg("internal error")
	}
	writeError(w, status, err.Error())
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
