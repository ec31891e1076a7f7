package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"portalchess/internal/config"
	"portalchess/internal/portalchess"
	"portalchess/internal/server/game"
)

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games      *game.Manager
	defaultCfg config.GameConfig
}

func NewHandler(games *game.Manager, defaultCfg config.GameConfig) *Handler {
	if games == nil {
		games = game.NewManager()
	}
	return &Handler{games: games, defaultCfg: defaultCfg}
}

func (h *Handler) Games() *game.Manager { return h.games }

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/new_game":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleNewGame(w, r)

	case "/api/play":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handlePlay(w, r)

	case "/api/state":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleState(w, r)

	case "/api/path":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handlePath(w, r)

	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	// 空 body 也算合法：用默认配置
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	cfg := h.defaultCfg
	if req.Config != nil {
		cfg = *req.Config
	}

	g, err := h.games.NewGame(cfg)
	if err != nil {
		writeError(w, err)
		return
	}
	s := g.Snapshot()
	log.Printf("new game %s: %dx%d, %d pieces, %d portals", g.ID, s.BoardSize, s.BoardSize, len(s.Pieces), len(s.Portals))
	writeJSON(w, snapshotToDTO(s))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	from, ok1 := portalchess.ParseSquare(req.Move.From)
	to, ok2 := portalchess.ParseSquare(req.Move.To)
	if !ok1 || !ok2 {
		http.Error(w, "bad square", http.StatusBadRequest)
		return
	}

	rec, err := g.Play(from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, PlayResponse{Record: rec, State: snapshotToDTO(g.Snapshot())})
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, snapshotToDTO(g.Snapshot()))
}

func (h *Handler) handlePath(w http.ResponseWriter, r *http.Request) {
	var req PathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	from, ok1 := portalchess.ParseSquare(req.From)
	to, ok2 := portalchess.ParseSquare(req.To)
	if !ok1 || !ok2 {
		http.Error(w, "bad square", http.StatusBadRequest)
		return
	}

	path := g.Path(from, to)
	writeJSON(w, PathResponse{Found: path != nil, Path: squaresToDTO(path)})
}

func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		code = http.StatusNotFound
	case errors.Is(err, game.ErrNotYourTurn):
		code = http.StatusConflict
	case errors.Is(err, game.ErrNoPiece),
		errors.Is(err, game.ErrIllegalMove),
		errors.Is(err, config.ErrInvalidConfig),
		errors.Is(err, portalchess.ErrInvalidFEN):
		code = http.StatusBadRequest
	default:
		log.Println("internal error:", err)
	}
	http.Error(w, err.Error(), code)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
