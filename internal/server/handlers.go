package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"teyuna/internal/engine"
	"teyuna/internal/lobby"
	"teyuna/internal/qrcode"
	"teyuna/internal/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handlers holds HTTP handler dependencies.
type Handlers struct {
	mu       sync.Mutex
	LobbyMgr *lobby.Manager
	Hubs     map[string]*Hub
	DB       *store.DB
	Log      zerolog.Logger
}

func NewHandlers(db *store.DB, log zerolog.Logger) *Handlers {
	return &Handlers{
		LobbyMgr: lobby.NewManager(),
		Hubs:     make(map[string]*Hub),
		DB:       db,
		Log:      log,
	}
}

// HandleCreateGame creates a new game lobby and returns its ID.
func (h *Handlers) HandleCreateGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	gameID := h.LobbyMgr.Create()
	hub := NewHub(gameID, h.LobbyMgr.Get(gameID), h.DB, h.Log)

	h.mu.Lock()
	h.Hubs[gameID] = hub
	h.mu.Unlock()
	go hub.Run()

	h.Log.Info().Str("game", gameID).Msg("game created")
	writeJSON(w, http.StatusCreated, map[string]string{"game_id": gameID})
}

// HandleListGames lists persisted games.
func (h *Handlers) HandleListGames(w http.ResponseWriter, r *http.Request) {
	rows, err := h.DB.List()
	if err != nil {
		h.Log.Error().Err(err).Msg("list games")
		http.Error(w, "list failed", http.StatusInternalServerError)
		return
	}
	type item struct {
		ID      string `json:"id"`
		Status  string `json:"status"`
		Winner  string `json:"winner,omitempty"`
		Updated int64  `json:"updated_at"`
	}
	out := make([]item, len(rows))
	for i, row := range rows {
		out[i] = item{ID: row.ID, Status: row.Status, Winner: row.Winner, Updated: row.UpdatedAt}
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleQR renders a PNG QR code with the join link for a game.
func (h *Handlers) HandleQR(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	if gameID == "" {
		http.Error(w, "missing game parameter", http.StatusBadRequest)
		return
	}
	url := fmt.Sprintf("http://%s/join?game=%s", r.Host, gameID)
	png, err := qrcode.JoinLink(url)
	if err != nil {
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// HandlePlayerID hands out a fresh player identity.
func (h *Handlers) HandlePlayerID(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"player_id": GeneratePlayerID()})
}

// HandleWS upgrades a connection and attaches it to its game's hub.
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	playerID := r.URL.Query().Get("player")

	if gameID == "" {
		http.Error(w, "missing game parameter", http.StatusBadRequest)
		return
	}
	h.mu.Lock()
	hub, ok := h.Hubs[gameID]
	h.mu.Unlock()
	if !ok {
		hub = h.resumeGame(gameID)
	}
	if hub == nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.Warn().Err(err).Msg("ws upgrade")
		return
	}

	ct := ClientPlayer
	if playerID == "" {
		ct = ClientSpectator
	}

	client := NewClient(hub, conn, playerID, ct)
	hub.register <- client

	go client.WritePump()
	go client.ReadPump()
}

// resumeGame rebuilds a hub around a persisted game after a server restart,
// so players can reconnect to matches that outlived the process.
func (h *Handlers) resumeGame(gameID string) *Hub {
	if h.DB == nil {
		return nil
	}
	snap, err := h.DB.LoadSnapshot(gameID)
	if err != nil {
		return nil
	}
	g := engine.Restore(snap, h.Log)

	lob := lobby.NewLobby(gameID)
	for _, p := range g.Players {
		lob.Join(p.ID, p.Name)
	}
	lob.Started = true

	hub := NewHub(gameID, lob, h.DB, h.Log)
	hub.Resume(g)

	h.mu.Lock()
	defer h.mu.Unlock()
	if existing, ok := h.Hubs[gameID]; ok {
		return existing
	}
	h.Hubs[gameID] = hub
	go hub.Run()
	h.Log.Info().Str("game", gameID).Msg("game resumed from store")
	return hub
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
