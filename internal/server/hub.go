package server

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"teyuna/internal/engine"
	"teyuna/internal/lobby"
	"teyuna/internal/protocol"
	"teyuna/internal/store"
)

// Hub manages the WebSocket connections and game state for one game room.
// Its run loop serializes every action against the game, which is the mutual
// exclusion the engine relies on.
type Hub struct {
	mu         sync.Mutex
	gameID     string
	lobby      *lobby.Lobby
	game       *engine.Game
	db         *store.DB
	log        zerolog.Logger
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	incoming   chan IncomingMessage
	quit       chan struct{}
}

func NewHub(gameID string, lob *lobby.Lobby, db *store.DB, log zerolog.Logger) *Hub {
	return &Hub{
		gameID:     gameID,
		lobby:      lob,
		db:         db,
		log:        log.With().Str("game", gameID).Logger(),
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan IncomingMessage, 256),
		quit:       make(chan struct{}),
	}
}

// Resume attaches an already-restored game to a fresh hub, used when
// reloading persisted games at startup.
func (h *Hub) Resume(g *engine.Game) {
	h.game = g
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.sendLobbyUpdate()
			if h.game != nil {
				h.sendStateToClient(client)
			}

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case msg := <-h.incoming:
			h.handleMessage(msg)

		case <-h.quit:
			return
		}
	}
}

func (h *Hub) handleMessage(msg IncomingMessage) {
	switch msg.Envelope.Type {
	case protocol.MsgJoin:
		h.handleJoin(msg)
	case protocol.MsgReady:
		h.handleReady(msg)
	case protocol.MsgStartGame:
		h.handleStartGame(msg)
	default:
		h.handleGameAction(msg)
	}
}

func (h *Hub) handleJoin(msg IncomingMessage) {
	var join protocol.JoinMsg
	if err := msg.Envelope.Decode(&join); err != nil {
		h.sendError(msg.Client, "invalid join message")
		return
	}
	msg.Client.PlayerID = join.PlayerID
	if err := h.lobby.Join(join.PlayerID, join.Name); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	h.log.Info().Str("player", join.PlayerID).Str("name", join.Name).Msg("player joined")
	h.sendLobbyUpdate()
}

func (h *Hub) handleReady(msg IncomingMessage) {
	var ready protocol.ReadyMsg
	if err := msg.Envelope.Decode(&ready); err != nil {
		h.sendError(msg.Client, "invalid ready message")
		return
	}
	h.lobby.SetReady(msg.Client.PlayerID, ready.Ready)
	h.sendLobbyUpdate()
}

func (h *Hub) handleStartGame(msg IncomingMessage) {
	if !h.lobby.CanStart() {
		h.sendError(msg.Client, "not all players ready")
		return
	}
	if err := h.lobby.Start(); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}

	lobbyPlayers := h.lobby.GetPlayers()
	players := make([]*engine.Player, len(lobbyPlayers))
	for i, lp := range lobbyPlayers {
		players[i] = engine.NewPlayer(lp.ID, lp.Name, lp.Color, i)
	}

	h.game = engine.NewGame(players, engine.DefaultConfig(), h.log)
	events, err := h.game.Start()
	if err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	h.log.Info().Int("players", len(players)).Msg("game started")
	h.persist()
	h.broadcastEvents(events)
	h.broadcastState()
}

func (h *Hub) handleGameAction(msg IncomingMessage) {
	if h.game == nil {
		h.sendError(msg.Client, "game not started")
		return
	}

	var action engine.Action
	if err := msg.Envelope.Decode(&action); err != nil {
		h.sendError(msg.Client, "invalid action payload")
		return
	}
	action.Type = engine.ActionType(msg.Envelope.Type)

	events, err := h.game.Apply(msg.Client.PlayerID, action)
	if err != nil {
		if !engine.IsValidation(err) {
			h.log.Error().Err(err).Str("player", msg.Client.PlayerID).Msg("engine invariant violated")
		}
		h.sendError(msg.Client, err.Error())
		return
	}

	h.log.Debug().
		Str("player", msg.Client.PlayerID).
		Str("action", string(action.Type)).
		Int("events", len(events)).
		Msg("action applied")
	h.persist()
	h.broadcastEvents(events)
	h.broadcastState()
}

// persist writes the current snapshot through the store. Persistence errors
// are logged, not surfaced: the in-memory game remains authoritative.
func (h *Hub) persist() {
	if h.db == nil || h.game == nil {
		return
	}
	if err := h.db.SaveSnapshot(h.gameID, h.game.Snapshot()); err != nil {
		h.log.Error().Err(err).Msg("persist snapshot")
	}
}

func (h *Hub) broadcastEvents(events []engine.Event) {
	for _, ev := range events {
		h.broadcastAll(protocol.MustEnvelope(protocol.MsgEvent, ev))
	}
}

func (h *Hub) broadcastState() {
	if h.game == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		h.sendStateToClient(client)
	}
}

func (h *Hub) sendStateToClient(client *Client) {
	if h.game == nil {
		return
	}
	if client.Type == ClientSpectator {
		client.SendEnvelope(protocol.MustEnvelope(protocol.MsgGameState, h.game.View()))
	} else {
		client.SendEnvelope(protocol.MustEnvelope(protocol.MsgPlayerState, h.game.ViewFor(client.PlayerID)))
	}
}

func (h *Hub) sendLobbyUpdate() {
	players := h.lobby.GetPlayers()
	lps := make([]protocol.LobbyPlayer, len(players))
	for i, p := range players {
		lps[i] = protocol.LobbyPlayer{ID: p.ID, Name: p.Name, Color: string(p.Color), Ready: p.Ready}
	}
	h.broadcastAll(protocol.MustEnvelope(protocol.MsgLobbyUpdate, protocol.LobbyUpdate{
		GameID:  h.gameID,
		Players: lps,
		Started: h.lobby.Started,
	}))
}

func (h *Hub) broadcastAll(env protocol.Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(env)
	if err != nil {
		h.log.Error().Err(err).Msg("broadcast marshal")
		return
	}
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			h.log.Warn().Str("player", client.PlayerID).Msg("client buffer full, dropping")
		}
	}
}

func (h *Hub) sendError(client *Client, message string) {
	client.SendEnvelope(protocol.MustEnvelope(protocol.MsgError, protocol.ErrorMsg{Message: message}))
}
