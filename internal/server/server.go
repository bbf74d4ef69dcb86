package server

import (
	"net/http"

	"github.com/rs/zerolog"

	"teyuna/internal/store"
)

// Server ties together HTTP serving and WebSocket handling.
type Server struct {
	handlers *Handlers
	addr     string
	log      zerolog.Logger
}

func New(addr string, db *store.DB, log zerolog.Logger) *Server {
	return &Server{
		handlers: NewHandlers(db, log),
		addr:     addr,
		log:      log,
	}
}

func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/games", s.route)
	mux.HandleFunc("/api/qr", s.handlers.HandleQR)
	mux.HandleFunc("/api/player-id", s.handlers.HandlePlayerID)
	mux.HandleFunc("/ws", s.handlers.HandleWS)

	s.log.Info().Str("addr", s.addr).Msg("teyuna server listening")
	return http.ListenAndServe(s.addr, mux)
}

// route splits /api/games between create (POST) and list (GET).
func (s *Server) route(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handlers.HandleCreateGame(w, r)
	case http.MethodGet:
		s.handlers.HandleListGames(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
