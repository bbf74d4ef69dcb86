package protocol

// Message types: Server → Client
const (
	MsgLobbyUpdate = "lobby_update"
	MsgGameState   = "game_state"   // public view, sent to spectators
	MsgPlayerState = "player_state" // personalized view
	MsgEvent       = "event"
	MsgError       = "error"
)

// Message types: Client → Server. In-game actions reuse the engine's
// ActionType names verbatim.
const (
	MsgJoin      = "join"
	MsgReady     = "ready"
	MsgStartGame = "start_game"

	MsgRoll         = "roll"
	MsgPlaceSetup   = "place_setup"
	MsgBuild        = "build"
	MsgDiscard      = "discard"
	MsgMoveRaider   = "move_raider"
	MsgProposeTrade = "propose_trade"
	MsgRespondTrade = "respond_trade"
	MsgBankTrade    = "bank_trade"
	MsgBuyCard      = "buy_card"
	MsgPlayCard     = "play_card"
	MsgEndTurn      = "end_turn"
)

// LobbyUpdate is sent to all clients when lobby state changes.
type LobbyUpdate struct {
	GameID  string        `json:"game_id"`
	Players []LobbyPlayer `json:"players"`
	Started bool          `json:"started"`
}

type LobbyPlayer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Ready bool   `json:"ready"`
}

// JoinMsg is sent by a player to join the game.
type JoinMsg struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

// ReadyMsg is sent by a player to toggle ready state.
type ReadyMsg struct {
	Ready bool `json:"ready"`
}

// ErrorMsg is sent to a client on a rejected action.
type ErrorMsg struct {
	Message string `json:"message"`
}
