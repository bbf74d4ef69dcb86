package engine

// ActionType identifies player actions sent to Game.Apply.
type ActionType string

const (
	ActionRoll         ActionType = "roll"
	ActionPlaceSetup   ActionType = "place_setup"
	ActionBuild        ActionType = "build"
	ActionDiscard      ActionType = "discard"
	ActionMoveRaider   ActionType = "move_raider"
	ActionProposeTrade ActionType = "propose_trade"
	ActionRespondTrade ActionType = "respond_trade"
	ActionBankTrade    ActionType = "bank_trade"
	ActionBuyCard      ActionType = "buy_card"
	ActionPlayCard     ActionType = "play_card"
	ActionEndTurn      ActionType = "end_turn"
)

// Action is a player's action input. Which fields matter depends on Type:
//
//	place_setup:  VertexID, EdgeID
//	build:        Building, PositionID
//	discard:      Give
//	move_raider:  HexID, TargetPlayer (optional victim)
//	propose_trade: Give, Want, TargetPlayer (optional, empty = open offer)
//	respond_trade: TradeID, Accept
//	bank_trade:   GiveKind, WantKind
//	play_card:    Card, plus HexID/TargetPlayer (warrior), Resources
//	              (abundancia), GiveKind (sabiduria), EdgeIDs (nuevos caminos)
type Action struct {
	Type ActionType `json:"type"`

	Building   Building `json:"building,omitempty"`
	PositionID int      `json:"position_id,omitempty"`
	VertexID   int      `json:"vertex_id,omitempty"`
	EdgeID     int      `json:"edge_id,omitempty"`
	EdgeIDs    []int    `json:"edge_ids,omitempty"`
	HexID      int      `json:"hex_id,omitempty"`

	TargetPlayer string `json:"target_player,omitempty"`

	Give     ResourceSet `json:"give,omitempty"`
	Want     ResourceSet `json:"want,omitempty"`
	GiveKind Resource    `json:"give_kind,omitempty"`
	WantKind Resource    `json:"want_kind,omitempty"`

	Resources []Resource `json:"resources,omitempty"`
	Card      CardKind   `json:"card,omitempty"`

	TradeID string `json:"trade_id,omitempty"`
	Accept  bool   `json:"accept,omitempty"`
}

// EventType identifies events emitted by the engine for broadcast.
type EventType string

const (
	EventGameStart    EventType = "game_start"
	EventSetupPlaced  EventType = "setup_placed"
	EventDiceRolled   EventType = "dice_rolled"
	EventDistributed  EventType = "resources_distributed"
	EventDiscarded    EventType = "discarded"
	EventRaiderMoved  EventType = "raider_moved"
	EventStolen       EventType = "resource_stolen"
	EventBuilt        EventType = "built"
	EventTradeOffered EventType = "trade_offered"
	EventTradeClosed  EventType = "trade_closed"
	EventBankTraded   EventType = "bank_traded"
	EventCardBought   EventType = "card_bought"
	EventCardPlayed   EventType = "card_played"
	EventAchievement  EventType = "achievement_changed"
	EventTurnEnded    EventType = "turn_ended"
	EventPhaseChange  EventType = "phase_change"
	EventGameOver     EventType = "game_over"
)

// Event is emitted by the engine after state changes. The transport layer
// broadcasts events verbatim; the engine does not manage delivery.
type Event struct {
	Type   EventType      `json:"type"`
	Player string         `json:"player,omitempty"`
	Data   map[string]any `json:"data,omitempty"`
}

func phaseEvent(p GamePhase) Event {
	return Event{Type: EventPhaseChange, Data: map[string]any{"phase": p.String()}}
}
