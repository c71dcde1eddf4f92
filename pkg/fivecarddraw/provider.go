package fivecarddraw

// TableState is what a seat gets to see when asked for a decision
type TableState struct {
	Pot        int `json:"pot"`
	CurrentBet int `json:"currentBet"`
	CallAmount int `json:"callAmount"`
	BigBlind   int `json:"bigBlind"`
}

// ActionProvider supplies decisions for a seat.
// The engine drives one seat at a time and blocks until the provider answers,
// so an asynchronous front end only has to satisfy these two calls
type ActionProvider interface {
	// BettingAction returns the seat's betting action for the given table state
	BettingAction(player *Player, state TableState) (Action, error)

	// ExchangeSelection returns the hand indices (0-4) the seat wants to replace
	ExchangeSelection(player *Player) ([]int, error)
}

// SeatProvider routes decisions to a human or bot provider based on the seat.
// It keeps the engine ignorant of seat identity
type SeatProvider struct {
	Human ActionProvider
	Bot   ActionProvider
}

func (s SeatProvider) provider(player *Player) ActionProvider {
	if player.IsBot {
		return s.Bot
	}

	return s.Human
}

// BettingAction routes to the seat's provider
func (s SeatProvider) BettingAction(player *Player, state TableState) (Action, error) {
	return s.provider(player).BettingAction(player, state)
}

// ExchangeSelection routes to the seat's provider
func (s SeatProvider) ExchangeSelection(player *Player) ([]int, error) {
	return s.provider(player).ExchangeSelection(player)
}
