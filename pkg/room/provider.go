package room

import (
	"sync/atomic"

	"fivecarddraw-server/pkg/deck"
	"fivecarddraw-server/pkg/fivecarddraw"
)

// decisionData is what the client gets when the engine needs an answer
type decisionData struct {
	Player     string   `json:"player"`
	Hand       []string `json:"hand"`
	Pot        int      `json:"pot"`
	CurrentBet int      `json:"currentBet"`
	CallAmount int      `json:"callAmount"`
	BigBlind   int      `json:"bigBlind"`
}

// humanProvider relays the engine's blocking decision requests to the
// connected client and waits for the reply
type humanProvider struct {
	table     *Table
	responses chan *PayloadIn
	pending   atomic.Bool
}

func newHumanProvider() *humanProvider {
	return &humanProvider{
		responses: make(chan *PayloadIn),
	}
}

// offer hands an incoming reply to the waiting engine.
// Returns false if no decision is pending
func (h *humanProvider) offer(msg *PayloadIn) bool {
	if !h.pending.Load() {
		return false
	}

	select {
	case h.responses <- msg:
		return true
	case <-h.table.done:
		return false
	}
}

// await broadcasts the prompt and blocks until the client replies or the
// table closes
func (h *humanProvider) await(prompt *Response) (*PayloadIn, error) {
	h.pending.Store(true)
	defer h.pending.Store(false)

	h.table.broadcast(prompt)

	select {
	case msg := <-h.responses:
		return msg, nil
	case <-h.table.done:
		return nil, ErrTableClosed
	}
}

// BettingAction prompts the client and blocks until it answers.
// A malformed answer is reported and surfaces as an invalid action, which
// makes the engine ask again
func (h *humanProvider) BettingAction(player *fivecarddraw.Player, state fivecarddraw.TableState) (fivecarddraw.Action, error) {
	msg, err := h.await(&Response{
		Key: "decision",
		Data: decisionData{
			Player:     player.Name,
			Hand:       handStrings(player.Hand()),
			Pot:        state.Pot,
			CurrentBet: state.CurrentBet,
			CallAmount: state.CallAmount,
			BigBlind:   state.BigBlind,
		},
	})
	if err != nil {
		return fivecarddraw.Action{}, err
	}

	action, err := fivecarddraw.ParseAction(msg.Value)
	if err != nil {
		h.table.broadcast(newErrorResponse(msg.Context, err))
		return fivecarddraw.Action{}, err
	}

	return action, nil
}

// ExchangeSelection prompts the client for the hand slots to replace
func (h *humanProvider) ExchangeSelection(player *fivecarddraw.Player) ([]int, error) {
	msg, err := h.await(&Response{
		Key: "exchange",
		Data: decisionData{
			Player: player.Name,
			Hand:   handStrings(player.Hand()),
		},
	})
	if err != nil {
		return nil, err
	}

	return msg.Cards, nil
}

func handStrings(hand deck.Hand) []string {
	cards := make([]string, len(hand))
	for i, c := range hand {
		cards[i] = deck.CardToString(c)
	}

	return cards
}
