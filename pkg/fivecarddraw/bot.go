package fivecarddraw

import "fivecarddraw-server/internal/rng"

// BotProvider plays a fixed probability policy over check, call, fold, and
// raise-big-blind, conditioned on whether a call is required and whether it
// would put the bot all in. The policy is a stand-in, not a contract; any
// ActionProvider with the same action vocabulary can replace it
type BotProvider struct {
	gen rng.Generator
}

// NewBotProvider returns a bot using crypto randomness
func NewBotProvider() *BotProvider {
	return &BotProvider{gen: rng.Crypto{}}
}

// NewBotProviderWithGenerator returns a bot with an injected randomness source
func NewBotProviderWithGenerator(gen rng.Generator) *BotProvider {
	return &BotProvider{gen: gen}
}

// chance returns true pct% of the time
func (b *BotProvider) chance(pct int) bool {
	return b.gen.Intn(100) < pct
}

// BettingAction implements the bot betting policy
func (b *BotProvider) BettingAction(player *Player, state TableState) (Action, error) {
	raise := Action{Type: ActionRaise, Amount: state.BigBlind}

	if state.CallAmount == 0 {
		if b.chance(80) {
			return Action{Type: ActionCheck}, nil
		}

		return raise, nil
	}

	if state.CallAmount >= player.Stack() {
		// calling means going all in
		if b.chance(30) {
			return Action{Type: ActionCall}, nil
		}

		return Action{Type: ActionFold}, nil
	}

	switch roll := b.gen.Intn(100); {
	case roll < 50:
		return Action{Type: ActionCall}, nil
	case roll < 80:
		return Action{Type: ActionFold}, nil
	default:
		return raise, nil
	}
}

// ExchangeSelection discards up to three random cards
func (b *BotProvider) ExchangeSelection(player *Player) ([]int, error) {
	count := b.gen.Intn(4)
	if count == 0 {
		return nil, nil
	}

	// sample without replacement from the five hand slots
	slots := []int{0, 1, 2, 3, 4}
	for j := len(slots) - 1; j > 0; j-- {
		i := b.gen.Intn(j + 1)
		slots[i], slots[j] = slots[j], slots[i]
	}

	return slots[0:count], nil
}
