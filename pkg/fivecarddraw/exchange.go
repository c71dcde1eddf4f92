package fivecarddraw

import (
	"errors"
	"fmt"
)

// maxExchange is the most cards a player may replace in the exchange phase
const maxExchange = 3

// exchangePhase lets every still-active seat replace up to three cards.
// A bad selection aborts the exchange for that seat only; the phase and the
// round continue for everyone else
func (g *Game) exchangePhase() error {
	for _, p := range g.players {
		if !p.IsActive {
			continue
		}

		indices, err := g.provider.ExchangeSelection(p)
		if err != nil {
			return err
		}

		if len(indices) == 0 {
			continue
		}

		if err := g.exchangeCards(p, indices); err != nil {
			if errors.Is(err, ErrIndexOutOfRange) || errors.Is(err, ErrInvalidAction) {
				g.logger.WithError(err).WithField("player", p.Name).Warn("exchange aborted for player")
				continue
			}

			return err
		}
	}

	return nil
}

// exchangeCards replaces the cards at the given hand slots with fresh draws.
// Each replaced card goes to the bottom of the deck, so it stays identifiable
// for the rest of the round but is the last to re-enter play
func (g *Game) exchangeCards(p *Player, indices []int) error {
	if len(indices) > maxExchange {
		return fmt.Errorf("%w: at most %d cards may be exchanged", ErrInvalidAction, maxExchange)
	}

	seen := make(map[int]bool)
	for _, idx := range indices {
		if idx < 0 || idx >= cardsPerHand {
			return fmt.Errorf("%w: got %d", ErrIndexOutOfRange, idx)
		}

		if seen[idx] {
			return fmt.Errorf("%w: duplicate card index %d", ErrInvalidAction, idx)
		}
		seen[idx] = true
	}

	// 52 cards always cover a full table's exchanges; guard anyway
	if !g.deck.CanDraw(len(indices)) {
		return nil
	}

	for _, idx := range indices {
		card, err := g.deck.Draw()
		if err != nil {
			return err
		}

		old := p.hand[idx]
		p.hand[idx] = card
		g.deck.DiscardToBottom(old)
	}

	g.logger.WithFields(map[string]interface{}{
		"player": p.Name,
		"count":  len(indices),
	}).Debug("cards exchanged")

	return nil
}
