package fivecarddraw

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// iterationsPerSeat bounds a betting round against pathological
// non-termination (e.g. a provider that raises forever)
const iterationsPerSeat = 4

// bettingRound runs a single betting round starting with the first funded
// seat clockwise from the dealer.
// Every active, funded seat must act at least once; a raise reopens action
// for everyone else. Invalid or unaffordable actions are retried without
// touching the pot. The round ends when nobody is left needing to act, when
// fewer than two players remain active, or at the iteration safety cap
func (g *Game) bettingRound() error {
	needToAct := make(map[*Player]bool)
	for _, p := range g.players {
		if p.IsActive && p.Stack() > 0 {
			needToAct[p] = true
		}
	}

	if len(needToAct) <= 1 {
		return nil
	}

	pos := g.nextFundedSeat(g.dealerPosition)
	maxIterations := iterationsPerSeat * len(g.players)

	for i := 0; i < maxIterations; i++ {
		p := g.players[pos]
		if need, ok := needToAct[p]; ok && need && p.IsActive && p.Stack() > 0 {
			done, err := g.promptSeat(p, needToAct)
			if err != nil {
				if errors.Is(err, ErrInvalidAction) || errors.Is(err, ErrInsufficientFunds) {
					// re-prompt the same seat; the retry still counts
					// against the safety cap
					g.logger.WithError(err).WithField("player", p.Name).Warn("action rejected")
					continue
				}

				return err
			}

			if done {
				return nil
			}
		}

		pos = g.advanceSeat(pos)

		if len(g.activePlayers()) <= 1 {
			return nil
		}

		if !g.anyNeedToAct(needToAct) {
			return nil
		}

		if g.allMatchedOrAllIn(needToAct) {
			return nil
		}
	}

	g.logger.Warn("betting round hit the iteration safety cap")
	return nil
}

// promptSeat asks one seat for an action and applies it.
// Returns done=true when the action ends the round outright
func (g *Game) promptSeat(p *Player, needToAct map[*Player]bool) (bool, error) {
	state := TableState{
		Pot:        g.pot,
		CurrentBet: g.currentBet,
		CallAmount: g.callAmount(p),
		BigBlind:   g.options.BigBlind,
	}

	act, err := g.provider.BettingAction(p, state)
	if err != nil {
		return false, err
	}

	if !act.IsValid() {
		return false, ErrInvalidAction
	}

	g.logger.WithFields(logrus.Fields{
		"player": p.Name,
		"action": act.String(),
		"pot":    g.pot,
	}).Debug("betting action")

	switch act.Type {
	case ActionFold:
		p.IsActive = false
		delete(needToAct, p)

		if len(needToAct) <= 1 {
			return true, nil
		}

	case ActionCheck, ActionCall:
		if owed := g.callAmount(p); owed > 0 {
			// an all-in call below the full bet is allowed
			g.betIntoPot(p, min(owed, p.Stack()))
		}
		needToAct[p] = false

	case ActionRaise:
		totalBet := g.currentBet + act.Amount
		needed := totalBet - p.CurrentBet
		if needed > p.Stack() {
			return false, ErrInsufficientFunds
		}

		g.betIntoPot(p, needed)
		g.currentBet = totalBet

		// the raise reopens action for everyone else still in
		for other := range needToAct {
			if other != p && other.IsActive && other.Stack() > 0 {
				needToAct[other] = true
			}
		}
		needToAct[p] = false
	}

	return false, nil
}

// advanceSeat moves clockwise to the next funded seat, stopping at the dealer
// if the table wraps without finding one
func (g *Game) advanceSeat(pos int) int {
	for {
		pos = (pos + 1) % len(g.players)
		if g.players[pos].Stack() > 0 || pos == g.dealerPosition {
			return pos
		}
	}
}

func (g *Game) anyNeedToAct(needToAct map[*Player]bool) bool {
	for _, need := range needToAct {
		if need {
			return true
		}
	}

	return false
}

// allMatchedOrAllIn returns true when every seat still in the round has
// either matched the standing bet or is all in
func (g *Game) allMatchedOrAllIn(needToAct map[*Player]bool) bool {
	for p := range needToAct {
		if p.IsActive && p.CurrentBet != g.currentBet && p.Stack() > 0 {
			return false
		}
	}

	return true
}
