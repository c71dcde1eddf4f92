package fivecarddraw

import (
	"fmt"

	"fivecarddraw-server/pkg/poker"

	"github.com/sirupsen/logrus"
)

// showdown compares the remaining active hands and awards the pot.
// An exact tie leaves the pot in place and reports a draw; the host must call
// ResolveDraw before the next round
func (g *Game) showdown() *RoundResult {
	actives := g.activePlayers()
	if len(actives) == 1 {
		return g.foldWin(actives[0])
	}

	best := poker.Strength{}
	winners := make([]*Player, 0, 1)
	for _, p := range actives {
		s := poker.Rank(p.hand)
		switch cmp := s.Compare(best); {
		case cmp > 0 || len(winners) == 0:
			best = s
			winners = []*Player{p}
		case cmp == 0:
			winners = append(winners, p)
		}
	}

	pot := g.pot
	hands := g.handSummaries()

	if len(winners) == 1 {
		winner := winners[0]
		g.awardPot(winner)

		g.logger.WithFields(logrus.Fields{
			"winner": winner.Name,
			"hand":   best.Category.String(),
			"pot":    pot,
		}).Info("showdown won")

		return &RoundResult{
			Kind: ShowdownWin,
			Winners: []Winner{{
				Name:     winner.Name,
				HandName: best.Category.String(),
				Tiebreak: best.Tiebreak,
			}},
			Pot:   pot,
			Hands: hands,
		}
	}

	g.pendingDraw = winners

	names := make([]Winner, len(winners))
	for i, p := range winners {
		names[i] = Winner{
			Name:     p.Name,
			HandName: best.Category.String(),
			Tiebreak: best.Tiebreak,
		}
	}

	g.logger.WithFields(logrus.Fields{
		"players": len(winners),
		"hand":    best.Category.String(),
	}).Info("showdown drawn")

	return &RoundResult{
		Kind:    ShowdownDraw,
		Winners: names,
		Pot:     pot,
		Hands:   hands,
	}
}

// ResolveDraw settles a pending showdown draw.
// Split divides the pot evenly among the tied winners with any remainder
// going to one of them; continue plays another betting round among only the
// tied players, splitting if they are still tied afterwards. Modeled as a
// loop so a continue that collapses to a split never recurses
func (g *Game) ResolveDraw(choice DrawChoice) (*DrawOutcome, error) {
	if g.pendingDraw == nil {
		return nil, ErrNoDrawPending
	}

	// only the tied seats contest the pot from here
	tied := make(map[*Player]bool, len(g.pendingDraw))
	for _, p := range g.pendingDraw {
		tied[p] = true
	}
	for _, p := range g.players {
		if p.IsActive && !tied[p] {
			p.IsActive = false
		}
	}

	for {
		switch choice {
		case DrawChoiceSplit:
			return g.splitPot(), nil

		case DrawChoiceContinue:
			g.resetBets()
			if err := g.bettingRound(); err != nil {
				return nil, err
			}

			if actives := g.activePlayers(); len(actives) == 1 {
				winner := actives[0]
				pot := g.pot
				g.awardPot(winner)
				g.pendingDraw = nil

				return &DrawOutcome{
					Resolution: "winner",
					Winners:    []Winner{{Name: winner.Name}},
					Pot:        pot,
				}, nil
			}

			// hands haven't changed, so the survivors are still tied
			choice = DrawChoiceSplit

		default:
			return nil, fmt.Errorf("%w: unknown draw choice %q", ErrInvalidAction, choice)
		}
	}
}

// splitPot divides the pot evenly among the tied players still active.
// Integer division can leave a remainder; one tied winner gets it. A
// conservation check re-awards any shortfall before the pot is zeroed
func (g *Game) splitPot() *DrawOutcome {
	winners := g.activePlayers()
	pot := g.pot
	expected := g.TotalChips()

	share := pot / len(winners)
	remainder := pot % len(winners)

	for _, p := range winners {
		p.AddChips(share)
	}
	g.pot = 0

	if remainder > 0 {
		winners[g.gen.Intn(len(winners))].AddChips(remainder)
	}

	if shortfall := expected - g.TotalChips(); shortfall > 0 {
		winners[g.gen.Intn(len(winners))].AddChips(shortfall)
	}

	g.pendingDraw = nil

	outcome := &DrawOutcome{
		Resolution: "split",
		Winners:    make([]Winner, len(winners)),
		Pot:        pot,
	}
	for i, p := range winners {
		s := poker.Rank(p.hand)
		outcome.Winners[i] = Winner{
			Name:     p.Name,
			HandName: s.Category.String(),
			Tiebreak: s.Tiebreak,
		}
	}

	g.logger.WithFields(logrus.Fields{
		"winners": len(winners),
		"share":   share,
		"pot":     pot,
	}).Info("pot split")

	return outcome
}
