package fivecarddraw

import (
	"errors"

	"fivecarddraw-server/pkg/session"

	"github.com/sirupsen/logrus"
)

// Snapshot reduces the game to its persisted session shape.
// Hands and the deck are not persisted; a session is only meaningful between
// rounds
func (g *Game) Snapshot() *session.Session {
	players := make([]session.PlayerState, len(g.players))
	for i, p := range g.players {
		players[i] = session.PlayerState{
			Name:     p.Name,
			Stack:    p.Stack(),
			IsActive: p.IsActive,
			IsBot:    p.IsBot,
		}
	}

	s := &session.Session{
		Stage:          g.stage.String(),
		Players:        players,
		Pot:            g.pot,
		CurrentBet:     g.currentBet,
		DealerPosition: g.dealerPosition,
		SmallBlind:     g.options.SmallBlind,
		BigBlind:       g.options.BigBlind,
	}
	s.Summary = s.BuildSummary()

	return s
}

// Restore rebuilds a game from a persisted session
func Restore(logger logrus.FieldLogger, s *session.Session, provider ActionProvider) (*Game, error) {
	if len(s.Players) < 2 {
		return nil, errors.New("a session must have at least two players")
	}

	if s.DealerPosition < 0 || s.DealerPosition >= len(s.Players) {
		return nil, errors.New("dealer position is out of range")
	}

	players := make([]*Player, len(s.Players))
	for i, ps := range s.Players {
		p := NewPlayer(ps.Name, ps.Stack, ps.IsBot)
		p.IsActive = ps.IsActive
		players[i] = p
	}

	g, err := NewGame(logger, players, provider, Options{
		SmallBlind: s.SmallBlind,
		BigBlind:   s.BigBlind,
	})
	if err != nil {
		return nil, err
	}

	g.pot = s.Pot
	g.currentBet = s.CurrentBet
	g.dealerPosition = s.DealerPosition

	return g, nil
}
