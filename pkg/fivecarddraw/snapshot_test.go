package fivecarddraw

import (
	"testing"

	"fivecarddraw-server/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGame_Snapshot(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, []int{1200, 800, 0}, &scriptProvider{})
	g.pot = 75
	g.currentBet = 50
	g.dealerPosition = 1
	g.players[2].IsActive = false

	s := g.Snapshot()
	a.Equal("setup", s.Stage)
	a.Equal(75, s.Pot)
	a.Equal(50, s.CurrentBet)
	a.Equal(1, s.DealerPosition)
	a.Equal(25, s.SmallBlind)
	a.Equal(50, s.BigBlind)
	a.Equal("Players: 3 - You: $1200, Bot 1: $800, Bot 2: $0", s.Summary)

	require.Len(t, s.Players, 3)
	a.Equal("You", s.Players[0].Name)
	a.False(s.Players[0].IsBot)
	a.True(s.Players[1].IsBot)
	a.False(s.Players[2].IsActive)
}

func TestRestore_roundTrip(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, []int{1200, 800}, &scriptProvider{})
	g.pot = 100
	g.dealerPosition = 1

	restored, err := Restore(testLogger(), g.Snapshot(), &scriptProvider{})
	require.NoError(t, err)

	a.Equal(g.Pot(), restored.Pot())
	a.Equal(g.CurrentBet(), restored.CurrentBet())
	a.Equal(g.DealerPosition(), restored.DealerPosition())
	a.Equal(g.Options(), restored.Options())
	for i, p := range g.players {
		a.Equal(p.Name, restored.players[i].Name)
		a.Equal(p.Stack(), restored.players[i].Stack())
		a.Equal(p.IsBot, restored.players[i].IsBot)
	}
	a.Equal(g.TotalChips(), restored.TotalChips())
}

func TestRestore_validation(t *testing.T) {
	a := assert.New(t)

	s := &session.Session{
		Players:    []session.PlayerState{{Name: "You", Stack: 1000}},
		SmallBlind: 25,
		BigBlind:   50,
	}
	_, err := Restore(testLogger(), s, &scriptProvider{})
	a.Error(err)

	s.Players = append(s.Players, session.PlayerState{Name: "Bot 1", Stack: 1000})
	s.DealerPosition = 2
	_, err = Restore(testLogger(), s, &scriptProvider{})
	a.Error(err)

	s.DealerPosition = 0
	_, err = Restore(testLogger(), s, &scriptProvider{})
	a.NoError(err)
}
