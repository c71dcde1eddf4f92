package fivecarddraw

import (
	"testing"

	"fivecarddraw-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func TestNewPlayers(t *testing.T) {
	a := assert.New(t)

	players := NewPlayers(4, 1000)
	a.Len(players, 4)

	a.Equal("You", players[0].Name)
	a.False(players[0].IsBot)

	for i := 1; i < 4; i++ {
		a.Equal(1000, players[i].Stack())
		a.True(players[i].IsBot)
	}
	a.Equal("Bot 3", players[3].Name)
}

func TestPlayer_Bet(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer("test", 100, false)

	wagered, err := p.Bet(60)
	a.NoError(err)
	a.Equal(60, wagered)
	a.Equal(40, p.Stack())
	a.Equal(60, p.CurrentBet)

	_, err = p.Bet(41)
	a.Equal(ErrInsufficientFunds, err)
	a.Equal(40, p.Stack(), "a failed bet must not touch the stack")
	a.Equal(60, p.CurrentBet)

	wagered, err = p.Bet(40)
	a.NoError(err)
	a.Equal(40, wagered)
	a.Equal(0, p.Stack())
	a.Equal(100, p.CurrentBet)
}

func TestPlayer_SetStack_clampsAtZero(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer("test", 100, false)
	p.SetStack(-5)
	a.Equal(0, p.Stack())

	p.AddChips(25)
	a.Equal(25, p.Stack())
}

func TestPlayer_ClearHand(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer("test", 100, false)
	p.hand = deck.HandFromString("2c,3c,4c,5c,6c")
	p.CurrentBet = 50

	p.ClearHand()
	a.Empty(p.Hand())
	a.Equal(0, p.CurrentBet)
}

func TestPlayer_String(t *testing.T) {
	p := NewPlayer("Bot 1", 250, true)
	assert.Equal(t, "Bot 1 ($250)", p.String())
}
