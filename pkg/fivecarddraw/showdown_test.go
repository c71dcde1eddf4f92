package fivecarddraw

import (
	"testing"

	"fivecarddraw-server/pkg/deck"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setHand(p *Player, cards string) {
	p.hand = deck.HandFromString(cards)
}

func TestGame_showdown_singleWinner(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, []int{900, 900, 900}, &scriptProvider{})
	g.pot = 300
	setHand(g.players[0], "9c,9d,9h,9s,4c")  // four of a kind
	setHand(g.players[1], "8c,8d,8h,3s,3c")  // full house
	setHand(g.players[2], "2d,5d,10d,11d,13d") // flush

	result := g.showdown()
	a.Equal(ShowdownWin, result.Kind)
	a.Equal("You", result.Winners[0].Name)
	a.Equal("Four of a Kind", result.Winners[0].HandName)
	a.Equal([]int{9, 4}, result.Winners[0].Tiebreak)
	a.Equal(300, result.Pot)
	a.Equal(1200, g.players[0].Stack())
	a.Equal(0, g.Pot())
	a.Len(result.Hands, 3)
}

func TestGame_showdown_drawLeavesPot(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, []int{950, 950, 1000}, &scriptProvider{})
	g.pot = 100
	setHand(g.players[0], "10c,10d,14h,7s,3c")
	setHand(g.players[1], "10h,10s,14d,7c,3d")
	g.players[2].IsActive = false

	result := g.showdown()
	a.Equal(ShowdownDraw, result.Kind)
	a.Len(result.Winners, 2)
	a.Equal(100, result.Pot)
	a.Equal(100, g.Pot(), "pot stays until the draw is resolved")
	a.True(g.HasPendingDraw())
}

func TestGame_ResolveDraw_split(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, []int{950, 950, 1000}, &scriptProvider{})
	g.pot = 100
	setHand(g.players[0], "10c,10d,14h,7s,3c")
	setHand(g.players[1], "10h,10s,14d,7c,3d")
	g.players[2].IsActive = false

	require.Equal(t, ShowdownDraw, g.showdown().Kind)

	outcome, err := g.ResolveDraw(DrawChoiceSplit)
	require.NoError(t, err)

	a.Equal("split", outcome.Resolution)
	a.Len(outcome.Winners, 2)
	a.Equal(100, outcome.Pot)
	a.Equal(1000, g.players[0].Stack())
	a.Equal(1000, g.players[1].Stack())
	a.Equal(0, g.Pot())
	a.False(g.HasPendingDraw())
	a.Equal(3000, g.TotalChips())
}

func TestGame_ResolveDraw_splitWithRemainder(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, []int{949, 950, 1000}, &scriptProvider{})
	g.pot = 101
	setHand(g.players[0], "10c,10d,14h,7s,3c")
	setHand(g.players[1], "10h,10s,14d,7c,3d")
	g.players[2].IsActive = false

	require.Equal(t, ShowdownDraw, g.showdown().Kind)

	_, err := g.ResolveDraw(DrawChoiceSplit)
	require.NoError(t, err)

	// one tied winner gets 51, the other 50
	stacks := []int{g.players[0].Stack(), g.players[1].Stack()}
	a.ElementsMatch([]int{999, 1001}, stacks)
	a.Equal(0, g.Pot())
	a.Equal(3000, g.TotalChips())
}

func TestGame_ResolveDraw_continue(t *testing.T) {
	a := assert.New(t)

	// after the draw, seat 1 raises and seat 0 folds
	provider := &scriptProvider{actions: map[string][]Action{
		"Bot 1": {{Type: ActionRaise, Amount: 50}},
		"You":   {{Type: ActionFold}},
	}}
	g := newTestGame(t, []int{950, 950, 1000}, provider)
	g.pot = 100
	setHand(g.players[0], "10c,10d,14h,7s,3c")
	setHand(g.players[1], "10h,10s,14d,7c,3d")
	g.players[2].IsActive = false

	require.Equal(t, ShowdownDraw, g.showdown().Kind)

	outcome, err := g.ResolveDraw(DrawChoiceContinue)
	require.NoError(t, err)

	a.Equal("winner", outcome.Resolution)
	a.Equal("Bot 1", outcome.Winners[0].Name)
	a.Equal(150, outcome.Pot, "original pot plus the uncalled raise")
	a.Equal(1050, g.players[1].Stack())
	a.Equal(950, g.players[0].Stack())
	a.Equal(3000, g.TotalChips())
	a.False(g.HasPendingDraw())
}

func TestGame_ResolveDraw_continueStillTiedSplits(t *testing.T) {
	a := assert.New(t)

	// both tied players just check the extra betting round
	g := newTestGame(t, []int{950, 950, 1000}, &scriptProvider{})
	g.pot = 100
	setHand(g.players[0], "10c,10d,14h,7s,3c")
	setHand(g.players[1], "10h,10s,14d,7c,3d")
	g.players[2].IsActive = false

	require.Equal(t, ShowdownDraw, g.showdown().Kind)

	outcome, err := g.ResolveDraw(DrawChoiceContinue)
	require.NoError(t, err)

	a.Equal("split", outcome.Resolution)
	a.Equal(1000, g.players[0].Stack())
	a.Equal(1000, g.players[1].Stack())
	a.Equal(3000, g.TotalChips())
}

func TestGame_ResolveDraw_excludesNonTiedActives(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, []int{900, 900, 900}, &scriptProvider{})
	g.pot = 300
	setHand(g.players[0], "10c,10d,14h,7s,3c")
	setHand(g.players[1], "10h,10s,14d,7c,3d")
	setHand(g.players[2], "2c,5d,8h,11s,13c") // worse hand, still active

	require.Equal(t, ShowdownDraw, g.showdown().Kind)

	_, err := g.ResolveDraw(DrawChoiceSplit)
	require.NoError(t, err)

	a.Equal(1050, g.players[0].Stack())
	a.Equal(1050, g.players[1].Stack())
	a.Equal(900, g.players[2].Stack(), "the losing seat gets nothing")
	a.False(g.players[2].IsActive)
}

func TestGame_ResolveDraw_errors(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(t, []int{1000, 1000}, &scriptProvider{})
	_, err := g.ResolveDraw(DrawChoiceSplit)
	a.Equal(ErrNoDrawPending, err)

	g.pot = 100
	setHand(g.players[0], "10c,10d,14h,7s,3c")
	setHand(g.players[1], "10h,10s,14d,7c,3d")
	require.Equal(t, ShowdownDraw, g.showdown().Kind)

	_, err = g.ResolveDraw(DrawChoice("bogus"))
	a.ErrorIs(err, ErrInvalidAction)
}
