package fivecarddraw

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGame_bettingRound_noRaisesSinglePass(t *testing.T) {
	a := assert.New(t)

	provider := &scriptProvider{}
	g := newTestGame(t, []int{1000, 1000, 1000}, provider)
	g.setupRound()
	g.collectBlinds()

	require.NoError(t, g.bettingRound())

	// one decision per active player, nothing more
	a.Equal(3, provider.prompts)
	a.Equal(150, g.Pot(), "everyone matched the big blind")
	a.Equal(3000, g.TotalChips())
}

func TestGame_bettingRound_raiseReopensAction(t *testing.T) {
	a := assert.New(t)

	// the last seat to act raises; the two seats that already acted must act again
	provider := &scriptProvider{actions: map[string][]Action{
		"You": {{Type: ActionRaise, Amount: 50}},
	}}
	g := newTestGame(t, []int{1000, 1000, 1000}, provider)
	g.setupRound()
	g.collectBlinds()

	require.NoError(t, g.bettingRound())

	a.Equal(100, g.CurrentBet())
	for _, p := range g.players {
		a.Equal(100, p.CurrentBet, p.Name)
	}
	a.Equal(300, g.Pot())
	a.Equal(5, provider.prompts, "the raise put two players back on the clock")
}

func TestGame_bettingRound_allInCallBelowBet(t *testing.T) {
	a := assert.New(t)

	// the short stack calls the 50-chip big blind with only 20 chips
	g := newTestGame(t, []int{1000, 1000, 1000, 20}, &scriptProvider{})
	g.setupRound()
	g.collectBlinds()

	require.NoError(t, g.bettingRound())

	a.Equal(0, g.players[3].Stack())
	a.Equal(20, g.players[3].CurrentBet)
	a.True(g.players[3].IsActive, "an all-in player is still contesting the pot")
	a.Equal(170, g.Pot())
	a.Equal(3020, g.TotalChips())
}

func TestGame_bettingRound_invalidActionsAreRetried(t *testing.T) {
	a := assert.New(t)

	// seat 1 tries an unaffordable raise, then a bogus action, then calls
	provider := &scriptProvider{actions: map[string][]Action{
		"Bot 1": {
			{Type: ActionRaise, Amount: 5000},
			{Type: "jump"},
			{Type: ActionCall},
		},
	}}
	g := newTestGame(t, []int{1000, 1000}, provider)
	g.setupRound()
	g.collectBlinds()

	require.NoError(t, g.bettingRound())

	a.Equal(50, g.players[1].CurrentBet)
	a.Equal(100, g.Pot())
	a.Equal(2000, g.TotalChips())
}

func TestGame_bettingRound_safetyCap(t *testing.T) {
	a := assert.New(t)

	// two seats raising each other forever must still terminate
	provider := &alwaysRaiseProvider{}
	g := newTestGame(t, []int{100000, 100000}, provider)
	g.setupRound()
	g.collectBlinds()

	require.NoError(t, g.bettingRound())

	a.LessOrEqual(provider.prompts, iterationsPerSeat*2)
	a.Equal(200000, g.TotalChips())
}

type alwaysRaiseProvider struct {
	prompts int
}

func (p *alwaysRaiseProvider) BettingAction(*Player, TableState) (Action, error) {
	p.prompts++
	return Action{Type: ActionRaise, Amount: 50}, nil
}

func (p *alwaysRaiseProvider) ExchangeSelection(*Player) ([]int, error) {
	return nil, nil
}

func TestGame_bettingRound_providerErrorPropagates(t *testing.T) {
	wantErr := errors.New("connection lost")
	g := newTestGame(t, []int{1000, 1000}, &failingProvider{err: wantErr})
	g.setupRound()
	g.collectBlinds()

	assert.Equal(t, wantErr, g.bettingRound())
}

type failingProvider struct {
	err error
}

func (p *failingProvider) BettingAction(*Player, TableState) (Action, error) {
	return Action{}, p.err
}

func (p *failingProvider) ExchangeSelection(*Player) ([]int, error) {
	return nil, p.err
}
