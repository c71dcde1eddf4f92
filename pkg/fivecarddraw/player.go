package fivecarddraw

import (
	"fmt"

	"fivecarddraw-server/pkg/deck"
)

// Player is a seat at the table.
// A player lives for the whole game session; the hand and current bet are
// rebuilt every round
type Player struct {
	Name  string
	IsBot bool

	stack      int
	hand       deck.Hand
	IsActive   bool
	CurrentBet int
}

// NewPlayer returns a player with the given starting stack
func NewPlayer(name string, stack int, isBot bool) *Player {
	return &Player{
		Name:     name,
		IsBot:    isBot,
		stack:    stack,
		hand:     make(deck.Hand, 0, 5),
		IsActive: true,
	}
}

// NewPlayers creates a table of seats with identical starting stacks.
// The first seat is the human player; the rest are bots
func NewPlayers(numPlayers, startingStack int) []*Player {
	players := make([]*Player, numPlayers)
	players[0] = NewPlayer("You", startingStack, false)
	for i := 1; i < numPlayers; i++ {
		players[i] = NewPlayer(fmt.Sprintf("Bot %d", i), startingStack, true)
	}

	return players
}

// Stack returns the player's chip stack
func (p *Player) Stack() int {
	return p.stack
}

// SetStack sets the chip stack, clamped at zero
func (p *Player) SetStack(amount int) {
	if amount < 0 {
		amount = 0
	}

	p.stack = amount
}

// AddChips credits the stack
func (p *Player) AddChips(amount int) {
	p.SetStack(p.stack + amount)
}

// Bet debits the stack and credits the player's committed bet for the round.
// Returns the amount actually wagered
func (p *Player) Bet(amount int) (int, error) {
	if amount > p.stack {
		return 0, ErrInsufficientFunds
	}

	p.stack -= amount
	p.CurrentBet += amount
	return amount, nil
}

// Hand returns the player's cards
func (p *Player) Hand() deck.Hand {
	return p.hand
}

// ClearHand resets the hand and the committed bet for a new round
func (p *Player) ClearHand() {
	p.hand = make(deck.Hand, 0, 5)
	p.CurrentBet = 0
}

func (p *Player) String() string {
	return fmt.Sprintf("%s ($%d)", p.Name, p.stack)
}
