package fivecarddraw

import (
	"encoding/json"

	"fivecarddraw-server/pkg/deck"
)

// ResultKind identifies how a round (or the game) ended
type ResultKind int

// constants for ResultKind
const (
	// FoldWin means everyone else folded before the showdown
	FoldWin ResultKind = iota
	// ShowdownWin means a single player had the best hand at showdown
	ShowdownWin
	// ShowdownDraw means two or more players tied exactly and the draw awaits resolution
	ShowdownDraw
	// FinalWinner means the game is over and one player holds every chip
	FinalWinner
)

func (k ResultKind) String() string {
	switch k {
	case FoldWin:
		return "fold-win"
	case ShowdownWin:
		return "showdown-win"
	case ShowdownDraw:
		return "showdown-draw"
	case FinalWinner:
		return "final-winner"
	}

	return ""
}

// MarshalJSON encodes JSON
func (k ResultKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(k),
		Name: k.String(),
	})
}

// Winner describes one winning seat in a round result
type Winner struct {
	Name     string `json:"name"`
	HandName string `json:"handName,omitempty"`
	Tiebreak []int  `json:"tiebreak,omitempty"`
}

// HandSummary is the per-seat summary revealed at the end of a round
type HandSummary struct {
	PlayerName string    `json:"playerName"`
	Hand       deck.Hand `json:"hand"`
	Status     string    `json:"status"`
	HandName   string    `json:"handName,omitempty"`
}

// RoundResult is the outcome of a single round of play
type RoundResult struct {
	Kind       ResultKind    `json:"kind"`
	Winners    []Winner      `json:"winners"`
	Pot        int           `json:"pot"`
	Hands      []HandSummary `json:"hands,omitempty"`
	TotalChips int           `json:"totalChips,omitempty"`
}

// IsDraw returns true if the round ended in an unresolved draw
func (r *RoundResult) IsDraw() bool {
	return r.Kind == ShowdownDraw
}

// DrawChoice selects how a showdown draw is resolved
type DrawChoice string

// draw choice constants
const (
	// DrawChoiceSplit divides the pot evenly among the tied winners
	DrawChoiceSplit DrawChoice = "split"
	// DrawChoiceContinue plays another betting round among the tied winners
	DrawChoiceContinue DrawChoice = "continue"
)

// DrawOutcome reports how a pending draw was settled
type DrawOutcome struct {
	// Resolution is "split" or "winner"
	Resolution string   `json:"resolution"`
	Winners    []Winner `json:"winners"`
	Pot        int      `json:"pot"`
}
