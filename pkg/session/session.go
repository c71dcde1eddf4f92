package session

import (
	"fmt"
	"strings"
)

// PlayerState is the persisted state of a single seat
type PlayerState struct {
	Name     string `json:"name"`
	Stack    int    `json:"stack"`
	IsActive bool   `json:"isActive"`
	IsBot    bool   `json:"isBot"`
}

// Session is the persisted shape of a game between rounds.
// The engine can be rebuilt from this record and reduced back to it
type Session struct {
	GameID         string        `json:"gameId"`
	SaveDate       string        `json:"saveDate"`
	Summary        string        `json:"summary"`
	Stage          string        `json:"stage"`
	Players        []PlayerState `json:"players"`
	Pot            int           `json:"pot"`
	CurrentBet     int           `json:"currentBet"`
	DealerPosition int           `json:"dealerPosition"`
	SmallBlind     int           `json:"smallBlind"`
	BigBlind       int           `json:"bigBlind"`
}

// BuildSummary returns the human-readable one-line summary for the session
func (s *Session) BuildSummary() string {
	parts := make([]string, len(s.Players))
	for i, p := range s.Players {
		parts[i] = fmt.Sprintf("%s: $%d", p.Name, p.Stack)
	}

	return fmt.Sprintf("Players: %d - %s", len(s.Players), strings.Join(parts, ", "))
}
