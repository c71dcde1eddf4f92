package fivecarddraw

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ActionType identifies a betting action
type ActionType string

// action type constants
const (
	ActionFold  ActionType = "fold"
	ActionCheck ActionType = "check"
	ActionCall  ActionType = "call"
	ActionRaise ActionType = "raise"
)

var allowedActions = map[ActionType]bool{
	ActionFold:  true,
	ActionCheck: true,
	ActionCall:  true,
	ActionRaise: true,
}

// Action is a betting action taken by a seat.
// Amount is only meaningful for a raise, where it is the increase beyond the standing bet
type Action struct {
	Type   ActionType `json:"type"`
	Amount int        `json:"amount"`
}

// IsValid returns true if the action type is permitted
func (a Action) IsValid() bool {
	if !allowedActions[a.Type] {
		return false
	}

	if a.Type == ActionRaise && a.Amount <= 0 {
		return false
	}

	return true
}

func (a Action) String() string {
	if a.Type == ActionRaise {
		return fmt.Sprintf("raise %d", a.Amount)
	}

	return string(a.Type)
}

// Name returns the display name of the action type
func (a Action) Name() string {
	switch a.Type {
	case ActionFold:
		return "Fold"
	case ActionCheck:
		return "Check"
	case ActionCall:
		return "Call"
	case ActionRaise:
		return "Raise"
	}

	panic("unknown action")
}

// MarshalJSON encodes the action into JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Amount int    `json:"amount"`
	}{
		ID:     string(a.Type),
		Name:   a.Name(),
		Amount: a.Amount,
	})
}

// ParseAction parses a wire or console action string such as "call" or "raise 50".
// A malformed string returns ErrInvalidAction
func ParseAction(s string) (Action, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	if len(fields) == 0 {
		return Action{}, ErrInvalidAction
	}

	actionType := ActionType(fields[0])
	if !allowedActions[actionType] {
		return Action{}, fmt.Errorf("%w: %s", ErrInvalidAction, fields[0])
	}

	if actionType != ActionRaise {
		if len(fields) > 1 {
			return Action{}, ErrInvalidAction
		}

		return Action{Type: actionType}, nil
	}

	if len(fields) != 2 {
		return Action{}, fmt.Errorf("%w: raise requires an amount", ErrInvalidAction)
	}

	amount, err := strconv.Atoi(fields[1])
	if err != nil || amount <= 0 {
		return Action{}, fmt.Errorf("%w: raise amount must be a positive integer", ErrInvalidAction)
	}

	return Action{Type: ActionRaise, Amount: amount}, nil
}
