package poker

import (
	"errors"
	"fmt"
)

// ErrUnknownCategory is an error when a hand name is requested for an out-of-range category
var ErrUnknownCategory = errors.New("unknown hand category")

// Category is a coarse poker hand type, i.e., a full house
type Category int

// Constants for category, weakest first
const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the string representation of a category
func (c Category) String() string {
	name, err := HandName(int(c))
	if err != nil {
		panic(fmt.Sprintf("unknown category: %d", int(c)))
	}

	return name
}

var handNames = []string{
	"High Card",
	"One Pair",
	"Two Pair",
	"Three of a Kind",
	"Straight",
	"Flush",
	"Full House",
	"Four of a Kind",
	"Straight Flush",
	"Royal Flush",
}

// HandName returns the display name for a category
func HandName(category int) (string, error) {
	if category < 0 || category >= len(handNames) {
		return "", ErrUnknownCategory
	}

	return handNames[category], nil
}
