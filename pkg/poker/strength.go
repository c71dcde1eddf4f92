package poker

import (
	"sort"

	"fivecarddraw-server/pkg/deck"
)

// Strength is the two-part ranking key of a five-card hand.
// Hands compare by Category first, then by the Tiebreak values in order
type Strength struct {
	Category Category `json:"category"`
	Tiebreak []int    `json:"tiebreak"`
}

// Rank evaluates a five-card hand.
// A hand of any other size evaluates to the zero Strength rather than an error
func Rank(hand deck.Hand) Strength {
	if len(hand) != 5 {
		return Strength{Category: HighCard, Tiebreak: []int{}}
	}

	values := make([]int, 5)
	for i, card := range hand {
		values[i] = card.Rank
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	rankCounts := make(map[int]int)
	for _, v := range values {
		rankCounts[v]++
	}

	isFlush := true
	for _, card := range hand {
		if card.Suit != hand[0].Suit {
			isFlush = false
			break
		}
	}

	isStraight := true
	for i, v := range values {
		if v != values[0]-i {
			isStraight = false
			break
		}
	}

	isWheel := values[0] == deck.Ace && values[1] == 5 && values[2] == 4 && values[3] == 3 && values[4] == 2
	if isWheel {
		isStraight = true
		// the ace plays low, so a wheel never beats a six-high straight
		values = []int{5, 4, 3, 2, 1}
	}

	if isStraight && isFlush {
		if values[0] == deck.Ace {
			return Strength{Category: RoyalFlush, Tiebreak: values}
		}

		return Strength{Category: StraightFlush, Tiebreak: values}
	}

	if quad, ok := ofAKind(rankCounts, 4); ok {
		kicker, _ := ofAKind(rankCounts, 1)
		return Strength{Category: FourOfAKind, Tiebreak: []int{quad, kicker}}
	}

	if trips, ok := ofAKind(rankCounts, 3); ok {
		if pair, ok := ofAKind(rankCounts, 2); ok {
			return Strength{Category: FullHouse, Tiebreak: []int{trips, pair}}
		}

		return Strength{Category: ThreeOfAKind, Tiebreak: append([]int{trips}, kickers(rankCounts)...)}
	}

	if isFlush {
		return Strength{Category: Flush, Tiebreak: values}
	}

	if isStraight {
		return Strength{Category: Straight, Tiebreak: values}
	}

	pairs := allOfAKind(rankCounts, 2)
	switch len(pairs) {
	case 2:
		kicker, _ := ofAKind(rankCounts, 1)
		return Strength{Category: TwoPair, Tiebreak: []int{pairs[0], pairs[1], kicker}}
	case 1:
		return Strength{Category: OnePair, Tiebreak: append([]int{pairs[0]}, kickers(rankCounts)...)}
	}

	return Strength{Category: HighCard, Tiebreak: values}
}

// ofAKind returns the highest rank appearing exactly count times
func ofAKind(rankCounts map[int]int, count int) (int, bool) {
	best := 0
	for rank, n := range rankCounts {
		if n == count && rank > best {
			best = rank
		}
	}

	return best, best > 0
}

// allOfAKind returns every rank appearing exactly count times, highest first
func allOfAKind(rankCounts map[int]int, count int) []int {
	ranks := make([]int, 0, 2)
	for rank, n := range rankCounts {
		if n == count {
			ranks = append(ranks, rank)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	return ranks
}

// kickers returns the unpaired ranks, highest first
func kickers(rankCounts map[int]int) []int {
	return allOfAKind(rankCounts, 1)
}

// Compare returns a positive number if s beats o, a negative number if o
// beats s, and zero on an exact tie
func (s Strength) Compare(o Strength) int {
	if s.Category != o.Category {
		return int(s.Category) - int(o.Category)
	}

	for i, v := range s.Tiebreak {
		if i >= len(o.Tiebreak) {
			return 1
		}

		if v != o.Tiebreak[i] {
			return v - o.Tiebreak[i]
		}
	}

	if len(o.Tiebreak) > len(s.Tiebreak) {
		return -1
	}

	return 0
}

// Beats returns true if s strictly beats o
func (s Strength) Beats(o Strength) bool {
	return s.Compare(o) > 0
}

// Ties returns true if the hands are an exact tie
func (s Strength) Ties(o Strength) bool {
	return s.Compare(o) == 0
}
