package deck

import (
	"errors"

	"fivecarddraw-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
// The top of the deck is index 0; DiscardToBottom() appends, so a discarded
// card is the last to come back into play
type Deck struct {
	Cards []*Card `json:"cards"`
	gen   rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		gen: rng.Crypto{},
	}

	d.buildDeck()
	return d
}

// SetSeed switches the deck to a deterministic shuffle source.
// This should only be used by tests
func (d *Deck) SetSeed(seed int64) {
	d.gen = rng.Seeded(seed)
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range []Suit{Clubs, Diamonds, Hearts, Spades} {
		for rank := 2; rank <= 14; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle permutes the current order of the deck.
// Calling it more than once re-shuffles the already shuffled cards
func (d *Deck) Shuffle() {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.gen.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// Deal will deal count cards into each of the supplied hands, one card at a
// time per hand the way a live dealer would.
// If there aren't enough cards left for a full deal, nothing is dealt
func (d *Deck) Deal(hands []*Hand, count int) {
	if !d.CanDraw(count * len(hands)) {
		return
	}

	for i := 0; i < count; i++ {
		for _, hand := range hands {
			card, err := d.Draw()
			if err != nil {
				return
			}

			hand.AddCard(card)
		}
	}
}

// DiscardToBottom places a card at the bottom of the deck.
// The card stays out of play until every card above it has been drawn
func (d *Deck) DiscardToBottom(card *Card) {
	d.Cards = append(d.Cards, card)
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
