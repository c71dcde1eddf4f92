package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cardSet(cards []*Card) map[string]bool {
	set := make(map[string]bool)
	for _, c := range cards {
		set[CardToString(c)] = true
	}

	return set
}

func TestNew(t *testing.T) {
	a := assert.New(t)

	d := New()
	a.Equal(52, d.CardsLeft())
	a.Equal(52, len(cardSet(d.Cards)), "no duplicates")

	// deterministic order before shuffle
	a.Equal("2c", CardToString(d.Cards[0]))
	a.Equal("14s", CardToString(d.Cards[51]))
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d := New()
	before := CardsToString(d.Cards)
	d.SetSeed(1)
	d.Shuffle()
	a.NotEqual(before, CardsToString(d.Cards))
	a.Equal(52, len(cardSet(d.Cards)), "shuffle keeps all 52 unique cards")

	// additional passes still permute the full deck
	d.Shuffle()
	d.Shuffle()
	a.Equal(52, len(cardSet(d.Cards)))
}

func TestDeck_Draw(t *testing.T) {
	a := assert.New(t)

	d := New()
	top := d.Cards[0]
	card, err := d.Draw()
	a.NoError(err)
	a.True(top.Equal(card))
	a.Equal(51, d.CardsLeft())

	d.Cards = nil
	card, err = d.Draw()
	a.Equal(ErrEndOfDeck, err)
	a.Nil(card)
}

func TestDeck_DiscardToBottom(t *testing.T) {
	a := assert.New(t)

	d := New()
	card, _ := d.Draw()
	d.DiscardToBottom(card)
	a.Equal(52, d.CardsLeft())

	// the discarded card must be the last one drawn
	for i := 0; i < 51; i++ {
		_, err := d.Draw()
		a.NoError(err)
	}

	last, err := d.Draw()
	a.NoError(err)
	a.True(card.Equal(last))
}

func TestDeck_Deal(t *testing.T) {
	a := assert.New(t)

	d := New()
	d.SetSeed(2)
	d.Shuffle()

	hands := []*Hand{{}, {}, {}}
	d.Deal(hands, 5)
	a.Equal(52-15, d.CardsLeft())

	seen := make(map[string]bool)
	for _, h := range hands {
		a.Equal(5, len(*h))
		for _, c := range *h {
			seen[CardToString(c)] = true
		}
	}
	a.Equal(15, len(seen), "dealt cards are unique")

	// conservation: deck + hands total 52 unique cards
	for _, c := range d.Cards {
		seen[CardToString(c)] = true
	}
	a.Equal(52, len(seen))
}

func TestDeck_Deal_insufficientCards(t *testing.T) {
	a := assert.New(t)

	d := New()
	d.Cards = d.Cards[0:4]

	hands := []*Hand{{}}
	d.Deal(hands, 5)
	a.Equal(0, len(*hands[0]), "deal is a no-op when not enough cards remain")
	a.Equal(4, d.CardsLeft())
}

func TestDeck_CanDraw(t *testing.T) {
	a := assert.New(t)

	d := New()
	a.True(d.CanDraw(52))
	a.False(d.CanDraw(53))
}
