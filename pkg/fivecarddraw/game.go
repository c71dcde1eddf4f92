package fivecarddraw

import (
	"errors"

	"fivecarddraw-server/internal/rng"
	"fivecarddraw-server/pkg/deck"
	"fivecarddraw-server/pkg/poker"

	"github.com/sirupsen/logrus"
)

// number of shuffle passes before each round. One pass is enough; the extra
// passes mimic a live dealer
const shufflePasses = 3

const cardsPerHand = 5

// Game runs rounds of five-card draw for a fixed set of seats.
// All mutation happens on the single goroutine driving PlayRound; the only
// blocking points are the ActionProvider calls
type Game struct {
	logger   logrus.FieldLogger
	players  []*Player
	provider ActionProvider
	options  Options

	deck           *deck.Deck
	pot            int
	currentBet     int
	dealerPosition int
	stage          stage
	pendingDraw    []*Player
	gameOver       bool

	gen      rng.Generator
	deckSeed int64
}

// NewGame returns a new game for the given seats.
// The provider is asked for every seat's decisions; use SeatProvider to route
// humans and bots differently
func NewGame(logger logrus.FieldLogger, players []*Player, provider ActionProvider, opts Options) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if len(players) < 2 {
		return nil, errors.New("there must be at least two players")
	}

	if provider == nil {
		return nil, errors.New("an action provider is required")
	}

	return &Game{
		logger:   logger,
		players:  players,
		provider: provider,
		options:  opts,
		gen:      rng.Crypto{},
	}, nil
}

// Players returns the seats in table order
func (g *Game) Players() []*Player {
	return g.players
}

// Pot returns the current pot
func (g *Game) Pot() int {
	return g.pot
}

// CurrentBet returns the table's standing bet
func (g *Game) CurrentBet() int {
	return g.currentBet
}

// DealerPosition returns the index of the dealer seat
func (g *Game) DealerPosition() int {
	return g.dealerPosition
}

// Options returns the game options
func (g *Game) Options() Options {
	return g.options
}

// IsGameOver returns true once fewer than two players hold chips
func (g *Game) IsGameOver() bool {
	return g.gameOver
}

// HasPendingDraw returns true if a showdown draw awaits resolution
func (g *Game) HasPendingDraw() bool {
	return g.pendingDraw != nil
}

// TotalChips returns the conserved chip total: every stack plus the pot.
// The value must never change across a round; callers can use it as an oracle
func (g *Game) TotalChips() int {
	total := g.pot
	for _, p := range g.players {
		total += p.Stack()
	}

	return total
}

// PlayRound runs one full round: blinds, deal, first betting round, exchange,
// second betting round, and showdown.
// Returns nil when fewer than two funded players remain and no final winner
// could be determined. A ShowdownDraw result leaves the pot intact until
// ResolveDraw is called
func (g *Game) PlayRound() (*RoundResult, error) {
	if g.pendingDraw != nil {
		return nil, ErrDrawPending
	}

	g.stage = stageSetup
	funded := g.fundedPlayers()
	if len(funded) < 2 {
		g.gameOver = true
		g.stage = stageGameOver

		if len(funded) == 1 {
			return g.awardEverything(funded[0]), nil
		}

		return nil, nil
	}

	g.setupRound()

	g.stage = stageBlinds
	g.collectBlinds()

	g.stage = stageDeal
	g.dealCards()

	g.stage = stageFirstBettingRound
	if err := g.bettingRound(); err != nil {
		return nil, err
	}

	if actives := g.activePlayers(); len(actives) <= 1 {
		result := g.foldWin(actives[0])
		g.moveDealerButton()
		return result, nil
	}

	g.stage = stageExchange
	if err := g.exchangePhase(); err != nil {
		return nil, err
	}

	g.stage = stageSecondBettingRound
	g.resetBets()
	if err := g.bettingRound(); err != nil {
		return nil, err
	}

	g.stage = stageShowdown
	result := g.showdown()

	g.moveDealerButton()
	g.stage = stageRoundEnd
	return result, nil
}

// setupRound resets the pot, the deck, and every seat for a fresh round
func (g *Game) setupRound() {
	g.pot = 0
	g.currentBet = 0

	g.deck = deck.New()
	if g.deckSeed != 0 {
		g.deck.SetSeed(g.deckSeed)
	}
	for i := 0; i < shufflePasses; i++ {
		g.deck.Shuffle()
	}

	for _, p := range g.players {
		p.ClearHand()
		p.IsActive = p.Stack() > 0
	}
}

// collectBlinds posts the two blinds clockwise from the dealer.
// A short stack posts what it can; the standing bet is what the big blind
// actually posted
func (g *Game) collectBlinds() {
	sbPos := g.nextFundedSeat(g.dealerPosition)
	sb := g.players[sbPos]
	sbAmount := min(g.options.SmallBlind, sb.Stack())
	g.betIntoPot(sb, sbAmount)

	bbPos := g.nextFundedSeat(sbPos)
	bb := g.players[bbPos]
	bbAmount := min(g.options.BigBlind, bb.Stack())
	g.betIntoPot(bb, bbAmount)

	g.currentBet = bbAmount

	g.logger.WithFields(logrus.Fields{
		"smallBlind": sbAmount,
		"bigBlind":   bbAmount,
		"pot":        g.pot,
	}).Debug("blinds posted")
}

// dealCards deals five cards to every seat with chips.
// A folded-out-but-funded seat still gets cards; a broke seat does not
func (g *Game) dealCards() {
	funded := g.fundedPlayers()
	hands := make([]*deck.Hand, len(funded))
	for i, p := range funded {
		hands[i] = &p.hand
	}

	g.deck.Deal(hands, cardsPerHand)
}

// moveDealerButton advances the dealer to the next funded seat.
// If no other seat has chips the button stays put
func (g *Game) moveDealerButton() {
	original := g.dealerPosition
	for {
		g.dealerPosition = (g.dealerPosition + 1) % len(g.players)
		if g.players[g.dealerPosition].Stack() > 0 {
			return
		}

		if g.dealerPosition == original {
			return
		}
	}
}

// foldWin awards the pot to the last remaining active player
func (g *Game) foldWin(winner *Player) *RoundResult {
	pot := g.pot
	g.awardPot(winner)

	g.logger.WithFields(logrus.Fields{
		"winner": winner.Name,
		"pot":    pot,
	}).Info("won by fold")

	return &RoundResult{
		Kind:    FoldWin,
		Winners: []Winner{{Name: winner.Name}},
		Pot:     pot,
		Hands:   g.handSummaries(),
	}
}

// awardEverything hands the sole survivor every chip in play, including any
// orphaned pot, and reports the final winner
func (g *Game) awardEverything(winner *Player) *RoundResult {
	total := g.TotalChips()
	for _, p := range g.players {
		if p != winner {
			p.SetStack(0)
		}
	}
	winner.SetStack(total)
	g.pot = 0

	g.logger.WithFields(logrus.Fields{
		"winner":     winner.Name,
		"totalChips": total,
	}).Info("game over")

	return &RoundResult{
		Kind:       FinalWinner,
		Winners:    []Winner{{Name: winner.Name}},
		TotalChips: total,
	}
}

// awardPot moves the pot into the winner's stack
func (g *Game) awardPot(winner *Player) {
	winner.AddChips(g.pot)
	g.pot = 0
}

// betIntoPot debits the player and credits the pot
func (g *Game) betIntoPot(p *Player, amount int) {
	wagered, err := p.Bet(amount)
	if err != nil {
		// callers cap at the stack, so this cannot happen
		panic(err)
	}

	g.pot += wagered
}

// resetBets clears the standing bet and every seat's committed bet between
// betting rounds
func (g *Game) resetBets() {
	g.currentBet = 0
	for _, p := range g.players {
		p.CurrentBet = 0
	}
}

// callAmount returns what the player owes to stay in
func (g *Game) callAmount(p *Player) int {
	if owed := g.currentBet - p.CurrentBet; owed > 0 {
		return owed
	}

	return 0
}

// fundedPlayers returns the seats that still hold chips
func (g *Game) fundedPlayers() []*Player {
	players := make([]*Player, 0, len(g.players))
	for _, p := range g.players {
		if p.Stack() > 0 {
			players = append(players, p)
		}
	}

	return players
}

// activePlayers returns the seats still contesting the pot
func (g *Game) activePlayers() []*Player {
	players := make([]*Player, 0, len(g.players))
	for _, p := range g.players {
		if p.IsActive {
			players = append(players, p)
		}
	}

	return players
}

// nextFundedSeat returns the next seat clockwise from pos with chips
func (g *Game) nextFundedSeat(pos int) int {
	for {
		pos = (pos + 1) % len(g.players)
		if g.players[pos].Stack() > 0 {
			return pos
		}
	}
}

// handSummaries reveals every dealt hand with its status.
// Hand names are only computed for seats still in contention
func (g *Game) handSummaries() []HandSummary {
	summaries := make([]HandSummary, 0, len(g.players))
	for _, p := range g.players {
		if len(p.hand) == 0 {
			continue
		}

		status := "Folded"
		if p.IsActive {
			status = "Active"
		}
		if p.Stack() == 0 && !p.IsActive {
			status = "Out"
		}

		summary := HandSummary{
			PlayerName: p.Name,
			Hand:       p.hand.Clone(),
			Status:     status,
		}

		if p.IsActive {
			summary.HandName = poker.Rank(p.hand).Category.String()
		}

		summaries = append(summaries, summary)
	}

	return summaries
}

func min(a, b int) int {
	if a < b {
		return a
	}

	return b
}
