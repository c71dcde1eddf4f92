package room

import (
	"errors"
	"sync"

	"fivecarddraw-server/pkg/fivecarddraw"
	"fivecarddraw-server/pkg/session"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// errors the table reports to the client
var (
	ErrRoundInProgress   = errors.New("a round is in progress")
	ErrNoDecisionPending = errors.New("no decision is pending")
	ErrTableClosed       = errors.New("the table is closed")
)

// TableOptions configures a new table
type TableOptions struct {
	Seats         int
	StartingStack int
	SmallBlind    int
	BigBlind      int
}

// Table hosts one game for one human seat plus bots.
// Rounds run on their own goroutine; the engine blocks inside the human
// provider while the table relays the decision to the client
type Table struct {
	// UUID uniquely identifies the table
	UUID string

	logger logrus.FieldLogger
	game   *fivecarddraw.Game
	human  *humanProvider

	lock    sync.RWMutex
	clients map[*Client]bool

	gameLock    sync.Mutex
	roundActive bool

	done      chan struct{}
	closeOnce sync.Once
}

// NewTable returns a table with a fresh game
func NewTable(logger logrus.FieldLogger, opts TableOptions) (*Table, error) {
	t := newTable(logger)

	game, err := fivecarddraw.NewGame(t.logger, fivecarddraw.NewPlayers(opts.Seats, opts.StartingStack), t.seatProvider(), fivecarddraw.Options{
		SmallBlind: opts.SmallBlind,
		BigBlind:   opts.BigBlind,
	})
	if err != nil {
		return nil, err
	}

	t.game = game
	return t, nil
}

// NewTableFromSession returns a table with a game rebuilt from a saved session
func NewTableFromSession(logger logrus.FieldLogger, sess *session.Session) (*Table, error) {
	t := newTable(logger)

	game, err := fivecarddraw.Restore(t.logger, sess, t.seatProvider())
	if err != nil {
		return nil, err
	}

	t.game = game
	return t, nil
}

func newTable(logger logrus.FieldLogger) *Table {
	id := uuid.New().String()
	t := &Table{
		UUID:    id,
		logger:  logger.WithField("table", id),
		clients: make(map[*Client]bool),
		done:    make(chan struct{}),
	}

	t.human = newHumanProvider()
	t.human.table = t

	return t
}

func (t *Table) seatProvider() fivecarddraw.SeatProvider {
	return fivecarddraw.SeatProvider{
		Human: t.human,
		Bot:   fivecarddraw.NewBotProvider(),
	}
}

// AddClient attaches a connected client to the table
func (t *Table) AddClient(c *Client) {
	t.lock.Lock()
	t.clients[c] = true
	t.lock.Unlock()

	t.logger.WithField("client", c.String()).Debug("client connected")

	if state, err := t.State(); err == nil {
		c.Send(&Response{Key: "state", Data: state})
	}
}

// RemoveClient detaches a client.
// Returns true when the table has no clients left
func (t *Table) RemoveClient(c *Client) (lastClient bool) {
	t.lock.Lock()
	delete(t.clients, c)
	nClients := len(t.clients)
	t.lock.Unlock()

	t.logger.WithField("client", c.String()).Debug("client disconnected")
	return nClients == 0
}

// Clients returns the connected (at the time) clients
func (t *Table) Clients() []*Client {
	t.lock.RLock()
	defer t.lock.RUnlock()

	clients := make([]*Client, 0, len(t.clients))
	for client := range t.clients {
		clients = append(clients, client)
	}

	return clients
}

func (t *Table) broadcast(msg interface{}) {
	for _, client := range t.Clients() {
		if !client.Send(msg) {
			t.logger.WithField("client", client.String()).Warn("client send buffer full")
		}
	}
}

// EndShift is called when the table is no longer needed.
// A round blocked on a human decision unwinds with ErrTableClosed
func (t *Table) EndShift() {
	t.closeOnce.Do(func() {
		close(t.done)
	})
}

// ReceivedMessage is called when a client sends a message to the table
func (t *Table) ReceivedMessage(c *Client, msg *PayloadIn) {
	switch msg.Action {
	case "startRound":
		if err := t.beginRound(); err != nil {
			c.Send(newErrorResponse(msg.Context, err))
			return
		}

		c.Send(OK(msg.Context))
	case "action", "exchange":
		if !t.human.offer(msg) {
			c.Send(newErrorResponse(msg.Context, ErrNoDecisionPending))
		}
	case "resolveDraw":
		if err := t.beginDrawResolution(fivecarddraw.DrawChoice(msg.Value)); err != nil {
			c.Send(newErrorResponse(msg.Context, err))
			return
		}

		c.Send(OK(msg.Context))
	case "state":
		state, err := t.State()
		if err != nil {
			c.Send(newErrorResponse(msg.Context, err))
			return
		}

		c.Send(&Response{Key: "state", Data: state, Context: msg.Context})
	default:
		t.logger.WithField("msg", msg).Warn("unknown message")
		c.Send(newErrorResponse(msg.Context, errors.New("unknown action")))
	}
}

// beginRound claims the game and plays a round on a new goroutine
func (t *Table) beginRound() error {
	if err := t.claimGame(); err != nil {
		return err
	}

	go func() {
		defer t.releaseGame()

		result, err := t.game.PlayRound()
		if err != nil {
			t.logger.WithError(err).Error("round failed")
			t.broadcast(newErrorResponse("", err))
			return
		}

		if result != nil {
			t.broadcast(&Response{Key: "roundResult", Data: result})
		}

		t.broadcast(&Response{Key: "state", Data: t.buildState()})
	}()

	return nil
}

// beginDrawResolution resolves a pending showdown draw on a new goroutine.
// The continue path runs another betting round, so this blocks on human
// decisions the same way a round does
func (t *Table) beginDrawResolution(choice fivecarddraw.DrawChoice) error {
	if err := t.claimGame(); err != nil {
		return err
	}

	go func() {
		defer t.releaseGame()

		outcome, err := t.game.ResolveDraw(choice)
		if err != nil {
			t.logger.WithError(err).Error("draw resolution failed")
			t.broadcast(newErrorResponse("", err))
			return
		}

		t.broadcast(&Response{Key: "drawOutcome", Data: outcome})
		t.broadcast(&Response{Key: "state", Data: t.buildState()})
	}()

	return nil
}

func (t *Table) claimGame() error {
	t.gameLock.Lock()
	defer t.gameLock.Unlock()

	select {
	case <-t.done:
		return ErrTableClosed
	default:
	}

	if t.roundActive {
		return ErrRoundInProgress
	}

	t.roundActive = true
	return nil
}

func (t *Table) releaseGame() {
	t.gameLock.Lock()
	t.roundActive = false
	t.gameLock.Unlock()
}

// Snapshot reduces the game to its persisted session shape.
// Only meaningful between rounds
func (t *Table) Snapshot() (*session.Session, error) {
	t.gameLock.Lock()
	defer t.gameLock.Unlock()

	if t.roundActive {
		return nil, ErrRoundInProgress
	}

	return t.game.Snapshot(), nil
}

// SeatState is the client-facing view of a single seat
type SeatState struct {
	Name       string `json:"name"`
	Stack      int    `json:"stack"`
	CurrentBet int    `json:"currentBet"`
	IsActive   bool   `json:"isActive"`
	IsBot      bool   `json:"isBot"`
}

// TableState is the client-facing view of the whole table.
// Hand holds the human seat's cards; bot hands are never exposed
type TableState struct {
	UUID           string      `json:"uuid"`
	Pot            int         `json:"pot"`
	CurrentBet     int         `json:"currentBet"`
	DealerPosition int         `json:"dealerPosition"`
	GameOver       bool        `json:"gameOver"`
	PendingDraw    bool        `json:"pendingDraw"`
	Players        []SeatState `json:"players"`
	Hand           []string    `json:"hand"`
}

// State returns the client-facing view of the table between rounds
func (t *Table) State() (*TableState, error) {
	t.gameLock.Lock()
	defer t.gameLock.Unlock()

	if t.roundActive {
		return nil, ErrRoundInProgress
	}

	return t.buildState(), nil
}

// buildState must only be called while the caller holds the game
func (t *Table) buildState() *TableState {
	state := &TableState{
		UUID:           t.UUID,
		Pot:            t.game.Pot(),
		CurrentBet:     t.game.CurrentBet(),
		DealerPosition: t.game.DealerPosition(),
		GameOver:       t.game.IsGameOver(),
		PendingDraw:    t.game.HasPendingDraw(),
	}

	for _, p := range t.game.Players() {
		state.Players = append(state.Players, SeatState{
			Name:       p.Name,
			Stack:      p.Stack(),
			CurrentBet: p.CurrentBet,
			IsActive:   p.IsActive,
			IsBot:      p.IsBot,
		})

		if !p.IsBot {
			state.Hand = handStrings(p.Hand())
		}
	}

	return state
}
