package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"fivecarddraw-server/internal/config"
	"fivecarddraw-server/pkg/fivecarddraw"
	"fivecarddraw-server/pkg/session"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/sirupsen/logrus"
)

var (
	seats         = flag.Int("seats", 0, "number of seats, including you")
	startingStack = flag.Int("stack", 0, "starting stack per seat")
	smallBlind    = flag.Int("small-blind", 0, "small blind")
	bigBlind      = flag.Int("big-blind", 0, "big blind")
)

func main() {
	flag.Parse()

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Five Card ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("Draw", pterm.FgRed.ToStyle()),
	).Render()

	store, err := session.NewStore(config.Instance().SessionsPath)
	if err != nil {
		pterm.Error.Printfln("could not open the session store: %s", err)
		return
	}
	defer store.Close()

	game, err := newGame(logger)
	if err != nil {
		pterm.Error.Printfln("could not start the game: %s", err)
		return
	}

	for {
		printState(game)

		switch menuChoice() {
		case "Play a round":
			playRound(game)
		case "Save game":
			saveGame(store, game)
		case "Load game":
			if loaded := loadGame(logger, store); loaded != nil {
				game = loaded
			}
		case "Quit":
			return
		}

		if game.IsGameOver() {
			return
		}
	}
}

func menuChoice() string {
	options := []string{"Play a round", "Save game", "Load game", "Quit"}
	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("What next?").
		WithOptions(options).
		Show()

	return choice
}

func newGame(logger logrus.FieldLogger) (*fivecarddraw.Game, error) {
	defaults := config.Instance().Game

	opts := fivecarddraw.Options{
		SmallBlind: orDefault(*smallBlind, defaults.SmallBlind),
		BigBlind:   orDefault(*bigBlind, defaults.BigBlind),
	}

	players := fivecarddraw.NewPlayers(
		orDefault(*seats, defaults.Seats),
		orDefault(*startingStack, defaults.StartingStack),
	)

	return fivecarddraw.NewGame(logger, players, seatProvider(), opts)
}

func seatProvider() fivecarddraw.SeatProvider {
	return fivecarddraw.SeatProvider{
		Human: cliProvider{},
		Bot:   fivecarddraw.NewBotProvider(),
	}
}

func orDefault(val, def int) int {
	if val > 0 {
		return val
	}

	return def
}

func playRound(game *fivecarddraw.Game) {
	result, err := game.PlayRound()
	if err != nil {
		pterm.Error.Printfln("the round failed: %s", err)
		return
	}

	if result == nil {
		pterm.Info.Println("Not enough funded players for a round.")
		return
	}

	printRoundResult(result)

	for game.HasPendingDraw() {
		choice, _ := pterm.DefaultInteractiveSelect.
			WithDefaultText("The showdown is tied. Resolve the draw:").
			WithOptions([]string{"Split the pot", "Keep playing"}).
			Show()

		drawChoice := fivecarddraw.DrawChoiceSplit
		if choice == "Keep playing" {
			drawChoice = fivecarddraw.DrawChoiceContinue
		}

		outcome, err := game.ResolveDraw(drawChoice)
		if err != nil {
			pterm.Error.Printfln("could not resolve the draw: %s", err)
			return
		}

		printDrawOutcome(outcome)
	}
}

func saveGame(store *session.Store, game *fivecarddraw.Game) {
	id, err := store.Save(context.Background(), game.Snapshot())
	if err != nil {
		pterm.Error.Printfln("could not save the game: %s", err)
		return
	}

	pterm.Success.Printfln("Saved as %s", id)
}

func loadGame(logger logrus.FieldLogger, store *session.Store) *fivecarddraw.Game {
	infos, err := store.List(context.Background())
	if err != nil {
		pterm.Error.Printfln("could not list the saved games: %s", err)
		return nil
	}

	if len(infos) == 0 {
		pterm.Info.Println("No saved games.")
		return nil
	}

	options := make([]string, len(infos))
	for i, info := range infos {
		options[i] = fmt.Sprintf("%s | %s | %s", info.GameID, info.SaveDate, info.Summary)
	}

	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Pick a saved game").
		WithOptions(options).
		Show()

	gameID := strings.SplitN(choice, " | ", 2)[0]
	sess, err := store.Get(context.Background(), gameID)
	if err != nil {
		pterm.Error.Printfln("could not load %s: %s", gameID, err)
		return nil
	}

	game, err := fivecarddraw.Restore(logger, sess, seatProvider())
	if err != nil {
		pterm.Error.Printfln("could not restore %s: %s", gameID, err)
		return nil
	}

	pterm.Success.Printfln("Loaded %s", gameID)
	return game
}

// cliProvider asks the human seat for decisions on the terminal
type cliProvider struct{}

func (cliProvider) BettingAction(p *fivecarddraw.Player, state fivecarddraw.TableState) (fivecarddraw.Action, error) {
	printDecisionPrompt(p, state)

	options := []string{"Check", "Call", "Raise", "Fold"}
	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Your action").
		WithOptions(options).
		Show()

	if choice == "Raise" {
		amount, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText("Raise by how much?").
			Show()

		action, err := fivecarddraw.ParseAction("raise " + strings.TrimSpace(amount))
		if err != nil {
			pterm.Error.Printfln("Invalid raise: %s", err)
		}

		return action, err
	}

	return fivecarddraw.ParseAction(strings.ToLower(choice))
}

func (cliProvider) ExchangeSelection(p *fivecarddraw.Player) ([]int, error) {
	options := make([]string, len(p.Hand()))
	for i, card := range p.Hand() {
		options[i] = fmt.Sprintf("%d: %s", i+1, card)
	}

	chosen, _ := pterm.DefaultInteractiveMultiselect.
		WithDefaultText("Pick up to three cards to exchange").
		WithOptions(options).
		Show()

	selection := make([]int, 0, len(chosen))
	for _, c := range chosen {
		slot, err := strconv.Atoi(strings.SplitN(c, ":", 2)[0])
		if err != nil {
			return nil, err
		}

		selection = append(selection, slot-1)
	}

	if len(selection) > 3 {
		pterm.Error.Println("You can exchange at most three cards; keeping your hand.")
		return nil, nil
	}

	return selection, nil
}
