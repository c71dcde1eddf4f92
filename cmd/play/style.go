package main

import (
	"fmt"
	"strings"

	"fivecarddraw-server/pkg/fivecarddraw"

	"github.com/pterm/pterm"
)

func printState(game *fivecarddraw.Game) {
	var seats []pterm.Panel
	var dashboard []pterm.Panel

	for i, p := range game.Players() {
		if p.IsBot {
			seats = append(seats, pterm.Panel{Data: printSeatInfo(game, i, p)})
		} else {
			dashboard = append(dashboard, pterm.Panel{Data: printSeatInfo(game, i, p)})
		}
	}

	pot := pterm.Panel{Data: pterm.DefaultHeader.
		WithBackgroundStyle(pterm.BgGreen.ToStyle()).
		Sprintf("Pot: $%d | Blinds: %d/%d", game.Pot(), game.Options().SmallBlind, game.Options().BigBlind)}

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		seats,
		{pot},
		dashboard,
	}).Render()
}

func printSeatInfo(game *fivecarddraw.Game, seat int, p *fivecarddraw.Player) string {
	hpadding := 4
	if !p.IsBot {
		hpadding = 10
	}

	pbox := pterm.DefaultBox.WithLeftPadding(hpadding).WithRightPadding(hpadding).WithTopPadding(1).WithBottomPadding(1)

	status := pterm.LightGreen("Active")
	if !p.IsActive {
		status = pterm.LightRed("Folded")
		if p.Stack() == 0 {
			status = pterm.Red("Out")
		}
	}

	title := p.Name
	if seat == game.DealerPosition() {
		title += " (dealer)"
	}

	info := fmt.Sprintf("%s\nStack: $%d", status, p.Stack())
	if !p.IsBot && len(p.Hand()) > 0 {
		info += "\n" + pterm.BgGreen.Sprint(handLine(p))
	}

	return pbox.WithTitle(title).WithTitleTopLeft().Sprint(info)
}

func handLine(p *fivecarddraw.Player) string {
	cards := make([]string, len(p.Hand()))
	for i, c := range p.Hand() {
		cards[i] = c.String()
	}

	return strings.Join(cards, " - ")
}

func printDecisionPrompt(p *fivecarddraw.Player, state fivecarddraw.TableState) {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := pterm.Sprintf("Your hand: %s\nPot: $%d | To call: $%d | Big blind: $%d",
		pterm.BgGreen.Sprint(handLine(p)), state.Pot, state.CallAmount, state.BigBlind)

	pterm.Println(pbox.WithTitle(pterm.LightYellow("|YOUR TURN|")).WithTitleTopCenter().Sprint(info))
}

func printRoundResult(result *fivecarddraw.RoundResult) {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)

	var lines []string
	switch result.Kind {
	case fivecarddraw.FoldWin:
		lines = append(lines, pterm.Sprintfln("%s takes $%d; everyone else folded", winnerName(result.Winners[0]), result.Pot))
	case fivecarddraw.ShowdownWin:
		w := result.Winners[0]
		lines = append(lines, pterm.Sprintfln("%s wins $%d with %s", winnerName(w), result.Pot, w.HandName))
	case fivecarddraw.ShowdownDraw:
		names := make([]string, len(result.Winners))
		for i, w := range result.Winners {
			names[i] = winnerName(w)
		}
		lines = append(lines, pterm.Sprintfln("Exact tie between %s for $%d", strings.Join(names, " and "), result.Pot))
	case fivecarddraw.FinalWinner:
		lines = append(lines, pterm.Sprintfln("%s wins it all: $%d", winnerName(result.Winners[0]), result.TotalChips))
	}

	for _, h := range result.Hands {
		line := pterm.Sprintfln("%s: %s (%s)", h.PlayerName, h.Hand, h.Status)
		if h.HandName != "" {
			line = pterm.Sprintfln("%s: %s - %s (%s)", h.PlayerName, h.Hand, h.HandName, h.Status)
		}
		lines = append(lines, line)
	}

	pterm.Println(pbox.WithTitle(pterm.LightGreen("|SHOWDOWN|")).WithTitleTopCenter().Sprint(strings.Join(lines, "")))
}

func printDrawOutcome(outcome *fivecarddraw.DrawOutcome) {
	names := make([]string, len(outcome.Winners))
	for i, w := range outcome.Winners {
		names[i] = winnerName(w)
	}

	switch outcome.Resolution {
	case "split":
		pterm.Success.Printfln("Pot of $%d split between %s", outcome.Pot, strings.Join(names, " and "))
	default:
		pterm.Success.Printfln("%s takes the pot of $%d", strings.Join(names, " and "), outcome.Pot)
	}
}

func winnerName(w fivecarddraw.Winner) string {
	return pterm.LightCyan(w.Name)
}
