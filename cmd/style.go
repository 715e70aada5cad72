package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/truco/domain/truco"
	"github.com/luca-patrignani/truco/ledger"
)

func sideName(s truco.Side) string {
	switch s {
	case truco.SidePlayer:
		return pterm.LightCyan("You")
	case truco.SideOpponent:
		return pterm.LightMagenta("Opponent")
	default:
		return pterm.Gray("Nobody")
	}
}

func getRoundPanel(res truco.PlayResult) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := pterm.Sprintfln("You played %s, the opponent played %s", res.PlayerCard, res.OpponentCard)
	if res.RoundWinner == truco.NoSide {
		info += pterm.Sprintfln("Round %d tied", res.Round)
	} else {
		info += pterm.Sprintfln("Round %d won by %s", res.Round, sideName(res.RoundWinner))
	}
	if res.HandConcluded {
		info += pterm.Sprintfln("%s took the hand at %dx, balance %.2f", sideName(res.HandWinner), res.Multiplier, res.Balance)
	}
	if res.MatchWinner != truco.NoSide {
		info += pterm.Sprintfln("%s won the match!", sideName(res.MatchWinner))
	}
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|LAST ROUND|")).WithTitleTopCenter().Sprint(info)}
}

func getRaisePanel(res truco.RaiseResult) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var title string
	switch res.Outcome {
	case truco.RaiseAccepted, truco.RaiseAlreadyMaximum:
		title = pterm.LightGreen("|TRUCO|")
	case truco.RaiseFolded:
		title = pterm.LightYellow("|TRUCO|")
	default:
		title = pterm.LightRed("|TRUCO|")
	}
	info := pterm.Sprintfln("%s (%dx)", res.Message, res.Multiplier)
	if res.MatchWinner != truco.NoSide {
		info += pterm.Sprintfln("%s won the match!", sideName(res.MatchWinner))
	}
	return pterm.Panel{Data: pbox.WithTitle(title).WithTitleTopCenter().Sprint(info)}
}

func printState(s truco.Snapshot, walletBalance float64, additionalPanel ...pterm.Panel) {
	board := pterm.Panel{Data: printBoardInfo(s)}
	score := pterm.Panel{Data: printScoreInfo(s, walletBalance)}
	hand := pterm.Panel{Data: printHandInfo(s)}
	dashboard := []pterm.Panel{hand}
	dashboard = append(dashboard, additionalPanel...)

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{board, score},
		dashboard,
	}).Render()
}

func printBoardInfo(s truco.Snapshot) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle("Table").WithTitleTopLeft().Sprintf(
		"Vira: %s\nManilha: %s\nStake: %.2f x%d\nRound: %d\nRounds won: %d - %d",
		s.Vira, s.Manilha, s.BaseStake, s.Multiplier, min(s.Round, 3), s.PlayerRounds, s.OpponentRounds)
}

func printScoreInfo(s truco.Snapshot, walletBalance float64) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle("Match").WithTitleTopLeft().Sprintf(
		"You: %d / %d\nOpponent: %d / %d\nTable balance: %.2f\nWallet: %.2f",
		s.PlayerMatchPoints, s.Goal, s.OpponentMatchPoints, s.Goal, s.Balance, walletBalance)
}

func printHandInfo(s truco.Snapshot) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(10).WithTopPadding(1).WithBottomPadding(1)
	cards := make([]string, len(s.PlayerHand))
	for i, c := range s.PlayerHand {
		cards[i] = c.String()
	}
	var state string
	if s.State == truco.Active {
		state = pterm.LightGreen("Your turn")
	} else {
		state = pterm.Gray(string(s.State))
	}
	hand := pterm.BgGreen.Sprint(" " + strings.Join(cards, " - ") + " ")
	return pbox.WithTitle("Your hand").WithTitleTopLeft().Sprintf("%s\n%s\n", state, hand)
}

func printHistory(history *ledger.Blockchain) {
	data := pterm.TableData{{"Hand", "Winner", "Stake", "Amount", "Balance", "Points"}}
	for _, s := range history.Settlements() {
		winner := sideName(s.Winner)
		if s.Folded {
			winner += " (fold)"
		}
		data = append(data, []string{
			fmt.Sprint(s.Hand),
			winner,
			fmt.Sprintf("%.2f x%d", s.BaseStake, s.Multiplier),
			fmt.Sprintf("%+.2f", s.Amount),
			fmt.Sprintf("%.2f", s.Balance),
			fmt.Sprintf("%d - %d", s.PlayerMatchPoints, s.OpponentMatchPoints),
		})
	}
	if len(data) > 1 {
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	if err := history.Verify(); err != nil {
		pterm.Error.Printfln("hand history is corrupted: %v", err)
		return
	}
	pterm.Success.Printfln("%d hands recorded", len(data)-1)
}
