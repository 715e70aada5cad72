package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/truco/domain/truco"
	"github.com/luca-patrignani/truco/ledger"
	"github.com/luca-patrignani/truco/wallet"
)

// table groups what the front-end drives during a session.
type table struct {
	match   *truco.Match
	wallet  *wallet.Memory
	history *ledger.Blockchain
	logger  *slog.Logger
}

type action struct {
	label string
	run   func(t *table) (quit bool, err error)
}

func main() {
	balance := flag.Float64("balance", 300, "starting balance of the wallet")
	seed := flag.Uint64("seed", 0, "seed for a reproducible match (0 picks a random one)")
	debug := flag.Bool("debug", false, "log engine events")
	flag.Parse()

	// Create a new slog handler with the default PTerm logger
	level := pterm.LogLevelWarn
	if *debug {
		level = pterm.LogLevelDebug
	}
	logger := slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(level)))

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("T", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ruco", pterm.FgDarkGray.ToStyle()),
	).Render()

	w, err := wallet.New(*balance)
	if err != nil {
		logger.Error("cannot open the wallet", "balance", *balance, "error", err)
		os.Exit(1)
	}
	pterm.Info.Printfln("Wallet balance: %.2f", w.Balance())

	history := ledger.NewBlockchain()
	t := &table{wallet: w, history: history, logger: logger}
	if *seed != 0 {
		t.match = truco.NewMatch(w.Balance(),
			truco.WithRand(rand.New(rand.NewPCG(*seed, *seed))),
			truco.WithLogger(logger),
			truco.WithRecorder(history))
	} else {
		t.match = truco.NewMatch(w.Balance(), truco.WithLogger(logger), truco.WithRecorder(history))
	}

	for {
		actions := availableActions(t.match.State())
		labels := make([]string, len(actions))
		for i, a := range actions {
			labels[i] = a.label
		}
		choice, err := pterm.DefaultInteractiveSelect.WithOptions(labels).Show("What do you want to do?")
		if err != nil {
			logger.Error("reading the action", "error", err)
			os.Exit(1)
		}
		for _, a := range actions {
			if a.label != choice {
				continue
			}
			quit, err := a.run(t)
			if err != nil {
				pterm.Error.Println(err.Error())
			}
			if quit {
				printHistory(history)
				return
			}
			break
		}
	}
}

func availableActions(s truco.Snapshot) []action {
	var actions []action
	switch {
	case s.MatchWinner != truco.NoSide:
		actions = append(actions, action{"Reset the match", resetMatch})
	case s.State == truco.Active:
		for i, c := range s.PlayerHand {
			actions = append(actions, action{fmt.Sprintf("Play %s (%s)", c.Label(), c.Describe()), playCard(i)})
		}
		if s.Multiplier == 1 {
			actions = append(actions, action{"Ask for truco", requestRaise})
		}
	default:
		actions = append(actions, action{"Deal a new hand", startHand})
	}
	return append(actions, action{"Quit", func(*table) (bool, error) { return true, nil }})
}

func startHand(t *table) (bool, error) {
	input, err := pterm.DefaultInteractiveTextInput.
		WithDefaultText(fmt.Sprintf("Stake (balance %.2f)", t.match.Balance())).
		WithDefaultValue("10").
		Show()
	if err != nil {
		return false, err
	}
	stake, err := parseAmount(input)
	if err != nil {
		return false, err
	}
	s, err := t.match.StartHand(stake)
	if err != nil {
		return false, err
	}
	printState(s, t.wallet.Balance())
	return false, nil
}

func playCard(index int) func(t *table) (bool, error) {
	return func(t *table) (bool, error) {
		before := t.match.Balance()
		res, err := t.match.PlayCard(index)
		if err != nil {
			return false, err
		}
		if err := t.settleWallet(before, res.Balance); err != nil {
			return false, err
		}
		printState(t.match.State(), t.wallet.Balance(), getRoundPanel(res))
		return false, nil
	}
}

func requestRaise(t *table) (bool, error) {
	before := t.match.Balance()
	res, err := t.match.RequestRaise()
	if err != nil {
		return false, err
	}
	if err := t.settleWallet(before, res.Balance); err != nil {
		return false, err
	}
	printState(t.match.State(), t.wallet.Balance(), getRaisePanel(res))
	return false, nil
}

func resetMatch(t *table) (bool, error) {
	t.match.ResetMatch(t.wallet.Balance())
	pterm.Success.Printfln("New match started with %.2f", t.match.Balance())
	return false, nil
}

// settleWallet moves the balance change of the last settlement into the wallet.
func (t *table) settleWallet(before, after float64) error {
	if err := wallet.Reconcile(t.wallet, before, after); err != nil {
		if errors.Is(err, wallet.ErrInsufficientFunds) {
			t.logger.Warn("wallet out of sync with the table", "wallet", t.wallet.Balance(), "table", after)
		}
		return err
	}
	return nil
}

func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid amount", s)
	}
	return v, nil
}
