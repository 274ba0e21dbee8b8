package main

import (
	"os"
	"strconv"

	"github.com/pterm/pterm"

	"euchre/internal/engine"
	"euchre/internal/handler"
	"euchre/internal/player"
)

// StartSimulation plays all-bot games with the heuristic pair at seats
// 0/2 against the random pair at seats 1/3 and prints the results. It
// is the end-to-end exerciser for the engine and the bots.
func StartSimulation() {
	games := 20
	if len(os.Args) > 2 {
		if n, err := strconv.Atoi(os.Args[2]); err == nil && n > 0 {
			games = n
		}
	}

	bots := map[engine.Seat]player.Player{
		0: player.NewHeuristicBot(),
		1: player.NewRandomBot(),
		2: player.NewHeuristicBot(),
		3: player.NewRandomBot(),
	}

	var wins [2]int
	for i := 0; i < games; i++ {
		st := engine.NewGame(engine.GameParams{}, engine.Seat(i%4))
		if err := st.DealNewHand(); err != nil {
			pterm.Error.Printfln("game %d: %v", i+1, err)
			return
		}
		for !st.GameOver {
			var err error
			if st.Phase == engine.PhaseHandOver {
				err = st.AdvanceAfterHand()
			} else {
				err = handler.RunBotAction(st, st.Turn, bots[st.Turn])
			}
			if err != nil {
				pterm.Error.Printfln("game %d stalled: %v", i+1, err)
				return
			}
		}
		_, team := st.Winner()
		wins[team]++
		pterm.Info.Printfln("game %d: heuristic %d - %d random (team %d wins)",
			i+1, st.Scores[0], st.Scores[1], team)
	}

	summary := pterm.Sprintfln("heuristic pair: %d/%d wins\nrandom pair:    %d/%d wins",
		wins[0], games, wins[1], games)
	pterm.DefaultBox.WithTitle(pterm.LightYellow("|SIMULATION|")).WithTitleTopCenter().Println(summary)
	if wins[0] >= wins[1] {
		pterm.Success.Println("heuristic pair ahead")
	} else {
		pterm.Warning.Println("random pair ahead, check the thresholds")
	}
}
