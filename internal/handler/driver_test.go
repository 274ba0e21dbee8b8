package handler

import (
	"testing"

	"go.uber.org/zap"

	"euchre/internal/engine"
	"euchre/internal/player"
)

// Four heuristic bots must always be able to finish a game: no decision
// may ever be rejected by the engine.
func TestHeuristicBotsFinishGames(t *testing.T) {
	for run := 0; run < 25; run++ {
		bots := map[engine.Seat]player.Player{
			0: player.NewHeuristicBot(),
			1: player.NewHeuristicBot(),
			2: player.NewHeuristicBot(),
			3: player.NewHeuristicBot(),
		}
		st := engine.NewGame(engine.GameParams{}, engine.Seat(run%4))
		if err := st.DealNewHand(); err != nil {
			t.Fatalf("run %d deal: %v", run, err)
		}
		for steps := 0; !st.GameOver; steps++ {
			if steps > 10000 {
				t.Fatalf("run %d: game did not terminate", run)
			}
			var err error
			if st.Phase == engine.PhaseHandOver {
				err = st.AdvanceAfterHand()
			} else {
				err = RunBotAction(st, st.Turn, bots[st.Turn])
			}
			if err != nil {
				t.Fatalf("run %d step %d (%v): %v", run, steps, st.Phase, err)
			}
		}
		won, team := st.Winner()
		if !won {
			t.Fatalf("run %d ended without a winner", run)
		}
		if st.Scores[team] < 10 {
			t.Fatalf("run %d: winning team at %d points", run, st.Scores[team])
		}
	}
}

// The driver must hand control back whenever the human is up and never
// act for the human seat.
func TestDriverStopsAtHumanTurn(t *testing.T) {
	gm := NewGame("test", engine.Seat(0), player.NewHeuristicBot, zap.NewNop())
	if err := gm.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	v := gm.View()
	if v.GameOver {
		t.Fatalf("game over immediately after start")
	}
	if v.Phase == "hand_over" {
		return // rare: a bot went alone and the human sat the hand out
	}
	if v.Turn != 0 {
		t.Fatalf("driver stopped at phase %s turn %d, want the human up", v.Phase, v.Turn)
	}
	if len(v.Hand) == 0 {
		t.Fatalf("human hand missing from view")
	}
	if v.HandSizes[0] != len(v.Hand) {
		t.Fatalf("hand size %d disagrees with contents %d", v.HandSizes[0], len(v.Hand))
	}
}

func TestSpectatorViewHidesHands(t *testing.T) {
	gm := NewGame("test", engine.Seat(0), player.NewHeuristicBot, zap.NewNop())
	if err := gm.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	v := gm.SpectatorView()
	if len(v.Hand) != 0 || len(v.Legal) != 0 {
		t.Fatalf("spectator view leaks hand contents: %+v", v)
	}
}
