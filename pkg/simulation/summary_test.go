package simulation

import (
	"strings"
	"testing"
)

func TestSummary_String_Branches(t *testing.T) {
	t.Run("AllCleaned", func(t *testing.T) {
		s := &Summary{AllCleaned: true, Step: 42, MaxSteps: 100, TilesCleaned: 12, TotalMoves: 117}
		got := s.String()
		want := "All dirty tiles cleaned at step 42.\nTotal tiles cleaned: 12\nTotal agent moves: 117"
		if got != want {
			t.Errorf("String() = %q; want %q", got, want)
		}
	})

	t.Run("BudgetExhausted", func(t *testing.T) {
		s := &Summary{AllCleaned: false, Step: 100, MaxSteps: 100, TilesCleaned: 7, TotalMoves: 250}
		got := s.String()
		want := "Max steps (100) reached at step 100.\nTotal tiles cleaned: 7\nTotal agent moves: 250"
		if got != want {
			t.Errorf("String() = %q; want %q", got, want)
		}
	})
}

func TestSummary_MatchesRunOutcome(t *testing.T) {
	// Drive a full run and check the summary against what was observed
	// tick by tick, whichever terminal branch the run takes.
	e := newTestEngine(t, DefaultConfig(), 21)

	lastVanishStep := 0
	for !e.Done() {
		e.Tick()
		if len(e.DirtyTiles()) == 0 && lastVanishStep == 0 {
			lastVanishStep = e.CurrentStep()
		}
	}

	s, ok := e.FinalSummary()
	if !ok {
		t.Fatal("no final summary on a done engine")
	}

	totalMoves := 0
	for _, a := range e.Agents() {
		totalMoves += a.MoveCount
	}
	if s.TotalMoves != totalMoves {
		t.Errorf("TotalMoves = %d; agents sum to %d", s.TotalMoves, totalMoves)
	}
	if s.TilesCleaned != e.CleanedCount() {
		t.Errorf("TilesCleaned = %d; engine cleaned %d", s.TilesCleaned, e.CleanedCount())
	}

	if len(e.DirtyTiles()) == 0 {
		// Scenario D: the all-cleaned branch reports the tick at which the
		// last tile vanished.
		if !s.AllCleaned {
			t.Error("registry empty but summary took the budget branch")
		}
		if s.Step != lastVanishStep {
			t.Errorf("Step = %d; last tile vanished at %d", s.Step, lastVanishStep)
		}
	} else {
		if s.AllCleaned {
			t.Error("registry not empty but summary took the all-cleaned branch")
		}
		if s.Step != e.CurrentStep() {
			t.Errorf("Step = %d; budget hit at %d", s.Step, e.CurrentStep())
		}
	}
}

func TestSummary_EmptyRegistryBranchWinsTies(t *testing.T) {
	// Force a tie: with the whole 1x2 board next to the corner, the single
	// dirty tile can only be the agent's neighbor, so with budget 1 a run
	// where the agent moves cleans everything on the very last allowed step.
	// The emptied-registry branch must win because it is checked first.
	cfg := &Config{GridWidth: 1, GridHeight: 2, AgentCount: 1, DirtyCount: 1, MaxSteps: 1}

	// Try seeds until the agent actually moves on its one tick; most seeds
	// pick an out-of-bounds offset on a 1x2 board, which is also fine but
	// exercises the other branch.
	for seed := uint64(1); seed < 200; seed++ {
		e := newTestEngine(t, cfg, seed)
		e.Tick()
		if !e.Done() {
			t.Fatal("engine must be done after its single budgeted tick")
		}
		s, _ := e.FinalSummary()
		if e.CleanedCount() == 1 {
			if !s.AllCleaned {
				t.Fatalf("seed %d: tile cleaned on the final step but budget branch reported", seed)
			}
			if !strings.HasPrefix(s.String(), "All dirty tiles cleaned at step 1.") {
				t.Fatalf("seed %d: unexpected report %q", seed, s.String())
			}
			return
		}
	}
	t.Fatal("no seed below 200 produced a move onto the dirty tile")
}
