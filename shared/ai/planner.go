package ai

import (
	"fmt"
	"strings"

	"github.com/automoto/cryptblade/shared/gamemath"
)

// CommitMode controls when an enemy's movement becomes visible to the
// enemies deciding after it in the same tick.
type CommitMode int

const (
	// CommitSequential applies each move before the next enemy decides,
	// so later enemies react to earlier ones.
	CommitSequential CommitMode = iota
	// CommitSimultaneous decides every enemy from the same snapshot and
	// applies all moves afterwards.
	CommitSimultaneous
)

func (m CommitMode) String() string {
	if m == CommitSimultaneous {
		return "simultaneous"
	}
	return "sequential"
}

func ParseCommitMode(s string) (CommitMode, error) {
	switch strings.ToLower(s) {
	case "", "sequential":
		return CommitSequential, nil
	case "simultaneous":
		return CommitSimultaneous, nil
	}
	return 0, fmt.Errorf("unknown commit mode %q", s)
}

// Agent is an enemy handed to Tick: its brain, updated in place, and the
// box it currently occupies.
type Agent struct {
	Brain *Brain
	Box   gamemath.Box
}

// Tick runs one decision pass over agents in order. Decisions are
// computed first and brains are written back afterwards; mode decides
// whether w sees each move immediately or only once all have decided.
func (e *Engine) Tick(agents []Agent, w *World, mode CommitMode) []Decision {
	decisions := make([]Decision, len(agents))
	for i, a := range agents {
		d := e.Decide(*a.Brain, a.Box, w)
		decisions[i] = d
		if mode == CommitSequential {
			w.Move(a.Brain.ID, a.Box.Translate(d.DX, d.DY))
		}
	}
	for i, a := range agents {
		*a.Brain = decisions[i].Brain
		if mode == CommitSimultaneous {
			w.Move(a.Brain.ID, a.Box.Translate(decisions[i].DX, decisions[i].DY))
		}
	}
	return decisions
}
