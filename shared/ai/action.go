package ai

import (
	"github.com/automoto/cryptblade/shared/gamemath"
	"github.com/automoto/cryptblade/shared/grid"
	"github.com/automoto/cryptblade/shared/ident"
)

// ActionKind tags the variant held by an Action.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionMoveTo
	ActionMoveToPlayer
	ActionAttack
)

func (k ActionKind) String() string {
	switch k {
	case ActionMoveTo:
		return "move_to"
	case ActionMoveToPlayer:
		return "move_to_player"
	case ActionAttack:
		return "attack"
	}
	return "none"
}

// Action is an enemy's current intent. Path is consumed from the back:
// the last element is the next cell to walk to and Path[0] is the goal.
// Goal and Target are only set for ActionMoveToPlayer, Dir only for
// ActionAttack.
type Action struct {
	Kind   ActionKind
	Path   []grid.Cell
	Goal   grid.Cell
	Target ident.ID
	Dir    gamemath.Direction
}

func None() Action { return Action{} }

func MoveTo(path []grid.Cell) Action {
	return Action{Kind: ActionMoveTo, Path: path}
}

func MoveToPlayer(target ident.ID, goal grid.Cell, path []grid.Cell) Action {
	return Action{Kind: ActionMoveToPlayer, Path: path, Goal: goal, Target: target}
}

func Attack(dir gamemath.Direction) Action {
	return Action{Kind: ActionAttack, Dir: dir}
}

// Next returns the upcoming waypoint.
func (a Action) Next() (grid.Cell, bool) {
	if len(a.Path) == 0 {
		return grid.Cell{}, false
	}
	return a.Path[len(a.Path)-1], true
}

// Destination returns the final waypoint.
func (a Action) Destination() (grid.Cell, bool) {
	if len(a.Path) == 0 {
		return grid.Cell{}, false
	}
	return a.Path[0], true
}

// Brain is the decision state owned by one enemy.
type Brain struct {
	ID     ident.ID
	Kind   Kind
	Anchor gamemath.Box // spawn position and size
	Leash  float64      // per-spawn override, 0 uses Params.Leash
	Action Action
	Idle   int // ticks left before the next wander
	Facing gamemath.Direction
}
