package factory

import (
	"math/rand"

	"github.com/automoto/cryptblade/archetypes"
	"github.com/automoto/cryptblade/components"
	cfg "github.com/automoto/cryptblade/config"
	"github.com/automoto/cryptblade/shared/ai"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlanner builds the enemy decision engine from the current config.
func CreatePlanner(ecs *ecs.ECS) *donburi.Entry {
	engine := ai.NewEngine(cfg.Grid.CellSize, cfg.EnemyParams(), rand.New(rand.NewSource(cfg.AI.Seed)))
	if cfg.AI.SearchBudget > 0 {
		engine.Search.Budget = cfg.AI.SearchBudget
	}

	planner := archetypes.Planner.Spawn(ecs)
	components.Planner.SetValue(planner, components.PlannerData{
		Engine: engine,
		Mode:   cfg.AI.Commit,
	})
	return planner
}
