package main

import (
	"go.uber.org/zap"

	"github.com/milk9111/topdown/prefabs"
	"github.com/milk9111/topdown/script"
	"github.com/milk9111/topdown/sim"
)

// guardVars are the globals door guard expressions may reference.
var guardVars = []string{"score", "kills", "hp", "quest_done"}

// loadWorldConfig reads the prefab specs and builds everything the world
// needs up front: construction tuning, the room graph, and the bounty.
func loadWorldConfig(log *zap.Logger) (sim.Config, map[string]sim.RoomConfig, int, error) {
	var cfg sim.Config

	tuning, err := prefabs.LoadTuningSpec()
	if err != nil {
		return cfg, nil, 0, err
	}
	actor, weapon, err := prefabs.BuildTuning(tuning)
	if err != nil {
		return cfg, nil, 0, err
	}

	hostiles, err := prefabs.LoadHostilesSpec()
	if err != nil {
		return cfg, nil, 0, err
	}
	archetypes, err := prefabs.BuildArchetypes(hostiles)
	if err != nil {
		return cfg, nil, 0, err
	}

	roomsSpec, err := prefabs.LoadRoomsSpec()
	if err != nil {
		return cfg, nil, 0, err
	}
	rooms, err := prefabs.BuildRooms(roomsSpec, archetypes, guardCompiler(log))
	if err != nil {
		return cfg, nil, 0, err
	}

	cfg.Actor = actor
	cfg.Weapon = weapon
	return cfg, rooms, roomsSpec.Bounty, nil
}

// guardCompiler adapts the script package to the prefab builder. A guard
// that errors at runtime refuses passage instead of crashing the run.
func guardCompiler(log *zap.Logger) prefabs.GuardCompiler {
	return func(expr string) (func(sim.GuardState) bool, error) {
		g, err := script.Compile(expr, guardVars)
		if err != nil {
			return nil, err
		}
		return func(s sim.GuardState) bool {
			ok, err := g.Eval(map[string]any{
				"score":      s.Score,
				"kills":      s.Kills,
				"hp":         s.HP,
				"quest_done": s.QuestDone,
			})
			if err != nil {
				log.Warn("door guard failed", zap.String("expr", g.Expr()), zap.Error(err))
				return false
			}
			return ok
		}, nil
	}
}
