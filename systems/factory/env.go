package factory

import (
	"math/rand"

	"github.com/automoto/kaipoche/components"
	"github.com/automoto/kaipoche/shared/ids"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnv installs the world's random source and identity generator.
func CreateEnv(ecs *ecs.ECS, rng *rand.Rand, gen ids.Generator) *donburi.Entry {
	entry := ecs.World.Entry(ecs.World.Create(components.Env))
	components.Env.SetValue(entry, components.EnvData{Rand: rng, IDs: gen})
	return entry
}
