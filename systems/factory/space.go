package factory

import (
	"math/rand"

	"github.com/automoto/kaipoche/archetypes"
	"github.com/automoto/kaipoche/components"
	cfg "github.com/automoto/kaipoche/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreatePlayfieldSpace covers the viewport plus the spawn margin on every side.
func CreatePlayfieldSpace(ecs *ecs.ECS) *donburi.Entry {
	m := cfg.C.SpaceMargin
	return CreateSpace(ecs, cfg.C.Width+2*m, cfg.C.Height+2*m, cfg.C.SpaceCell, cfg.C.SpaceCell)
}

// attachBody gives entry a collision body centered on pos and registers it
// with the space, if one exists.
func attachBody(ecs *ecs.ECS, entry *donburi.Entry, pos math.Vec2, w, h float64, tag string) *resolv.Object {
	margin := float64(cfg.C.SpaceMargin)
	obj := resolv.NewObject(pos.X-w/2+margin, pos.Y-h/2+margin, w, h, tag)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}

// Destroy removes entry and its collision body.
func Destroy(ecs *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj.Object != nil {
			if spaceEntry, ok := components.Space.First(ecs.World); ok {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
	}
	ecs.World.Remove(entry.Entity())
}

func nextID(ecs *ecs.ECS, kind string) string {
	env := components.Env.Get(mustEnv(ecs))
	return env.IDs.Next(kind)
}

func mustEnv(ecs *ecs.ECS) *donburi.Entry {
	entry, ok := components.Env.First(ecs.World)
	if !ok {
		panic("factory: world has no Env")
	}
	return entry
}

// Rand returns the world's random source.
func Rand(ecs *ecs.ECS) *rand.Rand {
	return components.Env.Get(mustEnv(ecs)).Rand
}
