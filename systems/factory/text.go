package factory

import (
	"github.com/automoto/kaipoche/archetypes"
	"github.com/automoto/kaipoche/components"
	cfg "github.com/automoto/kaipoche/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// SpawnFloatingText creates a feedback token at pos. Rise, growth and fade
// are linear over the token's life.
func SpawnFloatingText(ecs *ecs.ECS, pos math.Vec2, text string) *donburi.Entry {
	entry := archetypes.FloatingText.Spawn(ecs)

	life := float32(cfg.Scoring.TextLife)
	scale := cfg.Scoring.TextScale
	components.FloatingText.SetValue(entry, components.FloatingTextData{
		ID:       nextID(ecs, "text"),
		Origin:   pos,
		Position: pos,
		Text:     text,
		Opacity:  1,
		Scale:    scale,
		Life:     cfg.Scoring.TextLife,
		Rise:     gween.New(0, float32(cfg.Scoring.TextRise)*life, life, ease.Linear),
		Fade:     gween.New(1, 1-float32(cfg.Scoring.TextFade)*life, life, ease.Linear),
		Grow:     gween.New(float32(scale), float32(scale)+float32(cfg.Scoring.TextGrowth)*life, life, ease.Linear),
	})

	return entry
}
