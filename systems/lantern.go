package systems

import (
	"log"

	"github.com/automoto/kaipoche/components"
	cfg "github.com/automoto/kaipoche/config"
	"github.com/automoto/kaipoche/shared/gamemath"
	"github.com/automoto/kaipoche/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.opentelemetry.io/otel/attribute"
)

// UpdateLanterns moves every lantern and resolves hits against the player.
// A hit in unrestricted play ends the session on the spot.
func UpdateLanterns(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Kite.Get(playerEntry)
	zones := activeWindZones(ecs)

	var lanterns []*donburi.Entry
	tags.Lantern.Each(ecs.World, func(entry *donburi.Entry) {
		lanterns = append(lanterns, entry)
	})

	for _, entry := range lanterns {
		lantern := components.Lantern.Get(entry)
		wind := gamemath.SampleWind(lantern.Position, zones, windParams())
		lantern.Translate(lantern.Velocity.X+wind.DX, lantern.Velocity.Y+wind.DY)

		body := components.Object.Get(entry)
		body.CenterOn(lantern.Position, float64(cfg.C.SpaceMargin))

		if lanternHit(body.Object, lantern, player) {
			session := GetOrCreateSession(ecs)
			switch session.State {
			case cfg.StatePlaying:
				sessionEvent(ecs, "lantern.hit", attribute.String("lantern.id", lantern.ID))
				EndSession(ecs)
				return
			case cfg.StateTutorial:
				pushPlayer(playerEntry, player, lantern)
			}
		}

		if tutorialLanternPassed(ecs, lantern) {
			log.Printf("[tutorial] lantern passed")
			advanceTutorial(ecs, cfg.StepWind)
			return
		}
	}
}

// pushPlayer shoves the player kite away from a lantern during the tutorial.
func pushPlayer(playerEntry *donburi.Entry, player *components.KiteData, lantern *components.LanternData) {
	dx := (player.Position.X - lantern.Position.X) * cfg.Lantern.TutorialPush
	dy := (player.Position.Y - lantern.Position.Y) * cfg.Lantern.TutorialPush
	player.Velocity.X += dx
	player.Velocity.Y += dy
	player.Translate(dx, dy)
	if len(player.StringPath) > 0 {
		player.StringPath[0] = player.Anchor()
	}
	components.Object.Get(playerEntry).CenterOn(player.Position, float64(cfg.C.SpaceMargin))
}

func tutorialLanternPassed(ecs *ecs.ECS, lantern *components.LanternData) bool {
	if GetOrCreateSession(ecs).State != cfg.StateTutorial {
		return false
	}
	return GetOrCreateTutorial(ecs).Step == cfg.StepLanterns && lantern.Position.Y < cfg.Lantern.ExitLine
}
