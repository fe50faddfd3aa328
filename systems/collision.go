package systems

import (
	"github.com/automoto/kaipoche/components"
	cfg "github.com/automoto/kaipoche/config"
	"github.com/automoto/kaipoche/shared/gamemath"
	"github.com/automoto/kaipoche/tags"
	"github.com/solarlune/resolv"
)

// kiteCut reports whether the player severs enemy's string this frame:
// either the player kite sits on a point of the enemy string, or one of the
// player's lowest string segments crosses the enemy string.
// Cut enemies are never tested again.
func kiteCut(player, enemy *components.KiteData) bool {
	if enemy.IsCut {
		return false
	}
	radius := player.Width / cfg.Scoring.CutRadiusRatio
	if gamemath.AnyWithin(enemy.StringPath, player.Position, radius) {
		return true
	}
	return gamemath.ChainsCross(player.StringPath, enemy.StringPath, cfg.Scoring.IntersectSegments)
}

// lanternHit reports whether the lantern touches the player kite or any
// point of the player's string. The kite body test is narrowed with the
// collision space first; the lantern body is padded, so any pair within the
// hit distance shares a cell.
func lanternHit(body *resolv.Object, lantern *components.LanternData, player *components.KiteData) bool {
	if body == nil || body.Check(0, 0, tags.ResolvPlayer) != nil {
		if gamemath.Distance(lantern.Position, player.Position) < (lantern.Width+player.Width)/2 {
			return true
		}
	}
	return gamemath.AnyWithin(player.StringPath, lantern.Position, lantern.Width/cfg.Lantern.TetherHitRatio)
}
