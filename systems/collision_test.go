package systems

import (
	"testing"

	"github.com/automoto/kaipoche/components"
	cfg "github.com/automoto/kaipoche/config"
	"github.com/automoto/kaipoche/systems/factory"
	"github.com/automoto/kaipoche/tags"
	"github.com/yohamta/donburi/features/math"
)

func kiteAt(x, y float64, path ...math.Vec2) *components.KiteData {
	return &components.KiteData{
		Body: components.Body{
			Position: math.Vec2{X: x, Y: y},
			Width:    cfg.Kite.Width,
			Height:   cfg.Kite.Height,
		},
		StringPath: path,
	}
}

func TestKiteCut(t *testing.T) {
	vertical := []math.Vec2{{X: 100, Y: 0}, {X: 100, Y: 50}, {X: 100, Y: 100}, {X: 100, Y: 150}}
	horizontal := []math.Vec2{{X: 50, Y: 25}, {X: 90, Y: 25}, {X: 130, Y: 25}, {X: 170, Y: 25}}

	tests := []struct {
		name   string
		player *components.KiteData
		enemy  *components.KiteData
		want   bool
	}{
		{
			name:   "strings cross",
			player: kiteAt(0, 0, horizontal...),
			enemy:  kiteAt(500, 500, vertical...),
			want:   true,
		},
		{
			name:   "kite on enemy string",
			player: kiteAt(110, 100),
			enemy:  kiteAt(500, 500, vertical...),
			want:   true,
		},
		{
			name:   "kite just outside the cut radius",
			player: kiteAt(100+cfg.Kite.Width/cfg.Scoring.CutRadiusRatio+1, 100),
			enemy:  kiteAt(500, 500, vertical...),
			want:   false,
		},
		{
			name:   "short player string never crosses",
			player: kiteAt(0, 0, horizontal[1], horizontal[2]),
			enemy:  kiteAt(500, 500, vertical...),
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kiteCut(tt.player, tt.enemy); got != tt.want {
				t.Errorf("kiteCut = %v, want %v", got, tt.want)
			}
		})
	}

	cut := kiteAt(500, 500, vertical...)
	cut.IsCut = true
	if kiteCut(kiteAt(100, 100), cut) {
		t.Error("a cut enemy must never be cut again")
	}
}

func TestLanternHitOnString(t *testing.T) {
	player := kiteAt(0, 0, math.Vec2{X: 300, Y: 300})
	lantern := &components.LanternData{Body: components.Body{
		Position: math.Vec2{X: 310, Y: 300},
		Width:    cfg.Lantern.Width,
		Height:   cfg.Lantern.Height,
	}}
	if !lanternHit(nil, lantern, player) {
		t.Error("lantern touching the string should hit")
	}

	lantern.Position.X = 300 + cfg.Lantern.Width/cfg.Lantern.TetherHitRatio + 1
	if lanternHit(nil, lantern, player) {
		t.Error("lantern clear of the string should not hit")
	}
}

func TestLanternHitAtBodyDistance(t *testing.T) {
	reach := (cfg.Lantern.Width + cfg.Kite.Width) / 2

	// With a 200px margin and 32px cells, a kite at x=228.5 ends in the
	// cell before the one a lantern at x=263 starts in.
	tests := []struct {
		name   string
		player math.Vec2
		offset math.Vec2
		want   bool
	}{
		{"overlapping", math.Vec2{X: 300, Y: 300}, math.Vec2{}, true},
		{"just inside across a cell boundary", math.Vec2{X: 228.5, Y: 300}, math.Vec2{X: reach - 0.5}, true},
		{"just outside across a cell boundary", math.Vec2{X: 228.5, Y: 300}, math.Vec2{X: reach + 0.5}, false},
		{"just inside from the left", math.Vec2{X: 300, Y: 300}, math.Vec2{X: -(reach - 0.01)}, true},
		{"just inside from above", math.Vec2{X: 300, Y: 300}, math.Vec2{Y: -(reach - 0.5)}, true},
		{"just inside diagonally", math.Vec2{X: 300, Y: 300}, math.Vec2{X: 24.4, Y: 24.4}, true},
		{"just outside diagonally", math.Vec2{X: 300, Y: 300}, math.Vec2{X: 25, Y: 25}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestWorld(t)
			playerEntry, _ := tags.Player.First(e.World)
			player := components.Kite.Get(playerEntry)
			player.Position = tt.player
			components.Object.Get(playerEntry).CenterOn(player.Position, float64(cfg.C.SpaceMargin))

			pos := math.Vec2{X: tt.player.X + tt.offset.X, Y: tt.player.Y + tt.offset.Y}
			entry := factory.CreateLantern(e, pos, math.Vec2{}, 0)
			body := components.Object.Get(entry).Object

			if got := lanternHit(body, components.Lantern.Get(entry), player); got != tt.want {
				t.Errorf("lanternHit = %v, want %v", got, tt.want)
			}
		})
	}
}
