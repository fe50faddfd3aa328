package systems

import (
	"image"
	"image/color"
	gomath "math"

	"github.com/automoto/kaipoche/assets"
	"github.com/automoto/kaipoche/components"
	cfg "github.com/automoto/kaipoche/config"
	"github.com/automoto/kaipoche/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
	polyVertices  []ebiten.Vertex
	polyIndices   []uint16
	skyOp         = &ebiten.DrawRectShaderOptions{}
)

// solid returns a 1x1 white source for DrawTriangles, created on first use.
func solid() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// fillConvex fills a convex polygon given as x,y pairs.
func fillConvex(dst *ebiten.Image, pts []float32, clr color.Color) {
	n := len(pts) / 2
	if n < 3 {
		return
	}
	r, g, b, a := clr.RGBA()
	polyVertices = polyVertices[:0]
	polyIndices = polyIndices[:0]
	for i := 0; i < n; i++ {
		polyVertices = append(polyVertices, ebiten.Vertex{
			DstX: pts[2*i], DstY: pts[2*i+1],
			SrcX: 1, SrcY: 1,
			ColorR: float32(r) / 0xffff, ColorG: float32(g) / 0xffff,
			ColorB: float32(b) / 0xffff, ColorA: float32(a) / 0xffff,
		})
	}
	for i := 1; i < n-1; i++ {
		polyIndices = append(polyIndices, 0, uint16(i), uint16(i+1))
	}
	dst.DrawTriangles(polyVertices, polyIndices, solid(), nil)
}

// rotated maps local x,y pairs around the origin onto the screen.
func rotated(center math.Vec2, angle float64, local ...float64) []float32 {
	sin, cos := gomath.Sincos(angle)
	out := make([]float32, len(local))
	for i := 0; i+1 < len(local); i += 2 {
		x, y := local[i], local[i+1]
		out[i] = float32(center.X + x*cos - y*sin)
		out[i+1] = float32(center.Y + x*sin + y*cos)
	}
	return out
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	// premultiplied
	f := float64(a) / 255
	return color.RGBA{R: uint8(float64(c.R) * f), G: uint8(float64(c.G) * f), B: uint8(float64(c.B) * f), A: a}
}

// DrawSky paints the background gradient, falling back to a flat fill
// when shaders are unavailable.
func DrawSky(e *ecs.ECS, screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if assets.SkyShader == nil {
		screen.Fill(cfg.Scenery.SkyTop)
		return
	}
	skyOp.Uniforms = map[string]any{
		"Top":    rgbaVec(cfg.Scenery.SkyTop),
		"Bottom": rgbaVec(cfg.Scenery.SkyBottom),
		"Height": float32(h),
	}
	screen.DrawRectShader(w, h, assets.SkyShader, skyOp)
}

func rgbaVec(c color.RGBA) []float32 {
	return []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

// DrawClouds renders the three-puff clouds.
func DrawClouds(e *ecs.ECS, screen *ebiten.Image) {
	c := cfg.Scenery.CloudColor
	tags.Cloud.Each(e.World, func(entry *donburi.Entry) {
		cloud := components.Cloud.Get(entry)
		x, y, s := float32(cloud.Position.X), float32(cloud.Position.Y), float32(cloud.Scale)
		vector.DrawFilledCircle(screen, x, y, 30*s, c, true)
		vector.DrawFilledCircle(screen, x+20*s, y-10*s, 35*s, c, true)
		vector.DrawFilledCircle(screen, x+40*s, y, 30*s, c, true)
	})
}

// DrawWindZones shows the active zones as a faint box with moving streaks.
func DrawWindZones(e *ecs.ECS, screen *ebiten.Image) {
	zones := activeWindZones(e)
	if len(zones) == 0 {
		return
	}
	now := GetOrCreateClock(e).Now
	streak := cfg.Wind.StreakColor
	for _, z := range zones {
		vector.DrawFilledRect(screen, float32(z.X), float32(z.Y), float32(z.Width), float32(z.Height),
			color.RGBA{R: 13, G: 13, B: 13, A: 13}, false)
		for i := 0; i < 5; i++ {
			lineY := z.Y + z.Height/5*float64(i) + 10
			start := z.X + gomath.Mod(now*0.05*z.Strength+float64(i)*50, z.Width)
			length := 30 + z.Strength*5
			if start+length >= z.X+z.Width {
				continue
			}
			vector.StrokeLine(screen, float32(start), float32(lineY),
				float32(start+length), float32(lineY+z.DirectionY*10), 1, streak, true)
		}
	}
}

// DrawSkyline renders the buildings along the bottom edge.
func DrawSkyline(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Skyline.First(e.World)
	if !ok {
		return
	}
	h := float64(screen.Bounds().Dy())
	shade := color.RGBA{A: 51}
	for i, b := range components.Skyline.Get(entry).Buildings {
		top := h - b.Height
		pts := []float32{
			float32(b.X), float32(h),
			float32(b.X), float32(top),
		}
		if b.Pointed {
			pts = append(pts, float32(b.X+b.Width/2), float32(top-cfg.Scenery.RoofPeak))
		}
		pts = append(pts, float32(b.X+b.Width), float32(top), float32(b.X+b.Width), float32(h))
		fillConvex(screen, pts, b.Roof)
		if i%2 == 0 {
			vector.DrawFilledRect(screen, float32(b.X+10), float32(top+20), 20, 20, shade, false)
		}
	}
}

// DrawKites renders every enemy, then the player while a session is live.
func DrawKites(e *ecs.ECS, screen *ebiten.Image) {
	now := GetOrCreateClock(e).Now
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		kite := components.Kite.Get(entry)
		drawString(screen, kite, false)
		drawKite(screen, kite, now)
	})

	if !GetOrCreateSession(e).State.Active() {
		return
	}
	if entry, ok := tags.Player.First(e.World); ok {
		kite := components.Kite.Get(entry)
		drawString(screen, kite, true)
		drawKite(screen, kite, now)
	}
}

func drawString(screen *ebiten.Image, kite *components.KiteData, isPlayer bool) {
	if kite.IsCut || len(kite.StringPath) == 0 {
		return
	}
	clr, width := color.RGBA{R: 221, G: 221, B: 221, A: 255}, float32(1.5)
	if isPlayer {
		clr, width = cfg.White, 2.5
	}
	prev := kite.Anchor()
	for _, p := range kite.StringPath {
		vector.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(p.X), float32(p.Y), width, clr, true)
		prev = p
	}
}

func drawKite(screen *ebiten.Image, kite *components.KiteData, now float64) {
	rotation := kite.Velocity.X * 0.1
	if kite.IsCut {
		rotation += kite.Angle
	}
	hw, hh := kite.Width/2, kite.Height/2

	fillConvex(screen, rotated(kite.Position, rotation, 0, -hh, hw, 0, 0, hh, -hw, 0), kite.Color)

	edge := color.RGBA{A: 51}
	spine := rotated(kite.Position, rotation, 0, -hh, 0, hh)
	vector.StrokeLine(screen, spine[0], spine[1], spine[2], spine[3], 2, edge, true)
	bow := rotated(kite.Position, rotation, -hw, 0, hw, 0)
	vector.StrokeLine(screen, bow[0], bow[1], bow[2], bow[3], 2, edge, true)

	// tail
	const segments, segLen = 8, 6.0
	prevX, prevY := 0.0, hh
	for i := 1; i <= segments; i++ {
		fi := float64(i)
		y := hh + fi*segLen
		x := gomath.Sin(now*0.015-fi*0.6)*fi*1.2 - kite.Velocity.X*fi*0.4
		seg := rotated(kite.Position, rotation, prevX, prevY, x, y)
		vector.StrokeLine(screen, seg[0], seg[1], seg[2], seg[3], 5, kite.Color, true)
		prevX, prevY = x, y
	}
}

// DrawLanterns renders each lantern as a glowing paper shell with a flame.
func DrawLanterns(e *ecs.ECS, screen *ebiten.Image) {
	now := GetOrCreateClock(e).Now
	tags.Lantern.Each(e.World, func(entry *donburi.Entry) {
		l := components.Lantern.Get(entry)
		sway := gomath.Sin(now/500+l.WobbleOffset) * 0.1
		hw, hh := l.Width/2, l.Height/2
		bottom := l.Width * 0.6 / 2

		glow := withAlpha(cfg.Lantern.FlameColor, 40)
		vector.DrawFilledCircle(screen, float32(l.Position.X), float32(l.Position.Y), float32(l.Width*1.5), glow, true)

		fillConvex(screen, rotated(l.Position, sway,
			-bottom, hh, -hw-2, 0, -hw*0.7, -hh, hw*0.7, -hh, hw+2, 0, bottom, hh,
		), cfg.Lantern.BodyColor)

		flicker := 0.8 + 0.2*gomath.Sin(now/50+l.WobbleOffset)
		flame := rotated(l.Position, sway, 0, hh-5)
		vector.DrawFilledCircle(screen, flame[0], flame[1], float32(4*flicker), cfg.White, true)
	})
}
