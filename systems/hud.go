package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/kaipoche/components"
	cfg "github.com/automoto/kaipoche/config"
	"github.com/automoto/kaipoche/fonts"
	"github.com/automoto/kaipoche/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var hudTextOp = &ebiten.DrawImageOptions{}

// DrawHUD renders the score line during play and the current instruction
// during the tutorial.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(e)
	margin := int(cfg.UI.HUDMargin)

	switch session.State {
	case cfg.StatePlaying:
		face := fonts.Bold.Get()
		drawShadowed(screen, fmt.Sprintf("Score: %d", session.Score), face, margin, margin+24, cfg.White)
		if session.HighScore > 0 {
			drawShadowed(screen, fmt.Sprintf("Best: %d", session.HighScore), fonts.Small.Get(), margin, margin+46, cfg.Gold)
		}

	case cfg.StateTutorial:
		drawInstruction(screen, cfg.Tutorial.Instructions[GetOrCreateTutorial(e).Step])
	}
}

func drawInstruction(screen *ebiten.Image, msg string) {
	if msg == "" {
		return
	}
	face := fonts.Regular.Get()
	bounds := text.BoundString(face, msg)
	width := screen.Bounds().Dx()
	pad := 12

	boxW := bounds.Dx() + 2*pad
	boxH := bounds.Dy() + 2*pad
	boxX := (width - boxW) / 2
	boxY := 70

	vector.DrawFilledRect(screen, float32(boxX), float32(boxY), float32(boxW), float32(boxH), cfg.UI.PanelColor, false)
	text.Draw(screen, msg, face, boxX+pad-bounds.Min.X, boxY+pad-bounds.Min.Y, cfg.UI.TextColor)
}

func drawShadowed(screen *ebiten.Image, msg string, face font.Face, x, y int, clr color.Color) {
	text.Draw(screen, msg, face, x+2, y+2, cfg.BlackOverlay)
	text.Draw(screen, msg, face, x, y, clr)
}

// DrawFloatingTexts renders the cut feedback with an outline.
func DrawFloatingTexts(e *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Popup.Get()
	tags.FloatingText.Each(e.World, func(entry *donburi.Entry) {
		ft := components.FloatingText.Get(entry)
		if ft.Opacity <= 0 {
			return
		}
		bounds := text.BoundString(face, ft.Text)
		halfW := float64(bounds.Dx()) / 2

		for _, off := range [][2]float64{{-2, 0}, {2, 0}, {0, -2}, {0, 2}} {
			drawFloating(screen, ft, face, halfW, off[0], off[1], cfg.Black)
		}
		drawFloating(screen, ft, face, halfW, 0, 0, cfg.Gold)
	})
}

func drawFloating(screen *ebiten.Image, ft *components.FloatingTextData, face font.Face, halfW, dx, dy float64, clr color.RGBA) {
	hudTextOp.GeoM.Reset()
	hudTextOp.ColorScale.Reset()
	hudTextOp.GeoM.Translate(-halfW+dx, dy)
	hudTextOp.GeoM.Scale(ft.Scale, ft.Scale)
	hudTextOp.GeoM.Translate(ft.Position.X, ft.Position.Y)
	hudTextOp.ColorScale.ScaleWithColor(clr)
	hudTextOp.ColorScale.ScaleAlpha(float32(ft.Opacity))
	text.DrawWithOptions(screen, ft.Text, face, hudTextOp)
}
