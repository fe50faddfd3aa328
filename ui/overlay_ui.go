package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/kaipoche/config"
	"github.com/automoto/kaipoche/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// OverlayUI holds the ebitenui panels drawn over the sky: the start screen,
// the tutorial skip button and the game over screen.
type OverlayUI struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	root     *widget.Container
	start    *widget.Container
	tutorial *widget.Container
	gameOver *widget.Container
	shown    cfg.SessionState
	hasPanel bool

	// Widget references for updates
	colorButtons []*widget.Button
	muteButtons  []*widget.Button
	bestLabel    *widget.Label
	scoreLabel   *widget.Label
	resultBest   *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewOverlayUI builds every panel for the given world.
func NewOverlayUI(e *ecs.ECS) *OverlayUI {
	o := &OverlayUI{ecs: e}
	o.loadFonts()
	o.buildUI()
	return o
}

func (o *OverlayUI) loadFonts() {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}

	o.titleFace = &text.GoTextFace{Source: bold, Size: 56}
	o.normalFace = &text.GoTextFace{Source: regular, Size: 22}
	o.smallFace = &text.GoTextFace{Source: regular, Size: 16}
}

func (o *OverlayUI) buildUI() {
	o.root = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	o.start = o.buildStartPanel()
	o.tutorial = o.buildTutorialPanel()
	o.gameOver = o.buildGameOverPanel()

	o.UI = &ebitenui.UI{
		Container: o.root,
	}
}

func (o *OverlayUI) panel() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
}

func (o *OverlayUI) buildStartPanel() *widget.Container {
	c := o.panel()

	c.AddChild(o.label(cfg.UI.Title, &o.titleFace, cfg.Gold))
	c.AddChild(o.label(cfg.UI.Subtitle, &o.normalFace, cfg.UI.TextColor))
	o.bestLabel = o.label("", &o.smallFace, cfg.UI.TextColor)
	c.AddChild(o.bestLabel)

	c.AddChild(o.button("Play", func() { systems.Select(o.ecs, systems.StartPlaying) }))
	c.AddChild(o.button("How to Play", func() { systems.Select(o.ecs, systems.StartTutorial) }))

	colorButton := o.button("", func() { systems.NextKiteColor(o.ecs) })
	o.colorButtons = append(o.colorButtons, colorButton)
	c.AddChild(colorButton)

	muteButton := o.button("", func() { systems.ToggleMute(o.ecs) })
	o.muteButtons = append(o.muteButtons, muteButton)
	c.AddChild(muteButton)

	return c
}

func (o *OverlayUI) buildTutorialPanel() *widget.Container {
	c := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(int(cfg.UI.HUDMargin))),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	c.AddChild(o.button("Skip Tutorial", func() { systems.Select(o.ecs, systems.SkipTutorial) }))
	return c
}

func (o *OverlayUI) buildGameOverPanel() *widget.Container {
	c := o.panel()

	c.AddChild(o.label("Game Over", &o.titleFace, cfg.UI.TextColor))
	o.scoreLabel = o.label("", &o.normalFace, cfg.Gold)
	c.AddChild(o.scoreLabel)
	o.resultBest = o.label("", &o.smallFace, cfg.UI.TextColor)
	c.AddChild(o.resultBest)

	c.AddChild(o.button("Play Again", func() { systems.Select(o.ecs, systems.StartPlaying) }))
	c.AddChild(o.button("Menu", func() { systems.Select(o.ecs, systems.ReturnToMenu) }))

	muteButton := o.button("", func() { systems.ToggleMute(o.ecs) })
	o.muteButtons = append(o.muteButtons, muteButton)
	c.AddChild(muteButton)

	return c
}

func (o *OverlayUI) label(s string, face *text.Face, clr color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: clr}),
	)
}

func (o *OverlayUI) button(s string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 40),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
		widget.ButtonOpts.Image(o.buttonImage()),
		widget.ButtonOpts.Text(s, &o.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.UI.ButtonText,
			Hover:   cfg.UI.ButtonText,
			Pressed: cfg.UI.ButtonText,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (o *OverlayUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(cfg.UI.ButtonIdle),
		Hover:   image.NewNineSliceColor(cfg.UI.ButtonHover),
		Pressed: image.NewNineSliceColor(cfg.UI.ButtonPress),
	}
}

// UpdateUI swaps in the panel for the current session state and refreshes
// the dynamic labels.
func (o *OverlayUI) UpdateUI() {
	session := systems.GetOrCreateSession(o.ecs)
	settings := systems.GetOrCreateSettings(o.ecs)

	if !o.hasPanel || o.shown != session.State {
		o.root.RemoveChildren()
		switch session.State {
		case cfg.StateStart:
			o.root.AddChild(o.start)
		case cfg.StateTutorial:
			o.root.AddChild(o.tutorial)
		case cfg.StateGameOver:
			o.root.AddChild(o.gameOver)
		}
		o.shown = session.State
		o.hasPanel = true
	}

	colorName := cfg.UI.KiteColors[settings.ColorIndex].Name
	for _, b := range o.colorButtons {
		if t := b.Text(); t != nil {
			t.Label = "Kite: " + colorName
		}
	}
	sound := "Sound: On"
	if settings.Muted {
		sound = "Sound: Off"
	}
	for _, b := range o.muteButtons {
		if t := b.Text(); t != nil {
			t.Label = sound
		}
	}

	o.bestLabel.Label = ""
	if session.HighScore > 0 {
		o.bestLabel.Label = fmt.Sprintf("Best: %d", session.HighScore)
	}
	o.scoreLabel.Label = fmt.Sprintf("Score: %d", session.Score)
	o.resultBest.Label = fmt.Sprintf("Best: %d", session.HighScore)
}

// Update refreshes the panels and processes pointer events.
func (o *OverlayUI) Update() {
	o.UpdateUI()
	o.UI.Update()
}

// Draw renders the active panel.
func (o *OverlayUI) Draw(screen *ebiten.Image) {
	o.UI.Draw(screen)
}
