package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width       int
	Height      int
	TPS         int
	FrameMillis float64 // simulated milliseconds per tick
	SpaceMargin int     // extra collision space around the viewport
	SpaceCell   int
}

// KiteConfig contains player kite tuning
type KiteConfig struct {
	Width  float64
	Height float64

	FollowGain float64 // fraction of the pointer delta applied per frame
	WindGain   float64 // fraction of the wind push applied per frame

	WeaveFreqX float64
	WeaveFreqY float64
	WeaveScale float64

	// Player starts centered horizontally, this far above the bottom edge
	StartOffsetY float64

	SwooshSpeed    float64 // px/frame on either axis
	SwooshCooldown float64 // ms
}

// TetherConfig contains string simulation tuning
type TetherConfig struct {
	Length          int
	PlayerRelax     float64
	EnemyRelax      float64
	Sag             float64
	JitterThreshold float64
	JitterScale     float64
}

// EnemyConfig contains enemy kite tuning
type EnemyConfig struct {
	SpawnOffset  float64 // distance outside the viewport on spawn
	SpawnBand    float64 // spawn height band as a fraction of the viewport
	MinSpeed     float64
	SpeedRange   float64
	DriftRange   float64
	WobbleRange  float64
	BobPeriod    float64 // ms divisor for the vertical bob
	BobAmplitude float64
	BobTurbGain  float64

	// Cut debris
	FallSpeed      float64
	SwayPeriod     float64
	SwayAmplitude  float64
	SpinRate       float64
	CleanupMargin  float64
	Palette        []color.RGBA
	TutorialColor  int
	TutorialHeight float64 // fraction of the viewport
	TutorialSpeed  float64
}

// LanternConfig contains lantern tuning
type LanternConfig struct {
	Width          float64
	Height         float64
	SpawnOffset    float64
	DriftRange     float64
	RiseSpeed      float64
	RiseJitter     float64
	WobbleRange    float64
	CleanupMargin  float64
	TutorialRise   float64
	TutorialPush   float64
	ExitLine       float64 // tutorial lantern counts as passed above this y
	FlameColor     color.RGBA
	BodyColor      color.RGBA
	TetherHitRatio float64
	BodyPad        float64 // collision body grows by this much on every side
}

// WindConfig contains wind field generation and sampling tuning
type WindConfig struct {
	ZoneCount       int
	BaseTurbulence  float64
	TurbulenceBase  float64
	TurbulenceGain  float64
	MinWidth        float64
	WidthRange      float64
	MinHeight       float64
	HeightRange     float64
	Band            float64 // zones live in the top fraction of the viewport
	MinDirX         float64
	DirXRange       float64
	DirYRange       float64
	MinStrength     float64
	StrengthRange   float64
	LoopThreshold   float64 // strength that toggles the wind ambience
	StreakColor     color.RGBA
}

// SpawnConfig contains spawn timer intervals
type SpawnConfig struct {
	EnemyInterval   float64 // ms
	LanternInterval float64 // ms
}

// TutorialConfig contains tutorial tuning
type TutorialConfig struct {
	MovementThreshold float64
	CutAdvanceDelay   float64 // ms
	WindDuration      float64 // ms
	Instructions      map[TutorialStep]string
}

// ScoringConfig contains cut scoring and feedback
type ScoringConfig struct {
	CutPoints         int
	CutRadiusRatio    float64 // cut radius = kite width / ratio
	IntersectSegments int
	Phrases           []string
	TextLife          int
	TextScale         float64
	TextGrowth        float64
	TextFade          float64
	TextRise          float64
}

// SceneryConfig contains decoration tuning
type SceneryConfig struct {
	CloudCount      int
	CloudMinScale   float64
	CloudScaleRange float64
	CloudMinSpeed   float64
	CloudSpeedRange float64
	CloudWrap       float64

	BuildingMinWidth    float64
	BuildingWidthRange  float64
	BuildingMinHeight   float64
	BuildingHeightRange float64
	BuildingOverlap     float64
	RoofPeak            float64
	RoofColors          []color.RGBA
	SkyTop              color.RGBA
	SkyBottom           color.RGBA
	BuildingColor       color.RGBA
	CloudColor          color.RGBA
}

// KiteColor is a selectable player kite color
type KiteColor struct {
	Name  string
	Color color.RGBA
}

// UIConfig contains HUD and overlay configuration
type UIConfig struct {
	KiteColors   []KiteColor
	TextColor    color.RGBA
	PanelColor   color.RGBA
	ButtonIdle   color.RGBA
	ButtonHover  color.RGBA
	ButtonPress  color.RGBA
	ButtonText   color.RGBA
	HUDMargin    float64
	Title        string
	Subtitle     string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Start a session immediately
	Tutorial bool // Start in tutorial mode when SkipMenu is set
	Seed     int64
}

// Global configuration instances
var C *Config
var Kite KiteConfig
var Tether TetherConfig
var Enemy EnemyConfig
var Lantern LanternConfig
var Wind WindConfig
var Spawn SpawnConfig
var Tutorial TutorialConfig
var Scoring ScoringConfig
var Scenery SceneryConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Gold         = color.RGBA{R: 255, G: 215, B: 0, A: 255}
)

// Hex parses a #RRGGBB color. Malformed input yields opaque black.
func Hex(s string) color.RGBA {
	c := color.RGBA{A: 255}
	if len(s) != 7 || s[0] != '#' {
		return c
	}
	c.R = hexByte(s[1], s[2])
	c.G = hexByte(s[3], s[4])
	c.B = hexByte(s[5], s[6])
	return c
}

func hexByte(hi, lo byte) uint8 {
	return hexNibble(hi)<<4 | hexNibble(lo)
}

func hexNibble(b byte) uint8 {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	}
	return 0
}

func init() {
	C = &Config{
		Width:       960,
		Height:      640,
		TPS:         60,
		FrameMillis: 1000.0 / 60.0,
		SpaceMargin: 200,
		SpaceCell:   32,
	}

	Kite = KiteConfig{
		Width:          40,
		Height:         40,
		FollowGain:     0.08,
		WindGain:       0.05,
		WeaveFreqX:     5,
		WeaveFreqY:     3,
		WeaveScale:     0.5,
		StartOffsetY:   200,
		SwooshSpeed:    8,
		SwooshCooldown: 500,
	}

	Tether = TetherConfig{
		Length:          15,
		PlayerRelax:     0.5,
		EnemyRelax:      0.4,
		Sag:             2,
		JitterThreshold: 0.6,
		JitterScale:     3,
	}

	Enemy = EnemyConfig{
		SpawnOffset:   50,
		SpawnBand:     0.6,
		MinSpeed:      2,
		SpeedRange:    2,
		DriftRange:    1.5,
		WobbleRange:   100,
		BobPeriod:     300,
		BobAmplitude:  2,
		BobTurbGain:   4,
		FallSpeed:     2 + 0.15*10,
		SwayPeriod:    200,
		SwayAmplitude: 2,
		SpinRate:      0.05,
		CleanupMargin: 100,
		Palette: []color.RGBA{
			Hex("#FF5733"), Hex("#FFC300"), Hex("#DAF7A6"), Hex("#C70039"),
			Hex("#900C3F"), Hex("#33FF57"), Hex("#33C1FF"), Hex("#FF33F6"),
		},
		TutorialColor:  1,
		TutorialHeight: 0.3,
		TutorialSpeed:  2,
	}

	Lantern = LanternConfig{
		Width:          30,
		Height:         45,
		SpawnOffset:    50,
		DriftRange:     0.5,
		RiseSpeed:      0.8,
		RiseJitter:     0.5,
		WobbleRange:    100,
		CleanupMargin:  100,
		TutorialRise:   1.5,
		TutorialPush:   0.5,
		ExitLine:       -50,
		FlameColor:     color.RGBA{R: 255, G: 200, B: 80, A: 255},
		BodyColor:      color.RGBA{R: 230, G: 108, B: 36, A: 230}, // premultiplied
		TetherHitRatio: 1.5,
		BodyPad:        1,
	}

	Wind = WindConfig{
		ZoneCount:      3,
		BaseTurbulence: 0.2,
		TurbulenceBase: 1.5,
		TurbulenceGain: 0.3,
		MinWidth:       120,
		WidthRange:     150,
		MinHeight:      100,
		HeightRange:    100,
		Band:           0.6,
		MinDirX:        0.5,
		DirXRange:      0.5,
		DirYRange:      0.5,
		MinStrength:    2,
		StrengthRange:  2,
		LoopThreshold:  2,
		StreakColor:    color.RGBA{R: 77, G: 77, B: 77, A: 77},
	}

	Spawn = SpawnConfig{
		EnemyInterval:   1500,
		LanternInterval: 3500,
	}

	Tutorial = TutorialConfig{
		MovementThreshold: 2000,
		CutAdvanceDelay:   1000,
		WindDuration:      5000,
		Instructions: map[TutorialStep]string{
			StepMovement: "Drag your finger or mouse to fly the Kite!",
			StepEnemies:  "Cut the Enemy String (White Line) with your String!",
			StepLanterns: "Avoid the Sky Lanterns!",
			StepWind:     "Watch out! Wind Zones (White Streaks) push you!",
		},
	}

	Scoring = ScoringConfig{
		CutPoints:         10,
		CutRadiusRatio:    1.5,
		IntersectSegments: 3,
		Phrases:           []string{"Kai Po Che!", "Cut!", "Oooooh!", "Lapet!", "Gotcha!"},
		TextLife:          60,
		TextScale:         0.5,
		TextGrowth:        0.02,
		TextFade:          0.015,
		TextRise:          1,
	}

	Scenery = SceneryConfig{
		CloudCount:          5,
		CloudMinScale:       0.5,
		CloudScaleRange:     0.5,
		CloudMinSpeed:       0.2,
		CloudSpeedRange:     0.3,
		CloudWrap:           100,
		BuildingMinWidth:    50,
		BuildingWidthRange:  100,
		BuildingMinHeight:   50,
		BuildingHeightRange: 150,
		BuildingOverlap:     5,
		RoofPeak:            30,
		RoofColors:          []color.RGBA{Hex("#A0522D"), Hex("#CD5C5C"), Hex("#8B4513"), Hex("#D2691E")},
		SkyTop:              Hex("#87CEEB"),
		SkyBottom:           Hex("#FFDAB9"),
		BuildingColor:       Hex("#F5DEB3"),
		CloudColor:          color.RGBA{R: 102, G: 102, B: 102, A: 102},
	}

	UI = UIConfig{
		KiteColors: []KiteColor{
			{Name: "Classic Red", Color: Hex("#FF0000")},
			{Name: "Sky Blue", Color: Hex("#0000FF")},
			{Name: "Sunny Yellow", Color: Hex("#FFFF00")},
			{Name: "Emerald Green", Color: Hex("#008000")},
			{Name: "Royal Purple", Color: Hex("#800080")},
			{Name: "Sunset Orange", Color: Hex("#FFA500")},
			{Name: "Ninja Black", Color: Hex("#000000")},
			{Name: "Neon Pink", Color: Hex("#FF1493")},
		},
		TextColor:   White,
		PanelColor:  color.RGBA{R: 0, G: 0, B: 0, A: 150},
		ButtonIdle:  color.RGBA{R: 230, G: 126, B: 34, A: 255},
		ButtonHover: color.RGBA{R: 243, G: 156, B: 18, A: 255},
		ButtonPress: color.RGBA{R: 211, G: 84, B: 0, A: 255},
		ButtonText:  White,
		HUDMargin:   16,
		Title:       "Kai Po Che!",
		Subtitle:    "Cut the other kites. Dodge the lanterns.",
	}
}
