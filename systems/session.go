package systems

import (
	"context"
	"log"

	"github.com/automoto/kaipoche/components"
	cfg "github.com/automoto/kaipoche/config"
	"github.com/automoto/kaipoche/tags"
	"github.com/automoto/kaipoche/telemetry"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var sessionTracer = telemetry.Tracer("session")

// StartPlaying resets the world and begins unrestricted play with a zero score.
func StartPlaying(e *ecs.ECS) {
	resetWorld(e)
	session := GetOrCreateSession(e)
	session.Score = 0
	session.Cuts = 0
	session.State = cfg.StatePlaying

	now := GetOrCreateClock(e).Now
	spawner := GetOrCreateSpawner(e)
	spawner.LastEnemy = now
	spawner.LastLantern = now

	GetOrCreateAudio(e).WantMusic = true
	beginSpan(session, "session.playing")
	log.Printf("[session] playing (high score %d)", session.HighScore)
}

// StartTutorial resets the world and the tutorial back to its first step.
func StartTutorial(e *ecs.ECS) {
	resetWorld(e)
	session := GetOrCreateSession(e)
	session.Score = 0
	session.Cuts = 0
	session.State = cfg.StateTutorial

	tut := GetOrCreateTutorial(e)
	*tut = components.TutorialData{
		Step:      cfg.StepMovement,
		StepStart: GetOrCreateClock(e).Now,
	}

	GetOrCreateAudio(e).WantMusic = true
	beginSpan(session, "session.tutorial")
	log.Printf("[session] tutorial started")
}

// SkipTutorial leaves the tutorial for unrestricted play.
func SkipTutorial(e *ecs.ECS) {
	if GetOrCreateSession(e).State != cfg.StateTutorial {
		return
	}
	StartPlaying(e)
}

// EndSession is the terminal transition of unrestricted play.
func EndSession(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	session.State = cfg.StateGameOver

	audio := GetOrCreateAudio(e)
	audio.WantMusic = false
	audio.WantWind = false

	endSpan(session)
	log.Printf("[session] game over, score %d", session.Score)
}

// ReturnToMenu goes back to the idle start screen.
func ReturnToMenu(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	endSpan(session)
	session.State = cfg.StateStart

	audio := GetOrCreateAudio(e)
	audio.WantMusic = false
	audio.WantWind = false
}

// AddScore credits points and tracks the high score.
func AddScore(e *ecs.ECS, points int) {
	session := GetOrCreateSession(e)
	session.Score += points
	if session.Score > session.HighScore {
		session.HighScore = session.Score
		session.HighScoreDirty = true
	}
}

// resetWorld clears every transient entity and puts the player back at
// the start position with an empty string. Runs between frames.
func resetWorld(e *ecs.ECS) {
	destroyTagged(e, tags.Enemy.Each)
	destroyTagged(e, tags.Lantern.Each)
	destroyTagged(e, tags.FloatingText.Each)

	if playerEntry, ok := tags.Player.First(e.World); ok {
		kite := components.Kite.Get(playerEntry)
		kite.Position = playerStart()
		kite.Velocity = math.Vec2{}
		kite.StringPath = kite.StringPath[:0]
		kite.Color = playerColor(e)
		components.Object.Get(playerEntry).CenterOn(kite.Position, float64(cfg.C.SpaceMargin))
	}

	audio := GetOrCreateAudio(e)
	audio.WantWind = false
	audio.PendingSFX = audio.PendingSFX[:0]
}

func playerStart() math.Vec2 {
	return math.Vec2{
		X: float64(cfg.C.Width) / 2,
		Y: float64(cfg.C.Height) - cfg.Kite.StartOffsetY,
	}
}

func beginSpan(session *components.SessionData, name string) {
	endSpan(session)
	_, span := sessionTracer.Start(context.Background(), name)
	session.Span = span
}

func endSpan(session *components.SessionData) {
	if session.Span == nil {
		return
	}
	session.Span.SetAttributes(
		attribute.Int("session.score", session.Score),
		attribute.Int("session.cuts", session.Cuts),
		attribute.String("session.state", session.State.String()),
	)
	session.Span.End()
	session.Span = nil
}

func sessionEvent(e *ecs.ECS, name string, attrs ...attribute.KeyValue) {
	if span := GetOrCreateSession(e).Span; span != nil {
		span.AddEvent(name, trace.WithAttributes(attrs...))
	}
}
