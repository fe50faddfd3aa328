package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TuningFile overlays the empirically tuned gameplay constants.
// Every field is optional; absent fields keep the built-in value.
//
// Example:
//
//	kite:
//	  followGain: 0.1
//	spawn:
//	  enemyInterval: 1200
type TuningFile struct {
	Kite     KiteTuning     `yaml:"kite"`
	Tether   TetherTuning   `yaml:"tether"`
	Spawn    SpawnTuning    `yaml:"spawn"`
	Tutorial TutorialTuning `yaml:"tutorial"`
	Scoring  ScoringTuning  `yaml:"scoring"`
	Wind     WindTuning     `yaml:"wind"`
}

type KiteTuning struct {
	FollowGain     *float64 `yaml:"followGain"`
	WindGain       *float64 `yaml:"windGain"`
	SwooshSpeed    *float64 `yaml:"swooshSpeed"`
	SwooshCooldown *float64 `yaml:"swooshCooldown"`
}

type TetherTuning struct {
	Length          *int     `yaml:"length"`
	PlayerRelax     *float64 `yaml:"playerRelax"`
	EnemyRelax      *float64 `yaml:"enemyRelax"`
	Sag             *float64 `yaml:"sag"`
	JitterThreshold *float64 `yaml:"jitterThreshold"`
}

type SpawnTuning struct {
	EnemyInterval   *float64 `yaml:"enemyInterval"`
	LanternInterval *float64 `yaml:"lanternInterval"`
}

type TutorialTuning struct {
	MovementThreshold *float64 `yaml:"movementThreshold"`
	CutAdvanceDelay   *float64 `yaml:"cutAdvanceDelay"`
	WindDuration      *float64 `yaml:"windDuration"`
}

type ScoringTuning struct {
	CutPoints         *int     `yaml:"cutPoints"`
	CutRadiusRatio    *float64 `yaml:"cutRadiusRatio"`
	IntersectSegments *int     `yaml:"intersectSegments"`
}

type WindTuning struct {
	ZoneCount      *int     `yaml:"zoneCount"`
	BaseTurbulence *float64 `yaml:"baseTurbulence"`
	LoopThreshold  *float64 `yaml:"loopThreshold"`
}

// LoadTuning reads a YAML tuning file and applies it to the global config.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ApplyTuning(data)
}

// ApplyTuning parses YAML tuning data, validates the merged result and
// only then replaces the global values.
func ApplyTuning(data []byte) error {
	var file TuningFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse tuning file: %w", err)
	}

	kite, tether, spawn, tutorial, scoring, wind := Kite, Tether, Spawn, Tutorial, Scoring, Wind

	set(&kite.FollowGain, file.Kite.FollowGain)
	set(&kite.WindGain, file.Kite.WindGain)
	set(&kite.SwooshSpeed, file.Kite.SwooshSpeed)
	set(&kite.SwooshCooldown, file.Kite.SwooshCooldown)

	set(&tether.Length, file.Tether.Length)
	set(&tether.PlayerRelax, file.Tether.PlayerRelax)
	set(&tether.EnemyRelax, file.Tether.EnemyRelax)
	set(&tether.Sag, file.Tether.Sag)
	set(&tether.JitterThreshold, file.Tether.JitterThreshold)

	set(&spawn.EnemyInterval, file.Spawn.EnemyInterval)
	set(&spawn.LanternInterval, file.Spawn.LanternInterval)

	set(&tutorial.MovementThreshold, file.Tutorial.MovementThreshold)
	set(&tutorial.CutAdvanceDelay, file.Tutorial.CutAdvanceDelay)
	set(&tutorial.WindDuration, file.Tutorial.WindDuration)

	set(&scoring.CutPoints, file.Scoring.CutPoints)
	set(&scoring.CutRadiusRatio, file.Scoring.CutRadiusRatio)
	set(&scoring.IntersectSegments, file.Scoring.IntersectSegments)

	set(&wind.ZoneCount, file.Wind.ZoneCount)
	set(&wind.BaseTurbulence, file.Wind.BaseTurbulence)
	set(&wind.LoopThreshold, file.Wind.LoopThreshold)

	if err := validate(kite, tether, spawn, tutorial, scoring, wind); err != nil {
		return fmt.Errorf("invalid tuning file: %w", err)
	}

	Kite, Tether, Spawn, Tutorial, Scoring, Wind = kite, tether, spawn, tutorial, scoring, wind
	return nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func validate(kite KiteConfig, tether TetherConfig, spawn SpawnConfig, tutorial TutorialConfig, scoring ScoringConfig, wind WindConfig) error {
	if kite.FollowGain <= 0 || kite.FollowGain >= 1 {
		return fmt.Errorf("kite.followGain must be in (0,1), got %.3f", kite.FollowGain)
	}
	if tether.Length < 2 {
		return fmt.Errorf("tether.length must be at least 2, got %d", tether.Length)
	}
	if tether.PlayerRelax <= 0 || tether.PlayerRelax >= 1 {
		return fmt.Errorf("tether.playerRelax must be in (0,1), got %.3f", tether.PlayerRelax)
	}
	if tether.EnemyRelax <= 0 || tether.EnemyRelax >= 1 {
		return fmt.Errorf("tether.enemyRelax must be in (0,1), got %.3f", tether.EnemyRelax)
	}
	if spawn.EnemyInterval <= 0 || spawn.LanternInterval <= 0 {
		return fmt.Errorf("spawn intervals must be positive, got %.0f/%.0f", spawn.EnemyInterval, spawn.LanternInterval)
	}
	if tutorial.MovementThreshold <= 0 || tutorial.CutAdvanceDelay < 0 || tutorial.WindDuration < 0 {
		return fmt.Errorf("tutorial thresholds must not be negative")
	}
	if scoring.CutRadiusRatio <= 0 {
		return fmt.Errorf("scoring.cutRadiusRatio must be positive, got %.3f", scoring.CutRadiusRatio)
	}
	if scoring.IntersectSegments < 1 {
		return fmt.Errorf("scoring.intersectSegments must be at least 1, got %d", scoring.IntersectSegments)
	}
	if wind.ZoneCount < 0 {
		return fmt.Errorf("wind.zoneCount must not be negative, got %d", wind.ZoneCount)
	}
	return nil
}
