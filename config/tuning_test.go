package config

import (
	"os"
	"path/filepath"
	"testing"
)

func snapshot() func() {
	kite, tether, spawn, tutorial, scoring, wind := Kite, Tether, Spawn, Tutorial, Scoring, Wind
	return func() {
		Kite, Tether, Spawn, Tutorial, Scoring, Wind = kite, tether, spawn, tutorial, scoring, wind
	}
}

func TestApplyTuningOverridesOnlyPresentFields(t *testing.T) {
	defer snapshot()()

	data := []byte(`
kite:
  followGain: 0.1
spawn:
  enemyInterval: 1200
tether:
  length: 20
`)
	if err := ApplyTuning(data); err != nil {
		t.Fatalf("ApplyTuning failed: %v", err)
	}

	if Kite.FollowGain != 0.1 {
		t.Errorf("followGain = %v, want 0.1", Kite.FollowGain)
	}
	if Spawn.EnemyInterval != 1200 {
		t.Errorf("enemyInterval = %v, want 1200", Spawn.EnemyInterval)
	}
	if Spawn.LanternInterval != 3500 {
		t.Errorf("lanternInterval = %v, want default 3500", Spawn.LanternInterval)
	}
	if Tether.Length != 20 {
		t.Errorf("tether length = %d, want 20", Tether.Length)
	}
	if Tether.PlayerRelax != 0.5 {
		t.Errorf("playerRelax = %v, want default 0.5", Tether.PlayerRelax)
	}
}

func TestApplyTuningRejectsInvalidValues(t *testing.T) {
	defer snapshot()()

	tests := []struct {
		name string
		data string
	}{
		{"relax at one", "tether:\n  playerRelax: 1.0\n"},
		{"short tether", "tether:\n  length: 1\n"},
		{"zero interval", "spawn:\n  lanternInterval: 0\n"},
		{"no segments", "scoring:\n  intersectSegments: 0\n"},
		{"malformed", "kite: [1, 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ApplyTuning([]byte(tt.data)); err == nil {
				t.Errorf("expected error for %q", tt.data)
			}
		})
	}

	if Tether.Length != 15 || Spawn.LanternInterval != 3500 {
		t.Errorf("rejected tuning must leave defaults intact, got length=%d lantern=%v", Tether.Length, Spawn.LanternInterval)
	}
}

func TestLoadTuningFromFile(t *testing.T) {
	defer snapshot()()

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("tutorial:\n  windDuration: 3000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadTuning(path); err != nil {
		t.Fatalf("LoadTuning failed: %v", err)
	}
	if Tutorial.WindDuration != 3000 {
		t.Errorf("windDuration = %v, want 3000", Tutorial.WindDuration)
	}

	if err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestHex(t *testing.T) {
	c := Hex("#FF5733")
	if c.R != 0xFF || c.G != 0x57 || c.B != 0x33 || c.A != 0xFF {
		t.Errorf("Hex(#FF5733) = %+v", c)
	}
	if bad := Hex("nope"); bad.R != 0 || bad.A != 255 {
		t.Errorf("malformed hex should be opaque black, got %+v", bad)
	}
}
