package systems

import (
	"errors"
	"testing"

	cfg "github.com/automoto/kaipoche/config"
)

type failingStore struct{}

func (failingStore) LoadItem(string) ([]byte, error) { return nil, errors.New("disk gone") }
func (failingStore) SaveItem(string, []byte) error   { return errors.New("disk gone") }

func TestLoadHighScore(t *testing.T) {
	tests := []struct {
		name   string
		stored []byte
		want   int
	}{
		{"missing", nil, 0},
		{"decimal", []byte("120"), 120},
		{"trailing newline", []byte("40\n"), 40},
		{"malformed", []byte("lots"), 0},
		{"negative", []byte("-5"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			if tt.stored != nil {
				_ = store.SaveItem(cfg.Settings.HighScoreKey, tt.stored)
			}
			if got := LoadHighScore(store); got != tt.want {
				t.Errorf("LoadHighScore = %d, want %d", got, tt.want)
			}
		})
	}

	if got := LoadHighScore(failingStore{}); got != 0 {
		t.Errorf("LoadHighScore on failing store = %d, want 0", got)
	}
	if got := LoadHighScore(nil); got != 0 {
		t.Errorf("LoadHighScore on nil store = %d, want 0", got)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	if err := SaveSettings(store, &SavedSettings{Muted: true, ColorIndex: 3}); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	got, err := LoadSettings(store)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got == nil || !got.Muted || got.ColorIndex != 3 {
		t.Errorf("LoadSettings = %+v", got)
	}

	_ = store.SaveItem(cfg.Settings.SettingsKey, []byte(`{"muted":false,"colorIndex":99}`))
	got, _ = LoadSettings(store)
	if got.ColorIndex != cfg.Settings.DefaultColorIndex {
		t.Errorf("out of range color index = %d, want default", got.ColorIndex)
	}
}

func TestUpdatePersistenceSavesHighScore(t *testing.T) {
	store := NewMemoryStore()
	e := NewSimulation(SimulationOptions{Seed: 1, HighScore: 30})
	e.AddSystem(NewUpdatePersistence(store))

	StartPlaying(e)
	AddScore(e, 20)
	e.Update()
	if got := LoadHighScore(store); got != 0 {
		t.Fatalf("saved %d, a score below the best must not be written", got)
	}

	AddScore(e, 20)
	e.Update()
	if got := LoadHighScore(store); got != 40 {
		t.Errorf("saved high score = %d, want 40", got)
	}
	if GetOrCreateSession(e).HighScoreDirty {
		t.Error("dirty flag should clear after saving")
	}
}

func TestUpdatePersistenceKeepsDirtyOnFailure(t *testing.T) {
	e := NewSimulation(SimulationOptions{Seed: 1})
	e.AddSystem(NewUpdatePersistence(failingStore{}))

	StartPlaying(e)
	AddScore(e, 10)
	e.Update()

	if !GetOrCreateSession(e).HighScoreDirty {
		t.Error("a failed save should be retried")
	}
}
