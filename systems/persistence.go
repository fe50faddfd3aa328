package systems

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"sync"

	cfg "github.com/automoto/kaipoche/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// Store is a key/value save slot. *gdata.Manager satisfies it.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Muted      bool `json:"muted"`
	ColorIndex int  `json:"colorIndex"`
}

// OpenStore opens the platform save directory for the game.
func OpenStore() (Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// MemoryStore keeps items in memory. Used when no save directory is
// available and in tests.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte)}
}

func (s *MemoryStore) LoadItem(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[key], nil
}

func (s *MemoryStore) SaveItem(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = append([]byte(nil), data...)
	return nil
}

// LoadHighScore reads the stored best score. Missing or malformed data
// counts as zero.
func LoadHighScore(store Store) int {
	if store == nil {
		return 0
	}
	data, err := store.LoadItem(cfg.Settings.HighScoreKey)
	if err != nil {
		log.Printf("[persistence] could not load high score: %v", err)
		return 0
	}
	if len(data) == 0 {
		return 0
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		log.Printf("[persistence] ignoring malformed high score %q", data)
		return 0
	}
	return score
}

// SaveHighScore stores score as decimal text.
func SaveHighScore(store Store, score int) error {
	if store == nil {
		return nil
	}
	if err := store.SaveItem(cfg.Settings.HighScoreKey, []byte(strconv.Itoa(score))); err != nil {
		log.Printf("[persistence] could not save high score: %v", err)
		return err
	}
	return nil
}

// LoadSettings loads settings from disk. Returns nil when nothing was saved.
func LoadSettings(store Store) (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(cfg.Settings.SettingsKey)
	if err != nil {
		log.Printf("[persistence] could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("[persistence] could not parse saved settings: %v", err)
		return nil, err
	}
	if settings.ColorIndex < 0 || settings.ColorIndex >= len(cfg.UI.KiteColors) {
		settings.ColorIndex = cfg.Settings.DefaultColorIndex
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(store Store, s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := store.SaveItem(cfg.Settings.SettingsKey, data); err != nil {
		log.Printf("[persistence] could not save settings: %v", err)
		return err
	}
	return nil
}

// NewUpdatePersistence creates a system that writes a changed high score
// or changed settings back to store.
func NewUpdatePersistence(store Store) ecs.System {
	return func(e *ecs.ECS) {
		session := GetOrCreateSession(e)
		if session.HighScoreDirty {
			if err := SaveHighScore(store, session.HighScore); err == nil {
				session.HighScoreDirty = false
			}
		}

		settings := GetOrCreateSettings(e)
		if settings.Dirty {
			saved := &SavedSettings{Muted: settings.Muted, ColorIndex: settings.ColorIndex}
			if err := SaveSettings(store, saved); err == nil {
				settings.Dirty = false
			}
		}
	}
}
