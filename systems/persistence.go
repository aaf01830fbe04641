package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"

	cfg "github.com/automoto/gravwell/config"
)

// SavedSettings is the settings data stored on disk.
type SavedSettings struct {
	Overlay    bool `json:"overlay"`
	LevelIndex int  `json:"levelIndex"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "gravwell",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. A nil result with nil error means
// no settings were saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk.
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings snapshots the live config.
func SaveCurrentSettings() {
	_ = SaveSettings(&SavedSettings{
		Overlay:    cfg.Debug.Overlay,
		LevelIndex: savedLevelIndex,
	})
}

var savedLevelIndex int

// ApplySavedSettings applies loaded settings to the live config and
// returns the level index to start on.
func ApplySavedSettings(saved *SavedSettings) int {
	if saved == nil {
		return 0
	}
	cfg.Debug.Overlay = saved.Overlay
	savedLevelIndex = saved.LevelIndex
	return saved.LevelIndex
}

// RememberLevel records the running level so the next session resumes it.
func RememberLevel(index int) {
	savedLevelIndex = index
	SaveCurrentSettings()
}
