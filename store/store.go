package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"raidguard/model"
)

// Store owns the persisted anti-raid settings document. All reads and
// writes go through one mutex, and every mutation is written back to disk
// before the call returns, so two rapid panel presses cannot lose an
// update.
type Store struct {
	mu       sync.RWMutex
	path     string
	settings model.SettingsFile
}

// New loads the settings file at path. A missing file yields an empty
// document; an unparseable one is an error the caller should treat as
// fatal.
func New(path string) (*Store, error) {
	s := &Store{
		path: path,
		settings: model.SettingsFile{
			AntiRaid: make(map[string]model.GuildProtectionConfig),
		},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &s.settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings file %s: %w", path, err)
	}
	if s.settings.AntiRaid == nil {
		s.settings.AntiRaid = make(map[string]model.GuildProtectionConfig)
	}

	return s, nil
}

// Ensure inserts the default configuration for guildID if none exists yet
// and persists it. It must run before any other access for that guild;
// events can arrive before any command does.
func (s *Store) Ensure(guildID string) error {
	if guildID == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.settings.AntiRaid[guildID]; ok {
		return nil
	}
	s.settings.AntiRaid[guildID] = model.DefaultGuildProtectionConfig()
	return s.save()
}

// Get returns a copy of the guild's configuration. Guilds never touched by
// Ensure come back zero-valued.
func (s *Store) Get(guildID string) model.GuildProtectionConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.AntiRaid[guildID]
}

// Update applies fn to the guild's configuration under the store lock and
// persists the result. The updated configuration is returned so callers
// can re-render from it.
func (s *Store) Update(guildID string, fn func(*model.GuildProtectionConfig)) (model.GuildProtectionConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, ok := s.settings.AntiRaid[guildID]
	if !ok {
		cfg = model.DefaultGuildProtectionConfig()
	}
	fn(&cfg)
	s.settings.AntiRaid[guildID] = cfg
	return cfg, s.save()
}

// Save writes the current document to disk.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// save writes the whole document pretty-printed. Callers hold the lock.
func (s *Store) save() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create settings directory %s: %w", dir, err)
		}
	}

	data, err := json.MarshalIndent(&s.settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", s.path, err)
	}
	return nil
}
