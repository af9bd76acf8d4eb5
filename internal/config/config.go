package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrPersist marks failures to write the configuration file back to disk
var ErrPersist = errors.New("failed to persist config")

// Config mirrors the JSON configuration file
type Config struct {
	TG TGConfig `json:"tg"`
	DB string   `json:"db"`
}

// TGConfig holds Telegram bot settings
type TGConfig struct {
	Token        string           `json:"token"`
	Owner        int64            `json:"owner"`
	UseWhitelist bool             `json:"use_whitelist"`
	Whitelist    map[string]int64 `json:"whitelist"`
}

// Store owns the loaded configuration and its backing file.
// The whitelist is the only field mutated at runtime; every mutation is
// a read-modify-persist sequence serialized by the store's mutex so
// concurrent mutations cannot lose updates.
type Store struct {
	mu   sync.Mutex
	path string
	cfg  *Config
}

// Load reads and validates the configuration file.
// A missing or malformed file is fatal for startup, there is no recovery.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.TG.Token == "" {
		return nil, fmt.Errorf("tg.token is required")
	}
	if cfg.TG.Owner == 0 {
		return nil, fmt.Errorf("tg.owner is required")
	}
	if cfg.DB == "" {
		return nil, fmt.Errorf("db is required")
	}

	if cfg.TG.Whitelist == nil {
		cfg.TG.Whitelist = make(map[string]int64)
	}

	return &Store{path: path, cfg: &cfg}, nil
}

// Marshal renders a config as the on-disk JSON representation
func Marshal(cfg *Config) ([]byte, error) {
	return json.MarshalIndent(cfg, "", "    ")
}

// Token returns the Telegram bot token
func (s *Store) Token() string {
	return s.cfg.TG.Token
}

// Owner returns the owner's user ID
func (s *Store) Owner() int64 {
	return s.cfg.TG.Owner
}

// UseWhitelist reports whether access is restricted to whitelisted users
func (s *Store) UseWhitelist() bool {
	return s.cfg.TG.UseWhitelist
}

// DBPath returns the path to the WAT store file
func (s *Store) DBPath() string {
	return s.cfg.DB
}

// Whitelist returns a snapshot copy of the whitelist
func (s *Store) Whitelist() map[string]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	wl := make(map[string]int64, len(s.cfg.TG.Whitelist))
	for name, id := range s.cfg.TG.Whitelist {
		wl[name] = id
	}
	return wl
}

// AddWhitelistEntry inserts a user into the whitelist and rewrites the
// configuration file. Returns false without mutation if the name is taken.
// On persist failure the in-memory mutation is rolled back.
func (s *Store) AddWhitelistEntry(name string, userID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.cfg.TG.Whitelist[name]; exists {
		return false, nil
	}

	s.cfg.TG.Whitelist[name] = userID

	if err := s.persist(); err != nil {
		delete(s.cfg.TG.Whitelist, name)
		return false, err
	}
	return true, nil
}

// RemoveWhitelistEntry deletes a user from the whitelist and rewrites the
// configuration file. Returns false without mutation if the name is absent.
// On persist failure the in-memory mutation is rolled back.
func (s *Store) RemoveWhitelistEntry(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID, exists := s.cfg.TG.Whitelist[name]
	if !exists {
		return false, nil
	}

	delete(s.cfg.TG.Whitelist, name)

	if err := s.persist(); err != nil {
		s.cfg.TG.Whitelist[name] = userID
		return false, err
	}
	return true, nil
}

// persist rewrites the whole configuration file. Written to a temp file
// first and renamed into place so a crash mid-write cannot leave a
// truncated config behind. Callers must hold the mutex.
func (s *Store) persist() error {
	data, err := Marshal(s.cfg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".watbot-conf-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}
