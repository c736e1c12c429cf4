package config

import (
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Store publishes the active snapshot behind a single atomic pointer.
// Readers always observe either the fully-old or fully-new snapshot; a
// candidate that fails validation never replaces the published one.
type Store struct {
	logger  *zap.Logger
	path    string
	current atomic.Pointer[Snapshot]
}

// NewStore loads the snapshot at path and publishes it.
func NewStore(logger *zap.Logger, path string) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	snap, err := LoadSnapshot(path)
	if err != nil {
		return nil, err
	}

	s := &Store{logger: logger, path: path}
	s.current.Store(snap)
	logger.Info("configuration snapshot published",
		zap.String("op", "config.NewStore"),
		zap.String("version", snap.Version),
	)
	return s, nil
}

// NewStoreFromSnapshot publishes an already-built snapshot. Intended for
// tests and embedded defaults.
func NewStoreFromSnapshot(logger *zap.Logger, snap *Snapshot) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	s := &Store{logger: logger}
	s.current.Store(snap)
	return s, nil
}

// Current returns the active snapshot. Never nil once the store exists.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Reload loads and validates a candidate snapshot from the backing file and
// swaps it in atomically. On failure the active snapshot is left untouched.
func (s *Store) Reload() error {
	snap, err := LoadSnapshot(s.path)
	if err != nil {
		s.logger.Warn("snapshot reload rejected, keeping active snapshot",
			zap.String("op", "config.Reload"),
			zap.Error(err),
		)
		return err
	}

	s.current.Store(snap)
	s.logger.Info("configuration snapshot reloaded",
		zap.String("op", "config.Reload"),
		zap.String("version", snap.Version),
	)
	return nil
}

// Watch reloads the snapshot whenever the backing file changes. Invalid
// candidates are logged and discarded.
func (s *Store) Watch() {
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigFile(s.path)
	if err := v.ReadInConfig(); err != nil {
		s.logger.Warn("cannot watch configuration file",
			zap.String("op", "config.Watch"),
			zap.Error(err),
		)
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		s.logger.Debug("configuration file changed",
			zap.String("op", "config.Watch"),
			zap.String("event", e.Name),
		)
		_ = s.Reload()
	})
	v.WatchConfig()
}
