// Package appearance persists the user's theme selection and wires theme
// hot reload into a running app.
package appearance

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/o0x0o/pigment/pkg/themes"
)

// stateFile is the fixed name of the selection record inside the config
// directory.
const stateFile = "state.json"

// State is the persisted theme selection.
type State struct {
	// Theme is the selected theme name, case-sensitive.
	Theme string `json:"theme"`
	// ScrollbarShow is the explicit scrollbar preference; nil means the
	// theme's own setting applies.
	ScrollbarShow *themes.ScrollbarShow `json:"scrollbar_show"`
}

// DefaultState is what Load returns when nothing usable is on disk.
func DefaultState() State {
	return State{Theme: themes.DefaultLightName}
}

// Store reads and writes the selection record in a config directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the location of the selection record.
func (s *Store) Path() string {
	return filepath.Join(s.dir, stateFile)
}

// Load reads the persisted selection. A missing file, an unreadable file and
// malformed content all degrade to the defaults; Load never fails. Fields
// the file does not mention keep their default, unknown fields are ignored.
func (s *Store) Load() State {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Debug("Could not read appearance state", "path", s.Path(), "error", err)
		}
		return DefaultState()
	}

	state := DefaultState()
	if err := json.Unmarshal(data, &state); err != nil {
		slog.Warn("Ignoring malformed appearance state", "path", s.Path(), "error", err)
		return DefaultState()
	}
	if state.ScrollbarShow != nil && !state.ScrollbarShow.Valid() {
		slog.Warn("Ignoring appearance state with unknown scrollbar_show", "path", s.Path(), "value", *state.ScrollbarShow)
		return DefaultState()
	}
	return state
}

// Save writes the selection as pretty-printed JSON, replacing any previous
// record. The config directory is never created here: writing into a missing
// or read-only directory fails, and the caller decides whether that matters.
func (s *Store) Save(state State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode appearance state: %w", err)
	}
	data = append(data, '\n')

	if err := atomic.WriteFile(s.Path(), bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write appearance state: %w", err)
	}
	return nil
}
