package app

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pixelgrid/chomp/internal/game"
)

// HighScoreStore persists the best score outside the simulation core. The
// core only ever sees the value fed in at match start; writing it back is
// this collaborator's job, done after reading the snapshot.
type HighScoreStore struct {
	path  string
	best  int
	dirty bool
}

type highScoreRecord struct {
	Best int `json:"best"`
}

// OpenHighScoreStore loads the saved high score, defaulting to zero when no
// record exists yet.
func OpenHighScoreStore() (*HighScoreStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	s := &HighScoreStore{path: filepath.Join(dir, "chomp", "highscore.json")}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	var rec highScoreRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		// Corrupt record: start over from zero.
		return s, nil
	}
	s.best = rec.Best
	return s, nil
}

// Best returns the loaded high score.
func (s *HighScoreStore) Best() int {
	return s.best
}

// Observe tracks the snapshot's high score and persists it at quiet
// moments (end of a board or of the match) rather than on every pellet.
// Write failures are swallowed: persistence is best-effort.
func (s *HighScoreStore) Observe(snap game.Snapshot) {
	if snap.HighScore > s.best {
		s.best = snap.HighScore
		s.dirty = true
	}
	if !s.dirty {
		return
	}
	flush := false
	for _, e := range snap.Events {
		if e.Kind == game.EventGameOver || e.Kind == game.EventLevelComplete {
			flush = true
		}
	}
	if !flush {
		return
	}
	s.dirty = false
	data, err := json.Marshal(highScoreRecord{Best: s.best})
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0o644)
}
