// Package logstore owns the calculation log file: the entries loaded from a
// previous session (old), the entries produced this session (new), and the
// running calculation count. Old and new are reconciled on save.
package logstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abacus-io/abacus/internal/encode"
	"github.com/abacus-io/abacus/internal/models"
)

// Store errors.
var (
	// ErrLogUnavailable means the log file exists but cannot be read.
	// Callers should offer to continue with a fresh, empty log.
	ErrLogUnavailable = errors.New("calculation log unavailable")

	// ErrNotLoaded means an operation ran before Load.
	ErrNotLoaded = errors.New("calculation log not loaded")
)

// countPrefix leads the header line carrying the Morse-coded total.
const countPrefix = "Total calculations: "

// state tracks the store lifecycle: Load moves it from uninitialized to
// loaded, Save to saved. Append is only legal once loaded.
type state int

const (
	stateUninitialized state = iota
	stateLoaded
	stateSaved
)

// Store is the single owner of the calculation log contents. It is not safe
// for concurrent use; the session runs single-threaded.
type Store struct {
	path  string
	log   zerolog.Logger
	state state

	old   []*models.LogEntry // loaded from file, original order
	new   []*models.LogEntry // appended this session
	total int
}

// New creates a store for the log file at path. Load must be called before
// Append or Save.
func New(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log}
}

// Load reads the whole log file. A missing file yields an empty store. The
// total count is recomputed from the entries actually present; a Morse
// header that disagrees (a hand-edited file) is reported at debug level and
// ignored, since the entries are the source of truth.
func (s *Store) Load() error {
	s.old = nil
	s.new = nil
	s.total = 0

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.state = stateLoaded
			s.log.Debug().Str("path", s.path).Msg("log file absent, starting fresh")
			return nil
		}
		return fmt.Errorf("%w: %s: %v", ErrLogUnavailable, s.path, err)
	}

	headerCount := -1
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		if morse, ok := strings.CutPrefix(line, countPrefix); ok && headerCount < 0 {
			n, err := encode.MorseToNum(morse)
			if err != nil {
				s.log.Debug().Str("header", morse).Msg("unreadable morse count header")
				continue
			}
			headerCount = n
			continue
		}
		entry := models.ParseLogEntry(line)
		entry.Seq = len(s.old) + 1
		s.old = append(s.old, entry)
	}

	s.total = len(s.old)
	if headerCount >= 0 && headerCount != s.total {
		s.log.Debug().
			Int("header", headerCount).
			Int("recomputed", s.total).
			Msg("count header disagrees with entries, trusting entries")
	}

	s.state = stateLoaded
	return nil
}

// Append records a completed calculation. Each call appends; entries are
// never deduplicated.
func (s *Store) Append(entry *models.LogEntry) error {
	if s.state == stateUninitialized {
		return ErrNotLoaded
	}
	entry.Seq = s.total + 1
	s.new = append(s.new, entry)
	s.total++
	return nil
}

// Save writes the Morse count header followed by old then new entries,
// atomically replacing the log file. Afterwards the merged set counts as
// old, so a fresh Load observes exactly what Save wrote.
func (s *Store) Save() error {
	if s.state == stateUninitialized {
		return ErrNotLoaded
	}

	var sb strings.Builder
	sb.WriteString(countPrefix)
	sb.WriteString(encode.NumToMorse(s.total))
	sb.WriteByte('\n')
	for _, entry := range s.old {
		sb.WriteString(entry.Raw)
		sb.WriteByte('\n')
	}
	for _, entry := range s.new {
		sb.WriteString(entry.Raw)
		sb.WriteByte('\n')
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	// Write-then-rename so a crash mid-save never truncates the log.
	tmp := s.path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write log: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace log: %w", err)
	}

	s.old = append(s.old, s.new...)
	s.new = nil
	s.state = stateSaved
	s.log.Debug().Int("total", s.total).Str("path", s.path).Msg("log saved")
	return nil
}

// Reset discards all entries and zeroes the count, regardless of save
// state. The file itself is untouched until the next Save.
func (s *Store) Reset() {
	s.old = nil
	s.new = nil
	s.total = 0
	if s.state == stateUninitialized {
		s.state = stateLoaded
	}
}

// OldEntries returns the entries loaded from a previous session.
func (s *Store) OldEntries() []*models.LogEntry { return s.old }

// NewEntries returns the entries appended this session and not yet saved.
func (s *Store) NewEntries() []*models.LogEntry { return s.new }

// Entries returns old then new entries in log order.
func (s *Store) Entries() []*models.LogEntry {
	all := make([]*models.LogEntry, 0, len(s.old)+len(s.new))
	all = append(all, s.old...)
	all = append(all, s.new...)
	return all
}

// TotalCount returns the cumulative calculation count.
func (s *Store) TotalCount() int { return s.total }

// Path returns the log file path.
func (s *Store) Path() string { return s.path }
