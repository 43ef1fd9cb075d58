package logstore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/abacus-io/abacus/internal/calc"
	"github.com/abacus-io/abacus/internal/models"
)

func testEntry(a, b string, op calc.OpKind, result string) *models.LogEntry {
	at := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	return models.NewLogEntry(a, b, op, result, at)
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "calculations.log"), zerolog.Nop())
}

func TestLoadMissingFile(t *testing.T) {
	s := newTestStore(t)
	if err := s.Load(); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(s.OldEntries()) != 0 || len(s.NewEntries()) != 0 || s.TotalCount() != 0 {
		t.Errorf("fresh store not empty: old=%d new=%d total=%d",
			len(s.OldEntries()), len(s.NewEntries()), s.TotalCount())
	}
}

func TestAppendBeforeLoad(t *testing.T) {
	s := newTestStore(t)
	err := s.Append(testEntry("1.0", "2.0", calc.OpAdd, "3.0"))
	if !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Append before Load = %v, want ErrNotLoaded", err)
	}
	if err := s.Save(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Save before Load = %v, want ErrNotLoaded", err)
	}
}

func TestRoundTrip(t *testing.T) {
	s := newTestStore(t)
	if err := s.Load(); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	e1 := testEntry("2.0", "3.0", calc.OpAdd, "5.0")
	e2 := testEntry("9.0", "2.0", calc.OpDivide, "4.5")
	for _, e := range []*models.LogEntry{e1, e2} {
		if err := s.Append(e); err != nil {
			t.Fatalf("Append error: %v", err)
		}
	}
	if s.TotalCount() != 2 {
		t.Fatalf("TotalCount = %d, want 2", s.TotalCount())
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	reloaded := New(s.Path(), zerolog.Nop())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload error: %v", err)
	}
	old := reloaded.OldEntries()
	if len(old) != 2 || len(reloaded.NewEntries()) != 0 {
		t.Fatalf("after reload: old=%d new=%d, want 2/0", len(old), len(reloaded.NewEntries()))
	}
	if reloaded.TotalCount() != 2 {
		t.Errorf("TotalCount after reload = %d, want 2", reloaded.TotalCount())
	}
	if old[0].Raw != e1.Raw || old[1].Raw != e2.Raw {
		t.Errorf("entries did not round-trip: %q, %q", old[0].Raw, old[1].Raw)
	}
	if old[0].Seq != 1 || old[1].Seq != 2 {
		t.Errorf("sequence numbers = %d, %d, want 1, 2", old[0].Seq, old[1].Seq)
	}
}

func TestCountSurvivesRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calculations.log")

	s := New(path, zerolog.Nop())
	if err := s.Load(); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := s.Append(testEntry("1.0", "1.0", calc.OpAdd, "2.0")); err != nil {
			t.Fatalf("Append error: %v", err)
		}
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	// Second session appends one more.
	s2 := New(path, zerolog.Nop())
	if err := s2.Load(); err != nil {
		t.Fatalf("second Load error: %v", err)
	}
	if s2.TotalCount() != 3 {
		t.Fatalf("TotalCount after restart = %d, want 3", s2.TotalCount())
	}
	if err := s2.Append(testEntry("2.0", "2.0", calc.OpMultiply, "4.0")); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if err := s2.Save(); err != nil {
		t.Fatalf("second Save error: %v", err)
	}

	s3 := New(path, zerolog.Nop())
	if err := s3.Load(); err != nil {
		t.Fatalf("third Load error: %v", err)
	}
	if s3.TotalCount() != 4 {
		t.Errorf("TotalCount after two sessions = %d, want 4", s3.TotalCount())
	}
}

func TestSaveWritesMorseHeader(t *testing.T) {
	s := newTestStore(t)
	if err := s.Load(); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	_ = s.Append(testEntry("1.0", "2.0", calc.OpAdd, "3.0"))
	_ = s.Append(testEntry("5.0", "1.0", calc.OpSubtract, "4.0"))
	if err := s.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("log has %d lines, want 3:\n%s", len(lines), data)
	}
	if lines[0] != "Total calculations: ..---" {
		t.Errorf("header = %q, want morse 2", lines[0])
	}
}

func TestHeaderDisagreementRecomputes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calculations.log")
	content := "Total calculations: ----. ----.\n" + // morse 99
		"Timestamp I.I.MMXXIV Calculation 1.0 + 1.0 = 2.0\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s := New(path, zerolog.Nop())
	if err := s.Load(); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.TotalCount() != 1 {
		t.Errorf("TotalCount = %d, want recomputed 1", s.TotalCount())
	}
}

func TestHandEditedLinesSurvive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calculations.log")
	note := "reviewed by hand on tuesday"
	content := "Total calculations: .----\n" +
		"Timestamp I.I.MMXXIV Calculation 1.0 + 1.0 = 2.0\n" +
		note + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s := New(path, zerolog.Nop())
	if err := s.Load(); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), note) {
		t.Errorf("hand-edited line lost on save:\n%s", data)
	}
}

func TestResetThenSave(t *testing.T) {
	s := newTestStore(t)
	if err := s.Load(); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	_ = s.Append(testEntry("1.0", "2.0", calc.OpAdd, "3.0"))
	if err := s.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	s.Reset()
	if s.TotalCount() != 0 {
		t.Fatalf("TotalCount after Reset = %d, want 0", s.TotalCount())
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Save after Reset error: %v", err)
	}

	reloaded := New(s.Path(), zerolog.Nop())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if len(reloaded.Entries()) != 0 || reloaded.TotalCount() != 0 {
		t.Errorf("after reset+save: entries=%d total=%d, want 0/0",
			len(reloaded.Entries()), reloaded.TotalCount())
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}
	path := filepath.Join(t.TempDir(), "calculations.log")
	if err := os.WriteFile(path, []byte("Total calculations: .----\n"), 0000); err != nil {
		t.Fatal(err)
	}

	s := New(path, zerolog.Nop())
	err := s.Load()
	if !errors.Is(err, ErrLogUnavailable) {
		t.Errorf("Load = %v, want ErrLogUnavailable", err)
	}
}

func TestInvariantHolds(t *testing.T) {
	s := newTestStore(t)
	if err := s.Load(); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	for i := 0; i < 5; i++ {
		_ = s.Append(testEntry("1.0", "1.0", calc.OpAdd, "2.0"))
		if got := len(s.OldEntries()) + len(s.NewEntries()); s.TotalCount() != got {
			t.Fatalf("invariant broken after append %d: total=%d entries=%d", i, s.TotalCount(), got)
		}
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if got := len(s.OldEntries()) + len(s.NewEntries()); s.TotalCount() != got {
		t.Errorf("invariant broken after save: total=%d entries=%d", s.TotalCount(), got)
	}
}
