package store

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "agents.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoadRoundtrip(t *testing.T) {
	s := openTestStore(t)
	snap := Snapshot{
		Name:     "default",
		Episodes: 100000,
		Epsilon:  0.1,
		WinRate:  0.41,
		Data:     []byte(`{"q_table":{}}`),
		SavedAt:  time.Now(),
	}
	if err := s.Save(snap); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load("default")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Episodes != snap.Episodes || got.Epsilon != snap.Epsilon || got.WinRate != snap.WinRate {
		t.Errorf("metadata mismatch: %+v", got)
	}
	if !bytes.Equal(got.Data, snap.Data) {
		t.Errorf("data mismatch: %q", got.Data)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := openTestStore(t)
	first := Snapshot{Name: "a", Episodes: 10, Epsilon: 0.9, Data: []byte("one"), SavedAt: time.Now()}
	second := Snapshot{Name: "a", Episodes: 20, Epsilon: 0.1, Data: []byte("two"), SavedAt: time.Now()}
	if err := s.Save(first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := s.Save(second); err != nil {
		t.Fatalf("save second: %v", err)
	}
	got, err := s.Load("a")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Episodes != 20 || string(got.Data) != "two" {
		t.Errorf("save did not overwrite: %+v", got)
	}
}

func TestLoadMissing(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Load("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
