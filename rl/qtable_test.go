package rl

import (
	"reflect"
	"testing"
)

func TestQTableDefaultOnMiss(t *testing.T) {
	q := NewQTable()
	if got := q.Get("s", "a", 0); got != 0 {
		t.Errorf("Get on empty table = %v, want 0", got)
	}
	if !q.HasState("s") {
		t.Errorf("Get did not create the state entry")
	}
	q.Set("s", "a", 2.5)
	if got := q.Get("s", "a", 0); got != 2.5 {
		t.Errorf("Get after Set = %v, want 2.5", got)
	}
	q.Set("s", "a", -1)
	if got := q.Get("s", "a", 0); got != -1 {
		t.Errorf("Set did not overwrite, got %v", got)
	}
}

func TestQTableMax(t *testing.T) {
	q := NewQTable()
	if got := q.Max("unseen", 0); got != 0 {
		t.Errorf("Max of unseen state = %v, want default", got)
	}
	q.Set("s", "a", -0.5)
	q.Set("s", "b", 0.75)
	if got := q.Max("s", 0); got != 0.75 {
		t.Errorf("Max = %v, want 0.75", got)
	}
}

func TestQTableBestActionTieKeepsFirst(t *testing.T) {
	q := NewQTable()
	if got := q.BestAction("s", []string{"hit", "stand"}, 0); got != "hit" {
		t.Errorf("tie resolved to %q, want hit", got)
	}
	q.Set("s", "stand", 1)
	if got := q.BestAction("s", []string{"hit", "stand"}, 0); got != "stand" {
		t.Errorf("BestAction = %q, want stand", got)
	}
}

func TestQTableEntriesCopies(t *testing.T) {
	q := NewQTable()
	q.Set("s", "a", 1)
	entries := q.Entries()
	entries["s"]["a"] = 99
	if got := q.Get("s", "a", 0); got != 1 {
		t.Errorf("Entries aliased the table, got %v", got)
	}
	restored := NewQTableFrom(q.Entries())
	if !reflect.DeepEqual(restored.Entries(), q.Entries()) {
		t.Errorf("NewQTableFrom lost entries")
	}
}
