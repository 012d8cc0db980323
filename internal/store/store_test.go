package store

import "testing"

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadEmptySlot(t *testing.T) {
	s := openTestStore(t)

	got, err := s.Load(SlotAssessments)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != nil {
		t.Errorf("empty slot = %q, want nil", got)
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := openTestStore(t)

	want := []byte(`[{"id":"a1"}]`)
	if err := s.Save(SlotAssessments, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load(SlotAssessments)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("load = %q, want %q", got, want)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save(SlotResults, []byte(`[1]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save(SlotResults, []byte(`[1,2]`)); err != nil {
		t.Fatalf("save again: %v", err)
	}

	got, err := s.Load(SlotResults)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `[1,2]` {
		t.Errorf("load = %q, want %q", got, `[1,2]`)
	}
}

func TestSlotsAreIndependent(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save(SlotAssessments, []byte(`[]`)); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load(SlotResults)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != nil {
		t.Errorf("other slot = %q, want nil", got)
	}
}

func TestSlotsTableCreated(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='slots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "slots" {
		t.Errorf("table name = %q, want 'slots'", name)
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	// WAL mode falls back to "memory" for in-memory databases, so
	// journal_mode is only meaningful for file-backed stores.
	var got string
	if err := s.DB().QueryRow("PRAGMA synchronous").Scan(&got); err != nil {
		t.Fatalf("PRAGMA synchronous: %v", err)
	}
	if got != "1" { // NORMAL = 1
		t.Errorf("PRAGMA synchronous = %q, want \"1\"", got)
	}
}

func TestMemoryKV(t *testing.T) {
	m := NewMemory()

	got, err := m.Load("missing")
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if got != nil {
		t.Errorf("missing slot = %q, want nil", got)
	}

	if err := m.Save("s", []byte("v")); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err = m.Load("s")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != "v" {
		t.Errorf("load = %q, want %q", got, "v")
	}
}
