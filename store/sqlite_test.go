package store

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "picker.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestEntriesRoundTrip(t *testing.T) {
	s := openTestStore(t)

	in := []Entry{
		{Name: "Alice", Weight: 1, Enabled: true},
		{Name: "Bob", Weight: 2.5, Enabled: false},
		{Name: "Carol", Weight: 0.1, Enabled: true},
	}
	if err := s.SaveEntries(in); err != nil {
		t.Fatal(err)
	}

	out, err := s.Entries()
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(in) {
		t.Fatalf("loaded %d entries, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("entry %d: got %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestSaveEntriesLastWriteWins(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveEntries([]Entry{{Name: "old", Weight: 1, Enabled: true}}); err != nil {
		t.Fatal(err)
	}
	replacement := []Entry{
		{Name: "new-a", Weight: 1, Enabled: true},
		{Name: "new-b", Weight: 3, Enabled: true},
	}
	if err := s.SaveEntries(replacement); err != nil {
		t.Fatal(err)
	}

	out, err := s.Entries()
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[0].Name != "new-a" || out[1].Name != "new-b" {
		t.Errorf("got %+v, want the replacement list only", out)
	}
}

func TestEmptyStoreHasNoEntries(t *testing.T) {
	s := openTestStore(t)
	out, err := s.Entries()
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Errorf("fresh store holds %d entries", len(out))
	}
}

func TestRecordSpinAndHistory(t *testing.T) {
	s := openTestStore(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ids := map[string]bool{}
	for i, winner := range []string{"Alice", "Bob", "Alice"} {
		id, err := s.RecordSpin(winner, 10*time.Second, 3*time.Second, base.Add(time.Duration(i)*time.Minute))
		if err != nil {
			t.Fatal(err)
		}
		if id == "" || ids[id] {
			t.Fatalf("record %d: id %q not unique", i, id)
		}
		ids[id] = true
	}

	recs, err := s.History(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("history returned %d records, want 2", len(recs))
	}
	// Newest first
	if recs[0].Winner != "Alice" || !recs[0].FinishedAt.Equal(base.Add(2*time.Minute)) {
		t.Errorf("newest record %+v, want the third spin", recs[0])
	}
	if recs[1].Winner != "Bob" {
		t.Errorf("second record winner %q, want Bob", recs[1].Winner)
	}
	if recs[0].Total != 10*time.Second || recs[0].Decel != 3*time.Second {
		t.Errorf("durations %v/%v, want 10s/3s", recs[0].Total, recs[0].Decel)
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("empty path accepted")
	}
}
