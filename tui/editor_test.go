package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"spinpick/store"
)

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func special(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func testEntries() []store.Entry {
	return []store.Entry{
		{Name: "Alice", Weight: 1, Enabled: true},
		{Name: "Bob", Weight: 2, Enabled: true},
		{Name: "Carol", Weight: 1, Enabled: false},
	}
}

func TestEditorCopiesInput(t *testing.T) {
	src := testEntries()
	e := NewEditor(src)
	e.HandleKey(key(' ')) // Toggle first entry

	if !src[0].Enabled {
		t.Error("editor mutated the caller's slice")
	}
	if e.Entries()[0].Enabled {
		t.Error("toggle did not apply to the working copy")
	}
}

func TestToggleEnabled(t *testing.T) {
	e := NewEditor(testEntries())

	e.HandleKey(key(' '))
	if e.Entries()[0].Enabled {
		t.Error("first toggle should disable")
	}
	e.HandleKey(key(' '))
	if !e.Entries()[0].Enabled {
		t.Error("second toggle should re-enable")
	}
	if !e.Dirty() {
		t.Error("toggling should mark the list dirty")
	}
}

func TestCursorMovementClamped(t *testing.T) {
	e := NewEditor(testEntries())

	e.HandleKey(special(tcell.KeyUp)) // Already at top
	e.HandleKey(key('j'))
	e.HandleKey(key('j'))
	e.HandleKey(key('j')) // Past bottom
	e.HandleKey(key(' '))

	entries := e.Entries()
	if entries[0].Enabled == false {
		t.Error("toggle hit the wrong row, cursor not clamped at bottom")
	}
	if entries[2].Enabled != true {
		t.Error("bottom row not toggled")
	}
}

func TestWeightAdjustmentClamped(t *testing.T) {
	e := NewEditor([]store.Entry{{Name: "a", Weight: 0.2, Enabled: true}})

	e.HandleKey(key('-'))
	e.HandleKey(key('-'))
	e.HandleKey(key('-'))
	if got := e.Entries()[0].Weight; got != 0.1 {
		t.Errorf("weight %v, want clamped at 0.1", got)
	}

	for i := 0; i < 200; i++ {
		e.HandleKey(key('+'))
	}
	if got := e.Entries()[0].Weight; got != 10 {
		t.Errorf("weight %v, want clamped at 10", got)
	}
}

func TestAddEntry(t *testing.T) {
	e := NewEditor(testEntries())

	e.HandleKey(key('a'))
	if !e.Editing() {
		t.Fatal("'a' should open the add prompt")
	}
	for _, r := range "Dave" {
		e.HandleKey(key(r))
	}
	e.HandleKey(special(tcell.KeyEnter))

	entries := e.Entries()
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(entries))
	}
	added := entries[3]
	if added.Name != "Dave" || added.Weight != 1 || !added.Enabled {
		t.Errorf("added entry %+v, want Dave ×1 enabled", added)
	}
}

func TestAddEntryBlankNameCancelled(t *testing.T) {
	e := NewEditor(testEntries())
	e.HandleKey(key('a'))
	e.HandleKey(key(' '))
	e.HandleKey(special(tcell.KeyEnter))

	if len(e.Entries()) != 3 {
		t.Error("blank name should not add an entry")
	}
}

func TestRenameEntry(t *testing.T) {
	e := NewEditor(testEntries())

	e.HandleKey(key('r'))
	for i := 0; i < len("Alice"); i++ {
		e.HandleKey(special(tcell.KeyBackspace2))
	}
	for _, r := range "Anna" {
		e.HandleKey(key(r))
	}
	e.HandleKey(special(tcell.KeyEnter))

	if got := e.Entries()[0].Name; got != "Anna" {
		t.Errorf("name %q, want Anna", got)
	}
}

func TestRenameCancelKeepsOriginal(t *testing.T) {
	e := NewEditor(testEntries())
	e.HandleKey(key('r'))
	e.HandleKey(key('X'))
	e.HandleKey(special(tcell.KeyEscape))

	if got := e.Entries()[0].Name; got != "Alice" {
		t.Errorf("name %q after cancel, want Alice", got)
	}
	if e.Dirty() {
		t.Error("cancelled edit should not mark dirty")
	}
}

func TestDeleteEntry(t *testing.T) {
	e := NewEditor(testEntries())
	e.HandleKey(key('j'))
	e.HandleKey(key('d'))

	entries := e.Entries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Name != "Alice" || entries[1].Name != "Carol" {
		t.Errorf("wrong entry deleted: %+v", entries)
	}

	// Deleting the last row pulls the cursor back
	e.HandleKey(key('j'))
	e.HandleKey(key('d'))
	e.HandleKey(key('d'))
	if len(e.Entries()) != 0 {
		t.Errorf("got %d entries, want 0", len(e.Entries()))
	}
	e.HandleKey(key('d')) // No-op on empty list
}

func TestEscapeClosesEditor(t *testing.T) {
	e := NewEditor(testEntries())
	if !e.HandleKey(key('j')) {
		t.Error("normal key should keep the editor open")
	}
	if e.HandleKey(special(tcell.KeyEscape)) {
		t.Error("escape should close the editor")
	}
}

func TestDrawSmoke(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	e := NewEditor(testEntries())
	e.Draw(screen)

	e.HandleKey(key('a'))
	for _, r := range "Dave" {
		e.HandleKey(key(r))
	}
	e.Draw(screen) // Add prompt visible

	empty := NewEditor(nil)
	empty.Draw(screen)
}
