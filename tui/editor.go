// Package tui holds the entry editor: a scrollable checkbox list over
// the stored entry list with inline renaming and weight adjustment
package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"spinpick/store"
	"spinpick/wheel"
)

const weightStep = 0.1

// Editor edits a working copy of the stored entry list. The caller
// reads Entries back and persists them when the editor closes
type Editor struct {
	entries []store.Entry
	cursor  int
	scroll  int

	editing bool   // Inline name edit active
	adding  bool   // The edited row is a new entry
	buf     []rune // Name being typed

	dirty bool
}

// NewEditor creates an editor over a copy of the given entries
func NewEditor(entries []store.Entry) *Editor {
	cp := make([]store.Entry, len(entries))
	copy(cp, entries)
	return &Editor{entries: cp}
}

// Entries returns the working list
func (e *Editor) Entries() []store.Entry {
	return e.entries
}

// Dirty reports whether the list changed since the last ClearDirty
func (e *Editor) Dirty() bool { return e.dirty }

// ClearDirty resets the change marker
func (e *Editor) ClearDirty() { e.dirty = false }

// Editing reports whether an inline name edit is active
func (e *Editor) Editing() bool { return e.editing }

// HandleKey processes one key event. Returns false when the editor
// wants to close (Escape outside of an edit)
func (e *Editor) HandleKey(ev *tcell.EventKey) bool {
	if e.editing {
		e.handleEditKey(ev)
		return true
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyUp:
		e.moveCursor(-1)
	case tcell.KeyDown:
		e.moveCursor(1)
	case tcell.KeyEnter:
		e.beginRename()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			e.moveCursor(-1)
		case 'j':
			e.moveCursor(1)
		case ' ':
			e.toggleEnabled()
		case '+', '=':
			e.adjustWeight(weightStep)
		case '-', '_':
			e.adjustWeight(-weightStep)
		case 'a':
			e.beginAdd()
		case 'r':
			e.beginRename()
		case 'd':
			e.deleteCurrent()
		}
	}
	return true
}

func (e *Editor) handleEditKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		e.cancelEdit()
	case tcell.KeyEnter:
		e.commitEdit()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(e.buf) > 0 {
			e.buf = e.buf[:len(e.buf)-1]
		}
	case tcell.KeyRune:
		e.buf = append(e.buf, ev.Rune())
	}
}

func (e *Editor) moveCursor(delta int) {
	e.cursor += delta
	if e.cursor < 0 {
		e.cursor = 0
	}
	if e.cursor >= len(e.entries) {
		e.cursor = len(e.entries) - 1
	}
	if e.cursor < 0 {
		e.cursor = 0
	}
}

func (e *Editor) toggleEnabled() {
	if e.cursor >= len(e.entries) {
		return
	}
	e.entries[e.cursor].Enabled = !e.entries[e.cursor].Enabled
	e.dirty = true
}

func (e *Editor) adjustWeight(delta float64) {
	if e.cursor >= len(e.entries) {
		return
	}
	e.entries[e.cursor].Weight = wheel.ClampWeight(e.entries[e.cursor].Weight + delta)
	e.dirty = true
}

func (e *Editor) beginAdd() {
	e.editing = true
	e.adding = true
	e.buf = e.buf[:0]
}

func (e *Editor) beginRename() {
	if e.cursor >= len(e.entries) {
		return
	}
	e.editing = true
	e.adding = false
	e.buf = []rune(e.entries[e.cursor].Name)
}

func (e *Editor) cancelEdit() {
	e.editing = false
	e.adding = false
	e.buf = e.buf[:0]
}

func (e *Editor) commitEdit() {
	name := strings.TrimSpace(string(e.buf))
	if name == "" {
		e.cancelEdit()
		return
	}
	if e.adding {
		e.entries = append(e.entries, store.Entry{Name: name, Weight: 1, Enabled: true})
		e.cursor = len(e.entries) - 1
	} else if e.cursor < len(e.entries) {
		e.entries[e.cursor].Name = name
	}
	e.dirty = true
	e.cancelEdit()
}

func (e *Editor) deleteCurrent() {
	if e.cursor >= len(e.entries) {
		return
	}
	e.entries = append(e.entries[:e.cursor], e.entries[e.cursor+1:]...)
	if e.cursor >= len(e.entries) && e.cursor > 0 {
		e.cursor--
	}
	e.dirty = true
}

// Draw renders the editor full-screen
func (e *Editor) Draw(screen tcell.Screen) {
	screen.Clear()
	w, h := screen.Size()

	header := " entries — space toggle, +/- weight, a add, r rename, d delete, esc back "
	drawText(screen, 0, 0, header, tcell.StyleDefault.Reverse(true))

	listTop := 2
	rows := h - listTop - 1
	if rows < 1 {
		rows = 1
	}

	// Keep cursor visible
	if e.cursor < e.scroll {
		e.scroll = e.cursor
	}
	if e.cursor >= e.scroll+rows {
		e.scroll = e.cursor - rows + 1
	}

	for y := 0; y < rows; y++ {
		idx := e.scroll + y
		if idx >= len(e.entries) {
			break
		}
		entry := e.entries[idx]

		style := tcell.StyleDefault
		if idx == e.cursor && !e.editing {
			style = style.Reverse(true)
		}

		check := ' '
		if entry.Enabled {
			check = 'x'
		}

		name := entry.Name
		if e.editing && !e.adding && idx == e.cursor {
			name = string(e.buf) + "▏"
		}

		line := fmt.Sprintf(" [%c] %-24.24s ×%.1f", check, name, entry.Weight)
		drawText(screen, 0, listTop+y, pad(line, w), style)
	}

	if e.editing && e.adding {
		prompt := " new entry: " + string(e.buf) + "▏"
		drawText(screen, 0, h-1, pad(prompt, w), tcell.StyleDefault.Reverse(true))
	} else if len(e.entries) == 0 {
		drawText(screen, 1, listTop, "no entries — press 'a' to add one", tcell.StyleDefault)
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
