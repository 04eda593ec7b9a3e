package main

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"spinpick/audio"
	"spinpick/config"
	"spinpick/engine"
	"spinpick/events"
	"spinpick/render"
	"spinpick/store"
	"spinpick/tui"
	"spinpick/wheel"
)

type appMode int

const (
	modeWheel appMode = iota
	modeEditor
)

// App owns all shared state. The frame scheduler ticks on its own
// goroutine while input arrives on the main one, so every entry point
// takes the mutex
type App struct {
	mu sync.Mutex

	screen tcell.Screen
	cfg    config.Config
	st     *store.Store
	clock  engine.Clock

	queue   *events.Queue
	router  *events.Router
	whl     *wheel.Wheel
	spinner *wheel.Spinner
	view    *render.WheelView
	player  *audio.Player
	editor  *tui.Editor

	mode    appMode
	entries []store.Entry

	lastSchedule wheel.Schedule
	lastSegment  int
	stopEnabled  bool
}

func newApp(screen tcell.Screen, cfg config.Config, st *store.Store, entries []store.Entry, rng *rand.Rand, clock engine.Clock) *App {
	queue := events.NewQueue()
	whl := wheel.New()
	spinner := wheel.NewSpinner(whl, cfg.SpinnerConfig(), rng, queue)

	a := &App{
		screen:      screen,
		cfg:         cfg,
		st:          st,
		clock:       clock,
		queue:       queue,
		router:      events.NewRouter(queue),
		whl:         whl,
		spinner:     spinner,
		view:        render.NewWheelView(whl),
		player:      audio.NewPlayer(cfg.Audio.Enabled),
		entries:     entries,
		lastSegment: -1,
	}
	a.router.Register(a)

	spinner.Rebuild(enabledEntries(entries))
	w, h := screen.Size()
	whl.Resize(a.view.WheelArea(w, h))
	a.refreshStatus()
	return a
}

// enabledEntries projects the stored list onto the wheel's snapshot input
func enabledEntries(entries []store.Entry) []wheel.Entry {
	out := make([]wheel.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Enabled {
			out = append(out, wheel.Entry{Name: e.Name, Weight: e.Weight})
		}
	}
	return out
}

// tick runs once per frame on the scheduler goroutine
func (a *App) tick(now time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.mode == modeEditor {
		a.editor.Draw(a.screen)
		return
	}

	a.spinner.Tick(now)
	a.clickOnSegmentCrossing()
	a.router.DispatchAll()
	a.view.Draw(a.screen)
}

// clickOnSegmentCrossing plays a tick when the pointer passes a boundary
func (a *App) clickOnSegmentCrossing() {
	if !a.spinner.Active() {
		return
	}
	idx, ok := a.whl.ResolveIndex(a.whl.Rotation())
	if !ok {
		return
	}
	if a.lastSegment >= 0 && idx != a.lastSegment {
		a.player.Click()
	}
	a.lastSegment = idx
}

// HandleEvent consumes spinner notifications (events.Handler)
func (a *App) HandleEvent(ev events.Event) {
	switch ev.Type {
	case events.EventSpinStateChanged:
		state := ev.Payload.(*events.SpinStatePayload)
		a.stopEnabled = state.StopEnabled
		if state.Running {
			a.view.ClearBanner()
		}
		a.refreshStatus()

	case events.EventWinnerPicked:
		winner := ev.Payload.(*events.WinnerPayload)
		a.view.SetBanner(fmt.Sprintf("★ %s ★", winner.Name))
		a.player.Chime()
		a.refreshStatus()
		if _, err := a.st.RecordSpin(winner.Name, a.lastSchedule.Total, a.lastSchedule.Decel, a.clock.Now()); err != nil {
			// History is best-effort; the winner is already on screen
			a.view.SetStatus("history write failed")
		}

	case events.EventEntriesChanged:
		a.view.ClearBanner()
		a.refreshStatus()
	}
}

// EventTypes declares the routed event interest (events.Handler)
func (a *App) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventSpinStateChanged,
		events.EventWinnerPicked,
		events.EventEntriesChanged,
	}
}

func (a *App) refreshStatus() {
	switch a.spinner.Phase() {
	case wheel.PhaseSpinning:
		a.view.SetStatus("space: stop   q: quit")
	case wheel.PhaseDecelerating:
		a.view.SetStatus("stopping…")
	default:
		a.view.SetStatus("space: spin   e: edit entries   q: quit")
	}
}

// handleInput processes one terminal event on the main goroutine.
// Returns false to exit the input loop
func (a *App) handleInput(ev tcell.Event) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.whl.Resize(a.view.WheelArea(w, h))
		a.screen.Sync()

	case *tcell.EventKey:
		if a.mode == modeEditor {
			return a.handleEditorKey(ev)
		}
		return a.handleWheelKey(ev)
	}
	return true
}

func (a *App) handleWheelKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			now := a.clock.Now()
			if a.spinner.Active() {
				a.spinner.RequestDecel(now, a.cfg.DecelDuration())
			} else if sched, ok := a.spinner.Start(now, a.cfg.TotalDuration(), a.cfg.DecelDuration()); ok {
				a.lastSchedule = sched
				a.lastSegment = -1
			}
		case 'e':
			if !a.spinner.Active() {
				a.editor = tui.NewEditor(a.entries)
				a.mode = modeEditor
			}
		}
	}
	return true
}

func (a *App) handleEditorKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if a.editor.HandleKey(ev) {
		return true
	}

	// Editor closed: persist the list (last write wins) and rebuild
	a.mode = modeWheel
	if a.editor.Dirty() {
		a.entries = a.editor.Entries()
		if err := a.st.SaveEntries(a.entries); err != nil {
			a.view.SetStatus("save failed")
		}
		a.spinner.Rebuild(enabledEntries(a.entries))
		a.queue.Push(events.Event{
			Type:      events.EventEntriesChanged,
			Payload:   &events.EntriesChangedPayload{Count: len(a.entries)},
			Timestamp: a.clock.Now(),
		})
		w, h := a.screen.Size()
		a.whl.Resize(a.view.WheelArea(w, h))
		a.editor = nil
		// Banner and status catch up through the routed event on the next tick
		return true
	}
	a.editor = nil
	a.view.ClearBanner()
	a.refreshStatus()
	return true
}
