package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"spinpick/config"
	"spinpick/engine"
	"spinpick/preset"
	"spinpick/store"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	presetPath := flag.String("preset", "", "apply a JSON preset file and replace the entry list")
	showHistory := flag.Int("history", 0, "print the N most recent spins and exit")
	flag.Parse()

	if err := run(*configPath, *presetPath, *showHistory); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, presetPath string, historyLimit int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.Data.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	if historyLimit > 0 {
		return printHistory(st, historyLimit)
	}

	if presetPath != "" {
		p, err := preset.Load(presetPath)
		if err != nil {
			return err
		}
		if err := st.SaveEntries(p.StoreEntries()); err != nil {
			return fmt.Errorf("apply preset: %w", err)
		}
	}

	entries, err := st.Entries()
	if err != nil {
		return fmt.Errorf("load entries: %w", err)
	}
	if len(entries) == 0 {
		entries = seedEntries()
		if err := st.SaveEntries(entries); err != nil {
			return fmt.Errorf("seed entries: %w", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	clock := engine.NewTimeProvider()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	app := newApp(screen, cfg, st, entries, rng, clock)

	if err := app.player.Init(); err != nil {
		// Non-fatal, the picker runs silently without a speaker
		log.Printf("audio init failed: %v", err)
	}

	scheduler := engine.NewFrameScheduler(clock, cfg.FrameInterval(), app.tick)
	scheduler.Start()
	defer scheduler.Stop()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !app.handleInput(ev) {
			return nil
		}
	}
}

func printHistory(st *store.Store, limit int) error {
	records, err := st.History(limit)
	if err != nil {
		return err
	}
	for _, r := range records {
		fmt.Printf("%s  %-24s  total %s  decel %s\n",
			r.FinishedAt.Local().Format("2006-01-02 15:04:05"), r.Winner, r.Total, r.Decel)
	}
	return nil
}

func seedEntries() []store.Entry {
	names := []string{"Alice", "Bob", "Carol", "Dave", "Erin", "Frank"}
	out := make([]store.Entry, 0, len(names))
	for _, n := range names {
		out = append(out, store.Entry{Name: n, Weight: 1, Enabled: true})
	}
	return out
}
