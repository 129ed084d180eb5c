package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mhollis/hearthroom/internal/audio"
	"github.com/mhollis/hearthroom/internal/config"
	"github.com/mhollis/hearthroom/internal/logger"
	"github.com/mhollis/hearthroom/pkg/dialogue"
	"github.com/mhollis/hearthroom/pkg/events"
	"github.com/mhollis/hearthroom/pkg/ledger"
	"github.com/mhollis/hearthroom/pkg/quest"
	"github.com/mhollis/hearthroom/pkg/spirit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI; logs go to a file when debugging.
	logWriter := os.Stderr
	if path := os.Getenv("HEARTH_LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			defer f.Close()
			logWriter = f
		}
	}
	log := logger.Setup(cfg, logWriter)

	var registry *spirit.Registry
	if cfg.RoomFile != "" {
		registry, err = spirit.LoadRoom(cfg.RoomFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load room: %v\n", err)
			os.Exit(1)
		}
	} else {
		registry, err = spirit.NewRegistry(spirit.DefaultRoom())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid built-in room: %v\n", err)
			os.Exit(1)
		}
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}

	sink := audio.NewSink(cfg.Mute, log)
	defer sink.Close()

	led := ledger.New(registry.SlotCount())
	notify := events.Multi(sink)
	engine := quest.NewEngine(registry, led, rng, notify, log)
	controller := dialogue.NewController(registry, engine, led, notify, log)

	p := tea.NewProgram(NewRoomUI(cfg, controller, registry), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
