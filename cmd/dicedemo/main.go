package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"dicedemo/internal/config"
	"dicedemo/internal/sim"
	"dicedemo/internal/telemetry"
	"dicedemo/internal/viewer"
)

func main() {
	// Run next to the binary so the relative config path resolves, except
	// under "go run", which builds into a temp go-build directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	configPath := flag.String("config", config.DefaultPath, "path to the JSON config file")
	telemetryAddr := flag.String("telemetry", "", "serve frame stats over websocket on this address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Config: %v, using defaults", err)
	}
	if *telemetryAddr != "" {
		cfg.TelemetryAddr = *telemetryAddr
	}

	s, err := sim.New(cfg)
	if err != nil {
		log.Fatalf("Simulation: %v", err)
	}
	log.Printf("Simulation: %d dice, %d contact slots", len(s.Dice), cfg.MaxContacts)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.TelemetryAddr != "" {
		hub := telemetry.NewHub()
		s.OnFrame.AddListener(func(fs sim.FrameStats) {
			hub.Publish("frame", fs)
		})
		s.OnReset.AddListener(func() {
			hub.Publish("reset", nil)
		})
		go func() {
			if err := hub.ListenAndServe(ctx, cfg.TelemetryAddr); err != nil {
				log.Printf("Telemetry: %v", err)
			}
		}()
	}

	viewer.New(cfg, s).Run()
}
