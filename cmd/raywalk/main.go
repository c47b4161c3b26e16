package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog"

	"github.com/xj9zitto/terminal-game-test/audio"
	"github.com/xj9zitto/terminal-game-test/config"
	"github.com/xj9zitto/terminal-game-test/engine"
	"github.com/xj9zitto/terminal-game-test/input"
	"github.com/xj9zitto/terminal-game-test/render"
	"github.com/xj9zitto/terminal-game-test/terminal"
	"github.com/xj9zitto/terminal-game-test/texture"
	"github.com/xj9zitto/terminal-game-test/world"
)

var (
	configFlag = flag.String("config", "", "Config file path (default: raywalk.toml in the working directory, if present)")
	mapFlag    = flag.String("map", "", "Map file path ('#' walls, '.' floor)")
	mazeFlag   = flag.Bool("maze", false, "Generate a maze instead of loading a map")
	seedFlag   = flag.Int64("seed", 0, "Maze seed (0 picks one from the clock)")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to the log file")
)

func main() {
	// Panic recovery: restore the terminal before the crash report, or
	// the report lands on the alternate screen and vanishes with it
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			fmt.Fprintf(os.Stderr, "\n\x1b[31mRAYWALK CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flags beat config file and env, but only when actually passed
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "map":
			cfg.MapFile = *mapFlag
			cfg.Maze.Enabled = false
		case "maze":
			cfg.Maze.Enabled = *mazeFlag
			if *mazeFlag {
				cfg.MapFile = ""
			}
		case "seed":
			cfg.Maze.Seed = *seedFlag
		case "mute":
			cfg.Mute = *muteFlag
		case "debug":
			cfg.Debug = *debugFlag
		}
	})

	logger := zerolog.Nop()
	if cfg.Debug {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
		logger = zerolog.New(logFile).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	}

	var g *world.Grid
	switch {
	case cfg.MapFile != "":
		g, err = world.Load(cfg.MapFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load map: %v\n", err)
			os.Exit(1)
		}
	case cfg.Maze.Enabled:
		g = world.GenerateMaze(world.MazeConfig{
			Width:    cfg.Maze.Width,
			Height:   cfg.Maze.Height,
			Braiding: cfg.Maze.Braiding,
			Seed:     cfg.Maze.Seed,
		})
	default:
		g = world.Default()
	}

	// Texture files are optional overrides; missing ones fall back to
	// the built-in set, malformed ones are fatal
	textureDir := cfg.TextureDir
	if textureDir == "" {
		textureDir = "."
	}
	bank, err := texture.LoadBank(textureDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load textures: %v\n", err)
		os.Exit(1)
	}

	cues := audio.NewManager()
	if !cfg.Mute {
		if err := cues.Initialize(); err != nil {
			fmt.Printf("Audio initialization failed: %v (continuing without audio)\n", err)
		} else {
			defer cues.Cleanup()
		}
	}

	screen, err := terminal.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	ctx := engine.NewContext(g)
	ctx.Tracker = input.NewTrackerWindow(cfg.HoldWindow)

	loop := engine.NewLoop(screen, render.NewRenderer(bank), ctx, cues, logger)
	if err := loop.Run(); err != nil {
		// Leave the alternate screen first so the error stays visible
		screen.Fini()
		fmt.Fprintf(os.Stderr, "raywalk: %v\n", err)
		os.Exit(1)
	}
}
