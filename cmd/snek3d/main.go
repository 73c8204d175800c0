package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snek3d/config"
	"github.com/lixenwraith/snek3d/core"
	"github.com/lixenwraith/snek3d/engine"
	"github.com/lixenwraith/snek3d/render"
	"github.com/lixenwraith/snek3d/service"
	"github.com/lixenwraith/snek3d/system"
	"github.com/lixenwraith/snek3d/terminal"
)

var (
	configFlag = flag.String("config", config.DefaultPath, "Path to TOML configuration")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 uses the configured seed or entropy")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/snek3d.log")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}

	if f := setupLogging(cfg.Debug); f != nil {
		defer f.Close()
	}

	bindings, err := terminal.NewBindings(cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, bindings); err != nil {
		fmt.Fprintf(os.Stderr, "snek3d: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, bindings terminal.Bindings) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	core.SetCrashTerminal(screen)

	// Main goroutine panics go through the same restore path as engine goroutines
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	catalog := render.NewCatalog()
	keyboard := terminal.NewKeyboardSource(bindings)

	world := engine.NewWorld()
	res := world.Resources
	res.Config = cfg.Resource()
	res.Rng = service.NewRng(cfg.Seed)
	res.Visuals = catalog
	res.Input.Source = keyboard

	game := engine.NewGame(world)
	system.Register(game)

	painter := render.NewPainter(screen, catalog)

	core.Go(func() { keyboard.Poll(screen) })

	scheduler := engine.NewClockScheduler(res.Fixed, game.FixedStep)
	scheduler.Start()
	defer scheduler.Stop()

	log.Printf("snek3d started: side=%d hz=[%.0f,%.0f] walls=%t seed=%d",
		cfg.PlaySide, cfg.MinHz, cfg.MaxHz, cfg.Walls, cfg.Seed)

	interval := cfg.FrameInterval.Duration
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for range ticker.C {
		now := time.Now()
		game.Frame(now.Sub(last))
		last = now

		if game.ExitRequested() || keyboard.Interrupted() {
			break
		}
		painter.Draw(render.TakeSnapshot(world))
	}

	log.Printf("snek3d stopped after %d fixed ticks", scheduler.TickCount())
	return nil
}
