package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lixenwraith/wrapbox/audio"
	"github.com/lixenwraith/wrapbox/core"
	"github.com/lixenwraith/wrapbox/engine"
	"github.com/lixenwraith/wrapbox/input"
	"github.com/lixenwraith/wrapbox/level"
	"github.com/lixenwraith/wrapbox/parameter"
	"github.com/lixenwraith/wrapbox/render"
	"github.com/lixenwraith/wrapbox/system"
)

var (
	levelFlag  = flag.String("level", "", "YAML level file (default: built-in level)")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/wrapbox.log")
	tickFlag   = flag.Duration("tick", parameter.TickInterval, "Simulation tick interval")
	muteFlag   = flag.Bool("mute", false, "Disable sound cues")
	scriptFlag = flag.String("script", "", "Run moves headless (LRUD or hjkl, u undo, . wait) and print final positions")
)

func main() {
	// Panic Recovery: restore the terminal and print the origin stack
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logger, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}
	defer logger.Sync()

	lvl, err := loadLevel(*levelFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wrapbox: %v\n", err)
		os.Exit(1)
	}

	if *scriptFlag != "" {
		err = runScript(os.Stdout, lvl, *scriptFlag, logger)
	} else {
		err = runInteractive(lvl, *tickFlag, logger)
	}
	if err != nil {
		logger.Error("exit", zap.Error(err))
		fmt.Fprintf(os.Stderr, "wrapbox: %v\n", err)
		os.Exit(1)
	}
}

func loadLevel(path string) (*level.Level, error) {
	if path == "" {
		return level.Default(), nil
	}
	return level.Load(path)
}

// newGame spawns the level into a fresh world with every system registered
func newGame(lvl *level.Level, logger *zap.Logger) (*engine.Game, []core.Entity) {
	w, entities := lvl.NewWorld(logger)
	system.RegisterAll(w)
	return engine.NewGame(w), entities
}

// runScript steps the simulation once per script input and prints final positions in spawn order
func runScript(out io.Writer, lvl *level.Level, script string, logger *zap.Logger) error {
	inputs, err := input.ParseScript(script)
	if err != nil {
		return err
	}

	game, entities := newGame(lvl, logger)
	for _, in := range inputs {
		game.Step(in)
	}

	w := game.World
	for _, e := range entities {
		kind, _ := w.Components.Kind.GetComponent(e)
		pos, ok := w.Positions.GetPosition(e)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(out, "%d %s %d %d\n", e, kind.Kind, pos.X, pos.Y); err != nil {
			return errors.Wrap(err, "write positions")
		}
	}
	logger.Info("script finished",
		zap.Int("ticks", len(inputs)),
		zap.Int("history", w.Resource.History.Len()),
	)
	return nil
}

func runInteractive(lvl *level.Level, tick time.Duration, logger *zap.Logger) error {
	if tick < parameter.MinTickInterval {
		return errors.Errorf("tick interval %v below %v", tick, parameter.MinTickInterval)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	core.SetCrashTerminal(screen)
	defer func() {
		core.SetCrashTerminal(nil)
		screen.Fini()
	}()
	screen.HideCursor()

	// Audio is optional: a failed speaker leaves the engine muted
	audioCfg := audio.LoadAudioConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	sound := audio.NewEngine(audioCfg, logger)
	if err := sound.Init(); err != nil {
		logger.Warn("continuing without audio", zap.Error(err))
	}
	defer sound.Close()

	game, _ := newGame(lvl, logger)
	w := game.World
	renderer := render.NewRenderer(w.Resource.Grid, lvl.Name)
	keys := input.DefaultKeyTable()
	pending := input.NewBuffer()

	events := make(chan tcell.Event, parameter.InputBufferSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	var last engine.TickReport
	renderer.Frame(screen, w, last)

	for {
		select {
		case ev := <-events:
			intent := keys.Decode(ev)
			switch intent.Type {
			case input.IntentQuit:
				logger.Info("quit", zap.Int64("ticks", game.TickNumber()))
				return nil
			case input.IntentToggleMute:
				sound.SetMuted(!sound.IsMuted())
			case input.IntentResize:
				screen.Sync()
				renderer.Frame(screen, w, last)
			default:
				if intent.Simulation() && !pending.Push(intent) {
					logger.Debug("input dropped", zap.Int("queued", pending.Len()))
				}
			}

		case <-ticker.C:
			last = game.Step(pending.Take())
			sound.PlayAll(audio.CuesFor(last))
			renderer.Frame(screen, w, last)
		}
	}
}
