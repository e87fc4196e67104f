package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/skirmish/asset"
	"github.com/lixenwraith/skirmish/audio"
	"github.com/lixenwraith/skirmish/constant"
	"github.com/lixenwraith/skirmish/engine"
	"github.com/lixenwraith/skirmish/input"
	"github.com/lixenwraith/skirmish/render"
	"github.com/lixenwraith/skirmish/terminal"
)

// Process exit codes
const (
	exitOK              = 0
	exitBadArgument     = -1
	exitMissingArgument = -2
	exitWindow          = -3
	exitAudio           = -4
	exitResources       = -5
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSKIRMISH CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	level, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errMissingArgument) {
			return exitMissingArgument
		}
		return exitBadArgument
	}

	log, err := newLogger(level, logPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return exitBadArgument
	}
	defer log.Sync()

	textures, err := asset.ParseTextures([]byte(asset.DefaultTextures))
	if err != nil {
		log.Error("load textures", zap.Error(err))
		return exitResources
	}
	manifest, err := asset.ParseManifest([]byte(asset.DefaultPrefabs))
	if err != nil {
		log.Error("load prefabs", zap.Error(err))
		return exitResources
	}

	screen, err := terminal.NewScreen()
	if err != nil {
		log.Error("open terminal", zap.Error(err))
		return exitWindow
	}
	clock := engine.NewTimeProvider()
	window := terminal.New(screen, clock, log)
	if err := window.Init(); err != nil {
		log.Error("init terminal", zap.Error(err))
		return exitWindow
	}
	// Normal exit terminal cleanup
	defer window.Stop()

	device, err := audio.NewDevice(log)
	if err != nil {
		log.Error("init audio", zap.Error(err))
		return exitAudio
	}
	defer device.Close()

	assets := engine.NewAssets(textures, time.Now().UnixNano(), device, log)
	factory := engine.NewFactory(manifest, assets, log)
	g := engine.NewGame(assets, factory, log)
	defer g.Close()

	if err := factory.Preload(); err != nil {
		log.Error("preload prefabs", zap.Error(err))
		return exitResources
	}
	if err := factory.Populate(g.Scene); err != nil {
		log.Error("populate scene", zap.Error(err))
		return exitResources
	}

	keys := input.NewDispatcher(log)
	pointer := input.NewPointer(0, 0)
	g.Keys = keys
	g.Pointer = pointer
	window.Attach(g, keys, pointer)
	window.Start()

	renderer := render.NewRenderer(screen, log)
	loop := engine.NewLoop(g, window, renderer, clock, time.Sleep, constant.DefaultRefreshRate)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("loop", zap.Error(err))
	}
	log.Info("exit", zap.Int("objects", g.Scene.Count()))
	return exitOK
}
