/*
This is an example of application that will use the
engine package to test things out
*/
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/lovely/engine"
	"github.com/spaghettifunk/lovely/engine/config"
	"github.com/spaghettifunk/lovely/engine/core"
	"github.com/spaghettifunk/lovely/engine/platform"
	"github.com/spaghettifunk/lovely/engine/renderer"
	"github.com/spaghettifunk/lovely/engine/renderer/metadata"
	"github.com/spaghettifunk/lovely/engine/renderer/opengl"
	"github.com/spaghettifunk/lovely/testbed"
)

func main() {
	configPath := flag.String("config", "lovely.toml", "path of the engine configuration")
	flag.Parse()

	if err := run(*configPath); err != nil {
		core.LogFatal(err.Error())
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if errors.Is(err, os.ErrNotExist) {
		core.LogWarn("%s not found, using the default configuration", configPath)
		cfg, err = config.Default(), nil
	}
	if err != nil {
		return err
	}

	// signal channel to capture system calls
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	tb, err := testbed.NewTestGame(cfg)
	if err != nil {
		return err
	}

	events := core.NewEventSystem()
	input := core.NewInputState(events)
	p := platform.New(input, events)

	var backend renderer.RendererBackend
	switch tb.ApplicationConfig.RendererType {
	case metadata.RENDERER_TYPE_HEADLESS:
		backend = renderer.NewHeadlessBackend()
	default:
		backend = opengl.New(p.SwapBuffers)
	}

	deps := engine.Dependencies{
		Platform: p,
		Backend:  backend,
		Events:   events,
		Input:    input,
	}
	if _, err := os.Stat(configPath); err == nil {
		watcher, err := config.NewWatcher(configPath)
		if err != nil {
			return err
		}
		go func() {
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				core.LogError(err.Error())
			}
		}()
		deps.ConfigUpdates = watcher.Updates()
	}

	e, err := engine.New(tb.Game, deps)
	if err != nil {
		return err
	}
	defer func() {
		if err := e.Shutdown(); err != nil {
			core.LogError(err.Error())
		}
	}()

	if err := e.Initialize(); err != nil {
		return err
	}
	return e.Run(ctx)
}
