package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/spaghettifunk/lovely/engine/config"
	"github.com/spaghettifunk/lovely/engine/core"
	"github.com/spaghettifunk/lovely/engine/renderer"
	"github.com/spaghettifunk/lovely/engine/renderer/metadata"
)

// fakePlatform runs for maxFrames pumps, calling onPump before each.
type fakePlatform struct {
	started   bool
	shutdown  bool
	pumps     int
	maxFrames int
	time      float64
	onPump    func(frame int)
}

func (p *fakePlatform) Startup(name string, x, y, width, height uint32) error {
	p.started = true
	return nil
}

func (p *fakePlatform) PumpMessages() bool {
	p.pumps++
	if p.onPump != nil {
		p.onPump(p.pumps)
	}
	return p.pumps <= p.maxFrames
}

func (p *fakePlatform) GetAbsoluteTime() float64 {
	p.time += 0.001
	return p.time
}

func (p *fakePlatform) SetCursorCaptured(bool) {}

func (p *fakePlatform) Shutdown() error {
	p.shutdown = true
	return nil
}

type testGame struct {
	game    *Game
	updates int
	renders int
	resizes [][2]uint32
}

func newTestGame(t *testing.T) *testGame {
	t.Helper()
	cfg := config.Default()
	cfg.Renderer.Backend = "headless"
	cfg.Renderer.FrameLimit = 0
	cfg.Assets.Path = t.TempDir()
	cfg.Assets.JobWorkers = 1
	appConfig, err := NewApplicationConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}

	tg := &testGame{}
	tg.game = &Game{
		ApplicationConfig: appConfig,
		FnInitialize:      func() error { return nil },
		FnUpdate: func(deltaTime float32) error {
			tg.updates++
			return nil
		},
		FnRender: func(packet *metadata.RenderPacket, deltaTime float32) error {
			tg.renders++
			return nil
		},
		FnOnResize: func(width, height uint32) error {
			tg.resizes = append(tg.resizes, [2]uint32{width, height})
			return nil
		},
	}
	return tg
}

func newTestEngine(t *testing.T, tg *testGame, p *fakePlatform, updates <-chan *config.Config) (*Engine, *renderer.HeadlessBackend) {
	t.Helper()
	backend := renderer.NewHeadlessBackend()
	e, err := New(tg.game, Dependencies{Platform: p, Backend: backend, ConfigUpdates: updates})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { e.Shutdown() })
	if err := e.Initialize(); err != nil {
		t.Fatal(err)
	}
	return e, backend
}

func TestNewApplicationConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Renderer.Backend = "headless"
	have, err := NewApplicationConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if have.RendererType != metadata.RENDERER_TYPE_HEADLESS || have.StartWidth != 800 || have.Systems.AssetBasePath != "assets" {
		t.Fatalf("have %+v", have)
	}

	cfg.Window.Width = 0
	if _, err := NewApplicationConfig(cfg); !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("have %v\nwant %v", err, config.ErrInvalidConfig)
	}
}

func TestNewRequiresDependencies(t *testing.T) {
	tg := newTestGame(t)
	if _, err := New(tg.game, Dependencies{}); err == nil {
		t.Fatal("expected an error without platform and backend")
	}
}

func TestRunFrames(t *testing.T) {
	tg := newTestGame(t)
	p := &fakePlatform{maxFrames: 3}
	e, backend := newTestEngine(t, tg, p, nil)

	if !p.started {
		t.Fatal("platform was not started")
	}
	if len(tg.resizes) != 1 || tg.resizes[0] != [2]uint32{800, 600} {
		t.Fatalf("initial resize\nhave %v", tg.resizes)
	}
	if err := e.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if tg.updates != 3 || tg.renders != 3 || backend.Frames != 3 {
		t.Fatalf("have %d updates, %d renders, %d frames\nwant 3 each", tg.updates, tg.renders, backend.Frames)
	}
	if backend.ClearColour != [3]float32{0.2, 0.3, 0.3} {
		t.Fatalf("have %v", backend.ClearColour)
	}

	if err := e.Shutdown(); err != nil {
		t.Fatal(err)
	}
	if !p.shutdown || e.Stage() != EngineStageShutdown {
		t.Fatal("engine did not shut down")
	}
	if err := e.Run(context.Background()); !errors.Is(err, ErrEngineStage) {
		t.Fatalf("have %v\nwant %v", err, ErrEngineStage)
	}
}

func TestEscapeQuits(t *testing.T) {
	tg := newTestGame(t)
	p := &fakePlatform{maxFrames: 100}
	e, _ := newTestEngine(t, tg, p, nil)
	tg.game.FnUpdate = func(deltaTime float32) error {
		tg.updates++
		if tg.updates == 2 {
			tg.game.Input.ProcessKey(core.KEY_ESCAPE, true)
		}
		return nil
	}
	if err := e.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if tg.updates != 2 {
		t.Fatalf("have %d updates\nwant 2", tg.updates)
	}
}

func TestUpdateErrorStops(t *testing.T) {
	tg := newTestGame(t)
	e, _ := newTestEngine(t, tg, &fakePlatform{maxFrames: 10}, nil)
	boom := errors.New("boom")
	tg.game.FnUpdate = func(float32) error { return boom }
	if err := e.Run(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("have %v\nwant %v", err, boom)
	}
}

func TestContextCancelStops(t *testing.T) {
	tg := newTestGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	p := &fakePlatform{maxFrames: 100}
	e, _ := newTestEngine(t, tg, p, nil)
	p.onPump = func(frame int) {
		if frame == 4 {
			cancel()
		}
	}
	if err := e.Run(ctx); err != nil {
		t.Fatal(err)
	}
	if tg.updates != 4 {
		t.Fatalf("have %d updates\nwant 4", tg.updates)
	}
}

func TestResizeAndSuspend(t *testing.T) {
	tg := newTestGame(t)
	p := &fakePlatform{maxFrames: 4}
	e, backend := newTestEngine(t, tg, p, nil)

	resize := func(w, h uint32) {
		tg.game.Events.Fire(core.EventContext{
			Type: core.EVENT_CODE_RESIZED,
			Data: &core.SystemEvent{WindowWidth: w, WindowHeight: h},
		})
	}
	p.onPump = func(frame int) {
		switch frame {
		case 2:
			resize(0, 0)
		case 3:
			resize(1024, 768)
		}
	}
	if err := e.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	// frame 2 is skipped while minimized
	if tg.updates != 3 {
		t.Fatalf("have %d updates\nwant 3", tg.updates)
	}
	if w, h := e.GetFramebufferSize(); w != 1024 || h != 768 {
		t.Fatalf("have %dx%d\nwant 1024x768", w, h)
	}
	if backend.Width != 1024 || backend.Height != 768 {
		t.Fatalf("backend\nhave %dx%d", backend.Width, backend.Height)
	}
	if last := tg.resizes[len(tg.resizes)-1]; last != [2]uint32{1024, 768} {
		t.Fatalf("have %v", last)
	}
}

func TestConfigReload(t *testing.T) {
	tg := newTestGame(t)
	updates := make(chan *config.Config, 1)
	p := &fakePlatform{maxFrames: 2}
	e, backend := newTestEngine(t, tg, p, updates)

	var reloaded *config.Config
	tg.game.Events.Register(core.EVENT_CODE_CONFIG_RELOADED, t, func(ctx core.EventContext) bool {
		reloaded = ctx.Data.(*config.Config)
		return true
	})

	cfg := config.Default()
	cfg.Renderer.ClearColour = [3]float32{1, 0, 0}
	updates <- cfg
	if err := e.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if reloaded != cfg {
		t.Fatal("CONFIG_RELOADED was not fired with the new config")
	}
	if backend.ClearColour != [3]float32{1, 0, 0} {
		t.Fatalf("have %v", backend.ClearColour)
	}
}
