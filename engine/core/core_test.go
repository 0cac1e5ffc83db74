package core

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/spaghettifunk/lovely/engine/math"
)

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"INFO", LogLevelInfo},
		{" warn ", LogLevelWarn},
		{"error", LogLevelError},
		{"fatal", LogLevelFatal},
	}
	for _, c := range cases {
		have, err := ParseLogLevel(c.in)
		if err != nil {
			t.Fatalf("ParseLogLevel(%q): %v", c.in, err)
		}
		if have != c.want {
			t.Fatalf("ParseLogLevel(%q)\nhave %v\nwant %v", c.in, have, c.want)
		}
	}
	if _, err := ParseLogLevel("loud"); !errors.Is(err, ErrInvalidLogLevel) {
		t.Fatalf("ParseLogLevel(\"loud\")\nhave %v\nwant %v", err, ErrInvalidLogLevel)
	}
}

func TestLogLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(os.Stderr)
	defer SetLogLevel(LogLevelDebug)

	SetLogLevel(LogLevelWarn)
	LogInfo("hidden %d", 1)
	LogWarn("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden 1") {
		t.Fatalf("info message written at warn level:\n%s", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Fatalf("warn message missing:\n%s", out)
	}
}

type fakeTime struct{ t time.Time }

func (f *fakeTime) now() time.Time { return f.t }

func TestClock(t *testing.T) {
	ft := &fakeTime{t: time.Unix(100, 0)}
	c := NewClockWithSource(ft.now)

	c.Update()
	if c.Elapsed() != 0 || c.Delta() != 0 {
		t.Fatal("Clock.Update on a clock that was never started changed it")
	}

	c.Start()
	ft.t = ft.t.Add(250 * time.Millisecond)
	c.Update()
	if c.Elapsed() != 0.25 || c.Delta() != 0.25 {
		t.Fatalf("Clock after 250ms\nhave elapsed %v delta %v\nwant 0.25 0.25", c.Elapsed(), c.Delta())
	}

	ft.t = ft.t.Add(500 * time.Millisecond)
	c.Update()
	if c.Elapsed() != 0.75 || c.Delta() != 0.5 {
		t.Fatalf("Clock after another 500ms\nhave elapsed %v delta %v\nwant 0.75 0.5", c.Elapsed(), c.Delta())
	}

	c.Stop()
	ft.t = ft.t.Add(time.Second)
	c.Update()
	if c.Elapsed() != 0.75 {
		t.Fatalf("Clock.Stop reset or advanced the elapsed time\nhave %v\nwant 0.75", c.Elapsed())
	}
}

func TestEventSystem(t *testing.T) {
	es := NewEventSystem()
	var order []string

	first, second := "first", "second"
	es.Register(EVENT_CODE_KEY_PRESSED, first, func(ctx EventContext) bool {
		order = append(order, first)
		return false
	})
	es.Register(EVENT_CODE_KEY_PRESSED, second, func(ctx EventContext) bool {
		order = append(order, second)
		return ctx.Data.(*KeyEvent).KeyCode == KEY_ESCAPE
	})
	if es.Register(EVENT_CODE_KEY_PRESSED, first, func(EventContext) bool { return true }) {
		t.Fatal("EventSystem.Register accepted a duplicate listener")
	}

	if es.Fire(EventContext{Type: EVENT_CODE_KEY_PRESSED, Data: &KeyEvent{KeyCode: KEY_A}}) {
		t.Fatal("EventSystem.Fire reported an unhandled event as handled")
	}
	if !es.Fire(EventContext{Type: EVENT_CODE_KEY_PRESSED, Data: &KeyEvent{KeyCode: KEY_ESCAPE}}) {
		t.Fatal("EventSystem.Fire did not report the handled event")
	}
	if strings.Join(order, ",") != "first,second,first,second" {
		t.Fatalf("listener call order\nhave %v\nwant [first second first second]", order)
	}

	if !es.Unregister(EVENT_CODE_KEY_PRESSED, first) {
		t.Fatal("EventSystem.Unregister did not find a registered listener")
	}
	if es.Unregister(EVENT_CODE_KEY_PRESSED, first) {
		t.Fatal("EventSystem.Unregister removed a listener twice")
	}
	order = nil
	es.Fire(EventContext{Type: EVENT_CODE_KEY_PRESSED, Data: &KeyEvent{KeyCode: KEY_A}})
	if len(order) != 1 || order[0] != second {
		t.Fatalf("listeners after Unregister\nhave %v\nwant [second]", order)
	}

	if es.Fire(EventContext{Type: EVENT_CODE_RESIZED}) {
		t.Fatal("EventSystem.Fire with no listeners reported handled")
	}
	if err := es.Shutdown(); err != nil {
		t.Fatal(err)
	}
	order = nil
	es.Fire(EventContext{Type: EVENT_CODE_KEY_PRESSED, Data: &KeyEvent{KeyCode: KEY_A}})
	if len(order) != 0 {
		t.Fatal("listeners still called after Shutdown")
	}
}

func TestInputKeys(t *testing.T) {
	es := NewEventSystem()
	var pressed, released []KeyCode
	es.Register(EVENT_CODE_KEY_PRESSED, "test", func(ctx EventContext) bool {
		pressed = append(pressed, ctx.Data.(*KeyEvent).KeyCode)
		return true
	})
	es.Register(EVENT_CODE_KEY_RELEASED, "test", func(ctx EventContext) bool {
		released = append(released, ctx.Data.(*KeyEvent).KeyCode)
		return true
	})

	in := NewInputState(es)
	in.ProcessKey(KEY_W, true)
	in.ProcessKey(KEY_W, true)
	if !in.IsKeyDown(KEY_W) || !in.WasKeyUp(KEY_W) || !in.IsKeyPressed(KEY_W) {
		t.Fatal("InputState: W not reported as newly pressed")
	}
	if len(pressed) != 1 || pressed[0] != KEY_W {
		t.Fatalf("key pressed events\nhave %v\nwant [%d]", pressed, KEY_W)
	}

	in.Update()
	if !in.WasKeyDown(KEY_W) || in.IsKeyPressed(KEY_W) {
		t.Fatal("InputState.Update did not move W into the previous state")
	}

	in.ProcessKey(KEY_W, false)
	if !in.IsKeyUp(KEY_W) || len(released) != 1 {
		t.Fatal("InputState: W release not recorded")
	}

	in.ProcessKey(KEYS_MAX_KEYS+5, true)
}

func TestInputButtons(t *testing.T) {
	in := NewInputState(nil)
	in.ProcessButton(BUTTON_RIGHT, true)
	if !in.IsButtonDown(BUTTON_RIGHT) || !in.WasButtonUp(BUTTON_RIGHT) {
		t.Fatal("InputState: right button press not recorded")
	}
	in.Update()
	in.ProcessButton(BUTTON_RIGHT, false)
	if !in.IsButtonUp(BUTTON_RIGHT) || !in.WasButtonDown(BUTTON_RIGHT) {
		t.Fatal("InputState: right button release not recorded")
	}
}

func TestCursorOffset(t *testing.T) {
	es := NewEventSystem()
	moves := 0
	es.Register(EVENT_CODE_MOUSE_MOVED, "test", func(EventContext) bool {
		moves++
		return true
	})
	in := NewInputState(es)

	if have := in.CursorOffset(); have != (math.Vec2f{}) {
		t.Fatalf("CursorOffset before any sample\nhave %v\nwant [0 0]", have)
	}

	in.ProcessMouseMove(400, 300)
	if have := in.CursorOffset(); have != (math.Vec2f{}) {
		t.Fatalf("CursorOffset after the first sample\nhave %v\nwant [0 0]", have)
	}

	in.Update()
	in.ProcessMouseMove(410, 290)
	in.ProcessMouseMove(415, 280)
	if have := in.CursorOffset(); have != (math.Vec2f{15, 20}) {
		t.Fatalf("CursorOffset with y flipped\nhave %v\nwant [15 20]", have)
	}
	if x, y := in.GetMousePosition(); x != 415 || y != 280 {
		t.Fatalf("GetMousePosition\nhave %v, %v\nwant 415, 280", x, y)
	}
	if x, y := in.GetPreviousMousePosition(); x != 400 || y != 300 {
		t.Fatalf("GetPreviousMousePosition\nhave %v, %v\nwant 400, 300", x, y)
	}

	in.Update()
	if have := in.CursorOffset(); have != (math.Vec2f{}) {
		t.Fatalf("CursorOffset after Update without movement\nhave %v\nwant [0 0]", have)
	}
	in.ProcessMouseMove(415, 280)
	if moves != 3 {
		t.Fatalf("mouse moved events\nhave %d\nwant 3", moves)
	}
}

func TestMetrics(t *testing.T) {
	ms := NewMetrics()
	for i := 0; i < AVG_COUNT; i++ {
		ms.Update(0.010)
	}
	if ft := ms.FrameTime(); ft < 9.999 || ft > 10.001 {
		t.Fatalf("Metrics.FrameTime\nhave %v\nwant 10", ft)
	}
	for i := 0; i < AVG_COUNT; i++ {
		ms.Update(0.020)
	}
	if ft := ms.FrameTime(); ft < 19.999 || ft > 20.001 {
		t.Fatalf("Metrics.FrameTime after the window rolled\nhave %v\nwant 20", ft)
	}

	ms = NewMetrics()
	// 1/64 s frames: 64 of them fill exactly one second
	for i := 0; i < 64; i++ {
		ms.Update(0.015625)
	}
	if ms.FPS() != 0 {
		t.Fatalf("Metrics.FPS before a full second\nhave %v\nwant 0", ms.FPS())
	}
	ms.Update(0.015625)
	if fps, _ := ms.Frame(); fps != 64 {
		t.Fatalf("Metrics.FPS\nhave %v\nwant 64", fps)
	}
}
