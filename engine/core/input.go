package core

import "github.com/spaghettifunk/lovely/engine/math"

type Button uint16

const (
	BUTTON_LEFT Button = iota
	BUTTON_RIGHT
	BUTTON_MIDDLE
	BUTTON_MAX_BUTTONS
)

// Key code definitions
type KeyCode uint16

const (
	KEY_BACKSPACE KeyCode = 0x08
	KEY_TAB       KeyCode = 0x09
	KEY_ENTER     KeyCode = 0x0D
	KEY_SHIFT     KeyCode = 0x10
	KEY_CONTROL   KeyCode = 0x11
	KEY_PAUSE     KeyCode = 0x13
	KEY_CAPITAL   KeyCode = 0x14
	KEY_ESCAPE    KeyCode = 0x1B
	KEY_SPACE     KeyCode = 0x20
	KEY_PRIOR     KeyCode = 0x21
	KEY_NEXT      KeyCode = 0x22
	KEY_END       KeyCode = 0x23
	KEY_HOME      KeyCode = 0x24
	KEY_LEFT      KeyCode = 0x25
	KEY_UP        KeyCode = 0x26
	KEY_RIGHT     KeyCode = 0x27
	KEY_DOWN      KeyCode = 0x28
	KEY_INSERT    KeyCode = 0x2D
	KEY_DELETE    KeyCode = 0x2E
	KEY_0         KeyCode = 0x30
	KEY_1         KeyCode = 0x31
	KEY_2         KeyCode = 0x32
	KEY_3         KeyCode = 0x33
	KEY_4         KeyCode = 0x34
	KEY_5         KeyCode = 0x35
	KEY_6         KeyCode = 0x36
	KEY_7         KeyCode = 0x37
	KEY_8         KeyCode = 0x38
	KEY_9         KeyCode = 0x39
	KEY_A         KeyCode = 0x41
	KEY_B         KeyCode = 0x42
	KEY_C         KeyCode = 0x43
	KEY_D         KeyCode = 0x44
	KEY_E         KeyCode = 0x45
	KEY_F         KeyCode = 0x46
	KEY_G         KeyCode = 0x47
	KEY_H         KeyCode = 0x48
	KEY_I         KeyCode = 0x49
	KEY_J         KeyCode = 0x4A
	KEY_K         KeyCode = 0x4B
	KEY_L         KeyCode = 0x4C
	KEY_M         KeyCode = 0x4D
	KEY_N         KeyCode = 0x4E
	KEY_O         KeyCode = 0x4F
	KEY_P         KeyCode = 0x50
	KEY_Q         KeyCode = 0x51
	KEY_R         KeyCode = 0x52
	KEY_S         KeyCode = 0x53
	KEY_T         KeyCode = 0x54
	KEY_U         KeyCode = 0x55
	KEY_V         KeyCode = 0x56
	KEY_W         KeyCode = 0x57
	KEY_X         KeyCode = 0x58
	KEY_Y         KeyCode = 0x59
	KEY_Z         KeyCode = 0x5A
	KEY_F1        KeyCode = 0x70
	KEY_F2        KeyCode = 0x71
	KEY_F3        KeyCode = 0x72
	KEY_F4        KeyCode = 0x73
	KEY_F5        KeyCode = 0x74
	KEY_F6        KeyCode = 0x75
	KEY_F7        KeyCode = 0x76
	KEY_F8        KeyCode = 0x77
	KEY_F9        KeyCode = 0x78
	KEY_F10       KeyCode = 0x79
	KEY_F11       KeyCode = 0x7A
	KEY_F12       KeyCode = 0x7B
	KEY_LSHIFT    KeyCode = 0xA0
	KEY_RSHIFT    KeyCode = 0xA1
	KEY_LCONTROL  KeyCode = 0xA2
	KEY_RCONTROL  KeyCode = 0xA3
	KEYS_MAX_KEYS KeyCode = 0x100
)

// Mouse state structure
type MouseState struct {
	X       float64
	Y       float64
	Buttons [BUTTON_MAX_BUTTONS]bool // button states (pressed/released)
}

// Keyboard state structure
type KeyboardState struct {
	Keys [KEYS_MAX_KEYS]bool
}

// InputState holds current and previous states for keyboard and mouse. The
// previous state is the snapshot taken by the last Update, so "was" queries
// and the cursor offset are relative to the previous frame.
type InputState struct {
	KeyboardCurrent  KeyboardState
	KeyboardPrevious KeyboardState
	MouseCurrent     MouseState
	MousePrevious    MouseState

	events    *EventSystem
	hasCursor bool
}

// NewInputState returns an empty input state. Changes are fired on events
// when it is not nil.
func NewInputState(events *EventSystem) *InputState {
	return &InputState{events: events}
}

func (is *InputState) fire(code EventCode, data interface{}) {
	if is.events == nil {
		return
	}
	// Fire off an event for immediate processing.
	is.events.Fire(EventContext{Type: code, Data: data})
}

// Update copies current states to previous states. Call once per frame after
// everything that reads input for that frame.
func (is *InputState) Update() {
	is.KeyboardPrevious = is.KeyboardCurrent
	is.MousePrevious = is.MouseCurrent
}

// keyboard input
func (is *InputState) IsKeyDown(key KeyCode) bool {
	return is.KeyboardCurrent.Keys[key]
}

func (is *InputState) IsKeyUp(key KeyCode) bool {
	return !is.KeyboardCurrent.Keys[key]
}

func (is *InputState) WasKeyDown(key KeyCode) bool {
	return is.KeyboardPrevious.Keys[key]
}

func (is *InputState) WasKeyUp(key KeyCode) bool {
	return !is.KeyboardPrevious.Keys[key]
}

// IsKeyPressed reports whether key went down since the last Update.
func (is *InputState) IsKeyPressed(key KeyCode) bool {
	return is.IsKeyDown(key) && is.WasKeyUp(key)
}

func (is *InputState) ProcessKey(key KeyCode, pressed bool) {
	if key >= KEYS_MAX_KEYS {
		return
	}
	// Only handle this if the state actually changed.
	if is.KeyboardCurrent.Keys[key] == pressed {
		return
	}
	is.KeyboardCurrent.Keys[key] = pressed

	code := EVENT_CODE_KEY_RELEASED
	if pressed {
		code = EVENT_CODE_KEY_PRESSED
	}
	is.fire(code, &KeyEvent{KeyCode: key})
}

// mouse input
func (is *InputState) IsButtonDown(button Button) bool {
	return is.MouseCurrent.Buttons[button]
}

func (is *InputState) IsButtonUp(button Button) bool {
	return !is.MouseCurrent.Buttons[button]
}

func (is *InputState) WasButtonDown(button Button) bool {
	return is.MousePrevious.Buttons[button]
}

func (is *InputState) WasButtonUp(button Button) bool {
	return !is.MousePrevious.Buttons[button]
}

func (is *InputState) GetMousePosition() (float64, float64) {
	return is.MouseCurrent.X, is.MouseCurrent.Y
}

func (is *InputState) GetPreviousMousePosition() (float64, float64) {
	return is.MousePrevious.X, is.MousePrevious.Y
}

func (is *InputState) ProcessButton(button Button, pressed bool) {
	if button >= BUTTON_MAX_BUTTONS {
		return
	}
	// If the state changed, fire an event.
	if is.MouseCurrent.Buttons[button] == pressed {
		return
	}
	is.MouseCurrent.Buttons[button] = pressed

	code := EVENT_CODE_BUTTON_RELEASED
	if pressed {
		code = EVENT_CODE_BUTTON_PRESSED
	}
	is.fire(code, &MouseEvent{Button: button})
}

// ProcessMouseMove records the cursor position in screen coordinates. The
// first sample also becomes the previous position so it never produces a
// jump in CursorOffset.
func (is *InputState) ProcessMouseMove(x, y float64) {
	if !is.hasCursor {
		is.hasCursor = true
		is.MousePrevious.X, is.MousePrevious.Y = x, y
	}
	// Only process if actually different
	if is.MouseCurrent.X == x && is.MouseCurrent.Y == y {
		return
	}
	is.MouseCurrent.X = x
	is.MouseCurrent.Y = y
	is.fire(EVENT_CODE_MOUSE_MOVED, &MouseEvent{PosX: x, PosY: y})
}

func (is *InputState) ProcessMouseWheel(zDelta int8) {
	is.fire(EVENT_CODE_MOUSE_WHEEL, &MouseEvent{Scroll: zDelta})
}

// CursorOffset returns how far the cursor moved since the last Update. Screen
// y grows downwards, so the y offset is flipped to make moving up positive.
func (is *InputState) CursorOffset() math.Vec2f {
	if !is.hasCursor {
		return math.Vec2f{}
	}
	return math.NewVec2(
		float32(is.MouseCurrent.X-is.MousePrevious.X),
		float32(is.MousePrevious.Y-is.MouseCurrent.Y),
	)
}
