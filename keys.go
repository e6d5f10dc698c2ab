package imwin

import "fmt"

// Key represents a keyboard key as the engine names it.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyLeftCtrl
	KeyLeftShift
	KeyLeftAlt
	KeyLeftSuper
	KeyRightCtrl
	KeyRightShift
	KeyRightAlt
	KeyRightSuper
	KeyMenu
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyApostrophe
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	KeySemicolon
	KeyEqual
	KeyLeftBracket
	KeyBackslash
	KeyRightBracket
	KeyGraveAccent
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause
	KeyKeypad0
	KeyKeypad1
	KeyKeypad2
	KeyKeypad3
	KeyKeypad4
	KeyKeypad5
	KeyKeypad6
	KeyKeypad7
	KeyKeypad8
	KeyKeypad9
	KeyKeypadDecimal
	KeyKeypadDivide
	KeyKeypadMultiply
	KeyKeypadSubtract
	KeyKeypadAdd
	KeyKeypadEnter
	KeyKeypadEqual

	// Modifier pseudo-keys. The engine tracks modifier state separately
	// from the physical left/right keys.
	KeyModCtrl
	KeyModShift
	KeyModAlt
	KeyModSuper

	KeyCount
)

var keyNames = map[Key]string{
	KeyNone:           "--",
	KeyTab:            "Tab",
	KeyLeft:           "Left",
	KeyRight:          "Right",
	KeyUp:             "Up",
	KeyDown:           "Down",
	KeyPageUp:         "PgUp",
	KeyPageDown:       "PgDn",
	KeyHome:           "Home",
	KeyEnd:            "End",
	KeyInsert:         "Ins",
	KeyDelete:         "Del",
	KeyBackspace:      "Backspace",
	KeySpace:          "Space",
	KeyEnter:          "Enter",
	KeyEscape:         "Esc",
	KeyLeftCtrl:       "LCtrl",
	KeyLeftShift:      "LShift",
	KeyLeftAlt:        "LAlt",
	KeyLeftSuper:      "LSuper",
	KeyRightCtrl:      "RCtrl",
	KeyRightShift:     "RShift",
	KeyRightAlt:       "RAlt",
	KeyRightSuper:     "RSuper",
	KeyMenu:           "Menu",
	KeyApostrophe:     "'",
	KeyComma:          ",",
	KeyMinus:          "-",
	KeyPeriod:         ".",
	KeySlash:          "/",
	KeySemicolon:      ";",
	KeyEqual:          "=",
	KeyLeftBracket:    "[",
	KeyBackslash:      "\\",
	KeyRightBracket:   "]",
	KeyGraveAccent:    "`",
	KeyCapsLock:       "CapsLock",
	KeyScrollLock:     "ScrollLock",
	KeyNumLock:        "NumLock",
	KeyPrintScreen:    "PrtSc",
	KeyPause:          "Pause",
	KeyKeypadDecimal:  "Kp.",
	KeyKeypadDivide:   "Kp/",
	KeyKeypadMultiply: "Kp*",
	KeyKeypadSubtract: "Kp-",
	KeyKeypadAdd:      "Kp+",
	KeyKeypadEnter:    "KpEnter",
	KeyKeypadEqual:    "Kp=",
	KeyModCtrl:        "Ctrl",
	KeyModShift:       "Shift",
	KeyModAlt:         "Alt",
	KeyModSuper:       "Super",
}

// String returns a human-readable name for a key.
func (k Key) String() string {
	switch {
	case k >= Key0 && k <= Key9:
		return string(rune('0' + k - Key0))
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + k - KeyA))
	case k >= KeyF1 && k <= KeyF12:
		return fmt.Sprintf("F%d", k-KeyF1+1)
	case k >= KeyKeypad0 && k <= KeyKeypad9:
		return fmt.Sprintf("Kp%d", k-KeyKeypad0)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "?"
}

// Modifier returns the modifier pseudo-key a physical left/right modifier
// key drives, or KeyNone.
func (k Key) Modifier() Key {
	switch k {
	case KeyLeftCtrl, KeyRightCtrl:
		return KeyModCtrl
	case KeyLeftShift, KeyRightShift:
		return KeyModShift
	case KeyLeftAlt, KeyRightAlt:
		return KeyModAlt
	case KeyLeftSuper, KeyRightSuper:
		return KeyModSuper
	default:
		return KeyNone
	}
}

// Modifiers is the set of held modifier keys.
type Modifiers uint8

const (
	ModifierCtrl Modifiers = 1 << iota
	ModifierShift
	ModifierAlt
	ModifierSuper
)

func (m Modifiers) Ctrl() bool  { return m&ModifierCtrl != 0 }
func (m Modifiers) Shift() bool { return m&ModifierShift != 0 }
func (m Modifiers) Alt() bool   { return m&ModifierAlt != 0 }
func (m Modifiers) Super() bool { return m&ModifierSuper != 0 }

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonX1
	MouseButtonX2
	MouseButtonCount
)

// Valid reports whether the engine tracks the button.
func (b MouseButton) Valid() bool {
	return b >= 0 && b < MouseButtonCount
}

// MouseCursor is the cursor shape the engine asks for.
type MouseCursor int

const (
	MouseCursorNone MouseCursor = iota - 1
	MouseCursorArrow
	MouseCursorTextInput
	MouseCursorResizeAll
	MouseCursorResizeNS
	MouseCursorResizeEW
	MouseCursorResizeNESW
	MouseCursorResizeNWSE
	MouseCursorHand
	MouseCursorNotAllowed
	MouseCursorCount
)

var cursorNames = [...]string{
	"Arrow", "TextInput", "ResizeAll", "ResizeNS", "ResizeEW",
	"ResizeNESW", "ResizeNWSE", "Hand", "NotAllowed",
}

func (c MouseCursor) String() string {
	if c == MouseCursorNone {
		return "None"
	}
	if c >= 0 && c < MouseCursorCount {
		return cursorNames[c]
	}
	return fmt.Sprintf("MouseCursor(%d)", int(c))
}

// ConfigFlags mirror the engine's IO configuration bits this package reads.
type ConfigFlags uint32

const (
	ConfigFlagsNavEnableKeyboard ConfigFlags = 1 << 0
	ConfigFlagsNavEnableGamepad  ConfigFlags = 1 << 1
	ConfigFlagsNoMouse           ConfigFlags = 1 << 4
	// ConfigFlagsNoMouseCursorChange tells the host not to touch the OS cursor.
	ConfigFlagsNoMouseCursorChange ConfigFlags = 1 << 5
)

// ControlFlow is what the event loop does after a frame.
type ControlFlow int

const (
	// ControlFlowPoll keeps rendering without waiting for events.
	ControlFlowPoll ControlFlow = iota
	// ControlFlowWait blocks until the next OS event.
	ControlFlowWait
	// ControlFlowExit stops the loop.
	ControlFlowExit
)

func (f ControlFlow) String() string {
	switch f {
	case ControlFlowPoll:
		return "poll"
	case ControlFlowWait:
		return "wait"
	case ControlFlowExit:
		return "exit"
	default:
		return fmt.Sprintf("ControlFlow(%d)", int(f))
	}
}
