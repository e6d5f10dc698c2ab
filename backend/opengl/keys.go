package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/imwin"
)

// glfwKeyToImwin maps GLFW keys to imwin keys.
func glfwKeyToImwin(key glfw.Key) imwin.Key {
	switch {
	case key >= glfw.Key0 && key <= glfw.Key9:
		return imwin.Key0 + imwin.Key(key-glfw.Key0)
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return imwin.KeyA + imwin.Key(key-glfw.KeyA)
	case key >= glfw.KeyF1 && key <= glfw.KeyF12:
		return imwin.KeyF1 + imwin.Key(key-glfw.KeyF1)
	case key >= glfw.KeyKP0 && key <= glfw.KeyKP9:
		return imwin.KeyKeypad0 + imwin.Key(key-glfw.KeyKP0)
	}

	switch key {
	case glfw.KeyTab:
		return imwin.KeyTab
	case glfw.KeyLeft:
		return imwin.KeyLeft
	case glfw.KeyRight:
		return imwin.KeyRight
	case glfw.KeyUp:
		return imwin.KeyUp
	case glfw.KeyDown:
		return imwin.KeyDown
	case glfw.KeyPageUp:
		return imwin.KeyPageUp
	case glfw.KeyPageDown:
		return imwin.KeyPageDown
	case glfw.KeyHome:
		return imwin.KeyHome
	case glfw.KeyEnd:
		return imwin.KeyEnd
	case glfw.KeyInsert:
		return imwin.KeyInsert
	case glfw.KeyDelete:
		return imwin.KeyDelete
	case glfw.KeyBackspace:
		return imwin.KeyBackspace
	case glfw.KeySpace:
		return imwin.KeySpace
	case glfw.KeyEnter:
		return imwin.KeyEnter
	case glfw.KeyEscape:
		return imwin.KeyEscape
	case glfw.KeyLeftControl:
		return imwin.KeyLeftCtrl
	case glfw.KeyLeftShift:
		return imwin.KeyLeftShift
	case glfw.KeyLeftAlt:
		return imwin.KeyLeftAlt
	case glfw.KeyLeftSuper:
		return imwin.KeyLeftSuper
	case glfw.KeyRightControl:
		return imwin.KeyRightCtrl
	case glfw.KeyRightShift:
		return imwin.KeyRightShift
	case glfw.KeyRightAlt:
		return imwin.KeyRightAlt
	case glfw.KeyRightSuper:
		return imwin.KeyRightSuper
	case glfw.KeyMenu:
		return imwin.KeyMenu
	case glfw.KeyApostrophe:
		return imwin.KeyApostrophe
	case glfw.KeyComma:
		return imwin.KeyComma
	case glfw.KeyMinus:
		return imwin.KeyMinus
	case glfw.KeyPeriod:
		return imwin.KeyPeriod
	case glfw.KeySlash:
		return imwin.KeySlash
	case glfw.KeySemicolon:
		return imwin.KeySemicolon
	case glfw.KeyEqual:
		return imwin.KeyEqual
	case glfw.KeyLeftBracket:
		return imwin.KeyLeftBracket
	case glfw.KeyBackslash:
		return imwin.KeyBackslash
	case glfw.KeyRightBracket:
		return imwin.KeyRightBracket
	case glfw.KeyGraveAccent:
		return imwin.KeyGraveAccent
	case glfw.KeyCapsLock:
		return imwin.KeyCapsLock
	case glfw.KeyScrollLock:
		return imwin.KeyScrollLock
	case glfw.KeyNumLock:
		return imwin.KeyNumLock
	case glfw.KeyPrintScreen:
		return imwin.KeyPrintScreen
	case glfw.KeyPause:
		return imwin.KeyPause
	case glfw.KeyKPDecimal:
		return imwin.KeyKeypadDecimal
	case glfw.KeyKPDivide:
		return imwin.KeyKeypadDivide
	case glfw.KeyKPMultiply:
		return imwin.KeyKeypadMultiply
	case glfw.KeyKPSubtract:
		return imwin.KeyKeypadSubtract
	case glfw.KeyKPAdd:
		return imwin.KeyKeypadAdd
	case glfw.KeyKPEnter:
		return imwin.KeyKeypadEnter
	case glfw.KeyKPEqual:
		return imwin.KeyKeypadEqual
	default:
		return imwin.KeyNone
	}
}
