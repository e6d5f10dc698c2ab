package opengl

import (
	"strings"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/imwin"
)

func TestGlfwKeyToImwin(t *testing.T) {
	tests := []struct {
		in   glfw.Key
		want imwin.Key
	}{
		{glfw.Key0, imwin.Key0},
		{glfw.Key9, imwin.Key9},
		{glfw.KeyA, imwin.KeyA},
		{glfw.KeyM, imwin.KeyM},
		{glfw.KeyZ, imwin.KeyZ},
		{glfw.KeyF1, imwin.KeyF1},
		{glfw.KeyF12, imwin.KeyF12},
		{glfw.KeyKP0, imwin.KeyKeypad0},
		{glfw.KeyKP9, imwin.KeyKeypad9},
		{glfw.KeyKPEnter, imwin.KeyKeypadEnter},
		{glfw.KeyEscape, imwin.KeyEscape},
		{glfw.KeyRightSuper, imwin.KeyRightSuper},
		{glfw.KeyGraveAccent, imwin.KeyGraveAccent},
		{glfw.KeyF13, imwin.KeyNone},
		{glfw.KeyUnknown, imwin.KeyNone},
	}
	for _, tt := range tests {
		if got := glfwKeyToImwin(tt.in); got != tt.want {
			t.Errorf("glfwKeyToImwin(%d) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestToModifiers(t *testing.T) {
	got := toModifiers(glfw.ModControl | glfw.ModSuper | glfw.ModNumLock)
	if want := imwin.ModifierCtrl | imwin.ModifierSuper; got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if got := toModifiers(0); got != 0 {
		t.Errorf("Expected no modifiers, got %v", got)
	}
}

func TestModifierBit(t *testing.T) {
	tests := []struct {
		in   glfw.Key
		want glfw.ModifierKey
	}{
		{glfw.KeyLeftControl, glfw.ModControl},
		{glfw.KeyRightShift, glfw.ModShift},
		{glfw.KeyLeftAlt, glfw.ModAlt},
		{glfw.KeyRightSuper, glfw.ModSuper},
		{glfw.KeyA, 0},
	}
	for _, tt := range tests {
		if got := modifierBit(tt.in); got != tt.want {
			t.Errorf("modifierBit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestGlfwMouseButtonToImwin(t *testing.T) {
	tests := []struct {
		in   glfw.MouseButton
		want imwin.MouseButton
	}{
		{glfw.MouseButtonLeft, imwin.MouseButtonLeft},
		{glfw.MouseButtonRight, imwin.MouseButtonRight},
		{glfw.MouseButtonMiddle, imwin.MouseButtonMiddle},
		{glfw.MouseButton4, imwin.MouseButtonX1},
		{glfw.MouseButton5, imwin.MouseButtonX2},
		{glfw.MouseButton8, -1},
	}
	for _, tt := range tests {
		if got := glfwMouseButtonToImwin(tt.in); got != tt.want {
			t.Errorf("glfwMouseButtonToImwin(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestStandardCursor(t *testing.T) {
	if got := standardCursor(imwin.MouseCursorTextInput); got != glfw.IBeamCursor {
		t.Errorf("Expected I-beam, got %d", got)
	}
	if got := standardCursor(imwin.MouseCursorResizeNESW); got != glfw.ArrowCursor {
		t.Errorf("Expected arrow fallback, got %d", got)
	}
}

func TestAPI_GLSLHeader(t *testing.T) {
	if h := APIGLES30.GLSLHeader(); !strings.HasPrefix(h, "#version 300 es") || !strings.Contains(h, "precision") {
		t.Errorf("Expected an ES header with a precision qualifier, got %q", h)
	}
	for _, api := range []API{APIOpenGL41, APIOpenGL33} {
		if h := api.GLSLHeader(); h != "#version 330 core\n" {
			t.Errorf("%s: expected core header, got %q", api, h)
		}
	}
	if s := API(9).String(); s != "API(9)" {
		t.Errorf("Expected API(9), got %q", s)
	}
}
