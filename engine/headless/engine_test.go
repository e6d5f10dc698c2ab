package headless

import (
	"reflect"
	"testing"

	"github.com/go-theft-auto/imwin"
)

func TestEngine_RenderEndsFrame(t *testing.T) {
	e := New()
	e.SetDisplaySize(imwin.Vec2{X: 320, Y: 200})
	e.SetDisplayFramebufferScale(imwin.Vec2{X: 2, Y: 2})
	e.RequestMousePos(imwin.Vec2{X: 5, Y: 5})
	e.AddKeyEvent(imwin.KeyEnter, true)

	e.NewFrame()
	dd := e.Render()

	if e.Frames() != 1 {
		t.Errorf("Expected 1 frame, got %d", e.Frames())
	}
	if e.WantSetMousePos() {
		t.Error("Expected the cursor request cleared after a frame")
	}
	if e.Input().KeyPressed(imwin.KeyEnter) {
		t.Error("Expected key edge cleared after a frame")
	}
	if !e.Input().KeyDown(imwin.KeyEnter) {
		t.Error("Expected key still held after a frame")
	}
	if fb := dd.FramebufferSize(); fb.Width != 640 || fb.Height != 400 {
		t.Errorf("Expected 640x400 framebuffer, got %dx%d", fb.Width, fb.Height)
	}
	if !dd.Empty() {
		t.Error("Expected no draw lists")
	}
}

func TestEngine_EventLog(t *testing.T) {
	e := New()
	e.AddKeyEvent(imwin.KeyModCtrl, true)
	e.AddInputCharacter('x')
	e.AddMousePosEvent(1.5, 2)
	e.AddMouseButtonEvent(imwin.MouseButtonRight, true)
	e.AddMouseWheelEvent(0, -1)
	e.AddFocusEvent(false)

	got := make([]string, 0, len(e.Events()))
	for _, ev := range e.Events() {
		got = append(got, ev.String())
	}
	want := []string{
		"key Ctrl true",
		"char 'x'",
		"mouse-pos 1.5,2",
		"mouse-button 1 true",
		"wheel 0,-1",
		"focus false",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	e.ClearEvents()
	if len(e.Events()) != 0 {
		t.Errorf("Expected empty log, got %d events", len(e.Events()))
	}
}

func TestEngine_NulCharacterLoggedNotTyped(t *testing.T) {
	e := New()
	e.AddInputCharacter(0)

	if len(e.Events()) != 1 {
		t.Fatalf("Expected 1 logged event, got %d", len(e.Events()))
	}
	if e.Input().HasInputChars() {
		t.Error("Expected NUL to be dropped from typed text")
	}
}

func TestEngine_FontTexture(t *testing.T) {
	img := New().FontTexture()
	if img.Rect.Dx() != 1 || img.Rect.Dy() != 1 {
		t.Fatalf("Expected 1x1 atlas, got %v", img.Rect)
	}
	if img.Pix[3] != 0xFF {
		t.Errorf("Expected opaque atlas, got alpha %d", img.Pix[3])
	}
}

func TestStyle_ThemesDiffer(t *testing.T) {
	s := NewStyle()
	dark := s.Color(imwin.ColorWindowBg)

	s.ApplyTheme(imwin.ThemeLight)
	if s.Color(imwin.ColorWindowBg) == dark {
		t.Error("Expected light window background to differ from dark")
	}
	if s.FramePadding() != (imwin.Vec2{X: 4, Y: 3}) {
		t.Errorf("Expected padding kept across themes, got %v", s.FramePadding())
	}

	s.ApplyTheme(imwin.Theme(42))
	if s.Color(imwin.ColorWindowBg) != dark {
		t.Error("Expected unknown theme to fall back to dark")
	}
}

func TestStyle_EveryColorSet(t *testing.T) {
	for _, table := range [][imwin.ColorCount]imwin.Color{darkColors, lightColors, classicColors} {
		for id := imwin.ColorID(0); id < imwin.ColorCount; id++ {
			if table[id] == (imwin.Color{}) && id != imwin.ColorChildBg &&
				id != imwin.ColorBorderShadow && id != imwin.ColorTableRowBg {
				t.Errorf("Expected color %d set", id)
			}
		}
	}
}
