package imwin

import (
	"math"
	"testing"
)

func TestPhysicalSize_ToLogical(t *testing.T) {
	got := PhysicalSize{Width: 2560, Height: 1440}.ToLogical(2)
	if got.Width != 1280 || got.Height != 720 {
		t.Errorf("Expected 1280x720, got %vx%v", got.Width, got.Height)
	}

	// Invalid scale factors behave as 1
	for _, scale := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		got := PhysicalSize{Width: 100, Height: 50}.ToLogical(scale)
		if got.Width != 100 || got.Height != 50 {
			t.Errorf("scale %v: expected 100x50, got %vx%v", scale, got.Width, got.Height)
		}
	}
}

func TestLogicalSize_ToPhysicalRounds(t *testing.T) {
	got := LogicalSize{Width: 100.4, Height: 33.5}.ToPhysical(1.5)
	if got.Width != 151 || got.Height != 50 {
		t.Errorf("Expected 151x50, got %dx%d", got.Width, got.Height)
	}
}

func TestPositions_RoundTrip(t *testing.T) {
	p := PhysicalPos{X: 300, Y: 150}
	l := p.ToLogical(1.5)
	if l.X != 200 || l.Y != 100 {
		t.Errorf("Expected (200, 100), got (%v, %v)", l.X, l.Y)
	}
	back := l.ToPhysical(1.5)
	if back != p {
		t.Errorf("Expected %v after round trip, got %v", p, back)
	}
}

func TestPhysicalSize_Empty(t *testing.T) {
	tests := []struct {
		size PhysicalSize
		want bool
	}{
		{PhysicalSize{800, 600}, false},
		{PhysicalSize{0, 600}, true},
		{PhysicalSize{800, 0}, true},
		{PhysicalSize{}, true},
	}
	for _, tt := range tests {
		if got := tt.size.Empty(); got != tt.want {
			t.Errorf("%v.Empty() = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestVec2_Finite(t *testing.T) {
	if !(Vec2{X: 1, Y: -1}).Finite() {
		t.Error("Expected finite vector")
	}
	if (Vec2{X: float32(math.Inf(-1)), Y: 0}).Finite() {
		t.Error("Expected -Inf to be non-finite")
	}
	if (Vec2{X: 0, Y: float32(math.NaN())}).Finite() {
		t.Error("Expected NaN to be non-finite")
	}
}

func TestColor_Packed(t *testing.T) {
	c := RGBA(0x11, 0x22, 0x33, 0x44)
	if got := c.Packed(); got != 0x44332211 {
		t.Errorf("Expected 0x44332211, got 0x%08X", got)
	}
	if got := ColorFromPacked(0x44332211); got.Packed() != 0x44332211 {
		t.Errorf("Expected packed round trip, got 0x%08X", got.Packed())
	}

	// Out of range channels clamp
	over := Color{R: 2, G: -1, B: 0.5, A: 1}
	r, g, b, a := over.RGBA8()
	if r != 255 || g != 0 || b != 128 || a != 255 {
		t.Errorf("Expected (255, 0, 128, 255), got (%d, %d, %d, %d)", r, g, b, a)
	}
}

func TestDrawData_EmptyAndSize(t *testing.T) {
	var nilData *DrawData
	if !nilData.Empty() {
		t.Error("Expected nil draw data to be empty")
	}

	dd := &DrawData{
		DisplaySize:      Vec2{X: 640, Y: 360},
		FramebufferScale: Vec2{X: 2, Y: 2},
		Lists:            []DrawList{{}},
	}
	if !dd.Empty() {
		t.Error("Expected lists without indices to be empty")
	}
	dd.Lists = append(dd.Lists, DrawList{IdxBuffer: []uint16{0, 1, 2}})
	if dd.Empty() {
		t.Error("Expected draw data with indices to be non-empty")
	}

	fb := dd.FramebufferSize()
	if fb.Width != 1280 || fb.Height != 720 {
		t.Errorf("Expected 1280x720 framebuffer, got %dx%d", fb.Width, fb.Height)
	}
}

func TestKey_Modifier(t *testing.T) {
	tests := map[Key]Key{
		KeyLeftCtrl:   KeyModCtrl,
		KeyRightCtrl:  KeyModCtrl,
		KeyLeftShift:  KeyModShift,
		KeyRightAlt:   KeyModAlt,
		KeyLeftSuper:  KeyModSuper,
		KeyA:          KeyNone,
		KeyModCtrl:    KeyNone,
		KeyRightShift: KeyModShift,
	}
	for key, want := range tests {
		if got := key.Modifier(); got != want {
			t.Errorf("%s.Modifier() = %s, want %s", key, got, want)
		}
	}
}

func TestKey_String(t *testing.T) {
	tests := map[Key]string{
		KeyA:       "A",
		Key7:       "7",
		KeyF11:     "F11",
		KeyKeypad3: "Kp3",
		KeyEscape:  "Esc",
		KeyCount:   "?",
	}
	for key, want := range tests {
		if got := key.String(); got != want {
			t.Errorf("Key(%d).String() = %q, want %q", int(key), got, want)
		}
	}
}

func TestMouseCursor_String(t *testing.T) {
	if got := MouseCursorNone.String(); got != "None" {
		t.Errorf("Expected None, got %q", got)
	}
	if got := MouseCursorResizeNWSE.String(); got != "ResizeNWSE" {
		t.Errorf("Expected ResizeNWSE, got %q", got)
	}
	if got := MouseCursor(42).String(); got != "MouseCursor(42)" {
		t.Errorf("Expected MouseCursor(42), got %q", got)
	}
}
