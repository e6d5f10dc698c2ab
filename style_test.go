package imwin_test

import (
	"testing"

	"github.com/go-theft-auto/imwin"
	"github.com/go-theft-auto/imwin/engine/headless"
)

func newStyleContext(t *testing.T) (*imwin.Context, *headless.Engine) {
	t.Helper()
	engine := headless.New()
	ctx, err := imwin.NewContext(engine, nil)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return ctx, engine
}

func TestStyleMut_SetTheme(t *testing.T) {
	ctx, _ := newStyleContext(t)

	style, err := ctx.Style()
	if err != nil {
		t.Fatalf("Style: %v", err)
	}
	dark := style.Color(imwin.ColorWindowBg)

	style.SetColorsLight()
	light := style.Color(imwin.ColorWindowBg)
	if light == dark {
		t.Error("Expected light window background to differ from dark")
	}

	style.SetTheme(imwin.ThemeDark)
	if got := style.Color(imwin.ColorWindowBg); got != dark {
		t.Errorf("Expected dark preset restored, got %v", got)
	}

	style.SetColorsClassic()
	if got := style.Color(imwin.ColorWindowBg); got == dark || got == light {
		t.Errorf("Expected classic window background, got %v", got)
	}
}

func TestStyleMut_SetColor(t *testing.T) {
	ctx, _ := newStyleContext(t)
	style, _ := ctx.Style()

	red := imwin.Color{R: 1, A: 1}
	style.SetColor(imwin.ColorButton, red)
	if got := style.Color(imwin.ColorButton); got != red {
		t.Errorf("Expected %v, got %v", red, got)
	}

	// Unknown ids are ignored and read as zero
	style.SetColor(imwin.ColorCount, red)
	if got := style.Color(imwin.ColorCount); got != (imwin.Color{}) {
		t.Errorf("Expected zero color for unknown id, got %v", got)
	}
}

func TestStyleMut_SetAlphaClamps(t *testing.T) {
	ctx, _ := newStyleContext(t)
	style, _ := ctx.Style()

	style.SetAlpha(1.5)
	if got := style.Alpha(); got != 1 {
		t.Errorf("Expected alpha clamped to 1, got %v", got)
	}
	style.SetAlpha(-1)
	if got := style.Alpha(); got != 0 {
		t.Errorf("Expected alpha clamped to 0, got %v", got)
	}
}

func TestStyle_ColorAlpha(t *testing.T) {
	ctx, _ := newStyleContext(t)
	style, _ := ctx.Style()

	style.SetColor(imwin.ColorText, imwin.Color{R: 1, G: 1, B: 1, A: 0.8})
	style.SetAlpha(0.5)

	got := style.ColorAlpha(imwin.ColorText, 0.5)
	if got.A != 0.2 {
		t.Errorf("Expected alpha 0.2, got %v", got.A)
	}
	if got.R != 1 {
		t.Errorf("Expected color channels untouched, got %v", got)
	}
}

func TestStyleMut_Sizes(t *testing.T) {
	ctx, _ := newStyleContext(t)
	style, _ := ctx.Style()

	if got := style.FramePadding(); got != (imwin.Vec2{X: 4, Y: 3}) {
		t.Errorf("Expected default frame padding (4, 3), got %v", got)
	}

	style.SetFramePadding(imwin.Vec2{X: 10, Y: 6})
	style.SetFrameRounding(4)
	style.SetFrameBorderSize(1)
	style.SetItemSpacing(imwin.Vec2{X: 12, Y: 8})
	style.SetItemInnerSpacing(imwin.Vec2{X: 2, Y: 2})

	if got := style.FramePadding(); got != (imwin.Vec2{X: 10, Y: 6}) {
		t.Errorf("Expected frame padding (10, 6), got %v", got)
	}
	if got := style.FrameRounding(); got != 4 {
		t.Errorf("Expected frame rounding 4, got %v", got)
	}
	if got := style.FrameBorderSize(); got != 1 {
		t.Errorf("Expected border size 1, got %v", got)
	}
	if got := style.ItemSpacing(); got != (imwin.Vec2{X: 12, Y: 8}) {
		t.Errorf("Expected item spacing (12, 8), got %v", got)
	}
	if got := style.ItemInnerSpacing(); got != (imwin.Vec2{X: 2, Y: 2}) {
		t.Errorf("Expected inner spacing (2, 2), got %v", got)
	}

	// Themes replace colors only
	style.SetColorsLight()
	if got := style.FrameRounding(); got != 4 {
		t.Errorf("Expected theme to keep sizes, got rounding %v", got)
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    imwin.Theme
		wantErr bool
	}{
		{"", imwin.ThemeDark, false},
		{"dark", imwin.ThemeDark, false},
		{"Light", imwin.ThemeLight, false},
		{" classic ", imwin.ThemeClassic, false},
		{"solarized", imwin.ThemeDark, true},
	}
	for _, tt := range tests {
		got, err := imwin.ParseTheme(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTheme(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseTheme(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestTheme_TextRoundTrip(t *testing.T) {
	for _, theme := range []imwin.Theme{imwin.ThemeDark, imwin.ThemeLight, imwin.ThemeClassic} {
		text, err := theme.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%s): %v", theme, err)
		}
		var back imwin.Theme
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", text, err)
		}
		if back != theme {
			t.Errorf("Expected %s, got %s", theme, back)
		}
	}
}
