package imwin

import (
	"fmt"
	"strings"
)

// ColorID names an entry of the engine's style color table.
type ColorID int

const (
	ColorText ColorID = iota
	ColorTextDisabled
	ColorWindowBg
	ColorChildBg
	ColorPopupBg
	ColorBorder
	ColorBorderShadow
	ColorFrameBg
	ColorFrameBgHovered
	ColorFrameBgActive
	ColorTitleBg
	ColorTitleBgActive
	ColorTitleBgCollapsed
	ColorMenuBarBg
	ColorScrollbarBg
	ColorScrollbarGrab
	ColorScrollbarGrabHovered
	ColorScrollbarGrabActive
	ColorCheckMark
	ColorSliderGrab
	ColorSliderGrabActive
	ColorButton
	ColorButtonHovered
	ColorButtonActive
	ColorHeader
	ColorHeaderHovered
	ColorHeaderActive
	ColorSeparator
	ColorSeparatorHovered
	ColorSeparatorActive
	ColorResizeGrip
	ColorResizeGripHovered
	ColorResizeGripActive
	ColorPlotLines
	ColorPlotLinesHovered
	ColorPlotHistogram
	ColorPlotHistogramHovered
	ColorTableHeaderBg
	ColorTableBorderStrong
	ColorTableBorderLight
	ColorTableRowBg
	ColorTableRowBgAlt
	ColorTextSelectedBg
	ColorDragDropTarget
	ColorModalWindowDimBg
	ColorCount
)

// Valid reports whether id names a color.
func (id ColorID) Valid() bool {
	return id >= 0 && id < ColorCount
}

// Theme selects one of the engine's built-in color presets.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
	ThemeClassic
)

func (t Theme) String() string {
	switch t {
	case ThemeDark:
		return "dark"
	case ThemeLight:
		return "light"
	case ThemeClassic:
		return "classic"
	default:
		return fmt.Sprintf("Theme(%d)", int(t))
	}
}

// ParseTheme parses a theme name as written in config files.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dark":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	case "classic":
		return ThemeClassic, nil
	default:
		return ThemeDark, fmt.Errorf("unknown theme %q", s)
	}
}

// UnmarshalText lets themes be decoded from YAML strings.
func (t *Theme) UnmarshalText(text []byte) error {
	v, err := ParseTheme(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalText encodes the theme name.
func (t Theme) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Style is a read-only view of the engine style. It is what a running
// frame gets: the style can't be changed while a frame is being built.
type Style struct {
	data StyleData
}

// Color returns a style color.
func (s Style) Color(id ColorID) Color {
	return s.data.Color(id)
}

// Alpha returns the global alpha applied to everything.
func (s Style) Alpha() float32 {
	return s.data.Alpha()
}

// ColorAlpha returns a style color with the global alpha and an extra
// multiplier applied, the color the engine would actually draw.
func (s Style) ColorAlpha(id ColorID, alphaMul float32) Color {
	c := s.Color(id)
	c.A *= s.Alpha() * alphaMul
	return c
}

func (s Style) FramePadding() Vec2       { return s.data.FramePadding() }
func (s Style) FrameRounding() float32   { return s.data.FrameRounding() }
func (s Style) FrameBorderSize() float32 { return s.data.FrameBorderSize() }
func (s Style) ItemSpacing() Vec2        { return s.data.ItemSpacing() }
func (s Style) ItemInnerSpacing() Vec2   { return s.data.ItemInnerSpacing() }

// StyleMut is a mutable view of the engine style, only handed out by a
// Context that is not inside a frame. To change the style during a frame
// use the engine's push/pop style API.
type StyleMut struct {
	Style
}

// SetColorsDark applies the dark color preset.
func (s StyleMut) SetColorsDark() { s.data.ApplyTheme(ThemeDark) }

// SetColorsLight applies the light color preset.
func (s StyleMut) SetColorsLight() { s.data.ApplyTheme(ThemeLight) }

// SetColorsClassic applies the classic color preset.
func (s StyleMut) SetColorsClassic() { s.data.ApplyTheme(ThemeClassic) }

// SetTheme applies a color preset by value.
func (s StyleMut) SetTheme(t Theme) { s.data.ApplyTheme(t) }

// SetColor overwrites one color. Unknown ids are ignored.
func (s StyleMut) SetColor(id ColorID, c Color) {
	if !id.Valid() {
		return
	}
	s.data.SetColor(id, c)
}

// SetAlpha sets the global alpha, clamped to 0-1.
func (s StyleMut) SetAlpha(alpha float32) {
	s.data.SetAlpha(clampf(alpha, 0, 1))
}

func (s StyleMut) SetFramePadding(v Vec2)       { s.data.SetFramePadding(v) }
func (s StyleMut) SetFrameRounding(v float32)   { s.data.SetFrameRounding(v) }
func (s StyleMut) SetFrameBorderSize(v float32) { s.data.SetFrameBorderSize(v) }
func (s StyleMut) SetItemSpacing(v Vec2)        { s.data.SetItemSpacing(v) }
func (s StyleMut) SetItemInnerSpacing(v Vec2)   { s.data.SetItemInnerSpacing(v) }
