package headless

import "github.com/go-theft-auto/imwin"

// Style is the headless engine's style object. Sizes default to the values
// Dear ImGui starts with.
type Style struct {
	colors           [imwin.ColorCount]imwin.Color
	alpha            float32
	framePadding     imwin.Vec2
	frameRounding    float32
	frameBorderSize  float32
	itemSpacing      imwin.Vec2
	itemInnerSpacing imwin.Vec2
}

// NewStyle returns the default style with the dark preset.
func NewStyle() *Style {
	s := &Style{
		alpha:            1,
		framePadding:     imwin.Vec2{X: 4, Y: 3},
		itemSpacing:      imwin.Vec2{X: 8, Y: 4},
		itemInnerSpacing: imwin.Vec2{X: 4, Y: 4},
	}
	s.ApplyTheme(imwin.ThemeDark)
	return s
}

func (s *Style) Color(id imwin.ColorID) imwin.Color {
	if !id.Valid() {
		return imwin.Color{}
	}
	return s.colors[id]
}

func (s *Style) SetColor(id imwin.ColorID, c imwin.Color) {
	if id.Valid() {
		s.colors[id] = c
	}
}

func (s *Style) Alpha() float32                   { return s.alpha }
func (s *Style) SetAlpha(alpha float32)           { s.alpha = alpha }
func (s *Style) FramePadding() imwin.Vec2         { return s.framePadding }
func (s *Style) SetFramePadding(v imwin.Vec2)     { s.framePadding = v }
func (s *Style) FrameRounding() float32           { return s.frameRounding }
func (s *Style) SetFrameRounding(v float32)       { s.frameRounding = v }
func (s *Style) FrameBorderSize() float32         { return s.frameBorderSize }
func (s *Style) SetFrameBorderSize(v float32)     { s.frameBorderSize = v }
func (s *Style) ItemSpacing() imwin.Vec2          { return s.itemSpacing }
func (s *Style) SetItemSpacing(v imwin.Vec2)      { s.itemSpacing = v }
func (s *Style) ItemInnerSpacing() imwin.Vec2     { return s.itemInnerSpacing }
func (s *Style) SetItemInnerSpacing(v imwin.Vec2) { s.itemInnerSpacing = v }

// ApplyTheme overwrites the color table with a preset. Sizes are kept.
func (s *Style) ApplyTheme(theme imwin.Theme) {
	switch theme {
	case imwin.ThemeLight:
		s.colors = lightColors
	case imwin.ThemeClassic:
		s.colors = classicColors
	default:
		s.colors = darkColors
	}
}

func c(r, g, b, a float32) imwin.Color {
	return imwin.Color{R: r, G: g, B: b, A: a}
}

// The preset tables follow Dear ImGui's StyleColorsDark/Light/Classic.
var darkColors = [imwin.ColorCount]imwin.Color{
	imwin.ColorText:                 c(1.00, 1.00, 1.00, 1.00),
	imwin.ColorTextDisabled:         c(0.50, 0.50, 0.50, 1.00),
	imwin.ColorWindowBg:             c(0.06, 0.06, 0.06, 0.94),
	imwin.ColorChildBg:              c(0.00, 0.00, 0.00, 0.00),
	imwin.ColorPopupBg:              c(0.08, 0.08, 0.08, 0.94),
	imwin.ColorBorder:               c(0.43, 0.43, 0.50, 0.50),
	imwin.ColorBorderShadow:         c(0.00, 0.00, 0.00, 0.00),
	imwin.ColorFrameBg:              c(0.16, 0.29, 0.48, 0.54),
	imwin.ColorFrameBgHovered:       c(0.26, 0.59, 0.98, 0.40),
	imwin.ColorFrameBgActive:        c(0.26, 0.59, 0.98, 0.67),
	imwin.ColorTitleBg:              c(0.04, 0.04, 0.04, 1.00),
	imwin.ColorTitleBgActive:        c(0.16, 0.29, 0.48, 1.00),
	imwin.ColorTitleBgCollapsed:     c(0.00, 0.00, 0.00, 0.51),
	imwin.ColorMenuBarBg:            c(0.14, 0.14, 0.14, 1.00),
	imwin.ColorScrollbarBg:          c(0.02, 0.02, 0.02, 0.53),
	imwin.ColorScrollbarGrab:        c(0.31, 0.31, 0.31, 1.00),
	imwin.ColorScrollbarGrabHovered: c(0.41, 0.41, 0.41, 1.00),
	imwin.ColorScrollbarGrabActive:  c(0.51, 0.51, 0.51, 1.00),
	imwin.ColorCheckMark:            c(0.26, 0.59, 0.98, 1.00),
	imwin.ColorSliderGrab:           c(0.24, 0.52, 0.88, 1.00),
	imwin.ColorSliderGrabActive:     c(0.26, 0.59, 0.98, 1.00),
	imwin.ColorButton:               c(0.26, 0.59, 0.98, 0.40),
	imwin.ColorButtonHovered:        c(0.26, 0.59, 0.98, 1.00),
	imwin.ColorButtonActive:         c(0.06, 0.53, 0.98, 1.00),
	imwin.ColorHeader:               c(0.26, 0.59, 0.98, 0.31),
	imwin.ColorHeaderHovered:        c(0.26, 0.59, 0.98, 0.80),
	imwin.ColorHeaderActive:         c(0.26, 0.59, 0.98, 1.00),
	imwin.ColorSeparator:            c(0.43, 0.43, 0.50, 0.50),
	imwin.ColorSeparatorHovered:     c(0.10, 0.40, 0.75, 0.78),
	imwin.ColorSeparatorActive:      c(0.10, 0.40, 0.75, 1.00),
	imwin.ColorResizeGrip:           c(0.26, 0.59, 0.98, 0.20),
	imwin.ColorResizeGripHovered:    c(0.26, 0.59, 0.98, 0.67),
	imwin.ColorResizeGripActive:     c(0.26, 0.59, 0.98, 0.95),
	imwin.ColorPlotLines:            c(0.61, 0.61, 0.61, 1.00),
	imwin.ColorPlotLinesHovered:     c(1.00, 0.43, 0.35, 1.00),
	imwin.ColorPlotHistogram:        c(0.90, 0.70, 0.00, 1.00),
	imwin.ColorPlotHistogramHovered: c(1.00, 0.60, 0.00, 1.00),
	imwin.ColorTableHeaderBg:        c(0.19, 0.19, 0.20, 1.00),
	imwin.ColorTableBorderStrong:    c(0.31, 0.31, 0.35, 1.00),
	imwin.ColorTableBorderLight:     c(0.23, 0.23, 0.25, 1.00),
	imwin.ColorTableRowBg:           c(0.00, 0.00, 0.00, 0.00),
	imwin.ColorTableRowBgAlt:        c(1.00, 1.00, 1.00, 0.06),
	imwin.ColorTextSelectedBg:       c(0.26, 0.59, 0.98, 0.35),
	imwin.ColorDragDropTarget:       c(1.00, 1.00, 0.00, 0.90),
	imwin.ColorModalWindowDimBg:     c(0.80, 0.80, 0.80, 0.35),
}

var lightColors = [imwin.ColorCount]imwin.Color{
	imwin.ColorText:                 c(0.00, 0.00, 0.00, 1.00),
	imwin.ColorTextDisabled:         c(0.60, 0.60, 0.60, 1.00),
	imwin.ColorWindowBg:             c(0.94, 0.94, 0.94, 1.00),
	imwin.ColorChildBg:              c(0.00, 0.00, 0.00, 0.00),
	imwin.ColorPopupBg:              c(1.00, 1.00, 1.00, 0.98),
	imwin.ColorBorder:               c(0.00, 0.00, 0.00, 0.30),
	imwin.ColorBorderShadow:         c(0.00, 0.00, 0.00, 0.00),
	imwin.ColorFrameBg:              c(1.00, 1.00, 1.00, 1.00),
	imwin.ColorFrameBgHovered:       c(0.26, 0.59, 0.98, 0.40),
	imwin.ColorFrameBgActive:        c(0.26, 0.59, 0.98, 0.67),
	imwin.ColorTitleBg:              c(0.96, 0.96, 0.96, 1.00),
	imwin.ColorTitleBgActive:        c(0.82, 0.82, 0.82, 1.00),
	imwin.ColorTitleBgCollapsed:     c(1.00, 1.00, 1.00, 0.51),
	imwin.ColorMenuBarBg:            c(0.86, 0.86, 0.86, 1.00),
	imwin.ColorScrollbarBg:          c(0.98, 0.98, 0.98, 0.53),
	imwin.ColorScrollbarGrab:        c(0.69, 0.69, 0.69, 0.80),
	imwin.ColorScrollbarGrabHovered: c(0.49, 0.49, 0.49, 0.80),
	imwin.ColorScrollbarGrabActive:  c(0.49, 0.49, 0.49, 1.00),
	imwin.ColorCheckMark:            c(0.26, 0.59, 0.98, 1.00),
	imwin.ColorSliderGrab:           c(0.26, 0.59, 0.98, 0.78),
	imwin.ColorSliderGrabActive:     c(0.46, 0.54, 0.80, 0.60),
	imwin.ColorButton:               c(0.26, 0.59, 0.98, 0.40),
	imwin.ColorButtonHovered:        c(0.26, 0.59, 0.98, 1.00),
	imwin.ColorButtonActive:         c(0.06, 0.53, 0.98, 1.00),
	imwin.ColorHeader:               c(0.26, 0.59, 0.98, 0.31),
	imwin.ColorHeaderHovered:        c(0.26, 0.59, 0.98, 0.80),
	imwin.ColorHeaderActive:         c(0.26, 0.59, 0.98, 1.00),
	imwin.ColorSeparator:            c(0.39, 0.39, 0.39, 0.62),
	imwin.ColorSeparatorHovered:     c(0.14, 0.44, 0.80, 0.78),
	imwin.ColorSeparatorActive:      c(0.14, 0.44, 0.80, 1.00),
	imwin.ColorResizeGrip:           c(0.35, 0.35, 0.35, 0.17),
	imwin.ColorResizeGripHovered:    c(0.26, 0.59, 0.98, 0.67),
	imwin.ColorResizeGripActive:     c(0.26, 0.59, 0.98, 0.95),
	imwin.ColorPlotLines:            c(0.39, 0.39, 0.39, 1.00),
	imwin.ColorPlotLinesHovered:     c(1.00, 0.43, 0.35, 1.00),
	imwin.ColorPlotHistogram:        c(0.90, 0.70, 0.00, 1.00),
	imwin.ColorPlotHistogramHovered: c(1.00, 0.45, 0.00, 1.00),
	imwin.ColorTableHeaderBg:        c(0.78, 0.87, 0.98, 1.00),
	imwin.ColorTableBorderStrong:    c(0.57, 0.57, 0.64, 1.00),
	imwin.ColorTableBorderLight:     c(0.68, 0.68, 0.74, 1.00),
	imwin.ColorTableRowBg:           c(0.00, 0.00, 0.00, 0.00),
	imwin.ColorTableRowBgAlt:        c(0.30, 0.30, 0.30, 0.09),
	imwin.ColorTextSelectedBg:       c(0.26, 0.59, 0.98, 0.35),
	imwin.ColorDragDropTarget:       c(0.26, 0.59, 0.98, 0.95),
	imwin.ColorModalWindowDimBg:     c(0.20, 0.20, 0.20, 0.35),
}

var classicColors = [imwin.ColorCount]imwin.Color{
	imwin.ColorText:                 c(0.90, 0.90, 0.90, 1.00),
	imwin.ColorTextDisabled:         c(0.60, 0.60, 0.60, 1.00),
	imwin.ColorWindowBg:             c(0.00, 0.00, 0.00, 0.85),
	imwin.ColorChildBg:              c(0.00, 0.00, 0.00, 0.00),
	imwin.ColorPopupBg:              c(0.11, 0.11, 0.14, 0.92),
	imwin.ColorBorder:               c(0.50, 0.50, 0.50, 0.50),
	imwin.ColorBorderShadow:         c(0.00, 0.00, 0.00, 0.00),
	imwin.ColorFrameBg:              c(0.43, 0.43, 0.43, 0.39),
	imwin.ColorFrameBgHovered:       c(0.47, 0.47, 0.69, 0.40),
	imwin.ColorFrameBgActive:        c(0.42, 0.41, 0.64, 0.69),
	imwin.ColorTitleBg:              c(0.27, 0.27, 0.54, 0.83),
	imwin.ColorTitleBgActive:        c(0.32, 0.32, 0.63, 0.87),
	imwin.ColorTitleBgCollapsed:     c(0.40, 0.40, 0.80, 0.20),
	imwin.ColorMenuBarBg:            c(0.40, 0.40, 0.55, 0.80),
	imwin.ColorScrollbarBg:          c(0.20, 0.25, 0.30, 0.60),
	imwin.ColorScrollbarGrab:        c(0.40, 0.40, 0.80, 0.30),
	imwin.ColorScrollbarGrabHovered: c(0.40, 0.40, 0.80, 0.40),
	imwin.ColorScrollbarGrabActive:  c(0.41, 0.39, 0.80, 0.60),
	imwin.ColorCheckMark:            c(0.90, 0.90, 0.90, 0.50),
	imwin.ColorSliderGrab:           c(1.00, 1.00, 1.00, 0.30),
	imwin.ColorSliderGrabActive:     c(0.41, 0.39, 0.80, 0.60),
	imwin.ColorButton:               c(0.35, 0.40, 0.61, 0.62),
	imwin.ColorButtonHovered:        c(0.40, 0.48, 0.71, 0.79),
	imwin.ColorButtonActive:         c(0.46, 0.54, 0.80, 1.00),
	imwin.ColorHeader:               c(0.40, 0.40, 0.90, 0.45),
	imwin.ColorHeaderHovered:        c(0.45, 0.45, 0.90, 0.80),
	imwin.ColorHeaderActive:         c(0.53, 0.53, 0.87, 0.80),
	imwin.ColorSeparator:            c(0.50, 0.50, 0.50, 0.60),
	imwin.ColorSeparatorHovered:     c(0.60, 0.60, 0.70, 1.00),
	imwin.ColorSeparatorActive:      c(0.70, 0.70, 0.90, 1.00),
	imwin.ColorResizeGrip:           c(1.00, 1.00, 1.00, 0.10),
	imwin.ColorResizeGripHovered:    c(0.78, 0.82, 1.00, 0.60),
	imwin.ColorResizeGripActive:     c(0.78, 0.82, 1.00, 0.90),
	imwin.ColorPlotLines:            c(1.00, 1.00, 1.00, 1.00),
	imwin.ColorPlotLinesHovered:     c(0.90, 0.70, 0.00, 1.00),
	imwin.ColorPlotHistogram:        c(0.90, 0.70, 0.00, 1.00),
	imwin.ColorPlotHistogramHovered: c(1.00, 0.60, 0.00, 1.00),
	imwin.ColorTableHeaderBg:        c(0.27, 0.27, 0.38, 1.00),
	imwin.ColorTableBorderStrong:    c(0.31, 0.31, 0.45, 1.00),
	imwin.ColorTableBorderLight:     c(0.26, 0.26, 0.28, 1.00),
	imwin.ColorTableRowBg:           c(0.00, 0.00, 0.00, 0.00),
	imwin.ColorTableRowBgAlt:        c(1.00, 1.00, 1.00, 0.07),
	imwin.ColorTextSelectedBg:       c(0.00, 0.00, 1.00, 0.35),
	imwin.ColorDragDropTarget:       c(1.00, 1.00, 0.00, 0.90),
	imwin.ColorModalWindowDimBg:     c(0.20, 0.20, 0.20, 0.35),
}
