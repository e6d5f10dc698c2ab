package cimgui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/go-theft-auto/imwin"
)

// styleAdapter reads and writes the ImGuiStyle of the current context.
type styleAdapter struct{}

var _ imwin.StyleData = styleAdapter{}

func (styleAdapter) Color(id imwin.ColorID) imwin.Color {
	if !id.Valid() {
		return imwin.Color{}
	}
	cols := imgui.CurrentStyle().Colors()
	v := cols[colorTable[id]]
	return imwin.Color{R: v.X, G: v.Y, B: v.Z, A: v.W}
}

func (styleAdapter) SetColor(id imwin.ColorID, c imwin.Color) {
	if !id.Valid() {
		return
	}
	style := imgui.CurrentStyle()
	cols := style.Colors()
	cols[colorTable[id]] = imgui.Vec4{X: c.R, Y: c.G, Z: c.B, W: c.A}
	style.SetColors(&cols)
}

func (styleAdapter) Alpha() float32               { return imgui.CurrentStyle().Alpha() }
func (styleAdapter) SetAlpha(v float32)           { imgui.CurrentStyle().SetAlpha(v) }
func (styleAdapter) FrameRounding() float32       { return imgui.CurrentStyle().FrameRounding() }
func (styleAdapter) SetFrameRounding(v float32)   { imgui.CurrentStyle().SetFrameRounding(v) }
func (styleAdapter) FrameBorderSize() float32     { return imgui.CurrentStyle().FrameBorderSize() }
func (styleAdapter) SetFrameBorderSize(v float32) { imgui.CurrentStyle().SetFrameBorderSize(v) }

func (styleAdapter) FramePadding() imwin.Vec2 {
	return fromVec2(imgui.CurrentStyle().FramePadding())
}

func (styleAdapter) SetFramePadding(v imwin.Vec2) {
	imgui.CurrentStyle().SetFramePadding(toVec2(v))
}

func (styleAdapter) ItemSpacing() imwin.Vec2 {
	return fromVec2(imgui.CurrentStyle().ItemSpacing())
}

func (styleAdapter) SetItemSpacing(v imwin.Vec2) {
	imgui.CurrentStyle().SetItemSpacing(toVec2(v))
}

func (styleAdapter) ItemInnerSpacing() imwin.Vec2 {
	return fromVec2(imgui.CurrentStyle().ItemInnerSpacing())
}

func (styleAdapter) SetItemInnerSpacing(v imwin.Vec2) {
	imgui.CurrentStyle().SetItemInnerSpacing(toVec2(v))
}

// ApplyTheme loads one of ImGui's color presets into the style.
func (styleAdapter) ApplyTheme(t imwin.Theme) {
	style := imgui.CurrentStyle()
	switch t {
	case imwin.ThemeLight:
		imgui.StyleColorsLightV(style)
	case imwin.ThemeClassic:
		imgui.StyleColorsClassicV(style)
	default:
		imgui.StyleColorsDarkV(style)
	}
}
