package cimgui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/go-theft-auto/imwin"
)

// ioAdapter forwards imwin.IO calls to the ImGuiIO of the context.
type ioAdapter struct {
	io *imgui.IO
}

var _ imwin.IO = (*ioAdapter)(nil)

func (a *ioAdapter) AddKeyEvent(key imwin.Key, down bool) {
	if k, ok := keyTable[key]; ok {
		a.io.AddKeyEvent(k, down)
	}
}

func (a *ioAdapter) AddInputCharacter(c uint32) {
	a.io.AddInputCharacter(c)
}

func (a *ioAdapter) AddMousePosEvent(x, y float32) {
	a.io.AddMousePosEvent(x, y)
}

func (a *ioAdapter) AddMouseButtonEvent(button imwin.MouseButton, down bool) {
	if button.Valid() {
		a.io.AddMouseButtonEvent(int32(button), down)
	}
}

func (a *ioAdapter) AddMouseWheelEvent(h, v float32) {
	a.io.AddMouseWheelEvent(h, v)
}

func (a *ioAdapter) AddFocusEvent(focused bool) {
	a.io.AddFocusEvent(focused)
}

func (a *ioAdapter) SetDeltaTime(seconds float32) {
	a.io.SetDeltaTime(seconds)
}

func (a *ioAdapter) DisplaySize() imwin.Vec2 {
	return fromVec2(a.io.DisplaySize())
}

func (a *ioAdapter) SetDisplaySize(size imwin.Vec2) {
	a.io.SetDisplaySize(toVec2(size))
}

func (a *ioAdapter) DisplayFramebufferScale() imwin.Vec2 {
	return fromVec2(a.io.DisplayFramebufferScale())
}

func (a *ioAdapter) SetDisplayFramebufferScale(scale imwin.Vec2) {
	a.io.SetDisplayFramebufferScale(toVec2(scale))
}

func (a *ioAdapter) MousePos() imwin.Vec2 {
	return fromVec2(a.io.MousePos())
}

func (a *ioAdapter) SetMousePos(pos imwin.Vec2) {
	a.io.SetMousePos(toVec2(pos))
}

func (a *ioAdapter) ConfigFlags() imwin.ConfigFlags {
	return fromConfigFlags(a.io.ConfigFlags())
}

func (a *ioAdapter) WantSetMousePos() bool {
	return a.io.WantSetMousePos()
}

func (a *ioAdapter) MouseDrawCursor() bool {
	return a.io.MouseDrawCursor()
}

func (a *ioAdapter) MouseCursor() imwin.MouseCursor {
	return fromMouseCursor(imgui.CurrentMouseCursor())
}

func (a *ioAdapter) IsAnyMouseDown() bool {
	return imgui.IsAnyMouseDown()
}

var configFlagTable = []struct {
	ours   imwin.ConfigFlags
	theirs imgui.ConfigFlags
}{
	{imwin.ConfigFlagsNavEnableKeyboard, imgui.ConfigFlagsNavEnableKeyboard},
	{imwin.ConfigFlagsNavEnableGamepad, imgui.ConfigFlagsNavEnableGamepad},
	{imwin.ConfigFlagsNoMouse, imgui.ConfigFlagsNoMouse},
	{imwin.ConfigFlagsNoMouseCursorChange, imgui.ConfigFlagsNoMouseCursorChange},
}

func fromConfigFlags(f imgui.ConfigFlags) imwin.ConfigFlags {
	var out imwin.ConfigFlags
	for _, e := range configFlagTable {
		if f&e.theirs != 0 {
			out |= e.ours
		}
	}
	return out
}

func toConfigFlags(f imwin.ConfigFlags) imgui.ConfigFlags {
	var out imgui.ConfigFlags
	for _, e := range configFlagTable {
		if f&e.ours != 0 {
			out |= e.theirs
		}
	}
	return out
}

func fromMouseCursor(c imgui.MouseCursor) imwin.MouseCursor {
	switch c {
	case imgui.MouseCursorNone:
		return imwin.MouseCursorNone
	case imgui.MouseCursorArrow:
		return imwin.MouseCursorArrow
	case imgui.MouseCursorTextInput:
		return imwin.MouseCursorTextInput
	case imgui.MouseCursorResizeAll:
		return imwin.MouseCursorResizeAll
	case imgui.MouseCursorResizeNS:
		return imwin.MouseCursorResizeNS
	case imgui.MouseCursorResizeEW:
		return imwin.MouseCursorResizeEW
	case imgui.MouseCursorResizeNESW:
		return imwin.MouseCursorResizeNESW
	case imgui.MouseCursorResizeNWSE:
		return imwin.MouseCursorResizeNWSE
	case imgui.MouseCursorHand:
		return imwin.MouseCursorHand
	case imgui.MouseCursorNotAllowed:
		return imwin.MouseCursorNotAllowed
	default:
		return imwin.MouseCursorArrow
	}
}
