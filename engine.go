package imwin

import "image"

// IO is the engine's input queue and IO state. Implementations write
// straight into the engine's global IO object, so an IO is only valid
// while its engine context is current.
type IO interface {
	AddKeyEvent(key Key, down bool)
	AddInputCharacter(c uint32)
	AddMousePosEvent(x, y float32)
	AddMouseButtonEvent(button MouseButton, down bool)
	AddMouseWheelEvent(h, v float32)
	AddFocusEvent(focused bool)

	SetDeltaTime(seconds float32)
	DisplaySize() Vec2
	SetDisplaySize(size Vec2)
	DisplayFramebufferScale() Vec2
	SetDisplayFramebufferScale(scale Vec2)
	MousePos() Vec2
	SetMousePos(pos Vec2)

	ConfigFlags() ConfigFlags
	// WantSetMousePos is set when the engine wants the OS cursor moved to MousePos.
	WantSetMousePos() bool
	// MouseDrawCursor is set when the engine draws its own software cursor.
	MouseDrawCursor() bool
	MouseCursor() MouseCursor
	IsAnyMouseDown() bool
}

// StyleData is the engine's global style object.
type StyleData interface {
	Color(id ColorID) Color
	SetColor(id ColorID, c Color)
	Alpha() float32
	SetAlpha(alpha float32)
	FramePadding() Vec2
	SetFramePadding(v Vec2)
	FrameRounding() float32
	SetFrameRounding(v float32)
	FrameBorderSize() float32
	SetFrameBorderSize(v float32)
	ItemSpacing() Vec2
	SetItemSpacing(v Vec2)
	ItemInnerSpacing() Vec2
	SetItemInnerSpacing(v Vec2)
	// ApplyTheme overwrites the color table with one of the engine presets.
	ApplyTheme(theme Theme)
}

// Engine is an immediate-mode GUI engine instance.
type Engine interface {
	IO() IO
	Style() StyleData
	NewFrame()
	// Render finishes the frame and returns a copy of its draw output.
	Render() *DrawData
	// FontTexture returns the font atlas pixels, building the atlas if needed.
	FontTexture() *image.RGBA
	Destroy()
}
