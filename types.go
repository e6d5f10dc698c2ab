package imwin

import "math"

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Finite reports whether both components are finite numbers.
func (v Vec2) Finite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// Color is a straight-alpha RGBA color with float channels in 0.0-1.0,
// the representation the engine keeps in its style table.
type Color struct {
	R, G, B, A float32
}

// Common colors.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorTransparent = Color{}
)

// RGBA creates a color from 8-bit components.
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// ColorFromPacked unpacks a color stored as 0xAABBGGRR, the vertex color
// layout used by the renderer.
func ColorFromPacked(c uint32) Color {
	return RGBA(uint8(c), uint8(c>>8), uint8(c>>16), uint8(c>>24))
}

// Packed returns the color packed as 0xAABBGGRR. Channels are clamped to 0-1.
func (c Color) Packed() uint32 {
	r, g, b, a := c.RGBA8()
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// RGBA8 returns the color as rounded 8-bit components.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return unitToByte(c.R), unitToByte(c.G), unitToByte(c.B), unitToByte(c.A)
}

// WithAlpha returns a copy of the color with a replaced alpha channel.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// PhysicalSize is a size in framebuffer pixels.
type PhysicalSize struct {
	Width, Height int
}

// ToLogical converts to logical units at the given scale factor.
func (s PhysicalSize) ToLogical(scale float64) LogicalSize {
	scale = sanitizeScale(scale)
	return LogicalSize{
		Width:  float32(float64(s.Width) / scale),
		Height: float32(float64(s.Height) / scale),
	}
}

// Empty reports whether either dimension is zero, as for a minimized window.
func (s PhysicalSize) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// LogicalSize is a size in DPI-independent units, the units the engine lays out in.
type LogicalSize struct {
	Width, Height float32
}

// ToPhysical converts to framebuffer pixels at the given scale factor.
func (s LogicalSize) ToPhysical(scale float64) PhysicalSize {
	scale = sanitizeScale(scale)
	return PhysicalSize{
		Width:  int(math.Round(float64(s.Width) * scale)),
		Height: int(math.Round(float64(s.Height) * scale)),
	}
}

// Vec2 returns the size as a vector.
func (s LogicalSize) Vec2() Vec2 {
	return Vec2{X: s.Width, Y: s.Height}
}

// PhysicalPos is a position in framebuffer pixels.
type PhysicalPos struct {
	X, Y float64
}

// ToLogical converts to logical units at the given scale factor.
func (p PhysicalPos) ToLogical(scale float64) LogicalPos {
	scale = sanitizeScale(scale)
	return LogicalPos{X: p.X / scale, Y: p.Y / scale}
}

// LogicalPos is a position in DPI-independent units.
type LogicalPos struct {
	X, Y float64
}

// ToPhysical converts to framebuffer pixels at the given scale factor.
func (p LogicalPos) ToPhysical(scale float64) PhysicalPos {
	scale = sanitizeScale(scale)
	return PhysicalPos{X: p.X * scale, Y: p.Y * scale}
}

// Vertex represents a vertex of engine draw output.
// Memory layout matches the engine's vertex and OpenGL attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd represents a single draw command.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2) in logical units
	TextureID    uint32     // OpenGL texture ID (0 = font atlas)
	VertexOffset uint32     // Offset into vertex buffer
	IndexOffset  uint32     // Offset into index buffer
}

// DrawList is one engine command list.
type DrawList struct {
	VtxBuffer []Vertex
	IdxBuffer []uint16
	CmdBuffer []DrawCmd
}

// DrawData is a copy of everything the engine produced for one frame.
type DrawData struct {
	DisplayPos       Vec2
	DisplaySize      Vec2
	FramebufferScale Vec2
	Lists            []DrawList
}

// FramebufferSize returns the display size in framebuffer pixels.
func (d *DrawData) FramebufferSize() PhysicalSize {
	return PhysicalSize{
		Width:  int(d.DisplaySize.X * d.FramebufferScale.X),
		Height: int(d.DisplaySize.Y * d.FramebufferScale.Y),
	}
}

// Empty reports whether there is nothing to draw.
func (d *DrawData) Empty() bool {
	if d == nil {
		return true
	}
	for i := range d.Lists {
		if len(d.Lists[i].IdxBuffer) > 0 {
			return false
		}
	}
	return true
}

func sanitizeScale(scale float64) float64 {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return 1
	}
	return scale
}

func isFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

func unitToByte(v float32) uint8 {
	return uint8(math.Round(float64(clampf(v, 0, 1)) * 255))
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
