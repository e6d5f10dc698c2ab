// Package cimgui runs Dear ImGui, through cimgui-go, as an imwin engine.
//
// Dear ImGui keeps its IO and style in global objects of the current
// context. An Engine owns one context; IO() and Style() return adapters
// that read and write those globals.
package cimgui

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/go-theft-auto/imwin"
)

// Engine implements imwin.Engine on top of a Dear ImGui context.
type Engine struct {
	ctx   *imgui.Context
	io    *ioAdapter
	style styleAdapter

	atlasBuilt bool
	dd         imwin.DrawData
}

var _ imwin.Engine = (*Engine)(nil)

// Option configures an Engine.
type Option func(*Engine)

// WithConfigFlags enables IO config flags, e.g. keyboard navigation.
func WithConfigFlags(flags imwin.ConfigFlags) Option {
	return func(e *Engine) {
		io := imgui.CurrentIO()
		io.SetConfigFlags(io.ConfigFlags() | toConfigFlags(flags))
	}
}

// New creates a Dear ImGui context and makes it current.
func New(opts ...Option) (*Engine, error) {
	if size, _, _, _ := imgui.VertexBufferLayout(); size != int(unsafe.Sizeof(imwin.Vertex{})) {
		return nil, fmt.Errorf("cimgui: vertex size %d, want %d", size, unsafe.Sizeof(imwin.Vertex{}))
	}
	if size := imgui.IndexBufferLayout(); size != 2 {
		return nil, fmt.Errorf("cimgui: index size %d, want 16-bit indices", size)
	}

	e := &Engine{ctx: imgui.CreateContext()}

	io := imgui.CurrentIO()
	io.SetBackendFlags(io.BackendFlags() |
		imgui.BackendFlagsHasMouseCursors |
		imgui.BackendFlagsHasSetMousePos |
		imgui.BackendFlagsRendererHasVtxOffset)
	e.io = &ioAdapter{io: io}

	for _, opt := range opts {
		opt(e)
	}

	imwin.Logger().Debug("imgui context created", "version", imgui.Version())
	return e, nil
}

func (e *Engine) IO() imwin.IO           { return e.io }
func (e *Engine) Style() imwin.StyleData { return e.style }

// NewFrame starts an ImGui frame.
func (e *Engine) NewFrame() {
	if !e.atlasBuilt {
		imgui.CurrentIO().Fonts().Build()
		e.atlasBuilt = true
	}
	imgui.NewFrame()
}

// Render ends the ImGui frame and copies the draw lists. The returned
// value is reused by the next call.
func (e *Engine) Render() *imwin.DrawData {
	imgui.Render()
	src := imgui.CurrentDrawData()

	dd := &e.dd
	dd.DisplayPos = fromVec2(src.DisplayPos())
	dd.DisplaySize = fromVec2(src.DisplaySize())
	dd.FramebufferScale = fromVec2(src.FramebufferScale())

	lists := src.CommandLists()
	if cap(dd.Lists) < len(lists) {
		dd.Lists = append(dd.Lists[:cap(dd.Lists)], make([]imwin.DrawList, len(lists)-cap(dd.Lists))...)
	}
	dd.Lists = dd.Lists[:len(lists)]

	for i, list := range lists {
		dst := &dd.Lists[i]

		vtx, vtxCount := list.GetVertexBuffer()
		idx, idxCount := list.GetIndexBuffer()
		dst.VtxBuffer = append(dst.VtxBuffer[:0], unsafe.Slice((*imwin.Vertex)(vtx), vtxCount)...)
		dst.IdxBuffer = append(dst.IdxBuffer[:0], unsafe.Slice((*uint16)(idx), idxCount)...)

		dst.CmdBuffer = dst.CmdBuffer[:0]
		for _, cmd := range list.Commands() {
			clip := cmd.ClipRect()
			dst.CmdBuffer = append(dst.CmdBuffer, imwin.DrawCmd{
				ElemCount:    cmd.ElemCount(),
				ClipRect:     [4]float32{clip.X, clip.Y, clip.Z, clip.W},
				VertexOffset: cmd.VtxOffset(),
				IndexOffset:  cmd.IdxOffset(),
			})
		}
	}

	return dd
}

// FontTexture builds the font atlas and returns a copy of its pixels.
func (e *Engine) FontTexture() *image.RGBA {
	fonts := imgui.CurrentIO().Fonts()
	pixels, width, height, bpp := fonts.GetTextureDataAsRGBA32()
	e.atlasBuilt = true
	if pixels == nil || bpp != 4 || width <= 0 || height <= 0 {
		return nil
	}

	img := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	copy(img.Pix, unsafe.Slice((*byte)(pixels), int(width)*int(height)*4))
	return img
}

// Destroy frees the ImGui context.
func (e *Engine) Destroy() {
	if e.ctx == nil {
		return
	}
	imgui.DestroyContextV(e.ctx)
	e.ctx = nil
}

func fromVec2(v imgui.Vec2) imwin.Vec2 {
	return imwin.Vec2{X: v.X, Y: v.Y}
}

func toVec2(v imwin.Vec2) imgui.Vec2 {
	return imgui.Vec2{X: v.X, Y: v.Y}
}
