// Package opengl hosts an imwin engine in a GLFW window and draws its
// output with OpenGL 3.3 core, or OpenGL ES 3.0 where that is all the
// driver offers.
package opengl

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/imwin"
)

// Renderer implements imwin.Renderer using OpenGL.
type Renderer struct {
	api      API
	shader   uint32
	vao, vbo uint32
	ebo      uint32
	fontTex  uint32
	projLoc  int32
	texLoc   int32
}

var _ imwin.Renderer = (*Renderer)(nil)

const vertexShaderBody = `
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
`

const fragmentShaderBody = `
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D atlas;

void main() {
    FragColor = Color * texture(atlas, TexCoord);
}
`

var (
	vertexStride   = int32(unsafe.Sizeof(imwin.Vertex{}))
	texCoordOffset = unsafe.Offsetof(imwin.Vertex{}.TexCoord)
	colorOffset    = unsafe.Offsetof(imwin.Vertex{}.Color)
)

// NewRenderer creates the GL objects for drawing engine output. The GL
// context of the window must be current.
func NewRenderer(api API) (*Renderer, error) {
	r := &Renderer{api: api}

	var err error
	r.shader, err = createShaderProgram(
		api.GLSLHeader()+vertexShaderBody+"\x00",
		api.GLSLHeader()+fragmentShaderBody+"\x00",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("atlas\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	setupAttributes(0)
	gl.EnableVertexAttribArray(0)
	gl.EnableVertexAttribArray(1)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	imwin.Logger().Debug("renderer created", "api", api)
	return r, nil
}

// setupAttributes points the vertex attributes at the bound array buffer,
// starting baseVertex vertices in.
func setupAttributes(baseVertex uint32) {
	base := uintptr(baseVertex) * uintptr(vertexStride)

	// Pos (2 floats) + TexCoord (2 floats) + Color (normalized uint8x4)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, vertexStride, base)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, vertexStride, base+texCoordOffset)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, vertexStride, base+colorOffset)
}

// CreateFontTexture uploads the font atlas. Draw commands with texture ID 0
// sample it.
func (r *Renderer) CreateFontTexture(img *image.RGBA) (uint32, error) {
	if img == nil || img.Rect.Empty() {
		return 0, errors.New("empty font atlas")
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}

	w, h := img.Rect.Dx(), img.Rect.Dy()

	gl.GenTextures(1, &r.fontTex)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return 0, fmt.Errorf("upload %dx%d atlas: gl error 0x%x", w, h, code)
	}
	return r.fontTex, nil
}

// Clear fills the framebuffer with c.
func (r *Renderer) Clear(c imwin.Color) {
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Render draws one frame of engine output.
func (r *Renderer) Render(dd *imwin.DrawData) error {
	fb := dd.FramebufferSize()
	if dd.Empty() || fb.Empty() {
		return nil
	}

	// Save GL state
	var lastProgram, lastTexture, lastVAO, lastArrayBuffer int32
	var lastBlendSrc, lastBlendDst int32
	var lastViewport, lastScissorBox [4]int32
	var blendEnabled, depthEnabled, cullEnabled, scissorEnabled bool

	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &lastTexture)
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &lastVAO)
	gl.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &lastArrayBuffer)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &lastBlendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &lastBlendDst)
	gl.GetIntegerv(gl.VIEWPORT, &lastViewport[0])
	gl.GetIntegerv(gl.SCISSOR_BOX, &lastScissorBox[0])
	blendEnabled = gl.IsEnabled(gl.BLEND)
	depthEnabled = gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled = gl.IsEnabled(gl.CULL_FACE)
	scissorEnabled = gl.IsEnabled(gl.SCISSOR_TEST)

	// Setup render state
	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFuncSeparate(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Viewport(0, 0, int32(fb.Width), int32(fb.Height))

	gl.UseProgram(r.shader)

	left := dd.DisplayPos.X
	top := dd.DisplayPos.Y
	proj := mgl32.Ortho(left, left+dd.DisplaySize.X, top+dd.DisplaySize.Y, top, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)

	scale := dd.FramebufferScale
	for i := range dd.Lists {
		list := &dd.Lists[i]
		if len(list.VtxBuffer) == 0 || len(list.IdxBuffer) == 0 {
			continue
		}

		gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(list.VtxBuffer)*int(vertexStride),
			gl.Ptr(list.VtxBuffer), gl.STREAM_DRAW)

		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(list.IdxBuffer)*2,
			gl.Ptr(list.IdxBuffer), gl.STREAM_DRAW)

		baseVertex := ^uint32(0)
		for _, cmd := range list.CmdBuffer {
			if cmd.ElemCount == 0 {
				continue
			}

			// Clip rectangle in framebuffer pixels, Y flipped for OpenGL
			minX := (cmd.ClipRect[0] - dd.DisplayPos.X) * scale.X
			minY := (cmd.ClipRect[1] - dd.DisplayPos.Y) * scale.Y
			maxX := (cmd.ClipRect[2] - dd.DisplayPos.X) * scale.X
			maxY := (cmd.ClipRect[3] - dd.DisplayPos.Y) * scale.Y
			if minX < 0 {
				minX = 0
			}
			if minY < 0 {
				minY = 0
			}
			if maxX > float32(fb.Width) {
				maxX = float32(fb.Width)
			}
			if maxY > float32(fb.Height) {
				maxY = float32(fb.Height)
			}
			if maxX <= minX || maxY <= minY {
				continue
			}
			gl.Scissor(int32(minX), int32(float32(fb.Height)-maxY), int32(maxX-minX), int32(maxY-minY))

			tex := cmd.TextureID
			if tex == 0 {
				tex = r.fontTex
			}
			gl.BindTexture(gl.TEXTURE_2D, tex)

			if r.api == APIGLES30 {
				// No base vertex draws in ES 3.0
				if cmd.VertexOffset != baseVertex {
					setupAttributes(cmd.VertexOffset)
					baseVertex = cmd.VertexOffset
				}
				gl.DrawElementsWithOffset(gl.TRIANGLES, int32(cmd.ElemCount), gl.UNSIGNED_SHORT,
					uintptr(cmd.IndexOffset)*2)
				continue
			}

			gl.DrawElementsBaseVertexWithOffset(
				gl.TRIANGLES,
				int32(cmd.ElemCount),
				gl.UNSIGNED_SHORT,
				uintptr(cmd.IndexOffset)*2,
				int32(cmd.VertexOffset),
			)
		}
		if baseVertex != ^uint32(0) && baseVertex != 0 {
			setupAttributes(0)
		}
	}

	// Restore GL state
	gl.UseProgram(uint32(lastProgram))
	gl.BindTexture(gl.TEXTURE_2D, uint32(lastTexture))
	gl.BindVertexArray(uint32(lastVAO))
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(lastArrayBuffer))
	gl.BlendFunc(uint32(lastBlendSrc), uint32(lastBlendDst))

	setEnabled(gl.BLEND, blendEnabled)
	setEnabled(gl.DEPTH_TEST, depthEnabled)
	setEnabled(gl.CULL_FACE, cullEnabled)
	setEnabled(gl.SCISSOR_TEST, scissorEnabled)
	gl.Viewport(lastViewport[0], lastViewport[1], lastViewport[2], lastViewport[3])
	gl.Scissor(lastScissorBox[0], lastScissorBox[1], lastScissorBox[2], lastScissorBox[3])

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}

func setEnabled(capability uint32, enabled bool) {
	if enabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
		r.fontTex = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
		r.shader = 0
	}
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return 0, fmt.Errorf("fragment shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	return program, nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, errors.New(string(log))
	}
	return shader, nil
}
