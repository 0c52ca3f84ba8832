package display

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/spinquad/internal/display/shaders"
	"github.com/Faultbox/spinquad/pkg/math"
)

// Blitter presents a software-rendered RGBA frame by uploading it into a GL
// texture and drawing a screen-aligned quad.
type Blitter struct {
	program uint32
	vao     uint32
	vbo     uint32
	texture uint32

	locProj  int32
	locFrame int32

	frameW int
	frameH int
}

// NewBlitter initializes OpenGL and builds the presentation pipeline for
// frames of the given size. Must be called with a current GL context.
func NewBlitter(frameW, frameH int) (*Blitter, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	b := &Blitter{
		frameW: frameW,
		frameH: frameH,
	}

	program, err := compileProgram(shaders.BlitVertexShader, shaders.BlitFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("blit shader: %w", err)
	}
	b.program = program

	b.locProj = mustGetUniform(program, "uProj")
	b.locFrame = mustGetUniform(program, "uFrame")

	b.createQuad()
	b.createTexture()

	return b, nil
}

func (b *Blitter) createQuad() {
	w := float32(b.frameW)
	h := float32(b.frameH)

	// Frame-pixel positions with a top-left origin, matching the texture's
	// row order. Two triangles.
	vertices := []float32{
		// Position (XY), TexCoord (UV)
		0, 0, 0, 0,
		w, 0, 1, 0,
		w, h, 1, 1,
		0, 0, 0, 0,
		w, h, 1, 1,
		0, h, 0, 1,
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position attribute (location 0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(0)

	// TexCoord attribute (location 1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

func (b *Blitter) createTexture() {
	gl.GenTextures(1, &b.texture)
	gl.BindTexture(gl.TEXTURE_2D, b.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.frameW), int32(b.frameH), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Upload copies a rendered frame into the GL texture. The image must match
// the size the blitter was created with.
func (b *Blitter) Upload(img *image.RGBA) {
	gl.BindTexture(gl.TEXTURE_2D, b.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(b.frameW), int32(b.frameH), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Draw presents the uploaded frame, letterboxed and centered in a window of
// the given size.
func (b *Blitter) Draw(windowW, windowH int) {
	gl.Viewport(0, 0, int32(windowW), int32(windowH))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	// Keep the frame's aspect ratio
	scaleX := float32(windowW) / float32(b.frameW)
	scaleY := float32(windowH) / float32(b.frameH)
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}
	destW := int32(float32(b.frameW) * scale)
	destH := int32(float32(b.frameH) * scale)
	gl.Viewport((int32(windowW)-destW)/2, (int32(windowH)-destH)/2, destW, destH)

	gl.UseProgram(b.program)

	// Top-left origin so frame row 0 lands at the top of the window
	proj := math.Ortho(0, float32(b.frameW), float32(b.frameH), 0, -1, 1)
	gl.UniformMatrix4fv(b.locProj, 1, false, proj.Ptr())

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, b.texture)
	gl.Uniform1i(b.locFrame, 0)

	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}

// Destroy releases all GL resources.
func (b *Blitter) Destroy() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.texture != 0 {
		gl.DeleteTextures(1, &b.texture)
		b.texture = 0
	}
	if b.program != 0 {
		gl.DeleteProgram(b.program)
		b.program = 0
	}
}
