// Package renderer draws meshes and debug lines with OpenGL 4.1.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/skirmish/internal/engine/camera"
	"github.com/Faultbox/skirmish/internal/engine/mesh"
	"github.com/Faultbox/skirmish/internal/engine/shader"
	"github.com/Faultbox/skirmish/internal/logger"
	"github.com/Faultbox/skirmish/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	// Vertical field of view in degrees.
	FOV float32
}

// gpuMesh is an uploaded mesh.
type gpuMesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	camera *camera.ArenaCamera

	meshProgram  uint32
	meshUniforms map[string]int32
	lineProgram  uint32
	lineUniforms map[string]int32

	// nil entries mark shapes that failed to generate.
	meshes map[mesh.Shape]*gpuMesh

	lineVAO uint32
	lineVBO uint32

	view, proj  math.Mat4
	translucent []drawCall
	lines       []lineBatch
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		camera: camera.NewArenaCamera(cfg.FOV),
		meshes: make(map[mesh.Shape]*gpuMesh),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.02, 0.02, 0.08, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.meshProgram, err = shader.CompileProgram(meshVertexShader, meshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("mesh program: %w", err)
	}
	r.meshUniforms, err = shader.Uniforms(r.meshProgram, "uModel", "uView", "uProjection", "uColor", "uLightDir")
	if err != nil {
		r.Close()
		return nil, err
	}

	r.lineProgram, err = shader.CompileProgram(lineVertexShader, lineFragmentShader)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("line program: %w", err)
	}
	r.lineUniforms, err = shader.Uniforms(r.lineProgram, "uView", "uProjection", "uColor")
	if err != nil {
		r.Close()
		return nil, err
	}

	r.createLineBuffers()
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer", zap.Int("meshes", len(r.meshes)))
	for shape, m := range r.meshes {
		if m != nil {
			gl.DeleteVertexArrays(1, &m.vao)
			gl.DeleteBuffers(1, &m.vbo)
			gl.DeleteBuffers(1, &m.ebo)
		}
		delete(r.meshes, shape)
	}
	if r.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.lineVAO)
	}
	if r.lineVBO != 0 {
		gl.DeleteBuffers(1, &r.lineVBO)
	}
	if r.meshProgram != 0 {
		gl.DeleteProgram(r.meshProgram)
	}
	if r.lineProgram != 0 {
		gl.DeleteProgram(r.lineProgram)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the viewport size in pixels.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.view = r.camera.ViewMatrix()
	r.proj = r.camera.ProjectionMatrix(r.config.Width, r.config.Height)
	r.translucent = r.translucent[:0]
	r.lines = r.lines[:0]
}

// DrawMesh draws a shape with a world transform. Opaque shapes are drawn
// immediately; translucent ones wait for End.
func (r *Renderer) DrawMesh(world math.Mat4, shape mesh.Shape, color mesh.Color) {
	if color.Translucent() {
		r.translucent = append(r.translucent, drawCall{
			world: world,
			shape: shape,
			color: color,
			depth: r.camera.Depth(world.Translation()),
		})
		return
	}
	gl.UseProgram(r.meshProgram)
	r.setFrameUniforms()
	r.drawMesh(world, shape, color)
}

// DrawLines queues a list of xyz line segment vertices.
func (r *Renderer) DrawLines(vertices []float32, color mesh.Color) {
	if len(vertices) < 6 {
		return
	}
	r.lines = append(r.lines, lineBatch{
		vertices: append([]float32(nil), vertices...),
		color:    color,
	})
}

// End draws the queued translucent meshes back to front, then the lines.
func (r *Renderer) End() {
	if len(r.translucent) > 0 {
		sortBackToFront(r.translucent)

		gl.Enable(gl.BLEND)
		gl.DepthMask(false)
		gl.UseProgram(r.meshProgram)
		r.setFrameUniforms()
		for _, c := range r.translucent {
			r.drawMesh(c.world, c.shape, c.color)
		}
		gl.DepthMask(true)
		gl.Disable(gl.BLEND)
	}

	if len(r.lines) > 0 {
		gl.UseProgram(r.lineProgram)
		gl.UniformMatrix4fv(r.lineUniforms["uView"], 1, false, r.view.Ptr())
		gl.UniformMatrix4fv(r.lineUniforms["uProjection"], 1, false, r.proj.Ptr())
		gl.BindVertexArray(r.lineVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
		for _, b := range r.lines {
			c := b.color.Vec4()
			gl.Uniform4fv(r.lineUniforms["uColor"], 1, &c[0])
			gl.BufferData(gl.ARRAY_BUFFER, len(b.vertices)*4, gl.Ptr(b.vertices), gl.STREAM_DRAW)
			gl.DrawArrays(gl.LINES, 0, int32(len(b.vertices)/3))
		}
		gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	}

	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// ReadPixels returns the framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

func (r *Renderer) setFrameUniforms() {
	gl.UniformMatrix4fv(r.meshUniforms["uView"], 1, false, r.view.Ptr())
	gl.UniformMatrix4fv(r.meshUniforms["uProjection"], 1, false, r.proj.Ptr())
	light := lightDirection.Array()
	gl.Uniform3fv(r.meshUniforms["uLightDir"], 1, &light[0])
}

func (r *Renderer) drawMesh(world math.Mat4, shape mesh.Shape, color mesh.Color) {
	m := r.upload(shape)
	if m == nil {
		return
	}
	c := color.Vec4()
	gl.UniformMatrix4fv(r.meshUniforms["uModel"], 1, false, world.Ptr())
	gl.Uniform4fv(r.meshUniforms["uColor"], 1, &c[0])
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
}

// upload returns the cached GPU mesh for a shape, generating it on first use.
func (r *Renderer) upload(shape mesh.Shape) *gpuMesh {
	if m, ok := r.meshes[shape]; ok {
		return m
	}

	data, err := mesh.Generate(shape)
	if err != nil {
		logger.Warn("skipping shape", zap.Stringer("shape", shape), zap.Error(err))
		r.meshes[shape] = nil
		return nil
	}

	m := &gpuMesh{count: int32(len(data.Indices))}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Vertices)*vertexStride, gl.Ptr(&data.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, gl.Ptr(&data.Indices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(0)

	// Normal attribute (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	logger.Debug("mesh uploaded",
		zap.Stringer("shape", shape),
		zap.Int("vertices", len(data.Vertices)),
		zap.Int32("indices", m.count),
	)
	r.meshes[shape] = m
	return m
}

func (r *Renderer) createLineBuffers() {
	gl.GenVertexArrays(1, &r.lineVAO)
	gl.BindVertexArray(r.lineVAO)

	gl.GenBuffers(1, &r.lineVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}
