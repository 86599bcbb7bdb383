package viewer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/trailkit/internal/engine/debug"
	"github.com/Faultbox/trailkit/internal/engine/lighting"
	"github.com/Faultbox/trailkit/internal/engine/shader"
	"github.com/Faultbox/trailkit/internal/viewer/overlay"
	"github.com/Faultbox/trailkit/internal/viewer/shaders"
	"github.com/Faultbox/trailkit/pkg/math"
	"github.com/Faultbox/trailkit/pkg/trail"
)

var (
	tubeColor  = [4]float32{0.95, 0.45, 0.2, 1}
	clearColor = [4]float32{0.08, 0.08, 0.11, 1}
)

// Scene is everything the renderer needs for one frame.
type Scene struct {
	View      math.Mat4
	CameraPos math.Vec3
	// Emitter places the emitter-local tube mesh in the world.
	Emitter math.Vec3
	Mesh    trail.Mesh
	Overlay *overlay.Overlay
}

// Renderer draws the tube and the debug overlay.
type Renderer struct {
	width, height int
	light         math.Vec3

	tubeProgram  *shader.Program
	colorProgram *shader.Program

	tube      *dynamicBuffer
	lines     *dynamicBuffer
	trail     *dynamicBuffer
	triangles *dynamicBuffer

	log *zap.Logger
}

// SetSun points the tube lighting at sun.
func (r *Renderer) SetSun(sun lighting.Sun) {
	r.light = sun.Direction()
}

// NewRenderer initializes OpenGL state and programs.
// Must be called after the OpenGL context exists.
func NewRenderer(width, height int, log *zap.Logger) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	r := &Renderer{log: log}

	var err error
	r.tubeProgram, err = shader.NewProgram(shaders.TubeVertexShader, shaders.TubeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("tube shader: %w", err)
	}
	r.colorProgram, err = shader.NewProgram(shaders.ColorVertexShader, shaders.ColorFragmentShader)
	if err != nil {
		r.tubeProgram.Delete()
		return nil, fmt.Errorf("color shader: %w", err)
	}

	r.tube = newDynamicBuffer(3, 3)
	r.lines = newDynamicBuffer(3, 4)
	r.trail = newDynamicBuffer(3, 4)
	r.triangles = newDynamicBuffer(3, 4)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3])

	r.Resize(width, height)
	return r, nil
}

// Resize sets the viewport in framebuffer pixels.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Projection returns the perspective matrix for the current viewport.
func (r *Renderer) Projection() math.Mat4 {
	aspect := float32(1)
	if r.height > 0 {
		aspect = float32(r.width) / float32(r.height)
	}
	return math.Perspective(0.9, aspect, 0.05, 500)
}

// Draw renders one frame.
func (r *Renderer) Draw(s Scene) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	viewProj := r.Projection().Mul(s.View)

	if !s.Mesh.Empty() {
		r.tube.upload(s.Mesh.Interleaved())

		// Tube triangles wind clockwise on their outer face.
		gl.Enable(gl.CULL_FACE)
		gl.FrontFace(gl.CW)
		gl.CullFace(gl.BACK)

		r.tubeProgram.Use()
		r.tubeProgram.SetMat4("uViewProj", viewProj)
		r.tubeProgram.SetMat4("uModel", math.Translate(s.Emitter.X, s.Emitter.Y, s.Emitter.Z))
		r.tubeProgram.SetVec3("uLightDir", r.light)
		r.tubeProgram.SetVec3("uCameraPos", s.CameraPos)
		r.tubeProgram.SetVec4("uColor", tubeColor[0], tubeColor[1], tubeColor[2], tubeColor[3])
		r.tube.draw(gl.TRIANGLES)

		gl.Disable(gl.CULL_FACE)
		gl.FrontFace(gl.CCW)
	}

	if s.Overlay == nil {
		return
	}

	r.colorProgram.Use()
	r.colorProgram.SetMat4("uViewProj", viewProj)

	r.triangles.upload(debug.Flatten(s.Overlay.Triangles))
	r.triangles.draw(gl.TRIANGLES)

	r.lines.upload(debug.Flatten(s.Overlay.Lines))
	r.lines.draw(gl.LINES)

	r.trail.upload(debug.Flatten(s.Overlay.Trail))
	r.trail.draw(gl.LINE_STRIP)
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	pixels := make([]byte, r.width*r.height*4)
	if len(pixels) == 0 {
		return pixels, r.width, r.height
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(r.width), int32(r.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, r.width, r.height
}

// Close frees GPU resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for _, b := range []*dynamicBuffer{r.tube, r.lines, r.trail, r.triangles} {
		if b != nil {
			b.delete()
		}
	}
	r.tubeProgram.Delete()
	r.colorProgram.Delete()
}
