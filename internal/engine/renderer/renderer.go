// Package renderer draws the cube scene with OpenGL.
package renderer

import (
	"fmt"
	stdmath "math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/venture-cube/internal/engine/camera"
	"github.com/Faultbox/venture-cube/internal/engine/framebuffer"
	"github.com/Faultbox/venture-cube/internal/engine/mesh"
	"github.com/Faultbox/venture-cube/internal/engine/shader"
	"github.com/Faultbox/venture-cube/internal/logger"
	"github.com/Faultbox/venture-cube/internal/scene"
	"github.com/Faultbox/venture-cube/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int // drawable width in pixels
	Height int
	MSAA   int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	program *shader.Program
	meshes  map[*mesh.Geometry]*gpuMesh
	list    scene.DrawList

	// offscreen is created on the first scene capture.
	offscreen *framebuffer.Framebuffer
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
		meshes: make(map[*mesh.Geometry]*gpuMesh),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.CullFace(gl.BACK)
	if cfg.MSAA > 0 {
		gl.Enable(gl.MULTISAMPLE)
	}

	var err error
	r.program, err = shader.NewProgram(sceneVertexShader, sceneFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create scene shader: %w", err)
	}
	r.log.Debug("scene shader created", zap.Uint32("program", r.program.ID))

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer", zap.Int("meshes", len(r.meshes)))
	for g, m := range r.meshes {
		m.release()
		delete(r.meshes, g)
	}
	if r.offscreen != nil {
		r.offscreen.Destroy()
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles a drawable size change.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the drawable size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Begin starts a new frame, clearing to the given background color.
func (r *Renderer) Begin(background math.Vec3) {
	gl.Viewport(0, 0, int32(r.config.Width), int32(r.config.Height))
	gl.ClearColor(background.X, background.Y, background.Z, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawScene renders the scene from the camera: opaque nodes first, then
// transparent ones back to front without depth writes.
func (r *Renderer) DrawScene(s *scene.Scene, cam *camera.PerspectiveCamera) {
	r.program.Use()
	r.setFrameUniforms(s, cam)

	s.Collect(cam.Position, &r.list)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthMask(true)
	for _, it := range r.list.Opaque {
		r.drawItem(it)
	}

	gl.DepthMask(false)
	for _, it := range r.list.Transparent {
		r.drawItem(it)
	}
	gl.DepthMask(true)
	gl.Disable(gl.CULL_FACE)
	gl.BindVertexArray(0)
}

func (r *Renderer) setFrameUniforms(s *scene.Scene, cam *camera.PerspectiveCamera) {
	p := r.program
	p.SetMat4("uView", cam.ViewMatrix())
	p.SetMat4("uProjection", cam.ProjectionMatrix())
	p.SetVec3("uCameraPos", cam.Position.Arr())

	// Pixels per world unit at distance 1.
	fovRad := float64(cam.FOV) * stdmath.Pi / 180
	p.SetFloat("uPointScale", float32(float64(r.config.Height)/(2*stdmath.Tan(fovRad/2))))

	rig := s.Lights
	p.SetVec3("uAmbient", rig.Ambient())
	dirs, colors, n := rig.DirectionalUniforms()
	p.SetVec3Array("uDirDirections", dirs)
	p.SetVec3Array("uDirColors", colors)
	p.SetInt("uDirCount", int32(n))

	points := rig.PointBuffer()
	if points.Count > 0 {
		p.SetVec3Array("uPointPositions", points.GetPositions())
		p.SetVec3Array("uPointColors", points.GetColors())
		p.SetFloatArray("uPointRanges", points.GetRanges())
	}
	p.SetInt("uPointCount", int32(points.Count))

	p.SetVec3("uFogColor", s.Fog.Color.Arr())
	p.SetFloat("uFogNear", s.Fog.Near)
	p.SetFloat("uFogFar", s.Fog.Far)
}

func (r *Renderer) drawItem(it scene.DrawItem) {
	n := it.Node
	mat := n.Material
	gm, ok := r.meshes[n.Geometry]
	if !ok {
		gm = upload(n.Geometry)
		r.meshes[n.Geometry] = gm
	}

	if mat.DoubleSided || n.Geometry.Mode != mesh.Triangles {
		gl.Disable(gl.CULL_FACE)
	} else {
		gl.Enable(gl.CULL_FACE)
	}

	p := r.program
	p.SetMat4("uModel", it.World)
	p.SetMat3("uNormalMatrix", it.World.NormalMatrix())
	p.SetVec3("uColor", mat.Color.Arr())
	p.SetFloat("uOpacity", mat.Opacity)
	p.SetVec3("uEmissive", mat.Emissive.Scale(mat.EmissiveIntensity).Arr())
	p.SetFloat("uShininess", max(mat.Shininess, 1))
	p.SetBool("uUnlit", mat.Unlit || n.Geometry.Mode != mesh.Triangles)
	p.SetBool("uVertexColors", mat.VertexColors)
	p.SetFloat("uPointSize", mat.PointSize)

	gm.draw()
}

// ReadPixels reads the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// CaptureScene renders the scene alone into an offscreen target at the
// drawable size and returns it as bottom-up RGBA rows.
func (r *Renderer) CaptureScene(s *scene.Scene, cam *camera.PerspectiveCamera) ([]byte, int, int, error) {
	w, h := r.config.Width, r.config.Height
	if r.offscreen == nil {
		fb, err := framebuffer.New(w, h)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("offscreen target: %w", err)
		}
		r.offscreen = fb
	}
	r.offscreen.Resize(w, h)

	restore := r.offscreen.Bind()
	defer restore()
	r.Begin(s.Background)
	r.DrawScene(s, cam)
	return r.offscreen.ReadPixels(), w, h, nil
}
