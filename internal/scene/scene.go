package scene

import (
	"math/rand/v2"

	"github.com/Faultbox/venture-cube/internal/content"
	"github.com/Faultbox/venture-cube/internal/cube"
	"github.com/Faultbox/venture-cube/internal/engine/lighting"
	"github.com/Faultbox/venture-cube/internal/engine/mesh"
	"github.com/Faultbox/venture-cube/internal/engine/picking"
	"github.com/Faultbox/venture-cube/pkg/math"
)

// Cube dimensions.
const (
	CubeSize    = 2
	FaceOffset  = 0.01
	PlaneScale  = 0.9
	CornerSize  = 0.15
	CornerInset = 0.4 // corner center, as a fraction of CubeSize
)

// Fog is linear distance fog.
type Fog struct {
	Color math.Vec3
	Near  float32
	Far   float32
}

// Options tune scene construction.
type Options struct {
	Seed          uint64
	ParticleCount int
	// DioramaScale scales each face diorama.
	DioramaScale float32
	// DioramaOffset pushes each diorama from the center toward its face.
	DioramaOffset float32
}

// DefaultOptions returns the standard scene.
func DefaultOptions() Options {
	return Options{
		Seed:          1,
		ParticleCount: 500,
		DioramaScale:  0.45,
		DioramaOffset: 0.45,
	}
}

// Scene is the complete cube scene.
type Scene struct {
	Root *Node
	// Group carries the controller's orientation; every cube part hangs off it.
	Group     *Node
	Particles *Node

	Background math.Vec3
	Fog        Fog
	Lights     lighting.Rig

	Faces      [cube.Count]*Node
	Dioramas   [cube.Count]*Node
	Pickables  []*Node
	Animations []Animation

	time float32
}

// SetOrientation applies pitch (X) and yaw (Y) to the cube group.
func (s *Scene) SetOrientation(pitch, yaw float32) {
	s.Group.Rotation = math.Euler{X: pitch, Y: yaw}
}

// Update advances animations by dt seconds and recomputes world transforms.
func (s *Scene) Update(dt float32) {
	s.time += dt
	Animate(s.Animations, s.time, dt)
	s.Root.UpdateWorld(math.Identity())
}

// Time returns the accumulated scene time.
func (s *Scene) Time() float32 { return s.time }

// PickTargets returns the picking targets for every pickable node, in the
// order of Pickables. World transforms must be current.
func (s *Scene) PickTargets() []picking.Target {
	targets := make([]picking.Target, len(s.Pickables))
	for i, n := range s.Pickables {
		b := n.Geometry.Bounds
		targets[i] = picking.Target{
			World:  n.World(),
			Bounds: picking.NewAABB(b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2]),
		}
	}
	return targets
}

// PickFace returns the face whose plane or corner is hit first by a world ray.
// A ray that reaches the glass cube first, e.g. through the margin around a
// face plane, picks nothing.
func (s *Scene) PickFace(ray picking.Ray) (cube.FaceID, bool) {
	hit, ok := picking.Pick(ray, s.PickTargets())
	if !ok {
		return 0, false
	}
	p := s.Pickables[hit.Index].Pick
	if p.Occluder {
		return 0, false
	}
	return p.Face, true
}

// Build constructs the cube scene from the content table.
func Build(table *content.Table, opts Options) *Scene {
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))

	s := &Scene{
		Root:       NewNode("root"),
		Group:      NewNode("cube"),
		Background: content.Hex(0x0a0a0f).Vec3(),
		Fog:        Fog{Color: content.Hex(0x0a0a0f).Vec3(), Near: 8, Far: 25},
		Lights:     defaultLights(),
	}
	s.Root.Add(s.Group)

	glass := &Material{Color: math.Splat(1), Opacity: 0.12, Transparent: true, Shininess: 96}
	body := NewMesh("glass", mesh.Box(CubeSize, CubeSize, CubeSize), glass)
	body.Pick = &Pick{Occluder: true}
	s.Group.Add(body)
	s.Pickables = append(s.Pickables, body)
	s.Group.Add(NewMesh("edges", mesh.BoxEdges(CubeSize, CubeSize, CubeSize), Basic(content.Hex(0x6366f1).Vec3(), 0.6)))

	s.buildFaces(table)

	b := &builder{rng: rng, scene: s}
	dioramas := [cube.Count]func() *Node{
		cube.Front:  b.droneDiorama,
		cube.Back:   b.bridgeDiorama,
		cube.Right:  b.dataDiorama,
		cube.Left:   b.chatDiorama,
		cube.Top:    b.aboutDiorama,
		cube.Bottom: b.contactDiorama,
	}
	for _, face := range cube.Faces {
		d := dioramas[face.ID]()
		d.Position = face.Normal.Scale(opts.DioramaOffset)
		d.Scale = math.Splat(opts.DioramaScale)
		s.Dioramas[face.ID] = d
		s.Group.Add(d)
	}

	s.Particles = b.particles(opts.ParticleCount)
	s.Root.Add(s.Particles)

	s.Root.UpdateWorld(math.Identity())
	return s
}

// buildFaces adds the tinted face planes and their corner accents. Each face
// gets a mount node placing a +Z quad onto the face.
func (s *Scene) buildFaces(table *content.Table) {
	plane := mesh.Plane(CubeSize*PlaneScale, CubeSize*PlaneScale)
	corner := mesh.Plane(CornerSize, CornerSize)
	inset := float32(CubeSize * CornerInset)

	for _, face := range cube.Faces {
		color := math.Splat(1)
		if e, ok := table.Entry(face.ID); ok {
			color = e.Color.Vec3()
		}

		mount := NewNode("face-" + face.ID.String())
		mount.Position = face.Normal.Scale(CubeSize/2 + FaceOffset)
		mount.Rotation = face.Rotation

		planeMat := Basic(color, 0.05)
		planeMat.DoubleSided = true
		p := NewMesh("plane-"+face.ID.String(), plane, planeMat)
		p.Pick = &Pick{Face: face.ID}
		mount.Add(p)
		s.Pickables = append(s.Pickables, p)

		for _, xy := range [4][2]float32{{-inset, inset}, {inset, inset}, {-inset, -inset}, {inset, -inset}} {
			c := NewMesh("corner-"+face.ID.String(), corner, Basic(color, 0.8)).At(xy[0], xy[1], 0.001)
			c.Pick = &Pick{Face: face.ID, Corner: true}
			mount.Add(c)
			s.Pickables = append(s.Pickables, c)
		}

		s.Faces[face.ID] = mount
		s.Group.Add(mount)
	}
}

func defaultLights() lighting.Rig {
	white := [3]float32{1, 1, 1}
	return lighting.Rig{
		AmbientColor:     white,
		AmbientIntensity: 0.3,
		Directional: []lighting.DirectionalLight{
			{Position: [3]float32{5, 5, 5}, Color: white, Intensity: 1},
			{Position: [3]float32{0, 0, -5}, Color: content.Hex(0x22c55e).Vec3().Arr(), Intensity: 0.5},
		},
		Points: []lighting.PointLight{
			{Position: [3]float32{-3, 2, 3}, Color: content.Hex(0x6366f1).Vec3().Arr(), Range: 10, Intensity: 2},
			{Position: [3]float32{3, -2, 3}, Color: content.Hex(0xf97316).Vec3().Arr(), Range: 10, Intensity: 1.5},
		},
	}
}
