package scene

import (
	gomath "math"
	"math/rand/v2"

	"github.com/Faultbox/venture-cube/internal/content"
	"github.com/Faultbox/venture-cube/internal/engine/mesh"
	"github.com/Faultbox/venture-cube/pkg/math"
)

const (
	pi    = float32(gomath.Pi)
	twoPi = 2 * pi
)

// builder creates dioramas and registers their animations.
type builder struct {
	rng   *rand.Rand
	scene *Scene
}

func (b *builder) animate(a Animation) {
	b.scene.Animations = append(b.scene.Animations, a)
}

// spread returns a uniform value in [-w/2, w/2).
func (b *builder) spread(w float32) float32 {
	return (b.rng.Float32() - 0.5) * w
}

func hex(v uint32) math.Vec3 { return content.Hex(v).Vec3() }

func cosf(a float32) float32 { return float32(gomath.Cos(float64(a))) }
func sinf(a float32) float32 { return float32(gomath.Sin(float64(a))) }

// droneDiorama: a quadcopter casting navigation beams over low-poly hills.
func (b *builder) droneDiorama() *Node {
	g := NewNode("diorama-drone")

	body := &Material{Color: hex(0x333333), Opacity: 1, Shininess: 80}
	g.Add(NewMesh("drone-body", mesh.Box(0.3, 0.08, 0.3), body))

	arm := Standard(hex(0x222222))
	rotor := Glow(hex(0xf97316), 0.3)
	armGeom := mesh.Cylinder(0.015, 0.015, 0.15, 8)
	rotorGeom := mesh.Torus(0.08, 0.01, 8, 16)
	for _, p := range [4][2]float32{{0.2, 0.2}, {-0.2, 0.2}, {0.2, -0.2}, {-0.2, -0.2}} {
		a := NewMesh("drone-arm", armGeom, arm).At(p[0]*0.5, 0, p[1]*0.5)
		a.Rotation = math.Euler{X: pi / 2, Z: float32(gomath.Atan2(float64(p[1]), float64(p[0])))}
		g.Add(a)

		r := NewMesh("drone-rotor", rotorGeom, rotor).At(p[0]*0.7, 0, p[1]*0.7)
		r.Rotation.X = pi / 2
		g.Add(r)
		b.animate(Animation{Node: r, Kind: AnimSpin, Axis: 2, Speed: 10})
	}

	beamGeom := mesh.Cone(0.02, 0.6, 8)
	for i := 0; i < 8; i++ {
		angle := float32(i) / 8 * twoPi
		beam := NewMesh("nav-beam", beamGeom, Basic(hex(0xf97316), 0.4)).At(cosf(angle)*0.1, -0.3, sinf(angle)*0.1)
		beam.Rotation.X = pi
		g.Add(beam)
		b.animate(Animation{Node: beam, Kind: AnimFlicker, Freq: 3, Phase: angle, Base: 0.2, Amp: 0.2})
		b.animate(Animation{Node: beam, Kind: AnimStretch, Axis: 1, Freq: 2, Phase: angle, Amp: 0.2})
	}

	hill := mesh.Cone(0.4, 0.3, 4)
	terrain := Standard(hex(0x1a1a2e))
	for i := 0; i < 5; i++ {
		m := NewMesh("hill", hill, terrain).At(b.spread(1.2), -0.6+b.rng.Float32()*0.1, b.spread(1.2))
		m.Scale = math.Vec3{X: 0.5 + b.rng.Float32()*0.5, Y: 0.5 + b.rng.Float32(), Z: 0.5 + b.rng.Float32()*0.5}
		g.Add(m)
	}
	return g
}

// bridgeDiorama: a bridge over water with a cleaning robot sweeping the deck.
func (b *builder) bridgeDiorama() *Node {
	g := NewNode("diorama-bridge")

	g.Add(NewMesh("deck", mesh.Box(1.5, 0.05, 0.4), Standard(hex(0x444444))).At(0, 0.1, 0))
	support := Standard(hex(0x666666))
	for _, x := range []float32{-0.5, 0.5} {
		g.Add(NewMesh("support", mesh.Box(0.08, 0.5, 0.08), support).At(x, -0.15, 0))
	}

	water := &Material{Color: hex(0x0066aa), Opacity: 0.6, Transparent: true, Shininess: 64}
	w := NewMesh("water", mesh.Plane(2, 1.5), water).At(0, -0.5, 0)
	w.Rotation.X = -pi / 2
	g.Add(w)

	robot := NewNode("cleaner").At(0, 0.15, 0.15)
	robot.Add(NewMesh("cleaner-base", mesh.Box(0.1, 0.1, 0.1), Glow(hex(0x22c55e), 0.2)))
	robot.Add(NewMesh("cleaner-arm", mesh.Box(0.02, 0.3, 0.02), Standard(hex(0x333333))).At(0, -0.15, 0))
	brush := NewMesh("brush", mesh.Cylinder(0.05, 0.05, 0.1, 8), Standard(hex(0x22c55e))).At(0, -0.3, 0)
	brush.Rotation.X = pi / 2
	robot.Add(brush)
	g.Add(robot)
	b.animate(Animation{Node: robot, Kind: AnimOscillate, Axis: 0, Freq: 0.5, Amp: 0.3})
	b.animate(Animation{Node: robot, Kind: AnimSway, Axis: 2, Freq: 2, Amp: 0.1})
	b.animate(Animation{Node: brush, Kind: AnimSpin, Axis: 2, Speed: 5})

	speck := mesh.Sphere(0.01, 8, 8)
	for i := 0; i < 20; i++ {
		offset := b.rng.Float32() * twoPi
		p := NewMesh("speck", speck, Basic(hex(0x22c55e), 0.6)).At(b.spread(0.3), 0.15+b.rng.Float32()*0.1, 0.15+b.spread(0.1))
		g.Add(p)
		b.animate(Animation{Node: p, Kind: AnimOscillate, Axis: 1, Freq: 3, Phase: offset, Base: 0.15, Amp: 0.05})
		b.animate(Animation{Node: p, Kind: AnimFlicker, Freq: 5, Phase: offset, Base: 0.3, Amp: 0.3})
	}
	return g
}

// dataDiorama: a glowing hub wired to a sphere of orbiting data nodes.
func (b *builder) dataDiorama() *Node {
	g := NewNode("diorama-data")

	violet := hex(0x8b5cf6)
	hub := NewMesh("data-hub", mesh.Icosahedron(0.15, 1), Glow(violet, 0.5))
	g.Add(hub)
	b.animate(Animation{Node: hub, Kind: AnimSpin, Axis: 0, Speed: 0.5})
	b.animate(Animation{Node: hub, Kind: AnimSpin, Axis: 1, Speed: 0.3})

	const count = 12
	node := mesh.Octahedron(0.05)
	ends := make([][3]float32, 0, count*2)
	for i := 0; i < count; i++ {
		// Fibonacci sphere placement.
		phi := gomath.Acos(-1 + 2*float64(i)/count)
		theta := gomath.Sqrt(count*gomath.Pi) * phi
		pos := sphericalToCartesian(0.5, phi, theta)

		n := NewMesh("data-node", node, Glow(violet, 0.3))
		n.Position = pos
		g.Add(n)
		b.animate(Animation{Node: n, Kind: AnimBreathe, Origin: pos, Freq: 2, Phase: float32(i) * 0.5, Amp: 0.1})

		ends = append(ends, [3]float32{}, pos.Arr())
	}
	g.Add(NewMesh("data-links", mesh.Segments(ends), Basic(violet, 0.3)))

	bit := mesh.Box(0.02, 0.02, 0.02)
	for i := 0; i < 30; i++ {
		p := NewMesh("data-bit", bit, Basic(math.Splat(1), 0.4)).At(b.spread(1.2), b.spread(1.2), b.spread(1.2))
		g.Add(p)
		// 0.01 units per frame at 60 fps.
		v := math.Vec3{X: b.spread(0.6), Y: b.spread(0.6), Z: b.spread(0.6)}
		b.animate(Animation{Node: p, Kind: AnimDrift, Velocity: v, Bound: 0.6})
	}
	return g
}

// sphericalToCartesian follows the radius/polar/azimuth convention with the
// pole on +Y.
func sphericalToCartesian(r, phi, theta float64) math.Vec3 {
	sinPhi := gomath.Sin(phi) * r
	return math.Vec3{
		X: float32(sinPhi * gomath.Sin(theta)),
		Y: float32(gomath.Cos(phi) * r),
		Z: float32(sinPhi * gomath.Cos(theta)),
	}
}

// chatDiorama: a phone with a chat thread and icons circling it.
func (b *builder) chatDiorama() *Node {
	g := NewNode("diorama-chat")

	g.Add(NewMesh("phone", mesh.Box(0.3, 0.5, 0.02), &Material{Color: hex(0x1a1a2e), Opacity: 1, Shininess: 48}))
	g.Add(NewMesh("screen", mesh.Plane(0.26, 0.44), Basic(hex(0x0d1117), 1)).At(0, 0, 0.011))

	bubbles := []struct {
		y     float32
		right bool
		color uint32
	}{
		{0.15, true, 0x06b6d4},
		{0.05, false, 0x22c55e},
		{-0.05, true, 0x06b6d4},
		{-0.15, false, 0x22c55e},
	}
	bubble := mesh.Plane(0.12, 0.06)
	for i, bd := range bubbles {
		x := float32(-0.05)
		if bd.right {
			x = 0.05
		}
		n := NewMesh("bubble", bubble, Basic(hex(bd.color), 0.8)).At(x, bd.y, 0.012)
		g.Add(n)
		delay := float32(i) * 0.3
		b.animate(Animation{Node: n, Kind: AnimOscillate, Axis: 1, Freq: 2, Phase: delay, Base: bd.y, Amp: 0.01})
		b.animate(Animation{Node: n, Kind: AnimFlicker, Freq: 3, Phase: delay, Base: 0.6, Amp: 0.2})
	}

	dot := mesh.Sphere(0.03, 8, 8)
	for i := 0; i < 4; i++ {
		angle := float32(i) / 4 * twoPi
		n := NewMesh("chat-icon", dot, Basic(hex(0x06b6d4), 0.6)).At(cosf(angle)*0.4, sinf(angle)*0.3, 0)
		g.Add(n)
		b.animate(Animation{Node: n, Kind: AnimOrbit, Axis: 0, Axis2: 1, Phase: angle, Speed: 0.5, Radius: math.Vec2{X: 0.4, Y: 0.3}})
	}
	return g
}

// aboutDiorama: an abstract figure with interest orbs circling it.
func (b *builder) aboutDiorama() *Node {
	g := NewNode("diorama-about")

	skin := Glow(hex(0xec4899), 0.2)
	g.Add(NewMesh("head", mesh.Icosahedron(0.12, 1), skin).At(0, 0.3, 0))
	torso := NewMesh("torso", mesh.Cone(0.15, 0.4, 5), skin)
	torso.Rotation.X = pi
	g.Add(torso)

	orb := mesh.Sphere(0.05, 16, 16)
	for i, c := range []uint32{0xf97316, 0x22c55e, 0x8b5cf6, 0x06b6d4} {
		angle := float32(i) / 4 * twoPi
		n := NewMesh("orb", orb, Glow(hex(c), 0.5)).At(cosf(angle)*0.4, 0.1, sinf(angle)*0.4)
		g.Add(n)
		b.animate(Animation{Node: n, Kind: AnimOrbit, Axis: 0, Axis2: 2, Phase: angle, Speed: 0.5, Radius: math.Vec2{X: 0.4, Y: 0.4}})
		b.animate(Animation{Node: n, Kind: AnimOscillate, Axis: 1, Freq: 2, Phase: angle, Base: 0.1, Amp: 0.05})
	}
	return g
}

// contactDiorama: a knotted hub linked to four channels, with pulse rings.
func (b *builder) contactDiorama() *Node {
	g := NewNode("diorama-contact")

	gold := hex(0xeab308)
	hubMat := Glow(gold, 0.3)
	hubMat.Shininess = 72
	hub := NewMesh("contact-hub", mesh.TorusKnot(0.15, 0.05, 64, 8), hubMat)
	g.Add(hub)
	b.animate(Animation{Node: hub, Kind: AnimSpin, Axis: 0, Speed: 0.5})
	b.animate(Animation{Node: hub, Kind: AnimSpin, Axis: 1, Speed: 0.3})

	point := mesh.Octahedron(0.06)
	ends := make([][3]float32, 0, 8)
	for i := 0; i < 4; i++ {
		angle := float32(i) * pi / 2
		m := &Material{Color: math.Splat(1), Emissive: gold, EmissiveIntensity: 0.2, Opacity: 1, Shininess: 32}
		n := NewMesh("channel", point, m).At(cosf(angle)*0.5, 0, sinf(angle)*0.5)
		g.Add(n)
		b.animate(Animation{Node: n, Kind: AnimPulse, Freq: 3, Phase: angle, Amp: 0.2})
		ends = append(ends, [3]float32{}, n.Position.Arr())
	}
	g.Add(NewMesh("channel-links", mesh.Segments(ends), Basic(gold, 0.4)))

	for i := 0; i < 3; i++ {
		inner := 0.3 + float32(i)*0.15
		ringMat := Basic(gold, 0.2-float32(i)*0.05)
		ringMat.DoubleSided = true
		r := NewMesh("pulse-ring", mesh.Ring(inner, inner+0.02, 32), ringMat)
		r.Rotation.X = pi / 2
		g.Add(r)
		b.animate(Animation{Node: r, Kind: AnimRipple, Speed: 0.3, Phase: float32(i) * 0.5, Base: 0.3})
	}
	return g
}

// particles scatters points in a 20-unit cube, slowly tumbling.
func (b *builder) particles(count int) *Node {
	palette := []math.Vec3{hex(0x6366f1), hex(0xf97316), hex(0x22c55e), hex(0x8b5cf6)}
	positions := make([][3]float32, count)
	colors := make([][3]float32, count)
	for i := range positions {
		positions[i] = [3]float32{b.spread(20), b.spread(20), b.spread(20)}
		colors[i] = palette[b.rng.IntN(len(palette))].Arr()
	}

	m := Basic(math.Splat(1), 0.6)
	m.VertexColors = true
	m.PointSize = 0.03
	n := NewMesh("particles", mesh.PointCloud(positions, colors), m)
	b.animate(Animation{Node: n, Kind: AnimSpin, Axis: 1, Speed: 0.02})
	b.animate(Animation{Node: n, Kind: AnimSpin, Axis: 0, Speed: 0.01})
	return n
}
