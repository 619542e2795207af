package lighting

import "math"

// DirectionalLight shines from Position toward the origin.
type DirectionalLight struct {
	Position  [3]float32
	Color     [3]float32
	Intensity float32
}

// Direction returns the normalized direction toward the light.
func (d DirectionalLight) Direction() [3]float32 {
	p := d.Position
	l := float32(math.Sqrt(float64(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])))
	if l == 0 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{p[0] / l, p[1] / l, p[2] / l}
}

// Rig is the full set of lights for a scene.
type Rig struct {
	AmbientColor     [3]float32
	AmbientIntensity float32
	Directional      []DirectionalLight
	Points           []PointLight
}

// Ambient returns the ambient term premultiplied by its intensity.
func (r Rig) Ambient() [3]float32 {
	return [3]float32{
		r.AmbientColor[0] * r.AmbientIntensity,
		r.AmbientColor[1] * r.AmbientIntensity,
		r.AmbientColor[2] * r.AmbientIntensity,
	}
}

// DirectionalUniforms flattens directions and intensity-scaled colors for
// upload, truncated to MaxDirectionalLights.
func (r Rig) DirectionalUniforms() (dirs, colors []float32, count int) {
	dirs = make([]float32, MaxDirectionalLights*3)
	colors = make([]float32, MaxDirectionalLights*3)
	for i, d := range r.Directional {
		if i >= MaxDirectionalLights {
			break
		}
		dir := d.Direction()
		copy(dirs[i*3:], dir[:])
		for c := 0; c < 3; c++ {
			colors[i*3+c] = d.Color[c] * d.Intensity
		}
		count++
	}
	return dirs, colors, count
}

// PointBuffer returns the point lights in an upload buffer.
func (r Rig) PointBuffer() *PointLightBuffer {
	b := NewPointLightBuffer()
	b.SetLights(r.Points)
	return b
}
