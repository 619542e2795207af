// Package lighting describes the scene light rig and flattens it for GPU upload.
package lighting

// MaxPointLights is the maximum number of point lights supported in shaders.
const MaxPointLights = 4

// MaxDirectionalLights is the maximum number of directional lights supported in shaders.
const MaxDirectionalLights = 2

// PointLight represents a point light source for GPU upload.
type PointLight struct {
	Position  [3]float32 // World position
	Color     [3]float32 // RGB color (0-1 range)
	Range     float32    // Distance at which the light fades out; 0 means no falloff
	Intensity float32
}

// PointLightBuffer holds lights for GPU upload.
type PointLightBuffer struct {
	Lights []PointLight
	Count  int
}

// NewPointLightBuffer creates an empty point light buffer.
func NewPointLightBuffer() *PointLightBuffer {
	return &PointLightBuffer{
		Lights: make([]PointLight, 0, MaxPointLights),
	}
}

// Clear removes all lights from the buffer.
func (b *PointLightBuffer) Clear() {
	b.Lights = b.Lights[:0]
	b.Count = 0
}

// AddLight adds a point light to the buffer.
// Returns false if buffer is full.
func (b *PointLightBuffer) AddLight(light PointLight) bool {
	if b.Count >= MaxPointLights {
		return false
	}
	b.Lights = append(b.Lights, clampLight(light))
	b.Count++
	return true
}

// SetLights replaces all lights in the buffer.
// Truncates to MaxPointLights if necessary.
func (b *PointLightBuffer) SetLights(lights []PointLight) {
	b.Clear()
	for _, l := range lights {
		if !b.AddLight(l) {
			break
		}
	}
}

func clampLight(l PointLight) PointLight {
	for i := 0; i < 3; i++ {
		if l.Color[i] > 1 {
			l.Color[i] = 1
		}
		if l.Color[i] < 0 {
			l.Color[i] = 0
		}
	}
	if l.Range < 0 {
		l.Range = 0
	}
	return l
}

// GetPositions returns positions as a flat float32 slice for GPU upload.
// Format: [x0, y0, z0, x1, y1, z1, ...]
func (b *PointLightBuffer) GetPositions() []float32 {
	result := make([]float32, MaxPointLights*3)
	for i, light := range b.Lights {
		copy(result[i*3:], light.Position[:])
	}
	return result
}

// GetColors returns colors premultiplied by intensity.
// Format: [r0, g0, b0, r1, g1, b1, ...]
func (b *PointLightBuffer) GetColors() []float32 {
	result := make([]float32, MaxPointLights*3)
	for i, light := range b.Lights {
		result[i*3+0] = light.Color[0] * light.Intensity
		result[i*3+1] = light.Color[1] * light.Intensity
		result[i*3+2] = light.Color[2] * light.Intensity
	}
	return result
}

// GetRanges returns ranges as a flat float32 slice for GPU upload.
func (b *PointLightBuffer) GetRanges() []float32 {
	result := make([]float32, MaxPointLights)
	for i, light := range b.Lights {
		result[i] = light.Range
	}
	return result
}
