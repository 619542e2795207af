package lighting

import "testing"

func TestPointLightBufferTruncates(t *testing.T) {
	b := NewPointLightBuffer()
	lights := make([]PointLight, MaxPointLights+3)
	for i := range lights {
		lights[i] = PointLight{Position: [3]float32{float32(i), 0, 0}, Color: [3]float32{2, -1, 0.5}, Intensity: 2}
	}
	b.SetLights(lights)
	if b.Count != MaxPointLights {
		t.Fatalf("count = %d, want %d", b.Count, MaxPointLights)
	}
	if b.AddLight(PointLight{}) {
		t.Error("AddLight on a full buffer should fail")
	}

	colors := b.GetColors()
	if colors[0] != 2 || colors[1] != 0 || colors[2] != 1 {
		t.Errorf("first color = %v, want clamped and scaled (2, 0, 1)", colors[:3])
	}
	pos := b.GetPositions()
	if len(pos) != MaxPointLights*3 || pos[3] != 1 {
		t.Errorf("positions = %v", pos)
	}
}

func TestRigUniforms(t *testing.T) {
	r := Rig{
		AmbientColor:     [3]float32{1, 1, 1},
		AmbientIntensity: 0.3,
		Directional: []DirectionalLight{
			{Position: [3]float32{0, 0, -5}, Color: [3]float32{0, 1, 0}, Intensity: 0.5},
		},
	}
	if a := r.Ambient(); a != [3]float32{0.3, 0.3, 0.3} {
		t.Errorf("ambient = %v", a)
	}
	dirs, colors, n := r.DirectionalUniforms()
	if n != 1 {
		t.Fatalf("count = %d", n)
	}
	if dirs[0] != 0 || dirs[1] != 0 || dirs[2] != -1 {
		t.Errorf("direction = %v, want (0, 0, -1)", dirs[:3])
	}
	if colors[1] != 0.5 {
		t.Errorf("color = %v", colors[:3])
	}
	if got := (DirectionalLight{}).Direction(); got != [3]float32{0, 1, 0} {
		t.Errorf("zero position direction = %v", got)
	}
}
