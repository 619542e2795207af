package math

// Euler holds rotation angles in radians applied in X, Y, Z order:
// the resulting matrix is RotateX(X) * RotateY(Y) * RotateZ(Z).
type Euler struct {
	X, Y, Z float32
}

// Matrix returns the rotation matrix for the angles.
func (e Euler) Matrix() Mat4 {
	m := Identity()
	if e.X != 0 {
		m = m.Mul(RotateX(e.X))
	}
	if e.Y != 0 {
		m = m.Mul(RotateY(e.Y))
	}
	if e.Z != 0 {
		m = m.Mul(RotateZ(e.Z))
	}
	return m
}

// ApplyEuler rotates the direction v by e.
func (v Vec3) ApplyEuler(e Euler) Vec3 {
	d := e.Matrix().TransformDirection(v.Arr())
	return Vec3{d[0], d[1], d[2]}
}

// Compose builds a model matrix from translation, Euler rotation and scale
// (T * R * S).
func Compose(position Vec3, rotation Euler, scale Vec3) Mat4 {
	return Translate(position.X, position.Y, position.Z).
		Mul(rotation.Matrix()).
		Mul(Scale(scale.X, scale.Y, scale.Z))
}
