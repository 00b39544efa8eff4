package trace

// mat4 is a row-major 4x4 transform used while flattening glTF node
// hierarchies. Line art only needs positions, so only the operations
// the loader uses are implemented.
type mat4 [16]float64

func identity4() mat4 {
	return mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func (m mat4) mul(o mat4) mat4 {
	var r mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * o[k*4+col]
			}
			r[row*4+col] = sum
		}
	}
	return r
}

// mulPoint transforms a position, assuming an affine bottom row.
func (m mat4) mulPoint(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3],
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7],
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11],
	}
}

func translate4(t Vec3) mat4 {
	m := identity4()
	m[3], m[7], m[11] = t.X, t.Y, t.Z
	return m
}

func scale4(s Vec3) mat4 {
	m := identity4()
	m[0], m[5], m[10] = s.X, s.Y, s.Z
	return m
}

// quat4 builds a rotation from an x,y,z,w quaternion.
func quat4(x, y, z, w float64) mat4 {
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	return mat4{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy), 0,
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx), 0,
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
}

// columnMajor4 converts a glTF column-major matrix to row-major.
func columnMajor4(v [16]float64) mat4 {
	var m mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			m[row*4+col] = v[col*4+row]
		}
	}
	return m
}
