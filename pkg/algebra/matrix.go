package algebra

// Mat2 is a row-major 2x2 matrix: m[row][col].
type Mat2[T Scalar] [2][2]T

// Mat3 is a row-major 3x3 matrix: m[row][col].
type Mat3[T Scalar] [3][3]T

// Mat4 is a row-major 4x4 matrix: m[row][col].
type Mat4[T Scalar] [4][4]T

// Identity2 returns the 2x2 identity matrix.
func Identity2[T Scalar]() Mat2[T] { return Mat2[T]{{1, 0}, {0, 1}} }

// Identity3 returns the 3x3 identity matrix.
func Identity3[T Scalar]() Mat3[T] { return Mat3[T]{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} }

// Identity4 returns the 4x4 identity matrix.
func Identity4[T Scalar]() Mat4[T] {
	return Mat4[T]{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

// Mat2FromSlice builds a Mat2 from four values in row-major order.
func Mat2FromSlice[T Scalar](s []T) (Mat2[T], error) {
	var m Mat2[T]
	if err := checkLen(4, len(s)); err != nil {
		return m, err
	}
	for i := range m {
		copy(m[i][:], s[i*2:])
	}
	return m, nil
}

// Mat3FromSlice builds a Mat3 from nine values in row-major order.
func Mat3FromSlice[T Scalar](s []T) (Mat3[T], error) {
	var m Mat3[T]
	if err := checkLen(9, len(s)); err != nil {
		return m, err
	}
	for i := range m {
		copy(m[i][:], s[i*3:])
	}
	return m, nil
}

// Mat4FromSlice builds a Mat4 from sixteen values in row-major order.
func Mat4FromSlice[T Scalar](s []T) (Mat4[T], error) {
	var m Mat4[T]
	if err := checkLen(16, len(s)); err != nil {
		return m, err
	}
	for i := range m {
		copy(m[i][:], s[i*4:])
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Mat2
// ---------------------------------------------------------------------------

// At returns the element at row, col.
func (m Mat2[T]) At(row, col int) T { return m[row][col] }

// Set stores v at row, col.
func (m *Mat2[T]) Set(row, col int, v T) { m[row][col] = v }

// Row returns row i.
func (m Mat2[T]) Row(i int) Vec2[T] { return Vec2[T](m[i]) }

// Col returns column j.
func (m Mat2[T]) Col(j int) Vec2[T] { return Vec2[T]{m[0][j], m[1][j]} }

// Add returns m + n.
func (m Mat2[T]) Add(n Mat2[T]) Mat2[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] += n[i][j]
		}
	}
	return m
}

// Sub returns m - n.
func (m Mat2[T]) Sub(n Mat2[T]) Mat2[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] -= n[i][j]
		}
	}
	return m
}

// Scale returns s ⋅ m.
func (m Mat2[T]) Scale(s T) Mat2[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= s
		}
	}
	return m
}

// Mul returns m ⋅ n.
func (m Mat2[T]) Mul(n Mat2[T]) Mat2[T] {
	var r Mat2[T]
	for i := range r {
		for j := range r[i] {
			for k := range m {
				r[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return r
}

// MulVec returns m ⋅ v, with v taken as a column vector.
func (m Mat2[T]) MulVec(v Vec2[T]) Vec2[T] {
	return Vec2[T]{m.Row(0).Dot(v), m.Row(1).Dot(v)}
}

// VecMul returns v ⋅ m, with v taken as a row vector.
func (m Mat2[T]) VecMul(v Vec2[T]) Vec2[T] {
	return Vec2[T]{m.Col(0).Dot(v), m.Col(1).Dot(v)}
}

// Transpose returns the transpose of m.
func (m Mat2[T]) Transpose() Mat2[T] {
	m.TransposeIn()
	return m
}

// TransposeIn transposes m in place and returns it.
func (m *Mat2[T]) TransposeIn() *Mat2[T] {
	m[0][1], m[1][0] = m[1][0], m[0][1]
	return m
}

// Det returns the determinant of m.
func (m Mat2[T]) Det() T { return m[0][0]*m[1][1] - m[0][1]*m[1][0] }

// Inverse returns the inverse of m. ok is false when m is singular.
func (m Mat2[T]) Inverse() (inv Mat2[T], ok bool) {
	det := m.Det()
	if det == 0 || !IsFinite(det) {
		return inv, false
	}
	idet := 1 / det
	inv[0][0] = m[1][1] * idet
	inv[0][1] = -m[0][1] * idet
	inv[1][0] = -m[1][0] * idet
	inv[1][1] = m[0][0] * idet
	return inv, true
}

// ---------------------------------------------------------------------------
// Mat3
// ---------------------------------------------------------------------------

// At returns the element at row, col.
func (m Mat3[T]) At(row, col int) T { return m[row][col] }

// Set stores v at row, col.
func (m *Mat3[T]) Set(row, col int, v T) { m[row][col] = v }

// Row returns row i.
func (m Mat3[T]) Row(i int) Vec3[T] { return Vec3[T](m[i]) }

// Col returns column j.
func (m Mat3[T]) Col(j int) Vec3[T] { return Vec3[T]{m[0][j], m[1][j], m[2][j]} }

// Add returns m + n.
func (m Mat3[T]) Add(n Mat3[T]) Mat3[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] += n[i][j]
		}
	}
	return m
}

// Sub returns m - n.
func (m Mat3[T]) Sub(n Mat3[T]) Mat3[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] -= n[i][j]
		}
	}
	return m
}

// Scale returns s ⋅ m.
func (m Mat3[T]) Scale(s T) Mat3[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= s
		}
	}
	return m
}

// Mul returns m ⋅ n.
func (m Mat3[T]) Mul(n Mat3[T]) Mat3[T] {
	var r Mat3[T]
	for i := range r {
		for j := range r[i] {
			for k := range m {
				r[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return r
}

// MulVec returns m ⋅ v, with v taken as a column vector.
func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] {
	return Vec3[T]{m.Row(0).Dot(v), m.Row(1).Dot(v), m.Row(2).Dot(v)}
}

// VecMul returns v ⋅ m, with v taken as a row vector.
func (m Mat3[T]) VecMul(v Vec3[T]) Vec3[T] {
	return Vec3[T]{m.Col(0).Dot(v), m.Col(1).Dot(v), m.Col(2).Dot(v)}
}

// Transpose returns the transpose of m.
func (m Mat3[T]) Transpose() Mat3[T] {
	m.TransposeIn()
	return m
}

// TransposeIn transposes m in place and returns it.
func (m *Mat3[T]) TransposeIn() *Mat3[T] {
	for i := range m {
		for j := i + 1; j < len(m); j++ {
			m[i][j], m[j][i] = m[j][i], m[i][j]
		}
	}
	return m
}

// Det returns the determinant of m by cofactor expansion along the first
// row.
func (m Mat3[T]) Det() T {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the inverse of m. ok is false when m is singular.
func (m Mat3[T]) Inverse() (inv Mat3[T], ok bool) {
	s0 := m[1][1]*m[2][2] - m[1][2]*m[2][1]
	s1 := m[1][0]*m[2][2] - m[1][2]*m[2][0]
	s2 := m[1][0]*m[2][1] - m[1][1]*m[2][0]
	det := m[0][0]*s0 - m[0][1]*s1 + m[0][2]*s2
	if det == 0 || !IsFinite(det) {
		return inv, false
	}
	idet := 1 / det
	inv[0][0] = s0 * idet
	inv[0][1] = -(m[0][1]*m[2][2] - m[0][2]*m[2][1]) * idet
	inv[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * idet
	inv[1][0] = -s1 * idet
	inv[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * idet
	inv[1][2] = -(m[0][0]*m[1][2] - m[0][2]*m[1][0]) * idet
	inv[2][0] = s2 * idet
	inv[2][1] = -(m[0][0]*m[2][1] - m[0][1]*m[2][0]) * idet
	inv[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * idet
	return inv, true
}

// ---------------------------------------------------------------------------
// Mat4
// ---------------------------------------------------------------------------

// At returns the element at row, col.
func (m Mat4[T]) At(row, col int) T { return m[row][col] }

// Set stores v at row, col.
func (m *Mat4[T]) Set(row, col int, v T) { m[row][col] = v }

// Row returns row i.
func (m Mat4[T]) Row(i int) Vec4[T] { return Vec4[T](m[i]) }

// Col returns column j.
func (m Mat4[T]) Col(j int) Vec4[T] {
	return Vec4[T]{m[0][j], m[1][j], m[2][j], m[3][j]}
}

// Add returns m + n.
func (m Mat4[T]) Add(n Mat4[T]) Mat4[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] += n[i][j]
		}
	}
	return m
}

// Sub returns m - n.
func (m Mat4[T]) Sub(n Mat4[T]) Mat4[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] -= n[i][j]
		}
	}
	return m
}

// Scale returns s ⋅ m.
func (m Mat4[T]) Scale(s T) Mat4[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= s
		}
	}
	return m
}

// Mul returns m ⋅ n.
func (m Mat4[T]) Mul(n Mat4[T]) Mat4[T] {
	var r Mat4[T]
	for i := range r {
		for j := range r[i] {
			for k := range m {
				r[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return r
}

// MulVec returns m ⋅ v, with v taken as a column vector.
func (m Mat4[T]) MulVec(v Vec4[T]) Vec4[T] {
	return Vec4[T]{m.Row(0).Dot(v), m.Row(1).Dot(v), m.Row(2).Dot(v), m.Row(3).Dot(v)}
}

// VecMul returns v ⋅ m, with v taken as a row vector.
func (m Mat4[T]) VecMul(v Vec4[T]) Vec4[T] {
	return Vec4[T]{m.Col(0).Dot(v), m.Col(1).Dot(v), m.Col(2).Dot(v), m.Col(3).Dot(v)}
}

// Transpose returns the transpose of m.
func (m Mat4[T]) Transpose() Mat4[T] {
	m.TransposeIn()
	return m
}

// TransposeIn transposes m in place and returns it.
func (m *Mat4[T]) TransposeIn() *Mat4[T] {
	for i := range m {
		for j := i + 1; j < len(m); j++ {
			m[i][j], m[j][i] = m[j][i], m[i][j]
		}
	}
	return m
}

// minor returns the 3x3 matrix left after removing row r and column c.
func (m Mat4[T]) minor(r, c int) Mat3[T] {
	var n Mat3[T]
	i := 0
	for row := range m {
		if row == r {
			continue
		}
		j := 0
		for col := range m[row] {
			if col == c {
				continue
			}
			n[i][j] = m[row][col]
			j++
		}
		i++
	}
	return n
}

// Det returns the determinant of m by cofactor expansion along the first
// row over its 3x3 minors.
func (m Mat4[T]) Det() T {
	var det T
	sign := T(1)
	for c := range m[0] {
		det += sign * m[0][c] * m.minor(0, c).Det()
		sign = -sign
	}
	return det
}

// Inverse returns the inverse of m. ok is false when m is singular.
func (m Mat4[T]) Inverse() (inv Mat4[T], ok bool) {
	s0 := m[0][0]*m[1][1] - m[0][1]*m[1][0]
	s1 := m[0][0]*m[1][2] - m[0][2]*m[1][0]
	s2 := m[0][0]*m[1][3] - m[0][3]*m[1][0]
	s3 := m[0][1]*m[1][2] - m[0][2]*m[1][1]
	s4 := m[0][1]*m[1][3] - m[0][3]*m[1][1]
	s5 := m[0][2]*m[1][3] - m[0][3]*m[1][2]
	c0 := m[2][0]*m[3][1] - m[2][1]*m[3][0]
	c1 := m[2][0]*m[3][2] - m[2][2]*m[3][0]
	c2 := m[2][0]*m[3][3] - m[2][3]*m[3][0]
	c3 := m[2][1]*m[3][2] - m[2][2]*m[3][1]
	c4 := m[2][1]*m[3][3] - m[2][3]*m[3][1]
	c5 := m[2][2]*m[3][3] - m[2][3]*m[3][2]
	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if det == 0 || !IsFinite(det) {
		return inv, false
	}
	idet := 1 / det
	inv[0][0] = (c5*m[1][1] - c4*m[1][2] + c3*m[1][3]) * idet
	inv[0][1] = (-c5*m[0][1] + c4*m[0][2] - c3*m[0][3]) * idet
	inv[0][2] = (s5*m[3][1] - s4*m[3][2] + s3*m[3][3]) * idet
	inv[0][3] = (-s5*m[2][1] + s4*m[2][2] - s3*m[2][3]) * idet
	inv[1][0] = (-c5*m[1][0] + c2*m[1][2] - c1*m[1][3]) * idet
	inv[1][1] = (c5*m[0][0] - c2*m[0][2] + c1*m[0][3]) * idet
	inv[1][2] = (-s5*m[3][0] + s2*m[3][2] - s1*m[3][3]) * idet
	inv[1][3] = (s5*m[2][0] - s2*m[2][2] + s1*m[2][3]) * idet
	inv[2][0] = (c4*m[1][0] - c2*m[1][1] + c0*m[1][3]) * idet
	inv[2][1] = (-c4*m[0][0] + c2*m[0][1] - c0*m[0][3]) * idet
	inv[2][2] = (s4*m[3][0] - s2*m[3][1] + s0*m[3][3]) * idet
	inv[2][3] = (-s4*m[2][0] + s2*m[2][1] - s0*m[2][3]) * idet
	inv[3][0] = (-c3*m[1][0] + c1*m[1][1] - c0*m[1][2]) * idet
	inv[3][1] = (c3*m[0][0] - c1*m[0][1] + c0*m[0][2]) * idet
	inv[3][2] = (-s3*m[3][0] + s1*m[3][1] - s0*m[3][2]) * idet
	inv[3][3] = (s3*m[2][0] - s1*m[2][1] + s0*m[2][2]) * idet
	return inv, true
}

// Equals compares m and n element-wise with tol.
func (m Mat4[T]) Equals(n Mat4[T], tol Tolerance[T]) bool {
	for i := range m {
		for j := range m[i] {
			if !tol.Equals(m[i][j], n[i][j]) {
				return false
			}
		}
	}
	return true
}
