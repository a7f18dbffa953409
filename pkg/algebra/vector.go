package algebra

// Vec2 is a 2-component vector.
type Vec2[T Scalar] [2]T

// Vec3 is a 3-component vector.
type Vec3[T Scalar] [3]T

// Vec4 is a 4-component vector.
type Vec4[T Scalar] [4]T

// Vec2FromSlice builds a Vec2 from exactly two values.
func Vec2FromSlice[T Scalar](s []T) (Vec2[T], error) {
	var v Vec2[T]
	if err := checkLen(len(v), len(s)); err != nil {
		return v, err
	}
	copy(v[:], s)
	return v, nil
}

// Vec3FromSlice builds a Vec3 from exactly three values.
func Vec3FromSlice[T Scalar](s []T) (Vec3[T], error) {
	var v Vec3[T]
	if err := checkLen(len(v), len(s)); err != nil {
		return v, err
	}
	copy(v[:], s)
	return v, nil
}

// Vec4FromSlice builds a Vec4 from exactly four values.
func Vec4FromSlice[T Scalar](s []T) (Vec4[T], error) {
	var v Vec4[T]
	if err := checkLen(len(v), len(s)); err != nil {
		return v, err
	}
	copy(v[:], s)
	return v, nil
}

// ---------------------------------------------------------------------------
// Vec2
// ---------------------------------------------------------------------------

// Add returns v + w.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] { return Vec2[T]{v[0] + w[0], v[1] + w[1]} }

// Sub returns v - w.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] { return Vec2[T]{v[0] - w[0], v[1] - w[1]} }

// Scale returns s ⋅ v.
func (v Vec2[T]) Scale(s T) Vec2[T] { return Vec2[T]{v[0] * s, v[1] * s} }

// Div returns v / s. Division by zero follows IEEE semantics.
func (v Vec2[T]) Div(s T) Vec2[T] { return Vec2[T]{v[0] / s, v[1] / s} }

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] { return Vec2[T]{-v[0], -v[1]} }

// Dot returns v ⋅ w.
func (v Vec2[T]) Dot(w Vec2[T]) T { return v[0]*w[0] + v[1]*w[1] }

// SquaredNorm returns v ⋅ v.
func (v Vec2[T]) SquaredNorm() T { return v.Dot(v) }

// Norm returns the euclidean length of v.
func (v Vec2[T]) Norm() T { return Sqrt(v.SquaredNorm()) }

// Normalize returns v divided by its length. A zero vector yields NaN
// components.
func (v Vec2[T]) Normalize() Vec2[T] { return v.Div(v.Norm()) }

// Equals compares v and w component-wise with tol.
func (v Vec2[T]) Equals(w Vec2[T], tol Tolerance[T]) bool {
	return tol.Equals(v[0], w[0]) && tol.Equals(v[1], w[1])
}

// AddIn sets v to v + w and returns v.
func (v *Vec2[T]) AddIn(w Vec2[T]) *Vec2[T] {
	v[0] += w[0]
	v[1] += w[1]
	return v
}

// SubIn sets v to v - w and returns v.
func (v *Vec2[T]) SubIn(w Vec2[T]) *Vec2[T] {
	v[0] -= w[0]
	v[1] -= w[1]
	return v
}

// ScaleIn sets v to s ⋅ v and returns v.
func (v *Vec2[T]) ScaleIn(s T) *Vec2[T] {
	v[0] *= s
	v[1] *= s
	return v
}

// ---------------------------------------------------------------------------
// Vec3
// ---------------------------------------------------------------------------

// Add returns v + w.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns v - w.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Scale returns s ⋅ v.
func (v Vec3[T]) Scale(s T) Vec3[T] { return Vec3[T]{v[0] * s, v[1] * s, v[2] * s} }

// Div returns v / s. Division by zero follows IEEE semantics.
func (v Vec3[T]) Div(s T) Vec3[T] { return Vec3[T]{v[0] / s, v[1] / s, v[2] / s} }

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-v[0], -v[1], -v[2]} }

// Dot returns v ⋅ w.
func (v Vec3[T]) Dot(w Vec3[T]) T { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] }

// Cross returns v × w.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// SquaredNorm returns v ⋅ v.
func (v Vec3[T]) SquaredNorm() T { return v.Dot(v) }

// Norm returns the euclidean length of v.
func (v Vec3[T]) Norm() T { return Sqrt(v.SquaredNorm()) }

// Normalize returns v divided by its length. A zero vector yields NaN
// components.
func (v Vec3[T]) Normalize() Vec3[T] { return v.Div(v.Norm()) }

// Equals compares v and w component-wise with tol.
func (v Vec3[T]) Equals(w Vec3[T], tol Tolerance[T]) bool {
	return tol.Equals(v[0], w[0]) && tol.Equals(v[1], w[1]) && tol.Equals(v[2], w[2])
}

// AddIn sets v to v + w and returns v.
func (v *Vec3[T]) AddIn(w Vec3[T]) *Vec3[T] {
	for i := range v {
		v[i] += w[i]
	}
	return v
}

// SubIn sets v to v - w and returns v.
func (v *Vec3[T]) SubIn(w Vec3[T]) *Vec3[T] {
	for i := range v {
		v[i] -= w[i]
	}
	return v
}

// ScaleIn sets v to s ⋅ v and returns v.
func (v *Vec3[T]) ScaleIn(s T) *Vec3[T] {
	for i := range v {
		v[i] *= s
	}
	return v
}

// CrossIn sets v to v × w and returns v.
func (v *Vec3[T]) CrossIn(w Vec3[T]) *Vec3[T] {
	*v = v.Cross(w)
	return v
}

// ---------------------------------------------------------------------------
// Vec4
// ---------------------------------------------------------------------------

// Add returns v + w.
func (v Vec4[T]) Add(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

// Sub returns v - w.
func (v Vec4[T]) Sub(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}

// Scale returns s ⋅ v.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Div returns v / s. Division by zero follows IEEE semantics.
func (v Vec4[T]) Div(s T) Vec4[T] {
	return Vec4[T]{v[0] / s, v[1] / s, v[2] / s, v[3] / s}
}

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] { return Vec4[T]{-v[0], -v[1], -v[2], -v[3]} }

// Dot returns v ⋅ w.
func (v Vec4[T]) Dot(w Vec4[T]) T {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] + v[3]*w[3]
}

// SquaredNorm returns v ⋅ v.
func (v Vec4[T]) SquaredNorm() T { return v.Dot(v) }

// Norm returns the euclidean length of v.
func (v Vec4[T]) Norm() T { return Sqrt(v.SquaredNorm()) }

// Normalize returns v divided by its length.
func (v Vec4[T]) Normalize() Vec4[T] { return v.Div(v.Norm()) }

// Equals compares v and w component-wise with tol.
func (v Vec4[T]) Equals(w Vec4[T], tol Tolerance[T]) bool {
	for i := range v {
		if !tol.Equals(v[i], w[i]) {
			return false
		}
	}
	return true
}

// AddIn sets v to v + w and returns v.
func (v *Vec4[T]) AddIn(w Vec4[T]) *Vec4[T] {
	for i := range v {
		v[i] += w[i]
	}
	return v
}

// SubIn sets v to v - w and returns v.
func (v *Vec4[T]) SubIn(w Vec4[T]) *Vec4[T] {
	for i := range v {
		v[i] -= w[i]
	}
	return v
}

// ScaleIn sets v to s ⋅ v and returns v.
func (v *Vec4[T]) ScaleIn(s T) *Vec4[T] {
	for i := range v {
		v[i] *= s
	}
	return v
}
