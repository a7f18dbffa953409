package engine

import (
	"fmt"
	"math"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/hgeom/pkg/algebra"
	"github.com/chazu/hgeom/pkg/geometry"
	"github.com/chazu/hgeom/pkg/scene"
)

// builder is the state shared by the builtins of one evaluation.
type builder struct {
	scene   *scene.Scene
	tol     algebra.Tolerance[float64]
	palette []scene.Color
}

// namedColors are accepted by the :color keyword in addition to hex strings.
var namedColors = map[string]string{
	"red":     "#e6194b",
	"green":   "#3cb44b",
	"blue":    "#4363d8",
	"yellow":  "#ffe119",
	"orange":  "#f58231",
	"purple":  "#911eb4",
	"cyan":    "#42d4f4",
	"magenta": "#f032e6",
	"white":   "#ffffff",
	"black":   "#000000",
	"grey":    "#a9a9a9",
}

type builtin func(b *builder, args []zygo.Sexp) (zygo.Sexp, error)

// builtins maps script names, after kebab-case conversion, to their
// implementations.
var builtins = map[string]builtin{
	"vertex":           bVertex,
	"vertex2":          bVertex2,
	"direction":        bDirection,
	"line":             bLine,
	"plane":            bPlane,
	"plane_at":         bPlaneAt,
	"plane_through":    bPlaneThrough,
	"translation":      bTranslation,
	"rotate_x":         bRotateAxis(geometry.RotationX[float64]),
	"rotate_y":         bRotateAxis(geometry.RotationY[float64]),
	"rotate_z":         bRotateAxis(geometry.RotationZ[float64]),
	"rotate_about":     bRotateAbout,
	"scaling":          bScaling,
	"matrix":           bMatrix,
	"compose":          bCompose,
	"inverse":          bInverse,
	"transformed":      bTransformed,
	"trail":            bTrail,
	"point_on":         bPointOn,
	"x_of":             bCoord(0),
	"y_of":             bCoord(1),
	"z_of":             bCoord(2),
	"w_of":             bCoord(3),
	"valid":            bValid,
	"distance":         bDistance,
	"angle":            bAngle,
	"parallel":         bParallel,
	"intersect":        bIntersect,
	"shortest_segment": bShortestSegment,
	"deg":              bDeg,
	"points":           bRecord(scene.KindPoints),
	"segments":         bRecord(scene.KindSegments),
	"strip":            bRecord(scene.KindStrip),
}

// registerBuiltins installs every builtin into env. Errors are prefixed
// with the script-facing name.
func registerBuiltins(env *zygo.Zlisp, b *builder) {
	for name, fn := range builtins {
		fn := fn
		env.AddFunction(name, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			res, err := fn(b, args)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", scriptName(name), err)
			}
			return res, nil
		})
	}
}

// scriptName turns a registered name back into the kebab-case form users
// write.
func scriptName(name string) string {
	out := []byte(name)
	for i, c := range out {
		if c == '_' {
			out[i] = '-'
		}
	}
	return string(out)
}

func arity(args []zygo.Sexp, counts ...int) error {
	for _, n := range counts {
		if len(args) == n {
			return nil
		}
	}
	return fmt.Errorf("expected %v arguments, got %d", counts, len(args))
}

func boolSexp(b bool) zygo.Sexp   { return &zygo.SexpBool{Val: b} }
func floatSexp(f float64) zygo.Sexp { return &zygo.SexpFloat{Val: f} }

// ---------------------------------------------------------------------------
// Primitives
// ---------------------------------------------------------------------------

// (vertex x y z) or (vertex x y z w)
func bVertex(_ *builder, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(args, 3, 4); err != nil {
		return nil, err
	}
	c, err := toFloats(args)
	if err != nil {
		return nil, err
	}
	if len(c) == 4 {
		return &sexpVertex{geometry.NewHVertex3(c[0], c[1], c[2], c[3])}, nil
	}
	return &sexpVertex{geometry.NewVertex3(c[0], c[1], c[2])}, nil
}

// (vertex2 x y) or (vertex2 x y w)
func bVertex2(_ *builder, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(args, 2, 3); err != nil {
		return nil, err
	}
	c, err := toFloats(args)
	if err != nil {
		return nil, err
	}
	if len(c) == 3 {
		return &sexpVertex2{geometry.NewHVertex2(c[0], c[1], c[2])}, nil
	}
	return &sexpVertex2{geometry.NewVertex2(c[0], c[1])}, nil
}

// (direction dx dy dz), normalized; (direction plane) yields its normal.
func bDirection(_ *builder, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) == 1 {
		if p, ok := args[0].(*sexpPlane); ok {
			return &sexpDirection{p.p.Normal()}, nil
		}
	}
	if err := arity(args, 3); err != nil {
		return nil, err
	}
	c, err := toFloats(args)
	if err != nil {
		return nil, err
	}
	return &sexpDirection{geometry.NewDirection3(c[0], c[1], c[2])}, nil
}

// (line base direction) or (line from-vertex to-vertex)
func bLine(_ *builder, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(args, 2); err != nil {
		return nil, err
	}
	base, err := toVertex(args[0])
	if err != nil {
		return nil, err
	}
	if to, ok := args[1].(*sexpVertex); ok {
		return &sexpLine{geometry.LineThrough3(base, to.v)}, nil
	}
	dir, err := toDirection(args[1])
	if err != nil {
		return nil, err
	}
	return &sexpLine{geometry.NewLine3(base, dir)}, nil
}

// (plane a b c d)
func bPlane(_ *builder, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(args, 4); err != nil {
		return nil, err
	}
	c, err := toFloats(args)
	if err != nil {
		return nil, err
	}
	return &sexpPlane{geometry.NewPlane3(c[0], c[1], c[2], c[3])}, nil
}

// (plane-at vertex normal)
func bPlaneAt(_ *builder, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(args, 2); err != nil {
		return nil, err
	}
	p, err := toVertex(args[0])
	if err != nil {
		return nil, err
	}
	n, err := toDirection(args[1])
	if err != nil {
		return nil, err
	}
	return &sexpPlane{geometry.PlaneAt3(p, n)}, nil
}

// (plane-through v1 v2 v3)
func bPlaneThrough(_ *builder, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(args, 3); err != nil {
		return nil, err
	}
	vs, err := collectVertices(args)
	if err != nil {
		return nil, err
	}
	return &sexpPlane{geometry.PlaneThrough3(vs[0], vs[1], vs[2])}, nil
}

// ---------------------------------------------------------------------------
// Transformations
// ---------------------------------------------------------------------------

// (translation dx dy dz)
func bTranslation(_ *builder, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(args, 3); err != nil {
		return nil, err
	}
	c, err := toFloats(args)
	if err != nil {
		return nil, err
	}
	return &sexpTransform{geometry.Translation3(c[0], c[1], c[2])}, nil
}

// (rotate-x radians) and friends
func bRotateAxis(rot func(float64) geometry.Transform3[float64]) builtin {
	return func(_ *builder, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		a, err := toFloat64(args[0])
		if err != nil {
			return nil, err
		}
		return &sexpTransform{rot(a)}, nil
	}
}

// (rotate-about direction radians) rotates about an axis through the
// origin; (rotate-about line radians) about an arbitrary line.
func bRotateAbout(_ *builder, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(args, 2); err != nil {
		return nil, err
	}
	a, err := toFloat64(args[1])
	if err != nil {
		return nil, err
	}
	switch axis := args[0].(type) {
	case *sexpDirection:
		return &sexpTransform{geometry.RotationAbout(axis.d, a)}, nil
	case *sexpLine:
		return &sexpTransform{geometry.RotationAboutLine(axis.l, a)}, nil
	}
	return nil, fmt.Errorf("expected direction or line, got %s", describe(args[0]))
}

// (scaling s), (scaling sx sy sz), optionally with :center vertex
func bScaling(_ *builder, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	if err := arity(pa.positional, 1, 3); err != nil {
		return nil, err
	}
	s, err := toFloats(pa.positional)
	if err != nil {
		return nil, err
	}
	if len(s) == 1 {
		s = []float64{s[0], s[0], s[0]}
	}
	if c, ok := pa.kw["center"]; ok {
		center, err := toVertex(c)
		if err != nil {
			return nil, fmt.Errorf("center: %w", err)
		}
		return &sexpTransform{geometry.ScalingAbout3(center, s[0], s[1], s[2])}, nil
	}
	return &sexpTransform{geometry.Scaling3(s[0], s[1], s[2])}, nil
}

// (matrix a11 a12 ... a44), row-major
func bMatrix(_ *builder, args []zygo.Sexp) (zygo.Sexp, error) {
	c, err := toFloats(args)
	if err != nil {
		return nil, err
	}
	m, err := algebra.Mat4FromSlice(c)
	if err != nil {
		return nil, err
	}
	return &sexpTransform{geometry.NewTransform3(m)}, nil
}

// (compose t1 t2 ...) applies t1 first.
func bCompose(_ *builder, args []zygo.Sexp) (zygo.Sexp, error) {
	out := geometry.IdentityTransform3[float64]()
	for i, a := range args {
		t, err := toTransform(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out = out.Then(t)
	}
	return &sexpTransform{out}, nil
}

// (inverse t)
func bInverse(_ *builder, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(args, 1); err != nil {
		return nil, err
	}
	t, err := toTransform(args[0])
	if err != nil {
		return nil, err
	}
	inv, ok := t.Inverse()
	if !ok {
		return nil, fmt.Errorf("transform is singular")
	}
	return &sexpTransform{inv}, nil
}

// (transformed t value) applies t to a vertex, direction, line or list of
// vertices.
func bTransformed(_ *builder, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(args, 2); err != nil {
		return nil, err
	}
	t, err := toTransform(args[0])
	if err != nil {
		return nil, err
	}
	switch v := args[1].(type) {
	case *sexpVertex:
		return &sexpVertex{v.v.Transformed(t)}, nil
	case *sexpDirection:
		return &sexpDirection{v.d.Transformed(t)}, nil
	case *sexpLine:
		return &sexpLine{v.l.Transformed(t)}, nil
	}
	vs, err := collectVertices(args[1:])
	if err != nil {
		return nil, err
	}
	for i := range vs {
		vs[i].Transform(t)
	}
	return vertexList(vs), nil
}

// MaxTrailSteps bounds the number of steps trail will take.
const MaxTrailSteps = 1 << 16

// (trail vertex t n) returns vertex followed by n successive applications
// of t.
func bTrail(_ *builder, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(args, 3); err != nil {
		return nil, err
	}
	v, err := toVertex(args[0])
	if err != nil {
		return nil, err
	}
	t, err := toTransform(args[1])
	if err != nil {
		return nil, err
	}
	n, err := toFloat64(args[2])
	if err != nil {
		return nil, err
	}
	if n < 0 || n != math.Trunc(n) {
		return nil, fmt.Errorf("step count must be a non-negative integer, got %g", n)
	}
	if n > MaxTrailSteps {
		return nil, fmt.Errorf("step count %g exceeds the limit of %d", n, MaxTrailSteps)
	}
	out := make([]geometry.Vertex3[float64], 0, int(n)+1)
	out = append(out, v)
	for i := 0; i < int(n); i++ {
		v.Transform(t)
		out = append(out, v)
	}
	return vertexList(out), nil
}

// (point-on line mu) returns base + mu*dir.
func bPointOn(_ *builder, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(args, 2); err != nil {
		return nil, err
	}
	l, err := toLine(args[0])
	if err != nil {
		return nil, err
	}
	mu, err := toFloat64(args[1])
	if err != nil {
		return nil, err
	}
	return &sexpVertex{l.At(mu)}, nil
}

// ---------------------------------------------------------------------------
// Accessors and predicates
// ---------------------------------------------------------------------------

// (x-of v) and friends; index 3 is the raw weight.
func bCoord(i int) builtin {
	return func(_ *builder, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		switch v := args[0].(type) {
		case *sexpVertex:
			return floatSexp([]float64{v.v.X(), v.v.Y(), v.v.Z(), v.v.W()}[i]), nil
		case *sexpVertex2:
			if i == 2 {
				return nil, fmt.Errorf("2d vertex has no z")
			}
			return floatSexp([]float64{v.v.X(), v.v.Y(), 0, v.v.W()}[i]), nil
		case *sexpDirection:
			if i == 3 {
				return nil, fmt.Errorf("direction has no weight")
			}
			return floatSexp(v.d.Vec()[i]), nil
		}
		return nil, fmt.Errorf("expected vertex or direction, got %s", describe(args[0]))
	}
}

// (valid value) reports whether a geometric value is finite.
func bValid(_ *builder, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(args, 1); err != nil {
		return nil, err
	}
	var p geometry.Primitive
	switch v := args[0].(type) {
	case *sexpVertex:
		p = v.v
	case *sexpVertex2:
		p = v.v
	case *sexpDirection:
		p = v.d
	case *sexpLine:
		p = v.l
	case *sexpPlane:
		p = v.p
	default:
		return nil, fmt.Errorf("expected a geometric value, got %s", describe(args[0]))
	}
	return boolSexp(p.IsValid()), nil
}

// ---------------------------------------------------------------------------
// Metric and relational queries
// ---------------------------------------------------------------------------

// (distance a b) for any pair of vertices, lines and planes.
func bDistance(bld *builder, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(args, 2); err != nil {
		return nil, err
	}
	switch a := args[0].(type) {
	case *sexpVertex:
		switch b := args[1].(type) {
		case *sexpVertex:
			return floatSexp(geometry.DistanceVertices3(a.v, b.v)), nil
		case *sexpLine:
			return floatSexp(geometry.DistanceVertexLine(a.v, b.l)), nil
		case *sexpPlane:
			return floatSexp(geometry.DistanceVertexPlane(a.v, b.p)), nil
		}
	case *sexpVertex2:
		if b, ok := args[1].(*sexpVertex2); ok {
			return floatSexp(geometry.DistanceVertices2(a.v, b.v)), nil
		}
	case *sexpLine:
		switch b := args[1].(type) {
		case *sexpVertex:
			return floatSexp(geometry.DistanceLineVertex(a.l, b.v)), nil
		case *sexpLine:
			return floatSexp(geometry.DistanceLines(a.l, b.l, bld.tol)), nil
		}
	case *sexpPlane:
		switch b := args[1].(type) {
		case *sexpVertex:
			return floatSexp(geometry.DistancePlaneVertex(a.p, b.v)), nil
		case *sexpPlane:
			return floatSexp(geometry.DistancePlanes(a.p, b.p, bld.tol)), nil
		}
	}
	return nil, fmt.Errorf("unsupported operands %s and %s", describe(args[0]), describe(args[1]))
}

// (angle p1 p2) between planes or directions, in radians.
func bAngle(_ *builder, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(args, 2); err != nil {
		return nil, err
	}
	switch a := args[0].(type) {
	case *sexpPlane:
		if b, ok := args[1].(*sexpPlane); ok {
			return floatSexp(geometry.AnglePlanes(a.p, b.p)), nil
		}
	case *sexpDirection:
		if b, ok := args[1].(*sexpDirection); ok {
			return floatSexp(geometry.AngleDirections(a.d, b.d)), nil
		}
	}
	return nil, fmt.Errorf("unsupported operands %s and %s", describe(args[0]), describe(args[1]))
}

// (parallel a b) for directions, lines, planes and plane/line pairs.
func bParallel(b *builder, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(args, 2); err != nil {
		return nil, err
	}
	switch x := args[0].(type) {
	case *sexpDirection:
		if y, ok := args[1].(*sexpDirection); ok {
			return boolSexp(geometry.ParallelDirections(x.d, y.d, b.tol)), nil
		}
	case *sexpLine:
		switch y := args[1].(type) {
		case *sexpLine:
			return boolSexp(geometry.ParallelLines(x.l, y.l, b.tol)), nil
		case *sexpPlane:
			return boolSexp(geometry.ParallelPlaneLine(y.p, x.l, b.tol)), nil
		}
	case *sexpPlane:
		switch y := args[1].(type) {
		case *sexpPlane:
			return boolSexp(geometry.ParallelPlanes(x.p, y.p, b.tol)), nil
		case *sexpLine:
			return boolSexp(geometry.ParallelPlaneLine(x.p, y.l, b.tol)), nil
		}
	}
	return nil, fmt.Errorf("unsupported operands %s and %s", describe(args[0]), describe(args[1]))
}

// (intersect l1 l2) yields a vertex, (intersect p1 p2) a line. No solution
// is reported through an invalid result, not an error.
func bIntersect(b *builder, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(args, 2); err != nil {
		return nil, err
	}
	switch x := args[0].(type) {
	case *sexpLine:
		if y, ok := args[1].(*sexpLine); ok {
			return &sexpVertex{geometry.IntersectLines(x.l, y.l, b.tol)}, nil
		}
	case *sexpPlane:
		if y, ok := args[1].(*sexpPlane); ok {
			return &sexpLine{geometry.IntersectPlanes(x.p, y.p, b.tol)}, nil
		}
	}
	return nil, fmt.Errorf("unsupported operands %s and %s", describe(args[0]), describe(args[1]))
}

// (shortest-segment l1 l2) returns a list of two vertices.
func bShortestSegment(b *builder, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(args, 2); err != nil {
		return nil, err
	}
	l1, err := toLine(args[0])
	if err != nil {
		return nil, err
	}
	l2, err := toLine(args[1])
	if err != nil {
		return nil, err
	}
	pa, pb := geometry.ShortestSegment(l1, l2, b.tol)
	return vertexList([]geometry.Vertex3[float64]{pa, pb}), nil
}

// (deg degrees) converts to radians.
func bDeg(_ *builder, args []zygo.Sexp) (zygo.Sexp, error) {
	if err := arity(args, 1); err != nil {
		return nil, err
	}
	d, err := toFloat64(args[0])
	if err != nil {
		return nil, err
	}
	return floatSexp(d * math.Pi / 180), nil
}

// ---------------------------------------------------------------------------
// Scene recorders
// ---------------------------------------------------------------------------

// (points "name" v1 v2 ... :color :red) and likewise segments and strip.
// Vertex arguments may be vertices or lists of vertices.
func bRecord(kind scene.Kind) builtin {
	return func(b *builder, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return nil, fmt.Errorf("requires a name as first argument")
		}
		name, err := toString(pa.positional[0])
		if err != nil {
			return nil, fmt.Errorf("name: %w", err)
		}
		vs, err := collectVertices(pa.positional[1:])
		if err != nil {
			return nil, err
		}

		color := b.nextColor()
		if c, ok := pa.kw["color"]; ok {
			color, err = toColor(c)
			if err != nil {
				return nil, fmt.Errorf("color: %w", err)
			}
		}

		b.scene.Add(scene.NewConstruct(kind, name, color, vs))
		Logger().Debug("engine: construct recorded", "kind", kind, "name", name, "vertices", len(vs))
		return &sexpConstructRef{kind: kind.String(), name: name, count: len(vs)}, nil
	}
}

// nextColor cycles through the palette by construct index.
func (b *builder) nextColor() scene.Color {
	if len(b.palette) == 0 {
		return scene.Color{R: 1, G: 1, B: 1}
	}
	return b.palette[b.scene.Len()%len(b.palette)]
}

func toColor(s zygo.Sexp) (scene.Color, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return scene.Color{}, err
	}
	if hex, ok := namedColors[name]; ok {
		return scene.HexColor(hex)
	}
	return scene.HexColor(name)
}
