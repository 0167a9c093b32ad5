package raster

// Curve is a quadratic Bezier curve.
type Curve struct {
	Start, Control, End Vec2
}

// NewCurve builds a curve from its three control points.
func NewCurve(start, control, end Vec2) Curve {
	return Curve{Start: start, Control: control, End: end}
}

// Evaluate returns the point at parameter t. Values outside [0,1] extrapolate.
func (c Curve) Evaluate(t float64) Vec2 {
	s := 1 - t
	return c.Start.Mul(s * s).
		Add(c.Control.Mul(2 * s * t)).
		Add(c.End.Mul(t * t))
}

// Approximate samples n+1 points at t = i/n for i = 0..n, so both endpoints
// are always included. n < 1 yields just the start point.
func (c Curve) Approximate(n int) []Vec2 {
	if n < 1 {
		return []Vec2{c.Evaluate(0)}
	}
	pts := make([]Vec2, 0, n+1)
	for i := 0; i <= n; i++ {
		pts = append(pts, c.Evaluate(float64(i)/float64(n)))
	}
	return pts
}
