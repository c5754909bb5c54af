package sapling

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Matrix is a 2D affine matrix stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// Projections and views are expressed as Matrix values.
type Matrix [6]float64

// IdentityMatrix leaves points unchanged.
var IdentityMatrix = Matrix{1, 0, 0, 1, 0, 0}

// Translation returns a matrix translating by (x, y).
func Translation(x, y float64) Matrix {
	return Matrix{1, 0, 0, 1, x, y}
}

// Scaling returns a matrix scaling by (sx, sy).
func Scaling(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotation returns a matrix rotating clockwise by r radians (Y points down).
func Rotation(r float64) Matrix {
	sin, cos := math.Sincos(r)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// OrthographicProjection maps the world rectangle [left, right] x [top, bottom]
// onto a viewport of vw x vh pixels. Use it to render a fixed virtual
// resolution independently of the window size.
func OrthographicProjection(left, right, top, bottom, vw, vh float64) Matrix {
	sx := vw / (right - left)
	sy := vh / (bottom - top)
	return Matrix{sx, 0, 0, sy, -left * sx, -top * sy}
}

// Mul returns m * c, i.e. c is applied first.
func (m Matrix) Mul(c Matrix) Matrix {
	return Matrix{
		m[0]*c[0] + m[2]*c[1],
		m[1]*c[0] + m[3]*c[1],
		m[0]*c[2] + m[2]*c[3],
		m[1]*c[2] + m[3]*c[3],
		m[0]*c[4] + m[2]*c[5] + m[4],
		m[1]*c[4] + m[3]*c[5] + m[5],
	}
}

// Invert computes the inverse of the matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func (m Matrix) Invert() Matrix {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return IdentityMatrix
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Matrix{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply transforms the point (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// GeoM converts the matrix into an ebiten.GeoM.
func (m Matrix) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// localTransform computes an affine matrix from transform properties.
//
// Composition order:
//
//	Translate(-pivotX, -pivotY) -> Scale -> Rotate -> Translate(x, y)
func localTransform(x, y, sx, sy, rotation, pivotX, pivotY float64) Matrix {
	sin, cos := math.Sincos(rotation)

	preTx := -pivotX * sx
	preTy := -pivotY * sy

	return Matrix{
		cos * sx,
		sin * sx,
		-sin * sy,
		cos * sy,
		cos*preTx - sin*preTy + x,
		sin*preTx + cos*preTy + y,
	}
}
