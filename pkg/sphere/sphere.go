package sphere

import "math"

// degenerateEps is the threshold below which a displacement or direction is
// treated as zero. At this scale the direction of a vector is numerically
// meaningless.
const degenerateEps = 1e-10

// antipodalEps is the tolerance for detecting that two unit vectors are
// (anti)parallel via their dot product.
const antipodalEps = 1e-10

// Basis is an orthonormal pair of tangent vectors at a point on the unit
// sphere. E1 and E2 are both perpendicular to the point and to each other,
// and together span the tangent plane there.
type Basis struct {
	E1 Vec3
	E2 Vec3
}

// TangentBasis constructs a tangent-plane basis at center, which must be a
// unit vector. The first basis vector is derived from the world X axis
// projected onto the tangent plane; when center is nearly parallel to X the
// Y axis is used instead so the projection stays well-conditioned.
func TangentBasis(center Vec3) Basis {
	ref := Vec3{X: 1}
	if math.Abs(center.Dot(ref)) > 0.9 {
		ref = Vec3{Y: 1}
	}
	e1 := ref.Sub(center.Scale(center.Dot(ref))).Normalize()
	e2 := center.Cross(e1).Normalize()
	return Basis{E1: e1, E2: e2}
}

// ExpMap maps a tangent-plane vector v at center onto the sphere surface,
// following the great circle in the direction of v for an arc length of
// |v| radians. A vector shorter than the degeneracy threshold maps to
// center itself.
func ExpMap(center Vec3, v Planar, b Basis) Vec3 {
	v3 := b.E1.Scale(v.X).Add(b.E2.Scale(v.Y))
	theta := v3.Norm()
	if theta < degenerateEps {
		return center
	}
	dir := v3.Scale(1 / theta)
	return center.Scale(math.Cos(theta)).Add(dir.Scale(math.Sin(theta))).Normalize()
}

// LogMap is the inverse of ExpMap: it recovers the tangent-plane vector at
// center that maps to point. Both arguments must be unit vectors.
//
// When point coincides with center the zero vector is returned. When point
// is antipodal to center every tangent direction is an equally valid answer;
// the fixed vector (pi, 0) is returned as an arbitrary, documented tie-break
// so callers get a deterministic result rather than NaN.
func LogMap(center, point Vec3, b Basis) Planar {
	dot := clamp(center.Dot(point), -1, 1)
	if dot > 1-antipodalEps {
		return Planar{}
	}
	if dot < -1+antipodalEps {
		return Planar{X: math.Pi}
	}
	theta := math.Acos(dot)
	tangential := point.Sub(center.Scale(dot)).Normalize()
	return Planar{
		X: theta * tangential.Dot(b.E1),
		Y: theta * tangential.Dot(b.E2),
	}
}

// GeodesicDistance returns the great-circle distance in radians between two
// unit vectors. The dot product is clamped to [-1, 1] before acos so that
// floating-point overshoot at exactly parallel or antipodal inputs cannot
// produce NaN.
func GeodesicDistance(p, q Vec3) float64 {
	return math.Acos(clamp(p.Dot(q), -1, 1))
}

// CapArea returns the surface area of a spherical cap with angular radius r
// on the unit sphere: 2*pi*(1 - cos r).
func CapArea(r float64) float64 {
	return 2 * math.Pi * (1 - math.Cos(r))
}

// AreaToRadius is the inverse of CapArea: it returns the angular radius of
// a cap with the given surface area. Areas are clamped to [0, 4*pi].
func AreaToRadius(area float64) float64 {
	return math.Acos(clamp(1-area/(2*math.Pi), -1, 1))
}

// CapsOverlap reports whether two spherical caps intersect.
func CapsOverlap(c1 Vec3, r1 float64, c2 Vec3, r2 float64) bool {
	return GeodesicDistance(c1, c2) < r1+r2
}

// ScaleToRadius scales a unit-sphere position to world coordinates on a
// sphere of the given radius.
func ScaleToRadius(p Vec3, radius float64) Vec3 {
	return p.Scale(radius)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
