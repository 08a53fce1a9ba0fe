package sphere

import "math"

// goldenRatio is used to space successive points of the Fibonacci spiral.
var goldenRatio = (1 + math.Sqrt(5)) / 2

// FibonacciSphere distributes n points approximately evenly over the unit
// sphere using the golden-ratio spiral. The distribution is rotated 90
// degrees about the X axis so that its densest pole faces the fixed camera
// direction (+Z) instead of straight up.
//
// n <= 0 returns nil. n == 1 is special-cased (the spiral formula divides
// by n-1) and returns the rotated pole. n == 2 yields two antipodal points.
func FibonacciSphere(n int) []Vec3 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Vec3{{Z: 1}}
	}

	points := make([]Vec3, n)
	for i := 0; i < n; i++ {
		y := 1 - 2*float64(i)/float64(n-1)
		radius := math.Sqrt(math.Max(0, 1-y*y))
		theta := 2 * math.Pi * float64(i) / goldenRatio
		p := Vec3{
			X: radius * math.Cos(theta),
			Y: y,
			Z: radius * math.Sin(theta),
		}
		points[i] = rotateX90(p).Normalize()
	}
	return points
}

// rotateX90 rotates a point 90 degrees about the X axis, mapping the Y pole
// onto the Z axis.
func rotateX90(p Vec3) Vec3 {
	return Vec3{X: p.X, Y: -p.Z, Z: p.Y}
}
