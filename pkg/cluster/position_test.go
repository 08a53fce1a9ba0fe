package cluster

import (
	"math"
	"testing"
)

var testPositionOpts = PositionOptions{Coverage: 0.7, MinRadius: 0.1}

func TestPosition_CentersOnUnitSphere(t *testing.T) {
	clusters := []Cluster{
		{ID: 0, Size: 5},
		{ID: 1, Size: 3},
		{ID: 2, Size: 1},
	}
	positioned := Position(clusters, 9, testPositionOpts)

	for _, c := range positioned {
		if math.Abs(c.Center.Norm()-1) > 1e-9 {
			t.Errorf("cluster %d: |center| = %g", c.ID, c.Center.Norm())
		}
	}
}

func TestPosition_RadiusMonotoneInSize(t *testing.T) {
	clusters := []Cluster{
		{ID: 0, Size: 10},
		{ID: 1, Size: 5},
		{ID: 2, Size: 5},
		{ID: 3, Size: 1},
	}
	positioned := Position(clusters, 21, testPositionOpts)

	for i := 1; i < len(positioned); i++ {
		prev, cur := positioned[i-1], positioned[i]
		if prev.Size > cur.Size && prev.Radius < cur.Radius {
			t.Errorf("radius not monotone: size %d -> %g, size %d -> %g",
				prev.Size, prev.Radius, cur.Size, cur.Radius)
		}
		if prev.Size == cur.Size && prev.Radius != cur.Radius {
			t.Errorf("equal sizes got different radii: %g vs %g", prev.Radius, cur.Radius)
		}
	}
}

func TestPosition_MinRadiusClamp(t *testing.T) {
	// One node among a thousand: the proportional cap is far below the floor.
	clusters := []Cluster{{ID: 0, Size: 1}}
	positioned := Position(clusters, 1000, testPositionOpts)
	if positioned[0].Radius != testPositionOpts.MinRadius {
		t.Errorf("radius = %g, want clamp to %g", positioned[0].Radius, testPositionOpts.MinRadius)
	}
}

func TestPosition_LargestClusterGetsLargestRadius(t *testing.T) {
	clusters := []Cluster{
		{ID: 0, Size: 3},
		{ID: 1, Size: 1},
		{ID: 2, Size: 1},
	}
	SortBySizeDesc(clusters)
	positioned := Position(clusters, 5, testPositionOpts)

	if positioned[0].Size != 3 {
		t.Fatalf("largest cluster not first after sort: %+v", positioned[0])
	}
	for _, c := range positioned[1:] {
		if c.Radius > positioned[0].Radius {
			t.Errorf("cluster of size %d has radius %g > %g", c.Size, c.Radius, positioned[0].Radius)
		}
	}
}

func TestPosition_EmptyAndZeroTotal(t *testing.T) {
	if got := Position(nil, 0, testPositionOpts); len(got) != 0 {
		t.Errorf("Position(nil) = %v", got)
	}

	clusters := Position([]Cluster{{ID: 0, Size: 1}}, 0, testPositionOpts)
	if clusters[0].Radius != testPositionOpts.MinRadius {
		t.Errorf("zero total nodes: radius = %g, want min", clusters[0].Radius)
	}
}

func TestPosition_CameraFacingFirstSlot(t *testing.T) {
	clusters := Position([]Cluster{{ID: 0, Size: 2}, {ID: 1, Size: 1}}, 3, testPositionOpts)
	if clusters[0].Center.Z < 0.99 {
		t.Errorf("first cluster center %v does not face the camera", clusters[0].Center)
	}
}
