// Package slicing maps 2D canvas coordinates of an axis-aligned slice plane
// onto 3D volume coordinates.
package slicing

import "github.com/philipparndt/voxview/pkg/volume"

// Plane is one of the three axis-aligned slice orientations
type Plane int

const (
	// PlaneXY slices along z; canvas (u, v) maps to volume (u, v, slice)
	PlaneXY Plane = iota
	// PlaneXZ slices along y; canvas (u, v) maps to volume (u, slice, v)
	PlaneXZ
	// PlaneYZ slices along x; canvas (u, v) maps to volume (slice, u, v)
	PlaneYZ
)

// String returns the plane name
func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneXZ:
		return "XZ"
	case PlaneYZ:
		return "YZ"
	}
	return "?"
}

// Depth returns the number of slices available for the plane, i.e. the
// extent of the axis perpendicular to it.
func Depth(ds *volume.Dataset, p Plane) int {
	switch p {
	case PlaneXY:
		return ds.Nz()
	case PlaneXZ:
		return ds.Ny()
	default:
		return ds.Nx()
	}
}

// CanvasDims returns the unzoomed canvas size of a slice: the two non-depth
// volume dimensions, horizontal first.
func CanvasDims(ds *volume.Dataset, p Plane) (width, height int) {
	switch p {
	case PlaneXY:
		return ds.Nx(), ds.Ny()
	case PlaneXZ:
		return ds.Nx(), ds.Nz()
	default:
		return ds.Ny(), ds.Nz()
	}
}

// ClampSlice clamps a slice index into the valid range for the plane
func ClampSlice(ds *volume.Dataset, p Plane, slice int) int {
	if slice < 0 {
		return 0
	}
	if max := Depth(ds, p) - 1; slice > max {
		return max
	}
	return slice
}

// VoxelAt samples the voxel under canvas point (u, v) of the given slice.
// Out-of-range coordinates sample as 0, inherited from Dataset.Sample.
func VoxelAt(ds *volume.Dataset, p Plane, slice, u, v int) float32 {
	switch p {
	case PlaneXY:
		return ds.Sample(u, v, slice)
	case PlaneXZ:
		return ds.Sample(u, slice, v)
	default:
		return ds.Sample(slice, u, v)
	}
}
