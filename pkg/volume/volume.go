// Package volume provides loading and access to raw 3D scalar volumes.
// Samples are native-endian 32-bit floats in row-major order with x
// fastest-varying, then y, then z.
package volume

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/chewxy/math32"
)

// ErrSizeMismatch is returned by Load when the file's byte length does not
// equal nx*ny*nz*4.
var ErrSizeMismatch = errors.New("file size mismatch")

// Dataset is an immutable voxel grid with a mutable contrast window.
// The voxel data and global extrema never change after Load; only the
// window bounds are mutated during a session.
type Dataset struct {
	data       []float32
	nx, ny, nz int

	globalMin, globalMax float32
	windowMin, windowMax float32
}

// Load reads a raw volume file of nx*ny*nz native-endian float32 samples.
// The file's byte length must match the dimensions exactly; there are no
// partial loads. On success the global extrema are computed by a full scan
// and the contrast window is initialized to cover them.
func Load(filename string, nx, ny, nz int) (*Dataset, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%dx%d", nx, ny, nz)
	}

	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", filename, err)
	}

	expected := nx * ny * nz * 4
	if len(raw) != expected {
		return nil, fmt.Errorf("%s: expected %d bytes (%dx%dx%d float32), got %d: %w",
			filename, expected, nx, ny, nz, len(raw), ErrSizeMismatch)
	}

	data := make([]float32, nx*ny*nz)
	for i := range data {
		data[i] = math.Float32frombits(binary.NativeEndian.Uint32(raw[i*4:]))
	}

	return New(data, nx, ny, nz)
}

// New builds a dataset from samples already in memory. The slice is taken
// over, not copied, and must hold exactly nx*ny*nz values.
func New(data []float32, nx, ny, nz int) (*Dataset, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%dx%d", nx, ny, nz)
	}
	if len(data) != nx*ny*nz {
		return nil, fmt.Errorf("expected %d samples (%dx%dx%d), got %d: %w",
			nx*ny*nz, nx, ny, nz, len(data), ErrSizeMismatch)
	}

	ds := &Dataset{
		data: data,
		nx:   nx,
		ny:   ny,
		nz:   nz,
	}

	ds.globalMin = data[0]
	ds.globalMax = data[0]
	for _, v := range data[1:] {
		ds.globalMin = math32.Min(ds.globalMin, v)
		ds.globalMax = math32.Max(ds.globalMax, v)
	}
	ds.ResetWindow()

	return ds, nil
}

// Nx returns the x dimension
func (d *Dataset) Nx() int { return d.nx }

// Ny returns the y dimension
func (d *Dataset) Ny() int { return d.ny }

// Nz returns the z dimension
func (d *Dataset) Nz() int { return d.nz }

// GlobalMin returns the smallest sample value in the volume
func (d *Dataset) GlobalMin() float32 { return d.globalMin }

// GlobalMax returns the largest sample value in the volume
func (d *Dataset) GlobalMax() float32 { return d.globalMax }

// Sample returns the voxel at (x, y, z). Any coordinate outside the grid
// returns 0 so that per-pixel render loops never branch on errors.
func (d *Dataset) Sample(x, y, z int) float32 {
	if x < 0 || x >= d.nx || y < 0 || y >= d.ny || z < 0 || z >= d.nz {
		return 0
	}
	return d.data[z*d.nx*d.ny+y*d.nx+x]
}

// Window returns the current contrast window bounds
func (d *Dataset) Window() (min, max float32) {
	return d.windowMin, d.windowMax
}

// SetWindow stores the contrast window bounds verbatim. No reordering or
// clamping happens here; degenerate or inverted windows are handled by the
// colormap.
func (d *Dataset) SetWindow(min, max float32) {
	d.windowMin = min
	d.windowMax = max
}

// ResetWindow restores the window to the global extrema
func (d *Dataset) ResetWindow() {
	d.SetWindow(d.globalMin, d.globalMax)
}
