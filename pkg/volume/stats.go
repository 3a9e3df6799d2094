package volume

import (
	"gonum.org/v1/gonum/stat"
)

// Summary describes the sample distribution of a volume, logged once at
// startup for each loaded dataset.
type Summary struct {
	Min    float32
	Max    float32
	Mean   float64
	StdDev float64
}

// Stats computes a distribution summary over all samples. This is a full
// scan; it is intended for one-time use at load, not the render path.
func (d *Dataset) Stats() Summary {
	values := make([]float64, len(d.data))
	for i, v := range d.data {
		values[i] = float64(v)
	}

	mean, std := stat.MeanStdDev(values, nil)

	return Summary{
		Min:    d.globalMin,
		Max:    d.globalMax,
		Mean:   mean,
		StdDev: std,
	}
}
