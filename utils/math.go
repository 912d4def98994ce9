package utils

import (
	"errors"
	"gorgonia.org/tensor"
	"math"
)

// ComputeLinearNorm returns the euclidean distance between two point tensors of equal shape.
func ComputeLinearNorm(t1, t2 *tensor.Dense) (float64, error) {
	diff, err := tensor.Sub(t1, t2)
	if err != nil {
		return 0, err
	}

	squaredDiff, err := tensor.Square(diff)
	if err != nil {
		return 0, err
	}
	sumOfSquares, err := tensor.Sum(squaredDiff)
	if err != nil {
		return 0, err
	}
	dist, err := tensor.Sqrt(sumOfSquares)
	if err != nil {
		return 0, err
	}
	return dist.(*tensor.Dense).Float64s()[0], nil
}

// PointDistance is ComputeLinearNorm for two rows of an (n, 2) landmark matrix.
func PointDistance(points *tensor.Dense, i, j int) (float64, error) {
	a, err := points.Slice(tensor.S(i))
	if err != nil {
		return 0, err
	}
	b, err := points.Slice(tensor.S(j))
	if err != nil {
		return 0, err
	}
	return ComputeLinearNorm(a.(*tensor.Dense), b.(*tensor.Dense))
}

// MeanPoint returns the centroid (x, y) of an (n, 2) landmark matrix.
func MeanPoint(points *tensor.Dense) (float64, float64, error) {
	shape := points.Shape()
	if len(shape) != 2 || shape[1] != 2 {
		return 0, 0, errors.New("expected a 2D tensor with shape (n, 2)")
	}
	if shape[0] == 0 {
		return 0, 0, errors.New("cannot average an empty point set")
	}
	sum, err := tensor.Sum(points, 0)
	if err != nil {
		return 0, 0, err
	}
	data := sum.(*tensor.Dense).Float64s()
	n := float64(shape[0])
	return data[0] / n, data[1] / n, nil
}

// Clamp limits v to [lo, hi]. NaN collapses to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
