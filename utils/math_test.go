package utils

import (
	"github.com/okieraised/go-face-attributes/config"
	"github.com/stretchr/testify/assert"
	"gorgonia.org/tensor"
	"math"
	"testing"
)

func TestComputeLinearNorm(t *testing.T) {
	a := tensor.New(tensor.Of(tensor.Float64), tensor.WithShape(2), tensor.WithBacking([]float64{0, 0}))
	b := tensor.New(tensor.Of(tensor.Float64), tensor.WithShape(2), tensor.WithBacking([]float64{3, 4}))

	dist, err := ComputeLinearNorm(a, b)
	assert.NoError(t, err)
	assert.InDelta(t, 5.0, dist, 1e-9)
}

func TestPointDistance(t *testing.T) {
	points := PointsToTensor([]config.PixelPoint{
		{X: 1, Y: 1},
		{X: 4, Y: 5},
		{X: 1, Y: 3},
	})

	dist, err := PointDistance(points, 0, 1)
	assert.NoError(t, err)
	assert.InDelta(t, 5.0, dist, 1e-9)

	dist, err = PointDistance(points, 0, 2)
	assert.NoError(t, err)
	assert.InDelta(t, 2.0, dist, 1e-9)
}

func TestMeanPoint(t *testing.T) {
	points := PointsToTensor([]config.PixelPoint{
		{X: 0, Y: 0},
		{X: 2, Y: 4},
		{X: 4, Y: 8},
	})

	x, y, err := MeanPoint(points)
	assert.NoError(t, err)
	assert.InDelta(t, 2.0, x, 1e-9)
	assert.InDelta(t, 4.0, y, 1e-9)
}

func TestMeanPoint_WrongShape(t *testing.T) {
	flat := tensor.New(tensor.Of(tensor.Float64), tensor.WithShape(4), tensor.WithBacking([]float64{1, 2, 3, 4}))
	_, _, err := MeanPoint(flat)
	assert.Error(t, err)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-0.5, 0, 1))
	assert.Equal(t, 1.0, Clamp(1.5, 0, 1))
	assert.Equal(t, 0.25, Clamp(0.25, 0, 1))
	assert.Equal(t, 0.0, Clamp(math.NaN(), 0, 1))
}

func TestRefPointer(t *testing.T) {
	p := RefPointer(2.5)
	assert.Equal(t, 2.5, *p)
	assert.NotSame(t, p, RefPointer(2.5))
}
