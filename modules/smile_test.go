package modules

import (
	"github.com/okieraised/go-face-attributes/config"
	"github.com/stretchr/testify/assert"
	"testing"
)

// lipContour returns an 8 point outer lip: corners at index 0 and 4, vertical pair at 2 and 6.
func lipContour(width, open float64) []config.PixelPoint {
	return []config.PixelPoint{
		{X: 0, Y: 0},
		{X: width / 4, Y: -open / 2},
		{X: width / 2, Y: -open / 2},
		{X: 3 * width / 4, Y: -open / 2},
		{X: width, Y: 0},
		{X: 3 * width / 4, Y: open / 2},
		{X: width / 2, Y: open / 2},
		{X: width / 4, Y: open / 2},
	}
}

func TestSmileProbability(t *testing.T) {
	// ratio 0.35 -> (0.35 - 0.2) / 0.3
	prob := SmileProbability(lipContour(40, 14), 0.2, 0.3)
	assert.NotNil(t, prob)
	assert.InDelta(t, 0.5, *prob, 1e-9)
}

func TestSmileProbability_Clamps(t *testing.T) {
	closed := SmileProbability(lipContour(40, 2), 0.2, 0.3)
	assert.NotNil(t, closed)
	assert.Equal(t, 0.0, *closed)

	wide := SmileProbability(lipContour(40, 40), 0.2, 0.3)
	assert.NotNil(t, wide)
	assert.Equal(t, 1.0, *wide)
}

func TestSmileProbability_PointCount(t *testing.T) {
	points := lipContour(40, 14)
	assert.Nil(t, SmileProbability(points[:5], 0.2, 0.3))

	prob := SmileProbability(points[:6], 0.2, 0.3)
	assert.NotNil(t, prob)
	assert.GreaterOrEqual(t, *prob, 0.0)
	assert.LessOrEqual(t, *prob, 1.0)
}

func TestSmileProbability_ZeroWidth(t *testing.T) {
	assert.Nil(t, SmileProbability(lipContour(0, 14), 0.2, 0.3))
}
