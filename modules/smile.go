package modules

import (
	"github.com/okieraised/go-face-attributes/config"
	"github.com/okieraised/go-face-attributes/utils"
)

const minLipPoints = 6

// SmileProbability scores mouth openness on the outer lip contour. Corners are points[0]
// and points[n/2], the vertical pair is points[n/4] and points[3n/4]; the open/width ratio
// is remapped by clamp((ratio - offset) / span, 0, 1).
// It returns nil for fewer than six points or a zero-width mouth.
func SmileProbability(points []config.PixelPoint, offset, span float64) *float64 {
	n := len(points)
	if n < minLipPoints || span <= 0 {
		return nil
	}
	lmk := utils.PointsToTensor(points)

	width, err := utils.PointDistance(lmk, 0, n/2)
	if err != nil || width == 0 {
		return nil
	}
	height, err := utils.PointDistance(lmk, n/4, 3*n/4)
	if err != nil {
		return nil
	}

	prob := utils.Clamp((height/width-offset)/span, 0, 1)
	return &prob
}
