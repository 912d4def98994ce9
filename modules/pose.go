package modules

import (
	"github.com/okieraised/go-face-attributes/config"
	"github.com/okieraised/go-face-attributes/utils"
	"math"
)

// RadiansToDegrees converts a detector angle, keeping absence.
func RadiansToDegrees(radians *float64) *float64 {
	if radians == nil || math.IsNaN(*radians) || math.IsInf(*radians, 0) {
		return nil
	}
	deg := *radians * 180.0 / math.Pi
	return &deg
}

// PitchProxy estimates head pitch in degrees from the vertical eye-to-mouth distance
// relative to the face box height: (0.5 - distance/boxHeight) * scale.
// It is a coarse linear proxy that saturates beyond roughly +/-30 degrees and returns 0
// when a landmark family is missing or the box is degenerate.
func PitchProxy(leftEye, rightEye, outerLips []config.PixelPoint, boxHeight, scale float64) float64 {
	if len(leftEye) == 0 || len(rightEye) == 0 || len(outerLips) == 0 || boxHeight <= 0 {
		return 0
	}

	_, leftY, err := utils.MeanPoint(utils.PointsToTensor(leftEye))
	if err != nil {
		return 0
	}
	_, rightY, err := utils.MeanPoint(utils.PointsToTensor(rightEye))
	if err != nil {
		return 0
	}
	_, mouthY, err := utils.MeanPoint(utils.PointsToTensor(outerLips))
	if err != nil {
		return 0
	}

	eyeCenterY := (leftY + rightY) / 2
	ratio := math.Abs(mouthY-eyeCenterY) / boxHeight
	return (0.5 - ratio) * scale
}
