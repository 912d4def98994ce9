package modules

import (
	"github.com/okieraised/go-face-attributes/config"
	"github.com/okieraised/go-face-attributes/utils"
)

const minEyePoints = 6

// eyeSampleIndices picks the six canonical EAR points (outer corner, two upper lid points,
// inner corner, two lower lid points) from an n-point eye ring. For n == 6 they are 0..5.
func eyeSampleIndices(n int) [6]int {
	return [6]int{0, n / 6, n / 3, n / 2, 2 * n / 3, 5 * n / 6}
}

// EyeAspectRatio computes (|p2-p6| + |p3-p5|) / (2 * |p1-p4|) over an eye contour.
// It returns nil for fewer than six points or a zero-width eye.
func EyeAspectRatio(points []config.PixelPoint) *float64 {
	if len(points) < minEyePoints {
		return nil
	}
	idx := eyeSampleIndices(len(points))
	lmk := utils.PointsToTensor(points)

	horizontal, err := utils.PointDistance(lmk, idx[0], idx[3])
	if err != nil || horizontal == 0 {
		return nil
	}
	upper, err := utils.PointDistance(lmk, idx[1], idx[5])
	if err != nil {
		return nil
	}
	lower, err := utils.PointDistance(lmk, idx[2], idx[4])
	if err != nil {
		return nil
	}

	ear := (upper + lower) / (2 * horizontal)
	return &ear
}

// EyeOpenProbability remaps an EAR linearly from [minEAR, maxEAR] onto [0, 1].
func EyeOpenProbability(ear, minEAR, maxEAR float64) float64 {
	if maxEAR <= minEAR {
		return 0
	}
	return utils.Clamp((ear-minEAR)/(maxEAR-minEAR), 0, 1)
}

// CalibratedEyeOpenProbability scores an EAR against a subject's fully open baseline.
func CalibratedEyeOpenProbability(ear, baseline float64) float64 {
	if baseline <= 0 {
		return 0
	}
	return utils.Clamp(ear/baseline, 0, 1)
}

// EstimateEyeOpen returns the raw (unsmoothed) openness probability of an eye contour,
// or nil when no EAR can be measured.
func EstimateEyeOpen(points []config.PixelPoint, params *config.EngineParams) *float64 {
	ear := EyeAspectRatio(points)
	if ear == nil {
		return nil
	}
	var prob float64
	if params.EyeBaseline != nil {
		prob = CalibratedEyeOpenProbability(*ear, *params.EyeBaseline)
	} else {
		prob = EyeOpenProbability(*ear, params.MinEAR, params.MaxEAR)
	}
	return &prob
}

// EyeStateFromProbability classifies a smoothed probability. Values between the two
// thresholds are UNKNOWN, as is a missing measurement.
func EyeStateFromProbability(prob *float64, closedThreshold, openThreshold float64) config.EyeState {
	if prob == nil {
		return config.EyeStateUnknown
	}
	switch {
	case *prob < closedThreshold:
		return config.EyeStateClosed
	case *prob > openThreshold:
		return config.EyeStateOpen
	default:
		return config.EyeStateUnknown
	}
}
