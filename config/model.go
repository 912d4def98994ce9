package config

import (
	"github.com/pkg/errors"
)

var ErrInvalidParams = errors.New("invalid engine params")

type EngineParams struct {
	MinEAR               float64  `json:"min_ear"`
	MaxEAR               float64  `json:"max_ear"`
	EyeBaseline          *float64 `json:"eye_baseline,omitempty"` // EyeBaseline is the subject's fully open EAR; when set it replaces the MinEAR/MaxEAR remap.
	SmoothingAlpha       float64  `json:"smoothing_alpha"`
	SeedFromFirstReading bool     `json:"seed_from_first_reading"` // SeedFromFirstReading starts each smoother at its first raw value instead of 0.
	ClosedThreshold      float64  `json:"closed_threshold"`
	OpenThreshold        float64  `json:"open_threshold"`
	SmileOffset          float64  `json:"smile_offset"`
	SmileRange           float64  `json:"smile_range"`
	PitchScale           float64  `json:"pitch_scale"`
	Viewport             *Size    `json:"viewport,omitempty"` // Viewport re-projects every pixel output into a destination display of this size.
	IncludeCheeks        bool     `json:"include_cheeks"`
}

func NewEngineParams(minEAR, maxEAR, smoothingAlpha, closedThreshold, openThreshold, smileOffset, smileRange, pitchScale float64) *EngineParams {
	return &EngineParams{
		MinEAR:          minEAR,
		MaxEAR:          maxEAR,
		SmoothingAlpha:  smoothingAlpha,
		ClosedThreshold: closedThreshold,
		OpenThreshold:   openThreshold,
		SmileOffset:     smileOffset,
		SmileRange:      smileRange,
		PitchScale:      pitchScale,
	}
}

var DefaultEngineParams = &EngineParams{
	MinEAR:          0.08,
	MaxEAR:          0.32,
	SmoothingAlpha:  0.3,
	ClosedThreshold: 0.2,
	OpenThreshold:   0.45,
	SmileOffset:     0.2,
	SmileRange:      0.3,
	PitchScale:      60,
}

// Clone returns a deep copy so callers can tweak defaults without touching the shared value.
func (p *EngineParams) Clone() *EngineParams {
	c := *p
	if p.EyeBaseline != nil {
		b := *p.EyeBaseline
		c.EyeBaseline = &b
	}
	if p.Viewport != nil {
		v := *p.Viewport
		c.Viewport = &v
	}
	return &c
}

// Validate checks the params for ranges the estimators cannot work with.
func (p *EngineParams) Validate() error {
	if p.MaxEAR <= p.MinEAR {
		return errors.Wrapf(ErrInvalidParams, "max_ear %v must exceed min_ear %v", p.MaxEAR, p.MinEAR)
	}
	if p.EyeBaseline != nil && *p.EyeBaseline <= 0 {
		return errors.Wrapf(ErrInvalidParams, "eye_baseline %v must be positive", *p.EyeBaseline)
	}
	if p.SmoothingAlpha <= 0 || p.SmoothingAlpha > 1 {
		return errors.Wrapf(ErrInvalidParams, "smoothing_alpha %v must be in (0, 1]", p.SmoothingAlpha)
	}
	if p.ClosedThreshold < 0 || p.OpenThreshold > 1 || p.ClosedThreshold > p.OpenThreshold {
		return errors.Wrapf(ErrInvalidParams, "eye thresholds must satisfy 0 <= closed (%v) <= open (%v) <= 1", p.ClosedThreshold, p.OpenThreshold)
	}
	if p.SmileRange <= 0 {
		return errors.Wrapf(ErrInvalidParams, "smile_range %v must be positive", p.SmileRange)
	}
	if p.Viewport != nil && p.Viewport.IsEmpty() {
		return errors.Wrapf(ErrInvalidParams, "viewport %dx%d must be non-empty", p.Viewport.Width, p.Viewport.Height)
	}
	return nil
}
