package config

// Size is a frame or viewport dimension in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// IsEmpty reports whether either dimension is non-positive.
func (s *Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// NormalizedPoint is a landmark in detector space: unit square, origin bottom-left, y-up.
type NormalizedPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PixelPoint is a point in pixel or display space, origin top-left, y-down.
type PixelPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LandmarkRegion is the ordered point list of one facial feature, in the face box's local
// normalized frame.
type LandmarkRegion []NormalizedPoint

// NormalizedRect is a face bounding box in detector space. (X, Y) is the bottom-left corner.
type NormalizedRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PixelRect is a rectangle in pixel space. (X, Y) is the top-left corner.
type PixelRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the rectangle's mid point.
func (r PixelRect) Center() PixelPoint {
	return PixelPoint{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// Bounds is the bounding box block of a FaceAttributes record.
type Bounds struct {
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
	BoundingCenterX float64 `json:"boundingCenterX"`
	BoundingCenterY float64 `json:"boundingCenterY"`
}

// NewBounds builds the output bounds block from a pixel rectangle.
func NewBounds(r PixelRect) Bounds {
	c := r.Center()
	return Bounds{
		X:               r.X,
		Y:               r.Y,
		Width:           r.Width,
		Height:          r.Height,
		BoundingCenterX: c.X,
		BoundingCenterY: c.Y,
	}
}

// EyeState is the categorical eye openness.
type EyeState string

const (
	EyeStateOpen    EyeState = "OPEN"
	EyeStateClosed  EyeState = "CLOSED"
	EyeStateUnknown EyeState = "UNKNOWN"
)

// DetectedFace is one face as reported by the upstream landmark detector.
type DetectedFace struct {
	// TrackingID identifies the same physical face across frames. Faces without one share
	// the engine-wide smoothing state.
	TrackingID  string                         `json:"tracking_id,omitempty"`
	BoundingBox NormalizedRect                 `json:"bounding_box"`
	Roll        *float64                       `json:"roll,omitempty"` // radians
	Yaw         *float64                       `json:"yaw,omitempty"`  // radians
	Landmarks   map[FeatureKind]LandmarkRegion `json:"landmarks"`
}

// Region returns the landmark region for kind, or nil when the detector did not report it.
func (f *DetectedFace) Region(kind FeatureKind) LandmarkRegion {
	if f.Landmarks == nil {
		return nil
	}
	return f.Landmarks[kind]
}

// FaceAttributes is the per-face output record.
type FaceAttributes struct {
	TrackingID              string     `json:"trackingId,omitempty"`
	RollAngle               *float64   `json:"rollAngle"`
	PitchAngle              float64    `json:"pitchAngle"`
	YawAngle                *float64   `json:"yawAngle"`
	Bounds                  Bounds     `json:"bounds"`
	Contours                ContourMap `json:"contours"`
	Brightness              float64    `json:"brightness"`
	LeftEyeOpenProbability  *float64   `json:"leftEyeOpenProbability"`
	RightEyeOpenProbability *float64   `json:"rightEyeOpenProbability"`
	LeftEyeState            EyeState   `json:"leftEyeState"`
	RightEyeState           EyeState   `json:"rightEyeState"`
	SmilingProbability      *float64   `json:"smilingProbability"`
}
