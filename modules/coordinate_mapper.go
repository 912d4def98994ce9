package modules

import (
	"github.com/okieraised/go-face-attributes/config"
)

// Denormalize converts a detector-space face box (origin bottom-left, y-up) into a pixel
// rectangle (origin top-left, y-down). Degenerate boxes or frames yield a zero rectangle.
func Denormalize(box config.NormalizedRect, imgW, imgH int) config.PixelRect {
	if imgW <= 0 || imgH <= 0 || box.Width <= 0 || box.Height <= 0 {
		return config.PixelRect{}
	}
	return config.PixelRect{
		X:      box.X * float64(imgW),
		Y:      (1.0 - box.Y - box.Height) * float64(imgH),
		Width:  box.Width * float64(imgW),
		Height: box.Height * float64(imgH),
	}
}

// ToPixel converts an absolute detector-space point into pixel space.
func ToPixel(p config.NormalizedPoint, imgW, imgH int) config.PixelPoint {
	if imgW <= 0 || imgH <= 0 {
		return config.PixelPoint{}
	}
	return config.PixelPoint{
		X: p.X * float64(imgW),
		Y: (1.0 - p.Y) * float64(imgH),
	}
}

// MapPoint maps a point given in a face box's local normalized frame into pixel space.
func MapPoint(local config.NormalizedPoint, faceBox config.NormalizedRect, imgW, imgH int) config.PixelPoint {
	return ToPixel(config.NormalizedPoint{
		X: faceBox.X + local.X*faceBox.Width,
		Y: faceBox.Y + local.Y*faceBox.Height,
	}, imgW, imgH)
}

// CoordinateMapper maps detector output for one frame into pixel space and, when a
// viewport is given, re-projects it into that viewport. The projection scales the frame
// height onto the viewport height and centres the result horizontally.
type CoordinateMapper struct {
	frame    config.Size
	viewport config.Size
	scale    float64
	offsetX  float64
}

// NewCoordinateMapper creates a mapper for frames of the given size. A nil viewport means
// the output space is the frame itself.
func NewCoordinateMapper(frame config.Size, viewport *config.Size) *CoordinateMapper {
	m := &CoordinateMapper{
		frame:    frame,
		viewport: frame,
		scale:    1,
	}
	if viewport != nil {
		m.viewport = *viewport
	}
	if frame.IsEmpty() || m.viewport.IsEmpty() {
		m.scale = 0
		return m
	}
	m.scale = float64(m.viewport.Height) / float64(frame.Height)
	m.offsetX = (float64(m.viewport.Width) - float64(frame.Width)*m.scale) / 2
	return m
}

// Scale returns the uniform frame-to-viewport scale factor.
func (m *CoordinateMapper) Scale() float64 {
	return m.scale
}

// OffsetX returns the horizontal centring offset in viewport pixels.
func (m *CoordinateMapper) OffsetX() float64 {
	return m.offsetX
}

func (m *CoordinateMapper) project(p config.PixelPoint) config.PixelPoint {
	return config.PixelPoint{
		X: p.X*m.scale + m.offsetX,
		Y: p.Y * m.scale,
	}
}

// Rect maps a normalized face box into output space.
func (m *CoordinateMapper) Rect(box config.NormalizedRect) config.PixelRect {
	r := Denormalize(box, m.frame.Width, m.frame.Height)
	if r.Width == 0 || r.Height == 0 || m.scale == 0 {
		return config.PixelRect{}
	}
	origin := m.project(config.PixelPoint{X: r.X, Y: r.Y})
	return config.PixelRect{
		X:      origin.X,
		Y:      origin.Y,
		Width:  r.Width * m.scale,
		Height: r.Height * m.scale,
	}
}

// Point maps a face-local normalized point into output space.
func (m *CoordinateMapper) Point(local config.NormalizedPoint, faceBox config.NormalizedRect) config.PixelPoint {
	if m.scale == 0 {
		return config.PixelPoint{}
	}
	return m.project(MapPoint(local, faceBox, m.frame.Width, m.frame.Height))
}

// Region maps every point of a landmark region. A missing region yields an empty, non-nil
// sequence.
func (m *CoordinateMapper) Region(region config.LandmarkRegion, faceBox config.NormalizedRect) []config.PixelPoint {
	points := make([]config.PixelPoint, 0, len(region))
	for _, p := range region {
		points = append(points, m.Point(p, faceBox))
	}
	return points
}
