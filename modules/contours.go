package modules

import (
	"github.com/okieraised/go-face-attributes/config"
)

// BuildContourMap maps every landmark family of a face into output space. Mirrored
// contour names share the exact slice of their source contour. With includeCheeks, the
// LEFT_CHEEK and RIGHT_CHEEK contours hold one extrapolated point each.
func BuildContourMap(mapper *CoordinateMapper, face *config.DetectedFace, includeCheeks bool) config.ContourMap {
	contours := make(config.ContourMap, len(config.ContourSources)+len(config.ContourAliases)+2)

	for _, src := range config.ContourSources {
		contours[src.Name] = mapper.Region(face.Region(src.Kind), face.BoundingBox)
	}
	for _, alias := range config.ContourAliases {
		contours[alias.Alias] = contours[alias.Source]
	}

	if includeCheeks {
		faceOutline := contours[config.ContourFace]
		contours[config.ContourLeftCheek] = cheekPoint(contours[config.ContourLeftEye], faceOutline, 0)
		contours[config.ContourRightCheek] = cheekPoint(contours[config.ContourRightEye], faceOutline, len(faceOutline)-1)
	}
	return contours
}

// cheekPoint is the midpoint between an eye's first contour point and faceOutline[edge].
func cheekPoint(eye, faceOutline []config.PixelPoint, edge int) []config.PixelPoint {
	if len(eye) == 0 || edge < 0 || edge >= len(faceOutline) {
		return []config.PixelPoint{}
	}
	corner := eye[0]
	jaw := faceOutline[edge]
	return []config.PixelPoint{{
		X: (corner.X + jaw.X) / 2,
		Y: (corner.Y + jaw.Y) / 2,
	}}
}
