package utils

import (
	"fmt"
	"github.com/okieraised/go-face-attributes/config"
	"gocv.io/x/gocv"
	"gorgonia.org/tensor"
)

// ConvertImageToMat decodes an encoded image (JPEG, PNG, ...) into an RGB Mat.
func ConvertImageToMat(bImage []byte) (*gocv.Mat, error) {
	dstMat := gocv.NewMat()
	srcMat, err := gocv.IMDecode(bImage, gocv.IMReadColor)
	if err != nil {
		return &dstMat, err
	}
	defer srcMat.Close()
	if srcMat.Empty() {
		return &dstMat, fmt.Errorf("decoded image is empty")
	}

	gocv.CvtColor(srcMat, &dstMat, gocv.ColorBGRToRGB)
	return &dstMat, nil
}

// MatSize returns the frame dimensions of a Mat.
func MatSize(mat gocv.Mat) config.Size {
	return config.Size{
		Width:  mat.Cols(),
		Height: mat.Rows(),
	}
}

// PointsToTensor packs pixel points into an (n, 2) float64 matrix.
func PointsToTensor(points []config.PixelPoint) *tensor.Dense {
	backing := make([]float64, 0, len(points)*2)
	for _, p := range points {
		backing = append(backing, p.X, p.Y)
	}
	return tensor.New(
		tensor.Of(tensor.Float64),
		tensor.WithShape(len(points), 2),
		tensor.WithBacking(backing),
	)
}
