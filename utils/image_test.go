package utils

import (
	"bytes"
	"github.com/okieraised/go-face-attributes/config"
	"github.com/stretchr/testify/assert"
	"gocv.io/x/gocv"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestConvertImageToMat(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 24))
	for y := 0; y < 24; y++ {
		for x := 0; x < 32; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 10, B: 10, A: 255})
		}
	}
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))

	mat, err := ConvertImageToMat(buf.Bytes())
	assert.NoError(t, err)
	defer mat.Close()

	assert.Equal(t, config.Size{Width: 32, Height: 24}, MatSize(*mat))
	// RGB order after conversion
	assert.Equal(t, gocv.Vecb{200, 10, 10}, mat.GetVecbAt(0, 0))
}

func TestConvertImageToMat_Unreadable(t *testing.T) {
	mat, err := ConvertImageToMat([]byte("definitely not an image"))
	defer mat.Close()
	assert.Error(t, err)
}

func TestPointsToTensor(t *testing.T) {
	lmk := PointsToTensor([]config.PixelPoint{{X: 1, Y: 2}, {X: 3, Y: 4}})
	assert.Equal(t, []int{2, 2}, []int(lmk.Shape()))
	assert.Equal(t, []float64{1, 2, 3, 4}, lmk.Float64s())
}
