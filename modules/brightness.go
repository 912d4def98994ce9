package modules

import (
	"github.com/disintegration/imaging"
	"gocv.io/x/gocv"
	"image"
)

const maxChannelValue = 255.0

// EstimateBrightnessMat reduces an 8-bit frame to one brightness value in [0, 100] using
// the whole-frame channel mean. Colour frames average their first three channels, so BGR
// and RGB orderings give the same result; alpha is ignored. An empty frame yields 0.
func EstimateBrightnessMat(frame gocv.Mat) float64 {
	if frame.Empty() {
		return 0
	}
	mean := frame.Mean()

	var avg float64
	switch frame.Channels() {
	case 1:
		avg = mean.Val1
	case 2:
		avg = (mean.Val1 + mean.Val2) / 2
	default:
		avg = (mean.Val1 + mean.Val2 + mean.Val3) / 3
	}
	return brightnessPercent(avg)
}

// EstimateBrightness is EstimateBrightnessMat for image.Image frames. A Box resample down
// to a single pixel weights every source pixel equally.
func EstimateBrightness(img image.Image) float64 {
	if img == nil || img.Bounds().Empty() {
		return 0
	}
	avg := imaging.Resize(img, 1, 1, imaging.Box)
	if avg.Bounds().Empty() {
		return 0
	}
	c := avg.NRGBAAt(0, 0)
	return brightnessPercent((float64(c.R) + float64(c.G) + float64(c.B)) / 3)
}

func brightnessPercent(avg float64) float64 {
	v := avg / maxChannelValue * 100
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
