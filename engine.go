package go_face_attributes

import (
	"github.com/okieraised/go-face-attributes/config"
	"github.com/okieraised/go-face-attributes/modules"
	"github.com/okieraised/go-face-attributes/utils"
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
	"image"
	"log"
)

var (
	ErrEmptyFrame  = errors.New("frame is empty or unreadable")
	ErrNilDetector = errors.New("landmark detector is nil")
)

// LandmarkDetector is the upstream face landmark detector. Landmark regions are
// expressed in each face box's local normalized frame (origin bottom-left, y-up).
type LandmarkDetector interface {
	Detect(frame gocv.Mat) ([]config.DetectedFace, error)
}

// FaceAttributesEngine derives per-face attributes from detector landmarks, one frame at
// a time. The only state carried between frames is the eye smoothing, so an engine must
// be driven from one caller at a time; concurrent pipelines need one engine each.
type FaceAttributesEngine struct {
	Params    *config.EngineParams
	Logger    *log.Logger
	smoothing *modules.SmootherRegistry
}

// NewFaceAttributesEngine initializes a new engine. Nil params select DefaultEngineParams.
func NewFaceAttributesEngine(params *config.EngineParams) (*FaceAttributesEngine, error) {
	if params == nil {
		params = config.DefaultEngineParams
	}
	params = params.Clone()
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &FaceAttributesEngine{
		Params:    params,
		smoothing: modules.NewSmootherRegistry(params.SmoothingAlpha, params.SeedFromFirstReading),
	}, nil
}

func (c *FaceAttributesEngine) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}

/*
Analyze runs the detector on a frame and assembles the attributes of every detected face.

Inputs:

  - frame (gocv.Mat): camera frame.
  - detector (LandmarkDetector): upstream landmark detector.

Outputs:

  - attributes ([]config.FaceAttributes): one record per detected face, in detector order.

A detector failure or an empty frame aborts the whole frame: the result is nil and the
error says why.
*/
func (c *FaceAttributesEngine) Analyze(frame gocv.Mat, detector LandmarkDetector) ([]config.FaceAttributes, error) {
	if detector == nil {
		return nil, ErrNilDetector
	}
	if frame.Empty() {
		c.logf("skipping frame: %v", ErrEmptyFrame)
		return nil, ErrEmptyFrame
	}

	faces, err := detector.Detect(frame)
	if err != nil {
		c.logf("skipping frame: landmark detection failed: %v", err)
		return nil, errors.Wrap(err, "landmark detection failed")
	}
	return c.ProcessFrame(frame, faces)
}

/*
AnalyzeEncoded decodes an encoded image (JPEG, PNG, ...) and runs Analyze on it.

Inputs:

  - bImage ([]byte): encoded frame.
  - detector (LandmarkDetector): upstream landmark detector.

Outputs:

  - attributes ([]config.FaceAttributes): one record per detected face, in detector order.
*/
func (c *FaceAttributesEngine) AnalyzeEncoded(bImage []byte, detector LandmarkDetector) ([]config.FaceAttributes, error) {
	frame, err := utils.ConvertImageToMat(bImage)
	defer frame.Close()
	if err != nil {
		c.logf("skipping frame: %v", err)
		return nil, errors.Wrap(ErrEmptyFrame, err.Error())
	}
	return c.Analyze(*frame, detector)
}

// ProcessFrame assembles attributes for faces already detected on frame.
func (c *FaceAttributesEngine) ProcessFrame(frame gocv.Mat, faces []config.DetectedFace) ([]config.FaceAttributes, error) {
	if frame.Empty() {
		return nil, ErrEmptyFrame
	}
	brightness := modules.EstimateBrightnessMat(frame)
	return c.assemble(utils.MatSize(frame), brightness, faces), nil
}

// ProcessImage is ProcessFrame for image.Image frames.
func (c *FaceAttributesEngine) ProcessImage(img image.Image, faces []config.DetectedFace) ([]config.FaceAttributes, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyFrame
	}
	bounds := img.Bounds()
	size := config.Size{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
	brightness := modules.EstimateBrightness(img)
	return c.assemble(size, brightness, faces), nil
}

// Forget drops the eye smoothing state of a face that left the scene.
func (c *FaceAttributesEngine) Forget(trackingID string) {
	c.smoothing.Forget(trackingID)
}

// Reset clears all eye smoothing state.
func (c *FaceAttributesEngine) Reset() {
	c.smoothing.Reset()
}

// TrackedFaces returns the number of tracking IDs with smoothing state.
func (c *FaceAttributesEngine) TrackedFaces() int {
	return c.smoothing.Len()
}

func (c *FaceAttributesEngine) assemble(frame config.Size, brightness float64, faces []config.DetectedFace) []config.FaceAttributes {
	mapper := modules.NewCoordinateMapper(frame, c.Params.Viewport)

	results := make([]config.FaceAttributes, 0, len(faces))
	for idx := range faces {
		results = append(results, c.faceAttributes(mapper, &faces[idx], brightness))
	}
	return results
}

func (c *FaceAttributesEngine) faceAttributes(mapper *modules.CoordinateMapper, face *config.DetectedFace, brightness float64) config.FaceAttributes {
	box := mapper.Rect(face.BoundingBox)
	contours := modules.BuildContourMap(mapper, face, c.Params.IncludeCheeks)

	leftEye := contours[config.ContourLeftEye]
	rightEye := contours[config.ContourRightEye]
	outerLips := contours[config.ContourUpperLipTop]

	state := c.smoothing.Get(face.TrackingID)
	leftProb := c.smoothEye(state.Left, leftEye)
	rightProb := c.smoothEye(state.Right, rightEye)

	return config.FaceAttributes{
		TrackingID:              face.TrackingID,
		RollAngle:               modules.RadiansToDegrees(face.Roll),
		PitchAngle:              modules.PitchProxy(leftEye, rightEye, outerLips, box.Height, c.Params.PitchScale),
		YawAngle:                modules.RadiansToDegrees(face.Yaw),
		Bounds:                  config.NewBounds(box),
		Contours:                contours,
		Brightness:              brightness,
		LeftEyeOpenProbability:  leftProb,
		RightEyeOpenProbability: rightProb,
		LeftEyeState:            modules.EyeStateFromProbability(leftProb, c.Params.ClosedThreshold, c.Params.OpenThreshold),
		RightEyeState:           modules.EyeStateFromProbability(rightProb, c.Params.ClosedThreshold, c.Params.OpenThreshold),
		SmilingProbability:      modules.SmileProbability(outerLips, c.Params.SmileOffset, c.Params.SmileRange),
	}
}

// smoothEye feeds the eye's raw openness into its smoother. Without a measurement the
// smoother is left untouched and the probability is absent.
func (c *FaceAttributesEngine) smoothEye(smoother *modules.EMASmoother, contour []config.PixelPoint) *float64 {
	raw := modules.EstimateEyeOpen(contour, c.Params)
	if raw == nil {
		return nil
	}
	return utils.RefPointer(smoother.Update(*raw))
}
