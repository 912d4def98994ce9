package config

// FeatureKind names a landmark family produced by the detector.
type FeatureKind string

const (
	FeatureFaceContour  FeatureKind = "face_contour"
	FeatureLeftEyebrow  FeatureKind = "left_eyebrow"
	FeatureRightEyebrow FeatureKind = "right_eyebrow"
	FeatureLeftEye      FeatureKind = "left_eye"
	FeatureRightEye     FeatureKind = "right_eye"
	FeatureNoseCrest    FeatureKind = "nose_crest"
	FeatureNose         FeatureKind = "nose"
	FeatureOuterLips    FeatureKind = "outer_lips"
	FeatureInnerLips    FeatureKind = "inner_lips"
)

// ContourName is a key of the output contour map.
type ContourName string

const (
	ContourFace               ContourName = "FACE"
	ContourLeftEyebrowTop     ContourName = "LEFT_EYEBROW_TOP"
	ContourLeftEyebrowBottom  ContourName = "LEFT_EYEBROW_BOTTOM"
	ContourRightEyebrowTop    ContourName = "RIGHT_EYEBROW_TOP"
	ContourRightEyebrowBottom ContourName = "RIGHT_EYEBROW_BOTTOM"
	ContourLeftEye            ContourName = "LEFT_EYE"
	ContourRightEye           ContourName = "RIGHT_EYE"
	ContourUpperLipTop        ContourName = "UPPER_LIP_TOP"
	ContourUpperLipBottom     ContourName = "UPPER_LIP_BOTTOM"
	ContourLowerLipTop        ContourName = "LOWER_LIP_TOP"
	ContourLowerLipBottom     ContourName = "LOWER_LIP_BOTTOM"
	ContourNoseBridge         ContourName = "NOSE_BRIDGE"
	ContourNoseBottom         ContourName = "NOSE_BOTTOM"
	ContourLeftCheek          ContourName = "LEFT_CHEEK"
	ContourRightCheek         ContourName = "RIGHT_CHEEK"
)

// ContourMap maps contour names to pixel-space point sequences.
type ContourMap map[ContourName][]PixelPoint

// ContourSources binds each directly computed contour to the landmark family it is mapped from.
var ContourSources = []struct {
	Name ContourName
	Kind FeatureKind
}{
	{ContourFace, FeatureFaceContour},
	{ContourLeftEyebrowTop, FeatureLeftEyebrow},
	{ContourRightEyebrowTop, FeatureRightEyebrow},
	{ContourLeftEye, FeatureLeftEye},
	{ContourRightEye, FeatureRightEye},
	{ContourNoseBridge, FeatureNoseCrest},
	{ContourNoseBottom, FeatureNose},
	{ContourUpperLipTop, FeatureOuterLips},
	{ContourUpperLipBottom, FeatureInnerLips},
}

// ContourAliases lists mirrored contours: Alias always holds the exact sequence stored
// under Source.
var ContourAliases = []struct {
	Alias  ContourName
	Source ContourName
}{
	{ContourLeftEyebrowBottom, ContourLeftEyebrowTop},
	{ContourRightEyebrowBottom, ContourRightEyebrowTop},
	{ContourLowerLipTop, ContourUpperLipBottom},
	{ContourLowerLipBottom, ContourUpperLipTop},
}
