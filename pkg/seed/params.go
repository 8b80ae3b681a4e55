package seed

// SymmetryType selects the global symmetry a generator should apply.
type SymmetryType string

// Symmetry types.
const (
	SymmetryRadial    SymmetryType = "radial"
	SymmetryBilateral SymmetryType = "bilateral"
	SymmetryNone      SymmetryType = "none"
)

// LetterPart names a region of letter anatomy used by extraction generators.
type LetterPart string

// Letter parts.
const (
	PartApex     LetterPart = "apex"
	PartBowl     LetterPart = "bowl"
	PartCrossbar LetterPart = "crossbar"
	PartStem     LetterPart = "stem"
	PartTerminal LetterPart = "terminal"
)

// LetterWeight maps to the stroke weight of letterform-derived shapes.
type LetterWeight string

// Letter weights.
const (
	WeightLight   LetterWeight = "light"
	WeightRegular LetterWeight = "regular"
	WeightBold    LetterWeight = "bold"
	WeightHeavy   LetterWeight = "heavy"
)

// GradientType selects the SVG gradient kind.
type GradientType string

// Gradient types.
const (
	GradientLinear GradientType = "linear"
	GradientRadial GradientType = "radial"
)

// StrokeCap is an SVG stroke-linecap value.
type StrokeCap string

// Stroke caps.
const (
	CapButt   StrokeCap = "butt"
	CapRound  StrokeCap = "round"
	CapSquare StrokeCap = "square"
)

// StrokeJoin is an SVG stroke-linejoin value.
type StrokeJoin string

// Stroke joins.
const (
	JoinMiter StrokeJoin = "miter"
	JoinRound StrokeJoin = "round"
	JoinBevel StrokeJoin = "bevel"
)

// Parameters is the deterministic vector derived from a master-seed hash.
// Every field is filled from a disjoint slice of the hash-derived entropy
// pool and mapped into the documented domain noted on the field. Identical
// hashes always produce identical Parameters.
type Parameters struct {
	StrokeWidth   float64 // [2, 8]
	CurveTension  float64 // [0, 1]
	CornerRadius  float64 // [0, 12]
	ElementCount  int     // [3, 12]
	Rotation      float64 // [0, 360)
	AspectRatio   float64 // [0.6, 1.6]
	ScaleVariance float64 // [0, 0.5]

	SymmetryType SymmetryType
	LetterPart   LetterPart
	LetterWeight LetterWeight

	OverlapAmount  float64 // [0, 20]
	InterlockDepth float64 // [2, 14]
	SpacingRatio   float64 // [0.8, 2.0]

	GradientAngle  float64 // [0, 360)
	GradientType   GradientType
	GradientSpread float64 // [0.2, 1]
	EdgeSoftness   float64 // [0, 4]

	ShapeComplexity int     // [1, 6]
	StrokeTaper     float64 // [0, 0.8]
	StrokeCap       StrokeCap
	StrokeJoin      StrokeJoin

	CutoutPosition   float64 // [0, 1]
	OffsetY          float64 // [-8, 8]
	FillOpacity      float64 // [0.35, 1]
	SecondaryOpacity float64 // [0.2, 0.9]

	BarCount     int     // [3, 9]
	BarGap       float64 // [1, 6]
	ChevronAngle float64 // [15, 75]

	LoopRadius float64 // [12, 30]
	LoopCount  int     // [2, 5]

	PetalCount   int     // [3, 8]
	PetalLength  float64 // [18, 40]
	RadialSpread float64 // [0.5, 1]

	FragmentJitter float64 // [0, 6]
	FragmentCount  int     // [4, 14]

	BlockRatio    float64 // [0.3, 0.7]
	BlockRotation float64 // [0, 90)

	NegativeSpaceSize float64 // [10, 40]
	MergeOffset       float64 // [4, 18]
	StrokeContrast    float64 // [0, 1]

	GlowRadius  float64 // [1, 8]
	GlowOpacity float64 // [0.2, 0.8]

	ExtractIndex int     // [0, 4]
	FusionBlend  float64 // [0, 1]

	GeometrySides int     // [3, 8]
	WaveAmplitude float64 // [2, 12]
	WaveFrequency float64 // [0.5, 3]

	TiltAngle        float64 // [-20, 20]
	InnerRadiusRatio float64 // [0.2, 0.7]
	AccentMix        float64 // [0, 1]
}
