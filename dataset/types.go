package dataset

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/stemgraph/atomgraph"
	"github.com/katalvlaran/stemgraph/mask"
	"github.com/katalvlaran/stemgraph/regionprops"
)

// Sentinel errors for dataset construction and access.
var (
	ErrUnsupportedLabelMode = errors.New("dataset: unsupported label mode")
	ErrBadConfig            = errors.New("dataset: invalid configuration")
	ErrBadSplit             = errors.New("dataset: invalid split")
	ErrIndexOutOfRange      = errors.New("dataset: index out of range")
	ErrMissingClassifier    = errors.New("dataset: classifier required unless debug is set")
	ErrSeedCollision        = errors.New("dataset: augmentation seed equals split seed")
	ErrNilDependency        = errors.New("dataset: source and simulator must be non-nil")
	ErrUnknownSubset        = errors.New("dataset: unknown subset")
	ErrNilMask              = errors.New("dataset: classifier returned no mask")
	ErrMissingLabel         = errors.New("dataset: simulator returned no delta label")
)

// Augmentation records the random perturbation applied to one sample.
type Augmentation struct {
	RotationDegrees float64
	Shift           [2]float64 // Å
	Zoom            float64    // pixel-scale multiplier, 1 when disabled
}

// Sample is one assembled example. Every field is freshly built per Get.
type Sample struct {
	Index   int
	ID      string
	Crystal string

	// Image is the simulated intensity image.
	Image *mat.Dense
	// Label is the binary atom mask (1 = atom) with the image's shape.
	Label *mask.Grid

	// PxScale is the effective Å/pixel after zoom.
	PxScale      float64
	Augmentation Augmentation

	// Positions and Numbers describe the atoms in view, in pixels.
	Positions []mask.Point
	Numbers   []int

	// Graph is set by GraphDataset only.
	Graph *GraphSample
}

// GraphSample is the reconstructed atom graph of a sample.
type GraphSample struct {
	Graph *atomgraph.Graph
	// Features is the N×2 node feature block [intensity, r].
	Features *mat.Dense
	// Regions share indices with graph nodes and are in pixel units.
	Regions []regionprops.Region
	// Predicted reports whether the mask came from a classifier.
	Predicted bool
}

// Getter is implemented by Dataset and GraphDataset.
type Getter interface {
	Get(idx int) (*Sample, error)
}
