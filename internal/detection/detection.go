package detection

import "fmt"

// Kind identifies which detector produced a detection.
type Kind int

const (
	// KindBox marks detections from the box detector ("<n>-open" / "<n>-closed").
	KindBox Kind = iota
	// KindDice marks detections from the dice detector (bare integer labels).
	KindDice
)

// String returns the detector name used in logs and warnings.
func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindDice:
		return "dice"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Bounds represents a rectangular bounding box in pixel coordinates.
//
// The coordinate convention follows standard image bounds:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
type Bounds struct {
	X1 int `json:"x1"` // Left edge (inclusive)
	Y1 int `json:"y1"` // Top edge (inclusive)
	X2 int `json:"x2"` // Right edge
	Y2 int `json:"y2"` // Bottom edge
}

// Width returns the horizontal extent in pixels.
func (b Bounds) Width() int { return b.X2 - b.X1 }

// Height returns the vertical extent in pixels.
func (b Bounds) Height() int { return b.Y2 - b.Y1 }

// Detection is one object-localization result from an external detector.
type Detection struct {
	// Bounds is the detected object's bounding box.
	Bounds Bounds `json:"bounds"`

	// Label is the class label, e.g. "4-open" or "6". When empty, the label is
	// looked up from the detector's class list using ClassIndex.
	Label string `json:"label,omitempty"`

	// ClassIndex is the detector's class id for this detection.
	ClassIndex int `json:"class_index"`

	// Confidence is the detector score (0.0 to 1.0). It is carried for display
	// only; it never influences how facts are aggregated.
	Confidence float64 `json:"confidence,omitempty"`
}

// Detector holds one detector's output for a single frame.
type Detector struct {
	// Classes is the detector's known class list, indexed by class id.
	// When empty, class indexes are not range-checked and labels are taken as given.
	Classes []string `json:"classes,omitempty"`

	// Detections are in the order the detector emitted them.
	Detections []Detection `json:"detections"`
}

// Frame is everything the two detectors reported for one image or camera frame.
type Frame struct {
	Boxes Detector `json:"boxes"`
	Dice  Detector `json:"dice"`
}

// Facts parses every detection of the frame, box detector first.
//
// Facts are returned in detection order. Rejected detections never stop
// parsing; each one is reported as a *RejectionError in rejections.
func (f Frame) Facts() (boxes []BoxFact, dice []DiceFact, rejections []error) {
	for _, d := range f.Boxes.Detections {
		fact, err := ParseBox(d, f.Boxes.Classes)
		if err != nil {
			rejections = append(rejections, err)
			continue
		}
		boxes = append(boxes, fact)
	}
	for _, d := range f.Dice.Detections {
		fact, err := ParseDice(d, f.Dice.Classes)
		if err != nil {
			rejections = append(rejections, err)
			continue
		}
		dice = append(dice, fact)
	}
	return boxes, dice, rejections
}
