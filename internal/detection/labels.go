package detection

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Rejection reasons. A *RejectionError wraps exactly one of these.
var (
	ErrClassOutOfRange = errors.New("class index out of range")
	ErrMalformedLabel  = errors.New("label is not in '<n>-open' or '<n>-closed' format")
	ErrUnknownStatus   = errors.New("label has neither 'open' nor 'closed'")
	ErrNonNumericLabel = errors.New("label is not a valid number")
)

// RejectionError reports a detection that could not be turned into a fact.
// It is a recoverable condition: the detection is dropped and parsing continues.
type RejectionError struct {
	Kind       Kind
	Label      string
	ClassIndex int
	Err        error
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s detection %q (class %d): %v", e.Kind, e.Label, e.ClassIndex, e.Err)
}

func (e *RejectionError) Unwrap() error { return e.Err }

// BoxStatus is whether a numbered box is still available.
type BoxStatus string

const (
	StatusOpen   BoxStatus = "open"
	StatusClosed BoxStatus = "closed"
)

// Fact is a parsed detection: either a BoxFact or a DiceFact.
type Fact interface {
	Kind() Kind
}

// BoxFact is the state of one numbered box as seen by the box detector.
type BoxFact struct {
	Number int       `json:"number"`
	Status BoxStatus `json:"status"`
	Bounds Bounds    `json:"bounds"`
}

// Kind implements Fact.
func (BoxFact) Kind() Kind { return KindBox }

// Open reports whether the box is available to be shut.
func (f BoxFact) Open() bool { return f.Status == StatusOpen }

// DiceFact is one die face as seen by the dice detector.
type DiceFact struct {
	Value  int    `json:"value"`
	Bounds Bounds `json:"bounds"`
}

// Kind implements Fact.
func (DiceFact) Kind() Kind { return KindDice }

// Parse dispatches to ParseBox or ParseDice by detector kind.
func Parse(kind Kind, d Detection, classes []string) (Fact, error) {
	switch kind {
	case KindBox:
		f, err := ParseBox(d, classes)
		if err != nil {
			return nil, err
		}
		return f, nil
	case KindDice:
		f, err := ParseDice(d, classes)
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("unknown detector kind: %s", kind)
	}
}

// ParseBox turns a box detection into a BoxFact.
//
// The label must contain a '-' whose prefix is an integer (the box number),
// and must contain "open" or "closed". "open" is checked first.
func ParseBox(d Detection, classes []string) (BoxFact, error) {
	label, err := resolveLabel(KindBox, d, classes)
	if err != nil {
		return BoxFact{}, err
	}

	prefix, _, found := strings.Cut(label, "-")
	if !found {
		return BoxFact{}, reject(KindBox, label, d.ClassIndex, ErrMalformedLabel)
	}
	number, err := strconv.Atoi(strings.TrimSpace(prefix))
	if err != nil {
		return BoxFact{}, reject(KindBox, label, d.ClassIndex, ErrMalformedLabel)
	}

	var status BoxStatus
	switch {
	case strings.Contains(label, "open"):
		status = StatusOpen
	case strings.Contains(label, "closed"):
		status = StatusClosed
	default:
		return BoxFact{}, reject(KindBox, label, d.ClassIndex, ErrUnknownStatus)
	}

	return BoxFact{Number: number, Status: status, Bounds: d.Bounds}, nil
}

// ParseDice turns a dice detection into a DiceFact. The label must be a plain
// integer; the value is not range-checked.
func ParseDice(d Detection, classes []string) (DiceFact, error) {
	label, err := resolveLabel(KindDice, d, classes)
	if err != nil {
		return DiceFact{}, err
	}
	value, err := strconv.Atoi(strings.TrimSpace(label))
	if err != nil {
		return DiceFact{}, reject(KindDice, label, d.ClassIndex, ErrNonNumericLabel)
	}
	return DiceFact{Value: value, Bounds: d.Bounds}, nil
}

// resolveLabel checks the class index against the known class list and fills
// in an empty label from it.
func resolveLabel(kind Kind, d Detection, classes []string) (string, error) {
	if len(classes) == 0 {
		return d.Label, nil
	}
	if d.ClassIndex < 0 || d.ClassIndex >= len(classes) {
		return "", reject(kind, d.Label, d.ClassIndex, ErrClassOutOfRange)
	}
	if d.Label == "" {
		return classes[d.ClassIndex], nil
	}
	return d.Label, nil
}

func reject(kind Kind, label string, classIndex int, err error) *RejectionError {
	return &RejectionError{Kind: kind, Label: label, ClassIndex: classIndex, Err: err}
}
