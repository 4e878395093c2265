// Package detection turns raw object-detector output into typed game facts.
//
// Two detectors look at every frame of a Shut the Box game: a box detector whose
// classes are labelled "<n>-open" / "<n>-closed", and a dice detector whose
// classes are bare face values ("1" through "6"). This package holds the wire
// types for their output (Detection, Detector, Frame) and the label parser that
// converts each detection into a BoxFact or a DiceFact.
//
// # Rejections
//
// Detector output is noisy. A detection with a malformed label or a class index
// outside the detector's class list is never fatal: the parser returns a
// *RejectionError, the detection is dropped, and the caller moves on to the
// next one. Callers classify rejections with errors.Is against
// ErrClassOutOfRange, ErrMalformedLabel, ErrUnknownStatus and ErrNonNumericLabel.
//
// # Coordinate System
//
// Bounds use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//   - (X1, Y1) is inclusive, (X2, Y2) is exclusive
//
// Box numbers and dice values are not range-checked. A "12-open" label is a
// valid fact for box 12, and a "7" dice label is a valid face of 7.
package detection
