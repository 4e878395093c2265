package detection

import (
	"errors"
	"testing"
)

func TestParseBox(t *testing.T) {
	bounds := Bounds{X1: 10, Y1: 20, X2: 50, Y2: 80}

	tests := []struct {
		name       string
		label      string
		wantNumber int
		wantStatus BoxStatus
		wantErr    error
	}{
		{"open", "4-open", 4, StatusOpen, nil},
		{"closed", "9-closed", 9, StatusClosed, nil},
		{"two digit", "12-open", 12, StatusOpen, nil},
		{"suffix after keyword", "3-open-left", 3, StatusOpen, nil},
		{"no separator", "4open", 0, "", ErrMalformedLabel},
		{"non numeric prefix", "abc-open", 0, "", ErrMalformedLabel},
		{"empty prefix", "-open", 0, "", ErrMalformedLabel},
		{"no keyword", "4-flipped", 0, "", ErrUnknownStatus},
		{"keyword case sensitive", "4-OPEN", 0, "", ErrUnknownStatus},
		{"empty label", "", 0, "", ErrMalformedLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fact, err := ParseBox(Detection{Bounds: bounds, Label: tt.label}, nil)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err: got %v, want %v", err, tt.wantErr)
				}
				var rej *RejectionError
				if !errors.As(err, &rej) {
					t.Fatalf("err %T is not a *RejectionError", err)
				}
				if rej.Kind != KindBox || rej.Label != tt.label {
					t.Errorf("rejection: got kind=%s label=%q", rej.Kind, rej.Label)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBox failed: %v", err)
			}
			if fact.Number != tt.wantNumber {
				t.Errorf("Number: got %d, want %d", fact.Number, tt.wantNumber)
			}
			if fact.Status != tt.wantStatus {
				t.Errorf("Status: got %s, want %s", fact.Status, tt.wantStatus)
			}
			if fact.Bounds != bounds {
				t.Errorf("Bounds: got %+v, want %+v", fact.Bounds, bounds)
			}
		})
	}
}

func TestParseDice(t *testing.T) {
	tests := []struct {
		label   string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"6", 6, false},
		{"7", 7, false}, // not range-checked
		{" 3 ", 3, false},
		{"six", 0, true},
		{"3-open", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			fact, err := ParseDice(Detection{Label: tt.label}, nil)
			if tt.wantErr {
				if !errors.Is(err, ErrNonNumericLabel) {
					t.Fatalf("err: got %v, want ErrNonNumericLabel", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDice failed: %v", err)
			}
			if fact.Value != tt.want {
				t.Errorf("Value: got %d, want %d", fact.Value, tt.want)
			}
		})
	}
}

func TestParse_ClassList(t *testing.T) {
	classes := []string{"1-open", "1-closed", "2-open"}

	t.Run("label from class index", func(t *testing.T) {
		fact, err := ParseBox(Detection{ClassIndex: 2}, classes)
		if err != nil {
			t.Fatalf("ParseBox failed: %v", err)
		}
		if fact.Number != 2 || !fact.Open() {
			t.Errorf("got %+v, want box 2 open", fact)
		}
	})

	t.Run("explicit label wins", func(t *testing.T) {
		fact, err := ParseBox(Detection{Label: "1-closed", ClassIndex: 0}, classes)
		if err != nil {
			t.Fatalf("ParseBox failed: %v", err)
		}
		if fact.Open() {
			t.Errorf("got open, want closed")
		}
	})

	for _, idx := range []int{-1, 3, 99} {
		_, err := ParseBox(Detection{Label: "1-open", ClassIndex: idx}, classes)
		if !errors.Is(err, ErrClassOutOfRange) {
			t.Errorf("class %d: got %v, want ErrClassOutOfRange", idx, err)
		}
	}

	_, err := ParseDice(Detection{ClassIndex: 6}, []string{"1", "2", "3", "4", "5", "6"})
	if !errors.Is(err, ErrClassOutOfRange) {
		t.Errorf("dice class 6: got %v, want ErrClassOutOfRange", err)
	}
}

func TestParse_Variant(t *testing.T) {
	fact, err := Parse(KindBox, Detection{Label: "5-open"}, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, ok := fact.(BoxFact); !ok || fact.Kind() != KindBox {
		t.Errorf("got %T, want BoxFact", fact)
	}

	fact, err = Parse(KindDice, Detection{Label: "5"}, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if d, ok := fact.(DiceFact); !ok || d.Value != 5 {
		t.Errorf("got %#v, want DiceFact{Value: 5}", fact)
	}

	fact, err = Parse(KindDice, Detection{Label: "x"}, nil)
	if err == nil || fact != nil {
		t.Errorf("got (%v, %v), want (nil, error)", fact, err)
	}

	if _, err := Parse(Kind(7), Detection{Label: "1"}, nil); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestFrame_Facts(t *testing.T) {
	frame := Frame{
		Boxes: Detector{Detections: []Detection{
			{Label: "abc-open"},
			{Label: "3-closed"},
			{Label: "5-open"},
		}},
		Dice: Detector{Detections: []Detection{
			{Label: "4"},
			{Label: "?"},
			{Label: "2"},
		}},
	}

	boxes, dice, rejections := frame.Facts()

	if len(boxes) != 2 || boxes[0].Number != 3 || boxes[1].Number != 5 {
		t.Errorf("boxes: got %+v", boxes)
	}
	if len(dice) != 2 || dice[0].Value != 4 || dice[1].Value != 2 {
		t.Errorf("dice: got %+v", dice)
	}
	if len(rejections) != 2 {
		t.Fatalf("rejections: got %d, want 2", len(rejections))
	}
	if !errors.Is(rejections[0], ErrMalformedLabel) {
		t.Errorf("rejections[0]: got %v", rejections[0])
	}
	if !errors.Is(rejections[1], ErrNonNumericLabel) {
		t.Errorf("rejections[1]: got %v", rejections[1])
	}
}

func TestKindString(t *testing.T) {
	if KindBox.String() != "box" || KindDice.String() != "dice" {
		t.Errorf("got %q, %q", KindBox.String(), KindDice.String())
	}
	if Kind(5).String() != "kind(5)" {
		t.Errorf("got %q", Kind(5).String())
	}
}
