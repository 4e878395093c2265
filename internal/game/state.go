package game

import "github.com/ironsheep/shutbox-mcp/internal/detection"

// BoardSize is the number of boxes on a standard board.
const BoardSize = 9

// MaxDice is the number of dice a frame can show.
const MaxDice = 2

// BoxAggregation is the result of folding a frame's box facts.
type BoxAggregation struct {
	// Open holds open box numbers in first-seen order.
	Open []int

	// Closed holds closed box numbers in first-seen order.
	Closed []int

	// Boxes holds the final fact for each number, in first-seen order.
	Boxes []detection.BoxFact

	// Fallback is set when the frame had no box facts and a fresh board was assumed.
	Fallback bool
}

// DiceAggregation is the result of folding a frame's dice facts.
type DiceAggregation struct {
	// Values holds at most MaxDice face values in detection order.
	Values []int

	// Dice holds the facts behind Values.
	Dice []detection.DiceFact

	// Discarded counts dice facts dropped past MaxDice.
	Discarded int
}

// AggregateBoxes folds box facts into one fact per box number.
//
// When the same number is seen more than once, the last fact processed wins
// its status and bounds, while the number keeps the position where it was
// first seen. When there are no facts at all, every box 1..BoardSize is open.
func AggregateBoxes(facts []detection.BoxFact) BoxAggregation {
	if len(facts) == 0 {
		return freshBoard()
	}

	index := make(map[int]int, len(facts))
	boxes := make([]detection.BoxFact, 0, len(facts))
	for _, f := range facts {
		if i, ok := index[f.Number]; ok {
			boxes[i] = f
			continue
		}
		index[f.Number] = len(boxes)
		boxes = append(boxes, f)
	}

	agg := BoxAggregation{
		Open:   []int{},
		Closed: []int{},
		Boxes:  boxes,
	}
	for _, f := range boxes {
		if f.Open() {
			agg.Open = append(agg.Open, f.Number)
		} else {
			agg.Closed = append(agg.Closed, f.Number)
		}
	}
	return agg
}

// freshBoard is the fallback state: all boxes open, no bounds known.
func freshBoard() BoxAggregation {
	agg := BoxAggregation{
		Open:     make([]int, 0, BoardSize),
		Closed:   []int{},
		Boxes:    []detection.BoxFact{},
		Fallback: true,
	}
	for n := 1; n <= BoardSize; n++ {
		agg.Open = append(agg.Open, n)
	}
	return agg
}

// AggregateDice keeps the first MaxDice dice facts in detection order.
func AggregateDice(facts []detection.DiceFact) DiceAggregation {
	kept := facts
	if len(kept) > MaxDice {
		kept = kept[:MaxDice]
	}

	agg := DiceAggregation{
		Values:    make([]int, len(kept)),
		Dice:      append([]detection.DiceFact(nil), kept...),
		Discarded: len(facts) - len(kept),
	}
	for i, f := range kept {
		agg.Values[i] = f.Value
	}
	if agg.Dice == nil {
		agg.Dice = []detection.DiceFact{}
	}
	return agg
}

// GameState is the canonical board for one frame.
//
// A GameState is built once per frame and is never modified afterwards;
// Solve and the report formatter only read it.
type GameState struct {
	// OpenBoxes are the open box numbers in detection order, without duplicates.
	OpenBoxes []int `json:"open_boxes"`

	// ClosedBoxes are the closed box numbers in detection order.
	ClosedBoxes []int `json:"closed_boxes"`

	// DiceValues are at most two face values in detection order.
	DiceValues []int `json:"dice_values"`

	// Fallback is set when no box was detected and a fresh board was assumed.
	Fallback bool `json:"fallback"`

	// Boxes and Dice are the facts kept after aggregation, for drawing.
	Boxes []detection.BoxFact  `json:"boxes"`
	Dice  []detection.DiceFact `json:"dice"`
}

// NewGameState combines the two aggregations into a GameState.
func NewGameState(boxes BoxAggregation, dice DiceAggregation) GameState {
	return GameState{
		OpenBoxes:   boxes.Open,
		ClosedBoxes: boxes.Closed,
		DiceValues:  dice.Values,
		Fallback:    boxes.Fallback,
		Boxes:       boxes.Boxes,
		Dice:        dice.Dice,
	}
}

// DiceSum returns the total of the dice values, 0 when no dice were seen.
func (s GameState) DiceSum() int {
	return sum(s.DiceValues)
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
