package game

// Solution lists every legal move for a dice roll.
type Solution struct {
	// DiceSum is the target every combination adds up to.
	DiceSum int `json:"dice_sum"`

	// Combinations are grouped by size (smallest first); within a size they
	// follow the positions of the open boxes they were drawn from.
	Combinations [][]int `json:"combinations"`
}

// Count returns the number of legal moves.
func (s Solution) Count() int { return len(s.Combinations) }

// Solve returns every non-empty subset of open whose elements sum to the dice total.
//
// Subsets are enumerated by increasing size and, within a size, in positional
// order of open (lexicographic by index, not by value). The empty
// subset is never a candidate, so a zero dice total has no moves. open is not
// modified.
//
// Enumeration is O(2^n) in len(open), which is fine for a nine-box board.
func Solve(dice []int, open []int) Solution {
	target := sum(dice)
	solution := Solution{DiceSum: target, Combinations: [][]int{}}

	n := len(open)
	idx := make([]int, n)
	for k := 1; k <= n; k++ {
		for i := 0; i < k; i++ {
			idx[i] = i
		}
		for {
			total := 0
			for _, i := range idx[:k] {
				total += open[i]
			}
			if total == target {
				combo := make([]int, k)
				for j, i := range idx[:k] {
					combo[j] = open[i]
				}
				solution.Combinations = append(solution.Combinations, combo)
			}
			if !nextCombination(idx[:k], n) {
				break
			}
		}
	}
	return solution
}

// nextCombination advances idx to the next k-combination of [0, n) in
// lexicographic order. It returns false after the last one.
func nextCombination(idx []int, n int) bool {
	k := len(idx)
	i := k - 1
	for i >= 0 && idx[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	idx[i]++
	for j := i + 1; j < k; j++ {
		idx[j] = idx[j-1] + 1
	}
	return true
}
