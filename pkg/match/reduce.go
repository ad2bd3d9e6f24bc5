package match

const base = 10

// Reduce folds values into a reduction trace. Row 0 is a copy of values; each
// following row holds the sums of adjacent pairs of the previous row modulo 10.
// The last row has a single element, the score. Values are expected to be
// non-negative.
func Reduce(values []int) ([][]int, error) {
	if len(values) < minLength {
		return nil, ErrInsufficientInput
	}

	trace := make([][]int, 0, len(values))
	cur := append([]int(nil), values...)
	trace = append(trace, cur)

	for len(cur) > 1 {
		next := make([]int, len(cur)-1)
		for i := range next {
			next[i] = (cur[i] + cur[i+1]) % base
		}
		trace = append(trace, next)
		cur = next
	}

	return trace, nil
}
