package match

// Interleave merges a and b by alternating positions: a[0], b[0], a[1], b[1]...
// The tail of the longer input is appended in order.
func Interleave(a, b []rune) []rune {
	merged := make([]rune, 0, len(a)+len(b))
	for i := 0; i < max(len(a), len(b)); i++ {
		if i < len(a) {
			merged = append(merged, a[i])
		}
		if i < len(b) {
			merged = append(merged, b[i])
		}
	}
	return merged
}
