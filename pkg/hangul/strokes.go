package hangul

var (
	// consonantStrokes covers initials and the base letters of finals.
	consonantStrokes = map[rune]int{
		'ㄱ': 2, 'ㄲ': 4, 'ㄴ': 2, 'ㄷ': 3, 'ㄸ': 6, 'ㄹ': 5, 'ㅁ': 4, 'ㅂ': 4, 'ㅃ': 8,
		'ㅅ': 2, 'ㅆ': 4, 'ㅇ': 1, 'ㅈ': 3, 'ㅉ': 6, 'ㅊ': 4, 'ㅋ': 3, 'ㅌ': 4, 'ㅍ': 4, 'ㅎ': 3,
	}

	vowelStrokes = map[rune]int{
		'ㅏ': 2, 'ㅐ': 3, 'ㅑ': 3, 'ㅒ': 4, 'ㅓ': 2, 'ㅔ': 3, 'ㅕ': 3, 'ㅖ': 4,
		'ㅗ': 2, 'ㅘ': 4, 'ㅙ': 5, 'ㅚ': 3, 'ㅛ': 3, 'ㅜ': 2, 'ㅝ': 4, 'ㅞ': 5, 'ㅟ': 3,
		'ㅠ': 3, 'ㅡ': 1, 'ㅢ': 2, 'ㅣ': 1,
	}

	// finalClusters splits compound finals into their base letters.
	finalClusters = map[rune][2]rune{
		'ㄳ': {'ㄱ', 'ㅅ'},
		'ㄵ': {'ㄴ', 'ㅈ'},
		'ㄶ': {'ㄴ', 'ㅎ'},
		'ㄺ': {'ㄹ', 'ㄱ'},
		'ㄻ': {'ㄹ', 'ㅁ'},
		'ㄼ': {'ㄹ', 'ㅂ'},
		'ㄽ': {'ㄹ', 'ㅅ'},
		'ㄾ': {'ㄹ', 'ㅌ'},
		'ㄿ': {'ㄹ', 'ㅍ'},
		'ㅀ': {'ㄹ', 'ㅎ'},
		'ㅄ': {'ㅂ', 'ㅅ'},
	}
)

// ConsonantStrokes returns the stroke count of a consonant letter, or 0 when
// the letter is not in the table.
func ConsonantStrokes(c rune) int {
	return consonantStrokes[c]
}

// VowelStrokes returns the stroke count of a vowel, or 0 when the vowel is not
// in the table.
func VowelStrokes(v rune) int {
	return vowelStrokes[v]
}

// FinalLetters returns the base consonant letters of a final. The empty final
// (0) has no letters.
func FinalLetters(f rune) []rune {
	if f == 0 {
		return nil
	}
	if pair, ok := finalClusters[f]; ok {
		return []rune{pair[0], pair[1]}
	}
	return []rune{f}
}

// FinalStrokes sums the strokes of every letter composing the final.
func FinalStrokes(f rune) int {
	sum := 0
	for _, l := range FinalLetters(f) {
		sum += ConsonantStrokes(l)
	}
	return sum
}

// Strokes returns the stroke count of the syllable.
func (s Syllable) Strokes() int {
	return ConsonantStrokes(s.Initial) + VowelStrokes(s.Vowel) + FinalStrokes(s.Final)
}

// Strokes returns the stroke count of r. Characters outside the syllable block
// count as 0.
func Strokes(r rune) int {
	s, ok := Decompose(r)
	if !ok {
		return 0
	}
	return s.Strokes()
}
