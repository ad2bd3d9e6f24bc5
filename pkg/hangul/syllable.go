package hangul

const (
	// SyllableFirst is the first precomposed syllable (가).
	SyllableFirst rune = 0xAC00
	// SyllableLast is the last precomposed syllable (힣).
	SyllableLast rune = 0xD7A3

	initialCount = 19
	vowelCount   = 21
	finalCount   = 28

	syllablesPerInitial = vowelCount * finalCount // 588
)

var (
	initials = [initialCount]rune{
		'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ',
		'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
	}

	vowels = [vowelCount]rune{
		'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ',
		'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ',
	}

	// index 0 is the empty final
	finals = [finalCount]rune{
		0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ',
		'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
	}
)

// Syllable is a precomposed Hangul syllable split into its three slots.
// Letters are Hangul compatibility jamo. Final is 0 when the syllable has no
// final consonant.
type Syllable struct {
	Initial rune
	Vowel   rune
	Final   rune
}

// IsSyllable reports whether r is in the precomposed syllable block.
func IsSyllable(r rune) bool {
	return r >= SyllableFirst && r <= SyllableLast
}

// Decompose splits r into its initial, vowel and final. The second return
// value is false when r is not a precomposed syllable.
func Decompose(r rune) (Syllable, bool) {
	if !IsSyllable(r) {
		return Syllable{}, false
	}

	offset := int(r - SyllableFirst)
	return Syllable{
		Initial: initials[offset/syllablesPerInitial],
		Vowel:   vowels[(offset%syllablesPerInitial)/finalCount],
		Final:   finals[offset%finalCount],
	}, true
}

// Compose is the inverse of Decompose. It returns false when any of the
// letters cannot occupy its slot.
func Compose(s Syllable) (rune, bool) {
	i := indexOf(initials[:], s.Initial)
	v := indexOf(vowels[:], s.Vowel)
	f := indexOf(finals[:], s.Final)
	if i < 0 || v < 0 || f < 0 {
		return 0, false
	}
	return SyllableFirst + rune(i*syllablesPerInitial+v*finalCount+f), true
}

// String returns the syllable as text, or an empty string for an invalid one.
func (s Syllable) String() string {
	r, ok := Compose(s)
	if !ok {
		return ""
	}
	return string(r)
}

// Initials returns the ordered list of initial consonants.
func Initials() []rune {
	return append([]rune(nil), initials[:]...)
}

// Vowels returns the ordered list of vowels.
func Vowels() []rune {
	return append([]rune(nil), vowels[:]...)
}

// Finals returns the ordered list of finals, starting with the empty final.
func Finals() []rune {
	return append([]rune(nil), finals[:]...)
}

func indexOf(list []rune, r rune) int {
	for i, v := range list {
		if v == r {
			return i
		}
	}
	return -1
}
