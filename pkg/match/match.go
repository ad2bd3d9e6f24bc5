package match

import (
	"errors"
	"strings"

	"github.com/mchmarny/gunghap/pkg/hangul"
	"golang.org/x/text/unicode/norm"
)

const minLength = 2

// ErrInsufficientInput is returned when the merged names have fewer than two
// characters to reduce.
var ErrInsufficientInput = errors.New("at least two characters are required across both names")

// Result is the outcome of a single compatibility query.
type Result struct {
	A       string    `json:"a" yaml:"a"`
	B       string    `json:"b" yaml:"b"`
	Merged  string    `json:"merged" yaml:"merged"`
	Strokes []int     `json:"strokes" yaml:"strokes"`
	Trace   [][]int   `json:"trace" yaml:"trace"`
	Score   int       `json:"score" yaml:"score"`
	Letters []*Letter `json:"letters,omitempty" yaml:"letters,omitempty"`
}

// Letter describes how a single character was scored.
type Letter struct {
	Char     string `json:"char" yaml:"char"`
	Syllable bool   `json:"syllable" yaml:"syllable"`
	Initial  string `json:"initial,omitempty" yaml:"initial,omitempty"`
	Vowel    string `json:"vowel,omitempty" yaml:"vowel,omitempty"`
	Final    string `json:"final,omitempty" yaml:"final,omitempty"`
	Strokes  int    `json:"strokes" yaml:"strokes"`
}

type options struct {
	normalize bool
	letters   bool
}

// Option configures Compute.
type Option func(*options)

// WithNormalization composes conjoining jamo into precomposed syllables (NFC)
// before the names are interleaved.
func WithNormalization() Option {
	return func(o *options) {
		o.normalize = true
	}
}

// WithLetters includes the per-character breakdown in the result.
func WithLetters() Option {
	return func(o *options) {
		o.letters = true
	}
}

// Compute scores the compatibility of names a and b. Surrounding whitespace is
// trimmed from both. ErrInsufficientInput is returned when fewer than two
// characters remain in total.
func Compute(a, b string, opts ...Option) (*Result, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	a = prepare(a, o.normalize)
	b = prepare(b, o.normalize)

	merged := Interleave([]rune(a), []rune(b))
	if len(merged) < minLength {
		return nil, ErrInsufficientInput
	}

	strokes := make([]int, len(merged))
	for i, r := range merged {
		strokes[i] = hangul.Strokes(r)
	}

	trace, err := Reduce(strokes)
	if err != nil {
		return nil, err
	}

	res := &Result{
		A:       a,
		B:       b,
		Merged:  string(merged),
		Strokes: strokes,
		Trace:   trace,
		Score:   trace[len(trace)-1][0],
	}

	if o.letters {
		res.Letters = Letters(res.Merged)
	}

	return res, nil
}

// Letters returns the scoring breakdown of every character in text.
func Letters(text string) []*Letter {
	list := make([]*Letter, 0, len(text))
	for _, r := range text {
		l := &Letter{Char: string(r)}
		if s, ok := hangul.Decompose(r); ok {
			l.Syllable = true
			l.Initial = string(s.Initial)
			l.Vowel = string(s.Vowel)
			if s.Final != 0 {
				l.Final = string(s.Final)
			}
			l.Strokes = s.Strokes()
		}
		list = append(list, l)
	}
	return list
}

// Normalize composes conjoining jamo sequences in s into precomposed
// syllables (Unicode NFC).
func Normalize(s string) string {
	return norm.NFC.String(s)
}

func prepare(s string, normalize bool) string {
	s = strings.TrimSpace(s)
	if normalize {
		s = Normalize(s)
	}
	return s
}
