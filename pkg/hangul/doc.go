// Package hangul decomposes precomposed Hangul syllables into their initial,
// vowel and final letters and scores them by stroke count.
package hangul
