// Package match scores the compatibility of two names written in Hangul.
//
// The two names are interleaved character by character, every character is
// scored by its stroke count, and the stroke sequence is folded by adjacent
// sums modulo 10 until a single digit remains.
package match
