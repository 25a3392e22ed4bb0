package random

import "strings"

// Line returns words joined by single space.
// The number of words is random in range of [n[0],n[1]].
// Each word gets random punctuation mark with probability punctuation.
func (r *Random) Line(v Vocabulary, n []int, punctuation float64) string {
	count := r.Value(n)
	words := make([]string, 0, count)
	for x := 0; x < count; x++ {
		word := v.Word()
		if r.Chance(punctuation) {
			word += Element(r, Punctuation)
		}
		words = append(words, word)
	}
	return strings.Join(words, " ")
}
