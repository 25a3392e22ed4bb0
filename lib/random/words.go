package random

import (
	"slices"

	"github.com/go-loremipsum/loremipsum"
)

// CommonWords is the default vocabulary.
// Duplicates are intended, they bias the sampling.
var CommonWords = []string{
	"the", "be", "to", "of", "and", "a", "in", "that", "have", "I",
	"it", "for", "not", "on", "with", "he", "as", "you", "do", "at",
	"this", "but", "his", "by", "from", "they", "we", "say", "her", "she",
	"or", "an", "will", "my", "one", "all", "would", "there", "their", "what",
	"so", "up", "out", "if", "about", "who", "get", "which", "go", "me",
	"when", "make", "can", "like", "time", "no", "just", "him", "know", "take",
	"people", "into", "year", "your", "good", "some", "could", "them", "see", "other",
	"than", "then", "now", "look", "only", "come", "its", "over", "think", "also",
	"back", "after", "use", "two", "how", "our", "work", "first", "well", "way",
	"even", "new", "want", "because", "any", "these", "give", "day", "most", "us",
	"is", "are", "was", "were", "has", "had", "been", "being", "have", "having",
	"does", "did", "doing", "done", "said", "says", "saying", "went", "gone", "going",
}

// Punctuation is the set of marks which may follow a word
var Punctuation = []string{",", ".", ";", ":", "!", "?", "-", "'", `"`}

const (
	VocabularyCommon = "common"
	VocabularyLorem  = "lorem"
)

// Vocabulary returns words to build lines from
type Vocabulary interface {
	Word() string
}

// List is vocabulary sampling uniformly from fixed list of words
type List struct {
	random *Random
	words  []string
}

func NewList(r *Random, words []string) *List {
	return &List{random: r, words: words}
}

func (l *List) Word() string {
	return Element(l.random, l.words)
}

// Contains reports whether word belongs to the list
func (l *List) Contains(word string) bool {
	return slices.Contains(l.words, word)
}

// Lorem is vocabulary of lorem ipsum words
type Lorem struct {
	gen *loremipsum.LoremIpsum
}

func NewLorem(seed uint64) *Lorem {
	return &Lorem{gen: loremipsum.NewWithSeed(int64(seed))}
}

func (l *Lorem) Word() string {
	return l.gen.Word()
}

// NewVocabulary returns vocabulary by name.
// The ok is false for unknown name.
func NewVocabulary(name string, r *Random) (Vocabulary, bool) {
	switch name {
	case "", VocabularyCommon:
		return NewList(r, CommonWords), true
	case VocabularyLorem:
		return NewLorem(r.Seed()), true
	}
	return nil, false
}
