// Package simhash fingerprints short texts such as product titles so that
// near-duplicates can be found by Hamming distance.
package simhash

import (
	"hash/fnv"
	"math/bits"
	"strings"
	"unicode"
)

// Fingerprint computes a 64-bit SimHash over the whitespace-separated
// tokens of text. Each token votes on every bit of its FNV-64a hash.
func Fingerprint(text string) uint64 {
	return fromTokens(strings.Fields(text))
}

// Title fingerprints a product title. The title is lowercased and stripped
// of punctuation, and word bigrams are added to the single words so that
// reordered titles still differ.
func Title(title string) uint64 {
	words := normalize(title)
	tokens := make([]string, 0, 2*len(words))
	tokens = append(tokens, words...)
	for i := 0; i+1 < len(words); i++ {
		tokens = append(tokens, words[i]+"_"+words[i+1])
	}
	return fromTokens(tokens)
}

func fromTokens(tokens []string) uint64 {
	if len(tokens) == 0 {
		return 0
	}
	var vector [64]int
	for _, tok := range tokens {
		h := fnv.New64a()
		h.Write([]byte(tok))
		sum := h.Sum64()
		for i := 0; i < 64; i++ {
			if sum&(1<<uint(i)) != 0 {
				vector[i]++
			} else {
				vector[i]--
			}
		}
	}
	var fp uint64
	for i := 0; i < 64; i++ {
		if vector[i] > 0 {
			fp |= 1 << uint(i)
		}
	}
	return fp
}

func normalize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Distance returns the Hamming distance between two fingerprints.
func Distance(a, b uint64) int {
	return bits.OnesCount64(a ^ b)
}

// Similar reports whether two fingerprints are within threshold bits.
func Similar(a, b uint64, threshold int) bool {
	return Distance(a, b) <= threshold
}
