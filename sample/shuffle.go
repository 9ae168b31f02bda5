package sample

import (
	"github.com/moontrade/chi/dist"
	"github.com/moontrade/chi/rng"
)

// Shuffle permutes s in place with a Fisher-Yates pass. Every one of the
// n! orderings is equally likely because the index draws are unbiased.
func Shuffle[T any](src rng.Source, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := dist.Int(src, 0, i+1)
		s[i], s[j] = s[j], s[i]
	}
}

// Pick returns a uniformly chosen element of s. Panics if s is empty.
func Pick[T any](src rng.Source, s []T) T {
	return s[dist.Int(src, 0, len(s))]
}
