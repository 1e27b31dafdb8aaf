// Package filter holds the pieces shared by the probabilistic filters in this module:
// the common Filter surface, the hash families used to derive probe positions, and a
// few numeric helpers used when sizing.
package filter

// Filter is an approximate set membership structure.
// Contains may report false positives but never false negatives.
type Filter interface {
	Insert(data []byte)
	Contains(data []byte) bool
}
