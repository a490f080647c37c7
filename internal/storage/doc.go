// Package storage names and persists image artifacts.
//
// Artifacts live in one flat directory; the generated filename is the
// artifact's identifier. Names combine a sanitized stem, a UTC timestamp and
// a random suffix, which makes concurrent writes safe without any locking.
package storage
