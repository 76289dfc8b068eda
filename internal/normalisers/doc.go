// Package normalisers provides implementations of the Normaliser
// interface for the supported document formats. Each normaliser turns
// the raw bytes of one format into indexable text plus a display
// title, keyed off the file extensions it reports.
package normalisers
