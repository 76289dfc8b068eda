// Package connectors provides document sources for the index. The
// filesystem connector lists, reads, and watches local files, filtered
// by extension and size; its resolver turns user-supplied names into
// absolute paths.
package connectors
