// Package domain defines the core business entities for parley.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Chunk: A retrievable unit of document text
//   - DocumentInfo: A loaded document and its chunk count
//   - ScoredResult: A ranked retrieval hit
//   - Fact: A remembered key/value pair
//   - Todo: A todo-list entry
//   - ChatReply: The outcome of one chat turn
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
