// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - DocumentIndex: The in-memory TF-IDF retrieval engine
//   - Normaliser: Transforms file bytes into indexable text
//   - ConfigStore: Application configuration
//   - FactStore: Remembered key/value facts
//   - TodoStore: Todo entries
//   - TranscriptWriter: Chat transcript files. Optional; without one,
//     chat sessions are simply not recorded.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
