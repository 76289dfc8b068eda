// Package services implements the driving port interfaces: document
// loading, ranked queries, facts, todos, chat dispatch, and settings.
// Services orchestrate calls to driven ports (adapters) and hold the
// application's business rules.
package services
