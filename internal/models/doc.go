// Package models defines the core domain models for the consent-tracking
// dashboard.
//
// # Models
//
//   - User: the currently signed-in identity (no credential data)
//   - Project: top-level unit of work owning all of its child records
//   - Person: a data subject tracked for consent within a project
//   - ImageRecord: name/size metadata for an uploaded image (never bytes)
//   - DataEntry: free-form key/value metadata attached to a project
//   - ProjectEvent: one append-only audit-log entry
//
// # Design Principles
//
//  1. **Composition**: a Project exclusively owns its persons, images, data
//     entries and events; no child record outlives or is shared outside its
//     parent.
//  2. **Store-assigned identity**: every ID and timestamp is assigned inside
//     the store packages, never by callers.
//  3. **Stable encoding**: JSON field names match the durable persistence
//     encoding exactly, so a stored collection round-trips unchanged.
//
// Timestamps are Unix milliseconds throughout.
package models
