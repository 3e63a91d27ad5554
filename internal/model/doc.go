// Package model defines the entity types that make up an event plan:
// guests, guest groups, expense items, and the Plan aggregate that the
// history store versions and the delta engine diffs.
//
// Two serialization forms exist side by side:
//
//   - Standard JSON (struct tags) for the CLI and external collaborators.
//   - Canonical JSON (MarshalCanonical) for change detection and content
//     hashing. Canonical form sorts object keys by UTF-16 code units,
//     NFC-normalizes strings, and never HTML-escapes, so two structurally
//     equal entities always hash identically regardless of field order in
//     their source representation.
//
// Plans are immutable by convention: code that derives a new Plan from an
// existing one deep-copies via Clone and never mutates collections in
// place. The history store relies on this to keep undo frames intact.
package model
