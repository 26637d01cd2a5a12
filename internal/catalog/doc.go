// Package catalog enumerates the entity kinds trackdesk manages and their
// field schemas.
//
// The catalog is pure static data: no I/O, no store access. Each kind
// declares its id column, display column, and an ordered field list that
// doubles as the worksheet header. Reference fields name the kind whose
// records supply their options; asking for an unknown kind panics, since
// that is always a programming mistake rather than user input.
package catalog
