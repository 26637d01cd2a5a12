// Package records provides worksheet-style persistence for entity records.
//
// Every entity kind maps to a named worksheet holding flat rows of
// column-to-string values. Rows are stored in SQLite as JSON documents keyed
// by (worksheet, row id), which keeps the store tolerant of schema drift: a
// column the caller expects but the stored row lacks reads back as the empty
// string. A file lock on the data directory enforces the single-writer
// assumption of the console.
package records
