// Package forms runs the generic create, update, and delete workflows that
// power every entity kind in the catalog.
//
// Create and Update move through collect, validate, commit: supplied values
// are normalized against the field schema, required fields are checked in
// schema order (first failure wins), attachments are persisted before any
// row write, and the store is touched exactly once per workflow. Delete is a
// separate two-phase handshake: a request parks a pending marker in the
// caller's session and only an explicit confirmation mutates the store.
package forms
