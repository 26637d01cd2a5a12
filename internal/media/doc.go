// Package media stores uploaded and generated binaries under the configured
// media root, one subdirectory per content class. Records persist the
// relative paths it returns; absolute locations are resolved at read time.
package media
