// Package config loads, normalizes, and validates trackdesk configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// TRACKDESK_LLM_API_KEY. The Config type centralizes every knob the console
// needs, so data, log, and media directories plus provider credentials are
// discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
