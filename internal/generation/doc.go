// Package generation drives the AI-assisted content flows and their audit
// log.
//
// Prompts are assembled from stored records with reference ids resolved to
// display names, active generation rules folded in. Every provider exchange
// is appended to the generation_log worksheet: successes with the full
// response, refusals with the provider's literal reason, failures with the
// error detail.
package generation
