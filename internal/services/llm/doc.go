// Package llm wraps the chat-completion API used for text generation.
//
// The client retries transient transport failures with capped backoff and
// honours Retry-After hints. Safety refusals are not retried: they surface
// as *BlockedError carrying the provider's literal reason so callers can log
// and display it verbatim.
package llm
