package service

// Hooks so the service_test package can reach the classification
// internals directly.
var (
	ResolveByHints = resolveByHints
	RetryBackoff   = retryBackoff
)
