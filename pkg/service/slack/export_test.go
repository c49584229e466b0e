package slack

// Export internal functions for testing
var (
	Truncate = truncate
)
