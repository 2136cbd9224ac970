package wrap

// Error codes for wrapper operations.
const (
	// CodeInvalidConfig is returned when a wrapper factory is constructed
	// with invalid options.
	CodeInvalidConfig = "INVALID_WRAPPER_CONFIG"

	// CodeUnhashableInput is returned by the memoizing wrapper when a call
	// input cannot be used as a cache key.
	CodeUnhashableInput = "UNHASHABLE_INPUT"

	// CodeNotImplemented is returned by the todo wrapper on every call.
	CodeNotImplemented = "NOT_IMPLEMENTED"
)
