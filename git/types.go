package git

// Result is the outcome of a synchronous query.
type Result struct {
	// Success is true when git exited with status zero.
	Success bool

	// Output is git's stdout.
	Output string

	// Err is the classified failure, nil on success.
	Err error
}

// StreamResult is the single value delivered by Stream.
type StreamResult struct {
	Output []byte
	Err    error
}
