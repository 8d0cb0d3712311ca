package fetcher

import "fmt"

// NetworkError represents connection, DNS and TLS failures, including a
// response body that dies mid-transfer.
type NetworkError struct {
	URL string // Source URL the request was made against
	Err error  // Underlying error from the transport layer
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPStatusError represents a non-2xx response from the server.
type HTTPStatusError struct {
	URL        string // Source URL the request was made against
	StatusCode int    // Numeric status code, e.g. 404
	Status     string // Status line as reported by the server, e.g. "404 Not Found"
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("server returned %s for %s", e.Status, e.URL)
}

// IOError represents a destination file failure: creation, write or close.
type IOError struct {
	Path string // Destination path that failed
	Op   string // The operation that failed: "create", "write" or "close"
	Err  error  // Underlying error, if any
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
