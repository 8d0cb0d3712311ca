package fetcher

import (
	"errors"
	"fmt"
	"testing"
)

// TestNetworkError_Error verifies error message formatting
func TestNetworkError_Error(t *testing.T) {
	err := &NetworkError{
		URL: "http://example.com/file.iso",
		Err: errors.New("connection refused"),
	}

	expected := "network error fetching http://example.com/file.iso: connection refused"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

// TestHTTPStatusError_Error verifies error message formatting
func TestHTTPStatusError_Error(t *testing.T) {
	err := &HTTPStatusError{
		URL:        "http://example.com/file.iso",
		StatusCode: 404,
		Status:     "404 Not Found",
	}

	expected := "server returned 404 Not Found for http://example.com/file.iso"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

// TestIOError_Error verifies error message formatting
func TestIOError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *IOError
		want string
	}{
		{
			name: "create failure",
			err: &IOError{
				Path: "/tmp/out.bin",
				Op:   "create",
				Err:  errors.New("permission denied"),
			},
			want: "failed to create /tmp/out.bin: permission denied",
		},
		{
			name: "write failure",
			err: &IOError{
				Path: "/tmp/out.bin",
				Op:   "write",
				Err:  errors.New("no space left on device"),
			},
			want: "failed to write /tmp/out.bin: no space left on device",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestNetworkError_Unwrap verifies error chain traversal
func TestNetworkError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := &NetworkError{
		URL: "http://example.com/file.iso",
		Err: cause,
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Verify errors.Is works through the chain
	wrapped := fmt.Errorf("context: %w", err)
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is() should find cause in wrapped chain")
	}
}

// TestIOError_Unwrap verifies error chain traversal
func TestIOError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &IOError{
		Path: "/tmp/out.bin",
		Op:   "write",
		Err:  cause,
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
}

// TestErrorsAs verifies the taxonomy is matchable through wrapping
func TestErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("fetch failed: %w", &HTTPStatusError{
		URL:        "http://example.com",
		StatusCode: 503,
		Status:     "503 Service Unavailable",
	})

	var statusErr *HTTPStatusError
	if !errors.As(wrapped, &statusErr) {
		t.Fatal("errors.As() should match *HTTPStatusError through wrapping")
	}

	if statusErr.StatusCode != 503 {
		t.Errorf("StatusCode = %d, want 503", statusErr.StatusCode)
	}
}
