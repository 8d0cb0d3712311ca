package fetcher

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/dustin/go-humanize"

	"fget/internal/config"
	"fget/internal/logctx"
	"fget/internal/progress"
)

// Fetcher streams a single file over HTTP to a local path, reporting
// cumulative progress after every chunk written.
type Fetcher struct {
	client     *http.Client
	userAgent  string
	bufferSize int
	onProgress progress.Func
}

// New creates a Fetcher. onProgress may be nil when no progress display is
// wanted (e.g. in tests).
func New(cfg *config.Config, onProgress progress.Func) *Fetcher {
	return &Fetcher{
		client:     &http.Client{},
		userAgent:  cfg.HTTP.UserAgent,
		bufferSize: cfg.HTTP.BufferSize,
		onProgress: onProgress,
	}
}

// Fetch downloads source into destination, truncating any existing content.
// The destination file is created before the request goes out so that an
// unwritable path fails without wasting a network round trip. On a mid-body
// failure the partially written file is left in place.
func (f *Fetcher) Fetch(ctx context.Context, source, destination string) error {
	t := NewTransfer(source, destination)
	logger := logctx.LoggerFromContext(ctx).With("transfer_id", t.ID)

	out, err := os.Create(destination)
	if err != nil {
		return &IOError{Path: destination, Op: "create", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		out.Close()
		return &NetworkError{URL: source, Err: err}
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		out.Close()
		return &NetworkError{URL: source, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		out.Close()
		return &HTTPStatusError{URL: source, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	t.TotalBytes = resp.ContentLength
	if t.TotalBytes >= 0 {
		logger.Info("starting download", "url", source, "size", humanize.Bytes(uint64(t.TotalBytes)))
	} else {
		logger.Info("starting download, size unknown", "url", source)
	}

	if err := f.copyBody(t, out, resp.Body); err != nil {
		out.Close()
		return err
	}

	if err := out.Close(); err != nil {
		return &IOError{Path: destination, Op: "close", Err: err}
	}

	logger.Info("download complete", "target", destination, "bytes", humanize.Bytes(t.TransferredBytes))

	return nil
}

// copyBody runs the chunk loop: each chunk is written to the file and
// reported to the observer before the next read is issued. Chunk sizes are
// whatever the transport hands back, capped by the configured buffer.
func (f *Fetcher) copyBody(t *Transfer, out *os.File, body io.Reader) error {
	buf := make([]byte, f.bufferSize)

	for {
		n, err := body.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				return &IOError{Path: t.Destination, Op: "write", Err: werr}
			}

			t.TransferredBytes += uint64(n)
			if f.onProgress != nil {
				f.onProgress(progress.Update{
					TransferredBytes: t.TransferredBytes,
					TotalBytes:       t.TotalBytes,
				})
			}
		}

		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &NetworkError{URL: t.Source, Err: err}
		}
	}
}
