package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"fget/internal/config"
	"fget/internal/fetcher"
	"fget/internal/ui"
)

func newTestApp() *FetchApp {
	cfg := config.NewDefaultConfig()
	return NewFetchApp(cfg, ui.NewConsoleUI(cfg))
}

func TestRunDownloadsFile(t *testing.T) {
	payload := bytes.Repeat([]byte("0123456789"), 5000)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	dst := filepath.Join(t.TempDir(), "out.bin")

	err := newTestApp().Run(context.Background(), &Options{
		URL:        srv.URL,
		TargetPath: dst,
	})
	require.NoError(t, err)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestRunPropagatesFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	dst := filepath.Join(t.TempDir(), "out.bin")

	err := newTestApp().Run(context.Background(), &Options{
		URL:        srv.URL,
		TargetPath: dst,
	})
	require.Error(t, err)

	var statusErr *fetcher.HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusGone, statusErr.StatusCode)
}

func TestRunRejectsMissingOptions(t *testing.T) {
	err := newTestApp().Run(context.Background(), &Options{TargetPath: "out.bin"})
	require.Error(t, err)

	err = newTestApp().Run(context.Background(), &Options{URL: "http://example.com"})
	require.Error(t, err)
}
