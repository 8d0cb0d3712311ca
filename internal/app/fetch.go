package app

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"fget/internal/config"
	"fget/internal/fetcher"
	"fget/internal/logctx"
	"fget/internal/progress"
	"fget/internal/ui"
)

// Options configures a single fetch invocation.
type Options struct {
	URL        string
	TargetPath string
}

// FetchApp wires the fetcher to the console progress UI.
type FetchApp struct {
	cfg       *config.Config
	consoleUI *ui.ConsoleUI
}

// NewFetchApp creates the fetch application.
func NewFetchApp(cfg *config.Config, consoleUI *ui.ConsoleUI) *FetchApp {
	return &FetchApp{
		cfg:       cfg,
		consoleUI: consoleUI,
	}
}

// Run performs the download described by opts. The fetch and the progress
// rendering run on separate goroutines joined by an errgroup; the progress
// channel is the only thing between them.
func (a *FetchApp) Run(ctx context.Context, opts *Options) error {
	if opts.URL == "" {
		return fmt.Errorf("source url is required")
	}
	if opts.TargetPath == "" {
		return fmt.Errorf("target path is required")
	}

	logger := logctx.LoggerFromContext(ctx)
	logger.Debug("starting fetch", "url", opts.URL, "target", opts.TargetPath)

	updates := make(chan progress.Update, 1)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(updates)

		f := fetcher.New(a.cfg, func(u progress.Update) {
			select {
			case updates <- u:
			case <-gctx.Done():
			}
		})

		return f.Fetch(gctx, opts.URL, opts.TargetPath)
	})

	g.Go(func() error {
		a.consoleUI.Run(gctx, filepath.Base(opts.TargetPath), updates)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	a.consoleUI.ShowTransferSummary()

	return nil
}
