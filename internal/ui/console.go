package ui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"fget/internal/config"
	"fget/internal/progress"
)

// ConsoleUI renders download progress on stderr with a progress bar. The bar
// is determinate when the server advertised a Content-Length and falls back
// to a spinner with a byte count when it did not.
type ConsoleUI struct {
	bar      *progressbar.ProgressBar
	barWidth int
	throttle time.Duration

	filename     string // Base name of the destination file
	totalBytes   int64  // -1 when the total is unknown
	currentBytes uint64 // Cumulative bytes transferred
	startTime    time.Time
	lastUpdate   time.Time
}

// NewConsoleUI creates a console UI using the progress settings from cfg.
func NewConsoleUI(cfg *config.Config) *ConsoleUI {
	return &ConsoleUI{
		barWidth: cfg.Progress.BarWidth,
		throttle: cfg.Progress.UpdateInterval,
	}
}

// Run consumes progress updates until the channel is closed or the context is
// cancelled. It is meant to run on its own goroutine alongside the fetch.
func (c *ConsoleUI) Run(ctx context.Context, filename string, updates <-chan progress.Update) {
	c.filename = filename

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				// Channel closed, transfer is over one way or the other
				c.finishBar()
				return
			}
			c.updateProgress(update)
		}
	}
}

// initBar initializes the progress bar on the first update, once we know
// whether the total size was advertised.
func (c *ConsoleUI) initBar(sizeKnown bool) {
	if c.bar != nil {
		return
	}

	total := c.totalBytes
	if !sizeKnown {
		total = -1 // Indeterminate spinner
	}

	c.bar = progressbar.NewOptions64(total,
		progressbar.OptionSetDescription(fmt.Sprintf("Downloading %s", c.filename)),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowBytes(false), // Byte display is customized via Describe
		progressbar.OptionSetWidth(c.barWidth),
		progressbar.OptionThrottle(c.throttle),
		progressbar.OptionShowCount(),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(false),
	)
}

// updateProgress advances the bar with the latest transfer state.
func (c *ConsoleUI) updateProgress(update progress.Update) {
	if c.startTime.IsZero() {
		c.startTime = time.Now()
		c.lastUpdate = c.startTime
	}

	c.totalBytes = update.TotalBytes
	c.currentBytes = update.TransferredBytes

	if c.bar == nil {
		c.initBar(update.SizeKnown())
	}

	now := time.Now()
	isComplete := update.SizeKnown() && update.TransferredBytes >= uint64(update.TotalBytes)

	// Redescribing the bar on every chunk is wasteful, so throttle it the
	// same way the bar itself throttles rendering.
	if now.Sub(c.lastUpdate) < c.throttle && !isComplete {
		_ = c.bar.Set64(int64(update.TransferredBytes))
		return
	}
	c.lastUpdate = now

	transferred := humanize.Bytes(update.TransferredBytes)
	if update.SizeKnown() {
		c.bar.Describe(fmt.Sprintf("Downloading %s (%s/%s, %.1f%%, %s)",
			c.filename, transferred, humanize.Bytes(uint64(update.TotalBytes)),
			update.Percentage(), c.throughput(now)))
	} else {
		c.bar.Describe(fmt.Sprintf("Downloading %s (%s, %s)",
			c.filename, transferred, c.throughput(now)))
	}

	_ = c.bar.Set64(int64(update.TransferredBytes))
}

// throughput formats the average transfer speed since the first chunk.
func (c *ConsoleUI) throughput(now time.Time) string {
	elapsed := now.Sub(c.startTime)
	if elapsed <= 0 || c.currentBytes == 0 {
		return "0 B/s"
	}
	return humanize.Bytes(uint64(float64(c.currentBytes)/elapsed.Seconds())) + "/s"
}

// finishBar completes and flushes the bar, if one was ever drawn.
func (c *ConsoleUI) finishBar() {
	if c.bar == nil {
		return
	}
	_ = c.bar.Finish()
	fmt.Fprintln(os.Stderr)
}

// ShowTransferSummary displays a summary of the completed transfer. Call it
// only after Run has returned.
func (c *ConsoleUI) ShowTransferSummary() {
	elapsed := time.Duration(0)
	if !c.startTime.IsZero() {
		elapsed = time.Since(c.startTime)
	}

	speed := "0 B/s"
	if elapsed > 0 && c.currentBytes > 0 {
		speed = humanize.Bytes(uint64(float64(c.currentBytes)/elapsed.Seconds())) + "/s"
	}

	fmt.Printf("=============================================\n")
	fmt.Printf("Download completed successfully!\n")
	fmt.Printf("+ File: %s\n", c.filename)
	fmt.Printf("+ Total bytes: %s\n", humanize.Bytes(c.currentBytes))
	fmt.Printf("+ Transfer time: %s\n", elapsed.Round(time.Millisecond))
	fmt.Printf("+ Average speed: %s\n", speed)
	fmt.Printf("=============================================\n")
}
