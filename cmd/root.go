package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fget/internal/app"
	"fget/internal/config"
	"fget/internal/logctx"
	"fget/internal/ui"
)

type FetchFlags struct {
	URL        string
	TargetPath string
}

var (
	cfg        *config.Config
	cfgFile    string
	verbose    bool
	fetchFlags FetchFlags
)

// rootCmd represents the base command; fget has a single operation so the
// root command does the work itself.
var rootCmd = &cobra.Command{
	Use:   "fget --url <URL> --target <PATH>",
	Short: "fget downloads a single file over HTTP",
	Long: `fget fetches one file from a URL and writes it to a local path,
showing a progress bar while the body streams in.

The transfer is a single connection with no resume and no retries; on failure
the partially written file is left where it is.

Usage:
  fget --url https://example.com/file.iso --target ./file.iso`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize viper configuration
		initConfig()

		// Initialize configuration
		cfg = config.NewDefaultConfig()
		if err := viper.Unmarshal(cfg); err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid configuration: %v", err)
		}

		initLogger()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFetchFlags(&fetchFlags)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetchApp(&fetchFlags)
	},
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fget.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// Define flags with struct binding
	rootCmd.Flags().StringVarP(&fetchFlags.URL, "url", "u", "", "Source URL to download (required)")
	rootCmd.Flags().StringVarP(&fetchFlags.TargetPath, "target", "t", "", "Destination path to save the file (required)")

	// Mark required flags
	rootCmd.MarkFlagRequired("url")
	rootCmd.MarkFlagRequired("target")

	// Bind flags to viper for environment variable support
	viper.BindPFlag("fetch.url", rootCmd.Flags().Lookup("url"))
	viper.BindPFlag("fetch.target", rootCmd.Flags().Lookup("target"))

	// Set up viper environment variable support
	viper.SetEnvPrefix("FGET")
	viper.AutomaticEnv()
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			log.Printf("Warning: Could not find home directory: %v", err)
			return
		}

		// Search config in home directory with name ".fget" (without extension)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".fget")
	}

	// Read in environment variables that match
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		log.Printf("Using config file: %s", viper.ConfigFileUsed())
	}
}

// initLogger installs the process-wide slog logger. Logs go to stderr so
// they interleave with the progress bar rather than the downloaded output.
func initLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// Execute runs the root command and sets the process exit code.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// createContext creates a context that cancels on interrupt signals
func createContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	return ctx
}

// validateFetchFlags validates the fetch flags
func validateFetchFlags(flags *FetchFlags) error {
	if flags.URL == "" {
		return fmt.Errorf("source url is required")
	}
	if flags.TargetPath == "" {
		return fmt.Errorf("target path is required")
	}
	return validateTargetPath(flags.TargetPath)
}

// validateTargetPath ensures the destination path is valid for file creation
func validateTargetPath(targetPath string) error {
	// Check if path exists and is a directory
	if info, err := os.Stat(targetPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("target path '%s' is a directory, please specify a file path", targetPath)
		}
		// If file exists, it will be overwritten - this is acceptable
		return nil
	}

	// If path doesn't exist, check that the parent directory exists
	dir := filepath.Dir(targetPath)
	if dir != "." && dir != "/" {
		if info, err := os.Stat(dir); err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("parent directory '%s' does not exist", dir)
			}
			return fmt.Errorf("cannot access parent directory '%s': %v", dir, err)
		} else if !info.IsDir() {
			return fmt.Errorf("parent path '%s' is not a directory", dir)
		}
	}

	// Ensure the destination path looks like a file (has a filename)
	filename := filepath.Base(targetPath)
	if filename == "." || filename == ".." {
		return fmt.Errorf("target path '%s' does not specify a filename", targetPath)
	}

	return nil
}

// runFetchApp creates and runs the fetch application
func runFetchApp(flags *FetchFlags) error {
	ctx := logctx.WithLogger(createContext(), slog.Default())

	consoleUI := ui.NewConsoleUI(cfg)
	fetchApp := app.NewFetchApp(cfg, consoleUI)

	opts := &app.Options{
		URL:        flags.URL,
		TargetPath: flags.TargetPath,
	}

	return fetchApp.Run(ctx, opts)
}
