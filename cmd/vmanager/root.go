package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/vmanager/internal/config"
	"github.com/vmunix/vmanager/internal/remote"
	"github.com/vmunix/vmanager/internal/videos"
)

var version = "dev"

// options holds the global flags.
type options struct {
	configPath string
	storeURL   string
	jsonOutput bool
	verbose    bool
}

// app is what a command needs once config is loaded.
type app struct {
	cfg    *config.Config
	svc    *videos.Service
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "vmanager",
		Short: "Manage a video catalog",
		Long: `vmanager - manage a catalog of videos grouped by author

Lists, searches, adds, edits and deletes videos held in a REST store
(/authors and /categories). Run 'vmanagerd' to serve a local store.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file (default: discovered)")
	rootCmd.PersistentFlags().StringVar(&opts.storeURL, "store", "", "Store URL (overrides store.base_url)")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log store requests to stderr")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("vmanager {{.Version}}\n")

	rootCmd.AddCommand(
		newListCmd(opts),
		newShowCmd(opts),
		newAddCmd(opts),
		newEditCmd(opts),
		newDeleteCmd(opts),
		newAuthorsCmd(opts),
		newCategoriesCmd(opts),
		newInitCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// load resolves config and builds the video service.
func (o *options) load(cmd *cobra.Command) (*app, error) {
	logger := newLogger(cmd.ErrOrStderr(), o.verbose)

	cfg, path, err := config.Resolve(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.storeURL != "" {
		cfg.Store.BaseURL = o.storeURL
	}
	logger.Debug("config loaded", "path", path, "store", cfg.Store.BaseURL)

	client := remote.NewClient(remote.Config{
		BaseURL:          cfg.Store.BaseURL,
		Timeout:          cfg.Store.Timeout,
		CategoryCacheTTL: cfg.Store.CategoryCacheTTL,
	}, remote.WithLogger(logger.With("component", "store")))

	return &app{
		cfg:    cfg,
		svc:    videos.NewService(client, logger.With("component", "videos")),
		logger: logger,
	}, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vmanager %s\n", version)
		},
	}
}
