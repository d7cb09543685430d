package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ytget/optionkit/internal/config"
	"github.com/ytget/optionkit/internal/logger"
	"github.com/ytget/optionkit/internal/platform"
	"github.com/ytget/optionkit/internal/transfer"
	"github.com/ytget/optionkit/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.optionkit"
	AppName = "Launcher"
)

type options struct {
	manifest        string
	logLevel        string
	logFile         string
	debounce        time.Duration
	minVisible      time.Duration
	checkURL        string
	updateAvailable bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "launcher",
		Short:         "Desktop launcher with a manifest-driven settings page",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.Flags(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.manifest, "manifest", "m", "", "Option manifest (YAML); reloaded on save. Defaults to the built-in manifest")
	f.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	f.StringVar(&opts.logFile, "log-file", "", "Also write JSON logs to this file")
	f.DurationVar(&opts.debounce, "debounce", config.DefaultCommitDelayMs*time.Millisecond, "Slider commit delay")
	f.DurationVar(&opts.minVisible, "min-visible", config.DefaultMinVisibleMs*time.Millisecond, "Minimum time the connection warning stays up")
	f.StringVar(&opts.checkURL, "check-url", platform.DefaultCheckURL, "URL probed for connectivity; empty disables the probe")
	f.BoolVar(&opts.updateAvailable, "update-available", false, "Show the update entry and hide the drawer")
	return cmd
}

func run(ctx context.Context, flags *pflag.FlagSet, opts *options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var logOut io.Writer
	if opts.logFile != "" {
		fh, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer fh.Close()
		logOut = fh
	}
	logger.Init(logger.ParseLevel(opts.logLevel), logOut)
	logger.Info("starting", "app", AppName, "version", version)

	a := app.NewWithID(AppID)
	settings := config.NewSettings(a)
	applyOverrides(flags, settings, opts)

	manifest := config.DefaultManifest()
	if opts.manifest != "" {
		m, err := config.LoadManifest(opts.manifest)
		if err != nil {
			return err
		}
		manifest = m
	}

	w := a.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	tracker := transfer.NewTracker(nil, logger.With("transfers"))
	root := ui.NewRoot(ui.Deps{
		App:       a,
		Window:    w,
		Settings:  settings,
		Manifest:  manifest,
		Transfers: tracker,
		CheckURL:  opts.checkURL,
		Logger:    logger.With("ui"),
	})
	root.SetUpdateAvailable(opts.updateAvailable)

	if opts.manifest != "" {
		if _, err := config.WatchManifest(ctx, opts.manifest, root.OnManifestChange); err != nil {
			logger.Warn("manifest reload disabled", "manifest", opts.manifest, "error", err)
		}
	}

	w.SetContent(root.Content())
	w.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	if icon, err := ui.LoadAppIcon(); err == nil {
		w.SetIcon(icon)
	} else {
		logger.Debug("no window icon", "error", err)
	}
	w.SetCloseIntercept(func() {
		root.Close()
		cancel()
		w.Close()
	})

	root.Start(ctx)
	w.ShowAndRun()
	return nil
}

// applyOverrides persists only the flags given on the command line so saved
// preferences survive a plain restart.
func applyOverrides(flags *pflag.FlagSet, settings *config.Settings, opts *options) {
	if flags.Changed("debounce") {
		settings.SetCommitDelay(opts.debounce)
	}
	if flags.Changed("min-visible") {
		settings.SetMinVisible(opts.minVisible)
	}
}
