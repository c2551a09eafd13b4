// ABOUTME: Command line interface for the player
// ABOUTME: Parses flags with cobra and starts a playback session

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sonido/config"
	"sonido/player"
	"sonido/playlist"
	"sonido/tui"
)

const (
	debugLogFile = "sonido-debug.log"
	outputBuffer = time.Second / 10
)

// RunOptions contains command-line options
type RunOptions struct {
	Path        string
	Recursive   bool
	ConfigPath  string
	DebugLog    bool
	ShowVersion bool
}

func newRootCmd() *cobra.Command {
	var opts RunOptions

	cmd := &cobra.Command{
		Use:   "sonido [PATH]",
		Short: "Keyboard-driven terminal audio player",
		Long: `Sonido plays the audio files found under PATH (default: the current directory).
PATH may also be an .m3u or .m3u8 playlist file.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.ShowVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "sonido %s\n", version)
				return nil
			}

			opts.Path = "."
			if len(args) == 1 {
				opts.Path = args[0]
			}

			return runPlayer(opts, cmd.ErrOrStderr())
		},
	}

	cmd.Flags().BoolVarP(&opts.Recursive, "recursive", "r", false, "include audio files in subdirectories")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default: <user config dir>/sonido/config.toml)")
	cmd.Flags().BoolVar(&opts.DebugLog, "debug", false, "enable debug logging to "+debugLogFile)
	cmd.Flags().BoolVarP(&opts.ShowVersion, "version", "V", false, "print version and exit")

	return cmd
}

// runPlayer builds the catalog, opens the audio device and runs the TUI
func runPlayer(opts RunOptions, stderr io.Writer) error {
	logger := newLogger(opts.DebugLog, debugLogFile)
	defer func() { _ = logger.Sync() }()

	sugar := logger.Sugar()

	tracks, err := playlist.LoadCatalog(opts.Path, opts.Recursive, player.ReadDuration, sugar.Debugf)
	if err != nil {
		return err
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.GetConfigPath()
	}

	settings, warning := loadSettings(configPath, stderr, sugar)

	out, err := player.OpenSpeaker(player.DefaultSampleRate, outputBuffer)
	if err != nil {
		return err
	}

	engine := player.New(out, player.FileDecoder{}, logger.Named("player"))

	return tui.Run(tui.Options{
		Tracks:     tracks,
		Engine:     engine,
		Settings:   settings,
		ConfigPath: configPath,
		Version:    version,
		Warning:    warning,
		Debugf:     sugar.Debugf,
	})
}

// loadSettings reads the config file, falling back to defaults with a
// warning when it cannot be used. The warning is also returned so the
// player can show it once the alternate screen hides stderr.
func loadSettings(path string, stderr io.Writer, log *zap.SugaredLogger) (config.Settings, string) {
	settings, err := config.LoadConfig(path)
	if err != nil {
		warning := fmt.Sprintf("Warning: %v (using defaults)", err)
		fmt.Fprintln(stderr, warning)
		log.Debugf("[CONFIG] %v", err)

		return settings, warning
	}

	return settings, ""
}
