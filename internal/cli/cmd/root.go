// Package cmd provides Cobra CLI commands for onboard.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oneuniverse/onboard/internal/cli"
	"github.com/oneuniverse/onboard/internal/domain/build"
)

// Command annotations that change how the app is assembled.
const (
	annotationNoApp     = "onboard/no-app"
	annotationOwnsTerm  = "onboard/owns-terminal"
	annotationWatchConf = "onboard/watch-config"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "onboard",
		Short: "Negotiate One Universe data permissions",
		Long: `onboard asks for the permissions One Universe uses to personalize
your plan, one capability at a time:

  - Google Calendar access (OAuth)
  - YouTube learning history (OAuth)
  - Device focus data (idle detection)
  - Emotion input (microphone, falls back to text)

A failure on one capability never blocks the others. Use 'onboard screen'
for the interactive permission screen, or 'onboard negotiate' in scripts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}
			if cmd.Annotations[annotationNoApp] != "" {
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				ConfigFile:     configFile,
				LogToFile:      cmd.Annotations[annotationOwnsTerm] != "",
				NoDeviceSignIn: cmd.Annotations[annotationOwnsTerm] != "",
				WatchConfig:    cmd.Annotations[annotationWatchConf] != "",
				BuildInfo:      buildInfo,
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				if err := app.Close(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/onboard/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.Version
}
