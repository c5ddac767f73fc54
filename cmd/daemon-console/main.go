package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/peoro/Daemon/cmd/tui"
	"github.com/peoro/Daemon/pkg/config"
	"github.com/peoro/Daemon/pkg/logging"
)

var (
	configPath     string
	defaultCommand string
	verbose        bool
	quiet          bool
)

var rootCmd = &cobra.Command{
	Use:   "daemon-console",
	Short: "Interactive console with history and namespace-aware tab completion",
	RunE: func(c *cobra.Command, args []string) error {
		var log logging.Logger
		switch {
		case quiet:
			log = logging.NewQuietLogger()
		case verbose:
			log = logging.NewVerboseLogger()
		default:
			log = logging.NewDefaultLogger()
		}

		if !isatty.IsTerminal(os.Stdout.Fd()) {
			return fmt.Errorf("daemon-console requires a terminal")
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if defaultCommand != "" {
			cfg.DefaultCommand = defaultCommand
		}

		app, err := tui.New(cfg, log)
		if err != nil {
			return err
		}
		defer app.Stop()
		return app.Start()
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/"+config.DefaultFileName+")")
	rootCmd.Flags().StringVar(&defaultCommand, "default-command", "", "command wrapped around unmarked input lines")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
