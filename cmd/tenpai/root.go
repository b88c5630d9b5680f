package main

import (
	"github.com/spf13/cobra"

	"tenpai-trainer/internal/config"
	"tenpai-trainer/internal/logging"
)

var (
	configFile string
	logLevel   string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tenpai",
	Short: "Mahjong tenpai trainer",
	Long: `tenpai analyzes mahjong hands and generates wait-reading exercises.

Hands use compact notation: digits grouped before a suit letter (m/p/s) and
the honor words E S W N Wh Gr Rd, e.g. "123m456p789s 55m E E".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
		level := cfg.Log.Level
		if logLevel != "" {
			level = logLevel
		}
		logging.Init("tenpai", level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}
