package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huynhanx03/go-mq/pkg/logger"
	"github.com/huynhanx03/go-mq/pkg/settings"
)

const progName = "mqdemo"

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   progName,
	Short: "Demonstration harness for the bounded message queue",
	Long: `mqdemo runs producer goroutines against listener goroutines over a single
bounded queue. Producers emit random actions with random delays; listeners
consume only the actions they accept, through predicate-gated dequeues.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}
		zlog, err := logger.New(cfg.Logger)
		if err != nil {
			return err
		}
		defer zlog.Sync()
		return runDemo(cfg, zlog)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and exit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.AddCommand(versionCmd)
	rootCmd.Flags().String("config", "", "Path to a YAML configuration file")
	rootCmd.Flags().IntP("capacity", "c", 0, "Queue capacity (overrides config)")
	rootCmd.Flags().StringP("mode", "m", "", "Initial removal mode, fifo or lifo (overrides config)")
	rootCmd.Flags().StringP("backing", "b", "", "Backing container, ring or list (overrides config)")
	rootCmd.Flags().IntP("producers", "p", 0, "Number of producer goroutines (overrides config)")
	rootCmd.Flags().IntP("listeners", "l", 0, "Number of listener goroutines (overrides config)")
	rootCmd.Flags().IntP("flip", "f", -1, "Seconds between FIFO/LIFO flips, 0 disables (overrides config)")
	rootCmd.Flags().IntP("duration", "d", -1, "Seconds to run, 0 runs until interrupted (overrides config)")
	viper.BindPFlag("config", rootCmd.Flags().Lookup("config"))
	viper.BindPFlag("capacity", rootCmd.Flags().Lookup("capacity"))
	viper.BindPFlag("mode", rootCmd.Flags().Lookup("mode"))
	viper.BindPFlag("backing", rootCmd.Flags().Lookup("backing"))
	viper.BindPFlag("producers", rootCmd.Flags().Lookup("producers"))
	viper.BindPFlag("listeners", rootCmd.Flags().Lookup("listeners"))
	viper.BindPFlag("flip", rootCmd.Flags().Lookup("flip"))
	viper.BindPFlag("duration", rootCmd.Flags().Lookup("duration"))
}

func initConfig() {
	viper.SetEnvPrefix(progName)
	viper.AutomaticEnv()
}

// buildConfig layers command-line overrides on top of the file/default config.
func buildConfig(cmd *cobra.Command) (settings.Config, error) {
	cfg, err := settings.Load(viper.GetString("config"))
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("capacity") {
		cfg.Queue.Capacity = viper.GetInt("capacity")
	}
	if cmd.Flags().Changed("mode") {
		cfg.Queue.Mode = viper.GetString("mode")
	}
	if cmd.Flags().Changed("backing") {
		cfg.Queue.Backing = viper.GetString("backing")
	}
	if cmd.Flags().Changed("producers") {
		cfg.Demo.Producers = viper.GetInt("producers")
	}
	if cmd.Flags().Changed("listeners") {
		cfg.Demo.Listeners = viper.GetInt("listeners")
	}
	if cmd.Flags().Changed("flip") {
		cfg.Demo.ModeFlipSeconds = viper.GetInt("flip")
	}
	if cmd.Flags().Changed("duration") {
		cfg.Demo.RunSeconds = viper.GetInt("duration")
	}
	if err := settings.Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
