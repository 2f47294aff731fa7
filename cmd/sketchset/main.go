package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/juruen/sketchset/config"
	"github.com/juruen/sketchset/log"
)

var (
	configPath string
	trace      bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "sketchset",
	Short:         "Capture labelled sketches and assemble them into a dataset",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		log.InitLog()
		if trace {
			log.EnableTrace(os.Stdout)
		}
		if log.TraceEnabled() {
			gg.SetLogger(slog.New(slog.NewTextHandler(log.TraceWriter(),
				&slog.HandlerOptions{Level: slog.LevelDebug})))
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		log.Trace.Printf("config: %+v", cfg)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("SKETCHSET_CONFIG"),
		"yaml configuration file")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "enable trace logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: ", err)
		os.Exit(1)
	}
}
