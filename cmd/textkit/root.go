package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"textkit/pkg/config"
	"textkit/pkg/logger"
)

var (
	cfgPath string
	cfg     *config.Config
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "textkit",
		Short: "Text and record processing toolkit",
		Long: `textkit counts words, renders catalogs and comment feeds as tables,
cleans tabular datasets, and measures algorithm scaling.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")

	root.AddCommand(
		newWordcountCommand(),
		newBooksCommand(),
		newCommentsCommand(),
		newDatasetCommand(),
		newMeasureCommand(),
	)
	return root
}
