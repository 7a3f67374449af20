package main

import (
	"fmt"
	"os"

	"catalog_tgbot/config"
	"catalog_tgbot/internal/lib/indicator"
	"catalog_tgbot/internal/parser"
	"catalog_tgbot/internal/service/catalogService"
	"catalog_tgbot/utils"

	"github.com/spf13/cobra"
)

func newProbeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Detect how many catalog pages are published",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := utils.WithRqID(cmd.Context())
			catalog := catalogService.New(cfg, parser.NewCatalogParser(cfg), nil, nil)

			total := catalog.Detect(ctx, indicator.NewSpinner(os.Stderr))

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%d\n", total)
			return err
		},
	}
}
