package main

import (
	"context"
	"fmt"
	"os"

	"catalog_tgbot/config"
	"catalog_tgbot/internal/converter/textConverter"
	"catalog_tgbot/internal/lib/indicator"
	"catalog_tgbot/internal/lib/navstate"
	"catalog_tgbot/internal/model"
	"catalog_tgbot/internal/parser"
	"catalog_tgbot/internal/service/browserService"
	"catalog_tgbot/internal/service/catalogService"
	"catalog_tgbot/utils"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	pxPerColumn    = 8
	defaultColumns = 80
)

// fixedTheme serves one theme without persistence.
type fixedTheme model.Theme

func (t fixedTheme) GetTheme(context.Context, int64) (model.Theme, error) {
	return model.Theme(t), nil
}

func (t fixedTheme) Toggle(context.Context, int64) (model.Theme, error) {
	return model.Theme(t).Toggle(), nil
}

// stripWidthPx converts a column count to the pixel width the strip is sized
// for. Zero columns means the width of stdout, or defaultColumns when stdout
// is not a terminal.
func stripWidthPx(columns int) int {
	if columns <= 0 {
		fd := int(os.Stdout.Fd())
		if term.IsTerminal(fd) {
			if w, _, err := term.GetSize(fd); err == nil {
				columns = w
			}
		}
	}
	if columns <= 0 {
		columns = defaultColumns
	}
	return columns * pxPerColumn
}

func newShowCmd(cfg *config.Config) *cobra.Command {
	var columns int

	cmd := &cobra.Command{
		Use:   "show [p=<page>&q=<query>]",
		Short: "Print one catalog page as plain text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := utils.WithRqID(cmd.Context())

			nav := model.NavState{Page: 1}
			if len(args) == 1 {
				nav = navstate.Parse(args[0])
			}

			catalog := catalogService.New(cfg, parser.NewCatalogParser(cfg), nil, nil)
			catalog.Detect(ctx, indicator.NewSpinner(os.Stderr))

			browser := browserService.New(cfg, catalog, fixedTheme(model.ThemeLight))
			browser.UseWidth(0, stripWidthPx(columns))

			view, err := browser.Open(ctx, 0, nav)
			if err != nil && view.Error == "" {
				return err
			}

			if _, printErr := fmt.Fprint(cmd.OutOrStdout(), textConverter.BrowsePage(cfg, view)); printErr != nil {
				return printErr
			}
			return err
		},
	}

	cmd.Flags().IntVar(&columns, "columns", 0, "layout width in columns (default: terminal width)")

	return cmd
}
