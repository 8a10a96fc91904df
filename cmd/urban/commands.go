package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samvad-hq/urbandict/internal/app"
	"github.com/samvad-hq/urbandict/internal/config"
	"github.com/samvad-hq/urbandict/internal/logger"
)

func newDefineCommand() *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "define <term...>",
		Short: "Show definitions for a term",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				return a.Define(cmd.Context(), strings.Join(args, " "), page)
			})
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 1, "result page, starting at 1")
	return cmd
}

func newRandomCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Show random definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(a *app.App) error {
				return a.Random(cmd.Context())
			})
		},
	}
}

func newDefIDCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "defid <id>",
		Short: "Show the definition with the given id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid defid %q: %w", args[0], err)
			}
			return withApp(cmd, func(a *app.App) error {
				return a.DefineByID(cmd.Context(), id)
			})
		},
	}
}

func newTooltipCommand() *cobra.Command {
	var keepHTML bool
	cmd := &cobra.Command{
		Use:   "tooltip <term...>",
		Short: "Show the short tooltip text for a term",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				return a.Tooltip(cmd.Context(), strings.Join(args, " "), keepHTML)
			})
		},
	}
	cmd.Flags().BoolVar(&keepHTML, "html", false, "print the tooltip markup as returned")
	return cmd
}

// withApp loads config, initializes logging and runs fn against a fresh App.
func withApp(cmd *cobra.Command, fn func(*app.App) error) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if _, err := logger.Init(cfg); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Close() }()

	logger.DebugObj("urban starting", "config", cfg)

	a, err := app.New(cfg, cmd.OutOrStdout(), logger.Default())
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return fn(a)
}
