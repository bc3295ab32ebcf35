package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"deckport/internal/setindex"
)

func newSetsCommand(ctx *commandContext) *cobra.Command {
	setsCmd := &cobra.Command{
		Use:   "sets",
		Short: "Set catalog utilities",
	}

	setsCmd.AddCommand(newSetsRefreshCommand(ctx))
	setsCmd.AddCommand(newSetsResolveCommand(ctx))

	return setsCmd
}

func newSetsRefreshCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Refresh the cached set catalog from Scryfall",
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx, cancel := signalContext(cmd.Context())
			defer cancel()

			cache, closeCache, err := ctx.openSetCache()
			if err != nil {
				return err
			}
			defer closeCache()

			count, err := cache.Refresh(runCtx)
			if err != nil {
				return fmt.Errorf("refresh set catalog: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cached %d sets\n", count)
			return nil
		},
	}
}

func newSetsResolveCommand(ctx *commandContext) *cobra.Command {
	var tokenHint bool
	var artSeriesHint bool

	cmd := &cobra.Command{
		Use:   "resolve NAME",
		Short: "Resolve a vendor set name against the cached catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			runCtx, cancel := signalContext(cmd.Context())
			defer cancel()

			cache, closeCache, err := ctx.openSetCache()
			if err != nil {
				return err
			}
			defer closeCache()

			index, _, err := cache.Index(runCtx)
			if err != nil {
				return fmt.Errorf("load set catalog: %w", err)
			}

			name := strings.Join(args, " ")
			hints := setindex.Hints{Token: tokenHint, ArtSeries: artSeriesHint}
			match, ok := index.Resolve(name, hints, cfg.Sets.MinMatchScore)
			if !ok {
				return fmt.Errorf("%q did not match any set above score %.2f", name, cfg.Sets.MinMatchScore)
			}

			kind := "fuzzy"
			if match.Exact {
				kind = "exact"
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]tableColumn{
					{header: "Code"},
					{header: "Name"},
					{header: "Score", numeric: true},
					{header: "Match"},
				},
				[][]string{{
					strings.ToUpper(match.Set.Code),
					match.Set.Name,
					fmt.Sprintf("%.2f", match.Score),
					kind,
				}},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&tokenHint, "token", false, "Bias matching toward token sets")
	cmd.Flags().BoolVar(&artSeriesHint, "art-series", false, "Bias matching toward art series sets")
	return cmd
}
