package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"deckport/internal/dialect"
)

func newFormatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "formats",
		Short:       "List the recognized export formats",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := dialect.NewRegistry()

			rows := make([][]string, 0, len(registry.All()))
			for _, def := range registry.All() {
				rows = append(rows, []string{
					def.ID,
					def.Name,
					headerPreview(def),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]tableColumn{{header: "ID"}, {header: "Format"}, {header: "Expected headers"}},
				rows,
			))
			return nil
		},
	}
}

func headerPreview(def *dialect.Definition) string {
	headers := def.ExpectedHeaders()
	const limit = 5
	if len(headers) > limit {
		return strings.Join(headers[:limit], ", ") + ", …"
	}
	return strings.Join(headers, ", ")
}
