package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"deckport/internal/cards"
	"deckport/internal/dialect"
	"deckport/internal/export"
	"deckport/internal/logging"
	"deckport/internal/resolve"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var dialectID string
	var skipLanguageCheck bool

	cmd := &cobra.Command{
		Use:   "convert INPUT",
		Short: "Resolve a collection export against Scryfall and write CSV",
		Long: "Convert reads a vendor collection export, detects its dialect, resolves\n" +
			"every row to a Scryfall printing, and writes the consolidated result as\n" +
			"CSV. Pass - to read from stdin. Output goes to stdout unless --output\n" +
			"names a file; logs and progress stay on stderr.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			logger = logger.With(logging.String(logging.FieldRun, uuid.NewString()))

			input, closeInput, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer closeInput()

			registry := dialect.NewRegistry()
			detectOpts := dialect.Options{
				MinScore:  cfg.Detection.MinScore,
				MinMargin: cfg.Detection.MinMargin,
			}
			parsed, err := registry.ReadAs(input, dialectID, detectOpts)
			if err != nil {
				return fmt.Errorf("parse input: %w", err)
			}
			logParse(logger, parsed)

			runCtx, cancel := signalContext(cmd.Context())
			defer cancel()

			cache, closeCache, err := ctx.openSetCache()
			if err != nil {
				return err
			}
			defer closeCache()

			index, refreshed, err := cache.Index(runCtx)
			if err != nil {
				return fmt.Errorf("load set catalog: %w", err)
			}
			if refreshed {
				logger.Info("refreshed set catalog", logging.Int("sets", index.Len()))
			}

			client, err := ctx.newClient()
			if err != nil {
				return err
			}
			resolver := resolve.New(client, index, logger, resolve.Options{
				BatchSize:         cfg.Lookup.BatchSize,
				MinSetScore:       cfg.Sets.MinMatchScore,
				SkipLanguageCheck: skipLanguageCheck || cfg.Lookup.SkipLanguageCheck,
			})

			outcomes, err := resolver.Resolve(runCtx, parsed.Records, newProgress(len(parsed.Records)))
			if err != nil {
				return err
			}
			merged := resolve.Consolidate(outcomes)

			out, closeOutput, err := openOutput(cmd, outputPath)
			if err != nil {
				return err
			}
			if err := export.Write(out, merged); err != nil {
				closeOutput()
				return err
			}
			if err := closeOutput(); err != nil {
				return err
			}

			printSummary(cmd.ErrOrStderr(), merged)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the result CSV to this file instead of stdout")
	cmd.Flags().StringVar(&dialectID, "dialect", "", "Force a source dialect instead of detecting one (see `deckport formats`)")
	cmd.Flags().BoolVar(&skipLanguageCheck, "skip-language-check", false, "Skip printed-language validation")
	return cmd
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return file, func() { file.Close() }, nil
}

func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if strings.TrimSpace(path) == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return file, file.Close, nil
}

func logParse(logger *slog.Logger, parsed *dialect.ParseResult) {
	switch {
	case parsed.Fallback:
		logger.Warn("no dialect matched; using generic parsing",
			logging.Float64("best_score", parsed.Detection.Score))
	default:
		logger.Info("parsed input",
			logging.String(logging.FieldDialect, parsed.Dialect.ID),
			logging.Int("records", len(parsed.Records)))
	}
}

// newProgress returns a progress callback rendering a bar on stderr, or nil
// when stderr is not a terminal.
func newProgress(total int) resolve.Progress {
	if total == 0 || !isatty.IsTerminal(os.Stderr.Fd()) {
		return nil
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("resolving"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	return func(completed, _ int) {
		_ = bar.Set(completed)
	}
}

func printSummary(w io.Writer, outcomes []resolve.Outcome) {
	var clean, warned, failed, rows int
	byConfidence := map[cards.Confidence]int{}
	for i := range outcomes {
		o := &outcomes[i]
		rows += o.Record.Count
		switch {
		case o.Failed():
			failed++
		case o.Warned():
			warned++
			byConfidence[o.Confidence]++
		default:
			clean++
			byConfidence[o.Confidence]++
		}
	}

	rowsFor := func(label string, count int) []string {
		return []string{label, fmt.Sprintf("%d", count)}
	}
	summary := [][]string{
		rowsFor("Cards", rows),
		rowsFor("Resolved", clean),
		rowsFor("Resolved with warnings", warned),
		rowsFor("Failed", failed),
	}
	for _, conf := range []cards.Confidence{
		cards.ConfidenceVeryHigh, cards.ConfidenceHigh, cards.ConfidenceMedium, cards.ConfidenceLow,
	} {
		if n := byConfidence[conf]; n > 0 {
			summary = append(summary, rowsFor("  "+conf.String(), n))
		}
	}

	var tint rowTint
	if isatty.IsTerminal(os.Stderr.Fd()) {
		tint = summaryTint
	}
	columns := []tableColumn{{header: "Outcome"}, {header: "Count", numeric: true}}
	fmt.Fprintln(w, renderTintedTable(columns, summary, tint))
}

// summaryTint colors the run summary so failures and low-trust resolutions
// stand out: failed rows red, warned and low-confidence rows yellow,
// high-trust tiers green. Zero-count rows stay plain.
func summaryTint(cells []string) text.Colors {
	if len(cells) < 2 || cells[1] == "0" {
		return nil
	}
	switch strings.TrimSpace(cells[0]) {
	case "Failed":
		return text.Colors{text.FgRed}
	case "Resolved with warnings":
		return text.Colors{text.FgYellow}
	case cards.ConfidenceVeryHigh.String(), cards.ConfidenceHigh.String():
		return text.Colors{text.FgGreen}
	case cards.ConfidenceLow.String():
		return text.Colors{text.FgYellow}
	}
	return nil
}
