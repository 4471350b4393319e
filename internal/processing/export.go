package processing

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ExportSheets translates each named sheet in turn and hands it to the sink.
// It stops at the first failing sheet; sheets already written stay written.
func ExportSheets(ctx context.Context, source Source, sink Sink, names []string, rules Rules) ([]Summary, error) {
	log.Info().
		Int("sheets", len(names)).
		Int("columns", len(rules.Columns)).
		Int("users", len(rules.Users)).
		Str("key_rule", rules.Keys.String()).
		Msg("Starting export")

	var summaries []Summary
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return summaries, err
		}

		summary, err := exportSheet(ctx, source, sink, name, rules)
		if err != nil {
			log.Error().Err(err).Str("sheet", name).Msg("Sheet export failed")
			return summaries, err
		}
		summaries = append(summaries, summary)

		log.Info().
			Str("sheet", summary.Sheet).
			Str("range", summary.Range).
			Int("rows", summary.Rows).
			Int("columns", summary.Columns).
			Int("keys_rewritten", summary.Keys).
			Int("users_translated", summary.Users).
			Int("comments_translated", summary.Comments).
			Msg("Sheet exported")
	}

	log.Info().Int("sheets", len(summaries)).Msg("Export complete")
	return summaries, nil
}

func exportSheet(ctx context.Context, source Source, sink Sink, name string, rules Rules) (Summary, error) {
	log.Debug().Str("sheet", name).Msg("Reading sheet")
	sheet, err := source.Sheet(ctx, name)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}

	rows, summary, err := TranslateSheet(name, sheet, rules)
	if err != nil {
		return Summary{}, err
	}

	if err := sink.WriteTable(ctx, name, rows); err != nil {
		return Summary{}, fmt.Errorf("failed to write sheet %q: %w", name, err)
	}
	return summary, nil
}
