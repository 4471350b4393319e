package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"issue_translator/internal/app"

	"github.com/rs/zerolog/log"
)

func main() {
	app.SetupEnvironment()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings, err := app.LoadSettings()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("source", settings.Source).
		Str("output", settings.Output).
		Str("translation", settings.TranslationPath).
		Msg("Starting issue export")

	summaries, err := app.Run(ctx, settings)
	if err != nil {
		log.Fatal().Err(err).Int("exported", len(summaries)).Msg("Export failed")
	}

	rows := 0
	for _, s := range summaries {
		rows += s.Rows
	}
	log.Info().
		Int("sheets", len(summaries)).
		Int("rows", rows).
		Msg("Issue export finished")
}
