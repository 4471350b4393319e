package app

import (
	"context"
	"errors"
	"fmt"

	"issue_translator/internal/config"
	"issue_translator/internal/notifications"
	"issue_translator/internal/processing"
	"issue_translator/internal/sheets"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// Sink is a processing.Sink that must be closed to flush its output.
type Sink interface {
	processing.Sink
	Close() error
}

// Input is a processing.Source holding resources until closed.
type Input interface {
	processing.Source
	Close() error
}

// Clients lazily builds the collaborators chosen by Settings.
type Clients struct {
	settings Settings
	sheets   *sheets.Client

	// ClientOptions are passed to the Google Sheets client; credentials are
	// added from Settings when empty.
	ClientOptions []option.ClientOption
}

func NewClients(settings Settings) *Clients {
	return &Clients{settings: settings}
}

func (c *Clients) sheetsClient(ctx context.Context) (*sheets.Client, error) {
	if c.sheets != nil {
		return c.sheets, nil
	}

	opts := c.ClientOptions
	if len(opts) == 0 {
		opts = []option.ClientOption{option.WithCredentialsFile(c.settings.CredentialsFile)}
	}

	log.Debug().Msg("Initializing sheets client")
	client, err := sheets.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	c.sheets = client
	return client, nil
}

// Source opens the configured cell source.
func (c *Clients) Source(ctx context.Context) (Input, error) {
	switch c.settings.Source {
	case "sheets":
		client, err := c.sheetsClient(ctx)
		if err != nil {
			return nil, err
		}
		return spreadsheetSource{sheets.NewSpreadsheet(client, c.settings.SpreadsheetID, config.DefaultResilienceConfig.SheetRead)}, nil
	default:
		wb, err := sheets.OpenWorkbook(c.settings.InputFile)
		if err != nil {
			return nil, err
		}
		return wb, nil
	}
}

// Sink creates the configured output sink.
func (c *Clients) Sink(ctx context.Context) (Sink, error) {
	switch c.settings.Output {
	case "xlsx":
		return sheets.NewXLSXWriter(c.settings.OutputFile), nil
	case "sheets":
		client, err := c.sheetsClient(ctx)
		if err != nil {
			return nil, err
		}
		return sheets.NewSheetsWriter(client, c.settings.OutputSpreadsheetID, c.settings.OutputTabPrefix, config.DefaultResilienceConfig.SheetWrite), nil
	default:
		return &sheets.CSVWriter{Dir: c.settings.OutputDir}, nil
	}
}

// Notifier returns the ntfy client; it is a no-op when notifications are disabled.
func (c *Clients) Notifier() *notifications.Client {
	log.Debug().
		Bool("enabled", c.settings.NotifyEnabled).
		Str("base_url", c.settings.NotifyURL).
		Str("topic", c.settings.NotifyTopic).
		Msg("Initializing notification client")

	return notifications.NewClient(c.settings.NotifyURL, c.settings.NotifyTopic, c.settings.NotifyEnabled,
		c.settings.NotifyPriority, config.DefaultResilienceConfig.Notification)
}

type spreadsheetSource struct {
	*sheets.Spreadsheet
}

func (spreadsheetSource) Close() error { return nil }

// Run loads the translation rules and exports every configured sheet.
func Run(ctx context.Context, settings Settings) ([]processing.Summary, error) {
	return NewClients(settings).Run(ctx)
}

func (c *Clients) Run(ctx context.Context) (summaries []processing.Summary, err error) {
	translation, err := config.LoadTranslation(c.settings.TranslationPath)
	if err != nil {
		return nil, err
	}
	rules, err := translation.Rules()
	if err != nil {
		return nil, fmt.Errorf("invalid translation config: %w", err)
	}

	src, err := c.Source(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open source: %w", err)
	}
	defer src.Close()

	sink, err := c.Sink(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create output: %w", err)
	}

	notifier := c.Notifier()
	defer func() {
		notifier.NotifyExport(ctx, summaries, err)
	}()

	summaries, err = processing.ExportSheets(ctx, src, sink, translation.Sheets, rules)
	if closeErr := sink.Close(); closeErr != nil {
		err = errors.Join(err, fmt.Errorf("failed to finish output: %w", closeErr))
	}
	return summaries, err
}
