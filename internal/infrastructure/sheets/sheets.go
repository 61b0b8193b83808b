package sheets

import (
	"context"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"snapshare/pkg/logger"
)

// Config holds the spreadsheet target. SpreadsheetID and the
// service-account JSON come from the environment.
type Config struct {
	SpreadsheetID   string
	CredentialsJSON string
	Range           string `yaml:"range"`
	Timeout         int64  `yaml:"timeout_in_ms"`
}

func (c *Config) Configured() bool {
	return c.SpreadsheetID != "" && c.CredentialsJSON != ""
}

func (c *Config) PartiallyConfigured() bool {
	some := c.SpreadsheetID != "" || c.CredentialsJSON != ""

	return some && !c.Configured()
}

// Appender appends rows to a Google Sheets spreadsheet.
type Appender struct {
	svc           *sheets.Service
	spreadsheetID string
	appendRange   string
	timeout       time.Duration
}

func NewAppender(ctx context.Context, cfg *Config) (*Appender, error) {
	logger.Info("connecting to google sheets", "spreadsheet", cfg.SpreadsheetID)

	svc, err := sheets.NewService(ctx, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	if err != nil {
		return nil, err
	}

	return &Appender{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		appendRange:   cfg.Range,
		timeout:       time.Duration(cfg.Timeout) * time.Millisecond,
	}, nil
}

func (a *Appender) AppendRow(ctx context.Context, row []string) error {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	values := make([]interface{}, len(row))
	for i := range row {
		values[i] = row[i]
	}

	_, err := a.svc.Spreadsheets.Values.
		Append(a.spreadsheetID, a.appendRange, &sheets.ValueRange{
			Values: [][]interface{}{values},
		}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()

	return err
}
