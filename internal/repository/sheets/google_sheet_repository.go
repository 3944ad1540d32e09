package sheets

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/config"
	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/domain/models"
)

// Table names within the backing spreadsheet.
const (
	TableStoreMaster = "Store Master"
	TableSKUMaster   = "SKU Master"
	TableSalesData   = "Sales Data"
	TableConfig      = "Config"
	TableOrders      = "Orders"
)

// ReferenceTables lists the read-mostly tables loaded per session.
func ReferenceTables() []string {
	return []string{TableStoreMaster, TableSKUMaster, TableSalesData, TableConfig}
}

// Repository defines the named-table store operations supported by the
// Google Sheets adapter.
type Repository interface {
	ReadTable(ctx context.Context, table string) ([]models.Record, error)
	AppendRecord(ctx context.Context, table string, record models.Record, headers []string) error
}

// GoogleSheetRepository implements the Repository interface using the official Google Sheets API.
type GoogleSheetRepository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetRepository builds a Google Sheets backed repository instance.
func NewGoogleSheetRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (Repository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetRepository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// ReadTable fetches all rows of the named table and maps them by its header row.
func (r *GoogleSheetRepository) ReadTable(ctx context.Context, table string) ([]models.Record, error) {
	if table == "" {
		return nil, fmt.Errorf("table name must not be empty")
	}

	resp, err := r.service.Spreadsheets.Values.Get(r.spreadsheetID, tableRange(table, "A:Z")).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", table, err)
	}

	records := recordsFromRows(resp.Values)
	r.logger.Debug("table loaded", zap.String("table", table), zap.Int("records", len(records)))
	return records, nil
}

// AppendRecord appends one record to the named table, creating the header row
// with the supplied columns when the table is still empty. Columns present in
// the sheet but absent from the record are written as empty strings.
func (r *GoogleSheetRepository) AppendRecord(ctx context.Context, table string, record models.Record, headers []string) error {
	if table == "" {
		return fmt.Errorf("table name must not be empty")
	}

	existing, err := r.headerRow(ctx, table)
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		if err := r.writeHeaderRow(ctx, table, headers); err != nil {
			return err
		}
		existing = headers
	}

	row := make([]interface{}, len(existing))
	for i, column := range existing {
		row[i] = record.Get(column)
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{row}}

	call := r.service.Spreadsheets.Values.Append(r.spreadsheetID, tableRange(table, "A:Z"), payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append record into table %s: %w", table, err)
	}

	r.logger.Debug("record appended", zap.String("table", table))
	return nil
}

func (r *GoogleSheetRepository) headerRow(ctx context.Context, table string) ([]string, error) {
	resp, err := r.service.Spreadsheets.Values.Get(r.spreadsheetID, tableRange(table, "1:1")).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read header row of table %s: %w", table, err)
	}

	if len(resp.Values) == 0 {
		return nil, nil
	}

	headers := make([]string, 0, len(resp.Values[0]))
	for _, cell := range resp.Values[0] {
		headers = append(headers, cellString(cell))
	}
	return headers, nil
}

func (r *GoogleSheetRepository) writeHeaderRow(ctx context.Context, table string, headers []string) error {
	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = h
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{row}}

	call := r.service.Spreadsheets.Values.Update(r.spreadsheetID, tableRange(table, "A1"), payload).
		ValueInputOption("RAW").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("create header row for table %s: %w", table, err)
	}

	r.logger.Info("header row created", zap.String("table", table))
	return nil
}

// tableRange builds an A1 range reference; table names contain spaces and
// therefore always need quoting.
func tableRange(table, span string) string {
	return fmt.Sprintf("'%s'!%s", strings.ReplaceAll(table, "'", "''"), span)
}

// recordsFromRows maps raw sheet values into Records using the first row as
// the header row. Short rows are padded with empty strings.
func recordsFromRows(rows [][]interface{}) []models.Record {
	if len(rows) == 0 {
		return nil
	}

	headers := make([]string, 0, len(rows[0]))
	for _, cell := range rows[0] {
		headers = append(headers, cellString(cell))
	}

	records := make([]models.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(models.Record, len(headers))
		for i, column := range headers {
			if column == "" {
				continue
			}
			if i < len(row) {
				record[column] = cellString(row[i])
			} else {
				record[column] = ""
			}
		}
		records = append(records, record)
	}

	return records
}

func cellString(value interface{}) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(value))
}
