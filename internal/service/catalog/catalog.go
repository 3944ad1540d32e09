package catalog

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/domain/models"
	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/repository/sheets"
	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/service/policy"
)

// Column names as they appear in the spreadsheet header rows.
const (
	colEmployeeName         = "Employee Name"
	colParty                = "Party"
	colStoreName            = "Store Name"
	colCity                 = "City"
	colVisitFrequency       = "Visit Frequency"
	colVisitDays            = "Visit Days"
	colCategory             = "Category"
	colSKU                  = "SKU"
	colLastMonthNetSales    = "Last Month Net Sales"
	colLastMonthRTV         = "Last Month RTV"
	colRunningMonthNetSales = "Running Month Net Sales"
	colRunningMonthRTV      = "Running Month RTV"
	colLast2MonthAvgNet     = "Last 2 Month Avg Net Sales"
	colAdminEmails          = "Admin Emails"
)

// TableReader is the read side of the table store the catalog works over,
// typically satisfied by the bounded-staleness cache.
type TableReader interface {
	ReadTable(ctx context.Context, table string) ([]models.Record, error)
}

// Service answers the cascading reference lookups driving the order form.
type Service struct {
	tables TableReader
	logger *zap.Logger
}

// NewService wires a catalog service instance.
func NewService(tables TableReader, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{tables: tables, logger: logger}
}

// Parties lists the parties assigned to the employee in the Store Master.
func (s *Service) Parties(ctx context.Context, employee string) ([]string, error) {
	rows, err := s.tables.ReadTable(ctx, sheets.TableStoreMaster)
	if err != nil {
		return nil, fmt.Errorf("load store master: %w", err)
	}

	var values []string
	for _, row := range rows {
		if row.Get(colEmployeeName) == employee {
			values = append(values, row.Get(colParty))
		}
	}
	return sortedUnique(values), nil
}

// Stores lists the stores for an (employee, party) pair.
func (s *Service) Stores(ctx context.Context, employee, party string) ([]string, error) {
	rows, err := s.tables.ReadTable(ctx, sheets.TableStoreMaster)
	if err != nil {
		return nil, fmt.Errorf("load store master: %w", err)
	}

	var values []string
	for _, row := range rows {
		if row.Get(colEmployeeName) == employee && row.Get(colParty) == party {
			values = append(values, row.Get(colStoreName))
		}
	}
	return sortedUnique(values), nil
}

// StoreInfo resolves the master row for an (employee, party, store) triple.
// The first matching row wins; a missing row is reported via ok=false with a
// zero-valued record, which is business-normal for a freshly added store.
func (s *Service) StoreInfo(ctx context.Context, employee, party, store string) (models.StoreRecord, bool, error) {
	rows, err := s.tables.ReadTable(ctx, sheets.TableStoreMaster)
	if err != nil {
		return models.StoreRecord{}, false, fmt.Errorf("load store master: %w", err)
	}

	for _, row := range rows {
		if row.Get(colEmployeeName) != employee || row.Get(colParty) != party || row.Get(colStoreName) != store {
			continue
		}
		return models.StoreRecord{
			EmployeeName:   employee,
			Party:          party,
			StoreName:      store,
			City:           row.Get(colCity),
			VisitFrequency: policy.ToNumber(row.Get(colVisitFrequency), 0),
			VisitDays:      row.Get(colVisitDays),
		}, true, nil
	}

	return models.StoreRecord{EmployeeName: employee, Party: party, StoreName: store}, false, nil
}

// Categories lists all categories from the SKU Master.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.tables.ReadTable(ctx, sheets.TableSKUMaster)
	if err != nil {
		return nil, fmt.Errorf("load sku master: %w", err)
	}

	var values []string
	for _, row := range rows {
		values = append(values, row.Get(colCategory))
	}
	return sortedUnique(values), nil
}

// SKUs lists the SKUs belonging to a category.
func (s *Service) SKUs(ctx context.Context, category string) ([]string, error) {
	rows, err := s.tables.ReadTable(ctx, sheets.TableSKUMaster)
	if err != nil {
		return nil, fmt.Errorf("load sku master: %w", err)
	}

	var values []string
	for _, row := range rows {
		if row.Get(colCategory) == category {
			values = append(values, row.Get(colSKU))
		}
	}
	return sortedUnique(values), nil
}

// Sales returns the historical figures for a (party, store, city, SKU) tuple.
func (s *Service) Sales(ctx context.Context, party, store, city, sku string) (models.SalesFigures, error) {
	rows, err := s.tables.ReadTable(ctx, sheets.TableSalesData)
	if err != nil {
		return models.SalesFigures{}, fmt.Errorf("load sales data: %w", err)
	}
	return LookupSales(rows, party, store, city, sku), nil
}

// LookupSales filters the sales table by exact equality on all four keys and
// extracts the figures from the first match. No match yields all zeroes;
// absence is not an error.
func LookupSales(rows []models.Record, party, store, city, sku string) models.SalesFigures {
	for _, row := range rows {
		if row.Get(colParty) != party || row.Get(colStoreName) != store ||
			row.Get(colCity) != city || row.Get(colSKU) != sku {
			continue
		}
		return models.SalesFigures{
			LastMonthNetSales:    policy.ToNumber(row.Get(colLastMonthNetSales), 0),
			LastMonthRTV:         policy.ToNumber(row.Get(colLastMonthRTV), 0),
			RunningMonthNetSales: policy.ToNumber(row.Get(colRunningMonthNetSales), 0),
			RunningMonthRTV:      policy.ToNumber(row.Get(colRunningMonthRTV), 0),
			Last2MonthAvgNet:     policy.ToNumber(row.Get(colLast2MonthAvgNet), 0),
		}
	}
	return models.SalesFigures{}
}

// AdminEmails collects the non-blank alert recipients from the Config table.
func (s *Service) AdminEmails(ctx context.Context) ([]string, error) {
	rows, err := s.tables.ReadTable(ctx, sheets.TableConfig)
	if err != nil {
		return nil, fmt.Errorf("load config table: %w", err)
	}

	var emails []string
	for _, row := range rows {
		if email := row.Get(colAdminEmails); email != "" {
			emails = append(emails, email)
		}
	}
	return emails, nil
}

func sortedUnique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
