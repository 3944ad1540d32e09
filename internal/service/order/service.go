package order

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/domain/models"
	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/repository/mongodb"
	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/repository/sheets"
	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/service/catalog"
	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/service/policy"
	gmailclient "github.com/Dhruvsinh6969/Trade-Order-Sheet/pkg/clients/gmail"
)

// ErrMissingSelection indicates a required selection was absent; nothing is
// persisted in that case.
var ErrMissingSelection = errors.New("employee, party, store, category and sku must all be selected")

// ErrNoLines indicates a submission without any SKU lines.
var ErrNoLines = errors.New("order must contain at least one line")

const (
	timestampLayout = "2006-01-02 15:04:05"
	orderDateLayout = "2006-01-02"
)

// orderSheetHeaders is the canonical Orders ledger column set, written as the
// header row when the sheet is still empty.
var orderSheetHeaders = []string{
	"Timestamp", "Order Date", "Employee Name", "Party", "Store Name", "City",
	"Category", "SKU", "Qty", "SOH", "Remarks",
	"Last Month Net Sales", "Running Month Net Sales", "Flag",
}

// Service drives the order-entry workflow: recommendation, classification,
// ledger append, archive mirror and excess-order alerting.
type Service struct {
	catalog *catalog.Service
	ledger  sheets.Repository
	archive mongodb.Repository
	mailer  gmailclient.Client
	logger  *zap.Logger
	now     func() time.Time
}

// NewService wires an order service. archive and mailer may be nil; the
// corresponding side effects are then skipped.
func NewService(catalogSvc *catalog.Service, ledger sheets.Repository, archive mongodb.Repository, mailer gmailclient.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		catalog: catalogSvc,
		ledger:  ledger,
		archive: archive,
		mailer:  mailer,
		logger:  logger,
		now:     time.Now,
	}
}

// Recommend computes the suggested reorder quantity and the derived figures
// shown alongside the order form. The recommendation is a pure function of
// its inputs and is recomputed on every call.
func (s *Service) Recommend(ctx context.Context, req models.RecommendRequest) (*models.RecommendationView, error) {
	if req.Employee == "" || req.Party == "" || req.Store == "" || req.SKU == "" {
		return nil, ErrMissingSelection
	}

	info, _, err := s.catalog.StoreInfo(ctx, req.Employee, req.Party, req.Store)
	if err != nil {
		return nil, err
	}

	figures, err := s.catalog.Sales(ctx, req.Party, req.Store, info.City, req.SKU)
	if err != nil {
		return nil, err
	}

	rec := policy.Recommend(policy.Inputs{
		Figures:        figures,
		VisitFrequency: info.VisitFrequency,
		StockOnHand:    req.SOH,
	}, policy.ParseVariant(req.Variant), s.now())

	return &models.RecommendationView{
		Recommendation: rec,
		City:           info.City,
		VisitDays:      info.VisitDays,
		Figures:        figures,
	}, nil
}

// Submit persists one ledger record per line. Lines are processed
// independently and sequentially: a failed append, archive write or alert on
// one line is reported in its result and never blocks the remaining lines or
// rolls back records already appended.
func (s *Service) Submit(ctx context.Context, req models.OrderRequest) (*models.OrderResponse, error) {
	if req.Employee == "" || req.Party == "" || req.Store == "" {
		return nil, ErrMissingSelection
	}
	if len(req.Lines) == 0 {
		return nil, ErrNoLines
	}
	for _, line := range req.Lines {
		if line.Category == "" || line.SKU == "" {
			return nil, ErrMissingSelection
		}
	}

	info, _, err := s.catalog.StoreInfo(ctx, req.Employee, req.Party, req.Store)
	if err != nil {
		return nil, err
	}

	admins, err := s.catalog.AdminEmails(ctx)
	if err != nil {
		s.logger.Warn("failed loading admin recipients, alerts disabled for this submission", zap.Error(err))
		admins = nil
	}

	orderDate := strings.TrimSpace(req.OrderDate)
	if orderDate == "" {
		orderDate = s.now().Format(orderDateLayout)
	}

	variant := policy.ParseVariant(req.Variant)

	results := make([]models.LineResult, 0, len(req.Lines))
	for _, line := range req.Lines {
		results = append(results, s.submitLine(ctx, req, info, line, orderDate, variant, admins))
	}

	return &models.OrderResponse{Results: results}, nil
}

func (s *Service) submitLine(ctx context.Context, req models.OrderRequest, info models.StoreRecord, line models.OrderLine, orderDate string, variant policy.Variant, admins []string) models.LineResult {
	result := models.LineResult{SKU: line.SKU}

	figures, err := s.catalog.Sales(ctx, req.Party, req.Store, info.City, line.SKU)
	if err != nil {
		result.Error = fmt.Sprintf("sales lookup failed: %v", err)
		return result
	}

	// The flag depends only on the ordered quantity and the reference demand
	// recomputed at submission time.
	rec := policy.Recommend(policy.Inputs{
		Figures:        figures,
		VisitFrequency: info.VisitFrequency,
		StockOnHand:    line.SOH,
	}, variant, s.now())

	flag := policy.Classify(line.Qty, rec.ReferenceDemand)

	result.Flag = flag
	result.ReferenceDemand = rec.ReferenceDemand
	result.SuggestedQty = rec.SuggestedQty

	if flag == models.FlagExcessOrder {
		result.Alerted = s.sendExcessAlert(ctx, req, info, line, rec.ReferenceDemand, admins)
	}

	record := models.OrderRecord{
		Timestamp:            s.now().Format(timestampLayout),
		OrderDate:            orderDate,
		EmployeeName:         req.Employee,
		Party:                req.Party,
		StoreName:            req.Store,
		City:                 info.City,
		Category:             line.Category,
		SKU:                  line.SKU,
		Qty:                  line.Qty,
		SOH:                  line.SOH,
		Remarks:              line.Remarks,
		LastMonthNetSales:    figures.LastMonthNetSales,
		RunningMonthNetSales: figures.RunningMonthNetSales,
		Flag:                 flag,
	}

	if err := s.ledger.AppendRecord(ctx, sheets.TableOrders, sheetRecord(record), orderSheetHeaders); err != nil {
		s.logger.Error("ledger append failed", zap.String("sku", line.SKU), zap.Error(err))
		result.Error = fmt.Sprintf("persist failed: %v", err)
		return result
	}
	result.Persisted = true

	if s.archive != nil {
		if err := s.archive.SaveOrder(ctx, record); err != nil {
			s.logger.Warn("order archive write failed", zap.String("sku", line.SKU), zap.Error(err))
		}
	}

	s.logger.Info("order line recorded",
		zap.String("employee", req.Employee),
		zap.String("store", req.Store),
		zap.String("sku", line.SKU),
		zap.Int("qty", line.Qty),
		zap.String("flag", string(flag)))

	return result
}

// sendExcessAlert notifies the configured administrators. Transport failures
// are warnings; the order itself is never rolled back because of them.
func (s *Service) sendExcessAlert(ctx context.Context, req models.OrderRequest, info models.StoreRecord, line models.OrderLine, referenceDemand int, admins []string) bool {
	recipients := make([]string, 0, len(admins))
	for _, a := range admins {
		if trimmed := strings.TrimSpace(a); trimmed != "" {
			recipients = append(recipients, trimmed)
		}
	}
	if s.mailer == nil || len(recipients) == 0 {
		return false
	}

	remarks := line.Remarks
	if remarks == "" {
		remarks = "no remarks provided"
	}

	subject := fmt.Sprintf("Trade Excess Order Alert - %s", req.Employee)
	body := fmt.Sprintf(
		"Employee: %s\nStore: %s (%s, %s)\nSKU: %s\nOrdered QTY: %d\nReference Sales (Offtake): %d\nFlag: %s\nRemarks From Employee:\n%s\n",
		req.Employee, req.Store, req.Party, info.City, line.SKU, line.Qty, referenceDemand, models.FlagExcessOrder, remarks,
	)

	if _, err := s.mailer.SendMessage(ctx, gmailclient.SendMessageRequest{
		To:      recipients,
		Subject: subject,
		Body:    body,
	}); err != nil {
		s.logger.Warn("excess order alert failed", zap.String("sku", line.SKU), zap.Error(err))
		return false
	}

	return true
}

// sheetRecord maps an OrderRecord onto the ledger's column names.
func sheetRecord(r models.OrderRecord) models.Record {
	return models.Record{
		"Timestamp":               r.Timestamp,
		"Order Date":              r.OrderDate,
		"Employee Name":           r.EmployeeName,
		"Party":                   r.Party,
		"Store Name":              r.StoreName,
		"City":                    r.City,
		"Category":                r.Category,
		"SKU":                     r.SKU,
		"Qty":                     strconv.Itoa(r.Qty),
		"SOH":                     strconv.Itoa(r.SOH),
		"Remarks":                 r.Remarks,
		"Last Month Net Sales":    strconv.Itoa(r.LastMonthNetSales),
		"Running Month Net Sales": strconv.Itoa(r.RunningMonthNetSales),
		"Flag":                    string(r.Flag),
	}
}
