package auth

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/domain/models"
	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/repository/sheets"
)

// ErrInvalidCredentials indicates no Config row matched the supplied pair.
var ErrInvalidCredentials = errors.New("invalid username or password")

const (
	colUsername     = "Username"
	colPassword     = "Password"
	colEmployeeName = "Employee Name"
)

// TableReader is the read side of the table store used for credential rows.
type TableReader interface {
	ReadTable(ctx context.Context, table string) ([]models.Record, error)
}

// Service performs the row-matched credential check against the Config table.
// Credentials are stored and compared as plain text; that mirrors the shipped
// spreadsheet and replacing it with hashed storage is a tracked behavior
// change, not a port.
type Service struct {
	tables TableReader
	logger *zap.Logger
}

// NewService wires an auth service instance.
func NewService(tables TableReader, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{tables: tables, logger: logger}
}

// Authenticate returns the employee name bound to the first Config row whose
// Username and Password both match exactly.
func (s *Service) Authenticate(ctx context.Context, username, password string) (string, error) {
	rows, err := s.tables.ReadTable(ctx, sheets.TableConfig)
	if err != nil {
		return "", fmt.Errorf("load config table: %w", err)
	}

	for _, row := range rows {
		if row.Get(colUsername) == "" {
			continue
		}
		if row.Get(colUsername) == username && row.Get(colPassword) == password {
			employee := row.Get(colEmployeeName)
			s.logger.Info("employee logged in", zap.String("employee", employee))
			return employee, nil
		}
	}

	s.logger.Warn("login rejected", zap.String("username", username))
	return "", ErrInvalidCredentials
}
