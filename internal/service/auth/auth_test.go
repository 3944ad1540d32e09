package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/domain/models"
	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/repository/sheets"
)

type fakeTables map[string][]models.Record

func (f fakeTables) ReadTable(_ context.Context, table string) ([]models.Record, error) {
	rows, ok := f[table]
	if !ok {
		return nil, fmt.Errorf("unknown table %s", table)
	}
	return rows, nil
}

func configFixture() fakeTables {
	return fakeTables{
		sheets.TableConfig: {
			{"Username": "asha", "Password": "secret", "Employee Name": "Asha"},
			{"Username": "ravi", "Password": "hunter2", "Employee Name": "Ravi"},
			{"Admin Emails": "boss@example.com"}, // recipients-only row, no credentials
		},
	}
}

func TestAuthenticate_MatchingRow(t *testing.T) {
	svc := NewService(configFixture(), nil)

	employee, err := svc.Authenticate(context.Background(), "asha", "secret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if employee != "Asha" {
		t.Fatalf("employee = %q, want Asha", employee)
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	svc := NewService(configFixture(), nil)

	if _, err := svc.Authenticate(context.Background(), "asha", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	svc := NewService(configFixture(), nil)

	if _, err := svc.Authenticate(context.Background(), "nobody", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticate_BlankCredentialRowNeverMatches(t *testing.T) {
	svc := NewService(configFixture(), nil)

	if _, err := svc.Authenticate(context.Background(), "", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("blank pair must not match recipients-only rows, got %v", err)
	}
}
