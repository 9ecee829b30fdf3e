package validator

import (
	"testing"
	"time"

	"github.com/veriscan/veriscan-backend/internal/idcheck/domain"
)

func TestDataConsistencyValidator(t *testing.T) {
	v := NewDataConsistencyValidator()

	t.Run("consistent dates pass", func(t *testing.T) {
		result := v.Validate(domain.ExtractedFields{
			domain.FieldDateOfBirth: "1996-01-22",
			domain.FieldIssueDate:   "2023-01-22",
			domain.FieldExpiryDate:  "2028-01-22",
		})
		if result.Status != domain.StatusPassed {
			t.Errorf("status = %s, want passed (%s)", result.Status, result.Message)
		}
	})

	t.Run("issue before birth fails", func(t *testing.T) {
		result := v.Validate(domain.ExtractedFields{
			domain.FieldDateOfBirth: "1996-01-22",
			domain.FieldIssueDate:   "1990-01-01",
			domain.FieldExpiryDate:  "2028-01-22",
		})
		if result.Status != domain.StatusFailed {
			t.Errorf("status = %s, want failed", result.Status)
		}
	})

	t.Run("expiry before issue fails", func(t *testing.T) {
		result := v.Validate(domain.ExtractedFields{
			domain.FieldDateOfBirth: "1996-01-22",
			domain.FieldIssueDate:   "2023-01-22",
			domain.FieldExpiryDate:  "2020-01-22",
		})
		if result.Status != domain.StatusFailed {
			t.Errorf("status = %s, want failed", result.Status)
		}
	})

	t.Run("implausible age fails", func(t *testing.T) {
		result := v.Validate(domain.ExtractedFields{
			domain.FieldDateOfBirth: "1850-01-01",
			domain.FieldExpiryDate:  "2028-01-22",
		})
		if result.Status != domain.StatusFailed {
			t.Errorf("status = %s, want failed", result.Status)
		}
	})

	t.Run("infant passport holder passes", func(t *testing.T) {
		result := v.Validate(domain.ExtractedFields{
			domain.FieldDateOfBirth: "2025-06-01",
			domain.FieldIssueDate:   "2025-09-01",
			domain.FieldExpiryDate:  "2030-09-01",
		})
		if result.Status != domain.StatusPassed {
			t.Errorf("status = %s, want passed (%s)", result.Status, result.Message)
		}
	})

	t.Run("future issue date fails", func(t *testing.T) {
		result := v.Validate(domain.ExtractedFields{
			domain.FieldDateOfBirth: "1996-01-22",
			domain.FieldIssueDate:   time.Now().AddDate(1, 0, 0).Format("2006-01-02"),
			domain.FieldExpiryDate:  time.Now().AddDate(6, 0, 0).Format("2006-01-02"),
		})
		if result.Status != domain.StatusFailed {
			t.Errorf("status = %s, want failed", result.Status)
		}
	})

	t.Run("missing fields skip", func(t *testing.T) {
		result := v.Validate(domain.ExtractedFields{})
		if result.Status != domain.StatusSkipped {
			t.Errorf("status = %s, want skipped", result.Status)
		}
	})
}

func TestDocumentExpiryValidator(t *testing.T) {
	v := NewDocumentExpiryValidator()

	t.Run("expired 10 days ago fails with days_expired", func(t *testing.T) {
		expiry := time.Now().AddDate(0, 0, -10).Format("2006-01-02")
		result := v.Validate(domain.ExtractedFields{domain.FieldExpiryDate: expiry})
		if result.Status != domain.StatusFailed {
			t.Fatalf("status = %s, want failed", result.Status)
		}
		if got := result.Details["days_expired"]; got != 10 {
			t.Errorf("days_expired = %v, want 10", got)
		}
	})

	t.Run("expiring within 30 days warns", func(t *testing.T) {
		expiry := time.Now().AddDate(0, 0, 15).Format("2006-01-02")
		result := v.Validate(domain.ExtractedFields{domain.FieldExpiryDate: expiry})
		if result.Status != domain.StatusWarning {
			t.Errorf("status = %s, want warning", result.Status)
		}
	})

	t.Run("valid far out passes", func(t *testing.T) {
		expiry := time.Now().AddDate(2, 0, 0).Format("2006-01-02")
		result := v.Validate(domain.ExtractedFields{domain.FieldExpiryDate: expiry})
		if result.Status != domain.StatusPassed {
			t.Errorf("status = %s, want passed", result.Status)
		}
	})

	t.Run("unparseable expiry warns", func(t *testing.T) {
		result := v.Validate(domain.ExtractedFields{domain.FieldExpiryDate: "soon"})
		if result.Status != domain.StatusWarning {
			t.Errorf("status = %s, want warning", result.Status)
		}
	})
}

func TestAgeValidator(t *testing.T) {
	t.Run("adult passes default threshold", func(t *testing.T) {
		v := NewAgeValidator(18)
		result := v.Validate(domain.ExtractedFields{domain.FieldDateOfBirth: "1996-01-22"})
		if result.Status != domain.StatusPassed {
			t.Errorf("status = %s, want passed", result.Status)
		}
	})

	t.Run("minor fails", func(t *testing.T) {
		v := NewAgeValidator(18)
		dob := time.Now().AddDate(-15, 0, 0).Format("2006-01-02")
		result := v.Validate(domain.ExtractedFields{domain.FieldDateOfBirth: dob})
		if result.Status != domain.StatusFailed {
			t.Errorf("status = %s, want failed", result.Status)
		}
	})

	t.Run("custom threshold", func(t *testing.T) {
		v := NewAgeValidator(21)
		dob := time.Now().AddDate(-19, 0, 0).Format("2006-01-02")
		result := v.Validate(domain.ExtractedFields{domain.FieldDateOfBirth: dob})
		if result.Status != domain.StatusFailed {
			t.Errorf("status = %s, want failed", result.Status)
		}
	})

	t.Run("unparseable DOB warns", func(t *testing.T) {
		v := NewAgeValidator(18)
		result := v.Validate(domain.ExtractedFields{domain.FieldDateOfBirth: "unknown"})
		if result.Status != domain.StatusWarning {
			t.Errorf("status = %s, want warning", result.Status)
		}
	})
}

func TestDocumentFormatValidator(t *testing.T) {
	v := NewDocumentFormatValidator()

	tests := []struct {
		name   string
		number string
		status domain.ValidationStatus
		format string
	}{
		{"ontario licence", "S1234-56789-60122", domain.StatusPassed, "ontario_drivers_license"},
		{"health card", "1234567897AB", domain.StatusPassed, "ontario_health_card"},
		{"canadian passport", "GA123456", domain.StatusPassed, "canadian_passport"},
		{"unrecognized", "!!??", domain.StatusWarning, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.Validate(domain.ExtractedFields{domain.FieldDocumentNumber: tt.number})
			if result.Status != tt.status {
				t.Fatalf("status = %s, want %s (%s)", result.Status, tt.status, result.Message)
			}
			if tt.format != "" && result.Details["matched_format"] != tt.format {
				t.Errorf("matched_format = %v, want %s", result.Details["matched_format"], tt.format)
			}
		})
	}
}

func TestFaceMatchingValidatorAlwaysSkips(t *testing.T) {
	v := NewFaceMatchingValidator()
	result := v.Validate(domain.ExtractedFields{domain.FieldFullName: "SMITH, JOHN"})
	if result.Status != domain.StatusSkipped {
		t.Errorf("status = %s, want skipped", result.Status)
	}
}
