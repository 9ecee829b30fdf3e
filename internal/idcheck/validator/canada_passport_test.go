package validator

import (
	"testing"
	"time"

	"github.com/veriscan/veriscan-backend/internal/idcheck/domain"
)

func TestCanadianPassportValidator(t *testing.T) {
	v := NewCanadianPassportValidator()

	issue := time.Now().AddDate(-2, 0, 0)
	tenYear := issue.AddDate(10, 0, 0)
	fiveYear := issue.AddDate(5, 0, 0)

	t.Run("adult ten year passport passes", func(t *testing.T) {
		result := v.Validate(domain.ExtractedFields{
			domain.FieldDocumentNumber: "GA123456",
			domain.FieldDateOfBirth:    "1996-01-22",
			domain.FieldIssueDate:      issue.Format("2006-01-02"),
			domain.FieldExpiryDate:     tenYear.Format("2006-01-02"),
		})
		if result.Status != domain.StatusPassed {
			t.Errorf("status = %s, want passed (%s)", result.Status, result.Message)
		}
	})

	t.Run("child five year passport passes", func(t *testing.T) {
		result := v.Validate(domain.ExtractedFields{
			domain.FieldDocumentNumber: "GA123456",
			domain.FieldDateOfBirth:    time.Now().AddDate(-10, 0, 0).Format("2006-01-02"),
			domain.FieldIssueDate:      issue.Format("2006-01-02"),
			domain.FieldExpiryDate:     fiveYear.Format("2006-01-02"),
		})
		if result.Status != domain.StatusPassed {
			t.Errorf("status = %s, want passed (%s)", result.Status, result.Message)
		}
	})

	t.Run("adult with five year term fails", func(t *testing.T) {
		result := v.Validate(domain.ExtractedFields{
			domain.FieldDocumentNumber: "GA123456",
			domain.FieldDateOfBirth:    "1996-01-22",
			domain.FieldIssueDate:      issue.Format("2006-01-02"),
			domain.FieldExpiryDate:     fiveYear.Format("2006-01-02"),
		})
		if result.Status != domain.StatusFailed {
			t.Errorf("status = %s, want failed", result.Status)
		}
	})

	t.Run("expired passport fails", func(t *testing.T) {
		result := v.Validate(domain.ExtractedFields{
			domain.FieldDocumentNumber: "GA123456",
			domain.FieldIssueDate:      "2010-03-01",
			domain.FieldExpiryDate:     "2020-03-01",
		})
		if result.Status != domain.StatusFailed {
			t.Errorf("status = %s, want failed (%s)", result.Status, result.Message)
		}
	})

	t.Run("expiring within 180 days warns", func(t *testing.T) {
		soonIssue := time.Now().AddDate(-10, 0, 0).AddDate(0, 0, 90)
		result := v.Validate(domain.ExtractedFields{
			domain.FieldDocumentNumber: "GA123456",
			domain.FieldDateOfBirth:    "1996-01-22",
			domain.FieldIssueDate:      soonIssue.Format("2006-01-02"),
			domain.FieldExpiryDate:     soonIssue.AddDate(10, 0, 0).Format("2006-01-02"),
		})
		if result.Status != domain.StatusWarning {
			t.Errorf("status = %s, want warning (%s)", result.Status, result.Message)
		}
	})

	t.Run("pre-1985 issue warns", func(t *testing.T) {
		result := v.Validate(domain.ExtractedFields{
			domain.FieldDocumentNumber: "GA123456",
			domain.FieldIssueDate:      "1980-03-01",
		})
		if result.Status != domain.StatusWarning {
			t.Errorf("status = %s, want warning (%s)", result.Status, result.Message)
		}
	})

	t.Run("wrong format fails", func(t *testing.T) {
		result := v.Validate(domain.ExtractedFields{
			domain.FieldDocumentNumber: "1234567",
		})
		if result.Status != domain.StatusFailed {
			t.Errorf("status = %s, want failed", result.Status)
		}
	})

	t.Run("number starting with DL is kept whole", func(t *testing.T) {
		result := v.Validate(domain.ExtractedFields{
			domain.FieldDocumentNumber: "DL123456",
		})
		if result.Status != domain.StatusPassed {
			t.Errorf("status = %s, want passed (%s)", result.Status, result.Message)
		}
	})
}

func TestCanadaPRCardValidator(t *testing.T) {
	v := NewCanadaPRCardValidator()

	t.Run("five year card passes", func(t *testing.T) {
		issue := time.Now().AddDate(-1, 0, 0)
		result := v.Validate(domain.ExtractedFields{
			domain.FieldDocumentNumber: "RA123456",
			domain.FieldIssueDate:      issue.Format("2006-01-02"),
			domain.FieldExpiryDate:     issue.AddDate(5, 0, 0).Format("2006-01-02"),
		})
		if result.Status != domain.StatusPassed {
			t.Errorf("status = %s, want passed (%s)", result.Status, result.Message)
		}
	})

	t.Run("nonstandard term warns", func(t *testing.T) {
		issue := time.Now().AddDate(-1, 0, 0)
		result := v.Validate(domain.ExtractedFields{
			domain.FieldDocumentNumber: "RA123456",
			domain.FieldIssueDate:      issue.Format("2006-01-02"),
			domain.FieldExpiryDate:     issue.AddDate(8, 0, 0).Format("2006-01-02"),
		})
		if result.Status != domain.StatusWarning {
			t.Errorf("status = %s, want warning (%s)", result.Status, result.Message)
		}
	})

	t.Run("expired card fails", func(t *testing.T) {
		result := v.Validate(domain.ExtractedFields{
			domain.FieldDocumentNumber: "RA123456",
			domain.FieldIssueDate:      "2015-03-01",
			domain.FieldExpiryDate:     "2020-03-01",
		})
		if result.Status != domain.StatusFailed {
			t.Errorf("status = %s, want failed", result.Status)
		}
	})
}
