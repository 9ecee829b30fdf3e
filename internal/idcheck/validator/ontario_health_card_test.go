package validator

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/veriscan/veriscan-backend/internal/idcheck/domain"
)

// luhnCheckDigit computes the digit that makes payload+digit pass the mod-10
// checksum.
func luhnCheckDigit(payload string) int {
	sum := 0
	double := true
	for i := len(payload) - 1; i >= 0; i-- {
		d := int(payload[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return (10 - sum%10) % 10
}

func TestOntarioHealthCardValidator(t *testing.T) {
	v := NewOntarioHealthCardValidator()

	t.Run("checksum valid number passes", func(t *testing.T) {
		result := v.Validate(domain.ExtractedFields{
			domain.FieldDocumentNumber: "1234567897AB",
		})
		if result.Status != domain.StatusPassed {
			t.Errorf("status = %s, want passed (%s)", result.Status, result.Message)
		}
	})

	t.Run("checksum invalid number fails citing Luhn", func(t *testing.T) {
		result := v.Validate(domain.ExtractedFields{
			domain.FieldDocumentNumber: "1234567890AB",
		})
		if result.Status != domain.StatusFailed {
			t.Fatalf("status = %s, want failed", result.Status)
		}
		if !strings.Contains(result.Message, "Luhn checksum") {
			t.Errorf("message %q should cite the Luhn checksum", result.Message)
		}
	})

	t.Run("excluded version letters fail", func(t *testing.T) {
		for _, code := range []string{"OI", "QA", "AU"} {
			result := v.Validate(domain.ExtractedFields{
				domain.FieldDocumentNumber: "1234567897" + code,
			})
			if result.Status != domain.StatusFailed {
				t.Errorf("version code %s: status = %s, want failed", code, result.Status)
			}
		}
	})

	t.Run("old format without version code warns", func(t *testing.T) {
		result := v.Validate(domain.ExtractedFields{
			domain.FieldDocumentNumber: "1234567897",
		})
		if result.Status != domain.StatusWarning {
			t.Fatalf("status = %s, want warning (%s)", result.Status, result.Message)
		}
		if !strings.Contains(result.Message, "red and white") {
			t.Errorf("message %q should mention the old card format", result.Message)
		}
	})

	t.Run("expiry within ninety days warns", func(t *testing.T) {
		expiry := time.Now().AddDate(0, 0, 45).Format("2006-01-02")
		result := v.Validate(domain.ExtractedFields{
			domain.FieldDocumentNumber: "1234567897AB",
			domain.FieldExpiryDate:     expiry,
		})
		if result.Status != domain.StatusWarning {
			t.Fatalf("status = %s, want warning (%s)", result.Status, result.Message)
		}
		if _, ok := result.Details["days_until_renewal"]; !ok {
			t.Error("details should record days_until_renewal")
		}
	})

	t.Run("wrong shape fails", func(t *testing.T) {
		result := v.Validate(domain.ExtractedFields{
			domain.FieldDocumentNumber: "12345AB",
		})
		if result.Status != domain.StatusFailed {
			t.Errorf("status = %s, want failed", result.Status)
		}
	})
}

func TestOntarioHealthCardLuhnProperty(t *testing.T) {
	v := NewOntarioHealthCardValidator()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		payload := fmt.Sprintf("%09d", rng.Intn(1000000000))
		check := luhnCheckDigit(payload)

		valid := fmt.Sprintf("%s%dAB", payload, check)
		result := v.Validate(domain.ExtractedFields{domain.FieldDocumentNumber: valid})
		if result.Status != domain.StatusPassed {
			t.Fatalf("valid number %s: status = %s (%s)", valid, result.Status, result.Message)
		}

		invalid := fmt.Sprintf("%s%dAB", payload, (check+1)%10)
		result = v.Validate(domain.ExtractedFields{domain.FieldDocumentNumber: invalid})
		if result.Status != domain.StatusFailed {
			t.Fatalf("invalid number %s: status = %s", invalid, result.Status)
		}
		if !strings.Contains(result.Message, "Luhn checksum") {
			t.Fatalf("invalid number %s: message %q should cite the Luhn checksum", invalid, result.Message)
		}
	}
}
