package fake

import (
	"strings"
	"testing"

	"github.com/veriscan/veriscan-backend/internal/idcheck/domain"
)

func TestDetect_PlaceholderNameAndAddress(t *testing.T) {
	d := NewDetector()

	result := d.Detect(domain.ExtractedFields{
		domain.FieldFullName: "JOHN DOE",
		domain.FieldAddress:  "123 Main Street",
	})

	if !result.IsFake {
		t.Fatalf("IsFake = false, want true (reasons %v)", result.Reasons)
	}
	var nameHit, addressHit bool
	for _, reason := range result.Reasons {
		if strings.Contains(reason, "placeholder john doe") {
			nameHit = true
		}
		if strings.Contains(reason, "placeholder pattern") {
			addressHit = true
		}
	}
	if !nameHit {
		t.Errorf("reasons %v missing a known fake name match", result.Reasons)
	}
	if !addressHit {
		t.Errorf("reasons %v missing a fake address match", result.Reasons)
	}
	if len(result.ChecksPerformed) != 6 {
		t.Errorf("checks performed = %d, want 6", len(result.ChecksPerformed))
	}
}

func TestDetect_SpecimenKeyword(t *testing.T) {
	d := NewDetector()
	result := d.Detect(domain.ExtractedFields{
		domain.FieldDocumentTitle: "SPECIMEN - Ontario Driver's Licence",
		domain.FieldFullName:      "DUPONT, MARIE",
	})
	if len(result.Reasons) == 0 {
		t.Fatal("specimen keyword should produce a reason")
	}
	if result.Confidence <= 0 {
		t.Errorf("confidence = %v, want > 0", result.Confidence)
	}
}

func TestDetect_KeywordScoredOncePerKeyword(t *testing.T) {
	d := NewDetector()

	// The same keyword in two fields counts once.
	result := d.Detect(domain.ExtractedFields{
		domain.FieldDocumentTitle: "VOID Ontario Licence",
		domain.FieldAddress:       "14 Void Crescent",
	})
	if result.IsFake {
		t.Errorf("IsFake = true for a single keyword hit (reasons %v)", result.Reasons)
	}
	if result.Confidence != 0.25 {
		t.Errorf("confidence = %v, want 0.25", result.Confidence)
	}
	if len(result.Reasons) != 1 {
		t.Errorf("reasons = %v, want one combined keyword reason", result.Reasons)
	}
}

func TestDetect_KnownSpecimenNumber(t *testing.T) {
	d := NewDetector()
	result := d.Detect(domain.ExtractedFields{
		domain.FieldDocumentNumber: "5584486674AB",
	})
	if !result.IsFake {
		t.Errorf("IsFake = false, want true (reasons %v)", result.Reasons)
	}
}

func TestDetect_RepeatedCharacterName(t *testing.T) {
	d := NewDetector()

	result := d.Detect(domain.ExtractedFields{
		domain.FieldFirstName: "Aaaa",
		domain.FieldLastName:  "Xxxxx",
	})
	if len(result.Reasons) != 2 {
		t.Errorf("reasons = %v, want two repeated character hits", result.Reasons)
	}

	// Short names are exempt.
	result = d.Detect(domain.ExtractedFields{
		domain.FieldFirstName: "Bo",
		domain.FieldLastName:  "Ng",
	})
	if len(result.Reasons) != 0 {
		t.Errorf("short names should not be flagged: %v", result.Reasons)
	}
}

func TestDetect_SuspiciousDates(t *testing.T) {
	d := NewDetector()

	result := d.Detect(domain.ExtractedFields{
		domain.FieldDateOfBirth: "1900-01-01",
	})
	// Placeholder literal, placeholder year, and implausible year all fire.
	if len(result.Reasons) != 3 {
		t.Errorf("reasons = %v, want all three date heuristics to fire", result.Reasons)
	}
	if !result.IsFake {
		t.Errorf("IsFake = false, want true (reasons %v)", result.Reasons)
	}

	result = d.Detect(domain.ExtractedFields{
		domain.FieldDateOfBirth: "1915-06-03",
	})
	if len(result.Reasons) != 1 {
		t.Errorf("reasons = %v, want only the implausible year hit", result.Reasons)
	}
}

func TestDetect_MRZ(t *testing.T) {
	d := NewDetector()

	result := d.Detect(domain.ExtractedFields{
		domain.FieldMRZ: "P<CANSPECIMEN<<SPECIMEN<<<<<<<<<<<<<<<<<<<<<",
	})
	if len(result.Reasons) == 0 {
		t.Error("specimen MRZ should produce a reason")
	}
}

func TestDetect_CleanDocument(t *testing.T) {
	d := NewDetector()

	result := d.Detect(domain.ExtractedFields{
		domain.FieldFirstName:      "Priya",
		domain.FieldLastName:       "Sharma",
		domain.FieldDocumentNumber: "S7204-41185-90715",
		domain.FieldDateOfBirth:    "1989-07-15",
		domain.FieldAddress:        "88 Harbour View Rd, Hamilton, ON",
	})
	if result.IsFake {
		t.Errorf("IsFake = true for clean document (reasons %v)", result.Reasons)
	}
	if result.Confidence != 0 {
		t.Errorf("confidence = %v, want 0 (reasons %v)", result.Confidence, result.Reasons)
	}
}

func TestDetect_SequentialNumbers(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name       string
		number     string
		fake       bool
		wantReason bool
	}{
		{"all same digit", "777777777", true, true},
		{"exact descending sequence", "876543210", true, true},
		{"mostly sequential", "234567890", false, true},
		{"alternating digits", "121212", false, true},
		{"letter prefix skips the check", "AB987654", false, false},
		{"non sequential", "903817246", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := d.Detect(domain.ExtractedFields{domain.FieldDocumentNumber: tt.number})
			if result.IsFake != tt.fake {
				t.Errorf("IsFake = %v, want %v (reasons %v)", result.IsFake, tt.fake, result.Reasons)
			}
			if (len(result.Reasons) > 0) != tt.wantReason {
				t.Errorf("pattern %s reasons = %v, want reason %v", tt.number, result.Reasons, tt.wantReason)
			}
		})
	}
}
