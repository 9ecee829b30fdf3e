package validator

import (
	"testing"

	"github.com/veriscan/veriscan-backend/internal/idcheck/domain"
)

func TestRegistrySelect(t *testing.T) {
	r := NewRegistry(nil)

	t.Run("known type adds jurisdiction validators", func(t *testing.T) {
		set := r.Select(domain.DocumentTypeOntarioDL, 18)
		if len(set) != 6 {
			t.Fatalf("validator count = %d, want 5 generic + 1 jurisdiction", len(set))
		}
		last := set[len(set)-1]
		if last.Name() != "ontario_drivers_license" {
			t.Errorf("jurisdiction validator = %s, want ontario_drivers_license", last.Name())
		}
	})

	t.Run("unknown type gets only generics", func(t *testing.T) {
		set := r.Select(domain.DocumentTypeUnknown, 18)
		if len(set) != 5 {
			t.Errorf("validator count = %d, want 5 generics", len(set))
		}
	})

	t.Run("every mapped type resolves", func(t *testing.T) {
		for docType := range domain.DocumentPatterns {
			if docType == domain.DocumentTypeGenericPhotoID {
				// No bespoke rules beyond the generic set.
				continue
			}
			if len(r.ForType(docType)) == 0 {
				t.Errorf("no jurisdiction validators registered for %s", docType)
			}
		}
	})

	t.Run("validator names are stable", func(t *testing.T) {
		for docType, set := range map[domain.DocumentType][]Validator{
			domain.DocumentTypeOntarioHealth:   r.ForType(domain.DocumentTypeOntarioHealth),
			domain.DocumentTypeCanadianPassport: r.ForType(domain.DocumentTypeCanadianPassport),
			domain.DocumentTypeUkrainePassport: r.ForType(domain.DocumentTypeUkrainePassport),
		} {
			for _, v := range set {
				if v.Name() != string(docType) {
					t.Errorf("validator for %s is named %s", docType, v.Name())
				}
			}
		}
	})
}
