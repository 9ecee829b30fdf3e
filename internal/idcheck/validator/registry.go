package validator

import (
	"github.com/veriscan/veriscan-backend/internal/idcheck/domain"
	"github.com/veriscan/veriscan-backend/internal/idcheck/verify"
)

// Registry maps document types to their jurisdiction validators. The mapping
// is built once at startup; Select composes the per-request set.
type Registry struct {
	byType map[domain.DocumentType][]Validator
}

// NewRegistry builds the full validator registry. The verifier is shared by
// the validators that support registry lookups; pass nil to disable them.
func NewRegistry(verifier verify.Client) *Registry {
	if verifier == nil {
		verifier = verify.Disabled{}
	}
	r := &Registry{byType: map[domain.DocumentType][]Validator{
		domain.DocumentTypeOntarioDL:      {NewOntarioDLValidator(verifier)},
		domain.DocumentTypeOntarioHealth:  {NewOntarioHealthCardValidator()},
		domain.DocumentTypeOntarioPhotoID: {NewOntarioPhotoIDValidator()},
		domain.DocumentTypeBCDL:           {NewBCDLValidator(verifier)},
		domain.DocumentTypeAlbertaDL:      {NewAlbertaDLValidator()},
		domain.DocumentTypeQuebecDL:       {NewQuebecDLValidator()},
		domain.DocumentTypeManitobaDL:     {NewManitobaDLValidator()},
		domain.DocumentTypeSaskatchewanDL: {NewSaskatchewanDLValidator()},
		domain.DocumentTypeNovaScotiaDL:   {NewNovaScotiaDLValidator()},
		domain.DocumentTypeNewBrunswickDL: {NewNewBrunswickDLValidator()},
		domain.DocumentTypePEIDL:          {NewPEIDLValidator()},
		domain.DocumentTypeNewfoundlandDL: {NewNewfoundlandDLValidator()},
		domain.DocumentTypeNWTDL:          {NewNWTDLValidator()},
		domain.DocumentTypeNunavutDL:      {NewNunavutDLValidator()},
		domain.DocumentTypeYukonDL:        {NewYukonDLValidator()},

		domain.DocumentTypeCanadianPassport: {NewCanadianPassportValidator()},
		domain.DocumentTypeCanadaPRCard:     {NewCanadaPRCardValidator()},

		domain.DocumentTypeUSDL:         {NewUSDLValidator()},
		domain.DocumentTypeCaliforniaDL: {NewCaliforniaDLValidator()},
		domain.DocumentTypeTexasDL:      {NewTexasDLValidator()},

		domain.DocumentTypeGenericPassport: {NewGenericPassportValidator()},
	}}
	for _, name := range []string{
		"us_passport", "uk_passport", "india_passport", "australia_passport",
		"germany_passport", "france_passport", "nigeria_passport",
		"china_passport", "colombia_passport", "ukraine_passport",
	} {
		v := NewCountryPassportValidator(name)
		r.byType[domain.DocumentType(name)] = []Validator{v}
	}
	return r
}

// ForType returns the jurisdiction validators registered for the type, or nil
// when the type has no bespoke rules.
func (r *Registry) ForType(docType domain.DocumentType) []Validator {
	return r.byType[docType]
}

// Select builds the full validator set for one request: every generic
// validator plus the jurisdiction validators for the detected type.
func (r *Registry) Select(docType domain.DocumentType, minimumAge int) []Validator {
	set := []Validator{
		NewDataConsistencyValidator(),
		NewDocumentExpiryValidator(),
		NewAgeValidator(minimumAge),
		NewDocumentFormatValidator(),
		NewFaceMatchingValidator(),
	}
	return append(set, r.byType[docType]...)
}
