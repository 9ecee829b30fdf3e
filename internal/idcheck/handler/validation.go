package handler

import (
	"net/http"

	"github.com/veriscan/veriscan-backend/internal/idcheck/domain"
	"github.com/veriscan/veriscan-backend/internal/idcheck/service"
	"github.com/veriscan/veriscan-backend/pkg/httputil"
	"github.com/veriscan/veriscan-backend/pkg/logger"
)

// ValidationHandler handles document validation endpoints
type ValidationHandler struct {
	service    *service.Service
	minimumAge int
	logger     *logger.Logger
}

// NewValidationHandler creates a new validation handler. minimumAge is the
// default threshold used when a request does not carry its own.
func NewValidationHandler(svc *service.Service, minimumAge int, log *logger.Logger) *ValidationHandler {
	return &ValidationHandler{
		service:    svc,
		minimumAge: minimumAge,
		logger:     log,
	}
}

// ValidateRequest is the document validation request body. Every field is
// optional; the pipeline treats absence as a first class value.
type ValidateRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	FullName       string `json:"full_name"`
	DocumentNumber string `json:"document_number"`
	DateOfBirth    string `json:"date_of_birth"`
	IssueDate      string `json:"issue_date"`
	ExpiryDate     string `json:"expiry_date"`
	Gender         string `json:"gender"`
	Address        string `json:"address"`
	Nationality    string `json:"nationality"`
	MRZ            string `json:"mrz"`
	CountryCode    string `json:"country_code"`
	DocumentTitle  string `json:"document_title"`

	MinimumAge int `json:"minimum_age" validate:"omitempty,min=0,max=150"`
}

// ValidateResponse is the document validation response body.
type ValidateResponse struct {
	DocumentType     domain.DocumentTypeInfo   `json:"document_type"`
	Summary          domain.ValidationSummary  `json:"summary"`
	ValidatorResults []domain.ValidatorResult  `json:"validator_results"`
	FakeDocument     domain.FakeDocumentResult `json:"fake_document"`
}

// Validate handles document validation
func (h *ValidationHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}

	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, err)
		return
	}

	minimumAge := req.MinimumAge
	if minimumAge == 0 {
		minimumAge = h.minimumAge
	}

	fields := req.toFields()
	summary, results, typeInfo := h.service.ValidateDocument(r.Context(), fields, minimumAge)
	fakeResult := h.service.DetectFake(fields)

	httputil.JSON(w, http.StatusOK, ValidateResponse{
		DocumentType:     typeInfo,
		Summary:          summary,
		ValidatorResults: results,
		FakeDocument:     fakeResult,
	})
}

func (req *ValidateRequest) toFields() domain.ExtractedFields {
	return domain.ExtractedFields{
		domain.FieldFirstName:      req.FirstName,
		domain.FieldLastName:       req.LastName,
		domain.FieldFullName:       req.FullName,
		domain.FieldDocumentNumber: req.DocumentNumber,
		domain.FieldDateOfBirth:    req.DateOfBirth,
		domain.FieldIssueDate:      req.IssueDate,
		domain.FieldExpiryDate:     req.ExpiryDate,
		domain.FieldGender:         req.Gender,
		domain.FieldAddress:        req.Address,
		domain.FieldNationality:    req.Nationality,
		domain.FieldMRZ:            req.MRZ,
		domain.FieldCountryCode:    req.CountryCode,
		domain.FieldDocumentTitle:  req.DocumentTitle,
	}
}
