// Package service orchestrates a validation request: document type
// detection, parallel validator execution, result aggregation, and the
// independent fake document check.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/veriscan/veriscan-backend/internal/idcheck/domain"
	"github.com/veriscan/veriscan-backend/internal/idcheck/metrics"
	"github.com/veriscan/veriscan-backend/internal/idcheck/validator"
)

// TypeDetector classifies fields into a document type.
type TypeDetector interface {
	Detect(fields domain.ExtractedFields) domain.DocumentTypeInfo
}

// FakeDetector scores fields for specimen and forgery indicators.
type FakeDetector interface {
	Detect(fields domain.ExtractedFields) domain.FakeDocumentResult
}

// ValidatorSource builds the validator set for a detected type.
type ValidatorSource interface {
	Select(docType domain.DocumentType, minimumAge int) []validator.Validator
}

// Service runs the full validation pipeline. All collaborators are stateless,
// so one Service is shared across requests.
type Service struct {
	detector   TypeDetector
	fake       FakeDetector
	validators ValidatorSource
	logger     zerolog.Logger
}

func New(detector TypeDetector, fake FakeDetector, validators ValidatorSource, logger zerolog.Logger) *Service {
	return &Service{
		detector:   detector,
		fake:       fake,
		validators: validators,
		logger:     logger,
	}
}

// ValidateDocument detects the document type, runs every applicable validator
// concurrently, and aggregates the results. A validator that panics becomes a
// synthetic failed result; the batch always completes.
func (s *Service) ValidateDocument(ctx context.Context, fields domain.ExtractedFields, minimumAge int) (domain.ValidationSummary, []domain.ValidatorResult, domain.DocumentTypeInfo) {
	start := time.Now()

	typeInfo := s.detector.Detect(fields)
	s.logger.Info().
		Str("document_type", string(typeInfo.DocumentType)).
		Float64("confidence", typeInfo.Confidence).
		Msg("document type detected")

	validators := s.validators.Select(typeInfo.DocumentType, minimumAge)
	results := make([]domain.ValidatorResult, len(validators))

	g, _ := errgroup.WithContext(ctx)
	for i, v := range validators {
		i, v := i, v
		g.Go(func() error {
			results[i] = s.runValidator(v, fields)
			return nil
		})
	}
	// Workers never return errors; the group is used only as a join point.
	_ = g.Wait()

	summary := Summarize(results)

	metrics.ObserveValidation(string(typeInfo.DocumentType), string(summary.OverallStatus), time.Since(start))
	s.logger.Info().
		Str("overall_status", string(summary.OverallStatus)).
		Float64("validation_score", summary.ValidationScore).
		Int("total_checks", summary.TotalChecks).
		Dur("duration", time.Since(start)).
		Msg("validation complete")

	return summary, results, typeInfo
}

// runValidator isolates one validator call so a panic inside it cannot take
// down sibling workers.
func (s *Service) runValidator(v validator.Validator, fields domain.ExtractedFields) (result domain.ValidatorResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Str("validator", v.Name()).Interface("panic", r).Msg("validator panicked")
			result = domain.ValidatorResult{
				ValidatorName: v.Name(),
				Status:        domain.StatusFailed,
				Message:       fmt.Sprintf("Validator error: %v", r),
				Details:       map[string]interface{}{"internal_error": fmt.Sprint(r)},
			}
		}
	}()
	return v.Validate(fields)
}

// DetectFake runs the specimen heuristics. Independent of type detection.
func (s *Service) DetectFake(fields domain.ExtractedFields) domain.FakeDocumentResult {
	result := s.fake.Detect(fields)
	if result.IsFake {
		s.logger.Warn().
			Float64("confidence", result.Confidence).
			Strs("reasons", result.Reasons).
			Msg("fake document indicators found")
		metrics.IncFakeDetected()
	}
	return result
}

// Summarize folds validator results into a summary. The fold is commutative:
// result order never changes the outcome.
func Summarize(results []domain.ValidatorResult) domain.ValidationSummary {
	summary := domain.ValidationSummary{TotalChecks: len(results)}
	for _, r := range results {
		switch r.Status {
		case domain.StatusPassed:
			summary.PassedChecks++
		case domain.StatusFailed:
			summary.FailedChecks++
		case domain.StatusWarning:
			summary.WarningChecks++
		case domain.StatusSkipped:
			summary.SkippedChecks++
		}
	}

	effective := summary.TotalChecks - summary.SkippedChecks
	if effective > 0 {
		summary.ValidationScore = (float64(summary.PassedChecks) + 0.5*float64(summary.WarningChecks)) / float64(effective)
	}

	switch {
	case summary.FailedChecks > 0:
		summary.OverallStatus = domain.StatusFailed
	case summary.WarningChecks > 0:
		summary.OverallStatus = domain.StatusWarning
	case summary.PassedChecks > 0:
		summary.OverallStatus = domain.StatusPassed
	default:
		summary.OverallStatus = domain.StatusSkipped
	}
	return summary
}
