package study

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lunarbyte/flashdeck-backend/internal/domain"
)

// maxResultsPerSession bounds a single submission batch.
const maxResultsPerSession = 500

// SubmitSessionInput holds the parameters for submitting a study session.
type SubmitSessionInput struct {
	CollectionID uuid.UUID
	Results      []domain.StudyResult
}

// Validate checks all fields. A grade outside the 0..5 scale rejects the
// whole submission with an InvalidGradeError; structural problems are
// collected into a ValidationError.
func (i *SubmitSessionInput) Validate() error {
	var errs []domain.FieldError

	if i.CollectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "collection_id", Message: "required"})
	}
	if len(i.Results) == 0 {
		errs = append(errs, domain.FieldError{Field: "results", Message: "required (at least 1)"})
	} else if len(i.Results) > maxResultsPerSession {
		errs = append(errs, domain.FieldError{Field: "results", Message: fmt.Sprintf("too many (max %d)", maxResultsPerSession)})
	}

	for idx, r := range i.Results {
		if r.Grade < domain.MinGrade || r.Grade > domain.MaxGrade {
			return &domain.InvalidGradeError{Grade: r.Grade}
		}
		if r.FlashcardID == uuid.Nil {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("results[%d].flashcard_id", idx),
				Message: "required",
			})
		}
		if r.StudiedAt.IsZero() {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("results[%d].studied_at", idx),
				Message: "required",
			})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GetCollectionStatsInput holds the parameters for fetching collection stats.
type GetCollectionStatsInput struct {
	CollectionID uuid.UUID
}

// Validate checks all fields.
func (i *GetCollectionStatsInput) Validate() error {
	if i.CollectionID == uuid.Nil {
		return domain.NewValidationError("collection_id", "required")
	}
	return nil
}
