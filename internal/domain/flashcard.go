package domain

import (
	"time"

	"github.com/google/uuid"
)

// Flashcard is a single question/answer card owned by a collection.
// The SM-2 scheduling tuple (Repetitions, IntervalDays, EaseFactor, DueDate)
// is mutated only by the study service.
type Flashcard struct {
	ID           uuid.UUID
	CollectionID uuid.UUID
	UserID       uuid.UUID
	Front        string
	Back         string
	ReviewStatus ReviewStatus
	Source       CreationSource
	Repetitions  int
	IntervalDays int
	EaseFactor   float64
	DueDate      *time.Time
	ReviewedAt   *time.Time
	ArchivedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsArchived reports whether the card has been archived.
// Archived cards are excluded from scheduling and statistics but retained.
func (f *Flashcard) IsArchived() bool {
	return f.ArchivedAt != nil
}

// IsDue reports whether the card needs review at the given time.
//   - NEW cards are always due.
//   - Other cards are due when DueDate is set and DueDate <= now.
func (f *Flashcard) IsDue(now time.Time) bool {
	if f.ReviewStatus == ReviewStatusNew {
		return true
	}
	return f.DueDate != nil && !f.DueDate.After(now)
}

// SchedulingUpdate holds the fields to write back on a card after grading.
type SchedulingUpdate struct {
	Repetitions  int
	IntervalDays int
	EaseFactor   float64
	DueDate      *time.Time
	ReviewedAt   *time.Time
	ReviewStatus ReviewStatus
}
