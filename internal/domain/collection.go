package domain

import (
	"time"

	"github.com/google/uuid"
)

// Collection groups flashcards for one user and carries denormalized study
// progress. The counter and progress fields (TotalCards, DueCards,
// MasteryLevel, streaks, LastStudied) are a materialized cache: they are
// recomputed from the card set after every mutation and never hand-edited.
type Collection struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Description   string
	Color         string
	Tags          []string
	TotalCards    int
	DueCards      int
	MasteryLevel  float64
	LastStudied   *time.Time
	CurrentStreak int
	BestStreak    int
	ArchivedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsArchived reports whether the collection has been archived.
func (c *Collection) IsArchived() bool {
	return c.ArchivedAt != nil
}

// CollectionAggregates holds the derived fields written back onto a
// collection after a study session or archive transition.
type CollectionAggregates struct {
	TotalCards    int
	DueCards      int
	MasteryLevel  float64
	LastStudied   *time.Time
	CurrentStreak int
	BestStreak    int
}
