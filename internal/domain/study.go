package domain

import (
	"time"

	"github.com/google/uuid"
)

// MinGrade and MaxGrade bound the SM-2 recall-quality scale.
const (
	MinGrade = 0
	MaxGrade = 5
)

// PassingGrade is the lowest grade counted as successful recall.
const PassingGrade = 3

// StudyResult is one graded card within a study session submission.
type StudyResult struct {
	FlashcardID uuid.UUID
	Grade       int
	StudiedAt   time.Time
}

// SessionSummary is the outcome of a processed study session, reflecting the
// collection's state after all updates were applied.
type SessionSummary struct {
	MasteryLevel   float64
	LastStudied    *time.Time
	TotalCards     int
	MasteredCards  int
	CurrentStreak  int
	BestStreak     int
	SkippedCardIDs []uuid.UUID
}

// CollectionStats holds per-collection card statistics computed from the
// authoritative card set.
type CollectionStats struct {
	TotalCards    int
	DueCards      int
	ArchivedCards int
	MasteredCards int
}

// Dashboard holds the account-level roll-up across all of a user's
// collections. Streaks are maxima, not sums; MasteryLevel is the rounded
// arithmetic mean of collection mastery levels.
type Dashboard struct {
	Collections   int
	TotalCards    int
	DueCards      int
	ArchivedCards int
	MasteredCards int
	MasteryLevel  int
	CurrentStreak int
	BestStreak    int
	LastStudied   *time.Time
}

// SRSConfig holds spaced-repetition parameters (pure domain type).
type SRSConfig struct {
	DefaultEaseFactor float64
	MinEaseFactor     float64
	MaxIntervalDays   int
	MasteryThreshold  int
}
