package study

import (
	"time"

	"github.com/lunarbyte/flashdeck-backend/internal/domain"
)

// AggregateCards computes collection-level card statistics from the
// authoritative card set at the given time.
//
// Archived cards are excluded from TotalCards, DueCards and MasteredCards and
// counted separately. A card is due when its review status is NEW or its due
// date has arrived.
func AggregateCards(cards []domain.Flashcard, now time.Time, masteryThreshold int) domain.CollectionStats {
	if masteryThreshold <= 0 {
		masteryThreshold = DefaultMasteryThreshold
	}

	var stats domain.CollectionStats
	for i := range cards {
		c := &cards[i]
		if c.IsArchived() {
			stats.ArchivedCards++
			continue
		}
		stats.TotalCards++
		if c.IsDue(now) {
			stats.DueCards++
		}
		if c.Repetitions >= masteryThreshold {
			stats.MasteredCards++
		}
	}
	return stats
}

// MaxStreaks returns the account-level streak pair: the maximum current and
// best streak across collections (not a sum).
func MaxStreaks(collections []domain.Collection) (current, best int) {
	for i := range collections {
		current = max(current, collections[i].CurrentStreak)
		best = max(best, collections[i].BestStreak)
	}
	return current, best
}

// LatestStudied returns the most recent LastStudied across collections,
// or nil if none has been studied.
func LatestStudied(collections []domain.Collection) *time.Time {
	var latest *time.Time
	for i := range collections {
		ls := collections[i].LastStudied
		if ls == nil {
			continue
		}
		if latest == nil || ls.After(*latest) {
			latest = ls
		}
	}
	return latest
}
