package study

import (
	"math"

	"github.com/lunarbyte/flashdeck-backend/internal/domain"
)

// DefaultMasteryThreshold is the repetition count at which a card counts as
// well learned.
const DefaultMasteryThreshold = 3

// ComputeMastery returns the mastery percentage (0..100) and the number of
// mastered cards for a collection. A card is mastered once its SM-2
// repetition count reaches the threshold. Archived cards are ignored; an
// empty active set yields 0.
func ComputeMastery(cards []domain.Flashcard, threshold int) (float64, int) {
	if threshold <= 0 {
		threshold = DefaultMasteryThreshold
	}

	active, mastered := 0, 0
	for i := range cards {
		if cards[i].IsArchived() {
			continue
		}
		active++
		if cards[i].Repetitions >= threshold {
			mastered++
		}
	}

	if active == 0 {
		return 0, 0
	}
	return float64(mastered) / float64(active) * 100, mastered
}

// GlobalMastery returns the account-level mastery: the arithmetic mean of the
// collections' mastery levels, rounded to the nearest integer. No collections
// yields 0.
func GlobalMastery(collections []domain.Collection) int {
	if len(collections) == 0 {
		return 0
	}

	var sum float64
	for i := range collections {
		sum += collections[i].MasteryLevel
	}
	return int(math.Round(sum / float64(len(collections))))
}
