package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lunarbyte/flashdeck-backend/internal/domain"
	"github.com/lunarbyte/flashdeck-backend/internal/service/study/sm2"
	"github.com/lunarbyte/flashdeck-backend/pkg/ctxutil"
)

// SubmitSession processes a batch of per-card grades for one collection:
// it updates each card's SM-2 scheduling state, advances the collection's
// streak, recomputes the collection aggregates from the persisted card set,
// and returns the post-update summary.
//
// The whole submission runs inside one transaction, serialized per
// collection. Results referencing cards not in the collection (or archived)
// are skipped and reported in the summary, not treated as errors.
func (s *Service) SubmitSession(ctx context.Context, input SubmitSessionInput) (*domain.SessionSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(input.CollectionID)
	defer unlock()

	collection, err := s.collections.GetByID(ctx, userID, input.CollectionID)
	if err != nil {
		return nil, fmt.Errorf("get collection: %w", err)
	}

	now := s.clock.Now()
	studyDate := sessionStudyDate(input.Results)

	params := sm2.Params{
		MinEaseFactor:   s.srs.MinEaseFactor,
		MaxIntervalDays: s.srs.MaxIntervalDays,
	}

	var summary *domain.SessionSummary

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cards, listErr := s.cards.ListByCollection(txCtx, userID, input.CollectionID, false)
		if listErr != nil {
			return fmt.Errorf("list cards: %w", listErr)
		}

		byID := make(map[uuid.UUID]*domain.Flashcard, len(cards))
		for i := range cards {
			byID[cards[i].ID] = &cards[i]
		}

		var skipped []uuid.UUID
		applied := 0

		// Cards are graded one at a time, in request order, so repeated
		// results for the same card compound on the evolving state.
		for _, result := range input.Results {
			card, found := byID[result.FlashcardID]
			if !found {
				skipped = append(skipped, result.FlashcardID)
				continue
			}

			res, updErr := sm2.Update(params, sm2.State{
				Repetitions:  card.Repetitions,
				IntervalDays: card.IntervalDays,
				EaseFactor:   card.EaseFactor,
			}, result.Grade, now)
			if updErr != nil {
				return fmt.Errorf("card %s: %w", card.ID, updErr)
			}

			card.Repetitions = res.State.Repetitions
			card.IntervalDays = res.State.IntervalDays
			card.EaseFactor = res.State.EaseFactor
			due := res.Due
			card.DueDate = &due
			reviewedAt := result.StudiedAt
			card.ReviewedAt = &reviewedAt
			// A NEW card that has been graded has entered the learning loop.
			if card.ReviewStatus == domain.ReviewStatusNew {
				card.ReviewStatus = domain.ReviewStatusApproved
			}

			if persistErr := s.cards.UpdateScheduling(txCtx, card.ID, domain.SchedulingUpdate{
				Repetitions:  card.Repetitions,
				IntervalDays: card.IntervalDays,
				EaseFactor:   card.EaseFactor,
				DueDate:      card.DueDate,
				ReviewedAt:   card.ReviewedAt,
				ReviewStatus: card.ReviewStatus,
			}); persistErr != nil {
				return fmt.Errorf("update card %s: %w", card.ID, persistErr)
			}
			applied++
		}

		currentStreak, bestStreak := UpdateStreak(
			collection.LastStudied, collection.CurrentStreak, collection.BestStreak, studyDate,
		)
		lastStudied := latestOf(collection.LastStudied, studyDate)

		// Aggregates are recomputed from the card set as persisted in this
		// transaction, not from the pre-read snapshot.
		activeCards, reListErr := s.cards.ListByCollection(txCtx, userID, input.CollectionID, false)
		if reListErr != nil {
			return fmt.Errorf("relist cards: %w", reListErr)
		}

		stats := AggregateCards(activeCards, now, s.srs.MasteryThreshold)
		masteryLevel, _ := ComputeMastery(activeCards, s.srs.MasteryThreshold)

		if aggErr := s.collections.UpdateAggregates(txCtx, collection.ID, domain.CollectionAggregates{
			TotalCards:    stats.TotalCards,
			DueCards:      stats.DueCards,
			MasteryLevel:  masteryLevel,
			LastStudied:   lastStudied,
			CurrentStreak: currentStreak,
			BestStreak:    bestStreak,
		}); aggErr != nil {
			return fmt.Errorf("update collection aggregates: %w", aggErr)
		}

		summary = &domain.SessionSummary{
			MasteryLevel:   masteryLevel,
			LastStudied:    lastStudied,
			TotalCards:     stats.TotalCards,
			MasteredCards:  stats.MasteredCards,
			CurrentStreak:  currentStreak,
			BestStreak:     bestStreak,
			SkippedCardIDs: skipped,
		}

		s.log.InfoContext(txCtx, "study session applied",
			slog.String("user_id", userID.String()),
			slog.String("collection_id", collection.ID.String()),
			slog.Int("applied", applied),
			slog.Int("skipped", len(skipped)),
			slog.Int("current_streak", currentStreak),
			slog.Float64("mastery_level", masteryLevel),
		)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}

// sessionStudyDate returns the session's study date: the maximum StudiedAt
// across all results in the batch.
func sessionStudyDate(results []domain.StudyResult) time.Time {
	var latest time.Time
	for _, r := range results {
		if r.StudiedAt.After(latest) {
			latest = r.StudiedAt
		}
	}
	return latest
}

// latestOf keeps LastStudied monotonic: a backdated submission never moves
// it backwards.
func latestOf(current *time.Time, candidate time.Time) *time.Time {
	if current != nil && current.After(candidate) {
		return current
	}
	return &candidate
}
