package collection

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lunarbyte/flashdeck-backend/internal/domain"
	"github.com/lunarbyte/flashdeck-backend/internal/service/study"
	"github.com/lunarbyte/flashdeck-backend/pkg/ctxutil"
)

// ArchiveCard archives a flashcard. Archiving the last active card of a
// collection archives the collection itself. Idempotent: archiving an
// already archived card is a no-op.
func (s *Service) ArchiveCard(ctx context.Context, input ArchiveCardInput) error {
	return s.setCardArchived(ctx, input.CardID, true)
}

// UnarchiveCard restores an archived flashcard. Unarchiving any card of an
// archived collection unarchives the collection. Idempotent.
func (s *Service) UnarchiveCard(ctx context.Context, input ArchiveCardInput) error {
	return s.setCardArchived(ctx, input.CardID, false)
}

func (s *Service) setCardArchived(ctx context.Context, cardID uuid.UUID, archived bool) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if cardID == uuid.Nil {
		return domain.NewValidationError("card_id", "required")
	}

	now := s.clock.Now()

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		card, err := s.cards.GetByID(txCtx, userID, cardID)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}

		if card.IsArchived() == archived {
			return nil
		}

		var archivedAt *time.Time
		if archived {
			archivedAt = &now
		}
		if err := s.cards.SetArchived(txCtx, card.ID, archivedAt); err != nil {
			return fmt.Errorf("set card archived: %w", err)
		}

		return s.reconcileCollection(txCtx, userID, card.CollectionID, now)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "card archive state changed",
		slog.String("user_id", userID.String()),
		slog.String("card_id", cardID.String()),
		slog.Bool("archived", archived),
	)

	return nil
}

// reconcileCollection re-evaluates the derived collection archive state
// (archived ⇔ no active cards) and recomputes the collection aggregates
// from the card set. Streaks and last-studied are preserved.
func (s *Service) reconcileCollection(ctx context.Context, userID, collectionID uuid.UUID, now time.Time) error {
	collection, err := s.collections.GetByID(ctx, userID, collectionID)
	if err != nil {
		return fmt.Errorf("get collection: %w", err)
	}

	active, err := s.cards.ListByCollection(ctx, userID, collectionID, false)
	if err != nil {
		return fmt.Errorf("list active cards: %w", err)
	}

	switch {
	case len(active) == 0 && !collection.IsArchived():
		if err := s.collections.SetArchived(ctx, collectionID, &now); err != nil {
			return fmt.Errorf("archive collection: %w", err)
		}
	case len(active) > 0 && collection.IsArchived():
		if err := s.collections.SetArchived(ctx, collectionID, nil); err != nil {
			return fmt.Errorf("unarchive collection: %w", err)
		}
	}

	stats := study.AggregateCards(active, now, s.srs.MasteryThreshold)
	masteryLevel, _ := study.ComputeMastery(active, s.srs.MasteryThreshold)

	if err := s.collections.UpdateAggregates(ctx, collectionID, domain.CollectionAggregates{
		TotalCards:    stats.TotalCards,
		DueCards:      stats.DueCards,
		MasteryLevel:  masteryLevel,
		LastStudied:   collection.LastStudied,
		CurrentStreak: collection.CurrentStreak,
		BestStreak:    collection.BestStreak,
	}); err != nil {
		return fmt.Errorf("update collection aggregates: %w", err)
	}

	return nil
}
