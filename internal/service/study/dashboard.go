package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lunarbyte/flashdeck-backend/internal/domain"
	"github.com/lunarbyte/flashdeck-backend/pkg/ctxutil"
)

// GetDashboard returns the account-level roll-up across all of the user's
// collections. Card counts are computed fresh from the card set (due-ness
// decays with time even without mutations); streaks and mastery come from
// the collections' materialized progress fields.
func (s *Service) GetDashboard(ctx context.Context) (domain.Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Dashboard{}, domain.ErrUnauthorized
	}

	collections, err := s.collections.ListByUser(ctx, userID)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("list collections: %w", err)
	}

	cards, err := s.cards.ListByUser(ctx, userID, true)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("list cards: %w", err)
	}

	now := s.clock.Now()
	byCollection := make(map[uuid.UUID][]domain.Flashcard)
	for _, c := range cards {
		byCollection[c.CollectionID] = append(byCollection[c.CollectionID], c)
	}

	dashboard := domain.Dashboard{
		Collections:  len(collections),
		MasteryLevel: GlobalMastery(collections),
		LastStudied:  LatestStudied(collections),
	}
	dashboard.CurrentStreak, dashboard.BestStreak = MaxStreaks(collections)

	for i := range collections {
		stats := AggregateCards(byCollection[collections[i].ID], now, s.srs.MasteryThreshold)
		dashboard.TotalCards += stats.TotalCards
		dashboard.DueCards += stats.DueCards
		dashboard.ArchivedCards += stats.ArchivedCards
		dashboard.MasteredCards += stats.MasteredCards
	}

	s.log.InfoContext(ctx, "dashboard loaded",
		slog.String("user_id", userID.String()),
		slog.Int("collections", dashboard.Collections),
		slog.Int("due_cards", dashboard.DueCards),
		slog.Int("current_streak", dashboard.CurrentStreak),
	)

	return dashboard, nil
}

// GetCollectionStats returns fresh statistics for one collection, including
// archived card counts.
func (s *Service) GetCollectionStats(ctx context.Context, input GetCollectionStatsInput) (domain.CollectionStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.CollectionStats{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.CollectionStats{}, err
	}

	// Ownership check.
	if _, err := s.collections.GetByID(ctx, userID, input.CollectionID); err != nil {
		return domain.CollectionStats{}, fmt.Errorf("get collection: %w", err)
	}

	cards, err := s.cards.ListByCollection(ctx, userID, input.CollectionID, true)
	if err != nil {
		return domain.CollectionStats{}, fmt.Errorf("list cards: %w", err)
	}

	return AggregateCards(cards, s.clock.Now(), s.srs.MasteryThreshold), nil
}
