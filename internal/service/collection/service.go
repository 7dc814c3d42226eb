package collection

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lunarbyte/flashdeck-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type flashcardRepo interface {
	GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Flashcard, error)
	ListByCollection(ctx context.Context, userID, collectionID uuid.UUID, includeArchived bool) ([]domain.Flashcard, error)
	SetArchived(ctx context.Context, cardID uuid.UUID, archivedAt *time.Time) error
}

type collectionRepo interface {
	GetByID(ctx context.Context, userID, collectionID uuid.UUID) (*domain.Collection, error)
	SetArchived(ctx context.Context, collectionID uuid.UUID, archivedAt *time.Time) error
	UpdateAggregates(ctx context.Context, collectionID uuid.UUID, agg domain.CollectionAggregates) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements collection-level card archival and the derived
// collection archive state: a collection is archived exactly when all of its
// cards are archived. The transition is evaluated after every card archive
// toggle, in the same transaction that recomputes the aggregates.
type Service struct {
	cards       flashcardRepo
	collections collectionRepo
	tx          txManager
	clock       clock
	log         *slog.Logger
	srs         domain.SRSConfig
}

// NewService creates a new collection service.
func NewService(
	log *slog.Logger,
	cards flashcardRepo,
	collections collectionRepo,
	tx txManager,
	srs domain.SRSConfig,
) *Service {
	return &Service{
		cards:       cards,
		collections: collections,
		tx:          tx,
		clock:       realClock{},
		log:         log.With("service", "collection"),
		srs:         srs,
	}
}

// WithClock replaces the service clock. Test hook.
func (s *Service) WithClock(c clock) *Service {
	s.clock = c
	return s
}
