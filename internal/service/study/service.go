package study

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
	ListByCollection(ctx context.Context, userID, collectionID uuid.UUID, includeArchived bool) ([]domain.Flashcard, error)
	ListByUser(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]domain.Flashcard, error)
	UpdateScheduling(ctx context.Context, cardID uuid.UUID, params domain.SchedulingUpdate) error
}

type collectionRepo interface {
	GetByID(ctx context.Context, userID, collectionID uuid.UUID) (*domain.Collection, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Collection, error)
	UpdateAggregates(ctx context.Context, collectionID uuid.UUID, agg domain.CollectionAggregates) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// clock abstracts time.Now for deterministic tests.
type clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the study business logic: session processing, the SM-2
// scheduling updates, streak tracking, and statistics aggregation.
type Service struct {
	cards       flashcardRepo
	collections collectionRepo
	tx          txManager
	clock       clock
	locks       *keyedMutex
	log         *slog.Logger
	srs         domain.SRSConfig
}

// NewService creates a new study service.
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
		locks:       newKeyedMutex(),
		log:         log.With("service", "study"),
		srs:         srs,
	}
}

// WithClock replaces the service clock. Test hook.
func (s *Service) WithClock(c clock) *Service {
	s.clock = c
	return s
}
