package collection

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lunarbyte/flashdeck-backend/internal/domain"
)

var _ flashcardRepo = &flashcardRepoMock{}

type flashcardRepoMock struct {
	GetByIDFunc          func(ctx context.Context, userID, cardID uuid.UUID) (*domain.Flashcard, error)
	ListByCollectionFunc func(ctx context.Context, userID, collectionID uuid.UUID, includeArchived bool) ([]domain.Flashcard, error)
	SetArchivedFunc      func(ctx context.Context, cardID uuid.UUID, archivedAt *time.Time) error

	calls struct {
		GetByID []struct {
			UserID uuid.UUID
			CardID uuid.UUID
		}
		ListByCollection []struct {
			UserID          uuid.UUID
			CollectionID    uuid.UUID
			IncludeArchived bool
		}
		SetArchived []struct {
			CardID     uuid.UUID
			ArchivedAt *time.Time
		}
	}
	lockGetByID          sync.RWMutex
	lockListByCollection sync.RWMutex
	lockSetArchived      sync.RWMutex
}

func (mock *flashcardRepoMock) GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Flashcard, error) {
	if mock.GetByIDFunc == nil {
		panic("flashcardRepoMock.GetByIDFunc: method is nil but flashcardRepo.GetByID was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		CardID uuid.UUID
	}{UserID: userID, CardID: cardID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, cardID)
}

func (mock *flashcardRepoMock) GetByIDCalls() []struct {
	UserID uuid.UUID
	CardID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *flashcardRepoMock) ListByCollection(ctx context.Context, userID, collectionID uuid.UUID, includeArchived bool) ([]domain.Flashcard, error) {
	if mock.ListByCollectionFunc == nil {
		panic("flashcardRepoMock.ListByCollectionFunc: method is nil but flashcardRepo.ListByCollection was just called")
	}
	callInfo := struct {
		UserID          uuid.UUID
		CollectionID    uuid.UUID
		IncludeArchived bool
	}{UserID: userID, CollectionID: collectionID, IncludeArchived: includeArchived}
	mock.lockListByCollection.Lock()
	mock.calls.ListByCollection = append(mock.calls.ListByCollection, callInfo)
	mock.lockListByCollection.Unlock()
	return mock.ListByCollectionFunc(ctx, userID, collectionID, includeArchived)
}

func (mock *flashcardRepoMock) ListByCollectionCalls() []struct {
	UserID          uuid.UUID
	CollectionID    uuid.UUID
	IncludeArchived bool
} {
	mock.lockListByCollection.RLock()
	calls := mock.calls.ListByCollection
	mock.lockListByCollection.RUnlock()
	return calls
}

func (mock *flashcardRepoMock) SetArchived(ctx context.Context, cardID uuid.UUID, archivedAt *time.Time) error {
	if mock.SetArchivedFunc == nil {
		panic("flashcardRepoMock.SetArchivedFunc: method is nil but flashcardRepo.SetArchived was just called")
	}
	callInfo := struct {
		CardID     uuid.UUID
		ArchivedAt *time.Time
	}{CardID: cardID, ArchivedAt: archivedAt}
	mock.lockSetArchived.Lock()
	mock.calls.SetArchived = append(mock.calls.SetArchived, callInfo)
	mock.lockSetArchived.Unlock()
	return mock.SetArchivedFunc(ctx, cardID, archivedAt)
}

func (mock *flashcardRepoMock) SetArchivedCalls() []struct {
	CardID     uuid.UUID
	ArchivedAt *time.Time
} {
	mock.lockSetArchived.RLock()
	calls := mock.calls.SetArchived
	mock.lockSetArchived.RUnlock()
	return calls
}

var _ collectionRepo = &collectionRepoMock{}

type collectionRepoMock struct {
	GetByIDFunc          func(ctx context.Context, userID, collectionID uuid.UUID) (*domain.Collection, error)
	SetArchivedFunc      func(ctx context.Context, collectionID uuid.UUID, archivedAt *time.Time) error
	UpdateAggregatesFunc func(ctx context.Context, collectionID uuid.UUID, agg domain.CollectionAggregates) error

	calls struct {
		GetByID []struct {
			UserID       uuid.UUID
			CollectionID uuid.UUID
		}
		SetArchived []struct {
			CollectionID uuid.UUID
			ArchivedAt   *time.Time
		}
		UpdateAggregates []struct {
			CollectionID uuid.UUID
			Agg          domain.CollectionAggregates
		}
	}
	lockGetByID          sync.RWMutex
	lockSetArchived      sync.RWMutex
	lockUpdateAggregates sync.RWMutex
}

func (mock *collectionRepoMock) GetByID(ctx context.Context, userID, collectionID uuid.UUID) (*domain.Collection, error) {
	if mock.GetByIDFunc == nil {
		panic("collectionRepoMock.GetByIDFunc: method is nil but collectionRepo.GetByID was just called")
	}
	callInfo := struct {
		UserID       uuid.UUID
		CollectionID uuid.UUID
	}{UserID: userID, CollectionID: collectionID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, collectionID)
}

func (mock *collectionRepoMock) GetByIDCalls() []struct {
	UserID       uuid.UUID
	CollectionID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *collectionRepoMock) SetArchived(ctx context.Context, collectionID uuid.UUID, archivedAt *time.Time) error {
	if mock.SetArchivedFunc == nil {
		panic("collectionRepoMock.SetArchivedFunc: method is nil but collectionRepo.SetArchived was just called")
	}
	callInfo := struct {
		CollectionID uuid.UUID
		ArchivedAt   *time.Time
	}{CollectionID: collectionID, ArchivedAt: archivedAt}
	mock.lockSetArchived.Lock()
	mock.calls.SetArchived = append(mock.calls.SetArchived, callInfo)
	mock.lockSetArchived.Unlock()
	return mock.SetArchivedFunc(ctx, collectionID, archivedAt)
}

func (mock *collectionRepoMock) SetArchivedCalls() []struct {
	CollectionID uuid.UUID
	ArchivedAt   *time.Time
} {
	mock.lockSetArchived.RLock()
	calls := mock.calls.SetArchived
	mock.lockSetArchived.RUnlock()
	return calls
}

func (mock *collectionRepoMock) UpdateAggregates(ctx context.Context, collectionID uuid.UUID, agg domain.CollectionAggregates) error {
	if mock.UpdateAggregatesFunc == nil {
		panic("collectionRepoMock.UpdateAggregatesFunc: method is nil but collectionRepo.UpdateAggregates was just called")
	}
	callInfo := struct {
		CollectionID uuid.UUID
		Agg          domain.CollectionAggregates
	}{CollectionID: collectionID, Agg: agg}
	mock.lockUpdateAggregates.Lock()
	mock.calls.UpdateAggregates = append(mock.calls.UpdateAggregates, callInfo)
	mock.lockUpdateAggregates.Unlock()
	return mock.UpdateAggregatesFunc(ctx, collectionID, agg)
}

func (mock *collectionRepoMock) UpdateAggregatesCalls() []struct {
	CollectionID uuid.UUID
	Agg          domain.CollectionAggregates
} {
	mock.lockUpdateAggregates.RLock()
	calls := mock.calls.UpdateAggregates
	mock.lockUpdateAggregates.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback in place, mimicking a committed transaction.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		return fn(ctx)
	}
	return mock.RunInTxFunc(ctx, fn)
}

var _ clock = &clockMock{}

// clockMock pins Now to a fixed instant.
type clockMock struct {
	now time.Time
}

func (mock *clockMock) Now() time.Time { return mock.now }
