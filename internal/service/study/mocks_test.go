package study

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lunarbyte/flashdeck-backend/internal/domain"
)

var _ flashcardRepo = &flashcardRepoMock{}

type flashcardRepoMock struct {
	ListByCollectionFunc func(ctx context.Context, userID, collectionID uuid.UUID, includeArchived bool) ([]domain.Flashcard, error)
	ListByUserFunc       func(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]domain.Flashcard, error)
	UpdateSchedulingFunc func(ctx context.Context, cardID uuid.UUID, params domain.SchedulingUpdate) error

	calls struct {
		ListByCollection []struct {
			UserID          uuid.UUID
			CollectionID    uuid.UUID
			IncludeArchived bool
		}
		ListByUser []struct {
			UserID          uuid.UUID
			IncludeArchived bool
		}
		UpdateScheduling []struct {
			CardID uuid.UUID
			Params domain.SchedulingUpdate
		}
	}
	lockListByCollection sync.RWMutex
	lockListByUser       sync.RWMutex
	lockUpdateScheduling sync.RWMutex
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

func (mock *flashcardRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]domain.Flashcard, error) {
	if mock.ListByUserFunc == nil {
		panic("flashcardRepoMock.ListByUserFunc: method is nil but flashcardRepo.ListByUser was just called")
	}
	callInfo := struct {
		UserID          uuid.UUID
		IncludeArchived bool
	}{UserID: userID, IncludeArchived: includeArchived}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, includeArchived)
}

func (mock *flashcardRepoMock) ListByUserCalls() []struct {
	UserID          uuid.UUID
	IncludeArchived bool
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *flashcardRepoMock) UpdateScheduling(ctx context.Context, cardID uuid.UUID, params domain.SchedulingUpdate) error {
	if mock.UpdateSchedulingFunc == nil {
		panic("flashcardRepoMock.UpdateSchedulingFunc: method is nil but flashcardRepo.UpdateScheduling was just called")
	}
	callInfo := struct {
		CardID uuid.UUID
		Params domain.SchedulingUpdate
	}{CardID: cardID, Params: params}
	mock.lockUpdateScheduling.Lock()
	mock.calls.UpdateScheduling = append(mock.calls.UpdateScheduling, callInfo)
	mock.lockUpdateScheduling.Unlock()
	return mock.UpdateSchedulingFunc(ctx, cardID, params)
}

func (mock *flashcardRepoMock) UpdateSchedulingCalls() []struct {
	CardID uuid.UUID
	Params domain.SchedulingUpdate
} {
	mock.lockUpdateScheduling.RLock()
	calls := mock.calls.UpdateScheduling
	mock.lockUpdateScheduling.RUnlock()
	return calls
}

var _ collectionRepo = &collectionRepoMock{}

type collectionRepoMock struct {
	GetByIDFunc          func(ctx context.Context, userID, collectionID uuid.UUID) (*domain.Collection, error)
	ListByUserFunc       func(ctx context.Context, userID uuid.UUID) ([]domain.Collection, error)
	UpdateAggregatesFunc func(ctx context.Context, collectionID uuid.UUID, agg domain.CollectionAggregates) error

	calls struct {
		GetByID []struct {
			UserID       uuid.UUID
			CollectionID uuid.UUID
		}
		ListByUser []struct {
			UserID uuid.UUID
		}
		UpdateAggregates []struct {
			CollectionID uuid.UUID
			Agg          domain.CollectionAggregates
		}
	}
	lockGetByID          sync.RWMutex
	lockListByUser       sync.RWMutex
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

func (mock *collectionRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Collection, error) {
	if mock.ListByUserFunc == nil {
		panic("collectionRepoMock.ListByUserFunc: method is nil but collectionRepo.ListByUser was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *collectionRepoMock) ListByUserCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
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
