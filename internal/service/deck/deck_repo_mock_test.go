package deck

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/efcquiz/internal/domain"
)

var _ deckRepo = &deckRepoMock{}

type deckRepoMock struct {
	CreateFunc        func(ctx context.Context, d domain.StoredDeck) (domain.StoredDeck, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (domain.StoredDeck, error)
	GetByNameFunc     func(ctx context.Context, name string) (domain.StoredDeck, error)
	ListFunc          func(ctx context.Context, filter domain.DeckFilter) ([]domain.StoredDeck, int, error)
	UpdateContentFunc func(ctx context.Context, id uuid.UUID, content string, flashcards int, mc int) (domain.StoredDeck, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			D   domain.StoredDeck
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByName []struct {
			Ctx  context.Context
			Name string
		}
		List []struct {
			Ctx    context.Context
			Filter domain.DeckFilter
		}
		UpdateContent []struct {
			Ctx        context.Context
			Id         uuid.UUID
			Content    string
			Flashcards int
			Mc         int
		}
	}
	lockCreate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockGetByName     sync.RWMutex
	lockList          sync.RWMutex
	lockUpdateContent sync.RWMutex
}

func (mock *deckRepoMock) Create(ctx context.Context, d domain.StoredDeck) (domain.StoredDeck, error) {
	if mock.CreateFunc == nil {
		panic("deckRepoMock.CreateFunc: method is nil but deckRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   domain.StoredDeck
	}{
		Ctx: ctx,
		D:   d,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, d)
}

// CreateCalls gets all the calls that were made to Create.
func (mock *deckRepoMock) CreateCalls() []struct {
	Ctx context.Context
	D   domain.StoredDeck
} {
	var calls []struct {
		Ctx context.Context
		D   domain.StoredDeck
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *deckRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("deckRepoMock.DeleteFunc: method is nil but deckRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

// DeleteCalls gets all the calls that were made to Delete.
func (mock *deckRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *deckRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.StoredDeck, error) {
	if mock.GetByIDFunc == nil {
		panic("deckRepoMock.GetByIDFunc: method is nil but deckRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

// GetByIDCalls gets all the calls that were made to GetByID.
func (mock *deckRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *deckRepoMock) GetByName(ctx context.Context, name string) (domain.StoredDeck, error) {
	if mock.GetByNameFunc == nil {
		panic("deckRepoMock.GetByNameFunc: method is nil but deckRepo.GetByName was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{
		Ctx:  ctx,
		Name: name,
	}
	mock.lockGetByName.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, callInfo)
	mock.lockGetByName.Unlock()
	return mock.GetByNameFunc(ctx, name)
}

// GetByNameCalls gets all the calls that were made to GetByName.
func (mock *deckRepoMock) GetByNameCalls() []struct {
	Ctx  context.Context
	Name string
} {
	var calls []struct {
		Ctx  context.Context
		Name string
	}
	mock.lockGetByName.RLock()
	calls = mock.calls.GetByName
	mock.lockGetByName.RUnlock()
	return calls
}

func (mock *deckRepoMock) List(ctx context.Context, filter domain.DeckFilter) ([]domain.StoredDeck, int, error) {
	if mock.ListFunc == nil {
		panic("deckRepoMock.ListFunc: method is nil but deckRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.DeckFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

// ListCalls gets all the calls that were made to List.
func (mock *deckRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.DeckFilter
} {
	var calls []struct {
		Ctx    context.Context
		Filter domain.DeckFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *deckRepoMock) UpdateContent(ctx context.Context, id uuid.UUID, content string, flashcards int, mc int) (domain.StoredDeck, error) {
	if mock.UpdateContentFunc == nil {
		panic("deckRepoMock.UpdateContentFunc: method is nil but deckRepo.UpdateContent was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Id         uuid.UUID
		Content    string
		Flashcards int
		Mc         int
	}{
		Ctx:        ctx,
		Id:         id,
		Content:    content,
		Flashcards: flashcards,
		Mc:         mc,
	}
	mock.lockUpdateContent.Lock()
	mock.calls.UpdateContent = append(mock.calls.UpdateContent, callInfo)
	mock.lockUpdateContent.Unlock()
	return mock.UpdateContentFunc(ctx, id, content, flashcards, mc)
}

// UpdateContentCalls gets all the calls that were made to UpdateContent.
func (mock *deckRepoMock) UpdateContentCalls() []struct {
	Ctx        context.Context
	Id         uuid.UUID
	Content    string
	Flashcards int
	Mc         int
} {
	var calls []struct {
		Ctx        context.Context
		Id         uuid.UUID
		Content    string
		Flashcards int
		Mc         int
	}
	mock.lockUpdateContent.RLock()
	calls = mock.calls.UpdateContent
	mock.lockUpdateContent.RUnlock()
	return calls
}
