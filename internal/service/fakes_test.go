package service

import (
	"context"
	"sync"

	"epic-relay-api/internal/model"
)

type fakeCatalog struct {
	mu       sync.Mutex
	byName   map[string]string
	err      error
	searches []string
}

func (f *fakeCatalog) SearchCosmeticByName(ctx context.Context, name string) (*model.Cosmetic, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.searches = append(f.searches, name)
	if f.err != nil {
		return nil, f.err
	}
	id, ok := f.byName[name]
	if !ok {
		return nil, nil
	}
	return &model.Cosmetic{ID: id, Name: name}, nil
}

func (f *fakeCatalog) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.searches)
}

type fakeParties struct {
	mu sync.Mutex

	// responses are handed out in order, the last one repeats.
	responses []*model.UserParties
	getErr    error
	patchErr  error

	gets    int
	patches []model.MemberMetaPatch
}

func (f *fakeParties) GetUserParties(ctx context.Context, token, accountID string) (*model.UserParties, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.gets++
	if f.getErr != nil {
		return nil, f.getErr
	}
	idx := f.gets - 1
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	return f.responses[idx], nil
}

func (f *fakeParties) PatchMemberMeta(ctx context.Context, token, partyID, accountID string, patch model.MemberMetaPatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.patches = append(f.patches, patch)
	return f.patchErr
}

func partyWith(partyID string, members ...model.PartyMember) *model.UserParties {
	return &model.UserParties{
		Current: []model.Party{{ID: partyID, Members: members}},
	}
}
