package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/credit-score-service/internal/domain"
)

// fakeUserRepo is an in-memory UserRepository for service tests. It mirrors
// the Postgres implementation's contract: absent rows surface as
// pgx.ErrNoRows. failWith forces a store failure for every call.
type fakeUserRepo struct {
	users    map[string]*domain.User
	seq      int
	failWith error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.seq++
	user.ID = "user-" + strconv.Itoa(f.seq)
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) (*domain.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	delete(f.users, id)
	return user, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]domain.User, 0, len(f.users))
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

var errStoreDown = errors.New("store unreachable")
