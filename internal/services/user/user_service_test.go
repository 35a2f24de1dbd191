package user

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	users map[string]*User
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[string]*User{}}
}

func (f *fakeStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (f *fakeStore) Create(ctx context.Context, email, passwordHash string) (*User, error) {
	if _, ok := f.users[email]; ok {
		return nil, ErrEmailTaken
	}
	u := &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	f.users[email] = u
	return u, nil
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := NewUserService(newFakeStore())
	ctx := context.Background()

	created, err := svc.Register(ctx, "Alice@Example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", created.Email)
	assert.NotEqual(t, "s3cret", created.PasswordHash)

	authed, err := svc.Authenticate(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, authed.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewUserService(newFakeStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "ALICE@example.com", "another")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	svc := NewUserService(newFakeStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "alice@example.com", "wrong")
	assert.Error(t, err)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	svc := NewUserService(newFakeStore())

	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrNotFound)
}
