package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/edusynth/internal/model"
	q "github.com/iliyamo/edusynth/internal/queue"
	"github.com/iliyamo/edusynth/internal/repository"
	"github.com/iliyamo/edusynth/internal/utils"
)

type memUsers struct {
	mu        sync.Mutex
	byEmail   map[string]model.User
	createErr error
	getErr    error
	existsErr error
}

func newMemUsers() *memUsers { return &memUsers{byEmail: map[string]model.User{}} }

func (m *memUsers) Create(_ context.Context, u model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.byEmail[u.Email]; ok {
		return repository.ErrEmailExists
	}
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUsers) EmailExists(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return model.User{}, m.getErr
	}
	u, ok := m.byEmail[email]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (m *memUsers) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byEmail)
}

type chanPublisher struct {
	events chan q.AuthEvent
	err    error
}

func (p *chanPublisher) Publish(_ context.Context, ev q.AuthEvent) error {
	p.events <- ev
	return p.err
}

func newService(t *testing.T, users UserStore, events EventPublisher) *AuthService {
	t.Helper()
	s, err := NewAuthService(users, events, "test-secret", time.Hour, bcrypt.MinCost)
	require.NoError(t, err)
	return s
}

func TestNewAuthService_RejectsEmptySecret(t *testing.T) {
	_, err := NewAuthService(newMemUsers(), nil, "", time.Hour, bcrypt.MinCost)
	assert.ErrorIs(t, err, utils.ErrEmptySecret)

	_, err = NewAuthService(newMemUsers(), nil, "k", 0, bcrypt.MinCost)
	assert.Error(t, err)

	_, err = NewAuthService(nil, nil, "k", time.Hour, bcrypt.MinCost)
	assert.Error(t, err)

	_, err = NewAuthService(newMemUsers(), nil, "k", time.Hour, bcrypt.MinCost-1)
	assert.ErrorContains(t, err, "bcrypt cost")

	_, err = NewAuthService(newMemUsers(), nil, "k", time.Hour, bcrypt.MaxCost+1)
	assert.ErrorContains(t, err, "bcrypt cost")
}

func TestRegister_StoresHashAndReturnsToken(t *testing.T) {
	users := newMemUsers()
	s := newService(t, users, nil)

	res, err := s.Register(context.Background(), " Ada ", "Ada@X.com", "secret")
	require.NoError(t, err)

	stored, err := users.GetByEmail(context.Background(), "ada@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", stored.PasswordHash)
	assert.True(t, utils.VerifyPassword(stored.PasswordHash, "secret"))
	assert.Equal(t, "Ada", stored.FullName)
	assert.NotEmpty(t, stored.ID)

	claims, err := s.Verify(res.Token.Token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, claims.UserID)
	assert.Equal(t, "Ada", claims.FullName)
	assert.Equal(t, "ada@x.com", claims.Email)
}

func TestRegister_DuplicateEmailIsConflict(t *testing.T) {
	users := newMemUsers()
	s := newService(t, users, nil)
	ctx := context.Background()

	_, err := s.Register(ctx, "A", "a@x.com", "secret")
	require.NoError(t, err)

	_, err = s.Register(ctx, "A again", "A@x.com", "other")
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 1, users.count())
}

func TestRegister_LostRaceOnUniqueIndexIsConflict(t *testing.T) {
	users := newMemUsers()
	users.createErr = repository.ErrEmailExists
	s := newService(t, users, nil)

	_, err := s.Register(context.Background(), "A", "a@x.com", "secret")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegister_StoreFailureIsInternal(t *testing.T) {
	users := newMemUsers()
	users.existsErr = errors.New("db down")
	s := newService(t, users, nil)

	_, err := s.Register(context.Background(), "A", "a@x.com", "secret")
	assert.ErrorIs(t, err, ErrInternal)
	assert.Contains(t, err.Error(), "db down")
}

func TestRegister_InvalidInput(t *testing.T) {
	s := newService(t, newMemUsers(), nil)
	ctx := context.Background()

	cases := []struct {
		name, full, email, pw string
	}{
		{"missing name", "", "a@x.com", "pw"},
		{"missing email", "A", "", "pw"},
		{"missing password", "A", "a@x.com", ""},
		{"bad email", "A", "not-an-email", "pw"},
		{"display name form", "A", "Alice <a@x.com>", "pw"},
		{"angle brackets", "A", "<a@x.com>", "pw"},
		{"password too long", "A", "a@x.com", strings.Repeat("p", 73)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Register(ctx, tc.full, tc.email, tc.pw)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRegister_DisplayNameCannotDuplicateMailbox(t *testing.T) {
	users := newMemUsers()
	s := newService(t, users, nil)
	ctx := context.Background()

	_, err := s.Register(ctx, "A", "a@x.com", "pw")
	require.NoError(t, err)
	_, err = s.Register(ctx, "A", "Alice <a@x.com>", "pw")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 1, users.count())
}

func TestLogin_Success_TokenCarriesEmailAndName(t *testing.T) {
	s := newService(t, newMemUsers(), nil)
	ctx := context.Background()

	_, err := s.Register(ctx, "A", "a@x.com", "secret")
	require.NoError(t, err)

	res, err := s.Login(ctx, "a@x.com", "secret")
	require.NoError(t, err)

	claims, err := s.Verify(res.Token.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "A", claims.FullName)
	assert.Empty(t, claims.UserID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestLogin_UnknownEmailIsNotFound(t *testing.T) {
	s := newService(t, newMemUsers(), nil)
	_, err := s.Login(context.Background(), "nobody@x.com", "secret")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLogin_WrongPasswordIsInvalidCredentials(t *testing.T) {
	s := newService(t, newMemUsers(), nil)
	ctx := context.Background()
	_, err := s.Register(ctx, "A", "a@x.com", "secret")
	require.NoError(t, err)

	_, err = s.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_StoreFailureIsInternal(t *testing.T) {
	users := newMemUsers()
	users.getErr = errors.New("timeout")
	s := newService(t, users, nil)

	_, err := s.Login(context.Background(), "a@x.com", "secret")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestLogin_PriorTokensStayValid(t *testing.T) {
	s := newService(t, newMemUsers(), nil)
	ctx := context.Background()
	reg, err := s.Register(ctx, "A", "a@x.com", "secret")
	require.NoError(t, err)

	_, err = s.Login(ctx, "a@x.com", "secret")
	require.NoError(t, err)

	_, err = s.Verify(reg.Token.Token)
	assert.NoError(t, err)
}

func TestAuthEvents_PublishedWithoutSecrets(t *testing.T) {
	pub := &chanPublisher{events: make(chan q.AuthEvent, 2), err: errors.New("broker down")}
	s := newService(t, newMemUsers(), pub)
	ctx := context.Background()

	_, err := s.Register(ctx, "A", "a@x.com", "secret")
	require.NoError(t, err, "publish failures never fail the request")
	_, err = s.Login(ctx, "a@x.com", "secret")
	require.NoError(t, err)

	got := map[string]q.AuthEvent{}
	for i := 0; i < 2; i++ {
		select {
		case ev := <-pub.events:
			got[ev.Type] = ev
		case <-time.After(2 * time.Second):
			t.Fatal("event not published")
		}
	}
	require.Contains(t, got, q.EventUserRegistered)
	require.Contains(t, got, q.EventUserLoggedIn)
	assert.Equal(t, "a@x.com", got[q.EventUserRegistered].Email)
	assert.NotEmpty(t, got[q.EventUserRegistered].UserID)
}
