// Package service holds the authentication business logic that sits between
// the HTTP handlers and the credential store.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/edusynth/internal/model"
	q "github.com/iliyamo/edusynth/internal/queue"
	"github.com/iliyamo/edusynth/internal/repository"
	"github.com/iliyamo/edusynth/internal/utils"
)

// UserStore is the credential store contract.
type UserStore interface {
	Create(ctx context.Context, u model.User) error
	EmailExists(ctx context.Context, email string) (bool, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// EventPublisher delivers audit events; implementations may be slow or down.
type EventPublisher interface {
	Publish(ctx context.Context, event q.AuthEvent) error
}

// bcrypt ignores input beyond 72 bytes; longer passwords are rejected.
const maxPasswordBytes = 72

const publishTimeout = 5 * time.Second

// AuthService registers users and authenticates logins.
type AuthService struct {
	users  UserStore
	events EventPublisher
	secret string
	ttl    time.Duration
	cost   int
	newID  func() string
}

// NewAuthService fails when the signing secret is empty, the ttl is not
// positive or cost is outside bcrypt's range.  events may be nil.
func NewAuthService(users UserStore, events EventPublisher, secret string, ttl time.Duration, cost int) (*AuthService, error) {
	if users == nil {
		return nil, errors.New("auth service: nil user store")
	}
	if secret == "" {
		return nil, fmt.Errorf("auth service: %w", utils.ErrEmptySecret)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("auth service: token ttl must be positive, got %s", ttl)
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("auth service: bcrypt cost %d outside [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &AuthService{
		users:  users,
		events: events,
		secret: secret,
		ttl:    ttl,
		cost:   cost,
		newID:  func() string { return uuid.NewString() },
	}, nil
}

// RegisterResult is returned by a successful Register.
type RegisterResult struct {
	User  model.User
	Token utils.SignedToken
}

// LoginResult is returned by a successful Login.
type LoginResult struct {
	User  model.User
	Token utils.SignedToken
}

// Register hashes the password, stores the user and returns a token
// carrying {id, fullName, email}.
func (s *AuthService) Register(ctx context.Context, fullName, email, password string) (RegisterResult, error) {
	fullName = strings.TrimSpace(fullName)
	email = repository.NormalizeEmail(email)
	if fullName == "" {
		return RegisterResult{}, fmt.Errorf("%w: full name required", ErrInvalidInput)
	}
	if err := validateCredentials(email, password); err != nil {
		return RegisterResult{}, err
	}

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if exists {
		return RegisterResult{}, ErrConflict
	}

	hash, err := utils.HashPassword(password, s.cost)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("%w: hash password: %w", ErrInternal, err)
	}

	u := model.User{
		ID:           s.newID(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		// a concurrent registration may win the unique index after our check
		if errors.Is(err, repository.ErrEmailExists) {
			return RegisterResult{}, ErrConflict
		}
		return RegisterResult{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	tok, err := utils.NewToken(s.secret, u.ID, u.FullName, u.Email, s.ttl)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("%w: sign token: %w", ErrInternal, err)
	}

	s.publish(q.EventUserRegistered, u)
	return RegisterResult{User: u, Token: tok}, nil
}

// Login verifies the password and returns a token carrying {email,
// fullName}.  Previously issued tokens stay valid until they expire.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = repository.NormalizeEmail(email)
	if err := validateCredentials(email, password); err != nil {
		return LoginResult{}, err
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return LoginResult{}, ErrNotFound
		}
		return LoginResult{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return LoginResult{}, ErrInvalidCredentials
	}

	tok, err := utils.NewToken(s.secret, "", u.FullName, u.Email, s.ttl)
	if err != nil {
		return LoginResult{}, fmt.Errorf("%w: sign token: %w", ErrInternal, err)
	}

	s.publish(q.EventUserLoggedIn, u)
	return LoginResult{User: u, Token: tok}, nil
}

// Verify checks a bearer token issued by this service.
func (s *AuthService) Verify(raw string) (*utils.Claims, error) {
	return utils.ParseToken(s.secret, raw)
}

// TTL is the lifetime written into issued tokens.
func (s *AuthService) TTL() time.Duration { return s.ttl }

func validateCredentials(email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: email/password required", ErrInvalidInput)
	}
	// bare addresses only; "Name <addr>" would be stored verbatim
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Name != "" || addr.Address != email {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("%w: password longer than %d bytes", ErrInvalidInput, maxPasswordBytes)
	}
	return nil
}

// publish sends the audit event in the background; the request never waits
// on the broker.
func (s *AuthService) publish(typ string, u model.User) {
	if s.events == nil {
		return
	}
	ev := q.AuthEvent{
		Type:       typ,
		UserID:     u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := s.events.Publish(ctx, ev); err != nil {
			log.Printf("auth: publish %s failed: %v", typ, err)
		}
	}()
}
