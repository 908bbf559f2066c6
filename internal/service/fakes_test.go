package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/food-order-service/internal/domain"
	"github.com/spec-kit/food-order-service/internal/provider"
	"github.com/spec-kit/food-order-service/internal/repository"
	"github.com/spec-kit/food-order-service/pkg/util"
)

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]domain.User{}}
}

func (s *fakeUserStore) Create(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; ok {
		return errors.New("user already exists")
	}
	s.users[user.Email] = *user
	return nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (s *fakeUserStore) Update(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; !ok {
		return repository.ErrNotFound
	}
	s.users[user.Email] = *user
	return nil
}

func (s *fakeUserStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[email]; !ok {
		return repository.ErrNotFound
	}
	delete(s.users, email)
	return nil
}

type fakeTokenStore struct {
	mu     sync.Mutex
	tokens map[string]domain.Token
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[string]domain.Token{}}
}

func (s *fakeTokenStore) Save(_ context.Context, token domain.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token.ID] = token
	return nil
}

func (s *fakeTokenStore) Get(_ context.Context, id string) (*domain.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, ok := s.tokens[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &token, nil
}

func (s *fakeTokenStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, id)
	return nil
}

type fakeCartStore struct {
	mu    sync.Mutex
	carts map[string][]domain.CartItem
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: map[string][]domain.CartItem{}}
}

func (s *fakeCartStore) Get(_ context.Context, userEmail string) ([]domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, ok := s.carts[userEmail]
	if !ok {
		return []domain.CartItem{}, nil
	}
	return items, nil
}

func (s *fakeCartStore) Put(_ context.Context, userEmail string, items []domain.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[userEmail] = items
	return nil
}

func (s *fakeCartStore) Delete(_ context.Context, userEmail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userEmail)
	return nil
}

type fakeCharger struct {
	result *provider.Result
	err    error

	calls []chargeCall
}

type chargeCall struct {
	email  string
	amount int64
	key    string
}

func (c *fakeCharger) Charge(_ context.Context, email string, amount int64, key string) (*provider.Result, error) {
	c.calls = append(c.calls, chargeCall{email: email, amount: amount, key: key})
	return c.result, c.err
}

type fakeMailer struct {
	result *provider.Result
	err    error

	calls     int
	lastTo    string
	lastLines []provider.ReceiptLine
	lastTotal int64
}

func (m *fakeMailer) SendReceipt(_ context.Context, toEmail string, lines []provider.ReceiptLine, total int64) (*provider.Result, error) {
	m.calls++
	m.lastTo = toEmail
	m.lastLines = lines
	m.lastTotal = total
	return m.result, m.err
}

// requireDomainError asserts an error carries the expected code and status.
func requireDomainError(t *testing.T, err error, code string, status int) *util.DomainError {
	t.Helper()
	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, code, domainErr.Code)
	require.Equal(t, status, domainErr.HTTPStatus)
	return domainErr
}
