// Package testutil holds in-memory fakes and HTTP helpers shared by package tests.
package testutil

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/charityhub/internal/features/auth"
)

// AccountStore is an in-memory auth.AccountStore.
type AccountStore struct {
	mu       sync.Mutex
	accounts map[primitive.ObjectID]*auth.Account
	// Err, when set, is returned by every call.
	Err error
}

func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: map[primitive.ObjectID]*auth.Account{}}
}

func (s *AccountStore) FindByEmail(_ context.Context, email string) (*auth.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	email = auth.NormalizeEmail(email)
	for _, a := range s.accounts {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *AccountStore) FindByID(_ context.Context, id string) (*auth.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	a, ok := s.accounts[oid]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (s *AccountStore) Create(_ context.Context, account *auth.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	account.Email = auth.NormalizeEmail(account.Email)
	for _, a := range s.accounts {
		if a.Email == account.Email {
			return auth.ErrEmailTaken
		}
	}
	if account.ID.IsZero() {
		account.ID = primitive.NewObjectID()
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}
	cp := *account
	s.accounts[account.ID] = &cp
	return nil
}

func (s *AccountStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.accounts)), nil
}

// Put stores account as is, bypassing uniqueness checks. Used to plant corrupted records.
func (s *AccountStore) Put(account auth.Account) auth.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	if account.ID.IsZero() {
		account.ID = primitive.NewObjectID()
	}
	account.Email = auth.NormalizeEmail(account.Email)
	cp := account
	s.accounts[account.ID] = &cp
	return account
}

// SetRole rewrites the stored role of an account
func (s *AccountStore) SetRole(id primitive.ObjectID, role auth.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.accounts[id]; ok {
		a.Role = role
	}
}

// Delete removes an account
func (s *AccountStore) Delete(id primitive.ObjectID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.accounts, id)
}

// Len returns the number of stored accounts
func (s *AccountStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts)
}
