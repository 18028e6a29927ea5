package service

import (
	"strings"

	"github.com/galleryd-dev/galleryd/internal/domain"
	internal_errors "github.com/galleryd-dev/galleryd/internal/errors"
)

type AccountService interface {
	Login(identifier, name string) (domain.Account, error)
}

type AccountStorage interface {
	// UpsertAccount returns the existing account for the identifier
	// unchanged, or inserts and returns a new one. The stored name is never
	// updated on repeat login.
	UpsertAccount(account domain.Account) (domain.Account, error)

	Account(identifier string) (domain.Account, error)
}

type Account struct {
	storage AccountStorage
}

func NewAccount(storage AccountStorage) AccountService {
	return &Account{storage}
}

// Login creates the account on first sight of an identifier and is a no-op
// for identifiers already registered. Possession of the identifier is the
// whole auth model; there are no passwords or sessions.
func (a *Account) Login(identifier, name string) (domain.Account, error) {
	if strings.TrimSpace(identifier) == "" {
		return domain.Account{}, &internal_errors.ErrorWithStatusCode{Message: "Identifier is required", StatusCode: 400}
	}

	account, err := a.storage.UpsertAccount(domain.Account{Identifier: identifier, Name: name})
	if err != nil {
		return domain.Account{}, err
	}
	return account, nil
}
