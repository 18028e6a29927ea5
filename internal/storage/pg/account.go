package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/galleryd-dev/galleryd/internal/domain"
	internal_errors "github.com/galleryd-dev/galleryd/internal/errors"
)

// UpsertAccount returns the stored account for the identifier if one
// exists, leaving it untouched (repeat logins never update the name), and
// inserts a fresh row otherwise. The lookup and insert run in one
// transaction so concurrent first logins cannot produce duplicates.
func (s *Storage) UpsertAccount(account domain.Account) (domain.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var result domain.Account
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		existing, err := s.account(tx, account.Identifier)
		if err == nil {
			result = existing
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		if _, err := tx.Exec("INSERT INTO accounts(identifier, display_name) VALUES($1, $2)",
			account.Identifier, account.Name); err != nil {
			return fmt.Errorf("failed to insert account: %w", err)
		}
		result = account
		return nil
	})
	return result, err
}

// Account fetches a single account by identifier.
func (s *Storage) Account(identifier string) (domain.Account, error) {
	account, err := s.account(s.db, identifier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, &internal_errors.ErrorWithStatusCode{Message: "Account not found", StatusCode: http.StatusNotFound}
		}
		return domain.Account{}, err
	}
	return account, nil
}

func (s *Storage) account(q Querier, identifier string) (domain.Account, error) {
	var account domain.Account
	err := q.QueryRow("SELECT identifier, display_name FROM accounts WHERE identifier = $1", identifier).
		Scan(&account.Identifier, &account.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, err
		}
		return domain.Account{}, fmt.Errorf("failed to query account: %w", err)
	}
	return account, nil
}
