package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/wonderpark/parkpos/internal/core/domain"
)

type AccountStore struct {
	db *sql.DB
}

func NewAccountStore(db *sql.DB) *AccountStore {
	return &AccountStore{db: db}
}

func (s *AccountStore) Load(ctx context.Context) (map[string]domain.AccountRecord, error) {
	query := `
	SELECT username, password, role, email, age, status, name, gender, phone_number, loyalty_points, history
	FROM accounts
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}

	defer rows.Close()

	accounts := make(map[string]domain.AccountRecord)
	for rows.Next() {
		var rec domain.AccountRecord
		var history []byte

		if err := rows.Scan(
			&rec.Username,
			&rec.Password,
			&rec.Role,
			&rec.Email,
			&rec.Age,
			&rec.Status,
			&rec.Name,
			&rec.Gender,
			&rec.PhoneNumber,
			&rec.LoyaltyPoints,
			&history,
		); err != nil {
			return nil, fmt.Errorf("scan account row: %w", err)
		}

		if len(history) > 0 {
			if err := json.Unmarshal(history, &rec.History); err != nil {
				return nil, fmt.Errorf("decode purchase history for %s: %w", rec.Username, err)
			}
		}

		accounts[rec.Username] = rec
	}

	return accounts, rows.Err()
}

func (s *AccountStore) Save(ctx context.Context, accounts map[string]domain.AccountRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM accounts`); err != nil {
		return fmt.Errorf("clear accounts: %w", err)
	}

	query := `
	INSERT INTO accounts (username, password, role, email, age, status, name, gender, phone_number, loyalty_points, history)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare account statement: %w", err)
	}

	defer stmt.Close()

	for _, rec := range accounts {
		history, err := json.Marshal(rec.History)
		if err != nil {
			return fmt.Errorf("encode purchase history for %s: %w", rec.Username, err)
		}

		_, err = stmt.ExecContext(ctx,
			rec.Username, rec.Password, rec.Role, rec.Email, rec.Age, rec.Status,
			rec.Name, rec.Gender, rec.PhoneNumber, rec.LoyaltyPoints, history,
		)
		if err != nil {
			return fmt.Errorf("insert account %s: %w", rec.Username, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit accounts: %w", err)
	}

	return nil
}
