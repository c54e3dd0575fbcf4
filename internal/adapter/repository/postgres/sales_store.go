package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

type SalesStore struct {
	db *sql.DB
}

func NewSalesStore(db *sql.DB) *SalesStore {
	return &SalesStore{db: db}
}

func (s *SalesStore) Load(ctx context.Context) (map[string]map[string]int, error) {
	query := `
	SELECT day, ticket, quantity
	FROM sales
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query sales: %w", err)
	}

	defer rows.Close()

	sales := make(map[string]map[string]int)
	for rows.Next() {
		var day, ticket string
		var quantity int

		if err := rows.Scan(&day, &ticket, &quantity); err != nil {
			return nil, fmt.Errorf("scan sales row: %w", err)
		}

		bucket, ok := sales[day]
		if !ok {
			bucket = make(map[string]int)
			sales[day] = bucket
		}
		bucket[ticket] = quantity
	}

	return sales, rows.Err()
}

func (s *SalesStore) Save(ctx context.Context, sales map[string]map[string]int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sales`); err != nil {
		return fmt.Errorf("clear sales: %w", err)
	}

	query := `
	INSERT INTO sales (day, ticket, quantity)
	VALUES ($1, $2, $3)
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare sales statement: %w", err)
	}

	defer stmt.Close()

	for day, bucket := range sales {
		for ticket, quantity := range bucket {
			if _, err := stmt.ExecContext(ctx, day, ticket, quantity); err != nil {
				return fmt.Errorf("insert sales %s/%s: %w", day, ticket, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit sales: %w", err)
	}

	return nil
}
