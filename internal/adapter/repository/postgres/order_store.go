package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wonderpark/parkpos/internal/core/domain"
)

type OrderStore struct {
	db *sql.DB
}

func NewOrderStore(db *sql.DB) *OrderStore {
	return &OrderStore{db: db}
}

func (s *OrderStore) Load(ctx context.Context) (map[string]domain.OrderRecord, error) {
	query := `
	SELECT id, customer, ticket, quantity, total_price, amount_paid, payment_type, order_date
	FROM orders
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}

	defer rows.Close()

	orders := make(map[string]domain.OrderRecord)
	for rows.Next() {
		var id string
		var rec domain.OrderRecord

		if err := rows.Scan(
			&id,
			&rec.Customer,
			&rec.Ticket,
			&rec.Quantity,
			&rec.TotalPrice,
			&rec.AmountPaid,
			&rec.PaymentType,
			&rec.OrderDate,
		); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}

		orders[id] = rec
	}

	return orders, rows.Err()
}

func (s *OrderStore) Save(ctx context.Context, orders map[string]domain.OrderRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM orders`); err != nil {
		return fmt.Errorf("clear orders: %w", err)
	}

	query := `
	INSERT INTO orders (id, customer, ticket, quantity, total_price, amount_paid, payment_type, order_date)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare order statement: %w", err)
	}

	defer stmt.Close()

	for id, rec := range orders {
		_, err := stmt.ExecContext(ctx,
			id, rec.Customer, rec.Ticket, rec.Quantity,
			rec.TotalPrice, rec.AmountPaid, rec.PaymentType, rec.OrderDate,
		)
		if err != nil {
			return fmt.Errorf("insert order %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit orders: %w", err)
	}

	return nil
}
