package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dhoini/customer-service/internal/domain"
	"github.com/Dhoini/customer-service/internal/repository"
	"github.com/Dhoini/customer-service/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникальности
const uniqueViolation = "23505"

// PostgresCustomerRepository реализация репозитория клиентов через PostgreSQL.
//
// Ожидаемая схема:
//
//	CREATE TABLE customers (
//	    id        BIGSERIAL PRIMARY KEY,
//	    full_name VARCHAR(50)  NOT NULL,
//	    email     VARCHAR(100) NOT NULL UNIQUE,
//	    phone     VARCHAR(15)  NOT NULL DEFAULT '',
//	    is_active BOOLEAN      NOT NULL DEFAULT TRUE,
//	    created   BIGINT       NOT NULL,
//	    updated   BIGINT       NOT NULL
//	);
type PostgresCustomerRepository struct {
	db  *pgxpool.Pool
	log *logger.Logger
}

// NewPostgresCustomerRepository создает новый репозиторий клиентов через PostgreSQL
func NewPostgresCustomerRepository(db *pgxpool.Pool, log *logger.Logger) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{
		db:  db,
		log: log,
	}
}

// GetAll возвращает всех клиентов, включая неактивных
func (r *PostgresCustomerRepository) GetAll(ctx context.Context) ([]domain.Customer, error) {
	query := `
		SELECT id, full_name, email, phone, is_active, created, updated
		FROM customers
		ORDER BY created DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var customer domain.Customer

		err := rows.Scan(
			&customer.ID,
			&customer.FullName,
			&customer.Email,
			&customer.Phone,
			&customer.IsActive,
			&customer.Created,
			&customer.Updated,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}

		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}

// GetByID возвращает клиента по ID
func (r *PostgresCustomerRepository) GetByID(ctx context.Context, id int64) (domain.Customer, error) {
	query := `
		SELECT id, full_name, email, phone, is_active, created, updated
		FROM customers
		WHERE id = $1
	`

	var customer domain.Customer

	err := r.db.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.FullName,
		&customer.Email,
		&customer.Phone,
		&customer.IsActive,
		&customer.Created,
		&customer.Updated,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Customer{}, repository.ErrNotFound
		}
		return domain.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer, nil
}

// Create создает нового клиента, назначая ID и временные метки
func (r *PostgresCustomerRepository) Create(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	query := `
		INSERT INTO customers (full_name, email, phone, is_active, created, updated)
		VALUES ($1, $2, $3, TRUE, $4, $4)
		RETURNING id
	`

	now := time.Now().UnixMilli()

	err := r.db.QueryRow(
		ctx,
		query,
		customer.FullName,
		customer.Email,
		customer.Phone,
		now,
	).Scan(&customer.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.Customer{}, repository.ErrDuplicate
		}
		return domain.Customer{}, fmt.Errorf("failed to create customer: %w", err)
	}

	customer.IsActive = true
	customer.Created = now
	customer.Updated = now

	return customer, nil
}

// Update обновляет существующего клиента, сохраняя created
func (r *PostgresCustomerRepository) Update(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	query := `
		UPDATE customers
		SET full_name = $1, email = $2, phone = $3, is_active = $4, updated = $5
		WHERE id = $6
		RETURNING created
	`

	now := time.Now().UnixMilli()

	err := r.db.QueryRow(
		ctx,
		query,
		customer.FullName,
		customer.Email,
		customer.Phone,
		customer.IsActive,
		now,
		customer.ID,
	).Scan(&customer.Created)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Customer{}, repository.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.Customer{}, repository.ErrDuplicate
		}
		return domain.Customer{}, fmt.Errorf("failed to update customer: %w", err)
	}

	customer.Updated = now

	return customer, nil
}

// Delete физически удаляет клиента
func (r *PostgresCustomerRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM customers WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	if result.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}
