package repository

import (
	"context"
	"sync"
	"time"

	"github.com/Dhoini/customer-service/internal/domain"
	"github.com/Dhoini/customer-service/pkg/logger"
)

// CustomerRepository интерфейс для работы с клиентами. Слой хранения
// назначает ID и временные метки при создании, обновляет updated при
// каждой записи и следит за уникальностью email (ErrDuplicate).
type CustomerRepository interface {
	GetAll(ctx context.Context) ([]domain.Customer, error)
	GetByID(ctx context.Context, id int64) (domain.Customer, error)
	Create(ctx context.Context, customer domain.Customer) (domain.Customer, error)
	Update(ctx context.Context, customer domain.Customer) (domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

// InMemoryCustomerRepository реализация репозитория в памяти
type InMemoryCustomerRepository struct {
	customers map[int64]domain.Customer
	nextID    int64
	mutex     sync.RWMutex
	log       *logger.Logger
}

// NewInMemoryCustomerRepository создает новый репозиторий клиентов в памяти
func NewInMemoryCustomerRepository(log *logger.Logger) *InMemoryCustomerRepository {
	return &InMemoryCustomerRepository{
		customers: make(map[int64]domain.Customer),
		nextID:    1,
		log:       log,
	}
}

// GetAll возвращает всех клиентов, включая неактивных
func (r *InMemoryCustomerRepository) GetAll(ctx context.Context) ([]domain.Customer, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	customers := make([]domain.Customer, 0, len(r.customers))
	for _, customer := range r.customers {
		customers = append(customers, customer)
	}

	return customers, nil
}

// GetByID возвращает клиента по ID
func (r *InMemoryCustomerRepository) GetByID(ctx context.Context, id int64) (domain.Customer, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	customer, exists := r.customers[id]
	if !exists {
		return domain.Customer{}, ErrNotFound
	}

	return customer, nil
}

// Create создает нового клиента, назначая ID и временные метки
func (r *InMemoryCustomerRepository) Create(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	// Проверка на уникальность email
	for _, c := range r.customers {
		if c.Email == customer.Email {
			return domain.Customer{}, ErrDuplicate
		}
	}

	now := time.Now().UnixMilli()
	customer.ID = r.nextID
	customer.IsActive = true
	customer.Created = now
	customer.Updated = now
	r.nextID++

	r.customers[customer.ID] = customer

	return customer, nil
}

// Update обновляет существующего клиента, сохраняя created
func (r *InMemoryCustomerRepository) Update(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	existing, exists := r.customers[customer.ID]
	if !exists {
		return domain.Customer{}, ErrNotFound
	}

	// Проверка на уникальность email
	for id, c := range r.customers {
		if c.Email == customer.Email && id != customer.ID {
			return domain.Customer{}, ErrDuplicate
		}
	}

	customer.Created = existing.Created
	customer.Updated = time.Now().UnixMilli()

	r.customers[customer.ID] = customer

	return customer, nil
}

// Delete физически удаляет клиента
func (r *InMemoryCustomerRepository) Delete(ctx context.Context, id int64) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.customers[id]; !exists {
		return ErrNotFound
	}

	delete(r.customers, id)

	return nil
}
