package service

import (
	"context"
	"errors"

	"github.com/Dhoini/customer-service/internal/domain"
	"github.com/Dhoini/customer-service/internal/kafka/producer"
	"github.com/Dhoini/customer-service/internal/mapper"
	"github.com/Dhoini/customer-service/internal/metrics"
	"github.com/Dhoini/customer-service/internal/repository"
	"github.com/Dhoini/customer-service/pkg/logger"
)

// CustomerService интерфейс сервиса для работы с клиентами
type CustomerService interface {
	GetAll(ctx context.Context) ([]domain.CustomerResponse, error)
	Get(ctx context.Context, id int64) (domain.CustomerResponse, error)
	Create(ctx context.Context, req domain.CustomerCreateRequest) (domain.CustomerResponse, error)
	Update(ctx context.Context, id int64, req domain.CustomerUpdateRequest) (domain.CustomerResponse, error)
	Delete(ctx context.Context, id int64) error
}

// Сервис реализует мягкое удаление: DELETE сбрасывает is_active, а все
// операции чтения и изменения видят только активных клиентов.
type customerService struct {
	repo    repository.CustomerRepository
	events  producer.CustomerProducer
	metrics metrics.CustomerMetrics
	log     *logger.Logger
}

// NewCustomerService создает новый сервис для работы с клиентами
func NewCustomerService(
	repo repository.CustomerRepository,
	events producer.CustomerProducer,
	m metrics.CustomerMetrics,
	log *logger.Logger,
) CustomerService {
	return &customerService{
		repo:    repo,
		events:  events,
		metrics: m,
		log:     log,
	}
}

// GetAll возвращает всех активных клиентов.
// Порядок выдачи определяется слоем хранения и не гарантируется.
func (s *customerService) GetAll(ctx context.Context) ([]domain.CustomerResponse, error) {
	s.log.Debug("Getting all customers")

	customers, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]domain.Customer, 0, len(customers))
	for _, customer := range customers {
		if customer.IsActive {
			active = append(active, customer)
		}
	}

	return mapper.ToResponses(active), nil
}

// Get возвращает активного клиента по ID
func (s *customerService) Get(ctx context.Context, id int64) (domain.CustomerResponse, error) {
	s.log.Debug("Getting customer by ID: %d", id)

	customer, err := s.getActive(ctx, id)
	if err != nil {
		return domain.CustomerResponse{}, err
	}

	return mapper.ToResponse(customer), nil
}

// Create создает нового клиента
func (s *customerService) Create(ctx context.Context, req domain.CustomerCreateRequest) (domain.CustomerResponse, error) {
	s.log.Debug("Creating customer with email: %s", req.Email)

	customer, err := s.repo.Create(ctx, mapper.ToCustomer(req))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return domain.CustomerResponse{}, domain.NewDuplicateError("email", req.Email)
		}
		return domain.CustomerResponse{}, err
	}

	s.metrics.IncCustomerCreated()

	if err := s.events.PublishCustomerCreated(ctx, customer); err != nil {
		s.log.Error("Failed to publish customer.created event: %v", err)
	}

	return mapper.ToResponse(customer), nil
}

// Update обновляет существующего клиента. Email при обновлении не меняется;
// ID в теле запроса игнорируется в пользу ID из пути.
func (s *customerService) Update(ctx context.Context, id int64, req domain.CustomerUpdateRequest) (domain.CustomerResponse, error) {
	s.log.Debug("Updating customer with ID: %d", id)

	customer, err := s.getActive(ctx, id)
	if err != nil {
		return domain.CustomerResponse{}, err
	}

	mapper.ApplyUpdate(req, &customer)

	updated, err := s.repo.Update(ctx, customer)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.CustomerResponse{}, domain.NewNotFoundError(id)
		}
		return domain.CustomerResponse{}, err
	}

	s.metrics.IncCustomerUpdated()

	if err := s.events.PublishCustomerUpdated(ctx, updated); err != nil {
		s.log.Error("Failed to publish customer.updated event: %v", err)
	}

	return mapper.ToResponse(updated), nil
}

// Delete помечает клиента неактивным. Повторное удаление или удаление
// несуществующего клиента возвращает NotFoundError.
func (s *customerService) Delete(ctx context.Context, id int64) error {
	s.log.Debug("Deleting customer with ID: %d", id)

	customer, err := s.getActive(ctx, id)
	if err != nil {
		return err
	}

	customer.IsActive = false

	deleted, err := s.repo.Update(ctx, customer)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewNotFoundError(id)
		}
		return err
	}

	s.metrics.IncCustomerDeleted()

	if err := s.events.PublishCustomerDeleted(ctx, deleted); err != nil {
		s.log.Error("Failed to publish customer.deleted event: %v", err)
	}

	return nil
}

// getActive возвращает клиента по ID, считая неактивных отсутствующими
func (s *customerService) getActive(ctx context.Context, id int64) (domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Customer{}, domain.NewNotFoundError(id)
		}
		return domain.Customer{}, err
	}

	if !customer.IsActive {
		return domain.Customer{}, domain.NewNotFoundError(id)
	}

	return customer, nil
}
