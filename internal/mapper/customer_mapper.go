package mapper

import (
	"github.com/Dhoini/customer-service/internal/domain"
)

// ToCustomer преобразует запрос на создание в модель клиента.
// ID, временные метки и флаг активности остаются нулевыми — их
// назначает слой хранения.
func ToCustomer(req domain.CustomerCreateRequest) domain.Customer {
	customer := domain.Customer{
		FullName: req.FullName,
		Email:    req.Email,
	}

	if req.Phone != nil {
		customer.Phone = *req.Phone
	}

	return customer
}

// ToResponse преобразует модель клиента в ответ API
func ToResponse(customer domain.Customer) domain.CustomerResponse {
	return domain.CustomerResponse{
		ID:       customer.ID,
		FullName: customer.FullName,
		Email:    customer.Email,
		Phone:    customer.Phone,
	}
}

// ToResponses преобразует список клиентов в список ответов API
func ToResponses(customers []domain.Customer) []domain.CustomerResponse {
	responses := make([]domain.CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		responses = append(responses, ToResponse(customer))
	}
	return responses
}

// ApplyUpdate переносит поля запроса на обновление в существующего клиента.
// Email никогда не обновляется. Отсутствующий phone не трогает сохраненное
// значение. ID, временные метки и флаг активности остаются за пределами
// слияния.
func ApplyUpdate(req domain.CustomerUpdateRequest, customer *domain.Customer) {
	customer.FullName = req.FullName

	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
}
