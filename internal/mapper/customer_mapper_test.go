package mapper

import (
	"testing"

	"github.com/Dhoini/customer-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestToCustomer(t *testing.T) {
	phone := "+380123321123"
	req := domain.CustomerCreateRequest{
		FullName: "John Doe",
		Email:    "john.doe@example.com",
		Phone:    &phone,
	}

	customer := ToCustomer(req)

	assert.Equal(t, "John Doe", customer.FullName)
	assert.Equal(t, "john.doe@example.com", customer.Email)
	assert.Equal(t, "+380123321123", customer.Phone)

	// Storage-owned fields stay at zero values
	assert.Zero(t, customer.ID)
	assert.Zero(t, customer.Created)
	assert.Zero(t, customer.Updated)
	assert.False(t, customer.IsActive)
}

func TestToCustomerWithoutPhone(t *testing.T) {
	customer := ToCustomer(domain.CustomerCreateRequest{
		FullName: "John Doe",
		Email:    "john.doe@example.com",
	})

	assert.Empty(t, customer.Phone)
}

func TestToResponse(t *testing.T) {
	customer := domain.Customer{
		ID:       7,
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+380987654321",
		IsActive: true,
		Created:  1700000000000,
		Updated:  1700000001000,
	}

	resp := ToResponse(customer)

	assert.Equal(t, domain.CustomerResponse{
		ID:       7,
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+380987654321",
	}, resp)
}

func TestToResponsesEmpty(t *testing.T) {
	resp := ToResponses(nil)

	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}

func TestApplyUpdateNeverChangesEmail(t *testing.T) {
	customer := domain.Customer{
		ID:       1,
		FullName: "John Doe",
		Email:    "john.doe@example.com",
		IsActive: true,
	}

	req := domain.CustomerUpdateRequest{
		ID:       1,
		FullName: "Jane Doe",
		Email:    "hijacked@example.com",
	}

	ApplyUpdate(req, &customer)

	assert.Equal(t, "Jane Doe", customer.FullName)
	assert.Equal(t, "john.doe@example.com", customer.Email)
}

func TestApplyUpdateAbsentPhoneLeavesStoredValue(t *testing.T) {
	customer := domain.Customer{
		ID:       1,
		FullName: "John Doe",
		Email:    "john.doe@example.com",
		Phone:    "+380123321123",
		IsActive: true,
	}

	ApplyUpdate(domain.CustomerUpdateRequest{ID: 1, FullName: "Jane Doe"}, &customer)

	assert.Equal(t, "+380123321123", customer.Phone)
}

func TestApplyUpdateReplacesPhone(t *testing.T) {
	customer := domain.Customer{
		ID:       1,
		FullName: "John Doe",
		Email:    "john.doe@example.com",
		Phone:    "+380123321123",
		IsActive: true,
	}

	phone := "+380987654321"
	ApplyUpdate(domain.CustomerUpdateRequest{ID: 1, FullName: "John Doe", Phone: &phone}, &customer)

	assert.Equal(t, "+380987654321", customer.Phone)
}

func TestApplyUpdateDoesNotTouchStorageFields(t *testing.T) {
	customer := domain.Customer{
		ID:       5,
		FullName: "John Doe",
		Email:    "john.doe@example.com",
		IsActive: true,
		Created:  1700000000000,
		Updated:  1700000001000,
	}

	ApplyUpdate(domain.CustomerUpdateRequest{ID: 99, FullName: "Jane Doe"}, &customer)

	assert.Equal(t, int64(5), customer.ID)
	assert.Equal(t, int64(1700000000000), customer.Created)
	assert.Equal(t, int64(1700000001000), customer.Updated)
	assert.True(t, customer.IsActive)
}
