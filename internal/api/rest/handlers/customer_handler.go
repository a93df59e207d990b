package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Dhoini/customer-service/internal/domain"
	"github.com/Dhoini/customer-service/internal/service"
	"github.com/Dhoini/customer-service/pkg/logger"
	"github.com/gin-gonic/gin"
)

// CustomerHandler обработчик для клиентов
type CustomerHandler struct {
	service service.CustomerService
	log     *logger.Logger
}

// NewCustomerHandler создает новый обработчик клиентов
func NewCustomerHandler(svc service.CustomerService, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: svc,
		log:     log,
	}
}

// GetCustomers возвращает список всех клиентов
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	customers, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		writeInternalError(c, h.log, err)
		return
	}

	h.log.Info("Returned %d customers", len(customers))
	c.JSON(http.StatusOK, customers)
}

// GetCustomer возвращает клиента по ID
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := h.customerID(c)
	if !ok {
		return
	}

	customer, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.log.Info("Returned customer with ID: %d", id)
	c.JSON(http.StatusOK, customer)
}

// CreateCustomer создает нового клиента
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req domain.CustomerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid create request: %v", err)
		writeError(c, h.log, http.StatusBadRequest, validationMessage(err), err)
		return
	}

	// Конфликт по email наружу не детализируется
	customer, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeInternalError(c, h.log, err)
		return
	}

	h.log.Info("Created customer with ID: %d", customer.ID)
	c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer обновляет существующего клиента
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := h.customerID(c)
	if !ok {
		return
	}

	var req domain.CustomerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid update request: %v", err)
		writeError(c, h.log, http.StatusBadRequest, validationMessage(err), err)
		return
	}

	customer, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.log.Info("Updated customer with ID: %d", id)
	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer удаляет клиента
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := h.customerID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.log.Info("Deleted customer with ID: %d", id)
	c.Status(http.StatusNoContent)
}

// customerID извлекает числовой идентификатор клиента из пути запроса
func (h *CustomerHandler) customerID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.log.Warn("Invalid customer ID: %s", raw)
		writeError(c, h.log, http.StatusBadRequest, "id: must be an integer", err)
		return 0, false
	}

	return id, true
}

// handleServiceError переводит доменные ошибки в HTTP статусы
func (h *CustomerHandler) handleServiceError(c *gin.Context, err error) {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		writeError(c, h.log, http.StatusNotFound, notFound.Error(), err)
		return
	}

	writeInternalError(c, h.log, err)
}
