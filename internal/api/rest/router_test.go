package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/Dhoini/customer-service/internal/api/rest/handlers"
	"github.com/Dhoini/customer-service/internal/domain"
	"github.com/Dhoini/customer-service/internal/kafka/producer"
	"github.com/Dhoini/customer-service/internal/metrics"
	"github.com/Dhoini/customer-service/internal/repository"
	"github.com/Dhoini/customer-service/internal/service"
	"github.com/Dhoini/customer-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	log := logger.New(logger.ERROR)
	registry := prometheus.NewRegistry()
	m := metrics.NewCustomerMetrics(registry, log)
	repo := repository.NewInMemoryCustomerRepository(log)
	svc := service.NewCustomerService(repo, producer.NewNopCustomerProducer(), m, log)
	h := handlers.NewCustomerHandler(svc, log)

	return SetupRouter(h, registry, m, log)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func decodeCustomer(t *testing.T, rec *httptest.ResponseRecorder) domain.CustomerResponse {
	t.Helper()

	var resp domain.CustomerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) domain.ErrorResponse {
	t.Helper()

	var resp domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCustomerLifecycle(t *testing.T) {
	r := newTestRouter(t)

	// Create
	rec := doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
		"fullName": "John Doe",
		"email":    "john.doe@example.com",
		"phone":    "+380123321123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeCustomer(t, rec)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "John Doe", created.FullName)
	assert.Equal(t, "john.doe@example.com", created.Email)
	assert.Equal(t, "+380123321123", created.Phone)

	idPath := "/api/customers/" + itoa(created.ID)

	// Update: email in the body must be ignored
	rec = doJSON(t, r, http.MethodPut, idPath, gin.H{
		"id":       created.ID,
		"fullName": "Jane Doe",
		"email":    "hijacked@example.com",
		"phone":    "+380987654321",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decodeCustomer(t, rec)
	assert.Equal(t, "Jane Doe", updated.FullName)
	assert.Equal(t, "john.doe@example.com", updated.Email)
	assert.Equal(t, "+380987654321", updated.Phone)

	// Delete
	rec = doJSON(t, r, http.MethodDelete, idPath, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// Deleted customer is gone
	rec = doJSON(t, r, http.MethodGet, idPath, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	// And cannot be deleted again
	rec = doJSON(t, r, http.MethodDelete, idPath, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAllCustomers(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
		"fullName": "John Doe",
		"email":    "john.doe@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/customers", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []domain.CustomerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "john.doe@example.com", list[0].Email)
}

func TestCreateValidationAggregatesFieldErrors(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
		"fullName": "J",
		"email":    "john.doe@example.com",
		"phone":    "12345",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errResp := decodeError(t, rec)
	assert.NotEmpty(t, errResp.ID)
	assert.Contains(t, errResp.Message, "fullName: must be at least 2 characters")
	assert.Contains(t, errResp.Message, "phone: must start with '+' and contain 6 to 14 digits")
}

func TestCreateValidationMissingEmail(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
		"fullName": "John Doe",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errResp := decodeError(t, rec)
	assert.Contains(t, errResp.Message, "email: must not be blank")
}

func TestCreateWithoutPhoneIsValid(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
		"fullName": "John Doe",
		"email":    "john.doe@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeCustomer(t, rec)
	assert.Empty(t, created.Phone)
}

func TestCreateEmptyPhoneIsRejected(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
		"fullName": "Jane Doe",
		"email":    "jane@example.com",
		"phone":    "",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errResp := decodeError(t, rec)
	assert.Contains(t, errResp.Message, "phone: must start with '+' and contain 6 to 14 digits")
}

func TestCreateNullPhoneIsValid(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
		"fullName": "Jane Doe",
		"email":    "jane@example.com",
		"phone":    nil,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeCustomer(t, rec)
	assert.Empty(t, created.Phone)
}

func TestCreateDuplicateEmailHidesDetails(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
		"fullName": "John Doe",
		"email":    "john.doe@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
		"fullName": "Other John",
		"email":    "john.doe@example.com",
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	errResp := decodeError(t, rec)
	assert.Equal(t, "Internal server error", errResp.Message)
	assert.NotEmpty(t, errResp.ID)
}

func TestGetUnknownCustomer(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/customers/42", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	errResp := decodeError(t, rec)
	assert.NotEmpty(t, errResp.ID)
	assert.Contains(t, errResp.Message, "42")
}

func TestErrorCorrelationIDsAreUnique(t *testing.T) {
	r := newTestRouter(t)

	first := decodeError(t, doJSON(t, r, http.MethodGet, "/api/customers/42", nil))
	second := decodeError(t, doJSON(t, r, http.MethodGet, "/api/customers/42", nil))

	assert.NotEqual(t, first.ID, second.ID)
}

func TestNonNumericCustomerID(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/customers/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errResp := decodeError(t, rec)
	assert.Contains(t, errResp.Message, "id: must be an integer")
}

func TestUpdateValidationRequiresFullName(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
		"fullName": "John Doe",
		"email":    "john.doe@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeCustomer(t, rec)

	rec = doJSON(t, r, http.MethodPut, "/api/customers/"+itoa(created.ID), gin.H{
		"id": created.ID,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errResp := decodeError(t, rec)
	assert.Contains(t, errResp.Message, "fullName: must not be blank")
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
