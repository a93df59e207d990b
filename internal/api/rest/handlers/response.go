package handlers

import (
	"fmt"
	"net/http"

	"github.com/Dhoini/customer-service/internal/domain"
	"github.com/Dhoini/customer-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// internalErrorMessage наружу при 500 уходит только это сообщение,
// детали остаются в логах
const internalErrorMessage = "Internal server error"

// writeError отправляет тело ошибки со свежим корреляционным токеном.
// Токен не зависит от содержимого ошибки: два одинаковых сбоя получают
// разные токены.
func writeError(c *gin.Context, log *logger.Logger, status int, message string, err error) {
	resp := domain.ErrorResponse{
		ID:      uuid.NewString(),
		Message: message,
	}

	if err != nil {
		log.Error("Request error, id: %s, status: %d, message: %v", resp.ID, status, err)
	} else {
		log.Error("Request error, id: %s, status: %d, message: %s", resp.ID, status, message)
	}

	c.JSON(status, resp)
}

// writeInternalError отправляет 500 с фиксированным сообщением
func writeInternalError(c *gin.Context, log *logger.Logger, err error) {
	writeError(c, log, http.StatusInternalServerError, internalErrorMessage, err)
}

// RecoveryHandler переводит панику в стандартное тело ошибки 500
func RecoveryHandler(log *logger.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		writeError(c, log, http.StatusInternalServerError, internalErrorMessage,
			&panicError{value: recovered})
		c.Abort()
	}
}

type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic recovered: %v", e.value)
}
