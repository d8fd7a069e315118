package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/alligatorO15/fin-dashboard/internal/service"
	"github.com/gin-gonic/gin"
)

// respondError переводит ошибки сервисов в HTTP статусы
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrTransactionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrCategoryCycle),
		errors.Is(err, service.ErrUserExists):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrInvalidCategoryName),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidTransactionType),
		errors.Is(err, service.ErrInvalidPaymentMethod),
		errors.Is(err, service.ErrInvalidDescription),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidPeriod),
		errors.Is(err, service.ErrInvalidTimezone):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
