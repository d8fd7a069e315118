package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/alligatorO15/fin-dashboard/internal/api/middleware"
	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/alligatorO15/fin-dashboard/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type TransactionHandler struct {
	transactionService service.TransactionService
}

func NewTransactionHandler(transactionService service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

func (h *TransactionHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var input models.TransactionCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction, err := h.transactionService.Create(c.Request.Context(), userID, &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// List список транзакций с фильтрами и пагинацией
func (h *TransactionHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)

	filter := &models.TransactionFilter{}

	if categoryID := c.Query("category_id"); categoryID != "" {
		id, err := uuid.Parse(categoryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category_id"})
			return
		}
		filter.CategoryID = &id
	}

	if txType := c.Query("type"); txType != "" {
		t := models.TransactionType(txType)
		filter.Type = &t
	}

	if method := c.Query("payment_method"); method != "" {
		m := models.PaymentMethod(method)
		filter.PaymentMethod = &m
	}

	if reported := c.Query("reported"); reported != "" {
		r, err := strconv.ParseBool(reported)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reported flag"})
			return
		}
		filter.Reported = &r
	}

	var ok bool
	if filter.DateFrom, ok = parseDateQuery(c, "date_from"); !ok {
		return
	}
	if filter.DateTo, ok = parseDateQuery(c, "date_to"); !ok {
		return
	}

	filter.Bank = c.Query("bank")
	filter.Search = c.Query("search")

	if page := c.Query("page"); page != "" {
		if p, err := strconv.Atoi(page); err == nil {
			filter.Page = p
		}
	}

	if limit := c.Query("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil {
			filter.Limit = l
		}
	}

	filter.SortBy = c.DefaultQuery("sort_by", "date")
	filter.SortOrder = c.DefaultQuery("sort_order", "desc")

	result, err := h.transactionService.GetByFilter(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *TransactionHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "invalid transaction ID")
	if !ok {
		return
	}

	transaction, err := h.transactionService.GetByID(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}

func (h *TransactionHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "invalid transaction ID")
	if !ok {
		return
	}

	var input models.TransactionUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction, err := h.transactionService.Update(c.Request.Context(), middleware.GetUserID(c), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}

type reportedInput struct {
	Reported *bool `json:"reported" binding:"required"`
}

// SetReported отметка "уже учтено" из UI
func (h *TransactionHandler) SetReported(c *gin.Context) {
	id, ok := parseID(c, "invalid transaction ID")
	if !ok {
		return
	}

	var input reportedInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction, err := h.transactionService.SetReported(c.Request.Context(), middleware.GetUserID(c), id, *input.Reported)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "invalid transaction ID")
	if !ok {
		return
	}

	if err := h.transactionService.Delete(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "transaction deleted"})
}

// parseDateQuery YYYY-MM-DD из query; пустой параметр = nil, кривой = 400
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	value := c.Query(name)
	if value == "" {
		return nil, true
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + ", expected YYYY-MM-DD"})
		return nil, false
	}
	return &t, true
}
