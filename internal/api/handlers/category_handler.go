package handlers

import (
	"net/http"

	"github.com/alligatorO15/fin-dashboard/internal/api/middleware"
	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/alligatorO15/fin-dashboard/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var input models.CategoryCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), userID, &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// List плоский список с полными путями, ?tree=true отдает лес
func (h *CategoryHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var (
		categories []models.Category
		err        error
	)
	if c.Query("tree") == "true" {
		categories, err = h.categoryService.Tree(c.Request.Context(), userID)
	} else {
		categories, err = h.categoryService.List(c.Request.Context(), userID)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "invalid category ID")
	if !ok {
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "invalid category ID")
	if !ok {
		return
	}

	var input models.CategoryUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), middleware.GetUserID(c), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "invalid category ID")
	if !ok {
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

func parseID(c *gin.Context, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
		return uuid.Nil, false
	}
	return id, true
}
