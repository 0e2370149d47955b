package ui

import (
	"errors"
	"net/http"
	"strconv"

	"gobasket/domain/core"
	"gobasket/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type itemRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

func (s *Server) handleListItems(c *gin.Context) {
	limit, offset := pagination(c)
	items, err := s.container.ItemRepo.List(c.Request.Context(), limit, offset)
	if err != nil {
		s.logger.Error("failed to list items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

func (s *Server) handleCreateItem(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	owner, err := s.defaultOwner(c)
	if err != nil {
		return
	}

	item := &models.Item{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		CreatedBy:   owner.ID,
	}
	if err := s.container.ItemRepo.Create(c.Request.Context(), item); err != nil {
		if errors.Is(err, core.ErrDuplicateItem) {
			c.JSON(http.StatusConflict, gin.H{"error": "item already exists"})
			return
		}
		s.logger.Error("failed to create item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (s *Server) handleGetItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}
	item, err := s.container.ItemRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		s.logger.Error("failed to get item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) handleUpdateItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := &models.Item{
		ID:          id,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
	}
	if err := s.container.ItemRepo.Update(c.Request.Context(), item); err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		s.logger.Error("failed to update item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) handleDeleteItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}
	if err := s.container.ItemRepo.Delete(c.Request.Context(), id); err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		s.logger.Error("failed to delete item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete item"})
		return
	}
	c.Status(http.StatusNoContent)
}

// pagination reads limit/offset query parameters with sane bounds
func pagination(c *gin.Context) (limit, offset int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 500 {
		limit = 50
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

// defaultOwner resolves the acting user, responding with an error itself on
// failure
func (s *Server) defaultOwner(c *gin.Context) (*models.User, error) {
	user, err := s.container.UserRepo.GetOrCreateDefaultUser(c.Request.Context())
	if err != nil {
		s.logger.Error("failed to resolve default user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve user"})
		return nil, err
	}
	return user, nil
}
