package ui

import (
	"net/http"

	"gobasket/domain/core"
	"gobasket/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type transactionRequest struct {
	ExternalID string                   `json:"external_id"`
	Items      []transactionItemRequest `json:"items" binding:"required,min=1"`
}

type transactionItemRequest struct {
	ItemName string `json:"item_name" binding:"required"`
	Quantity int    `json:"quantity"`
}

func (s *Server) handleListTransactions(c *gin.Context) {
	limit, offset := pagination(c)
	txs, err := s.container.TransactionRepo.List(c.Request.Context(), limit, offset)
	if err != nil {
		s.logger.Error("failed to list transactions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve transactions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txs, "count": len(txs)})
}

func (s *Server) handleCreateTransaction(c *gin.Context) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	owner, err := s.defaultOwner(c)
	if err != nil {
		return
	}

	tx := &models.Transaction{
		ExternalID: req.ExternalID,
		CreatedBy:  owner.ID,
	}
	for _, line := range req.Items {
		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		tx.Items = append(tx.Items, models.TransactionItem{
			ItemName: line.ItemName,
			Quantity: qty,
		})
	}

	if err := s.container.TransactionRepo.Create(c.Request.Context(), tx); err != nil {
		s.logger.Error("failed to create transaction: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create transaction"})
		return
	}
	c.JSON(http.StatusCreated, tx)
}

func (s *Server) handleGetTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction id"})
		return
	}
	tx, err := s.container.TransactionRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
			return
		}
		s.logger.Error("failed to get transaction: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve transaction"})
		return
	}
	c.JSON(http.StatusOK, tx)
}

func (s *Server) handleDeleteTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction id"})
		return
	}
	if err := s.container.TransactionRepo.Delete(c.Request.Context(), id); err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
			return
		}
		s.logger.Error("failed to delete transaction: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete transaction"})
		return
	}
	c.Status(http.StatusNoContent)
}

// handleImportTransactions accepts a multipart upload of a .csv or .xlsx
// file and loads its rows as transactions
func (s *Server) handleImportTransactions(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}

	owner, err := s.defaultOwner(c)
	if err != nil {
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		s.logger.Error("failed to open upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	defer f.Close()

	summary, err := s.container.ImportService.Import(c.Request.Context(), fileHeader.Filename, f, owner.ID)
	if err != nil {
		s.logger.Error("import failed: %v", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
