package ui

import (
	"net/http"

	"gobasket/domain/core"
	"gobasket/domain/mining"

	"github.com/gin-gonic/gin"
)

type miningRunRequest struct {
	MinSupport    float64          `json:"min_support" binding:"required"`
	MinConfidence float64          `json:"min_confidence" binding:"required"`
	Algorithm     mining.Algorithm `json:"algorithm" binding:"required"`
}

type miningCompareRequest struct {
	MinSupport    float64 `json:"min_support" binding:"required"`
	MinConfidence float64 `json:"min_confidence" binding:"required"`
}

type miningBenchmarkRequest struct {
	MinSupport    float64          `json:"min_support" binding:"required"`
	MinConfidence float64          `json:"min_confidence" binding:"required"`
	Algorithm     mining.Algorithm `json:"algorithm" binding:"required"`
	Rounds        int              `json:"rounds"`
}

func (s *Server) handleMiningRun(c *gin.Context) {
	var req miningRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	owner, err := s.defaultOwner(c)
	if err != nil {
		return
	}

	params := mining.MiningParameters{
		MinSupport:    req.MinSupport,
		MinConfidence: req.MinConfidence,
		Algorithm:     req.Algorithm,
	}
	result, err := s.container.MiningService.Run(c.Request.Context(), params, core.UserID(owner.ID.String()))
	if err != nil {
		s.respondMiningError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleMiningCompare(c *gin.Context) {
	var req miningCompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	owner, err := s.defaultOwner(c)
	if err != nil {
		return
	}

	comparison, err := s.container.ComparisonService.Compare(c.Request.Context(), req.MinSupport, req.MinConfidence, core.UserID(owner.ID.String()))
	if err != nil {
		s.respondMiningError(c, err)
		return
	}
	c.JSON(http.StatusOK, comparison)
}

func (s *Server) handleMiningBenchmark(c *gin.Context) {
	var req miningBenchmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	owner, err := s.defaultOwner(c)
	if err != nil {
		return
	}

	params := mining.MiningParameters{
		MinSupport:    req.MinSupport,
		MinConfidence: req.MinConfidence,
		Algorithm:     req.Algorithm,
	}
	report, err := s.container.BenchmarkService.Run(c.Request.Context(), params, core.UserID(owner.ID.String()), req.Rounds)
	if err != nil {
		s.respondMiningError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleListResults(c *gin.Context) {
	limit, offset := pagination(c)

	owner, err := s.defaultOwner(c)
	if err != nil {
		return
	}

	results, err := s.container.ResultRepo.ListByOwner(c.Request.Context(), core.UserID(owner.ID.String()), limit, offset)
	if err != nil {
		s.logger.Error("failed to list results: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve results"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}

func (s *Server) handleGetResult(c *gin.Context) {
	id, err := core.ParseResultID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid result id"})
		return
	}
	result, err := s.container.ResultRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
			return
		}
		s.logger.Error("failed to get result: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve result"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleDeleteResult(c *gin.Context) {
	id, err := core.ParseResultID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid result id"})
		return
	}
	if err := s.container.ResultRepo.Delete(c.Request.Context(), id); err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
			return
		}
		s.logger.Error("failed to delete result: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete result"})
		return
	}
	c.Status(http.StatusNoContent)
}

// respondMiningError maps domain validation failures to 400 and everything
// else to 500
func (s *Server) respondMiningError(c *gin.Context, err error) {
	if core.IsParameterError(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.logger.Error("mining operation failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "mining operation failed"})
}
