package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/code-forcer/reitsbackend/internal/model"

	"github.com/gin-gonic/gin"
)

const topListLimit = 10

type REITStore interface {
	GetAll() ([]model.REIT, error)
	GetByTicker(ticker string) (*model.REIT, error)
	GetHighestYield(limit int) ([]model.REIT, error)
	GetLargest(limit int) ([]model.REIT, error)
}

type REITHandler struct {
	repository REITStore
}

func NewREITHandler(repository REITStore) *REITHandler {
	return &REITHandler{repository: repository}
}

func (h *REITHandler) GetREITs(c *gin.Context) {
	reits, err := h.repository.GetAll()
	if err != nil {
		slog.Error("error fetching reits", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	var lastUpdated interface{}
	if len(reits) > 0 {
		lastUpdated = reits[0].LastUpdated.Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"data":        toREITResponses(reits),
		"lastUpdated": lastUpdated,
	})
}

func (h *REITHandler) GetHighestYield(c *gin.Context) {
	reits, err := h.repository.GetHighestYield(topListLimit)
	if err != nil {
		slog.Error("error fetching highest-yield reits", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": toREITResponses(reits)})
}

func (h *REITHandler) GetLargest(c *gin.Context) {
	reits, err := h.repository.GetLargest(topListLimit)
	if err != nil {
		slog.Error("error fetching largest reits", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": toREITResponses(reits)})
}

func (h *REITHandler) GetREIT(c *gin.Context) {
	ticker := strings.ToUpper(c.Param("ticker"))

	reit, err := h.repository.GetByTicker(ticker)
	if err != nil {
		slog.Error("error fetching reit", "ticker", ticker, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if reit == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "REIT not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": toREITResponse(*reit)})
}

func (h *REITHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "REIT API Server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
