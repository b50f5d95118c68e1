package handler

import (
	"log/slog"
	"net/http"

	"github.com/code-forcer/reitsbackend/internal/model"

	"github.com/gin-gonic/gin"
)

const newsListLimit = 20

type NewsStore interface {
	GetActive(limit int) ([]model.News, error)
}

type NewsHandler struct {
	repository NewsStore
}

func NewNewsHandler(repository NewsStore) *NewsHandler {
	return &NewsHandler{repository: repository}
}

func (h *NewsHandler) GetNews(c *gin.Context) {
	items, err := h.repository.GetActive(newsListLimit)
	if err != nil {
		slog.Error("error fetching news", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	res := make([]NewsResponse, len(items))
	for i, n := range items {
		res[i] = toNewsResponse(n)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": res})
}
