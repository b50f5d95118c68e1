package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/code-forcer/reitsbackend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeNewsStore struct {
	items []model.News
	err   error

	requestedLimit int
}

func (f *fakeNewsStore) GetActive(limit int) ([]model.News, error) {
	f.requestedLimit = limit
	return f.items, f.err
}

func newNewsTestRouter(store NewsStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewNewsHandler(store)
	r.GET("/api/news", h.GetNews)
	return r
}

type newsEnvelope struct {
	Success bool           `json:"success"`
	Data    []NewsResponse `json:"data"`
	Error   string         `json:"error"`
}

func TestGetNews_ReturnsActiveItems(t *testing.T) {
	published := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	store := &fakeNewsStore{
		items: []model.News{
			{
				ID:             1,
				Title:          "REIT Market Shows Mixed Performance",
				Summary:        "Yields diverged across sectors.",
				Source:         "AI Market Analysis",
				Category:       "Market Update",
				Impact:         "neutral",
				PublishedAt:    published,
				ReadTime:       "4 min read",
				RelatedTickers: []string{"OHI", "PLD"},
				IsActive:       true,
			},
		},
	}
	r := newNewsTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/news", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 20, store.requestedLimit)

	var res newsEnvelope
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res.Success)
	assert.Equal(t, 1, len(res.Data))
	assert.Equal(t, "REIT Market Shows Mixed Performance", res.Data[0].Title)
	assert.Equal(t, published.Format(time.RFC3339), res.Data[0].PublishedAt)
	assert.Equal(t, []string{"OHI", "PLD"}, res.Data[0].RelatedTickers)
}

func TestGetNews_Empty(t *testing.T) {
	store := &fakeNewsStore{}
	r := newNewsTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/news", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res newsEnvelope
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res.Success)
	assert.Equal(t, 0, len(res.Data))
}

func TestGetNews_DBError(t *testing.T) {
	store := &fakeNewsStore{err: errors.New("DB down")}
	r := newNewsTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/news", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var res newsEnvelope
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, false, res.Success)
	assert.Equal(t, "DB down", res.Error)
}
