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

type fakeREITStore struct {
	all          []model.REIT
	byTicker     *model.REIT
	highestYield []model.REIT
	largest      []model.REIT
	err          error

	requestedTicker string
	requestedLimit  int
}

func (f *fakeREITStore) GetAll() ([]model.REIT, error) {
	return f.all, f.err
}

func (f *fakeREITStore) GetByTicker(ticker string) (*model.REIT, error) {
	f.requestedTicker = ticker
	return f.byTicker, f.err
}

func (f *fakeREITStore) GetHighestYield(limit int) ([]model.REIT, error) {
	f.requestedLimit = limit
	return f.highestYield, f.err
}

func (f *fakeREITStore) GetLargest(limit int) ([]model.REIT, error) {
	f.requestedLimit = limit
	return f.largest, f.err
}

func newTestRouter(store REITStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewREITHandler(store)
	r.GET("/api/reits", h.GetREITs)
	r.GET("/api/reits/highest-yield", h.GetHighestYield)
	r.GET("/api/reits/largest", h.GetLargest)
	r.GET("/api/reits/:ticker", h.GetREIT)
	r.GET("/api/health", h.GetHealth)
	return r
}

type listEnvelope struct {
	Success     bool           `json:"success"`
	Data        []REITResponse `json:"data"`
	LastUpdated string         `json:"lastUpdated"`
	Error       string         `json:"error"`
}

type singleEnvelope struct {
	Success bool         `json:"success"`
	Data    REITResponse `json:"data"`
	Error   string       `json:"error"`
}

func TestGetREITs_ReturnsRecords(t *testing.T) {
	updated := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)
	store := &fakeREITStore{
		all: []model.REIT{
			{Ticker: "OHI", Name: "Omega Healthcare Investors", Yield: 8.5, LastUpdated: updated},
			{Ticker: "PLD", Name: "Prologis", LastUpdated: updated.Add(-time.Hour)},
		},
	}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/reits", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res listEnvelope
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res.Success)
	assert.Equal(t, 2, len(res.Data))
	assert.Equal(t, "OHI", res.Data[0].Ticker)
	assert.Equal(t, 8.5, res.Data[0].Yield)
	assert.Equal(t, updated.Format(time.RFC3339), res.LastUpdated)
}

func TestGetREITs_EmptyLastUpdated(t *testing.T) {
	store := &fakeREITStore{}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/reits", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res["success"])
	assert.Equal(t, nil, res["lastUpdated"])
}

func TestGetREITs_DBError(t *testing.T) {
	store := &fakeREITStore{err: errors.New("DB down")}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/reits", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var res listEnvelope
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, false, res.Success)
	assert.Equal(t, "DB down", res.Error)
}

func TestGetHighestYield(t *testing.T) {
	store := &fakeREITStore{
		highestYield: []model.REIT{
			{Ticker: "AGNC", Yield: 14.1},
			{Ticker: "OHI", Yield: 8.5},
		},
	}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/reits/highest-yield", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, store.requestedLimit)

	var res listEnvelope
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res.Success)
	assert.Equal(t, 2, len(res.Data))
	assert.Equal(t, "AGNC", res.Data[0].Ticker)
}

func TestGetLargest(t *testing.T) {
	store := &fakeREITStore{
		largest: []model.REIT{
			{Ticker: "PLD", MarketCap: 103.2},
		},
	}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/reits/largest", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, store.requestedLimit)

	var res listEnvelope
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res.Success)
	assert.Equal(t, "PLD", res.Data[0].Ticker)
}

func TestGetREIT_Found(t *testing.T) {
	store := &fakeREITStore{
		byTicker: &model.REIT{Ticker: "OHI", Name: "Omega Healthcare Investors", Sector: "Healthcare"},
	}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/reits/ohi", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OHI", store.requestedTicker)

	var res singleEnvelope
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res.Success)
	assert.Equal(t, "Omega Healthcare Investors", res.Data.Name)
}

func TestGetREIT_NotFound(t *testing.T) {
	store := &fakeREITStore{}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/reits/ZZZZ", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var res singleEnvelope
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, false, res.Success)
	assert.Equal(t, "REIT not found", res.Error)
}

func TestGetHealth(t *testing.T) {
	store := &fakeREITStore{}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res["success"])
	assert.NotEqual(t, "", res["timestamp"])
}
