package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"legalease/services/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionRouter() (*gin.Engine, session.Service) {
	gin.SetMode(gin.TestMode)
	svc := session.NewDefaultSessionService(session.NewMemoryStore(time.Hour))
	r := gin.New()
	r.POST("/api/sessions", CreateSessionHandler(svc))
	r.GET("/api/sessions", GetSessionHandler(svc))
	r.PUT("/api/sessions", UpdateSessionHandler(svc))
	r.DELETE("/api/sessions", DeleteSessionHandler(svc))
	return r, svc
}

func createSession(t *testing.T, r *gin.Engine, body string) (string, string) {
	t.Helper()
	w := postJSON(r, "/api/sessions", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out struct {
		Data struct {
			SessionID string `json:"sessionId"`
			Token     string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(t, out.Data.SessionID)
	return out.Data.SessionID, out.Data.Token
}

func TestSessionLifecycle(t *testing.T) {
	r, _ := sessionRouter()

	id, token := createSession(t, r, `{"jurisdiction":"US-NY"}`)
	assert.NotEmpty(t, token)

	// Fetch returns the same jurisdiction.
	req := httptest.NewRequest(http.MethodGet, "/api/sessions?sessionId="+id, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "US-NY")

	// Delete, then fetch returns SESSION_NOT_FOUND.
	req = httptest.NewRequest(http.MethodDelete, "/api/sessions?sessionId="+id, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/sessions?sessionId="+id, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "SESSION_NOT_FOUND")
}

func TestSessionBearerTokenResolvesID(t *testing.T) {
	r, _ := sessionRouter()

	_, token := createSession(t, r, `{"jurisdiction":"UK"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "UK")
}

func TestCreateSessionValidation(t *testing.T) {
	r, _ := sessionRouter()

	w := postJSON(r, "/api/sessions", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Jurisdiction is required")

	w = postJSON(r, "/api/sessions", `{"jurisdiction":"US-CA","walletAddress":"0x123"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid wallet address")
}

func TestUpdateSessionAddsQuery(t *testing.T) {
	r, _ := sessionRouter()

	id, _ := createSession(t, r, `{"jurisdiction":"GENERAL"}`)

	body := `{"sessionId":"` + id + `","query":"My landlord locked me out","responseType":"summary","cost":0.05}`
	req := httptest.NewRequest(http.MethodPut, "/api/sessions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalQueries":1`)
	assert.Contains(t, w.Body.String(), `"totalSpent":0.05`)
}

func TestGetSessionMissingParam(t *testing.T) {
	r, _ := sessionRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_PARAMETER")
}
