package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/og/:state", OGImageHandler())
	return r
}

func getPath(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOGImageStates(t *testing.T) {
	r := ogRouter()

	for _, state := range []string{"welcome", "query", "advice", "templates", "payment", "error"} {
		w := getPath(r, "/api/og/"+state)
		assert.Equal(t, http.StatusOK, w.Code, state)
		assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"), state)
		assert.Contains(t, w.Body.String(), "<svg", state)
	}
}

func TestOGImageUnknownState(t *testing.T) {
	r := ogRouter()
	w := getPath(r, "/api/og/nonsense")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOGImageAdviceSummaryOverlay(t *testing.T) {
	r := ogRouter()

	w := getPath(r, "/api/og/advice?summary=You+may+have+a+claim")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "You may have a claim")
}

func TestOGImageEscapesMarkup(t *testing.T) {
	r := ogRouter()

	w := getPath(r, "/api/og/error?message=%3Cscript%3Ealert(1)%3C%2Fscript%3Ebad+input+here")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<script>")
}
