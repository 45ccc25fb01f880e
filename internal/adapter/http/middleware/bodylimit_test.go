package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func bodyLimitRouter(limit int64) *gin.Engine {
	r := gin.New()
	r.Use(MaxBodySize(limit))
	r.POST("/gifts", func(c *gin.Context) {
		var body struct {
			Message string `json:"message"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.String(http.StatusBadRequest, "rejected")
			return
		}
		c.String(http.StatusOK, body.Message)
	})
	r.GET("/feed", func(c *gin.Context) {
		_, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})
	return r
}

func TestMaxBodySize_WithinLimit(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/gifts", strings.NewReader(`{"message":"gm"}`))
	bodyLimitRouter(1024).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gm", w.Body.String())
}

func TestMaxBodySize_OversizedBodyFailsBinding(t *testing.T) {
	big := `{"message":"` + strings.Repeat("A", 200) + `"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/gifts", bytes.NewReader([]byte(big)))
	bodyLimitRouter(32).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMaxBodySize_NoBody(t *testing.T) {
	w := httptest.NewRecorder()
	bodyLimitRouter(16).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/feed", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
