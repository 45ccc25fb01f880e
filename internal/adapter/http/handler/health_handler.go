package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"bitbuddy/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// healthPingTimeout bounds each dependency ping. Wallet bridges are local
// processes that may hang while a user-approval popup is open.
const healthPingTimeout = 2 * time.Second

type depStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthCheck handles GET /health. Dependencies are pinged in parallel and any
// failure turns the response into 503 "degraded".
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			mu   sync.Mutex
			wg   sync.WaitGroup
			deps = make(map[string]depStatus, len(checkers))
		)

		for _, checker := range checkers {
			wg.Add(1)
			go func(hc ports.HealthChecker) {
				defer wg.Done()
				ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
				defer cancel()

				st := depStatus{Status: "healthy"}
				if err := hc.Ping(ctx); err != nil {
					st = depStatus{Status: "unhealthy", Error: err.Error()}
				}
				mu.Lock()
				deps[hc.Name()] = st
				mu.Unlock()
			}(checker)
		}
		wg.Wait()

		status, httpCode := "healthy", http.StatusOK
		for _, d := range deps {
			if d.Status != "healthy" {
				status, httpCode = "degraded", http.StatusServiceUnavailable
				break
			}
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
