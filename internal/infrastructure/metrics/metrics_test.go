package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/tickets/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tickets/7", nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpReqCnt.WithLabelValues("GET", "/api/tickets/:id", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpInfl))
}

func TestNotificationSent(t *testing.T) {
	m := New()
	m.NotificationSent("status", ResultSent)
	m.NotificationSent("status", ResultFailed)
	m.NotificationSent("status", ResultSent)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.notifications.WithLabelValues("status", ResultSent)))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.NotificationSent("status", ResultSent) })
}

func TestHandler_ExposesRegistry(t *testing.T) {
	m := New()
	m.NotificationSent("reply", ResultSkipped)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `assetregister_notifications_sent_total{kind="reply",result="skipped"} 1`)
}
