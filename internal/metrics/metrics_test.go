package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestMiddlewareUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	before := counterValue(t, httpRequests.WithLabelValues("GET", "/items/:id", "204"))
	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/"+id, nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
	after := counterValue(t, httpRequests.WithLabelValues("GET", "/items/:id", "204"))
	assert.Equal(t, 2.0, after-before)
}

func TestDomainCounters(t *testing.T) {
	before := counterValue(t, entitiesCreated.WithLabelValues("workout"))
	RecordCreated("workout")
	assert.Equal(t, 1.0, counterValue(t, entitiesCreated.WithLabelValues("workout"))-before)

	before = counterValue(t, policyRejections.WithLabelValues("unknown"))
	RecordRejection("")
	assert.Equal(t, 1.0, counterValue(t, policyRejections.WithLabelValues("unknown"))-before)
}

func TestHandlerServesRegistry(t *testing.T) {
	RecordCreated("exercise")
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fitness_tracker_entities_created_total")
}
