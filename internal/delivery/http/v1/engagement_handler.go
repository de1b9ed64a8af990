package v1

import (
	"io"
	"net/http"
	"time"

	"go-golf-advising-backend/internal/delivery/http/response"
	"go-golf-advising-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// EngagementHandler serves the marketing widgets: synthetic engagement
// metrics and the fire-and-forget client event sink.
type EngagementHandler struct{}

func NewEngagementHandler(public *gin.RouterGroup) {
	handler := &EngagementHandler{}

	public.GET("/metrics", handler.Metrics)
	public.POST("/track", handler.Track)
}

// Metrics returns demo engagement numbers until a real analytics store
// replaces them.
func (h *EngagementHandler) Metrics(c *gin.Context) {
	payload := domain.EngagementMetrics{
		ActiveUsers:     128,
		TournamentsWon:  5,
		ImprovementRate: 62,
		AverageRating:   4.6,
		RatingTrend:     []float64{4.0, 4.2, 4.1, 4.3, 4.5, 4.6, 4.7},
		UpdatedAt:       time.Now().Unix(),
	}

	response.Success(c, http.StatusOK, "Engagement metrics", payload)
}

// Track accepts client-side tracking beacons. The body is read and
// discarded; the endpoint always answers 204 so navigation never blocks.
func (h *EngagementHandler) Track(c *gin.Context) {
	_, _ = io.Copy(io.Discard, c.Request.Body)
	response.NoContent(c)
}
