package v1

import (
	"net/http"

	"go-golf-advising-backend/internal/delivery/http/response"
	"go-golf-advising-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	recommendationUC domain.RecommendationUsecase
}

func NewRecommendationHandler(protected *gin.RouterGroup, recommendationUC domain.RecommendationUsecase) {
	handler := &RecommendationHandler{recommendationUC: recommendationUC}

	recs := protected.Group("/recommendations")
	{
		recs.GET("", handler.Generate)
		recs.POST("/structured", handler.GenerateStructured)
	}
}

// Generate returns the rule-based tips for the caller's profile.
func (h *RecommendationHandler) Generate(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserEmail))

	items, err := h.recommendationUC.GenerateRecommendations(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.Text
	}

	response.Success(c, http.StatusOK, "Recommendations generated", gin.H{"recommendations": texts})
}

// GenerateStructured runs the fitting wizard payload through the external
// generator. The generator absorbs its own failures, so this never errors.
func (h *RecommendationHandler) GenerateStructured(c *gin.Context) {
	var payload domain.WizardPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	result := h.recommendationUC.GenerateStructured(c.Request.Context(), &payload)

	response.Success(c, http.StatusOK, "Structured recommendations generated", result)
}
