package v1

import (
	"net/http"

	"go-golf-advising-backend/internal/delivery/http/response"
	"go-golf-advising-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	users := protected.Group("/users/me")
	{
		users.GET("/profile", handler.GetProfile)
		users.POST("/profile", handler.UpsertProfile)
	}
}

// GetProfile returns the caller's profile, or null before onboarding starts.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserEmail))

	profile, err := h.profileUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", gin.H{"profile": profile})
}

// UpsertProfile merges a wizard step's fields into the caller's profile.
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserEmail))

	var patch domain.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	profile, err := h.profileUC.UpsertProfile(c.Request.Context(), userID, &patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile saved", gin.H{"profile": profile})
}
