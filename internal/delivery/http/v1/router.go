package v1

import (
	"net/http"
	"time"

	"go-golf-advising-backend/config"
	"go-golf-advising-backend/internal/delivery/http/middleware"
	"go-golf-advising-backend/internal/delivery/http/response"
	"go-golf-advising-backend/internal/domain"
	"go-golf-advising-backend/pkg/auth"
	"go-golf-advising-backend/pkg/successtoken"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	AuthUC           domain.AuthUsecase
	ProfileUC        domain.ProfileUsecase
	RecommendationUC domain.RecommendationUsecase
	TestimonialUC    domain.TestimonialUsecase
	SuccessTokens    *successtoken.Signer
	Sessions         *auth.SessionIssuer
	Config           *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL, deps.Config.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Public routes. Auth endpoints carry their own stricter limiter.
	authLimited := v1.Group("")
	authLimited.Use(middleware.RateLimitMiddleware(middleware.AuthRateLimitConfig(deps.Config.RateLimitAuthThreshold, window)))
	NewAuthHandler(authLimited, deps.AuthUC, deps.SuccessTokens, deps.Sessions, deps.Config)

	NewTestimonialHandler(v1, deps.TestimonialUC)
	NewEngagementHandler(v1)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Sessions))
	{
		NewProfileHandler(protected, deps.ProfileUC)
		NewRecommendationHandler(protected, deps.RecommendationUC)
	}

	return r
}
