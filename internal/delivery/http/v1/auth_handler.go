package v1

import (
	"net/http"
	"time"

	"go-golf-advising-backend/config"
	"go-golf-advising-backend/internal/delivery/http/response"
	"go-golf-advising-backend/internal/domain"
	"go-golf-advising-backend/pkg/auth"
	"go-golf-advising-backend/pkg/successtoken"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC   domain.AuthUsecase
	tokens   *successtoken.Signer
	sessions *auth.SessionIssuer
	cfg      *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, authUC domain.AuthUsecase, tokens *successtoken.Signer, sessions *auth.SessionIssuer, cfg *config.Config) {
	handler := &AuthHandler{
		authUC:   authUC,
		tokens:   tokens,
		sessions: sessions,
		cfg:      cfg,
	}

	authGroup := public.Group("/auth")
	{
		authGroup.POST("/register", handler.Register)
		authGroup.GET("/signup/success", handler.SignupSuccess)
		authGroup.POST("/login", handler.Login)
	}
}

// Register creates the account and hands back a short-lived success token
// that gates the signup success page.
func (h *AuthHandler) Register(c *gin.Context) {
	var input domain.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	user, err := h.authUC.Register(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}

	token := h.tokens.Sign(successtoken.Payload{
		Email: user.Email,
		TS:    time.Now().Unix(),
	})

	response.Success(c, http.StatusCreated, "Registration successful", gin.H{
		"successToken": token,
	})
}

// SignupSuccess verifies the one-time token from the registration redirect.
// Expired, forged and malformed tokens are indistinguishable on purpose.
func (h *AuthHandler) SignupSuccess(c *gin.Context) {
	token := c.Query("token")

	maxAge := time.Duration(h.cfg.SuccessTokenMaxAgeSec) * time.Second
	payload := h.tokens.Verify(token, maxAge)
	if payload == nil {
		response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
		return
	}

	response.Success(c, http.StatusOK, "Signup confirmed", gin.H{
		"email": payload.Email,
	})
}

// Login verifies credentials and issues the session token. Failures are a
// single generic 401 so accounts cannot be enumerated.
func (h *AuthHandler) Login(c *gin.Context) {
	var input domain.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusUnauthorized, "Invalid email or password", nil)
		return
	}

	identity := h.authUC.VerifyCredentials(c.Request.Context(), &input)
	if identity == nil {
		response.Error(c, http.StatusUnauthorized, "Invalid email or password", nil)
		return
	}

	token, err := h.sessions.Issue(identity.ID, identity.Email, identity.Name)
	if err != nil {
		c.Error(err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", token, int(auth.SessionMaxAge/time.Second), "/", "", h.cfg.IsProduction(), true)

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  identity,
	})
}
