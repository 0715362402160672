package handlers

import (
	"net/http"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/fincontrol/fincontrol_backend/internal/core/ports/services"
	"github.com/fincontrol/fincontrol_backend/internal/dto"
	"github.com/fincontrol/fincontrol_backend/internal/metrics"
	"github.com/fincontrol/fincontrol_backend/internal/middleware"
	"github.com/fincontrol/fincontrol_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication and session requests.
type AuthHandler struct {
	authService    portssvc.AuthSvcFacade
	sessionService portssvc.SessionSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth portssvc.AuthSvcFacade, session portssvc.SessionSvcFacade) *AuthHandler {
	return &AuthHandler{authService: auth, sessionService: session}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.Auth, services.Session)

	// Rate limit login attempts per IP, e.g. "5-M" = 5 per minute.
	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("5-M")
	}
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
		auth.POST("/register", h.Register)
		auth.POST("/logout", h.Logout)
	}

	r.GET("/api/v1/session", h.GetSession)
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and switches the session to them.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	metrics.ObserveOperation("login", err)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{User: dto.ToUserResponse(user)})
}

// Register godoc
// @Summary Register new user
// @Description Creates a new staff account and signs it in.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Conflict (username taken)"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	metrics.ObserveOperation("register", err)
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, dto.SessionResponse{User: dto.ToUserResponse(user)})
}

// Logout godoc
// @Summary End the current session
// @Description Logs the current user out. Succeeds even when nobody is logged in.
// @Tags auth
// @Produce json
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	err := h.authService.Logout(c.Request.Context())
	metrics.ObserveOperation("logout", err)
	if err != nil {
		respondError(c, err, "Failed to log out")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSession godoc
// @Summary Current session
// @Description Returns the currently authenticated user, if any.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} ErrorResponse
// @Router /session [get]
func (h *AuthHandler) GetSession(c *gin.Context) {
	user := h.sessionService.CurrentUser()
	if user == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not logged in"})
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{User: dto.ToUserResponse(user)})
}
