package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/auth"
)

// AdminHandler handles HTTP requests for admin authentication
type AdminHandler struct {
	adminUseCase domain.AdminUseCase
	jwtService   auth.JWTService
	sessions     domain.SessionStore
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUseCase domain.AdminUseCase, jwtService auth.JWTService, sessions domain.SessionStore) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		jwtService:   jwtService,
		sessions:     sessions,
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"gm_alice"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginResponse represents the login response body
type LoginResponse struct {
	Token string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Admin AdminInfo `json:"admin"`
}

// AdminInfo represents admin account information
type AdminInfo struct {
	ID       string `json:"id" example:"7a1c9f34-2e61-4b3a-9f6e-1d2c3b4a5e6f"`
	Username string `json:"username" example:"gm_alice"`
	Role     string `json:"role" example:"SuperAdmin"`
}

// Login handles admin authentication
// @Summary Admin login
// @Description Authenticate an operator and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /auth/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", 400, err))
		return
	}

	token, err := h.adminUseCase.Authenticate(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		respondError(c, domain.NewInternalError("Failed to process token", err))
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		Admin: AdminInfo{
			ID:       claims.AdminID,
			Username: claims.Username,
			Role:     claims.Role,
		},
	})
}

// Logout revokes the caller's current token
// @Summary Admin logout
// @Description Blacklist the presented token for its remaining lifetime
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} domain.ErrorResponse
// @Router /auth/logout [post]
func (h *AdminHandler) Logout(c *gin.Context) {
	token, exists := c.Get("token")
	if !exists {
		c.JSON(http.StatusUnauthorized, domain.NewUnauthorizedError(""))
		return
	}

	if err := h.sessions.BlacklistToken(c.Request.Context(), token.(string), h.jwtService.TokenExpiry()); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// Me returns the authenticated admin's account information
// @Summary Get admin information
// @Description Get the current admin account from the JWT token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AdminInfo
// @Failure 401 {object} domain.ErrorResponse
// @Router /auth/me [get]
func (h *AdminHandler) Me(c *gin.Context) {
	adminID, ok := getAuthenticatedAdminID(c)
	if !ok {
		return
	}

	admin, err := h.adminUseCase.GetAdminInfo(adminID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AdminInfo{
		ID:       admin.ID,
		Username: admin.Username,
		Role:     admin.Role,
	})
}
