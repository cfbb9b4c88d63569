package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/halisaha-api/internal/constants"
	"github.com/yukikurage/halisaha-api/internal/dto"
	apierrors "github.com/yukikurage/halisaha-api/internal/errors"
	"github.com/yukikurage/halisaha-api/internal/middleware"
	"github.com/yukikurage/halisaha-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new user account. It does not log the user in.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Username       string  `json:"username"`
		Password       string  `json:"password"`
		FullName       string  `json:"fullName"`
		Phone          string  `json:"phone"`
		Position       string  `json:"position"`
		Height         *int    `json:"height"`
		Weight         *int    `json:"weight"`
		Age            *int    `json:"age"`
		ProfilePicture *string `json:"profilePicture"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Geçersiz form verisi")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Username:       req.Username,
		Password:       req.Password,
		FullName:       req.FullName,
		Phone:          req.Phone,
		Position:       req.Position,
		Height:         req.Height,
		Weight:         req.Weight,
		Age:            req.Age,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Kayıt başarılı! Giriş yapabilirsiniz.",
		"user":    dto.ToUserDTO(*user),
	})
}

// Login authenticates a user and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Kullanıcı adı ve şifre gereklidir")
		return
	}

	user, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Oturum başlatılamadı")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Giriş başarılı!",
		"user":    dto.ToUserDTO(*user),
	})
}

// Logout removes the authentication session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Çıkış yapılamadı")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Çıkış yapıldı",
	})
}

// Profile returns the authenticated user, including the reliability score.
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Status reports whether the caller holds a session. A session whose user no
// longer exists counts as unauthenticated.
func (h *AuthHandler) Status(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"authenticated": true,
			"user":          dto.ToUserDTO(*user),
		})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
	default:
		respondAuthError(c, err)
	}
}

func respondAuthError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		apierrors.BadRequest(c, validationErr.Message)
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.Conflict(c, "Bu kullanıcı adı zaten kullanılıyor")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "Kullanıcı bulunamadı")
	default:
		apierrors.InternalError(c, "")
	}
}
