package handler

import (
	"context"
	"net/http"

	"chequesaathi/config"
	"chequesaathi/internal/domain"
	"chequesaathi/internal/middleware"
	"chequesaathi/internal/models"
	"chequesaathi/internal/repository"
	"chequesaathi/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	svc        *service.AuthService
	auditRepo  *repository.AuditLogRepository
	jwt        *config.JWTConfig
	production bool
}

func NewAuthHandler(svc *service.AuthService, auditRepo *repository.AuditLogRepository, jwt *config.JWTConfig, production bool) *AuthHandler {
	return &AuthHandler{svc: svc, auditRepo: auditRepo, jwt: jwt, production: production}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func userBody(u *models.User) gin.H {
	return gin.H{"id": u.ID, "email": u.Email, "name": u.Name}
}

// setSession writes the session cookie; maxAge < 0 clears it.
func (h *AuthHandler) setSession(c *gin.Context, token string, maxAge int) {
	if h.production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(h.jwt.CookieName, token, maxAge, "/", "", h.production, true)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	u, token, err := h.svc.Register(c.Request.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.setSession(c, token, int(h.jwt.Expiry.Seconds()))
	h.auditLog(c.Request.Context(), u.ID, domain.AuditRegister, c)
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    userBody(u),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	u, token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	h.setSession(c, token, int(h.jwt.Expiry.Seconds()))
	h.auditLog(c.Request.Context(), u.ID, domain.AuditLogin, c)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    userBody(u),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSession(c, "", -1)
	if userID := middleware.GetUserID(c); userID != "" {
		h.auditLog(c.Request.Context(), userID, domain.AuditLogout, c)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.svc.Profile(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	body := userBody(u)
	body["createdAt"] = u.CreatedAt
	c.JSON(http.StatusOK, gin.H{"user": body})
}

func (h *AuthHandler) auditLog(ctx context.Context, userID, action string, c *gin.Context) {
	if h.auditRepo == nil {
		return
	}
	err := h.auditRepo.Create(ctx, &models.AuditLog{
		UserID:     &userID,
		Action:     action,
		Resource:   "auth",
		ResourceID: userID,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})
	if err != nil {
		logrus.WithError(err).WithField("action", action).Warn("audit log write failed")
	}
}
