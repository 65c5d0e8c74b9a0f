package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/storeadmin-service/internal/app/auth/usecases/login"
)

// AuthHandler serves /api/auth.
type AuthHandler struct {
	login  *login.Interactor
	logger *slog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(login *login.Interactor, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{login: login, logger: logger}
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var body loginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, msgBadBody)
		return
	}

	resp, err := h.login.Execute(c.Request.Context(), &login.Request{Email: body.Email, Password: body.Password})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me handles GET /api/auth/session and echoes the verified session.
func (h *AuthHandler) Me(c *gin.Context) {
	session, ok := SessionFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: msgUnauthorized})
		return
	}
	c.JSON(http.StatusOK, session)
}
