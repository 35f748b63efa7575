package delivery

import (
	"net/http"

	authdto "github.com/kranuabs13/Emailtrackmaster/internal/auth/dto"
	"github.com/kranuabs13/Emailtrackmaster/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles session bootstrap for the taskpane
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// CreateSession issues a token for the add-in's mailbox
// POST /api/auth/session
func (h *AuthHandler) CreateSession(c *gin.Context) {
	var req authdto.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.CreateSession(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
