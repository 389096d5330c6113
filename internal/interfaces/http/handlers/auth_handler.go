package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tokyo-friends.backend/internal/domain/entities"
	"tokyo-friends.backend/internal/interfaces/http/response"
	"tokyo-friends.backend/internal/usecases"
)

// AuthHandler handles registration
type AuthHandler struct {
	userUsecase *usecases.UserUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUsecase *usecases.UserUsecase) *AuthHandler {
	return &AuthHandler{userUsecase: userUsecase}
}

// Register creates an account and returns a token pair
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.userUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}
