package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "tokyo-friends.backend/internal/domain/errors"
	"tokyo-friends.backend/internal/interfaces/http/middleware"
	"tokyo-friends.backend/internal/interfaces/http/response"
	"tokyo-friends.backend/internal/usecases"
)

// CommunityHandler handles community endpoints
type CommunityHandler struct {
	communityUsecase *usecases.CommunityUsecase
}

// NewCommunityHandler creates a new community handler
func NewCommunityHandler(communityUsecase *usecases.CommunityUsecase) *CommunityHandler {
	return &CommunityHandler{communityUsecase: communityUsecase}
}

// List lists communities, optionally filtered by district and interest tag
// GET /api/v1/communities?district=...&interestTag=...
func (h *CommunityHandler) List(c *gin.Context) {
	communities, err := h.communityUsecase.ListCommunities(
		c.Request.Context(),
		c.Query("district"),
		c.Query("interestTag"),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"communities": communities})
}

// Join adds the caller to a community
// POST /api/v1/communities/:id/join
func (h *CommunityHandler) Join(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	communityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid community id"))
		return
	}

	if err := h.communityUsecase.Join(c.Request.Context(), userID, communityID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Joined community"})
}

// Leave removes the caller from a community
// POST /api/v1/communities/:id/leave
func (h *CommunityHandler) Leave(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	communityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid community id"))
		return
	}

	if err := h.communityUsecase.Leave(c.Request.Context(), userID, communityID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Left community"})
}

// Mine lists the caller's communities
// GET /api/v1/communities/me
func (h *CommunityHandler) Mine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	communities, err := h.communityUsecase.UserCommunities(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"communities": communities})
}
