package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"tokyo-friends.backend/internal/domain/entities"
	domainerrors "tokyo-friends.backend/internal/domain/errors"
	"tokyo-friends.backend/internal/interfaces/http/middleware"
	"tokyo-friends.backend/internal/interfaces/http/response"
	"tokyo-friends.backend/internal/usecases"
)

// ModerationHandler handles block and report endpoints
type ModerationHandler struct {
	moderationUsecase *usecases.ModerationUsecase
}

// NewModerationHandler creates a new moderation handler
func NewModerationHandler(moderationUsecase *usecases.ModerationUsecase) *ModerationHandler {
	return &ModerationHandler{moderationUsecase: moderationUsecase}
}

// Block blocks a user
// POST /api/v1/blocks
func (h *ModerationHandler) Block(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input entities.BlockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.moderationUsecase.Block(c.Request.Context(), userID, input.BlockedUserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// Unblock removes a block
// DELETE /api/v1/blocks/:userId
func (h *ModerationHandler) Unblock(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	blockedID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	if err := h.moderationUsecase.Unblock(c.Request.Context(), userID, blockedID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Block removed"})
}

// ListBlocked lists the users the caller has blocked
// GET /api/v1/blocks
func (h *ModerationHandler) ListBlocked(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	blocked, err := h.moderationUsecase.ListBlocked(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"blocked": blocked})
}

// Report files a report against a user
// POST /api/v1/reports
func (h *ModerationHandler) Report(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input entities.ReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.moderationUsecase.Report(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// TrustScore returns the caller's current trust score
// GET /api/v1/users/me/trust
func (h *ModerationHandler) TrustScore(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	score, err := h.moderationUsecase.GetTrustScore(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"trustScore": score})
}

// BlockMatch blocks the partner of a match the caller participates in
// POST /api/v1/matches/:id/block
func (h *ModerationHandler) BlockMatch(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid match id"))
		return
	}

	result, err := h.moderationUsecase.BlockMatchPartner(c.Request.Context(), userID, matchID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}
