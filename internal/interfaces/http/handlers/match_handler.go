package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"tokyo-friends.backend/internal/domain/entities"
	domainerrors "tokyo-friends.backend/internal/domain/errors"
	"tokyo-friends.backend/internal/interfaces/http/middleware"
	"tokyo-friends.backend/internal/interfaces/http/response"
	"tokyo-friends.backend/internal/usecases"
	"tokyo-friends.backend/pkg/utils"
)

// MatchHandler handles like/skip and match endpoints
type MatchHandler struct {
	matchUsecase *usecases.MatchUsecase
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchUsecase *usecases.MatchUsecase) *MatchHandler {
	return &MatchHandler{matchUsecase: matchUsecase}
}

// SendLike records a like; the match field is set when one formed
// POST /api/v1/likes
func (h *MatchHandler) SendLike(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input entities.LikeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchUsecase.SendLike(c.Request.Context(), userID, input.ToUserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"matched": match != nil,
		"match":   match,
	})
}

// SendSkip records a skip
// POST /api/v1/skips
func (h *MatchHandler) SendSkip(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input entities.SkipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.matchUsecase.SendSkip(c.Request.Context(), userID, input.ToUserID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": "Skip recorded"})
}

// ListMatches lists the caller's matches newest first
// GET /api/v1/matches?page=1&limit=20
func (h *MatchHandler) ListMatches(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	matches, total, err := h.matchUsecase.ListMatches(c.Request.Context(), userID, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"matches":    matches,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// GetMatch returns one match with partner details
// GET /api/v1/matches/:id
func (h *MatchHandler) GetMatch(c *gin.Context) {
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

	detail, err := h.matchUsecase.GetMatchDetail(c.Request.Context(), userID, matchID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail)
}
