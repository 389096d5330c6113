package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tokyo-friends.backend/internal/domain/entities"
	"tokyo-friends.backend/internal/interfaces/http/middleware"
	"tokyo-friends.backend/internal/interfaces/http/response"
	"tokyo-friends.backend/internal/usecases"
)

// DeckHandler handles the card deck endpoint
type DeckHandler struct {
	deckUsecase *usecases.DeckUsecase
}

// NewDeckHandler creates a new deck handler
func NewDeckHandler(deckUsecase *usecases.DeckUsecase) *DeckHandler {
	return &DeckHandler{deckUsecase: deckUsecase}
}

// GetCards returns the ranked deck for the caller
// GET /api/v1/cards?districts=...&ageRanges=...&attributes=...&interests=...
func (h *DeckHandler) GetCards(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var filters entities.CardFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deck, err := h.deckUsecase.AssembleDeck(c.Request.Context(), userID, &filters)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"cards": deck,
		"count": len(deck),
	})
}
