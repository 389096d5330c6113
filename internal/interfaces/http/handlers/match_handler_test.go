package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tokyo-friends.backend/internal/domain/entities"
	"tokyo-friends.backend/internal/usecases"
)

func newMatchHandlerFixture(interactions *interactionRepoStub, matches *matchRepoStub) *MatchHandler {
	uc := usecases.NewMatchUsecase(
		interactions,
		matches,
		&userRepoStub{},
		&profileRepoStub{},
		&skipSuppressorStub{},
	)
	return NewMatchHandler(uc)
}

func TestMatchHandler_SendLikeNoMatch(t *testing.T) {
	h := newMatchHandlerFixture(&interactionRepoStub{}, &matchRepoStub{})

	viewer := uuid.New()
	r := newHandlerTestRouter()
	r.POST("/likes", authAs(viewer), h.SendLike)

	body := `{"toUserId":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/likes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"matched":false`)
}

func TestMatchHandler_SendLikeCreatesMatch(t *testing.T) {
	interactions := &interactionRepoStub{
		recordLikeFn: func(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
			return true, nil
		},
	}
	h := newMatchHandlerFixture(interactions, &matchRepoStub{})

	viewer := uuid.New()
	r := newHandlerTestRouter()
	r.POST("/likes", authAs(viewer), h.SendLike)

	body := `{"toUserId":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/likes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"matched":true`)
}

func TestMatchHandler_SendLikeRejectsBadBody(t *testing.T) {
	h := newMatchHandlerFixture(&interactionRepoStub{}, &matchRepoStub{})

	r := newHandlerTestRouter()
	r.POST("/likes", authAs(uuid.New()), h.SendLike)

	req := httptest.NewRequest(http.MethodPost, "/likes", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatchHandler_SendLikeRequiresAuth(t *testing.T) {
	h := newMatchHandlerFixture(&interactionRepoStub{}, &matchRepoStub{})

	r := newHandlerTestRouter()
	r.POST("/likes", h.SendLike)

	req := httptest.NewRequest(http.MethodPost, "/likes", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMatchHandler_SendSkip(t *testing.T) {
	skipped := false
	interactions := &interactionRepoStub{
		recordSkipFn: func(context.Context, uuid.UUID, uuid.UUID) error {
			skipped = true
			return nil
		},
	}
	h := newMatchHandlerFixture(interactions, &matchRepoStub{})

	r := newHandlerTestRouter()
	r.POST("/skips", authAs(uuid.New()), h.SendSkip)

	body := `{"toUserId":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/skips", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, skipped)
}

func TestMatchHandler_ListMatches(t *testing.T) {
	viewer := uuid.New()
	partner := uuid.New()
	matches := &matchRepoStub{
		listByUserFn: func(_ context.Context, _ uuid.UUID, limit, offset int) ([]*entities.Match, int64, error) {
			require.Equal(t, 20, limit)
			require.Equal(t, 0, offset)
			return []*entities.Match{{
				ID:        uuid.New(),
				UserAID:   viewer,
				UserBID:   partner,
				Status:    entities.MatchStatusActive,
				MatchedAt: time.Now(),
			}}, 1, nil
		},
	}
	h := newMatchHandlerFixture(&interactionRepoStub{}, matches)

	r := newHandlerTestRouter()
	r.GET("/matches", authAs(viewer), h.ListMatches)

	req := httptest.NewRequest(http.MethodGet, "/matches", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), partner.String())
	assert.Contains(t, rec.Body.String(), `"totalCount":1`)
}

func TestMatchHandler_GetMatchInvalidID(t *testing.T) {
	h := newMatchHandlerFixture(&interactionRepoStub{}, &matchRepoStub{})

	r := newHandlerTestRouter()
	r.GET("/matches/:id", authAs(uuid.New()), h.GetMatch)

	req := httptest.NewRequest(http.MethodGet, "/matches/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatchHandler_GetMatchNotFound(t *testing.T) {
	h := newMatchHandlerFixture(&interactionRepoStub{}, &matchRepoStub{})

	r := newHandlerTestRouter()
	r.GET("/matches/:id", authAs(uuid.New()), h.GetMatch)

	req := httptest.NewRequest(http.MethodGet, "/matches/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
