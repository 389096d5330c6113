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
	"tokyo-friends.backend/internal/domain/entities"
	domainerrors "tokyo-friends.backend/internal/domain/errors"
	"tokyo-friends.backend/internal/usecases"
	"tokyo-friends.backend/pkg/jwt"
)

func newAuthHandlerFixture(users *userRepoStub) (*AuthHandler, *UserHandler) {
	svc := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	uc := usecases.NewUserUsecase(users, svc)
	return NewAuthHandler(uc), NewUserHandler(uc)
}

func TestAuthHandler_Register(t *testing.T) {
	var created *entities.User
	users := &userRepoStub{
		createFn: func(_ context.Context, user *entities.User) error {
			created = user
			return nil
		},
	}
	authHandler, _ := newAuthHandlerFixture(users)

	r := newHandlerTestRouter()
	r.POST("/auth/register", authHandler.Register)

	body := `{"authMethod":"phone","isOver18":true}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "accessToken")
	if assert.NotNil(t, created) {
		assert.Equal(t, entities.DefaultTrustScore, created.TrustScore)
	}
}

func TestAuthHandler_RegisterUnderage(t *testing.T) {
	authHandler, _ := newAuthHandlerFixture(&userRepoStub{})

	r := newHandlerTestRouter()
	r.POST("/auth/register", authHandler.Register)

	body := `{"authMethod":"phone","isOver18":false}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_RegisterMissingFields(t *testing.T) {
	authHandler, _ := newAuthHandlerFixture(&userRepoStub{})

	r := newHandlerTestRouter()
	r.POST("/auth/register", authHandler.Register)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_GetMe(t *testing.T) {
	userID := uuid.New()
	_, userHandler := newAuthHandlerFixture(&userRepoStub{})

	r := newHandlerTestRouter()
	r.GET("/users/me", authAs(userID), userHandler.GetMe)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
	assert.Contains(t, rec.Body.String(), "trustScore")
}

func TestUserHandler_DeleteMeTwice(t *testing.T) {
	users := &userRepoStub{
		getByIDFn: func(_ context.Context, id uuid.UUID) (*entities.User, error) {
			return nil, domainerrors.ErrNotFound
		},
	}
	_, userHandler := newAuthHandlerFixture(users)

	r := newHandlerTestRouter()
	r.DELETE("/users/me", authAs(uuid.New()), userHandler.DeleteMe)

	req := httptest.NewRequest(http.MethodDelete, "/users/me", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
