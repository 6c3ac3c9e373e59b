package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiprasetyo/simpbb/internal/auth"
	"github.com/adiprasetyo/simpbb/internal/model"
)

type fakeUsers struct {
	users map[string]*model.User
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*model.User, error) {
	user, found := f.users[id]
	if !found {
		return nil, errors.New("not found")
	}
	return user, nil
}

const testSecret = "test-secret"

func activeUser() *model.User {
	return &model.User{
		ID:         "u-1",
		Username:   "petugas",
		Email:      "petugas@example.com",
		Role:       model.RoleStaff,
		IsActive:   true,
		IsVerified: true,
	}
}

func authedRouter(t *testing.T, users UserSource) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", Auth(auth.NewParser(testSecret), users), func(c *gin.Context) {
		user, found := MustUser(c)
		require.True(t, found)
		c.JSON(http.StatusOK, gin.H{"id": user.ID})
	})
	router.GET("/admin", Auth(auth.NewParser(testSecret), users), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func issueToken(t *testing.T, user *model.User) string {
	t.Helper()
	token, _, err := auth.NewIssuer(testSecret, time.Hour).Issue(user)
	require.NoError(t, err)
	return token
}

func request(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthAcceptsValidToken(t *testing.T) {
	user := activeUser()
	router := authedRouter(t, &fakeUsers{users: map[string]*model.User{user.ID: user}})

	rec := request(router, "/protected", issueToken(t, user))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), user.ID)
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	router := authedRouter(t, &fakeUsers{})
	rec := request(router, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "token tidak ditemukan")
}

func TestAuthRejectsBadToken(t *testing.T) {
	router := authedRouter(t, &fakeUsers{})
	rec := request(router, "/protected", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "token tidak valid")
}

func TestAuthRejectsUnknownAccount(t *testing.T) {
	user := activeUser()
	router := authedRouter(t, &fakeUsers{users: map[string]*model.User{}})

	rec := request(router, "/protected", issueToken(t, user))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsInactiveAccount(t *testing.T) {
	user := activeUser()
	user.IsActive = false
	router := authedRouter(t, &fakeUsers{users: map[string]*model.User{user.ID: user}})

	rec := request(router, "/protected", issueToken(t, user))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "akun tidak aktif")
}

func TestAuthRejectsUnverifiedAccount(t *testing.T) {
	user := activeUser()
	user.IsVerified = false
	router := authedRouter(t, &fakeUsers{users: map[string]*model.User{user.ID: user}})

	rec := request(router, "/protected", issueToken(t, user))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "akun belum terverifikasi")
}

func TestRequireAdminBlocksStaff(t *testing.T) {
	user := activeUser()
	router := authedRouter(t, &fakeUsers{users: map[string]*model.User{user.ID: user}})

	rec := request(router, "/admin", issueToken(t, user))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "hanya admin")
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	user := activeUser()
	user.Role = model.RoleAdmin
	router := authedRouter(t, &fakeUsers{users: map[string]*model.User{user.ID: user}})

	rec := request(router, "/admin", issueToken(t, user))
	assert.Equal(t, http.StatusOK, rec.Code)
}
