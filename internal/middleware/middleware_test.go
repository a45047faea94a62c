package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"community_admin/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type denylist map[string]bool

func (d denylist) IsRevoked(_ context.Context, id string) (bool, error) { return d[id], nil }

type admins map[uuid.UUID]bool

func (a admins) IsAdmin(_ context.Context, id uuid.UUID) (bool, error) {
	v, ok := a[id]
	if !ok {
		return false, errors.New("record not found")
	}
	return v, nil
}

func newRouter(revoked RevocationChecker, adm AdminChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/me", JWTAuthMiddleware("secret", revoked), AdminOnlyMiddleware(adm), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.MustGet(UserIDKey).(uuid.UUID), "token": c.GetString(TokenIDKey)})
	})
	return r
}

func get(t *testing.T, r http.Handler, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthChain(t *testing.T) {
	admin, member := uuid.New(), uuid.New()
	adminToken, err := utils.GenerateJWT(admin, "secret", time.Hour)
	require.NoError(t, err)
	memberToken, err := utils.GenerateJWT(member, "secret", time.Hour)
	require.NoError(t, err)
	foreign, err := utils.GenerateJWT(admin, "other", time.Hour)
	require.NoError(t, err)

	r := newRouter(denylist{}, admins{admin: true, member: false})

	assert.Equal(t, http.StatusUnauthorized, get(t, r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(t, r, foreign).Code)
	assert.Equal(t, http.StatusForbidden, get(t, r, memberToken).Code)
	assert.Equal(t, http.StatusForbidden, get(t, r, mustToken(t, uuid.New())).Code)

	w := get(t, r, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), admin.String())
}

func TestRevokedTokenRejected(t *testing.T) {
	admin := uuid.New()
	token := mustToken(t, admin)
	claims, err := utils.ParseJWT(token, "secret")
	require.NoError(t, err)

	r := newRouter(denylist{utils.TokenID(claims, token): true}, admins{admin: true})
	w := get(t, r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Session has ended")
}

func TestTimeoutSetsDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Timeout(time.Second))
	r.GET("/", func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		c.JSON(http.StatusOK, gin.H{"deadline": ok})
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.JSONEq(t, `{"deadline":true}`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS())
	r.DELETE("/admin/users/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/admin/users/1", nil)
	req.Header.Set("Origin", "https://admin.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func mustToken(t *testing.T, id uuid.UUID) string {
	t.Helper()
	token, err := utils.GenerateJWT(id, "secret", time.Hour)
	require.NoError(t, err)
	return token
}
