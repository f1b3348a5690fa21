package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/av954416-web/javadrive/internal/domain/identity"
	"github.com/av954416-web/javadrive/internal/httperr"
)

type stubTokens map[string]identity.Principal

func (s stubTokens) Parse(raw string) (identity.Principal, error) {
	if p, ok := s[raw]; ok {
		return p, nil
	}
	return identity.Principal{}, errors.New("bad token")
}

type stubRoles map[uuid.UUID]string

func (s stubRoles) UserRole(_ context.Context, id uuid.UUID) (string, error) {
	if role, ok := s[id]; ok {
		return role, nil
	}
	if id == brokenStore {
		return "", errors.New("connection refused")
	}
	return "", httperr.ErrNotFound("user_not_found")
}

var brokenStore = uuid.New()

func newRouter(tokens TokenParser, extra ...gin.HandlerFunc) *gin.Engine {
	return newRouterWithRoles(tokens, nil, extra...)
}

func newRouterWithRoles(tokens TokenParser, roles RoleSource, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{AuthMiddleware(tokens, roles)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		p, _ := PrincipalFrom(c)
		c.String(http.StatusOK, string(p.Role))
	})
	r.GET("/x", chain...)
	return r
}

func do(r http.Handler, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	tokens := stubTokens{"good": {UserID: uuid.New(), Role: identity.RoleOwner}}
	r := newRouter(tokens)

	assert.Equal(t, http.StatusUnauthorized, do(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "Basic good").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "Bearer nope").Code)

	w := do(r, "Bearer good")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "owner", w.Body.String())
}

func TestRequireRole(t *testing.T) {
	tokens := stubTokens{
		"user":  {UserID: uuid.New(), Role: identity.RoleUser},
		"admin": {UserID: uuid.New(), Role: identity.RoleAdmin},
	}
	r := newRouter(tokens, RequireRole(identity.RoleAdmin))

	w := do(r, "Bearer user")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "admin_role_required")

	assert.Equal(t, http.StatusOK, do(r, "Bearer admin").Code)
}

func TestAuthMiddlewareUsesStoredRole(t *testing.T) {
	demoted := uuid.New()
	deleted := uuid.New()
	tokens := stubTokens{
		"demoted": {UserID: demoted, Role: identity.RoleAdmin},
		"deleted": {UserID: deleted, Role: identity.RoleAdmin},
		"broken":  {UserID: brokenStore, Role: identity.RoleAdmin},
	}
	roles := stubRoles{demoted: string(identity.RoleUser)}
	r := newRouterWithRoles(tokens, roles, RequireRole(identity.RoleAdmin))

	w := do(r, "Bearer demoted")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "admin_role_required")

	w = do(r, "Bearer deleted")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_token")

	w = do(r, "Bearer broken")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestCORSAllowList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://app.example.com"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/x", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
