package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simoleans/profit/internal/model"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func firmarToken(t *testing.T, secret string, rol model.Rol, exp time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"co_ven": "V01",
		"nombre": "Pedro",
		"rol":    int(rol),
		"exp":    time.Now().Add(exp).Unix(),
		"iat":    time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func routerProtegido(roles ...model.Rol) *gin.Engine {
	r := gin.New()
	grupo := r.Group("/", JWTAuth(testSecret))
	if len(roles) > 0 {
		grupo.Use(RequireRole(roles...))
	}
	grupo.GET("/recurso", func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"co_ven": claims.CoVen})
	})
	return r
}

func hacerRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/recurso", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthSinToken(t *testing.T) {
	w := hacerRequest(routerProtegido(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthTokenValido(t *testing.T) {
	token := firmarToken(t, testSecret, model.RolVendedor, time.Hour)
	w := hacerRequest(routerProtegido(), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "V01")
}

func TestJWTAuthTokenExpirado(t *testing.T) {
	token := firmarToken(t, testSecret, model.RolVendedor, -time.Hour)
	w := hacerRequest(routerProtegido(), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthOtroSecreto(t *testing.T) {
	token := firmarToken(t, "otro-secreto", model.RolVendedor, time.Hour)
	w := hacerRequest(routerProtegido(), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	r := routerProtegido(model.RolAdministrador, model.RolSupervisor)

	vendedor := firmarToken(t, testSecret, model.RolVendedor, time.Hour)
	assert.Equal(t, http.StatusForbidden, hacerRequest(r, vendedor).Code)

	admin := firmarToken(t, testSecret, model.RolAdministrador, time.Hour)
	assert.Equal(t, http.StatusOK, hacerRequest(r, admin).Code)

	supervisor := firmarToken(t, testSecret, model.RolSupervisor, time.Hour)
	assert.Equal(t, http.StatusOK, hacerRequest(r, supervisor).Code)
}

func TestRateLimiter(t *testing.T) {
	r := gin.New()
	r.Use(RateLimiter(3, time.Minute))
	r.GET("/recurso", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/recurso", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}

	req := httptest.NewRequest(http.MethodGet, "/recurso", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}
