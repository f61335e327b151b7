package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/hotel-reservation/internal/utils"
)

const testSecret = "test-secret"

func callProtected(t *testing.T, authHeader string, mw ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
    t.Helper()
    e := echo.New()
    e.GET("/protected", func(c echo.Context) error {
        return c.JSON(http.StatusOK, echo.Map{
            "user_id": c.Get("user_id"),
            "role":    c.Get("role"),
        })
    }, mw...)

    req := httptest.NewRequest(http.MethodGet, "/protected", nil)
    if authHeader != "" {
        req.Header.Set("Authorization", authHeader)
    }
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    return rec
}

func TestJWTAuthInjectsClaims(t *testing.T) {
    tok, err := utils.NewAccessToken(testSecret, "U002", "CUSTOMER", 15)
    require.NoError(t, err)

    rec := callProtected(t, "Bearer "+tok.Token, JWTAuth(testSecret))
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Body.String(), `"user_id":"U002"`)
    assert.Contains(t, rec.Body.String(), `"role":"CUSTOMER"`)
}

func TestJWTAuthRejectsBadTokens(t *testing.T) {
    rec := callProtected(t, "", JWTAuth(testSecret))
    assert.Equal(t, http.StatusUnauthorized, rec.Code)

    rec = callProtected(t, "Bearer garbage", JWTAuth(testSecret))
    assert.Equal(t, http.StatusUnauthorized, rec.Code)

    other, err := utils.NewAccessToken("other-secret", "U002", "CUSTOMER", 15)
    require.NoError(t, err)
    rec = callProtected(t, "Bearer "+other.Token, JWTAuth(testSecret))
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
    admin, err := utils.NewAccessToken(testSecret, "U001", "ADMIN", 15)
    require.NoError(t, err)
    customer, err := utils.NewAccessToken(testSecret, "U002", "CUSTOMER", 15)
    require.NoError(t, err)

    rec := callProtected(t, "Bearer "+admin.Token, JWTAuth(testSecret), RequireRole("ADMIN"))
    assert.Equal(t, http.StatusOK, rec.Code)

    rec = callProtected(t, "Bearer "+customer.Token, JWTAuth(testSecret), RequireRole("ADMIN"))
    assert.Equal(t, http.StatusForbidden, rec.Code)

    rec = callProtected(t, "Bearer "+customer.Token, JWTAuth(testSecret), RequireRole("CUSTOMER", "ADMIN"))
    assert.Equal(t, http.StatusOK, rec.Code)
}
