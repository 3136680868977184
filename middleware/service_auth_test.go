package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"discussion-fetcher/config"
)

var testAuthConfig = config.AuthConfig{
	Enabled:  true,
	Secret:   "test-secret-with-enough-length",
	Issuer:   "alt-backend",
	Audience: "discussion-fetcher",
}

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, ServiceClaims{RegisteredClaims: claims}).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims() jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   "alt-backend",
		Issuer:    "alt-backend",
		Audience:  jwt.ClaimStrings{"discussion-fetcher"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
}

func TestServiceAuth_Require(t *testing.T) {
	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	wrongAudience := validClaims()
	wrongAudience.Audience = jwt.ClaimStrings{"search-indexer"}
	wrongIssuer := validClaims()
	wrongIssuer.Issuer = "someone-else"
	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil

	tests := map[string]struct {
		header     string
		value      string
		wantStatus int
	}{
		"bearer token":          {header: echo.HeaderAuthorization, value: "Bearer " + signToken(t, testAuthConfig.Secret, jwt.SigningMethodHS256, validClaims()), wantStatus: http.StatusOK},
		"service token header":  {header: serviceTokenHeader, value: signToken(t, testAuthConfig.Secret, jwt.SigningMethodHS256, validClaims()), wantStatus: http.StatusOK},
		"missing token":         {wantStatus: http.StatusUnauthorized},
		"wrong scheme":          {header: echo.HeaderAuthorization, value: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized},
		"wrong secret":          {header: echo.HeaderAuthorization, value: "Bearer " + signToken(t, "other-secret", jwt.SigningMethodHS256, validClaims()), wantStatus: http.StatusUnauthorized},
		"hs512 is not accepted": {header: echo.HeaderAuthorization, value: "Bearer " + signToken(t, testAuthConfig.Secret, jwt.SigningMethodHS512, validClaims()), wantStatus: http.StatusUnauthorized},
		"expired":               {header: echo.HeaderAuthorization, value: "Bearer " + signToken(t, testAuthConfig.Secret, jwt.SigningMethodHS256, expired), wantStatus: http.StatusUnauthorized},
		"no expiry":             {header: echo.HeaderAuthorization, value: "Bearer " + signToken(t, testAuthConfig.Secret, jwt.SigningMethodHS256, noExpiry), wantStatus: http.StatusUnauthorized},
		"wrong audience":        {header: echo.HeaderAuthorization, value: "Bearer " + signToken(t, testAuthConfig.Secret, jwt.SigningMethodHS256, wrongAudience), wantStatus: http.StatusUnauthorized},
		"wrong issuer":          {header: echo.HeaderAuthorization, value: "Bearer " + signToken(t, testAuthConfig.Secret, jwt.SigningMethodHS256, wrongIssuer), wantStatus: http.StatusUnauthorized},
		"garbage":               {header: serviceTokenHeader, value: "not-a-jwt", wantStatus: http.StatusUnauthorized},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			e.HTTPErrorHandler = CustomHTTPErrorHandler(quietLogger())
			auth := NewServiceAuth(testAuthConfig, quietLogger())

			var caller string
			e.POST("/fetch", func(c echo.Context) error {
				caller = CallerFrom(c.Request().Context())
				return c.NoContent(http.StatusOK)
			}, auth.Require())

			req := httptest.NewRequest(http.MethodPost, "/fetch", nil)
			if tc.header != "" {
				req.Header.Set(tc.header, tc.value)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, "alt-backend", caller)
			}
		})
	}
}

func TestServiceAuth_NoSecretDeniesAll(t *testing.T) {
	cfg := testAuthConfig
	cfg.Secret = ""
	auth := NewServiceAuth(cfg, quietLogger())

	req := httptest.NewRequest(http.MethodPost, "/fetch", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, testAuthConfig.Secret, jwt.SigningMethodHS256, validClaims()))

	_, err := auth.verify(req)
	assert.ErrorIs(t, err, errInvalidToken)
}
