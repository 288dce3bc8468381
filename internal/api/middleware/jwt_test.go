package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testJWTSecret = "middleware-test-secret"

func signHS(t *testing.T, method *jwt.SigningMethodHMAC, secret, issuer, subject string, exp time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	tok, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func signNone(t *testing.T, issuer, subject string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign unsigned token: %v", err)
	}
	return tok
}

func TestEmployerAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", testJWTSecret)
	t.Setenv("JWT_ISSUER", "")
	gin.SetMode(gin.TestMode)

	hourFromNow := time.Now().Add(time.Hour)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantID     string
	}{
		{
			name:       "valid token sets employer id",
			authHeader: "Bearer " + signHS(t, jwt.SigningMethodHS256, testJWTSecret, "talentscout", "emp-1", hourFromNow),
			wantStatus: http.StatusOK,
			wantID:     "emp-1",
		},
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			authHeader: "Token abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty bearer token",
			authHeader: "Bearer   ",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unsigned token rejected",
			authHeader: "Bearer " + signNone(t, "talentscout", "emp-1"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong signing method rejected",
			authHeader: "Bearer " + signHS(t, jwt.SigningMethodHS384, testJWTSecret, "talentscout", "emp-1", hourFromNow),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong secret",
			authHeader: "Bearer " + signHS(t, jwt.SigningMethodHS256, "other-secret", "talentscout", "emp-1", hourFromNow),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong issuer",
			authHeader: "Bearer " + signHS(t, jwt.SigningMethodHS256, testJWTSecret, "someone-else", "emp-1", hourFromNow),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty subject",
			authHeader: "Bearer " + signHS(t, jwt.SigningMethodHS256, testJWTSecret, "talentscout", "", hourFromNow),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			authHeader: "Bearer " + signHS(t, jwt.SigningMethodHS256, testJWTSecret, "talentscout", "emp-1", time.Now().Add(-time.Minute)),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID string
			r := gin.New()
			r.GET("/dashboard/ping", EmployerAuth(), func(c *gin.Context) {
				gotID = c.GetString("employer_id")
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/dashboard/ping", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if gotID != tt.wantID {
				t.Errorf("employer_id = %q, want %q", gotID, tt.wantID)
			}
		})
	}
}

func TestEmployerAuthCustomIssuer(t *testing.T) {
	t.Setenv("JWT_SECRET", testJWTSecret)
	t.Setenv("JWT_ISSUER", "scout-staging")
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/dashboard/ping", EmployerAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tok := signHS(t, jwt.SigningMethodHS256, testJWTSecret, "scout-staging", "emp-1", time.Now().Add(time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/dashboard/ping", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestEmployerAuthWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/dashboard/ping", EmployerAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}
